package main

import (
	"log"

	_ "gestao_integrada/docs"
	"gestao_integrada/internal/adapter/http/routes"
	"gestao_integrada/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Gestão Integrada API
// @version         1.0
// @description     Quote to work order lifecycle over a tabular record store.

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	routes.Run(cfg)
}
