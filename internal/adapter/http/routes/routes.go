package routes

import (
	"context"
	"fmt"
	"log"
	"time"

	_ "gestao_integrada/docs" // swag generated
	"gestao_integrada/internal/adapter/http/handlers"
	"gestao_integrada/internal/adapter/persistence/recordstore"
	"gestao_integrada/internal/adapter/persistence/repository"
	"gestao_integrada/internal/config"
	"gestao_integrada/internal/infrastructure/database"
	"gestao_integrada/internal/infrastructure/messaging"
	"gestao_integrada/internal/usecase"
	"gestao_integrada/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const bootstrapTimeout = 2 * time.Minute

// Run will start the server
func Run(cfg config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), bootstrapTimeout)
	defer cancel()

	router, err := NewRouter(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter wires store, repositories, use cases and handlers. The schema
// is ensured before the router is returned.
func NewRouter(ctx context.Context, cfg config.Config) (*gin.Engine, error) {
	inner, err := openRecordStore(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	policy := recordstore.DefaultRetryPolicy()
	policy.MaxAttempts = cfg.Store.Retry.MaxAttempts
	policy.BaseDelay = cfg.Store.Retry.BaseDelay
	store := recordstore.NewResilientStore(inner, policy, cfg.Store.Cache.TTL)

	if err := repository.EnsureSchema(ctx, store); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	events := openEventPublisher(ctx, cfg.Events)

	quoteRepo := repository.NewQuoteSheetRepository(store)
	workOrderRepo := repository.NewWorkOrderSheetRepository(store)
	registryRepo := repository.NewRegistrySheetRepository(store)

	h := lifecycleHandlers{
		quotes:     handlers.NewQuoteHandler(usecase.NewQuoteUseCase(quoteRepo, events)),
		workOrders: handlers.NewWorkOrderHandler(usecase.NewWorkOrderUseCase(workOrderRepo, quoteRepo, events)),
		dashboard:  handlers.NewDashboardHandler(usecase.NewDashboardUseCase(workOrderRepo, quoteRepo)),
		registry:   handlers.NewRegistryHandler(usecase.NewRegistryUseCase(registryRepo)),
	}

	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addLifecycleRoutes(v1, h)
	return router, nil
}

func openRecordStore(ctx context.Context, cfg config.StoreConfig) (interfaces.IRecordStore, error) {
	log.Printf("[store][bootstrap] driver=%s", cfg.Driver)
	switch cfg.Driver {
	case config.DriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, fmt.Errorf("dynamodb config: %w", err)
		}
		s := recordstore.NewDynamoStore(ddb, cfg.DynamoDB.Table)
		if err := s.EnsureBackingTable(ctx); err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverPostgres, config.DriverSQLite:
		db, err := database.OpenGorm(cfg.Driver, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return recordstore.NewGormStore(db)
	default:
		log.Printf("[store][bootstrap] using in-memory store, data is lost on restart")
		return recordstore.NewMemoryStore(), nil
	}
}

func openEventPublisher(ctx context.Context, cfg config.EventsConfig) interfaces.IEventPublisher {
	if cfg.AMQPURL == "" {
		log.Printf("[events][bootstrap] no AMQP url configured, events disabled")
		return messaging.NoopPublisher{}
	}
	p, err := messaging.DialRabbitPublisher(ctx, cfg.AMQPURL, cfg.Exchange)
	if err != nil {
		// Events are best effort; the service runs without a broker.
		log.Printf("[events][bootstrap] broker unavailable, events disabled: %v", err)
		return messaging.NoopPublisher{}
	}
	return p
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
