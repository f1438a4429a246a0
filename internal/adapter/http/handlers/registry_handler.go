package handlers

import (
	"log"
	"net/http"

	request "gestao_integrada/internal/adapter/http/dto/request"
	response "gestao_integrada/internal/adapter/http/dto/response"
	"gestao_integrada/internal/domain/entities"
	"gestao_integrada/internal/usecase"

	"github.com/gin-gonic/gin"
)

// RegistryHandler serves the master-data tables (technicians, vehicles, clients).
type RegistryHandler struct {
	usecase usecase.IRegistryUseCase
}

func NewRegistryHandler(uc usecase.IRegistryUseCase) *RegistryHandler {
	return &RegistryHandler{usecase: uc}
}

func (h *RegistryHandler) List(c *gin.Context) {
	table := entities.RegistryTable(c.Param("table"))
	rows, err := h.usecase.List(c.Request.Context(), table)
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	out := make([]map[string]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r)
	}
	c.JSON(http.StatusOK, response.RegistryResponse{Table: string(table), Rows: out})
}

// Replace overwrites the whole table with the submitted rows.
func (h *RegistryHandler) Replace(c *gin.Context) {
	table := entities.RegistryTable(c.Param("table"))
	var payload request.ReplaceRegistryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	rows := payload.ToRows()
	if err := h.usecase.Replace(c.Request.Context(), table, rows); err != nil {
		log.Printf("[registry][handler] replace failed table=%s err=%v", table, err)
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.RegistryResponse{Table: string(table), Rows: payload.Rows})
}
