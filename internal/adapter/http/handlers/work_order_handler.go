package handlers

import (
	"errors"
	"log"
	"net/http"

	request "gestao_integrada/internal/adapter/http/dto/request"
	response "gestao_integrada/internal/adapter/http/dto/response"
	"gestao_integrada/internal/usecase"

	"github.com/gin-gonic/gin"
)

// WorkOrderHandler handles HTTP requests for work orders and the technician panel.
type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

// CreateWorkOrder converts a quote. A half-done conversion answers 502 with
// the orphan work order in the body so the operator can fix the quote.
func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	var payload request.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	w, err := h.usecase.CreateWorkOrder(c.Request.Context(), payload.ToInput())
	var syncErr *usecase.ConversionSyncError
	switch {
	case errors.As(err, &syncErr):
		log.Printf("[work_order][handler] partial conversion work_order=%s quote=%s err=%v", syncErr.WorkOrderID, syncErr.QuoteVisualID, syncErr.Err)
		c.JSON(http.StatusBadGateway, response.ConversionSyncResponse{
			Code:          "QUOTE_STATUS_SYNC_FAILED",
			Message:       "Work order created but quote status was not updated",
			QuoteVisualID: syncErr.QuoteVisualID,
			WorkOrder:     response.FromWorkOrder(w),
		})
		return
	case err != nil:
		log.Printf("[work_order][handler] create failed quote=%s err=%v", payload.QuoteVisualID, err)
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromWorkOrder(w))
}

// ListWorkOrders filters by report_status (repeatable or comma separated).
// Without a filter it returns the technician queue.
func (h *WorkOrderHandler) ListWorkOrders(c *gin.Context) {
	statuses := request.ParseReportStatuses(c.QueryArray("report_status"))
	if c.Query("all") == "true" {
		statuses = nil
	}
	orders, err := h.usecase.ListWorkOrders(c.Request.Context(), statuses)
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrders(orders))
}

func (h *WorkOrderHandler) UpdateReports(c *gin.Context) {
	var payload request.BulkReportUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	applied, err := h.usecase.BulkUpdateReportFields(c.Request.Context(), payload.ToEdits())
	if err != nil {
		log.Printf("[work_order][handler] report update failed edits=%d err=%v", len(payload.Edits), err)
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.BulkReportUpdateResponse{Applied: applied})
}
