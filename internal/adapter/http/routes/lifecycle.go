package routes

import (
	"gestao_integrada/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes     = "/quotes"
	PathWorkOrders = "/work-orders"
	PathDashboard  = "/dashboard"
	PathRegistry   = "/registry"
)

type lifecycleHandlers struct {
	quotes     *handlers.QuoteHandler
	workOrders *handlers.WorkOrderHandler
	dashboard  *handlers.DashboardHandler
	registry   *handlers.RegistryHandler
}

func addLifecycleRoutes(rg *gin.RouterGroup, h lifecycleHandlers) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", h.quotes.ListQuotes)
		quotes.POST("", h.quotes.CreateQuote)
		quotes.GET("/eligible", h.quotes.ListEligible)
		quotes.GET("/preview", h.quotes.PreviewReference)
		quotes.PATCH("/:visual_id/approve", h.quotes.ApproveQuote)
		quotes.PATCH("/:visual_id/reject", h.quotes.RejectQuote)
		quotes.PATCH("/:visual_id/revert", h.quotes.RevertQuote)
	}

	workOrders := rg.Group(PathWorkOrders)
	{
		workOrders.GET("", h.workOrders.ListWorkOrders)
		workOrders.POST("", h.workOrders.CreateWorkOrder)
		// Technician panel saves all edited rows at once.
		workOrders.PATCH("/report", h.workOrders.UpdateReports)
	}

	rg.GET(PathDashboard, h.dashboard.Summary)

	registry := rg.Group(PathRegistry)
	{
		registry.GET("/:table", h.registry.List)
		registry.PUT("/:table", h.registry.Replace)
	}
}
