package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"

	request "gestao_integrada/internal/adapter/http/dto/request"
	response "gestao_integrada/internal/adapter/http/dto/response"
	"gestao_integrada/internal/domain/entities"
	"gestao_integrada/internal/usecase"
	"gestao_integrada/pkg"

	"github.com/gin-gonic/gin"
)

// QuoteHandler handles HTTP requests for quotes (orçamentos).
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	issueDate, err := payload.ResolveIssueDate()
	if err != nil {
		writeError(c, pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest))
		return
	}

	q, err := h.usecase.CreateQuote(c.Request.Context(), payload.ClientName, issueDate, payload.ResolveServiceType(), payload.Description)
	if err != nil {
		log.Printf("[quote][handler] create failed client=%q err=%v", payload.ClientName, err)
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(q))
}

// PreviewReference shows the reference a quote issued on issue_date would get.
func (h *QuoteHandler) PreviewReference(c *gin.Context) {
	issueDate, err := request.ParseIssueDate(c.Query("issue_date"))
	if err != nil {
		writeError(c, pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest))
		return
	}
	preview, err := h.usecase.PreviewReference(c.Request.Context(), issueDate)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, preview)
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	status := entities.QuoteStatus(strings.ToUpper(strings.TrimSpace(c.Query("status"))))
	if status == "ALL" {
		status = ""
	}
	quotes, err := h.usecase.ListQuotes(c.Request.Context(), status)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) ListEligible(c *gin.Context) {
	quotes, err := h.usecase.ListEligibleForConversion(c.Request.Context())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.ApproveQuote)
}

func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.RejectQuote)
}

func (h *QuoteHandler) RevertQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.RevertQuote)
}

func (h *QuoteHandler) patchQuoteStatus(
	c *gin.Context,
	updater func(ctx context.Context, visualID string) (entities.Quote, error),
) {
	visualID := strings.TrimSpace(c.Param("visual_id"))
	q, err := updater(c.Request.Context(), visualID)
	if err != nil {
		log.Printf("[quote][handler] status patch failed visual_id=%s err=%v", visualID, err)
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}
