package handlers

import (
	"errors"
	"net/http"

	"gestao_integrada/internal/adapter/persistence/recordstore"
	"gestao_integrada/internal/usecase"
	"gestao_integrada/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapStoreError covers failures every handler can hit: bad input the use
// case rejected and record store outages.
func mapStoreError(err error) *pkg.AppError {
	switch {
	case usecase.IsValidationError(err):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, recordstore.ErrRetriesExhausted):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Record store unavailable, try again later", err, http.StatusBadGateway)
	case errors.Is(err, recordstore.ErrTableNotFound):
		return pkg.NewDomainError("STORE_NOT_READY", "Record store schema missing", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Quote status transition not allowed", err, http.StatusConflict)
	default:
		return mapStoreError(err)
	}
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotEligible):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_ELIGIBLE", "Quote cannot be converted", http.StatusConflict)
	default:
		return mapStoreError(err)
	}
}
