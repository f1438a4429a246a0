package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidClient        = errors.New("client is required")
	ErrInvalidDescription   = errors.New("description is required")
	ErrInvalidServiceType   = errors.New("invalid service type")
	ErrInvalidIssueDate     = errors.New("invalid issue date")
	ErrInvalidQuoteID       = errors.New("invalid quote id")
	ErrInvalidQuoteStatus   = errors.New("invalid quote status")
	ErrInvalidART           = errors.New("invalid ART number")
	ErrInvalidARTRegion     = errors.New("invalid ART region")
	ErrInvalidReportStatus  = errors.New("invalid report status")
	ErrInvalidRegistryTable = errors.New("invalid registry table")

	ErrQuoteNotFound = errors.New("quote not found")

	ErrInvalidTransition = errors.New("quote status transition not allowed")
	ErrQuoteNotEligible  = errors.New("quote not eligible for conversion")

	// ErrQuoteStatusSync marks a conversion whose work order was stored but whose
	// quote could not be flagged CONVERTED.
	ErrQuoteStatusSync = errors.New("work order created but quote status not updated")
)

// ConversionSyncError reports the orphan left by a half-done conversion.
// Nothing is rolled back: the work order stays and the quote keeps its status.
type ConversionSyncError struct {
	WorkOrderID   string
	QuoteVisualID string
	Err           error
}

func (e *ConversionSyncError) Error() string {
	return fmt.Sprintf("%v: work_order=%s quote=%s: %v", ErrQuoteStatusSync, e.WorkOrderID, e.QuoteVisualID, e.Err)
}

func (e *ConversionSyncError) Is(target error) bool {
	return target == ErrQuoteStatusSync
}

func (e *ConversionSyncError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is a user input problem.
func IsValidationError(err error) bool {
	for _, v := range []error{
		ErrInvalidClient, ErrInvalidDescription, ErrInvalidServiceType, ErrInvalidIssueDate,
		ErrInvalidQuoteID, ErrInvalidQuoteStatus, ErrInvalidART, ErrInvalidARTRegion,
		ErrInvalidReportStatus, ErrInvalidRegistryTable,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
