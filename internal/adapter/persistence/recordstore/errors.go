package recordstore

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/smithy-go"
)

var (
	ErrTableNotFound    = errors.New("table not found")
	ErrRetriesExhausted = errors.New("retries exhausted")
	ErrColumnOutOfRange = errors.New("column out of range")
	ErrAppendContention = errors.New("append contention")
)

// StatusError carries a transport status code for backends that do not
// speak smithy (the memory store uses it to simulate remote failures).
type StatusError struct {
	StatusCode int
	Err        error
}

func (e *StatusError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("status %d", e.StatusCode)
}

func (e *StatusError) Unwrap() error { return e.Err }

func (e *StatusError) HTTPStatusCode() int { return e.StatusCode }

// StoreError is the failure surfaced to use cases once retries are over.
type StoreError struct {
	Op    string
	Table string
	Err   error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("record store %s %s: %v", e.Op, e.Table, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// throttlingCodes are API error codes DynamoDB returns with a 400 status
// that still mean "try again later".
var throttlingCodes = map[string]bool{
	"ThrottlingException":                    true,
	"ProvisionedThroughputExceededException": true,
	"RequestLimitExceeded":                   true,
	"InternalServerError":                    true,
}

// IsTransient classifies err by its structured status: 429 and 5xx
// responses and throttling API codes are transient, everything else is not.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var withStatus interface{ HTTPStatusCode() int }
	if errors.As(err, &withStatus) {
		code := withStatus.HTTPStatusCode()
		if code == http.StatusTooManyRequests || code >= http.StatusInternalServerError {
			return true
		}
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return throttlingCodes[apiErr.ErrorCode()]
	}
	return false
}
