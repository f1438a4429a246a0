package request

import (
	"errors"
	"strings"
	"time"

	"gestao_integrada/internal/domain/entities"
)

var ErrInvalidIssueDate = errors.New("issue_date must be YYYY-MM-DD")

// IssueDateLayout is the wire format for quote issue dates.
const IssueDateLayout = "2006-01-02"

type CreateQuoteRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	IssueDate   string `json:"issue_date" binding:"required"`
	ServiceType string `json:"service_type" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (r CreateQuoteRequest) ResolveIssueDate() (time.Time, error) {
	return ParseIssueDate(r.IssueDate)
}

func (r CreateQuoteRequest) ResolveServiceType() entities.ServiceType {
	return entities.ServiceType(strings.TrimSpace(r.ServiceType))
}

func ParseIssueDate(s string) (time.Time, error) {
	d, err := time.Parse(IssueDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidIssueDate
	}
	return d, nil
}
