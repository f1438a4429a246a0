package interfaces

import (
	"context"
	"gestao_integrada/internal/domain/entities"
)

// IQuoteRepository abstracts persistence for Quote.
//
// UpdateStatus is a raw primitive: it does not check transition legality.

type IQuoteRepository interface {
	List(ctx context.Context) ([]entities.Quote, error)
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	UpdateStatus(ctx context.Context, visualID string, status entities.QuoteStatus) (bool, error)
}
