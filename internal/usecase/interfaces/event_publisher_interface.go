package interfaces

import "context"

// Event types emitted after successful mutations.
const (
	EventQuoteCreated        = "quote.created"
	EventQuoteStatusChanged  = "quote.status_changed"
	EventWorkOrderCreated    = "work_order.created"
	EventWorkOrderReportEdit = "work_order.report_updated"
)

// IEventPublisher broadcasts domain events (e.g. to RabbitMQ).
type IEventPublisher interface {
	Publish(ctx context.Context, eventType string, payload any) error
}
