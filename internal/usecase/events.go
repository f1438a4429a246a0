package usecase

import (
	"context"
	"log"

	"gestao_integrada/internal/usecase/interfaces"
)

// publish is best effort: a broker failure never fails the operation.
func publish(ctx context.Context, events interfaces.IEventPublisher, eventType string, payload any) {
	if events == nil {
		return
	}
	if err := events.Publish(ctx, eventType, payload); err != nil {
		log.Printf("[events][usecase] publish failed type=%s err=%v", eventType, err)
	}
}
