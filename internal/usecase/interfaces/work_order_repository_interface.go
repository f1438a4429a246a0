package interfaces

import (
	"context"
	"gestao_integrada/internal/domain/entities"
)

// IWorkOrderRepository abstracts persistence for WorkOrder.

type IWorkOrderRepository interface {
	List(ctx context.Context) ([]entities.WorkOrder, error)
	Create(ctx context.Context, w entities.WorkOrder) (entities.WorkOrder, error)
	ReplaceAll(ctx context.Context, orders []entities.WorkOrder) error
}
