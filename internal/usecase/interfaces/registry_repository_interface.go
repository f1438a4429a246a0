package interfaces

import (
	"context"
	"gestao_integrada/internal/domain/entities"
)

// IRegistryRepository abstracts the master-data tables (technicians, vehicles, clients).

type IRegistryRepository interface {
	List(ctx context.Context, table entities.RegistryTable) ([]entities.RegistryRow, error)
	Replace(ctx context.Context, table entities.RegistryTable, rows []entities.RegistryRow) error
}
