package repository

import (
	"context"
	"fmt"

	"gestao_integrada/internal/domain/entities"
	"gestao_integrada/internal/usecase/interfaces"
)

var registryHeaders = map[entities.RegistryTable][]string{
	entities.RegistryTechnicians: TechniciansHeader,
	entities.RegistryVehicles:    VehiclesHeader,
	entities.RegistryClients:     ClientsHeader,
}

// RegistrySheetRepository reads and rewrites the master-data tables.
type RegistrySheetRepository struct {
	store interfaces.IRecordStore
}

var _ interfaces.IRegistryRepository = (*RegistrySheetRepository)(nil)

func NewRegistrySheetRepository(store interfaces.IRecordStore) *RegistrySheetRepository {
	return &RegistrySheetRepository{store: store}
}

func (r *RegistrySheetRepository) List(ctx context.Context, table entities.RegistryTable) ([]entities.RegistryRow, error) {
	if _, err := registryHeader(table); err != nil {
		return nil, err
	}
	rows, err := r.store.ReadAll(ctx, string(table))
	if err != nil {
		return nil, err
	}
	out := make([]entities.RegistryRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, entities.RegistryRow(row))
	}
	return out, nil
}

// Replace writes rows in the live header order; unknown fields are dropped.
func (r *RegistrySheetRepository) Replace(ctx context.Context, table entities.RegistryTable, rows []entities.RegistryRow) error {
	if _, err := registryHeader(table); err != nil {
		return err
	}
	header, err := r.store.Header(ctx, string(table))
	if err != nil {
		return err
	}
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, orderCells(header, row))
	}
	return r.store.ReplaceAll(ctx, string(table), header, cells)
}

func registryHeader(table entities.RegistryTable) ([]string, error) {
	header, ok := registryHeaders[table]
	if !ok {
		return nil, fmt.Errorf("unknown registry table %q", table)
	}
	return header, nil
}
