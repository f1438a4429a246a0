package usecase

import (
	"context"
	"log"

	"gestao_integrada/internal/domain/entities"
	"gestao_integrada/internal/usecase/interfaces"
)

type IRegistryUseCase interface {
	List(ctx context.Context, table entities.RegistryTable) ([]entities.RegistryRow, error)
	Replace(ctx context.Context, table entities.RegistryTable, rows []entities.RegistryRow) error
}

type RegistryUseCase struct {
	repo interfaces.IRegistryRepository
}

var _ IRegistryUseCase = (*RegistryUseCase)(nil)

func NewRegistryUseCase(repo interfaces.IRegistryRepository) *RegistryUseCase {
	return &RegistryUseCase{repo: repo}
}

func (u *RegistryUseCase) List(ctx context.Context, table entities.RegistryTable) ([]entities.RegistryRow, error) {
	if !table.Valid() {
		return nil, ErrInvalidRegistryTable
	}
	return u.repo.List(ctx, table)
}

// Replace rewrites the whole table, last writer wins.
func (u *RegistryUseCase) Replace(ctx context.Context, table entities.RegistryTable, rows []entities.RegistryRow) error {
	if !table.Valid() {
		return ErrInvalidRegistryTable
	}
	if err := u.repo.Replace(ctx, table, rows); err != nil {
		log.Printf("[registry][usecase] replace failed table=%s err=%v", table, err)
		return err
	}
	log.Printf("[registry][usecase] replace success table=%s rows=%d", table, len(rows))
	return nil
}
