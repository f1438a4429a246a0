package repository

import (
	"context"
	"testing"

	"gestao_integrada/internal/adapter/persistence/recordstore"
	"gestao_integrada/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func newSchemaStore(t *testing.T) *recordstore.MemoryStore {
	t.Helper()
	s := recordstore.NewMemoryStore()
	require.NoError(t, EnsureSchema(context.Background(), s))
	return s
}

func TestEnsureSchema_CreatesEveryTableOnce(t *testing.T) {
	ctx := context.Background()
	s := newSchemaStore(t)

	for _, tbl := range Schema {
		header, err := s.Header(ctx, tbl.Table)
		require.NoError(t, err)
		require.Equal(t, tbl.Header, header)
	}

	require.NoError(t, s.Append(ctx, TableClients, []string{"Acme"}))
	require.NoError(t, EnsureSchema(ctx, s))
	rows, err := s.ReadAll(ctx, TableClients)
	require.NoError(t, err)
	require.Len(t, rows, 1, "bootstrap must not wipe existing tables")
}

func TestQuoteSheetRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewQuoteSheetRepository(newSchemaStore(t))

	q := entities.Quote{
		VisualID:    "45361-1-10032024",
		ClientName:  "Acme",
		IssueDate:   "10/03/2024",
		RTReference: 45361,
		Sequence:    1,
		ServiceType: entities.ServiceTypeProject,
		Description: "Panel retrofit",
		Status:      entities.QuoteStatusPending,
	}
	_, err := repo.Create(ctx, q)
	require.NoError(t, err)

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []entities.Quote{q}, got)
}

func TestQuoteSheetRepository_ListToleratesBadNumbers(t *testing.T) {
	ctx := context.Background()
	s := newSchemaStore(t)
	require.NoError(t, s.Append(ctx, TableQuotes, []string{"x", "Acme", "10/03/2024", "", "abc", "Project", "d", "PENDING"}))

	got, err := NewQuoteSheetRepository(s).List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Zero(t, got[0].RTReference)
	require.Zero(t, got[0].Sequence)
}

func TestQuoteSheetRepository_UpdateStatusUsesHeaderPosition(t *testing.T) {
	ctx := context.Background()
	s := recordstore.NewMemoryStore()
	// status placed first: a fixed column position would corrupt description.
	reordered := []string{"status", "visual_id", "client_name", "issue_date", "rt_reference", "sequence", "service_type", "description"}
	require.NoError(t, s.ReplaceAll(ctx, TableQuotes, reordered, [][]string{
		{"PENDING", "45361-1-10032024", "Acme", "10/03/2024", "45361", "1", "Project", "scope"},
	}))
	repo := NewQuoteSheetRepository(s)

	ok, err := repo.UpdateStatus(ctx, "45361-1-10032024", entities.QuoteStatusApproved)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, entities.QuoteStatusApproved, got[0].Status)
	require.Equal(t, "scope", got[0].Description)

	ok, err = repo.UpdateStatus(ctx, "missing", entities.QuoteStatusApproved)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestQuoteSheetRepository_CreateFollowsLiveHeader(t *testing.T) {
	ctx := context.Background()
	s := recordstore.NewMemoryStore()
	reordered := []string{"status", "visual_id", "client_name", "issue_date", "rt_reference", "sequence", "service_type", "description"}
	require.NoError(t, s.ReplaceAll(ctx, TableQuotes, reordered, nil))
	repo := NewQuoteSheetRepository(s)

	q := entities.Quote{
		VisualID:    "45361-1-10032024",
		ClientName:  "Acme",
		IssueDate:   "10/03/2024",
		RTReference: 45361,
		Sequence:    1,
		ServiceType: entities.ServiceTypeProject,
		Description: "Panel retrofit",
		Status:      entities.QuoteStatusPending,
	}
	_, err := repo.Create(ctx, q)
	require.NoError(t, err)

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []entities.Quote{q}, got)

	rows, err := s.ReadAll(ctx, TableQuotes)
	require.NoError(t, err)
	require.Equal(t, "PENDING", rows[0]["status"])
}

func TestQuoteSheetRepository_CreateMissingTable(t *testing.T) {
	_, err := NewQuoteSheetRepository(recordstore.NewMemoryStore()).Create(context.Background(), entities.Quote{VisualID: "x"})
	require.ErrorIs(t, err, recordstore.ErrTableNotFound)
}
