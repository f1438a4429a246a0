package repository

import (
	"context"
	"strconv"

	"gestao_integrada/internal/domain/entities"
	"gestao_integrada/internal/usecase/interfaces"
)

// QuoteSheetRepository persists quotes as rows of the "quotes" table.
type QuoteSheetRepository struct {
	store interfaces.IRecordStore
}

var _ interfaces.IQuoteRepository = (*QuoteSheetRepository)(nil)

func NewQuoteSheetRepository(store interfaces.IRecordStore) *QuoteSheetRepository {
	return &QuoteSheetRepository{store: store}
}

func (r *QuoteSheetRepository) List(ctx context.Context) ([]entities.Quote, error) {
	rows, err := r.store.ReadAll(ctx, TableQuotes)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Quote, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromQuoteRow(row))
	}
	return out, nil
}

// Create appends q laid out by the table's live header.
func (r *QuoteSheetRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	header, err := r.store.Header(ctx, TableQuotes)
	if err != nil {
		return entities.Quote{}, err
	}
	if err := r.store.Append(ctx, TableQuotes, orderCells(header, toQuoteRow(q))); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

// UpdateStatus rewrites the status cell of the row holding visualID.
func (r *QuoteSheetRepository) UpdateStatus(ctx context.Context, visualID string, status entities.QuoteStatus) (bool, error) {
	col, err := columnIndex(ctx, r.store, TableQuotes, "status")
	if err != nil {
		return false, err
	}
	return r.store.FindAndSetCell(ctx, TableQuotes, visualID, col, string(status))
}

func toQuoteRow(q entities.Quote) interfaces.Row {
	return interfaces.Row{
		"visual_id":    q.VisualID,
		"client_name":  q.ClientName,
		"issue_date":   q.IssueDate,
		"rt_reference": strconv.Itoa(q.RTReference),
		"sequence":     strconv.Itoa(q.Sequence),
		"service_type": string(q.ServiceType),
		"description":  q.Description,
		"status":       string(q.Status),
	}
}

func fromQuoteRow(row interfaces.Row) entities.Quote {
	return entities.Quote{
		VisualID:    row["visual_id"],
		ClientName:  row["client_name"],
		IssueDate:   row["issue_date"],
		RTReference: atoiOrZero(row["rt_reference"]),
		Sequence:    atoiOrZero(row["sequence"]),
		ServiceType: entities.ServiceType(row["service_type"]),
		Description: row["description"],
		Status:      entities.QuoteStatus(row["status"]),
	}
}
