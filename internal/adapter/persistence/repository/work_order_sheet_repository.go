package repository

import (
	"context"

	"gestao_integrada/internal/domain/entities"
	"gestao_integrada/internal/usecase/interfaces"
)

// WorkOrderSheetRepository persists work orders as rows of the "work_orders" table.
type WorkOrderSheetRepository struct {
	store interfaces.IRecordStore
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderSheetRepository)(nil)

func NewWorkOrderSheetRepository(store interfaces.IRecordStore) *WorkOrderSheetRepository {
	return &WorkOrderSheetRepository{store: store}
}

func (r *WorkOrderSheetRepository) List(ctx context.Context) ([]entities.WorkOrder, error) {
	rows, err := r.store.ReadAll(ctx, TableWorkOrders)
	if err != nil {
		return nil, err
	}
	out := make([]entities.WorkOrder, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromWorkOrderRow(row))
	}
	return out, nil
}

func (r *WorkOrderSheetRepository) Create(ctx context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
	header, err := r.store.Header(ctx, TableWorkOrders)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if err := r.store.Append(ctx, TableWorkOrders, orderCells(header, toWorkOrderRow(w))); err != nil {
		return entities.WorkOrder{}, err
	}
	return w, nil
}

// ReplaceAll rewrites the whole table. Rows added by someone else since
// orders was read are lost. Columns outside the work order fields keep the
// cells of the stored row with the same id.
func (r *WorkOrderSheetRepository) ReplaceAll(ctx context.Context, orders []entities.WorkOrder) error {
	header, err := r.store.Header(ctx, TableWorkOrders)
	if err != nil {
		return err
	}
	current, err := r.store.ReadAll(ctx, TableWorkOrders)
	if err != nil {
		return err
	}
	// duplicated ids pair up with stored rows in order of appearance
	stored := make(map[string][]interfaces.Row, len(current))
	for _, row := range current {
		id := row["id"]
		stored[id] = append(stored[id], row)
	}

	rows := make([][]string, 0, len(orders))
	for _, w := range orders {
		values := toWorkOrderRow(w)
		if prev := stored[w.ID]; len(prev) > 0 {
			values = overlay(prev[0], values)
			stored[w.ID] = prev[1:]
		}
		rows = append(rows, orderCells(header, values))
	}
	return r.store.ReplaceAll(ctx, TableWorkOrders, header, rows)
}

func toWorkOrderRow(w entities.WorkOrder) interfaces.Row {
	return interfaces.Row{
		"id":                  w.ID,
		"client_name":         w.ClientName,
		"art_code":            w.ARTCode,
		"service_type":        string(w.ServiceType),
		"status":              w.Status,
		"created_at":          w.CreatedAt,
		"pdf_link":            w.PDFLink,
		"description":         w.Description,
		"history_note":        w.HistoryNote,
		"source_quote_id":     w.SourceQuoteID,
		"assigned_technician": w.AssignedTechnician,
		"report_status":       string(w.ReportStatus),
		"correction_date":     w.CorrectionDate,
		"corrected_by":        w.CorrectedBy,
		"delivery_date":       w.DeliveryDate,
		"physical_partition":  w.PhysicalPartition,
	}
}

func fromWorkOrderRow(row interfaces.Row) entities.WorkOrder {
	return entities.WorkOrder{
		ID:                 row["id"],
		ClientName:         row["client_name"],
		ARTCode:            row["art_code"],
		ServiceType:        entities.ServiceType(row["service_type"]),
		Status:             row["status"],
		CreatedAt:          row["created_at"],
		PDFLink:            row["pdf_link"],
		Description:        row["description"],
		HistoryNote:        row["history_note"],
		SourceQuoteID:      row["source_quote_id"],
		AssignedTechnician: row["assigned_technician"],
		ReportStatus:       entities.ReportStatus(row["report_status"]),
		CorrectionDate:     row["correction_date"],
		CorrectedBy:        row["corrected_by"],
		DeliveryDate:       row["delivery_date"],
		PhysicalPartition:  row["physical_partition"],
	}
}
