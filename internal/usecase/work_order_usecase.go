package usecase

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"gestao_integrada/internal/domain/entities"
	"gestao_integrada/internal/usecase/interfaces"
)

// CreateWorkOrderInput carries the work order form. Empty ServiceType and
// Description fall back to the quote's values.
type CreateWorkOrderInput struct {
	QuoteVisualID string
	ServiceType   entities.ServiceType
	Description   string
	ARTRegion     string
	ARTNumber     string
	ARTPending    bool
}

// IWorkOrderUseCase exposes work order operations:
//   - open a work order from a quote, flagging the quote CONVERTED
//   - list the technician queue
//   - apply panel edits (report status, PDF link, technician) in bulk
type IWorkOrderUseCase interface {
	CreateWorkOrder(ctx context.Context, in CreateWorkOrderInput) (entities.WorkOrder, error)
	ListWorkOrders(ctx context.Context, reportStatuses []entities.ReportStatus) ([]entities.WorkOrder, error)
	BulkUpdateReportFields(ctx context.Context, edits []entities.ReportEdit) (int, error)
}

type WorkOrderUseCase struct {
	repo      interfaces.IWorkOrderRepository
	quoteRepo interfaces.IQuoteRepository
	events    interfaces.IEventPublisher
	now       func() time.Time
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(repo interfaces.IWorkOrderRepository, quoteRepo interfaces.IQuoteRepository, events interfaces.IEventPublisher) *WorkOrderUseCase {
	return &WorkOrderUseCase{repo: repo, quoteRepo: quoteRepo, events: events, now: time.Now}
}

// CreateWorkOrder converts a quote into a work order.
//
// The quote is resolved from the (possibly cached) quote snapshot. The work
// order row is appended first and the quote flagged CONVERTED second; when
// the second step fails the work order is returned together with a
// *ConversionSyncError and nothing is rolled back.
func (u *WorkOrderUseCase) CreateWorkOrder(ctx context.Context, in CreateWorkOrderInput) (entities.WorkOrder, error) {
	quoteID := strings.TrimSpace(in.QuoteVisualID)
	if quoteID == "" {
		return entities.WorkOrder{}, ErrInvalidQuoteID
	}

	quotes, err := u.quoteRepo.List(ctx)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	q, ok := findQuote(quotes, quoteID)
	if !ok {
		return entities.WorkOrder{}, ErrQuoteNotFound
	}
	if !q.Status.Convertible() {
		log.Printf("[work_order][usecase] quote not eligible visual_id=%s status=%s", quoteID, q.Status)
		return entities.WorkOrder{}, ErrQuoteNotEligible
	}

	serviceType := in.ServiceType
	if serviceType == "" {
		serviceType = q.ServiceType
	}
	if !serviceType.Valid() {
		return entities.WorkOrder{}, ErrInvalidServiceType
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		description = q.Description
	}

	art, err := BuildARTCode(in.ARTRegion, in.ARTNumber, in.ARTPending)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	now := u.now()
	w := entities.WorkOrder{
		ID:                strconv.FormatInt(now.Unix(), 10),
		ClientName:        q.ClientName,
		ARTCode:           art,
		ServiceType:       serviceType,
		Status:            entities.WorkOrderStatusPending,
		CreatedAt:         now.Format(entities.DateTimeLayout),
		PDFLink:           entities.WorkOrderPDFLinkPlaceholder,
		Description:       description,
		HistoryNote:       entities.WorkOrderHistoryInitial,
		SourceQuoteID:     q.VisualID,
		ReportStatus:      entities.ReportStatusNone,
		PhysicalPartition: entities.WorkOrderPartitionNone,
	}

	created, err := u.repo.Create(ctx, w)
	if err != nil {
		log.Printf("[work_order][usecase] append failed quote=%s err=%v", quoteID, err)
		return entities.WorkOrder{}, err
	}

	flagged, err := u.quoteRepo.UpdateStatus(ctx, quoteID, entities.QuoteStatusConverted)
	if err == nil && !flagged {
		err = ErrQuoteNotFound
	}
	if err != nil {
		log.Printf("[work_order][usecase] quote status sync failed work_order=%s quote=%s err=%v", created.ID, quoteID, err)
		return created, &ConversionSyncError{WorkOrderID: created.ID, QuoteVisualID: quoteID, Err: err}
	}

	log.Printf("[work_order][usecase] create success id=%s quote=%s art=%s", created.ID, quoteID, created.ARTCode)
	publish(ctx, u.events, interfaces.EventWorkOrderCreated, created)
	publish(ctx, u.events, interfaces.EventQuoteStatusChanged, StatusChange{VisualID: quoteID, From: q.Status, To: entities.QuoteStatusConverted})
	return created, nil
}

// ListWorkOrders keeps orders whose report status is in reportStatuses; an
// empty filter returns every order.
func (u *WorkOrderUseCase) ListWorkOrders(ctx context.Context, reportStatuses []entities.ReportStatus) ([]entities.WorkOrder, error) {
	wanted := make(map[entities.ReportStatus]bool, len(reportStatuses))
	for _, s := range reportStatuses {
		if !s.Valid() {
			return nil, ErrInvalidReportStatus
		}
		wanted[s] = true
	}

	orders, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(wanted) == 0 {
		return orders, nil
	}
	out := make([]entities.WorkOrder, 0, len(orders))
	for _, w := range orders {
		if wanted[w.ReportStatus] {
			out = append(out, w)
		}
	}
	return out, nil
}

// BulkUpdateReportFields applies panel edits to a full snapshot of the work
// orders and writes the whole table back. Edits for unknown ids are skipped.
// Rows written by someone else between the read and the write are lost.
// It returns how many rows were edited.
func (u *WorkOrderUseCase) BulkUpdateReportFields(ctx context.Context, edits []entities.ReportEdit) (int, error) {
	if len(edits) == 0 {
		return 0, nil
	}
	for _, e := range edits {
		if !e.ReportStatus.Valid() {
			return 0, ErrInvalidReportStatus
		}
	}

	orders, err := u.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	index := make(map[string]int, len(orders))
	for i, w := range orders {
		if _, dup := index[w.ID]; !dup {
			index[w.ID] = i
		}
	}

	applied := 0
	for _, e := range edits {
		i, ok := index[strings.TrimSpace(e.ID)]
		if !ok {
			log.Printf("[work_order][usecase] report edit skipped id=%s (not found)", e.ID)
			continue
		}
		orders[i].ReportStatus = e.ReportStatus
		orders[i].PDFLink = e.PDFLink
		orders[i].AssignedTechnician = e.AssignedTechnician
		applied++
	}

	if err := u.repo.ReplaceAll(ctx, orders); err != nil {
		log.Printf("[work_order][usecase] bulk replace failed edits=%d err=%v", len(edits), err)
		return 0, err
	}
	log.Printf("[work_order][usecase] bulk report update applied=%d skipped=%d", applied, len(edits)-applied)
	publish(ctx, u.events, interfaces.EventWorkOrderReportEdit, edits)
	return applied, nil
}
