package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"gestao_integrada/internal/domain/entities"
	"gestao_integrada/internal/domain/reference"
	"gestao_integrada/internal/usecase/interfaces"
)

// ReferencePreview is the identifier a quote issued on a date would receive.
type ReferencePreview struct {
	RTReference int    `json:"rt_reference"`
	Sequence    int    `json:"sequence"`
	VisualID    string `json:"visual_id"`
}

// StatusChange is published on every quote status move.
type StatusChange struct {
	VisualID string               `json:"visual_id"`
	From     entities.QuoteStatus `json:"from"`
	To       entities.QuoteStatus `json:"to"`
}

// IQuoteUseCase exposes the quote side of the lifecycle:
//   - issue a quote with its RT reference and per-day sequence
//   - approve / reject / revert through the transition table
//   - list quotes, optionally those still convertible into work orders
type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, client string, issueDate time.Time, serviceType entities.ServiceType, description string) (entities.Quote, error)
	PreviewReference(ctx context.Context, issueDate time.Time) (ReferencePreview, error)
	SetQuoteStatus(ctx context.Context, visualID string, status entities.QuoteStatus) (entities.Quote, error)
	ApproveQuote(ctx context.Context, visualID string) (entities.Quote, error)
	RejectQuote(ctx context.Context, visualID string) (entities.Quote, error)
	RevertQuote(ctx context.Context, visualID string) (entities.Quote, error)
	ListQuotes(ctx context.Context, status entities.QuoteStatus) ([]entities.Quote, error)
	ListEligibleForConversion(ctx context.Context) ([]entities.Quote, error)
}

type QuoteUseCase struct {
	repo   interfaces.IQuoteRepository
	events interfaces.IEventPublisher
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, events interfaces.IEventPublisher) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, events: events}
}

// CreateQuote issues a PENDING quote. The sequence is computed from the
// current quote snapshot, so concurrent callers may collide.
func (u *QuoteUseCase) CreateQuote(ctx context.Context, client string, issueDate time.Time, serviceType entities.ServiceType, description string) (entities.Quote, error) {
	client = strings.TrimSpace(client)
	description = strings.TrimSpace(description)
	if client == "" {
		return entities.Quote{}, ErrInvalidClient
	}
	if description == "" {
		return entities.Quote{}, ErrInvalidDescription
	}
	if !serviceType.Valid() {
		return entities.Quote{}, ErrInvalidServiceType
	}
	if issueDate.IsZero() {
		return entities.Quote{}, ErrInvalidIssueDate
	}

	existing, err := u.repo.List(ctx)
	if err != nil {
		return entities.Quote{}, err
	}
	ref := previewFor(existing, issueDate)

	q := entities.Quote{
		VisualID:    ref.VisualID,
		ClientName:  client,
		IssueDate:   issueDate.Format(entities.DateLayout),
		RTReference: ref.RTReference,
		Sequence:    ref.Sequence,
		ServiceType: serviceType,
		Description: description,
		Status:      entities.QuoteStatusPending,
	}
	created, err := u.repo.Create(ctx, q)
	if err != nil {
		log.Printf("[quote][usecase] create failed visual_id=%s err=%v", q.VisualID, err)
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] create success visual_id=%s client=%q", created.VisualID, created.ClientName)
	publish(ctx, u.events, interfaces.EventQuoteCreated, created)
	return created, nil
}

func (u *QuoteUseCase) PreviewReference(ctx context.Context, issueDate time.Time) (ReferencePreview, error) {
	if issueDate.IsZero() {
		return ReferencePreview{}, ErrInvalidIssueDate
	}
	existing, err := u.repo.List(ctx)
	if err != nil {
		return ReferencePreview{}, err
	}
	return previewFor(existing, issueDate), nil
}

// SetQuoteStatus moves a quote along the transition table. CONVERTED cannot be
// requested here: it is set by work order creation only.
func (u *QuoteUseCase) SetQuoteStatus(ctx context.Context, visualID string, status entities.QuoteStatus) (entities.Quote, error) {
	visualID = strings.TrimSpace(visualID)
	if visualID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if !status.Valid() {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}

	quotes, err := u.repo.List(ctx)
	if err != nil {
		return entities.Quote{}, err
	}
	q, ok := findQuote(quotes, visualID)
	if !ok {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if !q.Status.CanTransitionTo(status) {
		log.Printf("[quote][usecase] transition refused visual_id=%s from=%s to=%s", visualID, q.Status, status)
		return entities.Quote{}, ErrInvalidTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, visualID, status)
	if err != nil {
		return entities.Quote{}, err
	}
	if !updated {
		return entities.Quote{}, ErrQuoteNotFound
	}
	log.Printf("[quote][usecase] status changed visual_id=%s from=%s to=%s", visualID, q.Status, status)
	publish(ctx, u.events, interfaces.EventQuoteStatusChanged, StatusChange{VisualID: visualID, From: q.Status, To: status})

	q.Status = status
	return q, nil
}

func (u *QuoteUseCase) ApproveQuote(ctx context.Context, visualID string) (entities.Quote, error) {
	return u.SetQuoteStatus(ctx, visualID, entities.QuoteStatusApproved)
}

func (u *QuoteUseCase) RejectQuote(ctx context.Context, visualID string) (entities.Quote, error) {
	return u.SetQuoteStatus(ctx, visualID, entities.QuoteStatusCancelled)
}

func (u *QuoteUseCase) RevertQuote(ctx context.Context, visualID string) (entities.Quote, error) {
	return u.SetQuoteStatus(ctx, visualID, entities.QuoteStatusPending)
}

// ListQuotes filters by status; an empty status returns every quote.
func (u *QuoteUseCase) ListQuotes(ctx context.Context, status entities.QuoteStatus) ([]entities.Quote, error) {
	if status != "" && !status.Valid() {
		return nil, ErrInvalidQuoteStatus
	}
	quotes, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return quotes, nil
	}
	out := make([]entities.Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.Status == status {
			out = append(out, q)
		}
	}
	return out, nil
}

func (u *QuoteUseCase) ListEligibleForConversion(ctx context.Context) ([]entities.Quote, error) {
	quotes, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.Status.Convertible() {
			out = append(out, q)
		}
	}
	return out, nil
}

func previewFor(existing []entities.Quote, issueDate time.Time) ReferencePreview {
	rt := reference.DaySerial(issueDate)
	seq := reference.NextSequence(existing, issueDate)
	return ReferencePreview{
		RTReference: rt,
		Sequence:    seq,
		VisualID:    reference.BuildVisualID(rt, seq, issueDate),
	}
}

func findQuote(quotes []entities.Quote, visualID string) (entities.Quote, bool) {
	for _, q := range quotes {
		if q.VisualID == visualID {
			return q, true
		}
	}
	return entities.Quote{}, false
}
