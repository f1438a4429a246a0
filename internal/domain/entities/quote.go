package entities

// QuoteStatus represents the lifecycle of a quote (orçamento).
//
// Allowed moves:
//   - PENDING  -> APPROVED | CANCELLED
//   - APPROVED -> PENDING
//   - PENDING | APPROVED -> CONVERTED, only through work order creation
//
// CONVERTED and CANCELLED are terminal.
type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "PENDING"
	QuoteStatusApproved  QuoteStatus = "APPROVED"
	QuoteStatusConverted QuoteStatus = "CONVERTED"
	QuoteStatusCancelled QuoteStatus = "CANCELLED"
)

// QuoteStatuses lists every status in display order.
var QuoteStatuses = []QuoteStatus{
	QuoteStatusPending,
	QuoteStatusApproved,
	QuoteStatusConverted,
	QuoteStatusCancelled,
}

// quoteTransitions holds the moves reachable through an explicit status action.
// Conversion is absent on purpose: it belongs to work order creation.
var quoteTransitions = map[QuoteStatus]map[QuoteStatus]bool{
	QuoteStatusPending:   {QuoteStatusApproved: true, QuoteStatusCancelled: true},
	QuoteStatusApproved:  {QuoteStatusPending: true},
	QuoteStatusConverted: {},
	QuoteStatusCancelled: {},
}

func (s QuoteStatus) Valid() bool {
	_, ok := quoteTransitions[s]
	return ok
}

// CanTransitionTo reports whether an explicit status action may move s to next.
func (s QuoteStatus) CanTransitionTo(next QuoteStatus) bool {
	return quoteTransitions[s][next]
}

// Convertible reports whether a quote in this status may still become a work order.
func (s QuoteStatus) Convertible() bool {
	return s == QuoteStatusPending || s == QuoteStatusApproved
}

func (s QuoteStatus) Terminal() bool {
	return s == QuoteStatusConverted || s == QuoteStatusCancelled
}

// Dates travel as spreadsheet-formatted strings.
const (
	DateLayout     = "02/01/2006"
	DateTimeLayout = "02/01/2006 15:04"
)

// Quote is a service quote persisted in the "quotes" table.
//
// VisualID is derived once at creation ("{rt}-{seq}-{ddmmyyyy}") and never regenerated.
// IssueDate keeps the stored dd/mm/yyyy text; per-day sequencing compares it as text.
// RTReference and Sequence are zero when the stored cell is empty or not numeric.
type Quote struct {
	VisualID    string      `json:"visual_id"`
	ClientName  string      `json:"client_name"`
	IssueDate   string      `json:"issue_date"`
	RTReference int         `json:"rt_reference"`
	Sequence    int         `json:"sequence"`
	ServiceType ServiceType `json:"service_type"`
	Description string      `json:"description"`
	Status      QuoteStatus `json:"status"`
}
