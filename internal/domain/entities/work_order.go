package entities

// ReportStatus tracks the technical report attached to a work order.
type ReportStatus string

const (
	ReportStatusNone         ReportStatus = "-"
	ReportStatusForTyping    ReportStatus = "FOR_TYPING"
	ReportStatusInCorrection ReportStatus = "IN_CORRECTION"
	ReportStatusCorrected    ReportStatus = "CORRECTED"
	ReportStatusFinalized    ReportStatus = "FINALIZED"
)

var ReportStatuses = []ReportStatus{
	ReportStatusNone,
	ReportStatusForTyping,
	ReportStatusInCorrection,
	ReportStatusCorrected,
	ReportStatusFinalized,
}

// DefaultReportQueue is what the technician panel shows when no filter is given.
var DefaultReportQueue = []ReportStatus{ReportStatusNone, ReportStatusForTyping}

func (s ReportStatus) Valid() bool {
	for _, known := range ReportStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ART (Anotação de Responsabilidade Técnica) registration regions.
const (
	ARTRegionSP = "SP"
	ARTRegionMG = "MG"
	ARTRegionRJ = "RJ"

	// ARTCodePending marks a work order opened before its ART was issued.
	ARTCodePending = "PENDING"
	ARTMinDigits   = 5
)

var ARTRegions = []string{ARTRegionSP, ARTRegionMG, ARTRegionRJ}

// Initial values written on work order creation.
const (
	WorkOrderStatusPending      = "PENDING"
	WorkOrderHistoryInitial     = "Initial registration"
	WorkOrderPDFLinkPlaceholder = "Upload Off"
	WorkOrderPartitionNone      = "-"
)

// WorkOrder is a service order (serviço) persisted in the "work_orders" table.
//
// ID is the Unix timestamp (seconds) of creation. SourceQuoteID references
// Quote.VisualID; it does not own the quote. Status is free-form operational text.
type WorkOrder struct {
	ID                 string       `json:"id"`
	ClientName         string       `json:"client_name"`
	ARTCode            string       `json:"art_code"`
	ServiceType        ServiceType  `json:"service_type"`
	Status             string       `json:"status"`
	CreatedAt          string       `json:"created_at"`
	PDFLink            string       `json:"pdf_link"`
	Description        string       `json:"description"`
	HistoryNote        string       `json:"history_note"`
	SourceQuoteID      string       `json:"source_quote_id"`
	AssignedTechnician string       `json:"assigned_technician"`
	ReportStatus       ReportStatus `json:"report_status"`
	CorrectionDate     string       `json:"correction_date"`
	CorrectedBy        string       `json:"corrected_by"`
	DeliveryDate       string       `json:"delivery_date"`
	PhysicalPartition  string       `json:"physical_partition"`
}

// ReportEdit is one row edited on the technician panel.
type ReportEdit struct {
	ID                 string       `json:"id"`
	ReportStatus       ReportStatus `json:"report_status"`
	PDFLink            string       `json:"pdf_link"`
	AssignedTechnician string       `json:"assigned_technician"`
}
