package response

import "gestao_integrada/internal/domain/entities"

type WorkOrderResponse struct {
	ID                 string `json:"id"`
	ClientName         string `json:"client_name"`
	ARTCode            string `json:"art_code"`
	ServiceType        string `json:"service_type"`
	Status             string `json:"status"`
	CreatedAt          string `json:"created_at"`
	PDFLink            string `json:"pdf_link"`
	Description        string `json:"description"`
	HistoryNote        string `json:"history_note"`
	SourceQuoteID      string `json:"source_quote_id"`
	AssignedTechnician string `json:"assigned_technician"`
	ReportStatus       string `json:"report_status"`
	CorrectionDate     string `json:"correction_date"`
	CorrectedBy        string `json:"corrected_by"`
	DeliveryDate       string `json:"delivery_date"`
	PhysicalPartition  string `json:"physical_partition"`
}

func FromWorkOrder(w entities.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		ID:                 w.ID,
		ClientName:         w.ClientName,
		ARTCode:            w.ARTCode,
		ServiceType:        string(w.ServiceType),
		Status:             w.Status,
		CreatedAt:          w.CreatedAt,
		PDFLink:            w.PDFLink,
		Description:        w.Description,
		HistoryNote:        w.HistoryNote,
		SourceQuoteID:      w.SourceQuoteID,
		AssignedTechnician: w.AssignedTechnician,
		ReportStatus:       string(w.ReportStatus),
		CorrectionDate:     w.CorrectionDate,
		CorrectedBy:        w.CorrectedBy,
		DeliveryDate:       w.DeliveryDate,
		PhysicalPartition:  w.PhysicalPartition,
	}
}

func FromWorkOrders(ws []entities.WorkOrder) []WorkOrderResponse {
	out := make([]WorkOrderResponse, 0, len(ws))
	for _, w := range ws {
		out = append(out, FromWorkOrder(w))
	}
	return out
}

// ConversionSyncResponse is returned when the work order was written but the
// quote could not be flagged CONVERTED. The caller must repair the quote.
type ConversionSyncResponse struct {
	Code          string            `json:"code"`
	Message       string            `json:"message"`
	QuoteVisualID string            `json:"quote_visual_id"`
	WorkOrder     WorkOrderResponse `json:"work_order"`
}

type BulkReportUpdateResponse struct {
	Applied int `json:"applied"`
}
