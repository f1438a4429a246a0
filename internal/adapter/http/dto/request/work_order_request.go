package request

import (
	"strings"

	"gestao_integrada/internal/domain/entities"
	"gestao_integrada/internal/usecase"
)

// CreateWorkOrderRequest opens a work order from a quote. Service type and
// description default to the quote's when omitted.
type CreateWorkOrderRequest struct {
	QuoteVisualID string `json:"quote_visual_id" binding:"required"`
	ServiceType   string `json:"service_type"`
	Description   string `json:"description"`
	ARTRegion     string `json:"art_region"`
	ARTNumber     string `json:"art_number"`
	ARTPending    bool   `json:"art_pending"`
}

func (r CreateWorkOrderRequest) ToInput() usecase.CreateWorkOrderInput {
	return usecase.CreateWorkOrderInput{
		QuoteVisualID: strings.TrimSpace(r.QuoteVisualID),
		ServiceType:   entities.ServiceType(strings.TrimSpace(r.ServiceType)),
		Description:   r.Description,
		ARTRegion:     r.ARTRegion,
		ARTNumber:     r.ARTNumber,
		ARTPending:    r.ARTPending,
	}
}

type ReportEditRequest struct {
	ID                 string `json:"id" binding:"required"`
	ReportStatus       string `json:"report_status" binding:"required"`
	PDFLink            string `json:"pdf_link"`
	AssignedTechnician string `json:"assigned_technician"`
}

type BulkReportUpdateRequest struct {
	Edits []ReportEditRequest `json:"edits" binding:"dive"`
}

func (r BulkReportUpdateRequest) ToEdits() []entities.ReportEdit {
	out := make([]entities.ReportEdit, 0, len(r.Edits))
	for _, e := range r.Edits {
		out = append(out, entities.ReportEdit{
			ID:                 strings.TrimSpace(e.ID),
			ReportStatus:       entities.ReportStatus(strings.TrimSpace(e.ReportStatus)),
			PDFLink:            strings.TrimSpace(e.PDFLink),
			AssignedTechnician: strings.TrimSpace(e.AssignedTechnician),
		})
	}
	return out
}

// ParseReportStatuses reads the report_status query values. Absent or blank
// values mean the technician's default queue.
func ParseReportStatuses(values []string) []entities.ReportStatus {
	out := make([]entities.ReportStatus, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, entities.ReportStatus(part))
			}
		}
	}
	if len(out) == 0 {
		return entities.DefaultReportQueue
	}
	return out
}
