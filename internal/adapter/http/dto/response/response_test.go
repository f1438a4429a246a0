package response

import (
	"testing"

	"gestao_integrada/internal/domain/entities"
	"gestao_integrada/internal/usecase"
)

func TestFromQuote(t *testing.T) {
	res := FromQuote(entities.Quote{
		VisualID:    "45361-1-10032024",
		ClientName:  "Acme",
		IssueDate:   "10/03/2024",
		RTReference: 45361,
		Sequence:    1,
		ServiceType: entities.ServiceTypeInstallation,
		Status:      entities.QuoteStatusPending,
	})
	if res.VisualID != "45361-1-10032024" || res.RTReference != 45361 || res.Sequence != 1 {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.ServiceType != "Installation" || res.Status != "PENDING" || res.IssueDate != "10/03/2024" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if got := FromQuotes(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}

func TestFromWorkOrder(t *testing.T) {
	res := FromWorkOrder(entities.WorkOrder{
		ID:            "1710165900",
		ARTCode:       "SP-123456",
		ServiceType:   entities.ServiceTypeProject,
		ReportStatus:  entities.ReportStatusForTyping,
		SourceQuoteID: "45361-1-10032024",
	})
	if res.ID != "1710165900" || res.ARTCode != "SP-123456" || res.SourceQuoteID != "45361-1-10032024" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.ServiceType != "Project" || res.ReportStatus != "FOR_TYPING" {
		t.Fatalf("unexpected enums: %+v", res)
	}
}

func TestFromDashboardSummary(t *testing.T) {
	res := FromDashboardSummary(usecase.DashboardSummary{
		TotalWorkOrders: 2,
		ByServiceType:   map[entities.ServiceType]int{entities.ServiceTypeProject: 2},
		ByReportStatus:  map[entities.ReportStatus]int{entities.ReportStatusNone: 2},
	})
	if res.TotalWorkOrders != 2 || res.ByServiceType["Project"] != 2 || res.ByReportStatus["-"] != 2 {
		t.Fatalf("unexpected summary: %+v", res)
	}
}
