package response

import "gestao_integrada/internal/usecase"

type DashboardResponse struct {
	TotalWorkOrders  int            `json:"total_work_orders"`
	ReportsForTyping int            `json:"reports_for_typing"`
	OpenQuotes       int            `json:"open_quotes"`
	ByServiceType    map[string]int `json:"by_service_type"`
	ByReportStatus   map[string]int `json:"by_report_status"`
}

func FromDashboardSummary(s usecase.DashboardSummary) DashboardResponse {
	res := DashboardResponse{
		TotalWorkOrders:  s.TotalWorkOrders,
		ReportsForTyping: s.ReportsForTyping,
		OpenQuotes:       s.OpenQuotes,
		ByServiceType:    make(map[string]int, len(s.ByServiceType)),
		ByReportStatus:   make(map[string]int, len(s.ByReportStatus)),
	}
	for k, v := range s.ByServiceType {
		res.ByServiceType[string(k)] = v
	}
	for k, v := range s.ByReportStatus {
		res.ByReportStatus[string(k)] = v
	}
	return res
}

type RegistryResponse struct {
	Table string              `json:"table"`
	Rows  []map[string]string `json:"rows"`
}
