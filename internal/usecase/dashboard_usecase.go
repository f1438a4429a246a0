package usecase

import (
	"context"

	"gestao_integrada/internal/domain/entities"
	"gestao_integrada/internal/usecase/interfaces"
)

// DashboardSummary backs the overview screen.
type DashboardSummary struct {
	TotalWorkOrders  int                           `json:"total_work_orders"`
	ReportsForTyping int                           `json:"reports_for_typing"`
	OpenQuotes       int                           `json:"open_quotes"`
	ByServiceType    map[entities.ServiceType]int  `json:"by_service_type"`
	ByReportStatus   map[entities.ReportStatus]int `json:"by_report_status"`
}

type IDashboardUseCase interface {
	Summary(ctx context.Context) (DashboardSummary, error)
}

type DashboardUseCase struct {
	workOrders interfaces.IWorkOrderRepository
	quotes     interfaces.IQuoteRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(workOrders interfaces.IWorkOrderRepository, quotes interfaces.IQuoteRepository) *DashboardUseCase {
	return &DashboardUseCase{workOrders: workOrders, quotes: quotes}
}

func (u *DashboardUseCase) Summary(ctx context.Context) (DashboardSummary, error) {
	orders, err := u.workOrders.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	quotes, err := u.quotes.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}

	s := DashboardSummary{
		TotalWorkOrders: len(orders),
		ByServiceType:   map[entities.ServiceType]int{},
		ByReportStatus:  map[entities.ReportStatus]int{},
	}
	for _, w := range orders {
		s.ByServiceType[w.ServiceType]++
		s.ByReportStatus[w.ReportStatus]++
		if w.ReportStatus == entities.ReportStatusForTyping {
			s.ReportsForTyping++
		}
	}
	for _, q := range quotes {
		if q.Status == entities.QuoteStatusPending {
			s.OpenQuotes++
		}
	}
	return s, nil
}
