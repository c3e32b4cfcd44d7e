package service

import (
	"context"
	"fmt"
	"time"

	"tiendapos/internal/dto"
	"tiendapos/internal/repository"
)

// ReportService runs read-only aggregations over the sale store.
type ReportService interface {
	SalesReport(ctx context.Context, filter dto.SalesReportFilter) ([]dto.SaleResponse, error)
	WeeklyStats(ctx context.Context) ([]dto.WeeklyStatResponse, error)
}

type reportService struct {
	sales repository.SaleRepository
	now   func() time.Time
}

func NewReportService(sales repository.SaleRepository) ReportService {
	return &reportService{sales: sales, now: time.Now}
}

// SalesReport lists sales inside [from, to], both inclusive; `to` covers the
// whole day. Category filters on the line-item snapshots; "TODAS" or empty
// means no filter.
func (s *reportService) SalesReport(ctx context.Context, filter dto.SalesReportFilter) ([]dto.SaleResponse, error) {
	from, err := time.ParseInLocation("2006-01-02", filter.From, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha 'from' no reconocida", ErrInvalidDateRange)
	}
	to, err := time.ParseInLocation("2006-01-02", filter.To, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha 'to' no reconocida", ErrInvalidDateRange)
	}
	to = to.Add(24*time.Hour - time.Second) // inclusive end-of-day

	category := filter.Category
	if category == "TODAS" {
		category = ""
	}

	sales, err := s.sales.ListRange(ctx, from, to, category)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		resp = append(resp, *saleToResponse(&sales[i]))
	}
	return resp, nil
}

// WeeklyStats totals the current calendar month's sales grouped by the
// database-native week number, ascending.
func (s *reportService) WeeklyStats(ctx context.Context) ([]dto.WeeklyStatResponse, error) {
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	rows, err := s.sales.WeeklyTotals(ctx, monthStart)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.WeeklyStatResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, dto.WeeklyStatResponse{
			Week:  fmt.Sprintf("Semana %d", row.Week),
			Total: row.Total,
		})
	}
	return resp, nil
}
