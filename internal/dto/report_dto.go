package dto

import "github.com/shopspring/decimal"

// SalesReportFilter is bound from the query string of GET /reports/sales.
// To is inclusive: it covers the whole day (23:59:59).
type SalesReportFilter struct {
	From     string `form:"from"     validate:"required"`
	To       string `form:"to"       validate:"required"`
	Category string `form:"category"` // empty or "TODAS" = all categories
}

// WeeklyStatResponse is one row of GET /reports/weekly-stats: total sales for
// one calendar week of the current month.
type WeeklyStatResponse struct {
	Week  string          `json:"week"` // "Semana N"
	Total decimal.Decimal `json:"total"`
}
