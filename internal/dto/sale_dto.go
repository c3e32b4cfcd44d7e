package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// SaleItemRequest is one cart line. Catalog-backed items carry product_id;
// manual (free-text) items set manual=true and have no stock effect.
type SaleItemRequest struct {
	ProductID *string         `json:"product_id" validate:"omitempty,uuid"`
	Name      string          `json:"name"       validate:"required"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"required"`
	Quantity  int             `json:"quantity"   validate:"required,min=1"`
	Subtotal  decimal.Decimal `json:"subtotal"   validate:"required"`
	Category  string          `json:"category"`
	Manual    bool            `json:"manual"`
}

type RegisterSaleRequest struct {
	Items          []SaleItemRequest `json:"items"           validate:"required,min=1,dive"`
	Total          decimal.Decimal   `json:"total"           validate:"required"`
	TenderMethod   string            `json:"tender_method"   validate:"required"`
	AmountTendered decimal.Decimal   `json:"amount_tendered"`
	Change         decimal.Decimal   `json:"change"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SaleItemResponse struct {
	ProductID *string         `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Category  string          `json:"category"`
	Manual    bool            `json:"manual"`
}

type SaleResponse struct {
	ID             string             `json:"id"`
	Items          []SaleItemResponse `json:"items"`
	Total          decimal.Decimal    `json:"total"`
	TenderMethod   string             `json:"tender_method"`
	AmountTendered decimal.Decimal    `json:"amount_tendered"`
	Change         decimal.Decimal    `json:"change"`
	CreatedAt      string             `json:"created_at"`
}
