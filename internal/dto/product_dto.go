package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Code     string          `json:"code"     validate:"omitempty,max=18"`
	Name     string          `json:"name"     validate:"required,min=1,max=120"`
	Price    decimal.Decimal `json:"price"    validate:"required"`
	Quantity int             `json:"quantity" validate:"min=0"`
	Unit     string          `json:"unit"`
}

type UpdateProductRequest struct {
	Code     string          `json:"code"     validate:"omitempty,max=18"`
	Name     string          `json:"name"     validate:"required,min=1,max=120"`
	Price    decimal.Decimal `json:"price"    validate:"required"`
	Quantity int             `json:"quantity" validate:"min=0"`
	Unit     string          `json:"unit"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID       string          `json:"id"`
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Unit     string          `json:"unit"`
}

// PriceCheckResponse is returned by the public price check endpoint (no auth
// required, served from the Redis cache when warm).
type PriceCheckResponse struct {
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	StockAvailable int             `json:"stock_available"`
	Unit           string          `json:"unit"`
}
