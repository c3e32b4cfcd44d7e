package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateCustomerRequest struct {
	Name  string  `json:"name"  validate:"required,min=1,max=120"`
	Phone *string `json:"phone" validate:"omitempty,max=30"`
}

// RegisterCreditSaleRequest is the body of POST /credit/bulk: a fiado — the
// whole cart is charged to the customer's account.
type RegisterCreditSaleRequest struct {
	CustomerID string            `json:"customer_id" validate:"required,uuid"`
	Items      []SaleItemRequest `json:"items"       validate:"required,min=1,dive"`
	Total      decimal.Decimal   `json:"total"       validate:"required"`
}

type RegisterPaymentRequest struct {
	CustomerID string          `json:"customer_id" validate:"required,uuid"`
	Amount     decimal.Decimal `json:"amount"      validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// CustomerDebtResponse is one row of GET /customers/debts. Balance is derived
// on every read, never persisted, and floored at zero.
type CustomerDebtResponse struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Phone   *string         `json:"phone"`
	Balance decimal.Decimal `json:"balance"`
}

type CustomerResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Phone *string `json:"phone"`
}

type CreditEntryResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        string          `json:"kind"` // DEBT | PAYMENT
	CreatedAt   string          `json:"created_at"`
}

// PaymentResponse reports what was actually recorded. When the tendered
// amount exceeds the outstanding balance the recorded amount is capped and
// the surplus comes back as change.
type PaymentResponse struct {
	CustomerID string          `json:"customer_id"`
	Recorded   decimal.Decimal `json:"recorded"`
	Change     decimal.Decimal `json:"change"`
	Balance    decimal.Decimal `json:"balance"`
}
