package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Credit entry kinds.
const (
	CreditDebt    = "DEBT"
	CreditPayment = "PAYMENT"
)

// CreditEntry is one movement in a customer's credit ledger. The outstanding
// balance is never stored: it is always derived as sum(DEBT) - sum(PAYMENT),
// floored at zero for display.
type CreditEntry struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"` // positive magnitude
	Kind        string          `gorm:"type:varchar(10);not null"`   // DEBT | PAYMENT
	CreatedAt   time.Time       `gorm:"index"`
}

func (CreditEntry) TableName() string { return "credit_entries" }
