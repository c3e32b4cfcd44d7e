package model

import (
	"time"

	"github.com/google/uuid"
)

// Movement kinds.
const (
	MovementIn  = "IN"
	MovementOut = "OUT"
)

// Movement reasons.
const (
	ReasonInitialRegistration = "INITIAL_REGISTRATION"
	ReasonManualAdjustment    = "MANUAL_ADJUSTMENT"
	ReasonSale                = "SALE"
	ReasonCreditSale          = "CREDIT_SALE"
)

// StockMovement is one entry in the inventory kardex: an immutable record of
// a stock-affecting event with before/after snapshots. ProductName is
// denormalized at write time so the ledger keeps showing the historical name
// after a product rename or delete. ProductID is intentionally NOT a foreign
// key — deleting a product leaves its movements behind with a dangling
// reference.
type StockMovement struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName string    `gorm:"not null"`
	Kind        string    `gorm:"type:varchar(10);not null"` // IN | OUT
	Reason      string    `gorm:"not null"`
	Quantity    int       `gorm:"not null"` // positive magnitude
	StockBefore int       `gorm:"not null"`
	StockAfter  int       `gorm:"not null"`
	CreatedAt   time.Time `gorm:"index"`
}

// TableName keeps the ledger table name singular-free and explicit.
func (StockMovement) TableName() string { return "stock_movements" }
