package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item. Quantity is the current stock count; it is
// mutated by manual edits and by the sale / credit-sale flows, each of which
// records a StockMovement alongside the write.
type Product struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Barcode   string          `gorm:"uniqueIndex;not null"`
	Name      string          `gorm:"index;not null"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity  int             `gorm:"not null;default:0"`
	Unit      string          `gorm:"not null;default:'unidad'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
