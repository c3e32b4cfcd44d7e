package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is an immutable record of a completed cash/POS checkout. Line items
// are snapshots: they keep the name, price and category the product had at
// checkout time, independent of later catalog edits.
type Sale struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Total          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TenderMethod   string          `gorm:"type:varchar(20);not null"`
	AmountTendered decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Change         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt      time.Time       `gorm:"index"`

	Items []SaleItem `gorm:"foreignKey:SaleID"`
}

// SaleItem is one line of a sale. ProductID is nil for manual (free-text)
// items, which have no stock effect.
type SaleItem struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SaleID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductID *uuid.UUID `gorm:"type:uuid"`
	Name      string     `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity  int             `gorm:"not null"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Category  string
	Manual    bool `gorm:"not null;default:false"`
}
