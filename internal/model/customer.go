package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a registry entry for credit ("fiado") accounts. Names are
// unique case-insensitively: NameNormalized holds the lowercased name under
// a unique index so concurrent creates cannot slip past the service-level
// duplicate check.
type Customer struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"not null"`
	NameNormalized string    `gorm:"uniqueIndex;not null"`
	Phone          *string
	CreatedAt      time.Time
}
