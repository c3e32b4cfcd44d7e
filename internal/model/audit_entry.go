package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntry is an append-only, human-readable record of an administrative
// action. It carries no relation to other entities beyond narrative text.
type AuditEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Action    string    `gorm:"not null"`
	Detail    string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"index"`
}

func (AuditEntry) TableName() string { return "audit_entries" }
