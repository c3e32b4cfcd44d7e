package repository

import (
	"context"

	"tiendapos/internal/model"

	"gorm.io/gorm"
)

// AuditRepository persists administrative audit entries (append-only).
type AuditRepository interface {
	Create(ctx context.Context, e *model.AuditEntry) error
	CreateTx(tx *gorm.DB, e *model.AuditEntry) error
	ListRecent(ctx context.Context, limit int) ([]model.AuditEntry, error)
}

type auditRepo struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) AuditRepository { return &auditRepo{db: db} }

func (r *auditRepo) Create(ctx context.Context, e *model.AuditEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *auditRepo) CreateTx(tx *gorm.DB, e *model.AuditEntry) error {
	return tx.Create(e).Error
}

func (r *auditRepo) ListRecent(ctx context.Context, limit int) ([]model.AuditEntry, error) {
	var entries []model.AuditEntry
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
