package repository

import (
	"context"

	"tiendapos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreditEntryRepository persists the per-customer credit ledger. Entries are
// append-only; the only delete is the cascade when a customer is removed.
type CreditEntryRepository interface {
	Create(ctx context.Context, e *model.CreditEntry) error
	CreateTx(tx *gorm.DB, e *model.CreditEntry) error
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.CreditEntry, error)
	// Balance derives the customer's outstanding balance from the ledger.
	// Never cached, never persisted.
	Balance(ctx context.Context, customerID uuid.UUID) (decimal.Decimal, error)
	DeleteByCustomerTx(tx *gorm.DB, customerID uuid.UUID) error
}

type creditRepo struct{ db *gorm.DB }

func NewCreditEntryRepository(db *gorm.DB) CreditEntryRepository { return &creditRepo{db: db} }

func (r *creditRepo) Create(ctx context.Context, e *model.CreditEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *creditRepo) CreateTx(tx *gorm.DB, e *model.CreditEntry) error {
	return tx.Create(e).Error
}

func (r *creditRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.CreditEntry, error) {
	var entries []model.CreditEntry
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *creditRepo) Balance(ctx context.Context, customerID uuid.UUID) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(CASE WHEN kind = 'DEBT' THEN amount
		                         WHEN kind = 'PAYMENT' THEN -amount
		                         ELSE 0 END), 0)
		FROM credit_entries
		WHERE customer_id = ?`, customerID).Scan(&balance).Error
	return balance, err
}

func (r *creditRepo) DeleteByCustomerTx(tx *gorm.DB, customerID uuid.UUID) error {
	return tx.Delete(&model.CreditEntry{}, "customer_id = ?", customerID).Error
}
