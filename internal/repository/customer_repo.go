package repository

import (
	"context"

	"tiendapos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CustomerBalance is a customer row joined with its derived credit balance.
// The balance may be negative here; flooring at zero is display policy and
// belongs to the service layer.
type CustomerBalance struct {
	ID      uuid.UUID
	Name    string
	Phone   *string
	Balance decimal.Decimal
}

type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	// FindByNormalizedName looks a customer up by the lowercased name key
	// backing the case-insensitive uniqueness constraint.
	FindByNormalizedName(ctx context.Context, normalized string) (*model.Customer, error)
	// ListWithBalances returns every customer with its derived balance in a
	// single grouped query, sorted by name.
	ListWithBalances(ctx context.Context) ([]CustomerBalance, error)
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	DB() *gorm.DB
}

type customerRepo struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) CustomerRepository { return &customerRepo{db: db} }

func (r *customerRepo) Create(ctx context.Context, c *model.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *customerRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *customerRepo) FindByNormalizedName(ctx context.Context, normalized string) (*model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).Where("name_normalized = ?", normalized).First(&c).Error
	return &c, err
}

func (r *customerRepo) ListWithBalances(ctx context.Context) ([]CustomerBalance, error) {
	var rows []CustomerBalance
	err := r.db.WithContext(ctx).Raw(`
		SELECT c.id, c.name, c.phone,
		       COALESCE(SUM(CASE WHEN e.kind = 'DEBT' THEN e.amount
		                         WHEN e.kind = 'PAYMENT' THEN -e.amount
		                         ELSE 0 END), 0) AS balance
		FROM customers c
		LEFT JOIN credit_entries e ON e.customer_id = c.id
		GROUP BY c.id, c.name, c.phone
		ORDER BY c.name ASC`).Scan(&rows).Error
	return rows, err
}

func (r *customerRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Customer{}, "id = ?", id).Error
}

func (r *customerRepo) DB() *gorm.DB { return r.db }
