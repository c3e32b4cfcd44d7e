package repository

import (
	"context"
	"time"

	"tiendapos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WeekTotal is one aggregated row of the weekly stats report.
type WeekTotal struct {
	Week  int
	Total decimal.Decimal
}

type SaleRepository interface {
	CreateTx(tx *gorm.DB, s *model.Sale) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error)
	// ListRange returns sales within [from, to], newest first, optionally
	// filtered to sales containing at least one line item of the category.
	ListRange(ctx context.Context, from, to time.Time, category string) ([]model.Sale, error)
	// WeeklyTotals groups sales since `since` by the database-native week
	// number, ascending.
	WeeklyTotals(ctx context.Context, since time.Time) ([]WeekTotal, error)
	DB() *gorm.DB
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) CreateTx(tx *gorm.DB, s *model.Sale) error {
	return tx.Create(s).Error
}

func (r *saleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).Preload("Items").First(&s, "id = ?", id).Error
	return &s, err
}

func (r *saleRepo) ListRange(ctx context.Context, from, to time.Time, category string) ([]model.Sale, error) {
	q := r.db.WithContext(ctx).Model(&model.Sale{}).
		Where("created_at BETWEEN ? AND ?", from, to)

	if category != "" {
		// Category lives on the item snapshots, not the sale row.
		q = q.Where(`EXISTS (SELECT 1 FROM sale_items si
		                     WHERE si.sale_id = sales.id AND si.category = ?)`, category)
	}

	var sales []model.Sale
	err := q.Preload("Items").Order("created_at DESC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) WeeklyTotals(ctx context.Context, since time.Time) ([]WeekTotal, error) {
	var rows []WeekTotal
	err := r.db.WithContext(ctx).Raw(`
		SELECT EXTRACT(WEEK FROM created_at)::int AS week, SUM(total) AS total
		FROM sales
		WHERE created_at >= ?
		GROUP BY 1
		ORDER BY 1 ASC`, since).Scan(&rows).Error
	return rows, err
}

func (r *saleRepo) DB() *gorm.DB { return r.db }
