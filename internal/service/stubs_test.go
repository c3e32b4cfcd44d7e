package service_test

import (
	"context"
	"errors"
	"sort"
	"time"

	"tiendapos/internal/model"
	"tiendapos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory stubs backing the service unit tests. DB() returns nil so runTx
// invokes the callback directly, without a real transaction.

// ── ProductRepository stub ───────────────────────────────────────────────────

type stubProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	return r.CreateTx(nil, p)
}

func (r *stubProductRepo) CreateTx(_ *gorm.DB, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	return r.FindByIDTx(nil, id)
}

func (r *stubProductRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) FindByBarcode(_ context.Context, barcode string) (*model.Product, error) {
	for _, p := range r.products {
		if p.Barcode == barcode {
			cp := *p
			return &cp, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *stubProductRepo) List(_ context.Context) ([]model.Product, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubProductRepo) Save(_ context.Context, p *model.Product) error {
	return r.SaveTx(nil, p)
}

func (r *stubProductRepo) SaveTx(_ *gorm.DB, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	return r.DeleteTx(nil, id)
}

func (r *stubProductRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) AdjustStockTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	p, ok := r.products[id]
	if !ok {
		return errors.New("record not found")
	}
	p.Quantity += delta
	return nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// ── StockMovementRepository stub ─────────────────────────────────────────────

type stubMovementRepo struct {
	entries []model.StockMovement
}

func (r *stubMovementRepo) Create(_ context.Context, m *model.StockMovement) error {
	return r.CreateTx(nil, m)
}

func (r *stubMovementRepo) CreateTx(_ *gorm.DB, m *model.StockMovement) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.entries = append(r.entries, *m)
	return nil
}

func (r *stubMovementRepo) ListRecent(_ context.Context, limit int) ([]model.StockMovement, error) {
	out := make([]model.StockMovement, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}

var _ repository.StockMovementRepository = (*stubMovementRepo)(nil)

// ── AuditRepository stub ─────────────────────────────────────────────────────

type stubAuditRepo struct {
	entries []model.AuditEntry
}

func (r *stubAuditRepo) Create(_ context.Context, e *model.AuditEntry) error {
	return r.CreateTx(nil, e)
}

func (r *stubAuditRepo) CreateTx(_ *gorm.DB, e *model.AuditEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.entries = append(r.entries, *e)
	return nil
}

func (r *stubAuditRepo) ListRecent(_ context.Context, limit int) ([]model.AuditEntry, error) {
	out := make([]model.AuditEntry, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}

var _ repository.AuditRepository = (*stubAuditRepo)(nil)

// ── CreditEntryRepository stub ───────────────────────────────────────────────

type stubCreditRepo struct {
	entries []model.CreditEntry
}

func (r *stubCreditRepo) Create(_ context.Context, e *model.CreditEntry) error {
	return r.CreateTx(nil, e)
}

func (r *stubCreditRepo) CreateTx(_ *gorm.DB, e *model.CreditEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	r.entries = append(r.entries, *e)
	return nil
}

func (r *stubCreditRepo) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]model.CreditEntry, error) {
	var out []model.CreditEntry
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].CustomerID == customerID {
			out = append(out, r.entries[i])
		}
	}
	return out, nil
}

func (r *stubCreditRepo) Balance(_ context.Context, customerID uuid.UUID) (decimal.Decimal, error) {
	balance := decimal.Zero
	for _, e := range r.entries {
		if e.CustomerID != customerID {
			continue
		}
		switch e.Kind {
		case model.CreditDebt:
			balance = balance.Add(e.Amount)
		case model.CreditPayment:
			balance = balance.Sub(e.Amount)
		}
	}
	return balance, nil
}

func (r *stubCreditRepo) DeleteByCustomerTx(_ *gorm.DB, customerID uuid.UUID) error {
	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.CustomerID != customerID {
			kept = append(kept, e)
		}
	}
	r.entries = kept
	return nil
}

var _ repository.CreditEntryRepository = (*stubCreditRepo)(nil)

// ── CustomerRepository stub ──────────────────────────────────────────────────

// stubCustomerRepo derives ListWithBalances from the credit stub, mirroring
// the grouped query the real repository runs.
type stubCustomerRepo struct {
	customers map[uuid.UUID]*model.Customer
	credits   *stubCreditRepo
}

func newStubCustomerRepo(credits *stubCreditRepo) *stubCustomerRepo {
	return &stubCustomerRepo{
		customers: make(map[uuid.UUID]*model.Customer),
		credits:   credits,
	}
}

func (r *stubCustomerRepo) Create(_ context.Context, c *model.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	for _, existing := range r.customers {
		if existing.NameNormalized == c.NameNormalized {
			return errors.New("duplicate key value violates unique constraint")
		}
	}
	r.customers[c.ID] = c
	return nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return c, nil
}

func (r *stubCustomerRepo) FindByNormalizedName(_ context.Context, normalized string) (*model.Customer, error) {
	for _, c := range r.customers {
		if c.NameNormalized == normalized {
			return c, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *stubCustomerRepo) ListWithBalances(ctx context.Context) ([]repository.CustomerBalance, error) {
	out := make([]repository.CustomerBalance, 0, len(r.customers))
	for _, c := range r.customers {
		balance, _ := r.credits.Balance(ctx, c.ID)
		out = append(out, repository.CustomerBalance{
			ID:      c.ID,
			Name:    c.Name,
			Phone:   c.Phone,
			Balance: balance,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubCustomerRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

func (r *stubCustomerRepo) DB() *gorm.DB { return nil }

var _ repository.CustomerRepository = (*stubCustomerRepo)(nil)

// ── SaleRepository stub ──────────────────────────────────────────────────────

type stubSaleRepo struct {
	sales []model.Sale

	weekRows  []repository.WeekTotal
	lastSince time.Time
}

func (r *stubSaleRepo) CreateTx(_ *gorm.DB, s *model.Sale) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	r.sales = append(r.sales, *s)
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	for i := range r.sales {
		if r.sales[i].ID == id {
			return &r.sales[i], nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *stubSaleRepo) ListRange(_ context.Context, from, to time.Time, category string) ([]model.Sale, error) {
	var out []model.Sale
	for i := len(r.sales) - 1; i >= 0; i-- {
		s := r.sales[i]
		if s.CreatedAt.Before(from) || s.CreatedAt.After(to) {
			continue
		}
		if category != "" && !saleHasCategory(s, category) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func saleHasCategory(s model.Sale, category string) bool {
	for _, item := range s.Items {
		if item.Category == category {
			return true
		}
	}
	return false
}

func (r *stubSaleRepo) WeeklyTotals(_ context.Context, since time.Time) ([]repository.WeekTotal, error) {
	r.lastSince = since
	return r.weekRows, nil
}

func (r *stubSaleRepo) DB() *gorm.DB { return nil }

var _ repository.SaleRepository = (*stubSaleRepo)(nil)
