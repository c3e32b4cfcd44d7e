package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"tiendapos/internal/infra"
	"tiendapos/internal/model"
	"tiendapos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupDB opens a per-test in-memory SQLite database. The DSN is keyed by
// test name so GORM's connection pool reuses the same memory database.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, infra.RunMigrations(db))
	return db
}

func TestProductRepoCRUD(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewProductRepository(db)
	ctx := context.Background()

	p := &model.Product{
		Barcode:  "7751234567890",
		Name:     "Gaseosa",
		Price:    decimal.NewFromFloat(5.00),
		Quantity: 10,
		Unit:     "unidad",
	}
	require.NoError(t, repo.Create(ctx, p))
	require.NotEqual(t, uuid.Nil, p.ID)

	byBarcode, err := repo.FindByBarcode(ctx, "7751234567890")
	require.NoError(t, err)
	assert.Equal(t, p.ID, byBarcode.ID)

	byID, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gaseosa", byID.Name)
	assert.True(t, byID.Price.Equal(decimal.NewFromFloat(5.00)))

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err = repo.FindByID(ctx, p.ID)
	assert.Error(t, err)
}

func TestProductRepoListSortedByName(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewProductRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Yogur", "Arroz", "Menta"} {
		require.NoError(t, repo.Create(ctx, &model.Product{
			Barcode: uuid.NewString(),
			Name:    name,
			Price:   decimal.NewFromFloat(1.00),
			Unit:    "unidad",
		}))
	}

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Arroz", products[0].Name)
	assert.Equal(t, "Menta", products[1].Name)
	assert.Equal(t, "Yogur", products[2].Name)
}

func TestProductRepoAdjustStockIsRelative(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewProductRepository(db)
	ctx := context.Background()

	p := &model.Product{Barcode: "1", Name: "Soda", Price: decimal.NewFromFloat(5.00), Quantity: 10, Unit: "unidad"}
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, repo.AdjustStockTx(db, p.ID, -3))
	require.NoError(t, repo.AdjustStockTx(db, p.ID, -2))

	updated, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)

	// Decrements below zero are allowed; the catalog records what happened.
	require.NoError(t, repo.AdjustStockTx(db, p.ID, -8))
	updated, err = repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, -3, updated.Quantity)
}

func TestStockMovementListRecent(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewStockMovementRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &model.StockMovement{
			ProductID:   uuid.New(),
			ProductName: fmt.Sprintf("p%d", i),
			Kind:        model.MovementIn,
			Reason:      model.ReasonInitialRegistration,
			Quantity:    1,
			StockAfter:  1,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}))
	}

	movements, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, movements, 2)
	assert.Equal(t, "p2", movements[0].ProductName)
	assert.Equal(t, "p1", movements[1].ProductName)
}

func TestAuditListRecent(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewAuditRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &model.AuditEntry{
			Action:    "VENTA",
			Detail:    fmt.Sprintf("venta %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	entries, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "venta 2", entries[0].Detail)
}

func TestCustomerUniqueNormalizedName(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewCustomerRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Customer{Name: "Ana", NameNormalized: "ana"}))
	err := repo.Create(ctx, &model.Customer{Name: "ANA", NameNormalized: "ana"})
	assert.Error(t, err, "the unique index closes the check-then-insert race")
}

func TestCustomerListWithBalances(t *testing.T) {
	db := setupDB(t)
	customers := repository.NewCustomerRepository(db)
	credits := repository.NewCreditEntryRepository(db)
	ctx := context.Background()

	ana := &model.Customer{Name: "Ana", NameNormalized: "ana"}
	luis := &model.Customer{Name: "Luis", NameNormalized: "luis"}
	require.NoError(t, customers.Create(ctx, ana))
	require.NoError(t, customers.Create(ctx, luis))

	require.NoError(t, credits.Create(ctx, &model.CreditEntry{
		CustomerID: ana.ID, Description: "Soda (x2)", Amount: decimal.NewFromFloat(10.00), Kind: model.CreditDebt,
	}))
	require.NoError(t, credits.Create(ctx, &model.CreditEntry{
		CustomerID: ana.ID, Description: "ABONO DE CUENTA", Amount: decimal.NewFromFloat(4.00), Kind: model.CreditPayment,
	}))

	rows, err := customers.ListWithBalances(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ana", rows[0].Name)
	assert.True(t, rows[0].Balance.Equal(decimal.NewFromFloat(6.00)), "got %s", rows[0].Balance)
	assert.Equal(t, "Luis", rows[1].Name)
	assert.True(t, rows[1].Balance.IsZero())
}

func TestCreditBalanceAndCascade(t *testing.T) {
	db := setupDB(t)
	customers := repository.NewCustomerRepository(db)
	credits := repository.NewCreditEntryRepository(db)
	ctx := context.Background()

	ana := &model.Customer{Name: "Ana", NameNormalized: "ana"}
	require.NoError(t, customers.Create(ctx, ana))

	require.NoError(t, credits.Create(ctx, &model.CreditEntry{
		CustomerID: ana.ID, Description: "Pan (x4)", Amount: decimal.NewFromFloat(2.00), Kind: model.CreditDebt,
	}))
	require.NoError(t, credits.Create(ctx, &model.CreditEntry{
		CustomerID: ana.ID, Description: "Leche (x1)", Amount: decimal.NewFromFloat(4.50), Kind: model.CreditDebt,
	}))

	balance, err := credits.Balance(ctx, ana.ID)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromFloat(6.50)), "got %s", balance)

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := customers.DeleteTx(tx, ana.ID); err != nil {
			return err
		}
		return credits.DeleteByCustomerTx(tx, ana.ID)
	})
	require.NoError(t, err)

	entries, err := credits.ListByCustomer(ctx, ana.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCreditListByCustomerNewestFirst(t *testing.T) {
	db := setupDB(t)
	credits := repository.NewCreditEntryRepository(db)
	ctx := context.Background()

	customerID := uuid.New()
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i, desc := range []string{"primero", "segundo", "tercero"} {
		require.NoError(t, credits.Create(ctx, &model.CreditEntry{
			CustomerID:  customerID,
			Description: desc,
			Amount:      decimal.NewFromFloat(1.00),
			Kind:        model.CreditDebt,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}))
	}

	entries, err := credits.ListByCustomer(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "tercero", entries[0].Description)
	assert.Equal(t, "primero", entries[2].Description)
}

func TestSaleListRange(t *testing.T) {
	db := setupDB(t)
	sales := repository.NewSaleRepository(db)
	ctx := context.Background()

	mkSale := func(createdAt time.Time, total float64, category string) {
		s := &model.Sale{
			Total:        decimal.NewFromFloat(total),
			TenderMethod: "EFECTIVO",
			CreatedAt:    createdAt,
			Items: []model.SaleItem{{
				Name:      "item",
				UnitPrice: decimal.NewFromFloat(total),
				Quantity:  1,
				Subtotal:  decimal.NewFromFloat(total),
				Category:  category,
			}},
		}
		require.NoError(t, sales.CreateTx(db, s))
	}

	mkSale(time.Date(2026, 8, 9, 12, 0, 0, 0, time.UTC), 10.00, "BEBIDAS")
	mkSale(time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC), 15.00, "BEBIDAS")
	mkSale(time.Date(2026, 8, 10, 18, 0, 0, 0, time.UTC), 4.00, "ABARROTES")
	mkSale(time.Date(2026, 8, 11, 12, 0, 0, 0, time.UTC), 20.00, "BEBIDAS")

	from := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 10, 23, 59, 59, 0, time.UTC)

	inRange, err := sales.ListRange(ctx, from, to, "")
	require.NoError(t, err)
	require.Len(t, inRange, 2)
	// Newest first, line items preloaded.
	assert.True(t, inRange[0].Total.Equal(decimal.NewFromFloat(4.00)))
	require.Len(t, inRange[0].Items, 1)

	bebidas, err := sales.ListRange(ctx, from, to, "BEBIDAS")
	require.NoError(t, err)
	require.Len(t, bebidas, 1)
	assert.True(t, bebidas[0].Total.Equal(decimal.NewFromFloat(15.00)))
}

func TestUserRepoFindByUsernameOnlyActive(t *testing.T) {
	db := setupDB(t)
	users := repository.NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &model.User{
		Username: "simona", Name: "Simona", PasswordHash: "x", Role: "administrador", Active: true,
	}))
	require.NoError(t, users.Create(ctx, &model.User{
		Username: "viejo", Name: "Viejo", PasswordHash: "x", Role: "cajero", Active: true,
	}))
	require.NoError(t, db.Model(&model.User{}).Where("username = ?", "viejo").Update("active", false).Error)

	u, err := users.FindByUsername(ctx, "simona")
	require.NoError(t, err)
	assert.Equal(t, "administrador", u.Role)

	_, err = users.FindByUsername(ctx, "viejo")
	assert.Error(t, err)
}
