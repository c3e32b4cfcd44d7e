package service

import (
	"context"
	"fmt"
	"time"

	"tiendapos/internal/dto"
	"tiendapos/internal/model"
	"tiendapos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SaleService orchestrates checkout: it is the only writer that touches more
// than one store per operation. Every multi-store sequence runs inside a
// single transaction so a failure partway through leaves nothing behind.
type SaleService interface {
	RegisterSale(ctx context.Context, req dto.RegisterSaleRequest) (*dto.SaleResponse, error)
	RegisterCreditSale(ctx context.Context, req dto.RegisterCreditSaleRequest) error
}

type saleService struct {
	sales     repository.SaleRepository
	products  repository.ProductRepository
	movements repository.StockMovementRepository
	credits   repository.CreditEntryRepository
	customers repository.CustomerRepository
	audit     repository.AuditRepository
}

func NewSaleService(
	sales repository.SaleRepository,
	products repository.ProductRepository,
	movements repository.StockMovementRepository,
	credits repository.CreditEntryRepository,
	customers repository.CustomerRepository,
	audit repository.AuditRepository,
) SaleService {
	return &saleService{
		sales:     sales,
		products:  products,
		movements: movements,
		credits:   credits,
		customers: customers,
		audit:     audit,
	}
}

// RegisterSale persists the sale verbatim (item snapshots, total, tender
// info), then for each catalog-backed line item writes one OUT/SALE kardex
// entry and applies a relative stock decrement. Stock is intentionally not
// floored at zero here: the UI performs the advisory pre-check and an
// oversell must still be recorded as it happened at the till.
func (s *saleService) RegisterSale(ctx context.Context, req dto.RegisterSaleRequest) (*dto.SaleResponse, error) {
	sale := &model.Sale{
		Total:          req.Total,
		TenderMethod:   req.TenderMethod,
		AmountTendered: req.AmountTendered,
		Change:         req.Change,
	}
	for _, item := range req.Items {
		sale.Items = append(sale.Items, saleItemFromRequest(item))
	}

	txErr := runTx(ctx, s.sales.DB(), func(tx *gorm.DB) error {
		if err := s.sales.CreateTx(tx, sale); err != nil {
			return err
		}

		for _, item := range req.Items {
			if err := s.deductStockTx(tx, item, model.ReasonSale); err != nil {
				return err
			}
		}

		return s.audit.CreateTx(tx, &model.AuditEntry{
			Action: "VENTA",
			Detail: fmt.Sprintf("Venta de S/. %s via %s", req.Total.StringFixed(2), req.TenderMethod),
		})
	})
	if txErr != nil {
		return nil, txErr
	}
	return saleToResponse(sale), nil
}

// RegisterCreditSale charges a cart to a customer's credit account: one DEBT
// entry per line item plus the usual stock/kardex effect for catalog items.
// No Sale row is created — credit transactions live only in the credit and
// inventory ledgers and never appear in sales reports.
func (s *saleService) RegisterCreditSale(ctx context.Context, req dto.RegisterCreditSaleRequest) error {
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return ErrCustomerNotFound
	}
	if _, err := s.customers.FindByID(ctx, customerID); err != nil {
		return ErrCustomerNotFound
	}

	return runTx(ctx, s.sales.DB(), func(tx *gorm.DB) error {
		for _, item := range req.Items {
			entry := &model.CreditEntry{
				CustomerID:  customerID,
				Description: fmt.Sprintf("%s (x%d)", item.Name, item.Quantity),
				Amount:      item.Subtotal,
				Kind:        model.CreditDebt,
			}
			if err := s.credits.CreateTx(tx, entry); err != nil {
				return err
			}

			if err := s.deductStockTx(tx, item, model.ReasonCreditSale); err != nil {
				return err
			}
		}

		return s.audit.CreateTx(tx, &model.AuditEntry{
			Action: "FIADO",
			Detail: fmt.Sprintf("Monto total: S/. %s", req.Total.StringFixed(2)),
		})
	})
}

// deductStockTx applies the per-item inventory effect of a (credit) sale:
// re-read current stock for the kardex snapshot, append the OUT entry, then
// decrement. Manual items are skipped — they have no stock effect.
func (s *saleService) deductStockTx(tx *gorm.DB, item dto.SaleItemRequest, reason string) error {
	if item.Manual || item.ProductID == nil {
		return nil
	}
	productID, err := uuid.Parse(*item.ProductID)
	if err != nil {
		return ErrProductNotFound
	}
	product, err := s.products.FindByIDTx(tx, productID)
	if err != nil {
		return ErrProductNotFound
	}

	mov := &model.StockMovement{
		ProductID:   product.ID,
		ProductName: product.Name,
		Kind:        model.MovementOut,
		Reason:      reason,
		Quantity:    item.Quantity,
		StockBefore: product.Quantity,
		StockAfter:  product.Quantity - item.Quantity,
	}
	if err := s.movements.CreateTx(tx, mov); err != nil {
		return err
	}
	return s.products.AdjustStockTx(tx, product.ID, -item.Quantity)
}

func saleItemFromRequest(item dto.SaleItemRequest) model.SaleItem {
	out := model.SaleItem{
		Name:      item.Name,
		UnitPrice: item.UnitPrice,
		Quantity:  item.Quantity,
		Subtotal:  item.Subtotal,
		Category:  item.Category,
		Manual:    item.Manual,
	}
	if !item.Manual && item.ProductID != nil {
		if id, err := uuid.Parse(*item.ProductID); err == nil {
			out.ProductID = &id
		}
	}
	return out
}

func saleToResponse(s *model.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, item := range s.Items {
		var productID *string
		if item.ProductID != nil {
			id := item.ProductID.String()
			productID = &id
		}
		items = append(items, dto.SaleItemResponse{
			ProductID: productID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
			Category:  item.Category,
			Manual:    item.Manual,
		})
	}
	return &dto.SaleResponse{
		ID:             s.ID.String(),
		Items:          items,
		Total:          s.Total,
		TenderMethod:   s.TenderMethod,
		AmountTendered: s.AmountTendered,
		Change:         s.Change,
		CreatedAt:      s.CreatedAt.Format(time.RFC3339),
	}
}
