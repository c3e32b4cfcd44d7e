package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"tiendapos/internal/dto"
	"tiendapos/internal/model"
	"tiendapos/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ProductService defines the business logic contract for the catalog.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	List(ctx context.Context) ([]dto.ProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo      repository.ProductRepository
	movements repository.StockMovementRepository
	audit     repository.AuditRepository
	rdb       *redis.Client
}

func NewProductService(
	repo repository.ProductRepository,
	movements repository.StockMovementRepository,
	audit repository.AuditRepository,
	rdb *redis.Client,
) ProductService {
	return &productService{repo: repo, movements: movements, audit: audit, rdb: rdb}
}

// Create registers a catalog item. An initial quantity > 0 seeds the kardex
// with one IN/INITIAL_REGISTRATION entry (stock-before = 0); the product,
// the kardex entry and the audit entry are written in one transaction.
func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	barcode := req.Code
	if barcode == "" {
		barcode = generateBarcode()
	}

	product := &model.Product{
		Barcode:  barcode,
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
		Unit:     defaultUnit(req.Unit),
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, product); err != nil {
			return err
		}
		if product.Quantity > 0 {
			mov := &model.StockMovement{
				ProductID:   product.ID,
				ProductName: product.Name,
				Kind:        model.MovementIn,
				Reason:      model.ReasonInitialRegistration,
				Quantity:    product.Quantity,
				StockBefore: 0,
				StockAfter:  product.Quantity,
			}
			if err := s.movements.CreateTx(tx, mov); err != nil {
				return err
			}
		}
		return s.audit.CreateTx(tx, &model.AuditEntry{
			Action: "CREAR_PRODUCTO",
			Detail: fmt.Sprintf("Se creó: %s", product.Name),
		})
	})
	if txErr != nil {
		return nil, txErr
	}
	return productToResponse(product), nil
}

func (s *productService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		resp = append(resp, *productToResponse(&products[i]))
	}
	return resp, nil
}

// Update edits a catalog item. A quantity change writes one
// MANUAL_ADJUSTMENT kardex entry (kind from the sign of the delta, magnitude
// = |delta|) before the catalog write; both happen in one transaction so the
// before/after snapshot always agrees with the persisted stock.
func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var updated *model.Product
	var priorBarcode string

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		prior, err := s.repo.FindByIDTx(tx, id)
		if err != nil {
			return ErrProductNotFound
		}
		priorBarcode = prior.Barcode

		if prior.Quantity != req.Quantity {
			diff := req.Quantity - prior.Quantity
			kind := model.MovementIn
			if diff < 0 {
				kind = model.MovementOut
				diff = -diff
			}
			mov := &model.StockMovement{
				ProductID:   prior.ID,
				ProductName: prior.Name,
				Kind:        kind,
				Reason:      model.ReasonManualAdjustment,
				Quantity:    diff,
				StockBefore: prior.Quantity,
				StockAfter:  req.Quantity,
			}
			if err := s.movements.CreateTx(tx, mov); err != nil {
				return err
			}
		}

		prior.Name = req.Name
		prior.Price = req.Price
		prior.Quantity = req.Quantity
		prior.Unit = defaultUnit(req.Unit)
		if req.Code != "" {
			prior.Barcode = req.Code
		}
		if err := s.repo.SaveTx(tx, prior); err != nil {
			return err
		}
		updated = prior

		return s.audit.CreateTx(tx, &model.AuditEntry{
			Action: "EDITAR_PRODUCTO",
			Detail: fmt.Sprintf("Se editó: %s", req.Name),
		})
	})
	if txErr != nil {
		return nil, txErr
	}
	// The public scanner caches prices by barcode; drop the stale entry so
	// a price edit shows up immediately. Covers barcode changes too.
	s.invalidatePriceCache(ctx, priorBarcode, updated.Barcode)
	return productToResponse(updated), nil
}

// Delete removes a catalog item. No kardex entry is produced: historical
// movements keep only their denormalized name snapshot.
func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	var barcode string
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		product, err := s.repo.FindByIDTx(tx, id)
		if err != nil {
			return ErrProductNotFound
		}
		barcode = product.Barcode
		if err := s.repo.DeleteTx(tx, id); err != nil {
			return err
		}
		return s.audit.CreateTx(tx, &model.AuditEntry{
			Action: "ELIMINAR_PRODUCTO",
			Detail: fmt.Sprintf("Se eliminó: %s", product.Name),
		})
	})
	if err != nil {
		return err
	}
	s.invalidatePriceCache(ctx, barcode)
	return nil
}

// invalidatePriceCache is best-effort: a miss simply repopulates on the next
// scan, so Redis errors (or a nil client in unit tests) are ignored. The key
// format must match the price-check handler's.
func (s *productService) invalidatePriceCache(ctx context.Context, barcodes ...string) {
	if s.rdb == nil {
		return
	}
	for _, b := range barcodes {
		if b != "" {
			_ = s.rdb.Del(ctx, "price:"+b).Err()
		}
	}
}

func defaultUnit(unit string) string {
	if unit == "" {
		return "unidad"
	}
	return unit
}

// generateBarcode produces a system code for products registered without one
// (loose goods, per-weight items). Millisecond timestamps keep codes unique
// for a single-terminal shop and fit the scanner input field.
func generateBarcode() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:       p.ID.String(),
		Code:     p.Barcode,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: p.Quantity,
		Unit:     p.Unit,
	}
}
