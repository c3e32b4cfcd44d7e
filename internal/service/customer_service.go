package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tiendapos/internal/dto"
	"tiendapos/internal/model"
	"tiendapos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CustomerService manages the customer registry and the credit ("fiado")
// ledger. Balances are always derived from the ledger, never stored.
type CustomerService interface {
	ListWithDebts(ctx context.Context) ([]dto.CustomerDebtResponse, error)
	Create(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Movements(ctx context.Context, id uuid.UUID) ([]dto.CreditEntryResponse, error)
	RegisterPayment(ctx context.Context, req dto.RegisterPaymentRequest) (*dto.PaymentResponse, error)
}

type customerService struct {
	repo    repository.CustomerRepository
	credits repository.CreditEntryRepository
	audit   repository.AuditRepository
}

func NewCustomerService(
	repo repository.CustomerRepository,
	credits repository.CreditEntryRepository,
	audit repository.AuditRepository,
) CustomerService {
	return &customerService{repo: repo, credits: credits, audit: audit}
}

// ListWithDebts returns every customer with its derived balance, floored at
// zero for display.
func (s *customerService) ListWithDebts(ctx context.Context) ([]dto.CustomerDebtResponse, error) {
	rows, err := s.repo.ListWithBalances(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CustomerDebtResponse, 0, len(rows))
	for _, row := range rows {
		balance := row.Balance
		if balance.IsNegative() {
			balance = decimal.Zero
		}
		resp = append(resp, dto.CustomerDebtResponse{
			ID:      row.ID.String(),
			Name:    row.Name,
			Phone:   row.Phone,
			Balance: balance,
		})
	}
	return resp, nil
}

// Create registers a customer. Names are unique case-insensitively: the
// pre-check gives a friendly error and the unique index on the normalized
// name backstops concurrent creates.
func (s *customerService) Create(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	// Whitespace-only names slip past the DTO's required tag.
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrEmptyCustomerName
	}
	normalized := strings.ToLower(name)

	if _, err := s.repo.FindByNormalizedName(ctx, normalized); err == nil {
		return nil, ErrDuplicateCustomer
	}

	customer := &model.Customer{
		Name:           name,
		NameNormalized: normalized,
		Phone:          req.Phone,
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		// A concurrent create may have taken the name between the check and
		// the insert; the unique index turns that into an error here.
		if _, lookupErr := s.repo.FindByNormalizedName(ctx, normalized); lookupErr == nil {
			return nil, ErrDuplicateCustomer
		}
		return nil, err
	}

	_ = s.audit.Create(ctx, &model.AuditEntry{
		Action: "NUEVO_CLIENTE",
		Detail: fmt.Sprintf("Se registró a: %s", customer.Name),
	})

	return &dto.CustomerResponse{
		ID:    customer.ID.String(),
		Name:  customer.Name,
		Phone: customer.Phone,
	}, nil
}

// Delete removes a customer and cascades to its credit entries in one
// transaction, so a failure mid-cascade cannot orphan ledger rows.
func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrCustomerNotFound
	}
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.DeleteTx(tx, id); err != nil {
			return err
		}
		return s.credits.DeleteByCustomerTx(tx, id)
	})
}

// Movements returns a customer's credit ledger, newest first.
func (s *customerService) Movements(ctx context.Context, id uuid.UUID) ([]dto.CreditEntryResponse, error) {
	entries, err := s.credits.ListByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CreditEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.CreditEntryResponse{
			ID:          e.ID.String(),
			Description: e.Description,
			Amount:      e.Amount,
			Kind:        e.Kind,
			CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp, nil
}

// RegisterPayment records a PAYMENT entry against the customer's account.
// The recorded amount is capped at the outstanding balance; any surplus is
// returned as change so the till can hand it back. The balance can therefore
// never go negative through this path.
func (s *customerService) RegisterPayment(ctx context.Context, req dto.RegisterPaymentRequest) (*dto.PaymentResponse, error) {
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, ErrCustomerNotFound
	}
	if _, err := s.repo.FindByID(ctx, customerID); err != nil {
		return nil, ErrCustomerNotFound
	}
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	balance, err := s.credits.Balance(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !balance.IsPositive() {
		return nil, ErrNoOutstandingBalance
	}

	recorded := req.Amount
	change := decimal.Zero
	if recorded.GreaterThan(balance) {
		change = recorded.Sub(balance)
		recorded = balance
	}

	entry := &model.CreditEntry{
		CustomerID:  customerID,
		Description: "ABONO DE CUENTA",
		Amount:      recorded,
		Kind:        model.CreditPayment,
	}
	if err := s.credits.Create(ctx, entry); err != nil {
		return nil, err
	}

	_ = s.audit.Create(ctx, &model.AuditEntry{
		Action: "ABONO_CLIENTE",
		Detail: fmt.Sprintf("Monto: S/. %s", recorded.StringFixed(2)),
	})

	return &dto.PaymentResponse{
		CustomerID: customerID.String(),
		Recorded:   recorded,
		Change:     change,
		Balance:    balance.Sub(recorded),
	}, nil
}
