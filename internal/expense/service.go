package expense

import (
	"context"
	"errors"
	"time"

	"github.com/msaleh/fairsplit/pkg/money"
)

// Common errors
var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrNegativeAmount  = errors.New("amount cannot be negative")
	ErrNotPayer        = errors.New("only the payer can modify this expense")
)

// Service handles expense business logic
type Service struct {
	repo *Repository
}

// NewService creates a new expense service with the repository injected
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// CreateExpense logs a new expense. Amounts are rounded to cents on the way
// in so downstream balance sums stay close to two-decimal values.
func (s *Service) CreateExpense(ctx context.Context, payerID int64, req *CreateExpenseRequest) (*Expense, error) {
	if req.Amount < 0 {
		return nil, ErrNegativeAmount
	}
	req.Amount = money.Round(req.Amount)

	if req.Source == "" {
		req.Source = string(SourceManual)
	}
	if req.OccurredAt == nil {
		now := time.Now().UTC()
		req.OccurredAt = &now
	}

	return s.repo.Create(ctx, payerID, req)
}

// GetByID retrieves an expense by its ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Expense, error) {
	expense, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}
	return expense, nil
}

// ListByGroupID retrieves expenses for a group with pagination and filters
func (s *Service) ListByGroupID(ctx context.Context, groupID int64, f Filter, page, perPage int) ([]*Expense, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListByGroupID(ctx, groupID, f, perPage, offset)
}

// ListInScope returns every expense matching the filter, unpaginated, for
// settlement and reporting.
func (s *Service) ListInScope(ctx context.Context, groupID int64, f Filter) ([]*Expense, error) {
	return s.repo.ListInScope(ctx, groupID, f)
}

// Update modifies an existing expense; only the payer may do so
func (s *Service) Update(ctx context.Context, id, userID int64, req *UpdateExpenseRequest) (*Expense, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrExpenseNotFound
	}
	if existing.PayerID != userID {
		return nil, ErrNotPayer
	}

	return s.repo.Update(ctx, id, req)
}

// Delete removes an expense; only the payer may do so
func (s *Service) Delete(ctx context.Context, id, userID int64) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrExpenseNotFound
	}
	if existing.PayerID != userID {
		return ErrNotPayer
	}

	return s.repo.Delete(ctx, id)
}
