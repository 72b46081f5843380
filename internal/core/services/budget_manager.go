package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/finman-app/pfm_backend/internal/apperrors"
	"github.com/finman-app/pfm_backend/internal/core/domain"
	portssvc "github.com/finman-app/pfm_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// BudgetManager owns the in-memory collection of budgets. Budgets are never
// removed; deactivation is the only lifecycle transition, and it frees the
// budget's name for reuse.
type BudgetManager struct {
	mu      sync.RWMutex
	budgets []*domain.Budget
	nextID  int64
	now     func() time.Time
}

// BudgetManagerOption is a functional option for configuring the budget manager.
type BudgetManagerOption func(*BudgetManager)

// WithBudgetClock overrides the clock used for budget start dates.
func WithBudgetClock(now func() time.Time) BudgetManagerOption {
	return func(m *BudgetManager) {
		m.now = now
	}
}

// NewBudgetManager creates an empty budget manager. IDs start at 1.
func NewBudgetManager(options ...BudgetManagerOption) *BudgetManager {
	m := &BudgetManager{
		nextID: 1,
		now:    time.Now,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Ensure BudgetManager implements the BudgetSvcFacade interface
var _ portssvc.BudgetSvcFacade = (*BudgetManager)(nil)

// CreateBudget registers a new active budget starting today. The amount
// must be strictly positive and the name must not collide with another
// active budget; an inactive budget with the same name does not block
// creation.
func (m *BudgetManager) CreateBudget(name, category string, amount decimal.Decimal, period domain.BudgetPeriod) (*domain.Budget, error) {
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("budget amount: %w", apperrors.ErrInvalidAmount)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, b := range m.budgets {
		if b.IsActive && b.Name == name {
			return nil, fmt.Errorf("active budget %q: %w", name, apperrors.ErrDuplicateName)
		}
	}

	now := m.now()
	budget := &domain.Budget{
		ID:        m.nextID,
		Name:      name,
		Category:  category,
		Amount:    amount,
		Period:    period,
		StartDate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		IsActive:  true,
	}
	m.nextID++
	m.budgets = append(m.budgets, budget)

	cp := *budget
	return &cp, nil
}

// GetBudgetByID returns a snapshot of the budget with the given ID, or
// ErrNotFound.
func (m *BudgetManager) GetBudgetByID(id int64) (*domain.Budget, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b := m.findLocked(id)
	if b == nil {
		return nil, fmt.Errorf("budget %d: %w", id, apperrors.ErrNotFound)
	}
	cp := *b
	return &cp, nil
}

// GetActiveBudgets returns snapshots of the active budgets in creation order.
func (m *BudgetManager) GetActiveBudgets() []domain.Budget {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Budget, 0)
	for _, b := range m.budgets {
		if b.IsActive {
			out = append(out, *b)
		}
	}
	return out
}

// ListBudgets returns snapshots of all budgets, active or not.
func (m *BudgetManager) ListBudgets() []domain.Budget {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Budget, 0, len(m.budgets))
	for _, b := range m.budgets {
		out = append(out, *b)
	}
	return out
}

// GetTotalBudgetAmount sums the amounts of all active budgets; deactivated
// budgets are excluded.
func (m *BudgetManager) GetTotalBudgetAmount() decimal.Decimal {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := decimal.Zero
	for _, b := range m.budgets {
		if b.IsActive {
			total = total.Add(b.Amount)
		}
	}
	return total
}

// DeactivateBudget flips the budget to inactive and returns its snapshot.
// Deactivating an already-inactive budget is a no-op, not an error.
func (m *BudgetManager) DeactivateBudget(id int64) (*domain.Budget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b := m.findLocked(id)
	if b == nil {
		return nil, fmt.Errorf("budget %d: %w", id, apperrors.ErrNotFound)
	}
	b.IsActive = false
	cp := *b
	return &cp, nil
}

// findLocked does a linear scan for the budget; callers hold the lock.
func (m *BudgetManager) findLocked(id int64) *domain.Budget {
	for _, b := range m.budgets {
		if b.ID == id {
			return b
		}
	}
	return nil
}
