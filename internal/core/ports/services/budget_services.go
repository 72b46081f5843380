package services

import (
	"github.com/finman-app/pfm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BudgetSvcFacade defines the operations the budget manager exposes to the
// boundary layer. Budgets are never removed, only deactivated.
type BudgetSvcFacade interface {
	// CreateBudget registers a new active budget with the next sequential
	// ID. The name must be unique among currently active budgets only.
	CreateBudget(name, category string, amount decimal.Decimal, period domain.BudgetPeriod) (*domain.Budget, error)

	// GetBudgetByID retrieves a specific budget by its unique identifier.
	GetBudgetByID(id int64) (*domain.Budget, error)

	// GetActiveBudgets returns the active budgets in creation order.
	GetActiveBudgets() []domain.Budget

	// ListBudgets returns all budgets, active or not, in creation order.
	ListBudgets() []domain.Budget

	// GetTotalBudgetAmount sums the amounts of all active budgets.
	GetTotalBudgetAmount() decimal.Decimal

	// DeactivateBudget flips the budget to inactive, freeing its name for
	// reuse. Deactivating an already-inactive budget is a no-op.
	DeactivateBudget(id int64) (*domain.Budget, error)
}
