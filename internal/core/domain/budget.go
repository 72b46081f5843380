package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetPeriod is the span a budget cap applies to.
type BudgetPeriod string

const (
	Monthly   BudgetPeriod = "monthly"
	Quarterly BudgetPeriod = "quarterly"
	Yearly    BudgetPeriod = "yearly"
)

// Valid reports whether p is one of the known budget periods.
func (p BudgetPeriod) Valid() bool {
	switch p {
	case Monthly, Quarterly, Yearly:
		return true
	}
	return false
}

// Budget is a named spending cap for a category over a period. Names are
// unique only among active budgets; deactivating a budget frees its name
// for reuse. Budgets are never removed, only flagged inactive.
type Budget struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Period    BudgetPeriod    `json:"period"`
	StartDate time.Time       `json:"startDate"`
	IsActive  bool            `json:"isActive"`
}
