package dto

import "github.com/shopspring/decimal"

// SummaryResponse aggregates the headline numbers for the dashboard: total
// balance across active accounts and total cap across active budgets, plus
// entity counts.
type SummaryResponse struct {
	TotalBalance      decimal.Decimal `json:"totalBalance"`
	TotalBudgetAmount decimal.Decimal `json:"totalBudgetAmount"`
	AccountCount      int             `json:"accountCount"`
	ActiveBudgetCount int             `json:"activeBudgetCount"`
	TransactionCount  int             `json:"transactionCount"`
}
