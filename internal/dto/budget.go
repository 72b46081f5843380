package dto

import (
	"github.com/finman-app/pfm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to create a budget.
// The period is optional and defaults to monthly.
type CreateBudgetRequest struct {
	Name     string              `json:"name" binding:"required"`
	Category string              `json:"category" binding:"required"`
	Amount   decimal.Decimal     `json:"amount" binding:"required"`
	Period   domain.BudgetPeriod `json:"period" binding:"omitempty,oneof=monthly quarterly yearly"`
}

// BudgetResponse defines the data returned for a budget. The start date is
// a plain calendar date, not a timestamp.
type BudgetResponse struct {
	ID        int64               `json:"id"`
	Name      string              `json:"name"`
	Category  string              `json:"category"`
	Amount    decimal.Decimal     `json:"amount"`
	Period    domain.BudgetPeriod `json:"period"`
	StartDate string              `json:"startDate"`
	IsActive  bool                `json:"isActive"`
}

// ToBudgetResponse converts a domain.Budget to BudgetResponse DTO
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		ID:        b.ID,
		Name:      b.Name,
		Category:  b.Category,
		Amount:    b.Amount,
		Period:    b.Period,
		StartDate: b.StartDate.Format("2006-01-02"),
		IsActive:  b.IsActive,
	}
}

// ToListBudgetResponse converts a slice of domain.Budget to response DTOs
func ToListBudgetResponse(budgets []domain.Budget) []BudgetResponse {
	res := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		res[i] = ToBudgetResponse(&b)
	}
	return res
}
