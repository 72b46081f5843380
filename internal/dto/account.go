package dto

import (
	"time"

	"github.com/finman-app/pfm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// The initial balance is optional and defaults to zero.
type CreateAccountRequest struct {
	Name           string             `json:"name" binding:"required"`
	AccountType    domain.AccountType `json:"accountType" binding:"required,oneof=checking savings credit investment"`
	InitialBalance decimal.Decimal    `json:"initialBalance"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account; the balance marshals as an exact decimal string.
type AccountResponse struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	AccountType domain.AccountType `json:"accountType"`
	Balance     decimal.Decimal    `json:"balance"`
	IsActive    bool               `json:"isActive"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// AmountRequest carries the amount for a deposit or withdrawal.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// BalanceResponse returns an account's balance after a deposit or withdrawal.
type BalanceResponse struct {
	AccountID int64           `json:"accountId"`
	Balance   decimal.Decimal `json:"balance"`
}

// DeleteAccountResponse reports whether the account was removed.
type DeleteAccountResponse struct {
	Deleted bool `json:"deleted"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:          acc.ID,
		Name:        acc.Name,
		AccountType: acc.AccountType,
		Balance:     acc.Balance,
		IsActive:    acc.IsActive,
		CreatedAt:   acc.CreatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}
