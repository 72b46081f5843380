package domain

import (
	"time"

	"github.com/finman-app/pfm_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// AccountType classifies a bank-style account.
type AccountType string

const (
	Checking   AccountType = "checking"
	Savings    AccountType = "savings"
	Credit     AccountType = "credit"
	Investment AccountType = "investment"
)

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	switch t {
	case Checking, Savings, Credit, Investment:
		return true
	}
	return false
}

// Account is a named monetary balance of a given type.
// The ID is assigned by the AccountManager and immutable afterwards; the
// balance may only change through Deposit and Withdraw.
type Account struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"`
	CreatedAt   time.Time       `json:"createdAt"`
	IsActive    bool            `json:"isActive"`
}

// Deposit adds amount to the balance and returns the new balance.
// The amount must be strictly positive.
func (a *Account) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.Sign() <= 0 {
		return decimal.Decimal{}, apperrors.ErrInvalidAmount
	}
	a.Balance = a.Balance.Add(amount)
	return a.Balance, nil
}

// Withdraw subtracts amount from the balance and returns the new balance.
// The amount must be strictly positive and must not exceed the current
// balance; the check happens before any mutation, so a failed withdrawal
// leaves the balance untouched.
func (a *Account) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.Sign() <= 0 {
		return decimal.Decimal{}, apperrors.ErrInvalidAmount
	}
	if amount.GreaterThan(a.Balance) {
		return decimal.Decimal{}, apperrors.ErrInsufficientFunds
	}
	a.Balance = a.Balance.Sub(amount)
	return a.Balance, nil
}
