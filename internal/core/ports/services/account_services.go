package services

import (
	"github.com/finman-app/pfm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountSvcFacade defines the operations the account manager exposes to
// the boundary layer.
type AccountSvcFacade interface {
	// CreateAccount registers a new account with the next sequential ID.
	// The initial balance is stored as given; only the name uniqueness is
	// checked here.
	CreateAccount(name string, accountType domain.AccountType, initialBalance decimal.Decimal) (*domain.Account, error)

	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(id int64) (*domain.Account, error)

	// ListAccounts returns all accounts in creation order.
	ListAccounts() []domain.Account

	// GetTotalBalance sums the balances of all active accounts.
	GetTotalBalance() decimal.Decimal

	// Deposit adds a positive amount to the account's balance and returns
	// the new balance.
	Deposit(id int64, amount decimal.Decimal) (decimal.Decimal, error)

	// Withdraw subtracts a positive amount from the account's balance and
	// returns the new balance.
	Withdraw(id int64, amount decimal.Decimal) (decimal.Decimal, error)

	// DeactivateAccount flips the account to inactive, excluding it from
	// the total balance. The account and its name remain reserved.
	DeactivateAccount(id int64) (*domain.Account, error)

	// DeleteAccount removes the account if its balance is exactly zero.
	// It reports false without error when no such account exists.
	DeleteAccount(id int64) (bool, error)
}
