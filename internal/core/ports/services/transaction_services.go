package services

import (
	"github.com/finman-app/pfm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionSvcFacade defines the operations the transaction ledger
// exposes to the boundary layer. The ledger is append-only; records are
// never updated or removed.
type TransactionSvcFacade interface {
	// AddTransaction appends a new record with the next sequential ID and
	// the current timestamp. The referenced account is not validated here;
	// that check belongs to the caller.
	AddTransaction(accountID int64, amount decimal.Decimal, transactionType domain.TransactionType, description string) (*domain.Transaction, error)

	// GetTransactionsByAccount returns the records for one account in
	// insertion order.
	GetTransactionsByAccount(accountID int64) []domain.Transaction

	// GetRecentTransactions returns at most limit records ordered by date
	// descending; ties keep their insertion order.
	GetRecentTransactions(limit int) []domain.Transaction

	// ListTransactions returns the whole ledger in insertion order.
	ListTransactions() []domain.Transaction
}
