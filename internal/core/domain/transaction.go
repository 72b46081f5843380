package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType carries the direction of a monetary event; the amount
// itself is always positive.
type TransactionType string

const (
	Income   TransactionType = "income"
	Expense  TransactionType = "expense"
	Transfer TransactionType = "transfer"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case Income, Expense, Transfer:
		return true
	}
	return false
}

// Transaction is an immutable record of a single income/expense/transfer
// event tied to an account. AccountID is a reference only; the ledger does
// not enforce that the account exists.
type Transaction struct {
	ID              int64           `json:"id"`
	AccountID       int64           `json:"accountId"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType TransactionType `json:"transactionType"`
	Description     string          `json:"description"`
	Date            time.Time       `json:"date"`
}
