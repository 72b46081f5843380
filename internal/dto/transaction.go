package dto

import (
	"time"

	"github.com/finman-app/pfm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// The amount is always positive; direction comes from the transaction type.
type CreateTransactionRequest struct {
	AccountID       int64                  `json:"accountId" binding:"required"`
	Amount          decimal.Decimal        `json:"amount" binding:"required"`
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,oneof=income expense transfer"`
	Description     string                 `json:"description"`
}

// TransactionResponse defines the data returned for a ledger record.
type TransactionResponse struct {
	ID              int64                  `json:"id"`
	AccountID       int64                  `json:"accountId"`
	Amount          decimal.Decimal        `json:"amount"`
	TransactionType domain.TransactionType `json:"transactionType"`
	Description     string                 `json:"description"`
	Date            time.Time              `json:"date"`
}

// ListTransactionsParams defines query parameters for the recent-transactions listing.
type ListTransactionsParams struct {
	Limit int `form:"limit,default=10" binding:"omitempty,min=0"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              txn.ID,
		AccountID:       txn.AccountID,
		Amount:          txn.Amount,
		TransactionType: txn.TransactionType,
		Description:     txn.Description,
		Date:            txn.Date,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to response DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}
