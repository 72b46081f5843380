package services

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/finman-app/pfm_backend/internal/apperrors"
	"github.com/finman-app/pfm_backend/internal/core/domain"
	portssvc "github.com/finman-app/pfm_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// TransactionManager owns the append-only ledger of monetary events.
// Records are immutable once appended and are never removed. Whether the
// referenced account exists is deliberately not checked here; the boundary
// layer performs that lookup before calling in.
type TransactionManager struct {
	mu           sync.RWMutex
	transactions []domain.Transaction
	nextID       int64
	now          func() time.Time
}

// TransactionManagerOption is a functional option for configuring the
// transaction manager.
type TransactionManagerOption func(*TransactionManager)

// WithTransactionClock overrides the clock used for transaction dates.
func WithTransactionClock(now func() time.Time) TransactionManagerOption {
	return func(m *TransactionManager) {
		m.now = now
	}
}

// NewTransactionManager creates an empty ledger. IDs start at 1.
func NewTransactionManager(options ...TransactionManagerOption) *TransactionManager {
	m := &TransactionManager{
		nextID: 1,
		now:    time.Now,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Ensure TransactionManager implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*TransactionManager)(nil)

// AddTransaction appends a new record dated now. The amount must be
// strictly positive; direction is carried by the transaction type, not the
// sign.
func (m *TransactionManager) AddTransaction(accountID int64, amount decimal.Decimal, transactionType domain.TransactionType, description string) (*domain.Transaction, error) {
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("transaction amount: %w", apperrors.ErrInvalidAmount)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	txn := domain.Transaction{
		ID:              m.nextID,
		AccountID:       accountID,
		Amount:          amount,
		TransactionType: transactionType,
		Description:     description,
		Date:            m.now(),
	}
	m.nextID++
	m.transactions = append(m.transactions, txn)

	cp := txn
	return &cp, nil
}

// GetTransactionsByAccount returns the records tagged to the given account
// in insertion order; the result is empty if there are none.
func (m *TransactionManager) GetTransactionsByAccount(accountID int64) []domain.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Transaction, 0)
	for _, txn := range m.transactions {
		if txn.AccountID == accountID {
			out = append(out, txn)
		}
	}
	return out
}

// GetRecentTransactions returns at most limit records, most recent date
// first. The sort is stable, so records sharing a date keep their insertion
// order relative to each other.
func (m *TransactionManager) GetRecentTransactions(limit int) []domain.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Transaction, len(m.transactions))
	copy(out, m.transactions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})

	if limit < 0 {
		limit = 0
	}
	if limit > len(out) {
		limit = len(out)
	}
	return out[:limit]
}

// ListTransactions returns the whole ledger in insertion order.
func (m *TransactionManager) ListTransactions() []domain.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Transaction, len(m.transactions))
	copy(out, m.transactions)
	return out
}
