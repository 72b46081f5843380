package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/finman-app/pfm_backend/internal/apperrors"
	"github.com/finman-app/pfm_backend/internal/core/domain"
	portssvc "github.com/finman-app/pfm_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// AccountManager owns the in-memory collection of accounts. Every operation
// runs under a single mutex, so a shared instance is safe behind a
// concurrent HTTP boundary.
type AccountManager struct {
	mu       sync.RWMutex
	accounts []*domain.Account
	nextID   int64
	now      func() time.Time
}

// AccountManagerOption is a functional option for configuring the account manager.
type AccountManagerOption func(*AccountManager)

// WithAccountClock overrides the clock used for creation timestamps.
func WithAccountClock(now func() time.Time) AccountManagerOption {
	return func(m *AccountManager) {
		m.now = now
	}
}

// NewAccountManager creates an empty account manager. IDs start at 1 and
// are never reused, even after deletion.
func NewAccountManager(options ...AccountManagerOption) *AccountManager {
	m := &AccountManager{
		nextID: 1,
		now:    time.Now,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Ensure AccountManager implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*AccountManager)(nil)

// CreateAccount registers a new account. The name must not collide with any
// existing account, active or not. The initial balance is stored as given;
// callers are expected to pass a non-negative value, but the contract does
// not reject a negative one.
func (m *AccountManager) CreateAccount(name string, accountType domain.AccountType, initialBalance decimal.Decimal) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, acc := range m.accounts {
		if acc.Name == name {
			return nil, fmt.Errorf("account %q: %w", name, apperrors.ErrDuplicateName)
		}
	}

	account := &domain.Account{
		ID:          m.nextID,
		Name:        name,
		AccountType: accountType,
		Balance:     initialBalance,
		CreatedAt:   m.now(),
		IsActive:    true,
	}
	m.nextID++
	m.accounts = append(m.accounts, account)

	cp := *account
	return &cp, nil
}

// GetAccountByID returns a snapshot of the account with the given ID, or
// ErrNotFound.
func (m *AccountManager) GetAccountByID(id int64) (*domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	acc := m.findLocked(id)
	if acc == nil {
		return nil, fmt.Errorf("account %d: %w", id, apperrors.ErrNotFound)
	}
	cp := *acc
	return &cp, nil
}

// ListAccounts returns snapshots of all accounts in creation order.
func (m *AccountManager) ListAccounts() []domain.Account {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Account, 0, len(m.accounts))
	for _, acc := range m.accounts {
		out = append(out, *acc)
	}
	return out
}

// GetTotalBalance sums the balances of all active accounts; inactive
// accounts are excluded from the total.
func (m *AccountManager) GetTotalBalance() decimal.Decimal {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := decimal.Zero
	for _, acc := range m.accounts {
		if acc.IsActive {
			total = total.Add(acc.Balance)
		}
	}
	return total
}

// Deposit adds amount to the account's balance and returns the new balance.
func (m *AccountManager) Deposit(id int64, amount decimal.Decimal) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	acc := m.findLocked(id)
	if acc == nil {
		return decimal.Decimal{}, fmt.Errorf("account %d: %w", id, apperrors.ErrNotFound)
	}
	return acc.Deposit(amount)
}

// Withdraw subtracts amount from the account's balance and returns the new
// balance. A failed withdrawal leaves the balance unchanged.
func (m *AccountManager) Withdraw(id int64, amount decimal.Decimal) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	acc := m.findLocked(id)
	if acc == nil {
		return decimal.Decimal{}, fmt.Errorf("account %d: %w", id, apperrors.ErrNotFound)
	}
	return acc.Withdraw(amount)
}

// DeactivateAccount flips the account to inactive and returns its
// snapshot. The account stays in the collection, so its name remains taken
// and its ledger references stay resolvable; only the total balance stops
// counting it. Deactivating an already-inactive account is a no-op.
func (m *AccountManager) DeactivateAccount(id int64) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	acc := m.findLocked(id)
	if acc == nil {
		return nil, fmt.Errorf("account %d: %w", id, apperrors.ErrNotFound)
	}
	acc.IsActive = false
	cp := *acc
	return &cp, nil
}

// DeleteAccount removes the account with the given ID. It reports false
// without error when no such account exists, and fails with
// ErrNonZeroBalance (leaving the account in place) unless the balance is
// exactly zero. The freed ID is never reassigned.
func (m *AccountManager) DeleteAccount(id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, acc := range m.accounts {
		if acc.ID != id {
			continue
		}
		if !acc.Balance.IsZero() {
			return false, fmt.Errorf("account %d: %w", id, apperrors.ErrNonZeroBalance)
		}
		m.accounts = append(m.accounts[:i], m.accounts[i+1:]...)
		return true, nil
	}
	return false, nil
}

// findLocked does a linear scan for the account; callers hold the lock.
func (m *AccountManager) findLocked(id int64) *domain.Account {
	for _, acc := range m.accounts {
		if acc.ID == id {
			return acc
		}
	}
	return nil
}
