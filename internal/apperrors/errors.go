package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrInvalidAmount indicates that a monetary amount required to be strictly
// positive was zero or negative.
var ErrInvalidAmount = errors.New("amount must be positive")

// ErrInsufficientFunds indicates that a withdrawal amount exceeds the
// account's current balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrDuplicateName indicates that a new account or active-budget name
// collides with an existing one.
var ErrDuplicateName = errors.New("name already exists")

// ErrNonZeroBalance indicates that deletion was attempted on an account
// whose balance is not exactly zero.
var ErrNonZeroBalance = errors.New("account balance is not zero")
