package service

import "errors"

// Domain errors form a closed set so callers can branch with errors.Is
// instead of matching message text. Persistence faults are wrapped with %w
// and surface through errors.Is against the store's sentinels.
var (
	// ErrAccountNotFound means the referenced source or destination id has
	// no matching record.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInsufficientFunds means the source balance is less than the
	// requested transfer amount.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrSameAccount means source and destination are the same account.
	ErrSameAccount = errors.New("source and destination accounts are the same")

	// ErrBadAmount means the amount is not a positive number of minor units.
	ErrBadAmount = errors.New("amount must be > 0")
)
