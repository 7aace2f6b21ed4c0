package domain

import "errors"

// Error kinds returned by the wallet services. Callers match them with errors.Is.
var (
	// ErrInvalidAmount: amount missing, non-numeric, zero or negative.
	ErrInvalidAmount = errors.New("invalid amount: must be a positive number")

	// ErrInsufficientFunds: the withdrawal or transfer exceeds the current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAccountID: the contact account id is not exactly six digits.
	ErrInvalidAccountID = errors.New("invalid account id: must be numeric with 6 digits")

	// ErrIndexOutOfRange: no contact at the given position (stale reference or none selected).
	ErrIndexOutOfRange = errors.New("contact index out of range")

	// ErrContactNotFound: no contact with the given ID.
	ErrContactNotFound = errors.New("contact not found")

	// ErrCorruptState: a persisted record could not be decoded or breaks an invariant.
	ErrCorruptState = errors.New("corrupt persisted state")

	// ErrInvalidCredentials: login email/password pair does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
