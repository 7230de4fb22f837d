package bank

import "errors"

// Domain errors. All of them are recoverable validation failures: the
// session layer reports them and re-prompts, nothing is fatal.
var (
	// ErrAuthentication covers both an unknown user ID and a wrong PIN.
	// A failed login is a normal outcome, not an exceptional one.
	ErrAuthentication = errors.New("incorrect user ID or PIN")

	// ErrInvalidAmount rejects zero or negative deposit/withdrawal amounts.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInsufficientFunds rejects a withdrawal or transfer exceeding the
	// source account's current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAccountIndex rejects an account index outside the user's
	// account list.
	ErrInvalidAccountIndex = errors.New("account index out of range")
)
