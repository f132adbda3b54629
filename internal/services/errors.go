package services

import "errors"

// Withdrawal workflow failures. Handlers map these onto HTTP statuses;
// none of them leave partial state behind.
var (
	ErrInvalidRequest            = errors.New("invalid request data")
	ErrInsufficientFunds         = errors.New("insufficient funds")
	ErrRequestNotFoundOrDone     = errors.New("request not found or already processed")
	ErrInsufficientWalletBalance = errors.New("wallet balance is insufficient, cannot approve")
	ErrInvalidStatus             = errors.New("invalid status update")
)
