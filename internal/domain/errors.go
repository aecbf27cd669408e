package domain

import "errors"

var (
	// Ledger errors
	ErrUserNotFound         = errors.New("user not found")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrStatementNotFound    = errors.New("statement operation not found")
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrInvalidOperationType = errors.New("operation type must be deposit or withdraw")

	// User errors
	ErrEmailAlreadyTaken = errors.New("email already registered")
)
