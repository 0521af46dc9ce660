package domain

import "errors"

var (
	// Debt errors
	ErrDebtNotFound = errors.New("debt not found")
	ErrDebtClosed   = errors.New("debt is already paid off")

	// Payment errors
	ErrPaymentNotFound = errors.New("payment not found")
	ErrInvalidAmount   = errors.New("amount must be positive")

	// Simulation errors
	ErrUnknownStrategy = errors.New("unknown payoff strategy")
	ErrNoDebts         = errors.New("no debts to simulate")
	ErrNegativeBalance = errors.New("balance cannot be negative")
	ErrNegativeRate    = errors.New("interest rate cannot be negative")
	ErrNegativePayment = errors.New("payment cannot be negative")
)
