package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a recorded payment against a debt, with the interest/principal
// split the engine computed when it was applied.
type Payment struct {
	CreatedAt        time.Time
	ID               string
	DebtID           string
	UserID           string
	Amount           decimal.Decimal
	InterestPortion  decimal.Decimal
	PrincipalPortion decimal.Decimal
	BalanceBefore    decimal.Decimal
	BalanceAfter     decimal.Decimal
}
