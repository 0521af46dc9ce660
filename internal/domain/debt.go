package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CloseEpsilon is the balance at or below which a debt counts as paid off.
// All simulation arithmetic rounds to cents, so one cent is the floor.
var CloseEpsilon = decimal.NewFromFloat(0.01)

// Debt represents a single liability with a contractual minimum payment.
type Debt struct {
	ID                string
	UserID            string
	Name              string
	Balance           decimal.Decimal
	AnnualRatePercent decimal.Decimal
	MinimumPayment    decimal.Decimal
	Active            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

var monthsPerYearTimes100 = decimal.NewFromInt(1200)

// MonthlyInterest returns one month of interest on balance at the given
// annual percentage rate, rounded to cents.
func MonthlyInterest(balance, annualRatePercent decimal.Decimal) decimal.Decimal {
	return balance.Mul(annualRatePercent).Div(monthsPerYearTimes100).Round(2)
}

// MonthlyInterestDue returns the interest accruing on the current balance
// over one month.
func (d *Debt) MonthlyInterestDue() decimal.Decimal {
	return MonthlyInterest(d.Balance, d.AnnualRatePercent)
}

// IsOpen reports whether the debt still carries a payable balance.
func (d *Debt) IsOpen() bool {
	return d.Balance.GreaterThan(CloseEpsilon)
}

// Clone returns a copy safe for simulation scratch work.
func (d *Debt) Clone() *Debt {
	c := *d
	return &c
}

// CloneDebts deep-copies a debt list. Simulations always work on clones so
// that two strategy runs never share mutable state.
func CloneDebts(debts []*Debt) []*Debt {
	cloned := make([]*Debt, len(debts))
	for i, d := range debts {
		cloned[i] = d.Clone()
	}
	return cloned
}
