package domain

import "github.com/shopspring/decimal"

// ProjectionPoint is one simulated month across a debt set.
type ProjectionPoint struct {
	Month              int
	TotalBalance       decimal.Decimal
	TotalPayment       decimal.Decimal
	TotalInterest      decimal.Decimal
	TotalPrincipal     decimal.Decimal
	CumulativePayments decimal.Decimal
}

// Timeline is a month-by-month projection. Completed distinguishes
// "debt-free before the horizon" from "gave up at the month cap".
type Timeline struct {
	Points    []ProjectionPoint
	Completed bool
}

// GenerateTimeline simulates up to months of payments across the debt set.
// Each month every open debt pays its minimum (capped at balance plus
// accrued interest), extra payment capacity is distributed by the strategy
// allocator, and debts whose balance falls to CloseEpsilon drop out of
// later months. The simulation stops early once every debt is closed.
//
// The input debts are never mutated; each run works on clones.
func GenerateTimeline(debts []*Debt, extraPayment decimal.Decimal, strategy Strategy, months int) Timeline {
	working := make([]*Debt, 0, len(debts))
	for _, d := range debts {
		if d.IsOpen() {
			working = append(working, d.Clone())
		}
	}
	if len(working) == 0 {
		return Timeline{Completed: true}
	}

	cumulative := decimal.Zero
	var points []ProjectionPoint

	for month := 1; month <= months; month++ {
		open := working[:0:0]
		for _, d := range working {
			if d.IsOpen() {
				open = append(open, d)
			}
		}
		if len(open) == 0 {
			return Timeline{Points: points, Completed: true}
		}

		extra := AllocateExtra(open, extraPayment, strategy)

		monthInterest := decimal.Zero
		monthPrincipal := decimal.Zero
		for _, d := range open {
			// The minimum may exceed what is owed on the final month;
			// cap the nominal payment so the debt is not overpaid.
			payment := decimal.Min(d.MinimumPayment, d.Balance.Add(d.MonthlyInterestDue()))
			if add, ok := extra[d.ID]; ok {
				payment = payment.Add(add)
			}

			b := ComputeBreakdown(d.Balance, d.AnnualRatePercent, payment)
			d.Balance = b.NewBalance
			monthInterest = monthInterest.Add(b.InterestPortion)
			monthPrincipal = monthPrincipal.Add(b.PrincipalPortion)
		}

		monthPayment := monthInterest.Add(monthPrincipal)
		cumulative = cumulative.Add(monthPayment)

		totalBalance := decimal.Zero
		for _, d := range working {
			totalBalance = totalBalance.Add(d.Balance)
		}

		points = append(points, ProjectionPoint{
			Month:              month,
			TotalBalance:       totalBalance,
			TotalPayment:       monthPayment,
			TotalInterest:      monthInterest,
			TotalPrincipal:     monthPrincipal,
			CumulativePayments: cumulative,
		})
	}

	for _, d := range working {
		if d.IsOpen() {
			return Timeline{Points: points, Completed: false}
		}
	}
	return Timeline{Points: points, Completed: true}
}
