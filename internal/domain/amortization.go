package domain

import "github.com/shopspring/decimal"

// MaxPayoffMonths bounds every payoff simulation at 100 years. It is the
// only resource limit in the engine; pathological inputs (payments that
// barely cover interest) terminate here instead of spinning.
const MaxPayoffMonths = 1200

// PaymentBreakdown is the interest/principal split of a single payment
// applied to a single debt.
type PaymentBreakdown struct {
	InterestPortion  decimal.Decimal
	PrincipalPortion decimal.Decimal
	NewBalance       decimal.Decimal
	IsFullPayoff     bool
}

// ComputeBreakdown splits payment into interest and principal against the
// given balance. Interest is capped at one month of accrual; principal
// floors at zero, so the balance never increases. A payment larger than
// balance plus interest leaves NewBalance at zero rather than overpaying.
//
// Inputs are not validated here. Callers validate once at the entry point
// so the per-month loop stays branch-free.
func ComputeBreakdown(balance, annualRatePercent, payment decimal.Decimal) PaymentBreakdown {
	interestDue := MonthlyInterest(balance, annualRatePercent)
	interest := decimal.Min(interestDue, payment)
	principal := decimal.Max(payment.Sub(interest), decimal.Zero)
	newBalance := decimal.Max(balance.Sub(principal), decimal.Zero).Round(2)

	return PaymentBreakdown{
		InterestPortion:  interest.Round(2),
		PrincipalPortion: principal.Round(2),
		NewBalance:       newBalance,
		IsFullPayoff:     newBalance.IsZero(),
	}
}

// PayoffEstimate summarizes a minimum-payments-only payoff projection.
// When PaysOff is false the debt never clears at the contractual minimum
// (or would take longer than MaxPayoffMonths); Months and TotalInterest
// are meaningless in that case.
type PayoffEstimate struct {
	Months        int
	TotalInterest decimal.Decimal
	PaysOff       bool
}

// EstimatePayoff projects how many months of minimum payments clear the
// debt. A minimum payment that cannot beat the monthly interest never
// reduces the balance; that is detected on the first month and reported
// as PaysOff=false instead of looping to the cap.
func EstimatePayoff(debt *Debt) PayoffEstimate {
	if !debt.IsOpen() {
		return PayoffEstimate{Months: 0, TotalInterest: decimal.Zero, PaysOff: true}
	}

	balance := debt.Balance
	totalInterest := decimal.Zero

	for month := 1; month <= MaxPayoffMonths; month++ {
		b := ComputeBreakdown(balance, debt.AnnualRatePercent, debt.MinimumPayment)
		if b.PrincipalPortion.IsZero() {
			return PayoffEstimate{PaysOff: false}
		}

		totalInterest = totalInterest.Add(b.InterestPortion)
		balance = b.NewBalance

		if b.IsFullPayoff {
			return PayoffEstimate{
				Months:        month,
				TotalInterest: totalInterest,
				PaysOff:       true,
			}
		}
	}

	return PayoffEstimate{PaysOff: false}
}
