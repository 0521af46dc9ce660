package domain

import "github.com/shopspring/decimal"

// StrategyResult reduces a full timeline run to its headline numbers.
// PaidOff is false when the debts outlive MaxPayoffMonths.
type StrategyResult struct {
	Months            int
	TotalInterestPaid decimal.Decimal
	TotalPayments     decimal.Decimal
	PaidOff           bool
}

// StrategyComparison is the result of running avalanche and snowball over
// the same starting snapshot.
type StrategyComparison struct {
	Avalanche   StrategyResult
	Snowball    StrategyResult
	Recommended Strategy
	Savings     decimal.Decimal
}

// SimulateStrategy runs a full payoff timeline under one strategy.
func SimulateStrategy(debts []*Debt, extraPayment decimal.Decimal, strategy Strategy) StrategyResult {
	tl := GenerateTimeline(debts, extraPayment, strategy, MaxPayoffMonths)

	result := StrategyResult{
		Months:            len(tl.Points),
		TotalInterestPaid: decimal.Zero,
		TotalPayments:     decimal.Zero,
		PaidOff:           tl.Completed,
	}
	for _, p := range tl.Points {
		result.TotalInterestPaid = result.TotalInterestPaid.Add(p.TotalInterest)
		result.TotalPayments = result.TotalPayments.Add(p.TotalPayment)
	}

	return result
}

// CompareStrategies runs avalanche and snowball over identical snapshots
// and recommends whichever pays less total interest, ties to avalanche.
//
// Savings reports what choosing avalanche over snowball saves, floored at
// zero. Interest actually charged per month is capped at the payment, so a
// debt whose minimum sits below its monthly interest carries a
// payment-capped cost; on such portfolios snowball's ordering can charge
// less total interest than nominal-APR order and the raw difference goes
// negative.
func CompareStrategies(debts []*Debt, extraPayment decimal.Decimal) StrategyComparison {
	avalanche := SimulateStrategy(debts, extraPayment, StrategyAvalanche)
	snowball := SimulateStrategy(debts, extraPayment, StrategySnowball)

	recommended := StrategyAvalanche
	if snowball.TotalInterestPaid.LessThan(avalanche.TotalInterestPaid) {
		recommended = StrategySnowball
	}

	return StrategyComparison{
		Avalanche:   avalanche,
		Snowball:    snowball,
		Recommended: recommended,
		Savings:     decimal.Max(snowball.TotalInterestPaid.Sub(avalanche.TotalInterestPaid), decimal.Zero),
	}
}
