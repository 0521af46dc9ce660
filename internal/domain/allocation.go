package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Strategy selects how extra payment capacity is distributed across debts.
type Strategy string

const (
	// StrategyAvalanche targets the highest interest rate first.
	StrategyAvalanche Strategy = "avalanche"

	// StrategySnowball targets the smallest balance first.
	StrategySnowball Strategy = "snowball"

	// StrategyMinimum pays contractual minimums only.
	StrategyMinimum Strategy = "minimum"

	// StrategyCustom cascades in the caller-supplied debt order.
	StrategyCustom Strategy = "custom"
)

var validStrategies = map[Strategy]bool{
	StrategyAvalanche: true,
	StrategySnowball:  true,
	StrategyMinimum:   true,
	StrategyCustom:    true,
}

// IsValid checks if the strategy is a known strategy.
func (s Strategy) IsValid() bool {
	return validStrategies[s]
}

// ParseStrategy parses a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	strategy := Strategy(s)
	if !strategy.IsValid() {
		return "", ErrUnknownStrategy
	}
	return strategy, nil
}

// StrategyOrder returns the debts in payoff priority order for the given
// strategy. Ties break by ID ascending so allocation is deterministic.
// Custom and minimum keep the input order. The input slice is not mutated.
func StrategyOrder(debts []*Debt, strategy Strategy) []*Debt {
	ordered := make([]*Debt, len(debts))
	copy(ordered, debts)

	switch strategy {
	case StrategyAvalanche:
		sort.SliceStable(ordered, func(i, j int) bool {
			if ordered[i].AnnualRatePercent.Equal(ordered[j].AnnualRatePercent) {
				return ordered[i].ID < ordered[j].ID
			}
			return ordered[i].AnnualRatePercent.GreaterThan(ordered[j].AnnualRatePercent)
		})
	case StrategySnowball:
		sort.SliceStable(ordered, func(i, j int) bool {
			if ordered[i].Balance.Equal(ordered[j].Balance) {
				return ordered[i].ID < ordered[j].ID
			}
			return ordered[i].Balance.LessThan(ordered[j].Balance)
		})
	}

	return ordered
}

// AllocateExtra distributes extraAmount across open debts under the given
// strategy. The full amount goes to the top-priority debt, capped at that
// debt's remaining balance after its minimum payment is applied; overflow
// cascades to the next debt in order. Minimum strategy and empty debt lists
// return an empty allocation, never an error.
func AllocateExtra(openDebts []*Debt, extraAmount decimal.Decimal, strategy Strategy) map[string]decimal.Decimal {
	alloc := make(map[string]decimal.Decimal)
	if len(openDebts) == 0 || strategy == StrategyMinimum || !extraAmount.IsPositive() {
		return alloc
	}

	remaining := extraAmount
	for _, d := range StrategyOrder(openDebts, strategy) {
		if !remaining.IsPositive() {
			break
		}

		afterMinimum := ComputeBreakdown(d.Balance, d.AnnualRatePercent, d.MinimumPayment).NewBalance
		if !afterMinimum.IsPositive() {
			continue
		}

		amount := decimal.Min(remaining, afterMinimum)
		alloc[d.ID] = amount
		remaining = remaining.Sub(amount)
	}

	return alloc
}
