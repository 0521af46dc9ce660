package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/debtwise/payoff/internal/domain"
	"github.com/debtwise/payoff/internal/infrastructure/metrics"
)

// PlanUseCase runs payoff simulations over a user's debts. Strategy
// comparisons are cached: they are pure functions of the debt snapshot and
// the extra payment, so the cache key hashes exactly those inputs and any
// balance change produces a fresh key.
type PlanUseCase struct {
	debtRepo DebtRepository
	cache    Cache
	metrics  *metrics.Metrics
}

// NewPlanUseCase creates a new PlanUseCase. cache may be nil to disable
// comparison caching.
func NewPlanUseCase(debtRepo DebtRepository, cache Cache, metrics *metrics.Metrics) *PlanUseCase {
	return &PlanUseCase{
		debtRepo: debtRepo,
		cache:    cache,
		metrics:  metrics,
	}
}

// BreakdownInput represents a single what-if payment split request.
type BreakdownInput struct {
	Balance           decimal.Decimal
	AnnualRatePercent decimal.Decimal
	Payment           decimal.Decimal
}

// ComputeBreakdown validates the inputs once and runs the engine.
func (uc *PlanUseCase) ComputeBreakdown(input BreakdownInput) (domain.PaymentBreakdown, error) {
	if err := domain.ValidateBalance(input.Balance); err != nil {
		return domain.PaymentBreakdown{}, err
	}
	if err := domain.ValidateRate(input.AnnualRatePercent); err != nil {
		return domain.PaymentBreakdown{}, err
	}
	if err := domain.ValidatePaymentAmount(input.Payment); err != nil {
		return domain.PaymentBreakdown{}, err
	}

	if uc.metrics != nil {
		uc.metrics.PlansComputed.WithLabelValues("breakdown").Inc()
	}

	return domain.ComputeBreakdown(input.Balance, input.AnnualRatePercent, input.Payment), nil
}

// EstimateDebtPayoff projects how long minimum payments take to clear one debt.
func (uc *PlanUseCase) EstimateDebtPayoff(ctx context.Context, userID, debtID string) (domain.PayoffEstimate, error) {
	debt, err := uc.debtRepo.GetByID(ctx, debtID)
	if err != nil {
		return domain.PayoffEstimate{}, err
	}
	if debt.UserID != userID {
		return domain.PayoffEstimate{}, domain.ErrDebtNotFound
	}

	estimate := domain.EstimatePayoff(debt)

	if uc.metrics != nil {
		uc.metrics.PlansComputed.WithLabelValues("estimate").Inc()
		if !estimate.PaysOff {
			uc.metrics.NonTerminatingRun.Inc()
		}
	}

	return estimate, nil
}

// ProjectTimelineInput represents input for a timeline projection.
type ProjectTimelineInput struct {
	UserID       string
	ExtraPayment decimal.Decimal
	Strategy     domain.Strategy
	Months       int
}

// ProjectTimeline simulates the user's full debt set month by month.
func (uc *PlanUseCase) ProjectTimeline(ctx context.Context, input ProjectTimelineInput) (domain.Timeline, error) {
	if !input.Strategy.IsValid() {
		return domain.Timeline{}, domain.ErrUnknownStrategy
	}
	if err := domain.ValidatePaymentAmount(input.ExtraPayment); err != nil {
		return domain.Timeline{}, err
	}
	if input.Months < 0 {
		input.Months = 0
	}
	if input.Months > MaxTimelineMonths {
		input.Months = MaxTimelineMonths
	}

	debts, err := uc.loadDebts(ctx, input.UserID)
	if err != nil {
		return domain.Timeline{}, err
	}

	start := time.Now()
	timeline := domain.GenerateTimeline(debts, input.ExtraPayment, input.Strategy, input.Months)

	if uc.metrics != nil {
		uc.metrics.PlansComputed.WithLabelValues("timeline").Inc()
		uc.metrics.PlanDuration.WithLabelValues("timeline").Observe(time.Since(start).Seconds())
		if timeline.Completed {
			uc.metrics.TimelineLengths.Observe(float64(len(timeline.Points)))
		}
	}

	return timeline, nil
}

// ComparePlansInput represents input for an avalanche/snowball comparison.
type ComparePlansInput struct {
	UserID       string
	ExtraPayment decimal.Decimal
}

// ComparePlans runs avalanche and snowball over the user's debts and
// recommends the cheaper one, consulting the cache first.
func (uc *PlanUseCase) ComparePlans(ctx context.Context, input ComparePlansInput) (domain.StrategyComparison, error) {
	if err := domain.ValidatePaymentAmount(input.ExtraPayment); err != nil {
		return domain.StrategyComparison{}, err
	}

	debts, err := uc.loadDebts(ctx, input.UserID)
	if err != nil {
		return domain.StrategyComparison{}, err
	}
	if len(debts) == 0 {
		return domain.StrategyComparison{}, domain.ErrNoDebts
	}

	key := comparisonCacheKey(debts, input.ExtraPayment)

	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, key); err == nil {
			var cached domain.StrategyComparison
			if err := json.Unmarshal(raw, &cached); err == nil {
				if uc.metrics != nil {
					uc.metrics.PlanCacheHits.Inc()
				}
				return cached, nil
			}
		}
		if uc.metrics != nil {
			uc.metrics.PlanCacheMisses.Inc()
		}
	}

	start := time.Now()
	comparison := domain.CompareStrategies(debts, input.ExtraPayment)

	if uc.metrics != nil {
		uc.metrics.PlansComputed.WithLabelValues("compare").Inc()
		uc.metrics.PlanDuration.WithLabelValues("compare").Observe(time.Since(start).Seconds())
	}

	if uc.cache != nil {
		if raw, err := json.Marshal(comparison); err == nil {
			_ = uc.cache.Set(ctx, key, raw, PlanCacheTTL)
		}
	}

	return comparison, nil
}

func (uc *PlanUseCase) loadDebts(ctx context.Context, userID string) ([]*domain.Debt, error) {
	debts, err := uc.debtRepo.ListByUser(ctx, userID, domain.MaxDebtsPerRun, 0)
	if err != nil {
		return nil, err
	}

	// An empty debt set is fine here; ProjectTimeline legitimately returns
	// an empty, completed timeline for it. Stored rows are validated anyway
	// so corrupt data cannot reach the unguarded engine loop.
	for _, d := range debts {
		if err := domain.ValidateDebt(d); err != nil {
			return nil, err
		}
	}

	return debts, nil
}

// comparisonCacheKey hashes the exact simulation inputs: per-debt id,
// balance, rate and minimum, plus the extra payment.
func comparisonCacheKey(debts []*domain.Debt, extraPayment decimal.Decimal) string {
	var sb strings.Builder
	for _, d := range debts {
		fmt.Fprintf(&sb, "%s|%s|%s|%s;", d.ID, d.Balance, d.AnnualRatePercent, d.MinimumPayment)
	}
	fmt.Fprintf(&sb, "extra=%s", extraPayment)

	sum := sha256.Sum256([]byte(sb.String()))
	return "plan:compare:" + hex.EncodeToString(sum[:])
}
