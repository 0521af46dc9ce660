package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction
	// This prevents long-running transactions from blocking tables
	DefaultTransactionTimeout = 10 * time.Second

	// PlanCacheTTL is how long computed strategy comparisons stay cached.
	// Cache keys hash the full debt snapshot, so a stale entry can only be
	// served for inputs that have not changed anyway.
	PlanCacheTTL = 15 * time.Minute

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour

	// MaxTimelineMonths caps a single requested projection horizon.
	MaxTimelineMonths = 1200
)
