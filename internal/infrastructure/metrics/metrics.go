package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Payment metrics
	PaymentsRecorded prometheus.Counter
	PaymentDuration  prometheus.Histogram
	PaymentAmount    prometheus.Histogram
	PaymentErrors    *prometheus.CounterVec
	DebtsPaidOff     prometheus.Counter

	// Debt metrics
	DebtsCreated   prometheus.Counter
	DebtOperations *prometheus.CounterVec

	// Plan metrics
	PlansComputed     *prometheus.CounterVec
	PlanDuration      *prometheus.HistogramVec
	PlanCacheHits     prometheus.Counter
	PlanCacheMisses   prometheus.Counter
	TimelineLengths   prometheus.Histogram
	NonTerminatingRun prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBQueries  *prometheus.CounterVec
	DBDuration *prometheus.HistogramVec
	DBErrors   *prometheus.CounterVec

	// Authentication metrics
	AuthAttempts *prometheus.CounterVec
	AuthFailures *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec

	// Outbox metrics
	OutboxPublished prometheus.Counter
	OutboxErrors    prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Payment metrics
		PaymentsRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payoff_payments_recorded_total",
			Help: "Total number of payments recorded",
		}),
		PaymentDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "payoff_payment_duration_seconds",
			Help:    "Duration of payment recording operations",
			Buckets: prometheus.DefBuckets,
		}),
		PaymentAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "payoff_payment_amount",
			Help:    "Payment amounts",
			Buckets: []float64{10, 50, 100, 500, 1000, 5000, 10000},
		}),
		PaymentErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payoff_payment_errors_total",
				Help: "Total number of payment errors by type",
			},
			[]string{"error_type"},
		),
		DebtsPaidOff: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payoff_debts_paid_off_total",
			Help: "Total number of debts fully paid off",
		}),

		// Debt metrics
		DebtsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payoff_debts_created_total",
			Help: "Total number of debts created",
		}),
		DebtOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payoff_debt_operations_total",
				Help: "Total debt operations by type",
			},
			[]string{"operation"},
		),

		// Plan metrics
		PlansComputed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payoff_plans_computed_total",
				Help: "Total number of plan computations by kind",
			},
			[]string{"kind"},
		),
		PlanDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "payoff_plan_duration_seconds",
				Help:    "Duration of plan computations by kind",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
		PlanCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payoff_plan_cache_hits_total",
			Help: "Total number of plan comparison cache hits",
		}),
		PlanCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payoff_plan_cache_misses_total",
			Help: "Total number of plan comparison cache misses",
		}),
		TimelineLengths: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "payoff_timeline_months",
			Help:    "Projected months until payoff",
			Buckets: []float64{6, 12, 24, 60, 120, 240, 600, 1200},
		}),
		NonTerminatingRun: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payoff_non_terminating_projections_total",
			Help: "Total number of projections that hit the month cap",
		}),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payoff_http_requests_total",
				Help: "Total HTTP requests by method, path and status",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "payoff_http_duration_seconds",
				Help:    "HTTP request duration by method and path",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payoff_db_queries_total",
				Help: "Total database queries by operation",
			},
			[]string{"operation"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "payoff_db_duration_seconds",
				Help:    "Database query duration by operation",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payoff_db_errors_total",
				Help: "Total database errors by operation",
			},
			[]string{"operation"},
		),

		// Authentication metrics
		AuthAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payoff_auth_attempts_total",
				Help: "Total authentication attempts by outcome",
			},
			[]string{"outcome"},
		),
		AuthFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payoff_auth_failures_total",
				Help: "Total authentication failures by reason",
			},
			[]string{"reason"},
		),

		// Rate limiting metrics
		RateLimitHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payoff_rate_limit_hits_total",
				Help: "Total requests rejected by the rate limiter",
			},
			[]string{"path"},
		),

		// Outbox metrics
		OutboxPublished: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payoff_outbox_published_total",
			Help: "Total outbox events published",
		}),
		OutboxErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payoff_outbox_errors_total",
			Help: "Total outbox publish errors",
		}),
	}
}
