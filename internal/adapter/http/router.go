package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/debtwise/payoff/internal/adapter/http/handler"
	"github.com/debtwise/payoff/internal/adapter/http/middleware"
	"github.com/debtwise/payoff/internal/infrastructure/auth"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	DebtHandler    *handler.DebtHandler
	PaymentHandler *handler.PaymentHandler
	PlanHandler    *handler.PlanHandler
	AuthHandler    *handler.AuthHandler
	HealthHandler  *handler.HealthHandler

	// JWTManager enables authentication when non-nil. Without it every
	// request runs under the anonymous user.
	JWTManager *auth.JWTManager

	IdempotencyStore middleware.IdempotencyStore
	IdempotencyTTL   time.Duration

	RateLimiter *middleware.RateLimiter
	Logger      zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", cfg.AuthHandler.Register)
			r.Post("/login", cfg.AuthHandler.Login)
			if cfg.JWTManager != nil {
				r.With(middleware.AuthMiddleware(cfg.JWTManager)).
					Get("/me", cfg.AuthHandler.GetCurrentUser)
			}
		})

		r.Group(func(r chi.Router) {
			if cfg.JWTManager != nil {
				r.Use(middleware.AuthMiddleware(cfg.JWTManager))
			}
			if cfg.IdempotencyStore != nil {
				r.Use(middleware.IdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL, cfg.Logger))
			}

			// Debts
			r.Route("/debts", func(r chi.Router) {
				r.Post("/", cfg.DebtHandler.Create)
				r.Get("/", cfg.DebtHandler.List)
				r.Get("/{id}", cfg.DebtHandler.Get)
				r.Put("/{id}", cfg.DebtHandler.Update)
				r.Delete("/{id}", cfg.DebtHandler.Delete)
				r.Post("/{id}/payments", cfg.PaymentHandler.Record)
				r.Get("/{id}/payments", cfg.PaymentHandler.ListByDebt)
				r.Get("/{id}/payoff", cfg.PlanHandler.Payoff)
			})

			// Payments
			r.Get("/payments/{paymentID}", cfg.PaymentHandler.Get)

			// Plans
			r.Route("/plans", func(r chi.Router) {
				r.Post("/breakdown", cfg.PlanHandler.Breakdown)
				r.Post("/timeline", cfg.PlanHandler.Timeline)
				r.Post("/compare", cfg.PlanHandler.Compare)
			})
		})
	})

	return r
}
