package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpAdapter "github.com/debtwise/payoff/internal/adapter/http"
	"github.com/debtwise/payoff/internal/adapter/http/handler"
	"github.com/debtwise/payoff/internal/adapter/http/middleware"
	postgresRepo "github.com/debtwise/payoff/internal/adapter/repository/postgres"
	redisRepo "github.com/debtwise/payoff/internal/adapter/repository/redis"
	"github.com/debtwise/payoff/internal/infrastructure/auth"
	"github.com/debtwise/payoff/internal/infrastructure/config"
	"github.com/debtwise/payoff/internal/infrastructure/eventpublisher"
	"github.com/debtwise/payoff/internal/infrastructure/logger"
	"github.com/debtwise/payoff/internal/infrastructure/metrics"
	"github.com/debtwise/payoff/internal/infrastructure/postgres"
	"github.com/debtwise/payoff/internal/infrastructure/redis"
	"github.com/debtwise/payoff/internal/usecase"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if cfg.AutoMigrate {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, log); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Repositories
	txManager := postgresRepo.NewTxManager(pool)
	debtRepo := postgresRepo.NewDebtRepository(pool)
	paymentRepo := postgresRepo.NewPaymentRepository(pool)
	outboxRepo := postgresRepo.NewOutboxRepository(pool)
	userRepo := postgresRepo.NewUserRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier(log)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	var planCache usecase.Cache
	if cfg.PlanCacheEnabled {
		planCache = redisRepo.NewCache(redisClient)
	}

	appMetrics := metrics.New()

	// Use cases
	debtUC := usecase.NewDebtUseCase(debtRepo, idGen, appMetrics)
	paymentUC := usecase.NewPaymentUseCase(txManager, debtRepo, paymentRepo, outboxRepo, idGen, retrier, appMetrics)
	planUC := usecase.NewPlanUseCase(debtRepo, planCache, appMetrics)
	userUC := usecase.NewUserUseCase(userRepo, idGen, appMetrics)

	// Authentication is off unless a secret is configured.
	var jwtManager *auth.JWTManager
	if cfg.AuthEnabled && cfg.JWTSecret != "" {
		jwtManager = auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
		log.Info().Msg("jwt authentication enabled")
	}

	// Handlers
	debtHandler := handler.NewDebtHandler(debtUC)
	paymentHandler := handler.NewPaymentHandler(paymentUC)
	planHandler := handler.NewPlanHandler(planUC)
	authHandler := handler.NewAuthHandler(userUC, jwtManager)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		DebtHandler:      debtHandler,
		PaymentHandler:   paymentHandler,
		PlanHandler:      planHandler,
		AuthHandler:      authHandler,
		HealthHandler:    healthHandler,
		JWTManager:       jwtManager,
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		RateLimiter:      rateLimiter,
		Logger:           log,
	})

	// Outbox publisher
	publisherCtx, stopPublisher := context.WithCancel(ctx)
	defer stopPublisher()

	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-publisherCtx.Done():
				return
			case <-ticker.C:
				rateLimiter.CleanupClients(time.Hour)
			}
		}
	}()

	publisher := eventpublisher.NewEventPublisher(eventpublisher.Config{
		OutboxRepo: outboxRepo,
		Publisher:  eventpublisher.NewLogPublisher(log),
		Logger:     log,
		Metrics:    appMetrics,
		BatchSize:  cfg.OutboxBatchSize,
		Interval:   cfg.OutboxPollInterval,
	})
	go func() {
		if err := publisher.Start(publisherCtx); err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("event publisher stopped")
		}
	}()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	stopPublisher()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
