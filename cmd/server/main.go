package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/finstatement/internal/adapter/http"
	"github.com/iho/finstatement/internal/adapter/http/handler"
	"github.com/iho/finstatement/internal/adapter/http/middleware"
	"github.com/iho/finstatement/internal/adapter/repository/memory"
	postgresRepo "github.com/iho/finstatement/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/finstatement/internal/adapter/repository/redis"
	"github.com/iho/finstatement/internal/infrastructure/auth"
	"github.com/iho/finstatement/internal/infrastructure/config"
	"github.com/iho/finstatement/internal/infrastructure/logger"
	"github.com/iho/finstatement/internal/infrastructure/metrics"
	"github.com/iho/finstatement/internal/infrastructure/postgres"
	"github.com/iho/finstatement/internal/infrastructure/redis"
	"github.com/iho/finstatement/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Service: "finstatement"})
	log.Logger = appLogger

	ctx := context.Background()

	// Repositories: PostgreSQL when configured, in-memory otherwise.
	var (
		userRepo      usecase.UserRepository
		statementRepo usecase.StatementRepository
		pgPool        *pgxpool.Pool
	)

	idGen := postgresRepo.NewULIDGenerator()

	if cfg.DatabaseURL != "" {
		connectCtx, cancel := context.WithTimeout(ctx, cfg.DatabaseTimeout)
		pgPool, err = postgres.NewPool(connectCtx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		defer pgPool.Close()
		log.Info().Msg("connected to postgres")

		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}

		userRepo = postgresRepo.NewUserRepository(pgPool)
		statementRepo = postgresRepo.NewStatementRepository(pgPool)
	} else {
		log.Info().Msg("no DATABASE_URL configured, using in-memory store")
		userRepo = memory.NewUserRepository()
		statementRepo = memory.NewStatementRepository()
	}

	// Idempotency store: optional, Redis-backed.
	var (
		idempotencyStore usecase.IdempotencyStore
		redisClient      *goredis.Client
	)
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		log.Info().Msg("connected to redis")

		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
	}

	healthHandler := handler.NewHealthHandler(pgPool, redisClient)

	// Metrics
	registry := prometheus.NewRegistry()
	appMetrics := metrics.New(registry)

	// Authentication
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)

	// Use cases
	userUC := usecase.NewUserUseCase(userRepo, idGen)
	ledgerUC := usecase.NewLedgerUseCase(userRepo, statementRepo, idGen)

	// Handlers
	userHandler := handler.NewUserHandler(userUC, jwtManager, appMetrics)
	statementHandler := handler.NewStatementHandler(ledgerUC, appMetrics)

	// Router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		UserHandler:      userHandler,
		StatementHandler: statementHandler,
		HealthHandler:    healthHandler,
		JWTManager:       jwtManager,
		Logger:           appLogger,
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		RateLimiter:      middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst),
		MetricsGatherer:  registry,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
