package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"payment-settlement/config"
	"payment-settlement/internal/adapter/gateway/card"
	"payment-settlement/internal/adapter/gateway/regional"
	httpHandler "payment-settlement/internal/adapter/http/handler"
	"payment-settlement/internal/adapter/inventory"
	"payment-settlement/internal/adapter/metrics"
	pgStorage "payment-settlement/internal/adapter/storage/postgres"
	redisStorage "payment-settlement/internal/adapter/storage/redis"
	"payment-settlement/internal/core/ports"
	"payment-settlement/internal/service"
	"payment-settlement/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("PSE_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Payment Settlement Engine")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Metrics
	metrics.MustRegister(prometheus.DefaultRegisterer)
	recorder := metrics.NewRecorder()

	// Initialize repositories
	orderRepo := pgStorage.NewOrderRepo(pool)
	paymentRepo := pgStorage.NewOrderPaymentRepo(pool)
	planRepo := pgStorage.NewPaymentPlanRepo(pool)
	webhookEventRepo := pgStorage.NewWebhookEventRepo(pool)
	codRepo := pgStorage.NewCODRepo(pool)
	settingsRepo := pgStorage.NewSettingsRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	settingsCache := redisStorage.NewSettingsCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	sigSvc := service.NewHMACSignatureService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)

	// External clients
	cardClient := card.NewClient(card.Config{
		BaseURL:          cfg.Gateway.CardBaseURL,
		Timeout:          cfg.Gateway.HTTPTimeout,
		WebhookTolerance: cfg.Gateway.WebhookTolerance,
	}, sigSvc, log)
	regionalClient := regional.NewClient(regional.Config{
		SandboxURL: cfg.Gateway.RegionalSandboxURL,
		LiveURL:    cfg.Gateway.RegionalLiveURL,
		Timeout:    cfg.Gateway.HTTPTimeout,
	}, log)
	inventoryClient := inventory.NewClient(cfg.Inventory.BaseURL, cfg.Inventory.Timeout, nil, log)

	// Initialize business services
	settingsSvc := service.NewSettingsResolver(
		settingsRepo,
		settingsCache,
		encSvc,
		transactor,
		recorder,
		cfg.Gateway.SettingsCacheTTL,
		logger.Component(log, "settings"),
	)
	settlementSvc := service.NewSettlementService(
		orderRepo,
		paymentRepo,
		planRepo,
		webhookEventRepo,
		inventoryClient,
		transactor,
		recorder,
		logger.Component(log, "settlement"),
	)
	refundSvc := service.NewRefundService(
		orderRepo,
		paymentRepo,
		settlementSvc,
		settingsSvc,
		cardClient,
		regionalClient,
		transactor,
		recorder,
		logger.Component(log, "refund"),
	)
	webhookSvc := service.NewWebhookService(
		settingsSvc,
		cardClient,
		regionalClient,
		settlementSvc,
		webhookEventRepo,
		recorder,
		cfg.Gateway.ClaimLease,
		logger.Component(log, "webhook"),
	)
	checkoutSvc := service.NewCheckoutService(
		orderRepo,
		planRepo,
		codRepo,
		settingsSvc,
		cardClient,
		regionalClient,
		settlementSvc,
		logger.Component(log, "checkout"),
	)
	codSvc := service.NewCODService(codRepo, orderRepo, settlementSvc, transactor, logger.Component(log, "cod"))
	auditSvc := service.NewAuditService(auditRepo, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		RefundSvc:      refundSvc,
		CheckoutSvc:    checkoutSvc,
		CODSvc:         codSvc,
		SettingsSvc:    settingsSvc,
		WebhookSvc:     webhookSvc,
		TokenSvc:       tokenSvc,
		RateLimiter:    rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		AuditSvc:       auditSvc,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
