package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/adapter"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/alert"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/api/middleware"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/api/rest"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/api/server"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/api/shared/executor"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/billingconfig"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/budget"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/config"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/distribution"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/dlq"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/ledger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/logger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/messaging"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/providers/jetstream"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/settlement"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/webhook"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "credit-ledger-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting credit ledger API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.FatalCtx(ctx, "Failed to get database handle", zap.Error(err))
	}
	defer func() { _ = sqlDB.Close() }()
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)
	clock := adapter.NewClock()

	// Alerts go to NATS when configured; they are always logged
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
			PublishTimeout: cfg.NATS.PublishTimeout,
		}, adapter.NewNatsJetStream(), adapter.NewJSON())
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create alert publisher", zap.Error(err))
		}
		defer publisher.Close()
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))
	} else {
		logger.WarnCtx(ctx, "NATS not configured, alerts are only logged")
	}
	alerts := alert.NewEmitter(publisher, clock)

	billingConfig := billingconfig.NewService(dataStore, clock)
	overrunAlertThreshold, err := billingConfig.GetInt64(ctx, billingconfig.KeyOverrunAlertThresholdMicro, 0)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to read billing config", zap.Error(err))
	}

	creditLedger := ledger.NewLedger(dataStore, alerts, clock, ledger.Config{
		DefaultReservationTTL:      cfg.Ledger.DefaultReservationTTL,
		MaxReservationTTL:          cfg.Ledger.MaxReservationTTL,
		OverrunPolicy:              ledger.OverrunPolicy(cfg.Ledger.OverrunPolicy),
		OverrunAlertThresholdMicro: overrunAlertThreshold,
	})

	checks := map[string]rest.HealthChecker{
		"database": sqlDB.PingContext,
	}

	// Budget cache: Redis with an in-process fallback, or in-process only
	var budgetCache budget.Cache
	memoryCache := budget.NewMemoryCache(clock)
	if cfg.Redis.Addr != "" {
		redisClient := adapter.NewRedisClient(adapter.RedisOptions{
			Addr:        cfg.Redis.Addr,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			DialTimeout: cfg.Redis.DialTimeout,
		})
		defer func() { _ = redisClient.Close() }()
		if err := redisClient.Ping(ctx); err != nil {
			logger.WarnCtx(ctx, "Redis unreachable at startup, budget cache starts degraded", zap.Error(err))
		}
		budgetCache = budget.NewFallbackCache(budget.NewRedisCache(redisClient, cfg.Redis.OpTimeout), memoryCache, alerts, clock, cfg.Budget.CacheRecheckInterval)
		checks["redis"] = redisClient.Ping
	} else {
		logger.WarnCtx(ctx, "Redis not configured, using the in-process budget cache",
			zap.Int("instance_count", cfg.Budget.InstanceCount))
		budgetCache = memoryCache
	}

	budgetService := budget.NewService(dataStore, creditLedger, budgetCache, billingConfig, clock, budget.Config{
		DefaultDailyCapMicro:        cfg.Budget.DefaultDailyCapMicro,
		DefaultRefillThresholdMicro: cfg.Budget.DefaultRefillThresholdMicro,
		InstanceCount:               cfg.Budget.InstanceCount,
	})
	distributor := distribution.NewDistributor(dataStore, creditLedger, billingConfig, clock)
	dlqService := dlq.NewService(dataStore, clock, dlq.Config{
		BaseDelay:  cfg.DLQ.BaseDelay,
		MaxDelay:   cfg.DLQ.MaxDelay,
		MaxRetries: cfg.DLQ.MaxRetries,
	})

	// Finalize and guard violation events go to the webhook endpoint when configured
	var notifier dlq.Notifier
	if cfg.Webhook.URL != "" {
		deliverer := webhook.NewDeliverer(cfg.Webhook.Secret, adapter.NewHTTPClient(cfg.Webhook.Timeout), clock)
		notifier = dlq.NewWebhookNotifier(cfg.Webhook.URL, deliverer, dlqService, clock)
	} else {
		logger.WarnCtx(ctx, "Webhook URL not configured, ledger events are not sent")
	}
	finalizer := settlement.NewFinalizer(dataStore, creditLedger, budgetService, distributor, dlqService, notifier)

	exec := executor.NewExecutor(creditLedger, budgetService, finalizer, dlqService, billingConfig)

	serverConfig := server.Config{
		Debug:              cfg.Debug,
		Host:               cfg.Server.Host,
		Port:               cfg.Server.Port,
		ReadTimeout:        time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:       time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:        time.Duration(cfg.Server.IdleTimeout) * time.Second,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
	}
	authConfig := middleware.AuthConfig{
		JWTPublicKey: cfg.Auth.JWTPublicKey,
		APIKeys:      cfg.Auth.APIKeys,
	}

	srv := server.New(serverConfig, exec, authConfig, checks)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "server"))
	}

	// Drain background cache invalidations, webhooks and alert publishes
	finalizer.Wait()
	alerts.Wait(shutdownCtx)

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
