package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
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
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/api/server"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/billingconfig"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/config"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/distribution"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/dlq"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/ledger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/logger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/messaging"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/providers/jetstream"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/sweeper"
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
	cfg, err := config.LoadWorkerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "credit-ledger-worker",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting credit ledger worker")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)
	clock := adapter.NewClock()

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
	} else {
		logger.WarnCtx(ctx, "NATS not configured, alerts are only logged")
	}
	alerts := alert.NewEmitter(publisher, clock)

	billingConfig := billingconfig.NewService(dataStore, clock)
	creditLedger := ledger.NewLedger(dataStore, alerts, clock, ledger.Config{
		DefaultReservationTTL: cfg.Ledger.DefaultReservationTTL,
		MaxReservationTTL:     cfg.Ledger.MaxReservationTTL,
		OverrunPolicy:         ledger.OverrunPolicy(cfg.Ledger.OverrunPolicy),
	})
	distributor := distribution.NewDistributor(dataStore, creditLedger, billingConfig, clock)
	deliverer := webhook.NewDeliverer(cfg.Webhook.Secret, adapter.NewHTTPClient(cfg.Webhook.Timeout), clock)

	processor := dlq.NewProcessor(dataStore, dlq.NewHandlers(creditLedger, distributor, deliverer), alerts, clock, dlq.Config{
		BaseDelay:  cfg.DLQ.BaseDelay,
		MaxDelay:   cfg.DLQ.MaxDelay,
		MaxRetries: cfg.DLQ.MaxRetries,
		BatchSize:  cfg.DLQ.BatchSize,
		StaleAfter: cfg.DLQ.StaleAfter,
		PoolSize:   cfg.DLQ.Worker.PoolSize,
	})

	dlqService := dlq.NewService(dataStore, clock, dlq.Config{
		BaseDelay:  cfg.DLQ.BaseDelay,
		MaxDelay:   cfg.DLQ.MaxDelay,
		MaxRetries: cfg.DLQ.MaxRetries,
	})

	sweepers := sweeper.NewGroup(
		sweeper.NewDLQWorker(sweeper.DLQWorkerConfig{PollInterval: cfg.DLQ.PollInterval}, processor, clock),
		sweeper.NewHygieneSweeper(sweeper.HygieneSweeperConfig{
			Interval:       cfg.Hygiene.Interval,
			BatchSize:      cfg.Hygiene.BatchSize,
			WorkerPoolSize: cfg.Hygiene.WorkerPoolSize,
		}, dataStore, creditLedger, clock),
		sweeper.NewReconciliationScheduler(sweeper.ReconciliationSchedulerConfig{
			Interval: cfg.Reconciliation.Interval,
		}, dlqService, clock),
	)

	metricsServer := server.NewMetricsServer(cfg.MetricsAddr)
	metricsErr := make(chan error, 1)
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			metricsErr <- fmt.Errorf("metrics server: %w", err)
		}
	}()

	sweepers.Start(ctx)

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-sweepers.Errors():
		logger.ErrorCtx(ctx, err)
	case err := <-metricsErr:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the sweepers
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := sweepers.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "sweepers"))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "metrics"))
	}
	alerts.Wait(shutdownCtx)

	logger.InfoCtx(shutdownCtx, "Worker stopped")
}
