package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/adapter"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/alert"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/billingconfig"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/cli"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/config"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/dlq"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/ledger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/logger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store"
)

func main() {
	config.ChdirRepoRoot()

	root := cli.NewRootCommand(connect)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, cli.ErrGuardFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		logger.Flush(2 * time.Second)
		os.Exit(1)
	}
	logger.Flush(2 * time.Second)
}

// connect opens the database and builds the services the commands use
func connect(ctx context.Context, opts *cli.RootOptions) (*cli.Services, func(), error) {
	cfg, err := config.LoadCLIConfig(opts.ConfigFile, opts.EnvPath)
	if err != nil {
		return nil, nil, err
	}

	if err := logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "ledgerctl",
		},
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		return nil, nil, fmt.Errorf("failed to configure connection pool: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get database handle: %w", err)
	}

	dataStore := store.NewPGStore(db)
	clock := adapter.NewClock()
	// The CLI does not publish alerts; guard violations are logged and printed
	alerts := alert.NewEmitter(nil, clock)

	svc := &cli.Services{
		Ledger: ledger.NewLedger(dataStore, alerts, clock, ledger.Config{
			DefaultReservationTTL: cfg.Ledger.DefaultReservationTTL,
			MaxReservationTTL:     cfg.Ledger.MaxReservationTTL,
			OverrunPolicy:         ledger.OverrunPolicy(cfg.Ledger.OverrunPolicy),
		}),
		Config: billingconfig.NewService(dataStore, clock),
		DLQ: dlq.NewService(dataStore, clock, dlq.Config{
			BaseDelay:  cfg.DLQ.BaseDelay,
			MaxDelay:   cfg.DLQ.MaxDelay,
			MaxRetries: cfg.DLQ.MaxRetries,
		}),
	}

	return svc, func() { _ = sqlDB.Close() }, nil
}
