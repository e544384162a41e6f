package sweeper

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/adapter"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/ledger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/logger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store"
)

const (
	DEFAULT_HYGIENE_INTERVAL   = 5 * time.Minute
	DEFAULT_HYGIENE_BATCH_SIZE = 500
	DEFAULT_HYGIENE_POOL_SIZE  = 4
)

// HygieneSweeperConfig holds configuration for the reservation and lot expiry sweeper
type HygieneSweeperConfig struct {
	Interval       time.Duration // Time to sleep between cycles
	BatchSize      int           // Reservations expired, or accounts burned, per query
	WorkerPoolSize int           // Concurrent lot burns
}

// hygieneSweeper persists the expired state of lapsed reservations and burns expired lots.
// Reads already treat lapsed reservations as expired; this only keeps the tables tidy.
type hygieneSweeper struct {
	*loop
	config HygieneSweeperConfig
	store  store.Store
	ledger ledger.Ledger
	clock  adapter.Clock
}

// NewHygieneSweeper creates the reservation and lot expiry sweeper
func NewHygieneSweeper(config HygieneSweeperConfig, st store.Store, l ledger.Ledger, clock adapter.Clock) Sweeper {
	if config.Interval <= 0 {
		config.Interval = DEFAULT_HYGIENE_INTERVAL
	}
	if config.BatchSize <= 0 {
		config.BatchSize = DEFAULT_HYGIENE_BATCH_SIZE
	}
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = DEFAULT_HYGIENE_POOL_SIZE
	}

	s := &hygieneSweeper{
		config: config,
		store:  st,
		ledger: l,
		clock:  clock,
	}
	s.loop = newLoop("hygiene-sweeper", clock, s.runCycle)

	return s
}

func (s *hygieneSweeper) runCycle(ctx context.Context) (time.Duration, error) {
	startTime := s.clock.Now()

	expired, err := s.expireReservations(ctx)
	if err != nil {
		return s.config.Interval, err
	}

	accounts, err := s.store.ListAccountsWithExpiredLots(ctx, s.clock.Now(), s.config.BatchSize)
	if err != nil {
		return s.config.Interval, fmt.Errorf("failed to list accounts with expired lots: %w", err)
	}

	var burned atomic.Int64
	var failed atomic.Int32
	pool := pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(len(accounts)+1),
		pond.WithContext(ctx),
	)
	for _, accountID := range accounts {
		pool.Submit(func() {
			n, err := s.ledger.BurnExpiredLots(ctx, accountID)
			if err != nil {
				failed.Add(1)
				logger.ErrorCtx(ctx, fmt.Errorf("failed to burn expired lots: %w", err), zap.String("accountID", accountID))
				return
			}
			burned.Add(n)
		})
	}
	pool.StopAndWait()

	logger.InfoCtx(ctx, "Hygiene cycle completed",
		zap.Duration("duration", s.clock.Since(startTime)),
		zap.Int64("expired_reservations", expired),
		zap.Int("accounts", len(accounts)),
		zap.Int32("failed_accounts", failed.Load()),
		zap.Int64("burned_micro", burned.Load()),
	)

	return s.config.Interval, nil
}

// expireReservations drains lapsed reservations batch by batch, retrying transient failures
func (s *hygieneSweeper) expireReservations(ctx context.Context) (int64, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 2 * time.Minute
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	var total int64
	operation := func() error {
		for {
			n, err := s.ledger.ExpireReservations(ctx, s.config.BatchSize)
			if err != nil {
				return err
			}
			total += n
			if n < int64(s.config.BatchSize) {
				return nil
			}
		}
	}

	notifyOnError := func(err error, next time.Duration) {
		logger.WarnCtx(ctx, "Expiring reservations failed, retrying",
			zap.Error(err),
			zap.Duration("next_retry_in", next))
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notifyOnError); err != nil {
		return total, fmt.Errorf("failed to expire reservations: %w", err)
	}

	return total, nil
}
