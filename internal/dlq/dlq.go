package dlq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/adapter"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/logger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/metrics"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store/schema"
)

const (
	DEFAULT_BASE_DELAY  = time.Minute
	DEFAULT_MAX_DELAY   = 24 * time.Hour
	DEFAULT_BATCH_SIZE  = 50
	DEFAULT_STALE_AFTER = 10 * time.Minute
	DEFAULT_POOL_SIZE   = 4
)

// Config holds the retry queue settings
type Config struct {
	BaseDelay  time.Duration
	MaxDelay   time.Duration
	MaxRetries int
	BatchSize  int
	// StaleAfter is how long a processing claim is held before another worker may retake it
	StaleAfter time.Duration
	PoolSize   int
}

func (c Config) withDefaults() Config {
	if c.BaseDelay <= 0 {
		c.BaseDelay = DEFAULT_BASE_DELAY
	}
	if c.MaxDelay <= 0 {
		c.MaxDelay = DEFAULT_MAX_DELAY
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = domain.DEFAULT_DLQ_MAX_RETRIES
	}
	if c.BatchSize <= 0 {
		c.BatchSize = DEFAULT_BATCH_SIZE
	}
	if c.StaleAfter <= 0 {
		c.StaleAfter = DEFAULT_STALE_AFTER
	}
	if c.PoolSize <= 0 {
		c.PoolSize = DEFAULT_POOL_SIZE
	}
	return c
}

// NextRetryDelay returns base × 2^retryCount, capped at maxDelay
func NextRetryDelay(base, maxDelay time.Duration, retryCount int) time.Duration {
	b := &backoff.ExponentialBackOff{
		InitialInterval:     base,
		RandomizationFactor: 0,
		Multiplier:          2,
		MaxInterval:         maxDelay,
		MaxElapsedTime:      0,
		Stop:                backoff.Stop,
		Clock:               backoff.SystemClock,
	}
	b.Reset()

	delay := b.NextBackOff()
	for i := 0; i < retryCount; i++ {
		delay = b.NextBackOff()
	}
	return delay
}

// Service records failed billing side-effects and exposes them to operators
//
//go:generate mockgen -source=dlq.go -destination=../mocks/dlq_service.go -package=mocks -mock_names=Service=MockDLQService
type Service interface {
	// Enqueue stores a failed operation for retry
	Enqueue(ctx context.Context, op schema.DLQOperationType, payload any, cause error) (*schema.BillingDLQEntry, error)
	// List lists entries
	List(ctx context.Context, filter store.DLQEntryFilter) ([]schema.BillingDLQEntry, uint64, error)
	// ListManualReview lists entries that exhausted their retries
	ListManualReview(ctx context.Context, limit int, offset uint64) ([]schema.BillingDLQEntry, uint64, error)
	// Requeue resets a manual_review or failed entry to pending with a fresh retry budget
	Requeue(ctx context.Context, id uint64) (*schema.BillingDLQEntry, error)
}

type service struct {
	store store.Store
	clock adapter.Clock
	cfg   Config
}

// NewService creates a DLQ service
func NewService(st store.Store, clock adapter.Clock, cfg Config) Service {
	return &service{
		store: st,
		clock: clock,
		cfg:   cfg.withDefaults(),
	}
}

func (s *service) Enqueue(ctx context.Context, op schema.DLQOperationType, payload any, cause error) (*schema.BillingDLQEntry, error) {
	if !op.Valid() {
		return nil, fmt.Errorf("%w: unknown dlq operation %q", domain.ErrInvalidArgument, op)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dlq payload: %w", err)
	}

	now := s.clock.Now()
	entry := &schema.BillingDLQEntry{
		OperationType: op,
		Payload:       datatypes.JSON(raw),
		MaxRetries:    s.cfg.MaxRetries,
		Status:        schema.DLQStatusPending,
		NextRetryAt:   now.Add(NextRetryDelay(s.cfg.BaseDelay, s.cfg.MaxDelay, 0)),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if cause != nil {
		msg := cause.Error()
		entry.ErrorMessage = &msg
	}

	if err := s.store.CreateDLQEntry(ctx, entry); err != nil {
		return nil, err
	}

	metrics.DLQEnqueued.WithLabelValues(string(op)).Inc()
	fields := []zap.Field{
		zap.Uint64("entryID", entry.ID),
		zap.String("operation", string(op)),
		zap.Time("nextRetryAt", entry.NextRetryAt),
	}
	if cause == nil {
		// Scheduled work, e.g. reconciliation
		logger.InfoCtx(ctx, "Enqueued billing operation", fields...)
	} else {
		logger.WarnCtx(ctx, "Enqueued failed billing operation", append(fields, zap.Error(cause))...)
	}

	return entry, nil
}

func (s *service) List(ctx context.Context, filter store.DLQEntryFilter) ([]schema.BillingDLQEntry, uint64, error) {
	return s.store.ListDLQEntries(ctx, filter)
}

func (s *service) ListManualReview(ctx context.Context, limit int, offset uint64) ([]schema.BillingDLQEntry, uint64, error) {
	status := schema.DLQStatusManualReview
	return s.store.ListDLQEntries(ctx, store.DLQEntryFilter{Status: &status, Limit: limit, Offset: offset})
}

func (s *service) Requeue(ctx context.Context, id uint64) (*schema.BillingDLQEntry, error) {
	entry, err := s.store.GetDLQEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrDLQEntryNotFound
	}
	if entry.Status != schema.DLQStatusManualReview && entry.Status != schema.DLQStatusFailed {
		return nil, fmt.Errorf("%w: entry %d is %s", domain.ErrInvalidArgument, id, entry.Status)
	}

	now := s.clock.Now()
	entry.Status = schema.DLQStatusPending
	entry.RetryCount = 0
	entry.NextRetryAt = now
	entry.ClaimedAt = nil
	entry.UpdatedAt = now
	if err := s.store.UpdateDLQEntry(ctx, entry); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Requeued dlq entry", zap.Uint64("entryID", id), zap.String("operation", string(entry.OperationType)))

	return entry, nil
}
