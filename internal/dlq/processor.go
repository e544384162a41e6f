package dlq

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/adapter"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/alert"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/logger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/metrics"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store/schema"
)

// Processor replays claimed DLQ entries
//
//go:generate mockgen -source=processor.go -destination=../mocks/dlq_processor.go -package=mocks -mock_names=Processor=MockDLQProcessor
type Processor interface {
	// ProcessBatch claims one batch of due entries and replays them; it returns the number claimed
	ProcessBatch(ctx context.Context) (int, error)
}

type processor struct {
	store    store.Store
	handlers Handlers
	alerts   alert.Emitter
	clock    adapter.Clock
	cfg      Config
}

// NewProcessor creates a DLQ processor
func NewProcessor(st store.Store, handlers Handlers, alerts alert.Emitter, clock adapter.Clock, cfg Config) Processor {
	return &processor{
		store:    st,
		handlers: handlers,
		alerts:   alerts,
		clock:    clock,
		cfg:      cfg.withDefaults(),
	}
}

func (p *processor) ProcessBatch(ctx context.Context) (int, error) {
	start := p.clock.Now()

	entries, err := p.store.ClaimDLQEntries(ctx, start, start.Add(-p.cfg.StaleAfter), p.cfg.BatchSize)
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, nil
	}

	pool := pond.NewPool(p.cfg.PoolSize, pond.WithContext(ctx))
	for i := range entries {
		entry := &entries[i]
		pool.Submit(func() {
			p.process(ctx, entry)
		})
	}
	pool.StopAndWait()

	metrics.DLQBatchDuration.Observe(p.clock.Since(start).Seconds())
	logger.InfoCtx(ctx, "Processed dlq batch", zap.Int("entries", len(entries)))

	return len(entries), nil
}

// process replays one entry and records its next state
func (p *processor) process(ctx context.Context, entry *schema.BillingDLQEntry) {
	var err error
	handler, ok := p.handlers[entry.OperationType]
	if !ok {
		err = fmt.Errorf("%w: no handler for operation %q", ErrMalformedPayload, entry.OperationType)
	} else {
		err = p.handle(ctx, handler, entry)
	}

	var claimedAt time.Time
	if entry.ClaimedAt != nil {
		claimedAt = *entry.ClaimedAt
	}

	now := p.clock.Now()
	entry.UpdatedAt = now
	entry.ClaimedAt = nil

	switch {
	case err == nil:
		entry.Status = schema.DLQStatusCompleted
		entry.CompletedAt = &now
		entry.ErrorMessage = nil
	case errors.Is(err, ErrMalformedPayload):
		entry.Status = schema.DLQStatusFailed
		entry.ErrorMessage = errorMessage(err)
	case entry.RetryCount >= entry.MaxRetries:
		entry.Status = schema.DLQStatusManualReview
		entry.ErrorMessage = errorMessage(err)
	default:
		entry.Status = schema.DLQStatusPending
		entry.NextRetryAt = now.Add(NextRetryDelay(p.cfg.BaseDelay, p.cfg.MaxDelay, entry.RetryCount))
		entry.RetryCount++
		entry.ErrorMessage = errorMessage(err)
	}

	held, uerr := p.store.ReleaseDLQClaim(ctx, entry, claimedAt)
	if uerr != nil {
		// The claim goes stale and another worker retakes the entry
		logger.ErrorCtx(ctx, fmt.Errorf("failed to record dlq entry outcome: %w", uerr), zap.Uint64("entryID", entry.ID))
		return
	}
	if !held {
		logger.WarnCtx(ctx, "DLQ claim was retaken by another worker, outcome dropped",
			zap.Uint64("entryID", entry.ID),
			zap.String("status", string(entry.Status)))
		return
	}

	metrics.DLQProcessed.WithLabelValues(string(entry.OperationType), string(entry.Status)).Inc()

	fields := []zap.Field{
		zap.Uint64("entryID", entry.ID),
		zap.String("operation", string(entry.OperationType)),
		zap.String("status", string(entry.Status)),
		zap.Int("retryCount", entry.RetryCount),
	}
	switch entry.Status {
	case schema.DLQStatusCompleted:
		logger.InfoCtx(ctx, "DLQ entry completed", fields...)
	case schema.DLQStatusPending:
		logger.WarnCtx(ctx, "DLQ entry failed, retry scheduled", append(fields, zap.Time("nextRetryAt", entry.NextRetryAt), zap.Error(err))...)
	case schema.DLQStatusFailed:
		logger.ErrorCtx(ctx, fmt.Errorf("dlq entry cannot be replayed: %w", err), fields...)
	case schema.DLQStatusManualReview:
		p.alerts.Emit(ctx, domain.AlertKindDLQManualReview, domain.AlertSeverityCritical, "",
			"dlq entry exhausted its retries",
			map[string]any{
				"entry_id":    entry.ID,
				"operation":   entry.OperationType,
				"retry_count": entry.RetryCount,
				"error":       err.Error(),
			})
	}
}

// handle runs a handler, turning a panic into an error so one entry cannot take down the batch
func (p *processor) handle(ctx context.Context, handler Handler, entry *schema.BillingDLQEntry) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("dlq handler panicked: %v", r)
		}
	}()

	return handler.Handle(ctx, entry.Payload)
}

func errorMessage(err error) *string {
	msg := err.Error()
	return &msg
}
