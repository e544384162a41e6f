package sweeper

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/adapter"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/dlq"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/logger"
)

const DEFAULT_DLQ_POLL_INTERVAL = 30 * time.Second

// DLQWorkerConfig holds configuration for the DLQ retry worker
type DLQWorkerConfig struct {
	PollInterval time.Duration // Sleep between polls when the queue has nothing due
}

// dlqWorker polls the DLQ and replays due entries. Several workers may run across
// instances; claims skip rows locked by others.
type dlqWorker struct {
	*loop
	processor dlq.Processor
	config    DLQWorkerConfig
}

// NewDLQWorker creates the DLQ retry worker
func NewDLQWorker(config DLQWorkerConfig, processor dlq.Processor, clock adapter.Clock) Sweeper {
	if config.PollInterval <= 0 {
		config.PollInterval = DEFAULT_DLQ_POLL_INTERVAL
	}

	w := &dlqWorker{
		processor: processor,
		config:    config,
	}
	w.loop = newLoop("dlq-worker", clock, w.runCycle)

	return w
}

// runCycle processes one batch; a full batch is followed immediately by the next one
func (w *dlqWorker) runCycle(ctx context.Context) (time.Duration, error) {
	n, err := w.processor.ProcessBatch(ctx)
	if err != nil {
		return w.config.PollInterval, fmt.Errorf("failed to process dlq batch: %w", err)
	}
	if n == 0 {
		logger.DebugCtx(ctx, "No dlq entries due")
		return w.config.PollInterval, nil
	}

	logger.InfoCtx(ctx, "DLQ batch done", zap.Int("entries", n))
	return 0, nil
}
