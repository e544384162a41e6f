package sweeper

import (
	"context"
	"fmt"
	"time"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/adapter"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/dlq"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store/schema"
)

const (
	DEFAULT_RECONCILIATION_INTERVAL = time.Hour
	RECONCILIATION_REASON_SCHEDULED = "scheduled"
)

// ReconciliationSchedulerConfig holds configuration for the reconciliation scheduler
type ReconciliationSchedulerConfig struct {
	Interval time.Duration // Time between queued system checks
}

// reconciliationScheduler queues a system-wide conservation check on every interval.
// The check runs through the DLQ so it gets the same retries as any other billing operation.
type reconciliationScheduler struct {
	*loop
	queue  dlq.Service
	config ReconciliationSchedulerConfig
}

// NewReconciliationScheduler creates the reconciliation scheduler
func NewReconciliationScheduler(config ReconciliationSchedulerConfig, q dlq.Service, clock adapter.Clock) Sweeper {
	if config.Interval <= 0 {
		config.Interval = DEFAULT_RECONCILIATION_INTERVAL
	}

	s := &reconciliationScheduler{
		queue:  q,
		config: config,
	}
	s.loop = newLoop("reconciliation-scheduler", clock, s.runCycle)

	return s
}

func (s *reconciliationScheduler) runCycle(ctx context.Context) (time.Duration, error) {
	_, err := s.queue.Enqueue(ctx, schema.DLQOperationReconciliation,
		dlq.ReconciliationPayload{Reason: RECONCILIATION_REASON_SCHEDULED}, nil)
	if err != nil {
		return s.config.Interval, fmt.Errorf("failed to schedule reconciliation: %w", err)
	}
	return s.config.Interval, nil
}
