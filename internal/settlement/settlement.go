package settlement

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/budget"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/distribution"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/dlq"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/ledger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/logger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store/schema"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/webhook"
)

const (
	DEFAULT_INVALIDATE_TIMEOUT = 5 * time.Second
	DEFAULT_NOTIFY_TIMEOUT     = 30 * time.Second
)

// FinalizeRequest settles one reservation
type FinalizeRequest struct {
	ReservationID   string       `json:"reservation_id"`
	ActualCostMicro int64        `json:"actual_cost_micro"`
	FinalizationID  string       `json:"finalization_id"`
	AccountID       string       `json:"account_id"`
	IsAgent         bool         `json:"is_agent"`
	Usage           ledger.Usage `json:"-"`
}

// Result is the outcome of a settlement
type Result struct {
	*ledger.FinalizeResult
	// DistributionQueued is set when revenue distribution failed and was queued for retry
	DistributionQueued bool `json:"distribution_queued"`
}

// ViolationEvent is the webhook payload of a finalize whose conservation guard failed
type ViolationEvent struct {
	ReservationID string `json:"reservation_id"`
	AccountID     string `json:"account_id"`
	EventID       string `json:"event_id"`
}

// Settler settles reservations
//
//go:generate mockgen -source=settlement.go -destination=../mocks/settler.go -package=mocks -mock_names=Settler=MockSettler
type Settler interface {
	Finalize(ctx context.Context, req FinalizeRequest) (*Result, error)
}

// Finalizer settles reservations. Agent reservations are settled together with their
// budget record in one transaction; both land or neither does.
type Finalizer struct {
	store       store.Store
	ledger      ledger.Ledger
	budget      budget.Service
	distributor distribution.Distributor
	dlq         dlq.Service
	notifier    dlq.Notifier

	inflight sync.WaitGroup
}

// NewFinalizer creates a finalizer. A nil distributor disables revenue distribution
// and a nil notifier disables webhooks.
func NewFinalizer(st store.Store, l ledger.Ledger, b budget.Service, d distribution.Distributor, q dlq.Service, n dlq.Notifier) *Finalizer {
	return &Finalizer{
		store:       st,
		ledger:      l,
		budget:      b,
		distributor: d,
		dlq:         q,
		notifier:    n,
	}
}

// Finalize settles a reservation
func (f *Finalizer) Finalize(ctx context.Context, req FinalizeRequest) (*Result, error) {
	input := ledger.FinalizeInput{
		ReservationID:   req.ReservationID,
		AccountID:       req.AccountID,
		ActualCostMicro: req.ActualCostMicro,
		FinalizationID:  req.FinalizationID,
		Usage:           req.Usage,
	}

	var finalized *ledger.FinalizeResult
	var err error
	if req.IsAgent {
		finalized, err = f.finalizeAgent(ctx, input)
	} else {
		finalized, err = f.ledger.Finalize(ctx, input)
	}
	if err != nil {
		return nil, err
	}

	result := &Result{FinalizeResult: finalized}
	if !finalized.Replayed {
		result.DistributionQueued = f.distribute(ctx, req, finalized)
		f.notify(ctx, finalized)
	}

	return result, nil
}

func (f *Finalizer) finalizeAgent(ctx context.Context, input ledger.FinalizeInput) (*ledger.FinalizeResult, error) {
	var result *ledger.FinalizeResult
	err := f.store.Transaction(ctx, func(tx store.Store) error {
		var err error
		result, err = f.ledger.FinalizeInTx(ctx, tx, input)
		if err != nil {
			return err
		}
		if result.Replayed {
			return nil
		}

		// Cap breaches are not rechecked here; the spend was admitted at reserve time
		if err := f.budget.RecordFinalizationInTransaction(ctx, tx, result.AccountID, result.ReservationID, result.FinalizedMicro); err != nil {
			return fmt.Errorf("failed to record agent spend: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	f.ledger.EmitFinalizeAlerts(ctx, result)
	f.invalidate(ctx, result.AccountID)

	return result, nil
}

// invalidate drops the cached spend in the background
func (f *Finalizer) invalidate(ctx context.Context, accountID string) {
	f.inflight.Add(1)
	go func() {
		defer f.inflight.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), DEFAULT_INVALIDATE_TIMEOUT)
		defer cancel()

		if err := f.budget.Invalidate(ctx, accountID); err != nil {
			logger.WarnCtx(ctx, "Failed to invalidate budget cache after settlement",
				zap.String("accountID", accountID),
				zap.Error(err))
		}
	}()
}

// notify sends the finalize webhooks in the background
func (f *Finalizer) notify(ctx context.Context, finalized *ledger.FinalizeResult) {
	if f.notifier == nil {
		return
	}

	f.inflight.Add(1)
	go func() {
		defer f.inflight.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), DEFAULT_NOTIFY_TIMEOUT)
		defer cancel()

		if err := f.notifier.Notify(ctx, webhook.EventTypeReservationFinalized, finalized); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("reservationID", finalized.ReservationID))
		}
		if finalized.GuardPassed {
			return
		}
		violation := ViolationEvent{
			ReservationID: finalized.ReservationID,
			AccountID:     finalized.AccountID,
			EventID:       finalized.EventID,
		}
		if err := f.notifier.Notify(ctx, webhook.EventTypeConservationViolation, violation); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("reservationID", finalized.ReservationID))
		}
	}()
}

// distribute shares out settled revenue; failures go to the DLQ and never fail the settlement.
// It reports whether a failed distribution was queued.
func (f *Finalizer) distribute(ctx context.Context, req FinalizeRequest, finalized *ledger.FinalizeResult) bool {
	if f.distributor == nil || finalized.FinalizedMicro == 0 {
		return false
	}

	dreq := distribution.Request{
		FinalizationID: finalized.FinalizationID,
		AccountID:      finalized.AccountID,
		CommunityID:    req.Usage.CommunityID,
		AmountMicro:    finalized.FinalizedMicro,
	}

	_, err := f.distributor.Distribute(ctx, dreq)
	if err == nil {
		return false
	}

	logger.WarnCtx(ctx, "Revenue distribution failed, queueing for retry",
		zap.String("finalizationID", finalized.FinalizationID),
		zap.Error(err))

	if _, qerr := f.dlq.Enqueue(ctx, schema.DLQOperationDistribution, dreq, err); qerr != nil {
		// Nothing retries this distribution any more
		logger.ErrorCtx(ctx, fmt.Errorf("revenue distribution lost, failed to queue it: %w", qerr),
			zap.String("finalizationID", finalized.FinalizationID),
			zap.Int64("amountMicro", finalized.FinalizedMicro),
			zap.String("operation", string(schema.DLQOperationDistribution)),
			zap.NamedError("cause", err))
		return false
	}

	return true
}

// Wait blocks until background cache invalidations and webhooks finish
func (f *Finalizer) Wait() {
	f.inflight.Wait()
}
