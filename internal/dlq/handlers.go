package dlq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/distribution"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/ledger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/logger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store/schema"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/webhook"
)

// ErrMalformedPayload marks an entry that can never be replayed; it is moved to failed
var ErrMalformedPayload = errors.New("malformed dlq payload")

// Handler replays one kind of failed operation
type Handler interface {
	Handle(ctx context.Context, payload []byte) error
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(ctx context.Context, payload []byte) error

func (f HandlerFunc) Handle(ctx context.Context, payload []byte) error {
	return f(ctx, payload)
}

// WebhookDeliverer posts signed webhook events
//
//go:generate mockgen -source=handlers.go -destination=../mocks/webhook_deliverer.go -package=mocks -mock_names=WebhookDeliverer=MockWebhookDeliverer
type WebhookDeliverer interface {
	Deliver(ctx context.Context, delivery webhook.Delivery) error
}

// CreditPayload is the payload of deposit and refund entries.
// SourceRef is required so a replay that already landed mints nothing.
type CreditPayload struct {
	AccountID   string     `json:"account_id"`
	AmountMicro int64      `json:"amount_micro"`
	SourceRef   string     `json:"source_ref"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// ReconciliationPayload is the payload of reconciliation entries
type ReconciliationPayload struct {
	Reason string `json:"reason,omitempty"`
}

func decode(payload []byte, v any) error {
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return nil
}

// permanent reports ledger errors a retry cannot fix
func permanent(err error) bool {
	return errors.Is(err, domain.ErrInvalidAmount) ||
		errors.Is(err, domain.ErrInvalidArgument) ||
		errors.Is(err, domain.ErrAccountNotFound) ||
		errors.Is(err, domain.ErrDuplicateSourceRef)
}

func creditHandler(l ledger.Ledger, origin domain.LotOrigin) Handler {
	return HandlerFunc(func(ctx context.Context, payload []byte) error {
		var p CreditPayload
		if err := decode(payload, &p); err != nil {
			return err
		}
		if p.AccountID == "" || p.AmountMicro <= 0 || p.SourceRef == "" {
			return fmt.Errorf("%w: account_id, a positive amount_micro and source_ref are required", ErrMalformedPayload)
		}

		result, err := l.Credit(ctx, ledger.CreditInput{
			AccountID:   p.AccountID,
			AmountMicro: p.AmountMicro,
			Origin:      origin,
			ExpiresAt:   p.ExpiresAt,
			SourceRef:   &p.SourceRef,
		})
		if err != nil {
			if permanent(err) {
				return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
			}
			return err
		}

		logger.InfoCtx(ctx, "Replayed credit",
			zap.String("origin", string(origin)),
			zap.String("lotID", result.LotID),
			zap.Bool("replayed", result.Replayed))
		return nil
	})
}

// NewDepositHandler replays deposits
func NewDepositHandler(l ledger.Ledger) Handler {
	return creditHandler(l, domain.LotOriginDeposit)
}

// NewRefundHandler replays refunds
func NewRefundHandler(l ledger.Ledger) Handler {
	return creditHandler(l, domain.LotOriginRefund)
}

// NewDistributionHandler replays revenue distributions
func NewDistributionHandler(d distribution.Distributor) Handler {
	return HandlerFunc(func(ctx context.Context, payload []byte) error {
		var req distribution.Request
		if err := decode(payload, &req); err != nil {
			return err
		}
		if req.FinalizationID == "" {
			return fmt.Errorf("%w: finalization_id is required", ErrMalformedPayload)
		}

		_, err := d.Distribute(ctx, req)
		if err != nil && permanent(err) {
			return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		return err
	})
}

// NewReconciliationHandler runs the conservation guard system-wide.
// A failed guard is reported through alerts by the ledger; the entry itself completes.
func NewReconciliationHandler(l ledger.Ledger) Handler {
	return HandlerFunc(func(ctx context.Context, payload []byte) error {
		var p ReconciliationPayload
		if err := decode(payload, &p); err != nil {
			return err
		}

		report, err := l.CheckSystem(ctx)
		if err != nil {
			return err
		}

		logger.InfoCtx(ctx, "Reconciliation completed",
			zap.String("reason", p.Reason),
			zap.Bool("passed", report.Passed),
			zap.Int("violations", len(report.Violations)))
		return nil
	})
}

// NewWebhookHandler re-sends webhook deliveries
func NewWebhookHandler(d WebhookDeliverer) Handler {
	return HandlerFunc(func(ctx context.Context, payload []byte) error {
		var delivery webhook.Delivery
		if err := decode(payload, &delivery); err != nil {
			return err
		}
		if delivery.URL == "" || delivery.Event.EventID == "" {
			return fmt.Errorf("%w: url and event id are required", ErrMalformedPayload)
		}

		return d.Deliver(ctx, delivery)
	})
}

// Handlers maps every operation type to its handler
type Handlers map[schema.DLQOperationType]Handler

// NewHandlers wires the standard handler of every operation type
func NewHandlers(l ledger.Ledger, d distribution.Distributor, w WebhookDeliverer) Handlers {
	return Handlers{
		schema.DLQOperationDeposit:        NewDepositHandler(l),
		schema.DLQOperationRefund:         NewRefundHandler(l),
		schema.DLQOperationDistribution:   NewDistributionHandler(d),
		schema.DLQOperationReconciliation: NewReconciliationHandler(l),
		schema.DLQOperationWebhook:        NewWebhookHandler(w),
	}
}
