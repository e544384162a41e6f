package alert

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/adapter"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/logger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/messaging"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/metrics"
)

// Emitter raises operational alerts without ever failing the caller
//
//go:generate mockgen -source=alert.go -destination=../mocks/alert_emitter.go -package=mocks -mock_names=Emitter=MockAlertEmitter
type Emitter interface {
	// Emit records the alert in the log and metrics, then publishes it in the background
	Emit(ctx context.Context, kind domain.AlertKind, severity domain.AlertSeverity, accountID string, message string, details map[string]any)
	// Wait blocks until background publishes finish or ctx is done; used on shutdown
	Wait(ctx context.Context)
}

type emitter struct {
	publisher messaging.Publisher
	clock     adapter.Clock
	pending   chan struct{}
}

// MAX_PENDING_PUBLISHES bounds in-flight background publishes; alerts past it are only logged
const MAX_PENDING_PUBLISHES = 256

// NewEmitter creates an alert emitter. publisher may be nil when no broker is configured.
func NewEmitter(publisher messaging.Publisher, clock adapter.Clock) Emitter {
	return &emitter{
		publisher: publisher,
		clock:     clock,
		pending:   make(chan struct{}, MAX_PENDING_PUBLISHES),
	}
}

func (e *emitter) Emit(ctx context.Context, kind domain.AlertKind, severity domain.AlertSeverity, accountID string, message string, details map[string]any) {
	now := e.clock.Now()
	a := &domain.Alert{
		ID:        ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		Kind:      kind,
		Severity:  severity,
		AccountID: accountID,
		Message:   message,
		Details:   details,
		CreatedAt: now,
	}

	metrics.AlertsEmitted.WithLabelValues(string(kind)).Inc()

	fields := []zap.Field{
		zap.String("alertID", a.ID),
		zap.String("kind", string(kind)),
		zap.String("accountID", accountID),
		zap.Any("details", details),
	}
	if severity == domain.AlertSeverityCritical {
		// Error level is forwarded to Sentry
		logger.ErrorCtx(ctx, fmt.Errorf("alert: %s", message), fields...)
	} else {
		logger.WarnCtx(ctx, "Alert: "+message, fields...)
	}

	if e.publisher == nil {
		return
	}

	select {
	case e.pending <- struct{}{}:
	default:
		metrics.AlertPublishFailures.Inc()
		logger.WarnCtx(ctx, "Alert publish queue full, alert not published", zap.String("alertID", a.ID))
		return
	}

	go func() {
		defer func() { <-e.pending }()

		pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()

		if err := e.publisher.PublishAlert(pubCtx, a); err != nil {
			metrics.AlertPublishFailures.Inc()
			logger.WarnCtx(pubCtx, "Failed to publish alert", zap.String("alertID", a.ID), zap.Error(err))
		}
	}()
}

func (e *emitter) Wait(ctx context.Context) {
	// Filling the semaphore means no publish is in flight
	for i := 0; i < cap(e.pending); i++ {
		select {
		case e.pending <- struct{}{}:
		case <-ctx.Done():
			e.release(i)
			return
		}
	}
	e.release(cap(e.pending))
}

func (e *emitter) release(n int) {
	for i := 0; i < n; i++ {
		<-e.pending
	}
}
