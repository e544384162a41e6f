package dlq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/adapter"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/logger"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store/schema"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/webhook"
)

// Notifier sends ledger events to the configured webhook endpoint
//
//go:generate mockgen -source=notifier.go -destination=../mocks/notifier.go -package=mocks -mock_names=Notifier=MockNotifier
type Notifier interface {
	// Notify delivers an event once; a failed delivery is queued as a webhook entry.
	// It only errors when the event could neither be delivered nor queued.
	Notify(ctx context.Context, eventType string, data any) error
}

type webhookNotifier struct {
	url       string
	deliverer WebhookDeliverer
	dlq       Service
	clock     adapter.Clock
}

// NewWebhookNotifier creates a notifier posting to url
func NewWebhookNotifier(url string, deliverer WebhookDeliverer, q Service, clock adapter.Clock) Notifier {
	return &webhookNotifier{
		url:       url,
		deliverer: deliverer,
		dlq:       q,
		clock:     clock,
	}
}

func (n *webhookNotifier) Notify(ctx context.Context, eventType string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}

	now := n.clock.Now()
	delivery := webhook.Delivery{
		URL: n.url,
		Event: webhook.WebhookEvent{
			EventID:   ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
			EventType: eventType,
			Timestamp: now,
			Data:      raw,
		},
	}

	err = n.deliverer.Deliver(ctx, delivery)
	if err == nil {
		return nil
	}

	logger.WarnCtx(ctx, "Webhook delivery failed, queueing for retry",
		zap.String("eventID", delivery.Event.EventID),
		zap.String("eventType", eventType),
		zap.Error(err))

	if _, qerr := n.dlq.Enqueue(ctx, schema.DLQOperationWebhook, delivery, err); qerr != nil {
		return fmt.Errorf("failed to queue webhook %s: %w", delivery.Event.EventID, qerr)
	}
	return nil
}
