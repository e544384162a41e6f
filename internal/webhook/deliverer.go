package webhook

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/adapter"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/logger"
)

// Deliverer signs and posts webhook events
type Deliverer struct {
	secret string
	http   adapter.HTTPClient
	clock  adapter.Clock
}

// NewDeliverer creates a new webhook deliverer
func NewDeliverer(secret string, httpClient adapter.HTTPClient, clock adapter.Clock) *Deliverer {
	return &Deliverer{
		secret: secret,
		http:   httpClient,
		clock:  clock,
	}
}

// Deliver posts a signed event to the delivery URL
func (d *Deliverer) Deliver(ctx context.Context, delivery Delivery) error {
	if delivery.URL == "" {
		return fmt.Errorf("webhook delivery %s has no url", delivery.Event.EventID)
	}

	payload, signature, timestamp, err := GenerateSignedPayload(d.secret, delivery.Event, d.clock.Now())
	if err != nil {
		return err
	}

	headers := map[string]string{
		"Content-Type":  "application/json",
		HeaderSignature: signature,
		HeaderTimestamp: strconv.FormatInt(timestamp, 10),
		HeaderEventID:   delivery.Event.EventID,
	}

	if _, err := d.http.Post(ctx, delivery.URL, headers, payload); err != nil {
		return fmt.Errorf("failed to deliver webhook %s: %w", delivery.Event.EventID, err)
	}

	logger.InfoCtx(ctx, "Webhook delivered",
		zap.String("eventID", delivery.Event.EventID),
		zap.String("eventType", delivery.Event.EventType))

	return nil
}
