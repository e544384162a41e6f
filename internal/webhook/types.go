package webhook

import (
	"encoding/json"
	"time"
)

// Event type constants
const (
	// EventTypeReservationFinalized is fired when a reservation settles
	EventTypeReservationFinalized = "reservation.finalized"

	// EventTypeLotCredited is fired when a deposit, refund or grant mints a lot
	EventTypeLotCredited = "lot.credited"

	// EventTypeConservationViolation is fired when the conservation guard fails
	EventTypeConservationViolation = "conservation.violation"

	// EventTypeDLQManualReview is fired when a DLQ entry exhausts its retries
	EventTypeDLQManualReview = "dlq.manual_review"
)

// WebhookEvent represents a webhook event to be delivered to clients
type WebhookEvent struct {
	// EventID is a unique identifier for this event (ULID for time-sortable uniqueness)
	EventID string `json:"event_id"`
	// EventType is the type of event (e.g., "reservation.finalized")
	EventType string `json:"event_type"`
	// Timestamp is when the event was generated
	Timestamp time.Time `json:"timestamp"`
	// Data contains the event-specific payload
	Data json.RawMessage `json:"data"`
}

// Delivery is a webhook event addressed to an endpoint; it is the payload of webhook DLQ entries
type Delivery struct {
	URL   string       `json:"url"`
	Event WebhookEvent `json:"event"`
}

// Header names sent with every delivery
const (
	HeaderSignature = "X-Webhook-Signature"
	HeaderTimestamp = "X-Webhook-Timestamp"
	HeaderEventID   = "X-Webhook-Event-ID"
)
