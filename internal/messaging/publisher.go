package messaging

import (
	"context"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
)

// Publisher defines the interface for publishing alerts to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishAlert publishes an operational alert to the message broker
	PublishAlert(ctx context.Context, alert *domain.Alert) error
	// Close closes the connection
	Close()
}
