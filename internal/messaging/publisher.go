package messaging

import (
	"context"

	"github.com/feral-file/ff-marketplace-indexer/internal/store/schema"
)

// Publisher defines the interface for fanning out notifications to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishNotification publishes a newly created notification
	PublishNotification(ctx context.Context, notification *schema.Notification) error
	// Close closes the connection
	Close()
}
