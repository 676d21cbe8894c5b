package messaging

import (
	"context"
)

// TriggerHandler is called whenever a source signals that new chain data may be available
type TriggerHandler func(reason string)

// Trigger delivers push signals that start a reconciliation cycle ahead of the interval.
// The new-head watcher and the JetStream trigger consumer both implement it.
//
//go:generate mockgen -source=trigger.go -destination=../mocks/trigger.go -package=mocks -mock_names=Trigger=MockTrigger
type Trigger interface {
	// Listen blocks delivering signals to handler until ctx is cancelled or the source fails
	Listen(ctx context.Context, handler TriggerHandler) error

	// Close closes the connection and cleans up resources
	Close()
}
