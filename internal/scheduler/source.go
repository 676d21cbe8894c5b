package scheduler

import (
	"context"

	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
)

// EventSource reads confirmed marketplace events from the chain
//
//go:generate mockgen -source=source.go -destination=../mocks/event_source.go -package=mocks -mock_names=EventSource=MockEventSource
type EventSource interface {
	// FetchEventsAfter returns at most maxCount events strictly after the cursor, in
	// position order. It fails with a *domain.ReorgError when the cursor block is no
	// longer canonical and with domain.ErrAdapterUnavailable when the chain is unreachable.
	FetchEventsAfter(ctx context.Context, cursor domain.Cursor, maxCount int) (domain.Batch, error)

	// CurrentConfirmedHeight returns the highest block considered final
	CurrentConfirmedHeight(ctx context.Context) (uint64, error)

	// BlockHash returns the canonical hash of a block
	BlockHash(ctx context.Context, number uint64) (string, error)
}
