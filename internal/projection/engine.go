package projection

import (
	"context"
	"fmt"

	"github.com/feral-file/ff-marketplace-indexer/internal/adapter"
	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
	"github.com/feral-file/ff-marketplace-indexer/internal/store"
	"github.com/feral-file/ff-marketplace-indexer/internal/store/schema"
)

// Effects are the side effects of applying an event that outlive the transaction
type Effects struct {
	// Notifications created by the event, to be published after commit
	Notifications []schema.Notification
}

func (e *Effects) merge(o Effects) {
	e.Notifications = append(e.Notifications, o.Notifications...)
}

type handler func(ctx context.Context, tx store.ProjectionStore, ev domain.Event) (Effects, error)

// Engine applies events to the read models.
//
// Every record keeps the position of the event that last changed it and a
// mutation carried by an older event is ignored. Applying the same event twice,
// or replaying a journal from scratch, therefore converges to the same state.
type Engine struct {
	clock    adapter.Clock
	handlers map[domain.EventKind]handler
}

// NewEngine creates a projection engine
func NewEngine(clock adapter.Clock) *Engine {
	e := &Engine{clock: clock}
	e.handlers = map[domain.EventKind]handler{
		domain.EventKindMint:              e.applyMint,
		domain.EventKindTransfer:          e.applyTransfer,
		domain.EventKindBurn:              e.applyBurn,
		domain.EventKindCollectionCreated: e.applyCollectionCreated,
		domain.EventKindItemListed:        e.applyItemListed,
		domain.EventKindListingUpdated:    e.applyListingUpdated,
		domain.EventKindItemSold:          e.applyItemSold,
		domain.EventKindListingCancelled:  e.applyListingCancelled,
		domain.EventKindOfferCreated:      e.applyOfferCreated,
		domain.EventKindOfferAccepted:     e.applyOfferAccepted,
		domain.EventKindOfferCancelled:    e.applyOfferCancelled,
		domain.EventKindAuctionCreated:    e.applyAuctionCreated,
		domain.EventKindBidPlaced:         e.applyBidPlaced,
		domain.EventKindAuctionResulted:   e.applyAuctionResulted,
		domain.EventKindAuctionCancelled:  e.applyAuctionCancelled,
		domain.EventKindAddressVerified:   e.applyAddressVerified,
		domain.EventKindAddressUnverified: e.applyAddressUnverified,
		domain.EventKindInversorVerified:  e.applyInversorVerified,

		domain.EventKindSuggestionCreated:   e.applySuggestionCreated,
		domain.EventKindSuggestionFunded:    e.applySuggestionFunded,
		domain.EventKindSuggestionWithdrawn: e.applySuggestionWithdrawn,
	}
	return e
}

// Apply dispatches an event to the handler of its kind.
// It returns an error wrapping domain.ErrUnknownEventKind when no handler exists
// and a *domain.ProjectionError when the payload is structurally invalid.
func (e *Engine) Apply(ctx context.Context, tx store.ProjectionStore, ev domain.Event) (Effects, error) {
	h, ok := e.handlers[ev.Kind]
	if !ok {
		return Effects{}, fmt.Errorf("%w: %q at %s", domain.ErrUnknownEventKind, ev.Kind, ev.Position)
	}

	if err := ev.Validate(); err != nil {
		return Effects{}, err
	}

	return h(ctx, tx, ev)
}
