package projection

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
	"github.com/feral-file/ff-marketplace-indexer/internal/logger"
	"github.com/feral-file/ff-marketplace-indexer/internal/messaging"
	"github.com/feral-file/ff-marketplace-indexer/internal/store"
)

const rebuildPageSize = 1000

// Projector applies events durably: the journal row and every read-model change
// of an event commit in one transaction.
//
//go:generate mockgen -source=projector.go -destination=../mocks/projector.go -package=mocks -mock_names=Projector=MockProjector
type Projector interface {
	// Apply records and projects one event. An event already in the journal is projected
	// again without a new journal row or notification.
	Apply(ctx context.Context, ev domain.Event) error

	// Rebuild drops journal rows above throughBlock, rebuilds every read model by
	// replaying the remaining journal and stores cursor, all in one transaction
	Rebuild(ctx context.Context, chain domain.Chain, throughBlock uint64, cursor domain.Cursor) error
}

type projector struct {
	store     store.Store
	engine    *Engine
	publisher messaging.Publisher
}

// NewProjector creates a projector. publisher may be nil when notifications are not fanned out.
func NewProjector(st store.Store, engine *Engine, publisher messaging.Publisher) Projector {
	return &projector{
		store:     st,
		engine:    engine,
		publisher: publisher,
	}
}

func (p *projector) Apply(ctx context.Context, ev domain.Event) error {
	if !domain.IsKnownKind(ev.Kind) {
		return fmt.Errorf("%w: %q at %s", domain.ErrUnknownEventKind, ev.Kind, ev.Position)
	}
	if err := ev.Validate(); err != nil {
		return err
	}

	var effects Effects
	err := p.store.WithinTransaction(ctx, func(tx store.Tx) error {
		created, err := tx.RecordEvent(ctx, ev)
		if err != nil {
			return err
		}
		// A journaled event is applied again: handlers are idempotent, and a
		// redelivery in order lets out of order state converge.
		if !created {
			logger.DebugCtx(ctx, "Event already journaled", zap.Stringer("position", ev.Position))
		}

		effects, err = p.engine.Apply(ctx, tx, ev)
		return err
	})
	if err != nil {
		var projectionErr *domain.ProjectionError
		if errors.As(err, &projectionErr) {
			return err
		}
		return fmt.Errorf("failed to apply %s at %s: %w", ev.Kind, ev.Position, err)
	}

	p.publish(ctx, effects)

	return nil
}

// publish fans out notifications after commit. Delivery is best effort, the
// notification rows are the source of truth.
func (p *projector) publish(ctx context.Context, effects Effects) {
	if p.publisher == nil {
		return
	}

	for i := range effects.Notifications {
		n := &effects.Notifications[i]
		if err := p.publisher.PublishNotification(ctx, n); err != nil {
			logger.WarnCtx(ctx, "Failed to publish notification",
				zap.String("id", n.ID),
				zap.String("recipient", n.Recipient),
				zap.Error(err))
		}
	}
}

func (p *projector) Rebuild(ctx context.Context, chain domain.Chain, throughBlock uint64, cursor domain.Cursor) error {
	replayed := 0
	err := p.store.WithinTransaction(ctx, func(tx store.Tx) error {
		if err := tx.ResetProjections(ctx, chain, throughBlock); err != nil {
			return err
		}

		// Genesis holds no logs so the zero position is never a journal row
		after := domain.Position{}
		for {
			events, err := tx.ListEvents(ctx, chain, after, throughBlock, rebuildPageSize)
			if err != nil {
				return err
			}

			for _, ev := range events {
				if _, err := p.engine.Apply(ctx, tx, ev); err != nil {
					return fmt.Errorf("failed to replay %s at %s: %w", ev.Kind, ev.Position, err)
				}
				after = ev.Position
			}
			replayed += len(events)

			if len(events) < rebuildPageSize {
				break
			}
		}

		return tx.SetCursor(ctx, chain, cursor)
	})
	if err != nil {
		return fmt.Errorf("failed to rebuild projections through block %d: %w", throughBlock, err)
	}

	logger.InfoCtx(ctx, "Rebuilt projections",
		zap.String("chain", string(chain)),
		zap.Uint64("throughBlock", throughBlock),
		zap.Int("replayed", replayed))

	return nil
}
