package projection

import (
	"context"

	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
	"github.com/feral-file/ff-marketplace-indexer/internal/store"
	"github.com/feral-file/ff-marketplace-indexer/internal/store/schema"
)

func loadVerification(ctx context.Context, tx store.ProjectionStore, address string) (*schema.Verification, error) {
	v, err := tx.GetVerification(ctx, address)
	if err != nil {
		return nil, err
	}
	if v == nil {
		v = &schema.Verification{Address: address}
	}
	return v, nil
}

func (e *Engine) setVerified(ctx context.Context, tx store.ProjectionStore, ev domain.Event, verified bool) (Effects, error) {
	v, err := loadVerification(ctx, tx, ev.Participants.Account)
	if err != nil {
		return Effects{}, err
	}

	if !ev.Position.After(v.VerifiedPos) {
		return Effects{}, nil
	}
	v.Verified = verified
	v.VerifiedPos = ev.Position

	return Effects{}, tx.SaveVerification(ctx, v)
}

func (e *Engine) applyAddressVerified(ctx context.Context, tx store.ProjectionStore, ev domain.Event) (Effects, error) {
	return e.setVerified(ctx, tx, ev, true)
}

func (e *Engine) applyAddressUnverified(ctx context.Context, tx store.ProjectionStore, ev domain.Event) (Effects, error) {
	return e.setVerified(ctx, tx, ev, false)
}

func (e *Engine) applyInversorVerified(ctx context.Context, tx store.ProjectionStore, ev domain.Event) (Effects, error) {
	v, err := loadVerification(ctx, tx, ev.Participants.Account)
	if err != nil {
		return Effects{}, err
	}

	if !ev.Position.After(v.InversorPos) {
		return Effects{}, nil
	}
	v.Inversor = true
	v.InversorPos = ev.Position

	return Effects{}, tx.SaveVerification(ctx, v)
}
