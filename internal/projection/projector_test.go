package projection

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
	"github.com/feral-file/ff-marketplace-indexer/internal/store"
	"github.com/feral-file/ff-marketplace-indexer/internal/store/schema"
	"github.com/feral-file/ff-marketplace-indexer/internal/store/storetest"
)

// recordingPublisher keeps every published notification
type recordingPublisher struct {
	published []schema.Notification
	err       error
}

func (r *recordingPublisher) PublishNotification(_ context.Context, n *schema.Notification) error {
	r.published = append(r.published, *n)
	return r.err
}

func (r *recordingPublisher) Close() {}

func TestProjector_ApplyPublishesAfterCommit(t *testing.T) {
	st := storetest.NewMemoryStore()
	publisher := &recordingPublisher{}
	p := NewProjector(st, newEngine(), publisher)
	ctx := context.Background()

	events := []domain.Event{
		mintEvent(pos(10, 0), alice),
		listEvent(pos(11, 0), alice, "10"),
		saleEvent(pos(12, 0), alice, bob, "10"),
	}
	for _, ev := range events {
		require.NoError(t, p.Apply(ctx, ev))
	}

	// Duplicates are recognised by the journal and publish nothing
	for _, ev := range events {
		require.NoError(t, p.Apply(ctx, ev))
	}

	assert.Len(t, st.Events(domain.ChainFantomOpera), 3)
	assert.Equal(t, bob, getNFT(t, st).Owner)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, alice, publisher.published[0].Recipient)
	assert.Equal(t, domain.NOTIFICATION_ITEM_SOLD, publisher.published[0].Type)
}

func TestProjector_PublishFailureDoesNotFailApply(t *testing.T) {
	st := storetest.NewMemoryStore()
	publisher := &recordingPublisher{err: errors.New("nats down")}
	p := NewProjector(st, newEngine(), publisher)
	ctx := context.Background()

	require.NoError(t, p.Apply(ctx, listEvent(pos(11, 0), alice, "10")))
	require.NoError(t, p.Apply(ctx, saleEvent(pos(12, 0), alice, bob, "10")))

	assert.Len(t, st.Notifications(), 1)
	assert.Len(t, publisher.published, 1)
}

func TestProjector_RejectsBeforeWriting(t *testing.T) {
	st := storetest.NewMemoryStore()
	p := NewProjector(st, newEngine(), nil)
	ctx := context.Background()

	err := p.Apply(ctx, event(domain.EventKindUnknown, pos(10, 0)))
	assert.ErrorIs(t, err, domain.ErrUnknownEventKind)

	bad := saleEvent(pos(11, 0), alice, "", "10")
	err = p.Apply(ctx, bad)
	var projectionErr *domain.ProjectionError
	require.ErrorAs(t, err, &projectionErr)
	assert.Equal(t, "participants.buyer", projectionErr.Field)

	assert.Empty(t, st.Events(domain.ChainFantomOpera))
	assert.Equal(t, 0, st.Transactions)
}

func TestProjector_StoresBusinessRuleEdgesAsEmitted(t *testing.T) {
	st := storetest.NewMemoryStore()
	p := NewProjector(st, newEngine(), nil)
	ctx := context.Background()

	auction := auctionEvent(pos(10, 0), alice)
	auction.Amounts.EndTime = auction.Amounts.StartTime
	require.NoError(t, p.Apply(ctx, auction))

	offer := offerEvent(pos(11, 0), bob, "8")
	offer.Amounts.Deadline = 0
	require.NoError(t, p.Apply(ctx, offer))

	stored, _, err := st.GetLatestAuction(ctx, collectionAddr, "1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.StartTime.Equal(stored.EndTime))

	offers, err := st.ListOffers(ctx, store.OfferFilter{})
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, int64(0), offers[0].Deadline.Unix())
}

func TestProjector_ApplyIsAtomic(t *testing.T) {
	st := storetest.NewMemoryStore()
	p := NewProjector(st, newEngine(), nil)
	ctx := context.Background()

	require.NoError(t, p.Apply(ctx, mintEvent(pos(10, 0), alice)))

	failAt := pos(11, 0)
	st.FailRecordAt = &failAt
	err := p.Apply(ctx, transferEvent(failAt, alice, bob))
	require.Error(t, err)

	assert.Equal(t, alice, getNFT(t, st).Owner)
	assert.Len(t, st.Events(domain.ChainFantomOpera), 1)
}

func TestProjector_RedeliveryInOrderConverges(t *testing.T) {
	ctx := context.Background()
	mint := mintEvent(pos(10, 0), alice)
	list := listEvent(pos(11, 0), alice, "10")
	sale := saleEvent(pos(12, 0), alice, bob, "10")

	forward := storetest.NewMemoryStore()
	pf := NewProjector(forward, newEngine(), nil)
	for _, ev := range []domain.Event{mint, list, sale} {
		require.NoError(t, pf.Apply(ctx, ev))
	}

	// Sale arrives before its listing, then the batch is redelivered in order
	replayed := storetest.NewMemoryStore()
	pr := NewProjector(replayed, newEngine(), nil)
	for _, ev := range []domain.Event{mint, sale, list, mint, list, sale} {
		require.NoError(t, pr.Apply(ctx, ev))
	}

	listings, err := replayed.ListListings(ctx, store.ListingFilter{})
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, schema.ListingStatusSold, listings[0].Status)
	assert.Equal(t, bob, getNFT(t, replayed).Owner)
	assert.Len(t, replayed.Events(domain.ChainFantomOpera), 3)
	assert.Equal(t, takeSnapshot(t, forward), takeSnapshot(t, replayed))
}

func TestProjector_EnrichmentDifferenceIsNotAConflict(t *testing.T) {
	st := storetest.NewMemoryStore()
	p := NewProjector(st, newEngine(), nil)
	ctx := context.Background()

	mint := mintEvent(pos(10, 0), alice)
	require.NoError(t, p.Apply(ctx, mint))

	// tokenURI and royaltyInfo failed on the second decoding
	bare := mint
	bare.MetadataRef = ""
	bare.Amounts.Royalty = ""
	require.NoError(t, p.Apply(ctx, bare))

	nft := getNFT(t, st)
	assert.Equal(t, "ipfs://token/1", nft.MetadataRef)
	assert.Equal(t, "250", nft.Royalty)
	assert.Len(t, st.Events(domain.ChainFantomOpera), 1)
}

func TestProjector_ConflictingReplayIsRejected(t *testing.T) {
	st := storetest.NewMemoryStore()
	p := NewProjector(st, newEngine(), nil)
	ctx := context.Background()

	require.NoError(t, p.Apply(ctx, transferEvent(pos(10, 0), alice, bob)))

	// Same position, different content: the journal refuses to dedup it away
	err := p.Apply(ctx, transferEvent(pos(10, 0), alice, carol))
	assert.ErrorIs(t, err, domain.ErrJournalConflict)
	assert.Len(t, st.Events(domain.ChainFantomOpera), 1)
}

func TestProjector_RebuildEqualsFullReplay(t *testing.T) {
	ctx := context.Background()
	chain := domain.ChainFantomOpera

	resulted := event(domain.EventKindAuctionResulted, pos(16, 0))
	resulted.Participants = domain.Participants{Seller: bob, Winner: alice}
	resulted.Amounts.Bid = "90"

	stable := []domain.Event{
		mintEvent(pos(10, 0), alice),
		listEvent(pos(11, 0), alice, "10"),
		saleEvent(pos(12, 0), alice, bob, "10"),
		offerEvent(pos(12, 3), carol, "4"),
	}
	orphaned := []domain.Event{
		auctionEvent(pos(14, 0), bob),
		bidEvent(pos(15, 0), carol, "50"),
		bidEvent(pos(15, 1), alice, "90"),
		resulted,
	}

	rebuilt := storetest.NewMemoryStore()
	p := NewProjector(rebuilt, newEngine(), nil)
	for _, ev := range append(append([]domain.Event{}, stable...), orphaned...) {
		require.NoError(t, p.Apply(ctx, ev))
	}

	// The sale notification survives the rebuild with its visibility
	sold := NotificationID(stable[2], alice, domain.NOTIFICATION_ITEM_SOLD)
	hidden, err := rebuilt.HideNotification(ctx, sold)
	require.NoError(t, err)
	require.True(t, hidden)

	cursor := domain.Cursor{Position: domain.EndOfBlock(13), BlockHash: "0xstable"}
	require.NoError(t, p.Rebuild(ctx, chain, 13, cursor))

	replayed := storetest.NewMemoryStore()
	applyAll(t, replayed, newEngine(), stable...)
	_, err = replayed.HideNotification(ctx, sold)
	require.NoError(t, err)

	assert.Equal(t, takeSnapshot(t, replayed), takeSnapshot(t, rebuilt))
	assert.Len(t, rebuilt.Events(chain), len(stable))

	stored, err := rebuilt.GetCursor(ctx, chain)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, cursor, *stored)

	notifications := rebuilt.Notifications()
	require.Len(t, notifications, 1)
	assert.False(t, notifications[0].Visible)
}

func TestProjector_RebuildFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	chain := domain.ChainFantomOpera

	st := storetest.NewMemoryStore()
	p := NewProjector(st, newEngine(), nil)
	require.NoError(t, p.Apply(ctx, mintEvent(pos(10, 0), alice)))
	require.NoError(t, p.Apply(ctx, transferEvent(pos(14, 0), alice, bob)))

	st.FailSetCursor = errors.New("disk full")
	err := p.Rebuild(ctx, chain, 12, domain.Cursor{Position: domain.EndOfBlock(12)})
	require.Error(t, err)

	assert.Equal(t, bob, getNFT(t, st).Owner)
	assert.Len(t, st.Events(chain), 2)
}
