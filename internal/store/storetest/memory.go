// Package storetest provides an in-memory store for tests of packages built on top of store.Store.
package storetest

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
	"github.com/feral-file/ff-marketplace-indexer/internal/store"
	"github.com/feral-file/ff-marketplace-indexer/internal/store/schema"
)

type nftKey struct {
	collection string
	tokenID    string
}

type state struct {
	cursors       map[domain.Chain]domain.Cursor
	events        map[domain.Chain]map[domain.Position]domain.Event
	nfts          map[nftKey]schema.NFT
	collections   map[string]schema.Collection
	listings      map[string]schema.Listing
	offers        map[string]schema.Offer
	auctions      map[string]schema.Auction
	bids          map[string]schema.HighestBid
	verifications map[string]schema.Verification
	suggestions   map[string]schema.Suggestion
	deposits      map[string]schema.SuggestionDeposit
	notifications map[string]schema.Notification
}

func newState() *state {
	return &state{
		cursors:       map[domain.Chain]domain.Cursor{},
		events:        map[domain.Chain]map[domain.Position]domain.Event{},
		nfts:          map[nftKey]schema.NFT{},
		collections:   map[string]schema.Collection{},
		listings:      map[string]schema.Listing{},
		offers:        map[string]schema.Offer{},
		auctions:      map[string]schema.Auction{},
		bids:          map[string]schema.HighestBid{},
		verifications: map[string]schema.Verification{},
		suggestions:   map[string]schema.Suggestion{},
		deposits:      map[string]schema.SuggestionDeposit{},
		notifications: map[string]schema.Notification{},
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *state) clone() *state {
	events := make(map[domain.Chain]map[domain.Position]domain.Event, len(s.events))
	for chain, m := range s.events {
		events[chain] = cloneMap(m)
	}
	return &state{
		cursors:       cloneMap(s.cursors),
		events:        events,
		nfts:          cloneMap(s.nfts),
		collections:   cloneMap(s.collections),
		listings:      cloneMap(s.listings),
		offers:        cloneMap(s.offers),
		auctions:      cloneMap(s.auctions),
		bids:          cloneMap(s.bids),
		verifications: cloneMap(s.verifications),
		suggestions:   cloneMap(s.suggestions),
		deposits:      cloneMap(s.deposits),
		notifications: cloneMap(s.notifications),
	}
}

// MemoryStore is an in-memory store.Store. Transactions run on a copy of the
// state that replaces the committed state only when fn succeeds.
type MemoryStore struct {
	mu    sync.Mutex
	state *state

	// FailSetCursor makes every cursor write fail
	FailSetCursor error
	// FailRecordAt makes RecordEvent fail for the event at that position
	FailRecordAt *domain.Position
	// Transactions counts committed and rolled back transactions
	Transactions int
}

var _ store.Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{state: newState()}
}

// memoryTx operates on a state without locking, the owning MemoryStore holds the lock
type memoryTx struct {
	owner *MemoryStore
	state *state
}

func (m *MemoryStore) view() *memoryTx {
	return &memoryTx{owner: m, state: m.state}
}

// WithinTransaction runs fn on a copy of the state
func (m *MemoryStore) WithinTransaction(ctx context.Context, fn func(tx store.Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Transactions++
	working := m.state.clone()
	if err := fn(&memoryTx{owner: m, state: working}); err != nil {
		return err
	}
	m.state = working
	return nil
}

func (m *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (m *MemoryStore) GetCursor(ctx context.Context, chain domain.Chain) (*domain.Cursor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.state.cursors[chain]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *MemoryStore) SetCursor(ctx context.Context, chain domain.Chain, cursor domain.Cursor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.view().SetCursor(ctx, chain, cursor)
}

func (m *MemoryStore) ListCollectionAddresses(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	addresses := make([]string, 0, len(m.state.collections))
	for addr := range m.state.collections {
		addresses = append(addresses, addr)
	}
	sort.Strings(addresses)
	return addresses, nil
}

func (m *MemoryStore) JournaledBlockBefore(ctx context.Context, chain domain.Chain, before uint64) (*domain.BlockRef, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var found *domain.BlockRef
	for pos, ev := range m.state.events[chain] {
		if pos.Block < before && (found == nil || pos.Block > found.Number) {
			found = &domain.BlockRef{Number: pos.Block, Hash: ev.BlockHash}
		}
	}
	return found, nil
}

// Events returns the journal of a chain in position order
func (m *MemoryStore) Events(chain domain.Chain) []domain.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	events, _ := m.view().ListEvents(context.Background(), chain, domain.Position{}, ^uint64(0), 0)
	return events
}

// Notifications returns every stored notification ordered by id
func (m *MemoryStore) Notifications() []schema.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]schema.Notification, 0, len(m.state.notifications))
	for _, n := range m.state.notifications {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// =============================================================================
// Query store
// =============================================================================

func (m *MemoryStore) GetNFT(ctx context.Context, collection, tokenID string) (*schema.NFT, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.view().GetNFT(ctx, collection, tokenID)
}

func (m *MemoryStore) ListNFTs(ctx context.Context, filter store.NFTFilter) ([]schema.NFT, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []schema.NFT
	for _, n := range m.state.nfts {
		if filter.Owner != "" && n.Owner != filter.Owner {
			continue
		}
		if filter.Creator != "" && n.Creator != filter.Creator {
			continue
		}
		if filter.Collection != "" && n.CollectionAddress != filter.Collection {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[j].MintPos.Less(out[i].MintPos) })
	return page(out, filter.Limit, filter.Offset), nil
}

func (m *MemoryStore) GetCollection(ctx context.Context, address string) (*schema.Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.view().GetCollection(ctx, address)
}

func (m *MemoryStore) ListCollections(ctx context.Context, limit, offset int) ([]schema.Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]schema.Collection, 0, len(m.state.collections))
	for _, c := range m.state.collections {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ContractAddress < out[j].ContractAddress })
	return page(out, limit, offset), nil
}

func (m *MemoryStore) ListListings(ctx context.Context, filter store.ListingFilter) ([]schema.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []schema.Listing
	for _, l := range m.state.listings {
		if filter.Collection != "" && l.CollectionAddress != filter.Collection {
			continue
		}
		if filter.TokenID != "" && l.TokenID != filter.TokenID {
			continue
		}
		if filter.Seller != "" && l.Seller != filter.Seller {
			continue
		}
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[j].ListedPos.Less(out[i].ListedPos) })
	return page(out, filter.Limit, filter.Offset), nil
}

func (m *MemoryStore) ListOffers(ctx context.Context, filter store.OfferFilter) ([]schema.Offer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []schema.Offer
	for _, o := range m.state.offers {
		if filter.Collection != "" && o.CollectionAddress != filter.Collection {
			continue
		}
		if filter.TokenID != "" && o.TokenID != filter.TokenID {
			continue
		}
		if filter.Creator != "" && o.Creator != filter.Creator {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if filter.DeadlineAfter != nil && !o.Deadline.After(*filter.DeadlineAfter) {
			continue
		}
		if filter.DeadlineNotAfter != nil && o.Deadline.After(*filter.DeadlineNotAfter) {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[j].CreatedPos.Less(out[i].CreatedPos) })
	return page(out, filter.Limit, filter.Offset), nil
}

func (m *MemoryStore) GetLatestAuction(ctx context.Context, collection, tokenID string) (*schema.Auction, *schema.HighestBid, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := m.view()
	auctions, _ := tx.ListTokenAuctions(ctx, collection, tokenID)
	if len(auctions) == 0 {
		return nil, nil, nil
	}
	latest := auctions[len(auctions)-1]
	bid, _ := tx.GetHighestBid(ctx, latest.ID)
	return &latest, bid, nil
}

func (m *MemoryStore) ListNotifications(ctx context.Context, recipient string, includeHidden bool, limit, offset int) ([]schema.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []schema.Notification
	for _, n := range m.state.notifications {
		if n.Recipient != recipient || (!includeHidden && !n.Visible) {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].ID < out[j].ID
	})
	return page(out, limit, offset), nil
}

func (m *MemoryStore) HideNotification(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.state.notifications[id]
	if !ok {
		return false, nil
	}
	n.Visible = false
	m.state.notifications[id] = n
	return true, nil
}

func (m *MemoryStore) ListTokenEvents(ctx context.Context, collection, tokenID string, limit, offset int) ([]schema.MarketEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []schema.MarketEvent
	for _, events := range m.state.events {
		for _, ev := range events {
			if ev.CollectionAddress != collection || ev.TokenID != tokenID {
				continue
			}
			c, t := ev.CollectionAddress, ev.TokenID
			out = append(out, schema.MarketEvent{
				Chain:             ev.Chain,
				BlockNumber:       ev.Position.Block,
				LogIndex:          ev.Position.LogIndex,
				BlockHash:         ev.BlockHash,
				TxHash:            ev.TxHash,
				Kind:              ev.Kind,
				CollectionAddress: &c,
				TokenID:           &t,
				Timestamp:         ev.Timestamp,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].BlockNumber != out[j].BlockNumber {
			return out[i].BlockNumber > out[j].BlockNumber
		}
		return out[i].LogIndex > out[j].LogIndex
	})
	return page(out, limit, offset), nil
}

func (m *MemoryStore) GetVerification(ctx context.Context, address string) (*schema.Verification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.view().GetVerification(ctx, address)
}

func (m *MemoryStore) GetSuggestion(ctx context.Context, id string) (*schema.Suggestion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.view().GetSuggestion(ctx, id)
}

func (m *MemoryStore) ListSuggestions(ctx context.Context, filter store.SuggestionFilter) ([]schema.Suggestion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []schema.Suggestion
	for _, s := range m.state.suggestions {
		if filter.Proposer != "" && s.Proposer != filter.Proposer {
			continue
		}
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[j].CreatedPos.Less(out[i].CreatedPos) })
	return page(out, filter.Limit, filter.Offset), nil
}

func (m *MemoryStore) ListSuggestionDeposits(ctx context.Context, suggestionID string) ([]schema.SuggestionDeposit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.view().ListSuggestionDeposits(ctx, suggestionID)
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// =============================================================================
// Transaction
// =============================================================================

func (t *memoryTx) SetCursor(ctx context.Context, chain domain.Chain, cursor domain.Cursor) error {
	if t.owner.FailSetCursor != nil {
		return t.owner.FailSetCursor
	}
	t.state.cursors[chain] = cursor
	return nil
}

func (t *memoryTx) RecordEvent(ctx context.Context, event domain.Event) (bool, error) {
	if p := t.owner.FailRecordAt; p != nil && *p == event.Position {
		return false, fmt.Errorf("failed to record event at %s", event.Position)
	}
	events, ok := t.state.events[event.Chain]
	if !ok {
		events = map[domain.Position]domain.Event{}
		t.state.events[event.Chain] = events
	}
	if existing, exists := events[event.Position]; exists {
		_, want, err := existing.Digest()
		if err != nil {
			return false, err
		}
		_, got, err := event.Digest()
		if err != nil {
			return false, err
		}
		if !domain.SameDigest(want, got) {
			return false, fmt.Errorf("%w: %s", domain.ErrJournalConflict, event.Position)
		}
		return false, nil
	}
	events[event.Position] = event
	return true, nil
}

func (t *memoryTx) ListEvents(ctx context.Context, chain domain.Chain, after domain.Position, throughBlock uint64, limit int) ([]domain.Event, error) {
	var out []domain.Event
	for pos, ev := range t.state.events[chain] {
		if pos.After(after) && pos.Block <= throughBlock {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position.Less(out[j].Position) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (t *memoryTx) ResetProjections(ctx context.Context, chain domain.Chain, throughBlock uint64) error {
	for pos := range t.state.events[chain] {
		if pos.Block > throughBlock {
			delete(t.state.events[chain], pos)
		}
	}
	for id, n := range t.state.notifications {
		if n.BlockNumber > throughBlock {
			delete(t.state.notifications, id)
		}
	}
	t.state.nfts = map[nftKey]schema.NFT{}
	t.state.collections = map[string]schema.Collection{}
	t.state.listings = map[string]schema.Listing{}
	t.state.offers = map[string]schema.Offer{}
	t.state.auctions = map[string]schema.Auction{}
	t.state.bids = map[string]schema.HighestBid{}
	t.state.verifications = map[string]schema.Verification{}
	t.state.suggestions = map[string]schema.Suggestion{}
	t.state.deposits = map[string]schema.SuggestionDeposit{}
	return nil
}

func (t *memoryTx) GetNFT(ctx context.Context, collection, tokenID string) (*schema.NFT, error) {
	n, ok := t.state.nfts[nftKey{collection, tokenID}]
	if !ok {
		return nil, nil
	}
	return &n, nil
}

func (t *memoryTx) SaveNFT(ctx context.Context, nft *schema.NFT) error {
	t.state.nfts[nftKey{nft.CollectionAddress, nft.TokenID}] = *nft
	return nil
}

func (t *memoryTx) GetCollection(ctx context.Context, address string) (*schema.Collection, error) {
	c, ok := t.state.collections[address]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (t *memoryTx) SaveCollection(ctx context.Context, collection *schema.Collection) error {
	t.state.collections[collection.ContractAddress] = *collection
	return nil
}

func (t *memoryTx) ListTokenListings(ctx context.Context, collection, tokenID string) ([]schema.Listing, error) {
	var out []schema.Listing
	for _, l := range t.state.listings {
		if l.CollectionAddress == collection && l.TokenID == tokenID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ListedPos.Less(out[j].ListedPos) })
	return out, nil
}

// SaveListing enforces the single active listing per NFT like the database index does
func (t *memoryTx) SaveListing(ctx context.Context, listing *schema.Listing) error {
	if listing.Status == schema.ListingStatusActive {
		for id, l := range t.state.listings {
			if id != listing.ID && l.Status == schema.ListingStatusActive &&
				l.CollectionAddress == listing.CollectionAddress && l.TokenID == listing.TokenID {
				return errors.New("duplicate active listing")
			}
		}
	}
	t.state.listings[listing.ID] = *listing
	return nil
}

func (t *memoryTx) ListTokenOffers(ctx context.Context, collection, tokenID string) ([]schema.Offer, error) {
	var out []schema.Offer
	for _, o := range t.state.offers {
		if o.CollectionAddress == collection && o.TokenID == tokenID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedPos.Less(out[j].CreatedPos) })
	return out, nil
}

// SaveOffer enforces the single open offer per creator and NFT like the database index does
func (t *memoryTx) SaveOffer(ctx context.Context, offer *schema.Offer) error {
	if offer.Status == schema.OfferStatusOpen {
		for id, o := range t.state.offers {
			if id != offer.ID && o.Status == schema.OfferStatusOpen && o.Creator == offer.Creator &&
				o.CollectionAddress == offer.CollectionAddress && o.TokenID == offer.TokenID {
				return errors.New("duplicate open offer")
			}
		}
	}
	t.state.offers[offer.ID] = *offer
	return nil
}

func (t *memoryTx) ListTokenAuctions(ctx context.Context, collection, tokenID string) ([]schema.Auction, error) {
	var out []schema.Auction
	for _, a := range t.state.auctions {
		if a.CollectionAddress == collection && a.TokenID == tokenID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedPos.Less(out[j].CreatedPos) })
	return out, nil
}

func (t *memoryTx) SaveAuction(ctx context.Context, auction *schema.Auction) error {
	t.state.auctions[auction.ID] = *auction
	return nil
}

func (t *memoryTx) GetHighestBid(ctx context.Context, auctionID string) (*schema.HighestBid, error) {
	b, ok := t.state.bids[auctionID]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (t *memoryTx) SaveHighestBid(ctx context.Context, bid *schema.HighestBid) error {
	t.state.bids[bid.AuctionID] = *bid
	return nil
}

func (t *memoryTx) GetVerification(ctx context.Context, address string) (*schema.Verification, error) {
	v, ok := t.state.verifications[address]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (t *memoryTx) SaveVerification(ctx context.Context, verification *schema.Verification) error {
	t.state.verifications[verification.Address] = *verification
	return nil
}

func (t *memoryTx) GetSuggestion(ctx context.Context, id string) (*schema.Suggestion, error) {
	s, ok := t.state.suggestions[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (t *memoryTx) SaveSuggestion(ctx context.Context, suggestion *schema.Suggestion) error {
	t.state.suggestions[suggestion.ID] = *suggestion
	return nil
}

func (t *memoryTx) ListSuggestionDeposits(ctx context.Context, suggestionID string) ([]schema.SuggestionDeposit, error) {
	var out []schema.SuggestionDeposit
	for _, d := range t.state.deposits {
		if d.SuggestionID == suggestionID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pos.Less(out[j].Pos) })
	return out, nil
}

func (t *memoryTx) SaveSuggestionDeposit(ctx context.Context, deposit *schema.SuggestionDeposit) error {
	t.state.deposits[deposit.ID] = *deposit
	return nil
}

func (t *memoryTx) CreateNotification(ctx context.Context, notification *schema.Notification) (bool, error) {
	if _, exists := t.state.notifications[notification.ID]; exists {
		return false, nil
	}
	t.state.notifications[notification.ID] = *notification
	return true, nil
}
