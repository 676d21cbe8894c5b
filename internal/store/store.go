package store

import (
	"context"
	"time"

	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
	"github.com/feral-file/ff-marketplace-indexer/internal/store/schema"
)

// ProjectionStore holds the read-model primitives used by the projection handlers.
// Getters return (nil, nil) when the record does not exist. Save methods upsert on the primary key.
type ProjectionStore interface {
	// GetNFT retrieves an NFT by collection address and token id
	GetNFT(ctx context.Context, collection, tokenID string) (*schema.NFT, error)
	// SaveNFT creates or replaces an NFT
	SaveNFT(ctx context.Context, nft *schema.NFT) error

	// GetCollection retrieves a collection by contract address
	GetCollection(ctx context.Context, address string) (*schema.Collection, error)
	// SaveCollection creates or replaces a collection
	SaveCollection(ctx context.Context, collection *schema.Collection) error

	// ListTokenListings returns every listing of an NFT ordered by listing position
	ListTokenListings(ctx context.Context, collection, tokenID string) ([]schema.Listing, error)
	// SaveListing creates or replaces a listing
	SaveListing(ctx context.Context, listing *schema.Listing) error

	// ListTokenOffers returns every offer on an NFT ordered by creation position
	ListTokenOffers(ctx context.Context, collection, tokenID string) ([]schema.Offer, error)
	// SaveOffer creates or replaces an offer
	SaveOffer(ctx context.Context, offer *schema.Offer) error

	// ListTokenAuctions returns every auction of an NFT ordered by creation position
	ListTokenAuctions(ctx context.Context, collection, tokenID string) ([]schema.Auction, error)
	// SaveAuction creates or replaces an auction
	SaveAuction(ctx context.Context, auction *schema.Auction) error
	// GetHighestBid retrieves the winning bid of an auction
	GetHighestBid(ctx context.Context, auctionID string) (*schema.HighestBid, error)
	// SaveHighestBid creates or replaces the winning bid of an auction
	SaveHighestBid(ctx context.Context, bid *schema.HighestBid) error

	// GetVerification retrieves the verification state of an address
	GetVerification(ctx context.Context, address string) (*schema.Verification, error)
	// SaveVerification creates or replaces the verification state of an address
	SaveVerification(ctx context.Context, verification *schema.Verification) error

	// GetSuggestion retrieves a community suggestion by id
	GetSuggestion(ctx context.Context, id string) (*schema.Suggestion, error)
	// SaveSuggestion creates or replaces a community suggestion
	SaveSuggestion(ctx context.Context, suggestion *schema.Suggestion) error
	// ListSuggestionDeposits returns every deposit of a suggestion ordered by position
	ListSuggestionDeposits(ctx context.Context, suggestionID string) ([]schema.SuggestionDeposit, error)
	// SaveSuggestionDeposit creates or replaces a deposit
	SaveSuggestionDeposit(ctx context.Context, deposit *schema.SuggestionDeposit) error

	// CreateNotification inserts a notification, returning false if it already exists
	CreateNotification(ctx context.Context, notification *schema.Notification) (bool, error)
}

// Tx is the transactional view of the store used by the projector
type Tx interface {
	ProjectionStore

	// RecordEvent appends an event to the journal, returning false if the position is already recorded
	RecordEvent(ctx context.Context, event domain.Event) (bool, error)
	// ListEvents pages through the journal in position order, returning events after the given
	// position and at or below the given block
	ListEvents(ctx context.Context, chain domain.Chain, after domain.Position, throughBlock uint64, limit int) ([]domain.Event, error)
	// ResetProjections removes journal entries and notifications above the given block and
	// empties every other read model so the journal can be replayed
	ResetProjections(ctx context.Context, chain domain.Chain, throughBlock uint64) error
	// SetCursor stores the cursor within the transaction
	SetCursor(ctx context.Context, chain domain.Chain, cursor domain.Cursor) error
}

// NFTFilter filters NFT queries
type NFTFilter struct {
	Owner      string
	Creator    string
	Collection string
	Limit      int
	Offset     int
}

// ListingFilter filters listing queries
type ListingFilter struct {
	Collection string
	TokenID    string
	Seller     string
	Status     schema.ListingStatus
	Limit      int
	Offset     int
}

// OfferFilter filters offer queries
type OfferFilter struct {
	Collection string
	TokenID    string
	Creator    string
	Status     schema.OfferStatus
	// DeadlineAfter keeps offers whose deadline is after the given time
	DeadlineAfter *time.Time
	// DeadlineNotAfter keeps offers whose deadline is at or before the given time
	DeadlineNotAfter *time.Time
	Limit            int
	Offset           int
}

// SuggestionFilter filters community suggestion queries
type SuggestionFilter struct {
	Proposer string
	Status   schema.SuggestionStatus
	Limit    int
	Offset   int
}

// QueryStore serves the read API
type QueryStore interface {
	GetNFT(ctx context.Context, collection, tokenID string) (*schema.NFT, error)
	ListNFTs(ctx context.Context, filter NFTFilter) ([]schema.NFT, error)
	GetCollection(ctx context.Context, address string) (*schema.Collection, error)
	ListCollections(ctx context.Context, limit, offset int) ([]schema.Collection, error)
	ListListings(ctx context.Context, filter ListingFilter) ([]schema.Listing, error)
	ListOffers(ctx context.Context, filter OfferFilter) ([]schema.Offer, error)
	// GetLatestAuction returns the most recent auction of an NFT with its highest bid, if any
	GetLatestAuction(ctx context.Context, collection, tokenID string) (*schema.Auction, *schema.HighestBid, error)
	ListNotifications(ctx context.Context, recipient string, includeHidden bool, limit, offset int) ([]schema.Notification, error)
	// HideNotification flips the visible flag, returning false if the notification does not exist
	HideNotification(ctx context.Context, id string) (bool, error)
	ListTokenEvents(ctx context.Context, collection, tokenID string, limit, offset int) ([]schema.MarketEvent, error)
	GetVerification(ctx context.Context, address string) (*schema.Verification, error)
	GetSuggestion(ctx context.Context, id string) (*schema.Suggestion, error)
	ListSuggestions(ctx context.Context, filter SuggestionFilter) ([]schema.Suggestion, error)
	ListSuggestionDeposits(ctx context.Context, suggestionID string) ([]schema.SuggestionDeposit, error)
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	CursorStore
	QueryStore

	// WithinTransaction runs fn in a database transaction, rolling back when fn returns an error
	WithinTransaction(ctx context.Context, fn func(tx Tx) error) error
	// ListCollectionAddresses returns the address of every known collection
	ListCollectionAddresses(ctx context.Context) ([]string, error)
	// JournaledBlockBefore returns the highest block below before that has a journaled
	// event, with the hash recorded for it. It returns nil when there is none.
	JournaledBlockBefore(ctx context.Context, chain domain.Chain, before uint64) (*domain.BlockRef, error)
	// Ping checks database connectivity
	Ping(ctx context.Context) error
}
