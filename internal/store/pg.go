package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
	"github.com/feral-file/ff-marketplace-indexer/internal/store/schema"
)

const defaultQueryLimit = 50
const maxQueryLimit = 500

// projectionTables are emptied and rebuilt from the journal on reorg or resync
var projectionTables = []string{
	"highest_bids",
	"auctions",
	"offers",
	"listings",
	"nfts",
	"collections",
	"verifications",
	"suggestion_deposits",
	"suggestions",
}

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// RegisterReadReplica routes plain reads to the replica. Writes, transactions and
// queries marked with dbresolver.Write stay on the primary.
func RegisterReadReplica(db *gorm.DB, readDSN string) error {
	err := db.Use(dbresolver.Register(dbresolver.Config{
		Replicas: []gorm.Dialector{postgres.Open(readDSN)},
		Policy:   dbresolver.RandomPolicy{},
	}))
	if err != nil {
		return fmt.Errorf("failed to register read replica: %w", err)
	}
	return nil
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultQueryLimit
	}
	if limit > maxQueryLimit {
		return maxQueryLimit
	}
	return limit
}

// first runs a First query and maps not found to (nil, nil)
func first[T any](query *gorm.DB, what string) (*T, error) {
	var record T
	if err := query.First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s: %w", what, err)
	}
	return &record, nil
}

// upsert inserts a record or overwrites every column on primary key conflict
func upsert(ctx context.Context, db *gorm.DB, record any, what string) error {
	if err := db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(record).Error; err != nil {
		return fmt.Errorf("failed to save %s: %w", what, err)
	}
	return nil
}

// WithinTransaction runs fn in a database transaction
func (s *pgStore) WithinTransaction(ctx context.Context, fn func(tx Tx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&pgStore{db: tx})
	})
}

// Ping checks database connectivity
func (s *pgStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// =============================================================================
// Projection primitives
// =============================================================================

func (s *pgStore) GetNFT(ctx context.Context, collection, tokenID string) (*schema.NFT, error) {
	return first[schema.NFT](s.db.WithContext(ctx).
		Where("collection_address = ? AND token_id = ?", collection, tokenID), "nft")
}

func (s *pgStore) SaveNFT(ctx context.Context, nft *schema.NFT) error {
	return upsert(ctx, s.db, nft, "nft")
}

func (s *pgStore) GetCollection(ctx context.Context, address string) (*schema.Collection, error) {
	return first[schema.Collection](s.db.WithContext(ctx).
		Where("contract_address = ?", address), "collection")
}

func (s *pgStore) SaveCollection(ctx context.Context, collection *schema.Collection) error {
	return upsert(ctx, s.db, collection, "collection")
}

func (s *pgStore) ListTokenListings(ctx context.Context, collection, tokenID string) ([]schema.Listing, error) {
	var listings []schema.Listing
	err := s.db.WithContext(ctx).
		Where("collection_address = ? AND token_id = ?", collection, tokenID).
		Order("listed_block ASC, listed_log_index ASC").
		Find(&listings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list token listings: %w", err)
	}
	return listings, nil
}

func (s *pgStore) SaveListing(ctx context.Context, listing *schema.Listing) error {
	return upsert(ctx, s.db, listing, "listing")
}

func (s *pgStore) ListTokenOffers(ctx context.Context, collection, tokenID string) ([]schema.Offer, error) {
	var offers []schema.Offer
	err := s.db.WithContext(ctx).
		Where("collection_address = ? AND token_id = ?", collection, tokenID).
		Order("created_block ASC, created_log_index ASC").
		Find(&offers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list token offers: %w", err)
	}
	return offers, nil
}

func (s *pgStore) SaveOffer(ctx context.Context, offer *schema.Offer) error {
	return upsert(ctx, s.db, offer, "offer")
}

func (s *pgStore) ListTokenAuctions(ctx context.Context, collection, tokenID string) ([]schema.Auction, error) {
	var auctions []schema.Auction
	err := s.db.WithContext(ctx).
		Where("collection_address = ? AND token_id = ?", collection, tokenID).
		Order("created_block ASC, created_log_index ASC").
		Find(&auctions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list token auctions: %w", err)
	}
	return auctions, nil
}

func (s *pgStore) SaveAuction(ctx context.Context, auction *schema.Auction) error {
	return upsert(ctx, s.db, auction, "auction")
}

func (s *pgStore) GetHighestBid(ctx context.Context, auctionID string) (*schema.HighestBid, error) {
	return first[schema.HighestBid](s.db.WithContext(ctx).
		Where("auction_id = ?", auctionID), "highest bid")
}

func (s *pgStore) SaveHighestBid(ctx context.Context, bid *schema.HighestBid) error {
	return upsert(ctx, s.db, bid, "highest bid")
}

func (s *pgStore) GetVerification(ctx context.Context, address string) (*schema.Verification, error) {
	return first[schema.Verification](s.db.WithContext(ctx).
		Where("address = ?", address), "verification")
}

func (s *pgStore) SaveVerification(ctx context.Context, verification *schema.Verification) error {
	return upsert(ctx, s.db, verification, "verification")
}

func (s *pgStore) GetSuggestion(ctx context.Context, id string) (*schema.Suggestion, error) {
	return first[schema.Suggestion](s.db.WithContext(ctx).
		Where("id = ?", id), "suggestion")
}

func (s *pgStore) SaveSuggestion(ctx context.Context, suggestion *schema.Suggestion) error {
	return upsert(ctx, s.db, suggestion, "suggestion")
}

func (s *pgStore) ListSuggestionDeposits(ctx context.Context, suggestionID string) ([]schema.SuggestionDeposit, error) {
	var deposits []schema.SuggestionDeposit
	err := s.db.WithContext(ctx).
		Where("suggestion_id = ?", suggestionID).
		Order("deposit_block ASC, deposit_log_index ASC").
		Find(&deposits).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestion deposits: %w", err)
	}
	return deposits, nil
}

func (s *pgStore) SaveSuggestionDeposit(ctx context.Context, deposit *schema.SuggestionDeposit) error {
	return upsert(ctx, s.db, deposit, "suggestion deposit")
}

// CreateNotification inserts a notification. An existing row keeps its visible flag.
func (s *pgStore) CreateNotification(ctx context.Context, notification *schema.Notification) (bool, error) {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(notification)
	if result.Error != nil {
		return false, fmt.Errorf("failed to create notification: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// =============================================================================
// Journal
// =============================================================================

// RecordEvent appends an event to the journal. Recording a position again is a no-op
// when the payload matches and ErrJournalConflict when it does not.
func (s *pgStore) RecordEvent(ctx context.Context, event domain.Event) (bool, error) {
	payload, hash, err := event.Digest()
	if err != nil {
		return false, err
	}

	row := schema.MarketEvent{
		Chain:       event.Chain,
		BlockNumber: event.Position.Block,
		LogIndex:    event.Position.LogIndex,
		BlockHash:   event.BlockHash,
		TxHash:      event.TxHash,
		Kind:        event.Kind,
		Payload:     payload,
		PayloadHash: hash,
		Timestamp:   event.Timestamp,
	}
	if event.CollectionAddress != "" {
		row.CollectionAddress = &event.CollectionAddress
	}
	if event.TokenID != "" {
		row.TokenID = &event.TokenID
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "chain"}, {Name: "block_number"}, {Name: "log_index"}},
			DoNothing: true,
		}).
		Create(&row)
	if result.Error != nil {
		return false, fmt.Errorf("failed to record event: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	var existing schema.MarketEvent
	err = s.db.WithContext(ctx).
		Select("payload_hash").
		Where("chain = ? AND block_number = ? AND log_index = ?", event.Chain, event.Position.Block, event.Position.LogIndex).
		First(&existing).Error
	if err != nil {
		return false, fmt.Errorf("failed to read journaled event: %w", err)
	}
	if !domain.SameDigest(existing.PayloadHash, hash) {
		return false, fmt.Errorf("%w: %s", domain.ErrJournalConflict, event.Position)
	}

	return false, nil
}

// JournaledBlockBefore reads the primary so a reorg check sees the latest journal
func (s *pgStore) JournaledBlockBefore(ctx context.Context, chain domain.Chain, before uint64) (*domain.BlockRef, error) {
	row, err := first[schema.MarketEvent](s.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Select("block_number", "block_hash").
		Where("chain = ? AND block_number < ?", chain, before).
		Order("block_number DESC"), "journaled block")
	if err != nil || row == nil {
		return nil, err
	}
	return &domain.BlockRef{Number: row.BlockNumber, Hash: row.BlockHash}, nil
}

// ListEvents pages through the journal in position order
func (s *pgStore) ListEvents(ctx context.Context, chain domain.Chain, after domain.Position, throughBlock uint64, limit int) ([]domain.Event, error) {
	var rows []schema.MarketEvent
	err := s.db.WithContext(ctx).
		Where("chain = ?", chain).
		Where("(block_number, log_index) > (?, ?)", after.Block, after.LogIndex).
		Where("block_number <= ?", throughBlock).
		Order("block_number ASC, log_index ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list journal events: %w", err)
	}

	events := make([]domain.Event, 0, len(rows))
	for _, row := range rows {
		var event domain.Event
		if err := json.Unmarshal(row.Payload, &event); err != nil {
			return nil, fmt.Errorf("failed to unmarshal journal event %d:%d: %w", row.BlockNumber, row.LogIndex, err)
		}
		events = append(events, event)
	}

	return events, nil
}

// ResetProjections drops orphaned journal rows and notifications and empties the other read models
func (s *pgStore) ResetProjections(ctx context.Context, chain domain.Chain, throughBlock uint64) error {
	db := s.db.WithContext(ctx)

	if err := db.Where("chain = ? AND block_number > ?", chain, throughBlock).
		Delete(&schema.MarketEvent{}).Error; err != nil {
		return fmt.Errorf("failed to delete orphaned journal events: %w", err)
	}

	// Notifications at or below the block are kept so their visible flag survives the rebuild
	if err := db.Where("block_number > ?", throughBlock).
		Delete(&schema.Notification{}).Error; err != nil {
		return fmt.Errorf("failed to delete orphaned notifications: %w", err)
	}

	for _, table := range projectionTables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return fmt.Errorf("failed to reset %s: %w", table, err)
		}
	}

	return nil
}

// =============================================================================
// Queries
// =============================================================================

func (s *pgStore) ListNFTs(ctx context.Context, filter NFTFilter) ([]schema.NFT, error) {
	query := s.db.WithContext(ctx).Model(&schema.NFT{})
	if filter.Owner != "" {
		query = query.Where("owner = ?", filter.Owner)
	}
	if filter.Creator != "" {
		query = query.Where("creator = ?", filter.Creator)
	}
	if filter.Collection != "" {
		query = query.Where("collection_address = ?", filter.Collection)
	}

	var nfts []schema.NFT
	err := query.
		Order("mint_block DESC, mint_log_index DESC").
		Limit(normalizeLimit(filter.Limit)).
		Offset(filter.Offset).
		Find(&nfts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list nfts: %w", err)
	}
	return nfts, nil
}

func (s *pgStore) ListCollections(ctx context.Context, limit, offset int) ([]schema.Collection, error) {
	var collections []schema.Collection
	err := s.db.WithContext(ctx).
		Order("contract_address ASC").
		Limit(normalizeLimit(limit)).
		Offset(offset).
		Find(&collections).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return collections, nil
}

// ListCollectionAddresses returns the address of every known collection
func (s *pgStore) ListCollectionAddresses(ctx context.Context) ([]string, error) {
	var addresses []string
	// Read from primary so a collection created in the last batch is scanned in the next one
	err := s.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&schema.Collection{}).
		Order("contract_address ASC").
		Pluck("contract_address", &addresses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list collection addresses: %w", err)
	}
	return addresses, nil
}

func (s *pgStore) ListListings(ctx context.Context, filter ListingFilter) ([]schema.Listing, error) {
	query := s.db.WithContext(ctx).Model(&schema.Listing{})
	if filter.Collection != "" {
		query = query.Where("collection_address = ?", filter.Collection)
	}
	if filter.TokenID != "" {
		query = query.Where("token_id = ?", filter.TokenID)
	}
	if filter.Seller != "" {
		query = query.Where("seller = ?", filter.Seller)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var listings []schema.Listing
	err := query.
		Order("listed_block DESC, listed_log_index DESC").
		Limit(normalizeLimit(filter.Limit)).
		Offset(filter.Offset).
		Find(&listings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	return listings, nil
}

func (s *pgStore) ListOffers(ctx context.Context, filter OfferFilter) ([]schema.Offer, error) {
	query := s.db.WithContext(ctx).Model(&schema.Offer{})
	if filter.Collection != "" {
		query = query.Where("collection_address = ?", filter.Collection)
	}
	if filter.TokenID != "" {
		query = query.Where("token_id = ?", filter.TokenID)
	}
	if filter.Creator != "" {
		query = query.Where("creator = ?", filter.Creator)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DeadlineAfter != nil {
		query = query.Where("deadline > ?", *filter.DeadlineAfter)
	}
	if filter.DeadlineNotAfter != nil {
		query = query.Where("deadline <= ?", *filter.DeadlineNotAfter)
	}

	var offers []schema.Offer
	err := query.
		Order("created_block DESC, created_log_index DESC").
		Limit(normalizeLimit(filter.Limit)).
		Offset(filter.Offset).
		Find(&offers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	return offers, nil
}

// GetLatestAuction returns the most recent auction of an NFT with its highest bid
func (s *pgStore) GetLatestAuction(ctx context.Context, collection, tokenID string) (*schema.Auction, *schema.HighestBid, error) {
	auction, err := first[schema.Auction](s.db.WithContext(ctx).
		Where("collection_address = ? AND token_id = ?", collection, tokenID).
		Order("created_block DESC, created_log_index DESC"), "auction")
	if err != nil || auction == nil {
		return nil, nil, err
	}

	bid, err := s.GetHighestBid(ctx, auction.ID)
	if err != nil {
		return nil, nil, err
	}

	return auction, bid, nil
}

func (s *pgStore) ListNotifications(ctx context.Context, recipient string, includeHidden bool, limit, offset int) ([]schema.Notification, error) {
	query := s.db.WithContext(ctx).Where("recipient = ?", recipient)
	if !includeHidden {
		query = query.Where("visible = ?", true)
	}

	var notifications []schema.Notification
	err := query.
		Order("timestamp DESC, id ASC").
		Limit(normalizeLimit(limit)).
		Offset(offset).
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// HideNotification marks a notification as not visible
func (s *pgStore) HideNotification(ctx context.Context, id string) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Notification{}).
		Where("id = ?", id).
		Update("visible", false)
	if result.Error != nil {
		return false, fmt.Errorf("failed to hide notification: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (s *pgStore) ListTokenEvents(ctx context.Context, collection, tokenID string, limit, offset int) ([]schema.MarketEvent, error) {
	var events []schema.MarketEvent
	err := s.db.WithContext(ctx).
		Where("collection_address = ? AND token_id = ?", collection, tokenID).
		Order("block_number DESC, log_index DESC").
		Limit(normalizeLimit(limit)).
		Offset(offset).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list token events: %w", err)
	}
	return events, nil
}

func (s *pgStore) ListSuggestions(ctx context.Context, filter SuggestionFilter) ([]schema.Suggestion, error) {
	query := s.db.WithContext(ctx).Model(&schema.Suggestion{})
	if filter.Proposer != "" {
		query = query.Where("proposer = ?", filter.Proposer)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var suggestions []schema.Suggestion
	err := query.
		Order("created_block DESC, created_log_index DESC").
		Limit(normalizeLimit(filter.Limit)).
		Offset(filter.Offset).
		Find(&suggestions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}
	return suggestions, nil
}
