package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
)

// MarketEvent represents the market_events table - the journal of every applied chain event.
// The journal is the source for rebuilding the read models after a reorg or a resync.
type MarketEvent struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Chain identifies the blockchain network where this event occurred
	Chain domain.Chain `gorm:"column:chain;not null;type:text;uniqueIndex:idx_market_events_position,priority:1"`
	// BlockNumber and LogIndex form the event position
	BlockNumber uint64 `gorm:"column:block_number;not null;type:bigint;uniqueIndex:idx_market_events_position,priority:2"`
	LogIndex    uint32 `gorm:"column:log_index;not null;type:bigint;uniqueIndex:idx_market_events_position,priority:3"`
	// BlockHash is the hash of the block containing this event
	BlockHash string `gorm:"column:block_hash;not null;type:text"`
	// TxHash is the transaction hash that emitted this event
	TxHash string `gorm:"column:tx_hash;not null;type:text"`
	// Kind is the marketplace event kind
	Kind domain.EventKind `gorm:"column:kind;not null;type:text"`
	// CollectionAddress and TokenID identify the NFT, empty for account events
	CollectionAddress *string `gorm:"column:collection_address;type:text;index:idx_market_events_token,priority:1"`
	TokenID           *string `gorm:"column:token_id;type:text;index:idx_market_events_token,priority:2"`
	// Payload is the complete decoded event
	Payload datatypes.JSON `gorm:"column:payload;not null;type:jsonb"`
	// PayloadHash is the sha256 of the canonical payload
	PayloadHash []byte `gorm:"column:payload_hash;not null;type:bytea"`
	// Timestamp is the block timestamp
	Timestamp time.Time `gorm:"column:timestamp;not null;type:timestamptz"`
	// CreatedAt is the timestamp when this record was indexed
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the MarketEvent model
func (MarketEvent) TableName() string {
	return "market_events"
}
