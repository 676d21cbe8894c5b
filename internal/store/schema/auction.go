package schema

import (
	"time"

	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
)

// AuctionStatus represents the state of an auction
type AuctionStatus string

const (
	AuctionStatusActive    AuctionStatus = "active"
	AuctionStatusResulted  AuctionStatus = "resulted"
	AuctionStatusCancelled AuctionStatus = "cancelled"
)

// Auction represents the auctions table. Terms are immutable once created.
type Auction struct {
	ID                string          `gorm:"column:id;primaryKey;type:text"`
	CollectionAddress string          `gorm:"column:collection_address;not null;type:text;index:idx_auctions_token,priority:1"`
	TokenID           string          `gorm:"column:token_id;not null;type:text;index:idx_auctions_token,priority:2"`
	Seller            string          `gorm:"column:seller;not null;type:text"`
	PayToken          string          `gorm:"column:pay_token;not null;default:'';type:text"`
	ReservePrice      string          `gorm:"column:reserve_price;not null;default:'0';type:numeric(78,0)"`
	BuyNowPrice       string          `gorm:"column:buy_now_price;not null;default:'0';type:numeric(78,0)"`
	StartTime         time.Time       `gorm:"column:start_time;not null;type:timestamptz"`
	EndTime           time.Time       `gorm:"column:end_time;not null;type:timestamptz"`
	Status            AuctionStatus   `gorm:"column:status;not null;type:text"`
	Winner            string          `gorm:"column:winner;not null;default:'';type:text"`
	WinningBid        string          `gorm:"column:winning_bid;not null;default:'0';type:numeric(78,0)"`
	CreatedPos        domain.Position `gorm:"embedded;embeddedPrefix:created_"`
	ClosedPos         domain.Position `gorm:"embedded;embeddedPrefix:closed_"`
	UpdatedAt         time.Time       `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Auction model
func (Auction) TableName() string {
	return "auctions"
}

// HighestBid represents the highest_bids table - the current winning bid of an auction
type HighestBid struct {
	AuctionID string          `gorm:"column:auction_id;primaryKey;type:text"`
	Bidder    string          `gorm:"column:bidder;not null;type:text"`
	Bid       string          `gorm:"column:bid;not null;type:numeric(78,0)"`
	BidAt     time.Time       `gorm:"column:bid_at;not null;type:timestamptz"`
	BidPos    domain.Position `gorm:"embedded;embeddedPrefix:bid_"`
	UpdatedAt time.Time       `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the HighestBid model
func (HighestBid) TableName() string {
	return "highest_bids"
}
