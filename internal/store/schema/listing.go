package schema

import (
	"time"

	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
)

// ListingStatus represents the state of a listing
type ListingStatus string

const (
	ListingStatusActive    ListingStatus = "active"
	ListingStatusSold      ListingStatus = "sold"
	ListingStatusCancelled ListingStatus = "cancelled"
)

// Listing represents the listings table. At most one active listing exists per NFT.
type Listing struct {
	// ID is derived from the listing event position
	ID                string        `gorm:"column:id;primaryKey;type:text"`
	CollectionAddress string        `gorm:"column:collection_address;not null;type:text;index:idx_listings_token,priority:1"`
	TokenID           string        `gorm:"column:token_id;not null;type:text;index:idx_listings_token,priority:2"`
	Seller            string        `gorm:"column:seller;not null;type:text;index:idx_listings_seller"`
	PayToken          string        `gorm:"column:pay_token;not null;default:'';type:text"`
	Price             string        `gorm:"column:price;not null;type:numeric(78,0)"`
	StartTime         int64         `gorm:"column:start_time;not null;default:0"`
	Status            ListingStatus `gorm:"column:status;not null;type:text;index:idx_listings_status"`
	// Buyer is set when the listing is sold
	Buyer    string    `gorm:"column:buyer;not null;default:'';type:text"`
	ListedAt time.Time `gorm:"column:listed_at;not null;type:timestamptz"`
	// ListedPos is the position of the listing event
	ListedPos domain.Position `gorm:"embedded;embeddedPrefix:listed_"`
	// PricePos is the position of the last price update
	PricePos domain.Position `gorm:"embedded;embeddedPrefix:price_"`
	// ClosedPos is the position of the event that closed the listing, zero while active
	ClosedPos domain.Position `gorm:"embedded;embeddedPrefix:closed_"`
	UpdatedAt time.Time       `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Listing model
func (Listing) TableName() string {
	return "listings"
}
