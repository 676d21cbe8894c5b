package schema

import (
	"time"

	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
)

// OfferStatus represents the state of an offer
type OfferStatus string

const (
	OfferStatusOpen       OfferStatus = "open"
	OfferStatusAccepted   OfferStatus = "accepted"
	OfferStatusCancelled  OfferStatus = "cancelled"
	OfferStatusSuperseded OfferStatus = "superseded"
)

// Offer represents the offers table. Expiry is not stored, it is derived from Deadline at read time.
type Offer struct {
	ID                string      `gorm:"column:id;primaryKey;type:text"`
	Creator           string      `gorm:"column:creator;not null;type:text;index:idx_offers_creator"`
	CollectionAddress string      `gorm:"column:collection_address;not null;type:text;index:idx_offers_token,priority:1"`
	TokenID           string      `gorm:"column:token_id;not null;type:text;index:idx_offers_token,priority:2"`
	PayToken          string      `gorm:"column:pay_token;not null;default:'';type:text"`
	Price             string      `gorm:"column:price;not null;type:numeric(78,0)"`
	Deadline          time.Time   `gorm:"column:deadline;not null;type:timestamptz"`
	Status            OfferStatus `gorm:"column:status;not null;type:text"`
	// AcceptedBy is the owner who accepted the offer
	AcceptedBy string          `gorm:"column:accepted_by;not null;default:'';type:text"`
	CreatedAt  time.Time       `gorm:"column:created_at;not null;type:timestamptz"`
	CreatedPos domain.Position `gorm:"embedded;embeddedPrefix:created_"`
	ClosedPos  domain.Position `gorm:"embedded;embeddedPrefix:closed_"`
	UpdatedAt  time.Time       `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Offer model
func (Offer) TableName() string {
	return "offers"
}

// IsExpired reports whether an open offer is past its deadline
func (o *Offer) IsExpired(now time.Time) bool {
	return o.Status == OfferStatusOpen && !now.Before(o.Deadline)
}
