package schema

import (
	"time"

	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
)

// NFTStatus represents the lifecycle state of an NFT
type NFTStatus string

const (
	NFTStatusActive NFTStatus = "active"
	NFTStatusBurned NFTStatus = "burned"
)

// NFT represents the nfts table
type NFT struct {
	// CollectionAddress is the ERC721 contract address
	CollectionAddress string `gorm:"column:collection_address;primaryKey;type:text"`
	// TokenID is the token id within the collection (string to support uint256)
	TokenID string `gorm:"column:token_id;primaryKey;type:text"`
	// Owner is the current owner address
	Owner string `gorm:"column:owner;not null;type:text;index:idx_nfts_owner"`
	// Creator is the minter, empty until the mint event is applied
	Creator string `gorm:"column:creator;not null;default:'';type:text;index:idx_nfts_creator"`
	// Royalty is expressed in basis points
	Royalty string `gorm:"column:royalty;not null;default:'0';type:numeric(78,0)"`
	// MetadataRef is the token URI
	MetadataRef string    `gorm:"column:metadata_ref;not null;default:'';type:text"`
	Status      NFTStatus `gorm:"column:status;not null;default:'active';type:text"`
	// MintedAt is the block timestamp of the mint, nil until the mint event is applied
	MintedAt *time.Time `gorm:"column:minted_at;type:timestamptz"`
	// MintPos is the mint event position, zero until the mint event is applied
	MintPos domain.Position `gorm:"embedded;embeddedPrefix:mint_"`
	// OwnerPos is the position of the event that last changed owner or status
	OwnerPos domain.Position `gorm:"embedded;embeddedPrefix:owner_"`
	// UpdatedAt is the timestamp when this record was last written
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the NFT model
func (NFT) TableName() string {
	return "nfts"
}
