package schema

import (
	"time"

	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
)

// Collection represents the collections table
type Collection struct {
	ContractAddress string `gorm:"column:contract_address;primaryKey;type:text"`
	Name            string `gorm:"column:name;not null;default:'';type:text"`
	Creator         string `gorm:"column:creator;not null;default:'';type:text"`
	// NumberOfItems counts distinct minted tokens
	NumberOfItems int64 `gorm:"column:number_of_items;not null;default:0"`
	// CreatedPos is the factory event position, zero for collections first seen through a mint
	CreatedPos domain.Position `gorm:"embedded;embeddedPrefix:created_"`
	UpdatedAt  time.Time       `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Collection model
func (Collection) TableName() string {
	return "collections"
}
