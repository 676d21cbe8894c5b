package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Notification represents the notifications table. Rows are append-only,
// only Visible may change after insert.
type Notification struct {
	// ID is a name-based UUID derived from the originating event and recipient
	ID                string         `gorm:"column:id;primaryKey;type:text"`
	Recipient         string         `gorm:"column:recipient;not null;type:text;index:idx_notifications_recipient"`
	Type              string         `gorm:"column:type;not null;type:text"`
	CollectionAddress string         `gorm:"column:collection_address;not null;default:'';type:text"`
	TokenID           string         `gorm:"column:token_id;not null;default:'';type:text"`
	Params            datatypes.JSON `gorm:"column:params;type:jsonb"`
	Visible           bool           `gorm:"column:visible;not null;default:true"`
	Timestamp         time.Time      `gorm:"column:timestamp;not null;type:timestamptz"`
	// BlockNumber of the originating event, used to drop notifications of orphaned blocks
	BlockNumber uint64    `gorm:"column:block_number;not null;type:bigint;index:idx_notifications_block"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Notification model
func (Notification) TableName() string {
	return "notifications"
}
