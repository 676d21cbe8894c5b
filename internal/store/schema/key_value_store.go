package schema

import "time"

// KeyValueStore stores arbitrary key-value pairs for indexer state.
// The sync cursor of each chain lives here as a JSON value.
type KeyValueStore struct {
	Key       string    `gorm:"primaryKey;type:text"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (KeyValueStore) TableName() string {
	return "key_value_store"
}
