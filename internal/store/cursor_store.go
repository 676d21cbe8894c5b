package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
	"github.com/feral-file/ff-marketplace-indexer/internal/store/schema"
)

// CursorStore persists the sync cursor of each chain
//
//go:generate mockgen -source=cursor_store.go -destination=../mocks/cursor_store.go -package=mocks -mock_names=CursorStore=MockCursorStore
type CursorStore interface {
	// GetCursor retrieves the cursor for a chain, nil if none was stored yet
	GetCursor(ctx context.Context, chain domain.Chain) (*domain.Cursor, error)
	// SetCursor stores the cursor for a chain in a single row write
	SetCursor(ctx context.Context, chain domain.Chain, cursor domain.Cursor) error
}

func cursorKey(chain domain.Chain) string {
	return fmt.Sprintf("sync_cursor:%s", chain)
}

// getCursor reads the cursor row. The read always goes to the primary so a
// lagging replica never rewinds the scheduler.
func getCursor(ctx context.Context, db *gorm.DB, chain domain.Chain) (*domain.Cursor, error) {
	var kv schema.KeyValueStore
	err := db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("key = ?", cursorKey(chain)).
		First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cursor: %w", err)
	}

	var cursor domain.Cursor
	if err := json.Unmarshal([]byte(kv.Value), &cursor); err != nil {
		return nil, fmt.Errorf("failed to parse cursor: %w", err)
	}

	return &cursor, nil
}

// setCursor upserts the cursor row. Block, log index and hash are one JSON value
// so readers never observe a partially written cursor.
func setCursor(ctx context.Context, db *gorm.DB, chain domain.Chain, cursor domain.Cursor) error {
	value, err := json.Marshal(cursor)
	if err != nil {
		return fmt.Errorf("failed to marshal cursor: %w", err)
	}

	kv := schema.KeyValueStore{
		Key:   cursorKey(chain),
		Value: string(value),
	}

	if err := db.WithContext(ctx).Save(&kv).Error; err != nil {
		return fmt.Errorf("failed to set cursor: %w", err)
	}

	return nil
}

// GetCursor retrieves the cursor for a chain
func (s *pgStore) GetCursor(ctx context.Context, chain domain.Chain) (*domain.Cursor, error) {
	// Replica can lag behind primary; the cursor is always read from primary.
	return getCursor(ctx, s.db.Clauses(dbresolver.Write), chain)
}

// SetCursor stores the cursor for a chain
func (s *pgStore) SetCursor(ctx context.Context, chain domain.Chain, cursor domain.Cursor) error {
	return setCursor(ctx, s.db, chain, cursor)
}
