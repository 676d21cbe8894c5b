package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrAdapterUnavailable is returned when the event source cannot be reached or times out
	ErrAdapterUnavailable = errors.New("event source unavailable")

	// ErrReorgDetected is returned when the chain no longer contains the cursor's block
	ErrReorgDetected = errors.New("chain reorganization detected")

	// ErrMalformedEvent is returned when an event of a known kind carries an invalid payload
	ErrMalformedEvent = errors.New("malformed event")

	// ErrUnknownEventKind is returned when no handler exists for an event kind
	ErrUnknownEventKind = errors.New("unknown event kind")

	// ErrCursorWriteFailed is returned when the cursor cannot be persisted
	ErrCursorWriteFailed = errors.New("cursor write failed")

	// ErrCycleInProgress is returned when a reconciliation cycle is already running
	ErrCycleInProgress = errors.New("reconciliation cycle already in progress")

	// ErrNFTNotFound is returned when a queried NFT is not indexed
	ErrNFTNotFound = errors.New("nft not found")

	// ErrInvalidResyncPosition is returned when a resync targets a position that cannot be rebuilt
	ErrInvalidResyncPosition = errors.New("invalid resync position")

	// ErrJournalConflict is returned when a journaled position is recorded again with a different payload
	ErrJournalConflict = errors.New("conflicting event at journaled position")
)

// ReorgError reports that the stored cursor block is no longer canonical
type ReorgError struct {
	// Block is the block number whose hash no longer matches
	Block uint64
	// Depth is the number of blocks known to be affected, 0 when unknown
	Depth         uint64
	StoredHash    string
	CanonicalHash string
}

func (e *ReorgError) Error() string {
	return fmt.Sprintf("%s at block %d (depth %d): stored %s, canonical %s",
		ErrReorgDetected, e.Block, e.Depth, e.StoredHash, e.CanonicalHash)
}

func (e *ReorgError) Unwrap() error {
	return ErrReorgDetected
}

// ProjectionError reports a structurally invalid event
type ProjectionError struct {
	Kind     EventKind
	Position Position
	Field    string
	Reason   string
}

func (e *ProjectionError) Error() string {
	return fmt.Sprintf("%s: %s at %s: %s %s", ErrMalformedEvent, e.Kind, e.Position, e.Field, e.Reason)
}

func (e *ProjectionError) Unwrap() error {
	return ErrMalformedEvent
}
