package schema

import (
	"fmt"

	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
)

// PositionID derives a record identifier from the position of the event that created it
func PositionID(p domain.Position) string {
	return fmt.Sprintf("%d-%d", p.Block, p.LogIndex)
}
