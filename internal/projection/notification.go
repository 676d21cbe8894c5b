package projection

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
	"github.com/feral-file/ff-marketplace-indexer/internal/store"
	"github.com/feral-file/ff-marketplace-indexer/internal/store/schema"
)

var notificationNamespace = uuid.MustParse("5b0d6a8e-3f0c-4b6e-9a57-2d3c1f7e8a41")

// NotificationID derives the notification id from the originating event and recipient
func NotificationID(ev domain.Event, recipient, notificationType string) string {
	name := fmt.Sprintf("%s|%d|%d|%s|%s", ev.Chain, ev.Position.Block, ev.Position.LogIndex, recipient, notificationType)
	return uuid.NewSHA1(notificationNamespace, []byte(name)).String()
}

// notify inserts a notification once. Re-applying the event finds the existing
// row and leaves its visibility untouched.
func notify(ctx context.Context, tx store.ProjectionStore, ev domain.Event, recipient, notificationType string, params map[string]string) (Effects, error) {
	if domain.IsZeroAddress(recipient) {
		return Effects{}, nil
	}

	raw, err := json.Marshal(params)
	if err != nil {
		return Effects{}, fmt.Errorf("failed to marshal notification params: %w", err)
	}

	notification := schema.Notification{
		ID:                NotificationID(ev, recipient, notificationType),
		Recipient:         recipient,
		Type:              notificationType,
		CollectionAddress: ev.CollectionAddress,
		TokenID:           ev.TokenID,
		Params:            datatypes.JSON(raw),
		Visible:           true,
		Timestamp:         ev.Timestamp,
		BlockNumber:       ev.Position.Block,
	}

	created, err := tx.CreateNotification(ctx, &notification)
	if err != nil {
		return Effects{}, err
	}
	if !created {
		return Effects{}, nil
	}

	return Effects{Notifications: []schema.Notification{notification}}, nil
}
