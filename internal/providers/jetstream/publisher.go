package jetstream

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace-indexer/internal/adapter"
	"github.com/feral-file/ff-marketplace-indexer/internal/logger"
	"github.com/feral-file/ff-marketplace-indexer/internal/messaging"
	"github.com/feral-file/ff-marketplace-indexer/internal/store/schema"
)

// SubjectPrefix is the root of every subject the indexer uses
const SubjectPrefix = "marketplace"

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	ConsumerName   string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	AckWait        time.Duration
}

func connectOptions(cfg Config) []nats.Option {
	return []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}
}

type publisher struct {
	nc         adapter.NatsConn
	js         adapter.JetStream
	streamName string
	json       adapter.JSON
}

// NewPublisher connects to NATS and makes sure the marketplace stream exists
func NewPublisher(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	nc, js, err := natsJS.Connect(cfg.URL, connectOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     cfg.StreamName,
		Subjects: []string{SubjectPrefix + ".>"},
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create stream %s: %w", cfg.StreamName, err)
	}

	return &publisher{
		nc:         nc,
		js:         js,
		streamName: cfg.StreamName,
		json:       jsonAdapter,
	}, nil
}

// PublishNotification publishes a notification. The notification id is the
// JetStream message id so a republished notification is deduplicated.
func (p *publisher) PublishNotification(ctx context.Context, notification *schema.Notification) error {
	logger.DebugCtx(ctx, "Publishing notification",
		zap.String("id", notification.ID),
		zap.String("type", notification.Type))

	data, err := p.json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	_, err = p.js.Publish(ctx, NotificationSubject(notification.Type), data, jetstream.WithMsgID(notification.ID))
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}

// NotificationSubject returns the subject of a notification type,
// e.g. marketplace.notifications.item_sold
func NotificationSubject(notificationType string) string {
	return fmt.Sprintf("%s.notifications.%s", SubjectPrefix, strings.ToLower(notificationType))
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
