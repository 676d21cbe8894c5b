package jetstream

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace-indexer/internal/adapter"
	"github.com/feral-file/ff-marketplace-indexer/internal/logger"
	"github.com/feral-file/ff-marketplace-indexer/internal/messaging"
)

// TriggerSubject receives push requests for a reconciliation cycle
const TriggerSubject = SubjectPrefix + ".sync.trigger"

type trigger struct {
	nc     adapter.NatsConn
	js     adapter.JetStream
	config Config
}

// NewTrigger creates a trigger fed by messages published on TriggerSubject
func NewTrigger(cfg Config, natsJS adapter.NatsJetStream) (messaging.Trigger, error) {
	nc, js, err := natsJS.Connect(cfg.URL, connectOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &trigger{
		nc:     nc,
		js:     js,
		config: cfg,
	}, nil
}

// Listen consumes trigger messages until ctx is cancelled. Every message is
// acknowledged once handed to handler; the payload is not inspected.
func (t *trigger) Listen(ctx context.Context, handler messaging.TriggerHandler) error {
	logger.InfoCtx(ctx, "Starting sync trigger consumer",
		zap.String("stream", t.config.StreamName),
		zap.String("consumer", t.config.ConsumerName))

	consumer, err := t.js.CreateOrUpdateConsumer(ctx, t.config.StreamName, jetstream.ConsumerConfig{
		Durable:       t.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       t.config.AckWait,
		DeliverPolicy: jetstream.DeliverNewPolicy,
		FilterSubject: TriggerSubject,
	})
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	sub, err := consumer.Consume(func(msg adapter.Message) {
		handler("nats:" + msg.Subject())
		if err := msg.Ack(); err != nil {
			logger.WarnCtx(ctx, "Failed to ack trigger message", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	select {
	case <-ctx.Done():
		logger.InfoCtx(ctx, "Shutting down sync trigger consumer")
		return ctx.Err()
	case <-sub.Closed():
		return fmt.Errorf("trigger consumer closed")
	}
}

// Close closes the NATS connection
func (t *trigger) Close() {
	if t.nc == nil {
		return
	}

	t.nc.Close()
}
