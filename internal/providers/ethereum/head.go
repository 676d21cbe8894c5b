package ethereum

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace-indexer/internal/logger"
	"github.com/feral-file/ff-marketplace-indexer/internal/messaging"
)

// TriggerReasonNewHead is the reason reported for a new chain head
const TriggerReasonNewHead = "new_head"

type headWatcher struct {
	client EthereumClient
}

// NewHeadWatcher creates a trigger that fires on every new chain head.
// It needs a websocket connection.
func NewHeadWatcher(client EthereumClient) messaging.Trigger {
	return &headWatcher{client: client}
}

// Listen subscribes to new heads and calls handler for each of them
func (w *headWatcher) Listen(ctx context.Context, handler messaging.TriggerHandler) error {
	heads := make(chan *types.Header)
	sub, err := w.client.SubscribeNewHead(ctx, heads)
	if err != nil {
		return fmt.Errorf("failed to subscribe to new heads: %w", err)
	}
	defer func() {
		logger.InfoCtx(ctx, "Unsubscribing from new heads")
		sub.Unsubscribe()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-sub.Err():
			return fmt.Errorf("subscription error: %w", err)
		case header := <-heads:
			if header == nil {
				continue
			}
			logger.DebugCtx(ctx, "New chain head", zap.Uint64("block_number", header.Number.Uint64()))
			handler(TriggerReasonNewHead)
		}
	}
}

// Close is a no-op, the underlying client is owned by the caller
func (w *headWatcher) Close() {}
