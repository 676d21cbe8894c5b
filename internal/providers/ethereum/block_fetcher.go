package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/feral-file/ff-marketplace-indexer/internal/adapter"
	"github.com/feral-file/ff-marketplace-indexer/internal/block"
)

// ethereumBlockFetcher implements block.BlockFetcher for EVM chains
type ethereumBlockFetcher struct {
	client adapter.EthClient
	clock  adapter.Clock
}

func NewEthereumBlockFetcher(client adapter.EthClient, clock adapter.Clock) block.BlockFetcher {
	return &ethereumBlockFetcher{client: client, clock: clock}
}

// FetchLatestBlock fetches the latest block number
func (f *ethereumBlockFetcher) FetchLatestBlock(ctx context.Context) (uint64, error) {
	header, err := f.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return header.Number.Uint64(), nil
}

// FetchHeader fetches the hash and timestamp of a given block number
func (f *ethereumBlockFetcher) FetchHeader(ctx context.Context, number uint64) (block.Header, error) {
	header, err := f.client.HeaderByNumber(ctx, new(big.Int).SetUint64(number))
	if err != nil {
		return block.Header{}, fmt.Errorf("failed to get header %d: %w", number, err)
	}
	return block.Header{
		Number:    number,
		Hash:      header.Hash().Hex(),
		Timestamp: f.clock.Unix(int64(header.Time), 0), //nolint:gosec,G115 // header.Time is a uint64 unix timestamp
	}, nil
}
