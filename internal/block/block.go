package block

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace-indexer/internal/adapter"
	"github.com/feral-file/ff-marketplace-indexer/internal/logger"
)

// Header is the subset of a block header the indexer needs
type Header struct {
	Number    uint64
	Hash      string
	Timestamp time.Time
}

// latestInfo represents the cached chain head
type latestInfo struct {
	Number   uint64
	CachedAt time.Time
}

// BlockProvider provides cached access to the chain head and to block headers.
// The chain head is cached for a TTL; headers are cached until invalidated
// because the indexer only reads headers of confirmed blocks.
//
//go:generate mockgen -source=block.go -destination=../mocks/block_provider.go -package=mocks -mock_names=BlockProvider=MockBlockProvider
type BlockProvider interface {
	// GetLatestBlock returns the latest block number, potentially from cache
	GetLatestBlock(ctx context.Context) (uint64, error)

	// GetHeader returns the header for a block number, potentially from cache
	GetHeader(ctx context.Context, number uint64) (Header, error)

	// GetCanonicalHeader always asks the chain and refreshes the cached header
	GetCanonicalHeader(ctx context.Context, number uint64) (Header, error)

	// Invalidate drops cached headers at or above fromBlock
	Invalidate(fromBlock uint64)
}

// BlockFetcher is the interface for fetching block information from the blockchain
//
//go:generate mockgen -source=block.go -destination=../mocks/block_provider.go -package=mocks -mock_names=BlockFetcher=MockBlockFetcher
type BlockFetcher interface {
	// FetchLatestBlock fetches the latest block number from the blockchain
	FetchLatestBlock(ctx context.Context) (uint64, error)

	// FetchHeader fetches the header of a given block number
	FetchHeader(ctx context.Context, number uint64) (Header, error)
}

// Config holds configuration for the BlockProvider
type Config struct {
	// TTL is how long to cache the latest block number
	TTL time.Duration

	// StaleWindow is how long to use a stale head if fetching fails
	StaleWindow time.Duration

	// MaxCachedHeaders bounds the header cache, 0 means 4096
	MaxCachedHeaders int
}

const defaultMaxCachedHeaders = 4096

type blockProvider struct {
	fetcher BlockFetcher
	config  Config
	clock   adapter.Clock

	mu      sync.RWMutex
	latest  *latestInfo
	headers map[uint64]Header
}

// NewBlockProvider creates a new BlockProvider with caching
func NewBlockProvider(fetcher BlockFetcher, config Config, clock adapter.Clock) BlockProvider {
	if config.MaxCachedHeaders <= 0 {
		config.MaxCachedHeaders = defaultMaxCachedHeaders
	}
	return &blockProvider{
		fetcher: fetcher,
		config:  config,
		clock:   clock,
		headers: make(map[uint64]Header),
	}
}

// GetLatestBlock returns the latest block number, using cache if valid
func (p *blockProvider) GetLatestBlock(ctx context.Context) (uint64, error) {
	p.mu.RLock()
	cached := p.latest
	p.mu.RUnlock()

	now := p.clock.Now()

	if cached != nil && now.Sub(cached.CachedAt) < p.config.TTL {
		logger.DebugCtx(ctx, "Using cached block number", zap.Uint64("block_number", cached.Number))
		return cached.Number, nil
	}

	logger.DebugCtx(ctx, "Fetching latest block number from blockchain provider")
	blockNumber, err := p.fetcher.FetchLatestBlock(ctx)
	if err != nil {
		if cached != nil && now.Sub(cached.CachedAt) < p.config.StaleWindow {
			logger.DebugCtx(ctx, "Using stale block number", zap.Uint64("block_number", cached.Number))
			return cached.Number, nil
		}
		return 0, fmt.Errorf("failed to fetch latest block and no valid cache available: %w", err)
	}

	p.mu.Lock()
	p.latest = &latestInfo{Number: blockNumber, CachedAt: now}
	p.mu.Unlock()

	return blockNumber, nil
}

// GetHeader returns the header for a block number, using cache when present
func (p *blockProvider) GetHeader(ctx context.Context, number uint64) (Header, error) {
	p.mu.RLock()
	header, ok := p.headers[number]
	p.mu.RUnlock()

	if ok {
		return header, nil
	}

	return p.GetCanonicalHeader(ctx, number)
}

// GetCanonicalHeader fetches the header from the chain and replaces the cached one
func (p *blockProvider) GetCanonicalHeader(ctx context.Context, number uint64) (Header, error) {
	header, err := p.fetcher.FetchHeader(ctx, number)
	if err != nil {
		return Header{}, fmt.Errorf("failed to fetch header for block %d: %w", number, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if cached, ok := p.headers[number]; ok && cached.Hash != header.Hash {
		logger.WarnCtx(ctx, "Cached header replaced by canonical header",
			zap.Uint64("block_number", number),
			zap.String("cached_hash", cached.Hash),
			zap.String("canonical_hash", header.Hash))
	}
	p.headers[number] = header
	p.prune(number)

	return header, nil
}

// Invalidate drops cached headers at or above fromBlock
func (p *blockProvider) Invalidate(fromBlock uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for number := range p.headers {
		if number >= fromBlock {
			delete(p.headers, number)
		}
	}
}

// prune evicts headers far below the most recently stored one. Caller holds mu.
func (p *blockProvider) prune(latest uint64) {
	if len(p.headers) <= p.config.MaxCachedHeaders {
		return
	}

	var floor uint64
	if latest > uint64(p.config.MaxCachedHeaders) { //nolint:gosec,G115
		floor = latest - uint64(p.config.MaxCachedHeaders) //nolint:gosec,G115
	}
	for number := range p.headers {
		if number < floor {
			delete(p.headers, number)
		}
	}
}
