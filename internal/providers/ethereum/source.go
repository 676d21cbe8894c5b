package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"slices"
	"sort"

	"github.com/alitto/pond/v2"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace-indexer/internal/block"
	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
	"github.com/feral-file/ff-marketplace-indexer/internal/logger"
)

const defaultHeaderWorkers = 8

// maxReorgWalk bounds the journaled blocks compared while measuring a reorg
const maxReorgWalk = 64

// Contracts holds the addresses the source reads logs from.
// Collections seeds the ERC721 collections whose transfers are indexed.
type Contracts struct {
	Marketplace  string
	Auction      string
	Verification string
	Community    string
	Factory      string
	Collections  []string
}

// SourceConfig holds the configuration of the event source
type SourceConfig struct {
	ChainID           domain.Chain
	Contracts         Contracts
	ConfirmationDepth uint64
	BlockRange        uint64
	HeaderWorkers     int
	// HeaderQueueSize bounds pending header lookups, 0 means unbounded
	HeaderQueueSize int
}

// CollectionLister returns the collections already known to the read models
type CollectionLister interface {
	ListCollectionAddresses(ctx context.Context) ([]string, error)
}

// JournalReader returns the block hashes recorded with journaled events
type JournalReader interface {
	// JournaledBlockBefore returns the highest journaled block below before, nil when none
	JournaledBlockBefore(ctx context.Context, chain domain.Chain, before uint64) (*domain.BlockRef, error)
}

// SourceStore is the part of the store the source reads
type SourceStore interface {
	CollectionLister
	JournalReader
}

// Source reads marketplace events from confirmed blocks in position order
type Source struct {
	config        SourceConfig
	client        EthereumClient
	blockProvider block.BlockProvider
	store         SourceStore
	pool          pond.ResultPool[block.Header]
}

// NewSource creates an event source over the given contracts
func NewSource(cfg SourceConfig, client EthereumClient, blockProvider block.BlockProvider, store SourceStore) *Source {
	if cfg.HeaderWorkers <= 0 {
		cfg.HeaderWorkers = defaultHeaderWorkers
	}
	if cfg.BlockRange == 0 {
		cfg.BlockRange = defaultLogStepSize
	}

	var opts []pond.Option
	if cfg.HeaderQueueSize > 0 {
		opts = append(opts, pond.WithQueueSize(cfg.HeaderQueueSize))
	}

	return &Source{
		config:        cfg,
		client:        client,
		blockProvider: blockProvider,
		store:         store,
		pool:          pond.NewResultPool[block.Header](cfg.HeaderWorkers, opts...),
	}
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrAdapterUnavailable, err)
}

// CurrentConfirmedHeight returns the highest block with enough confirmations
func (s *Source) CurrentConfirmedHeight(ctx context.Context) (uint64, error) {
	head, err := s.blockProvider.GetLatestBlock(ctx)
	if err != nil {
		return 0, unavailable(err)
	}
	if head < s.config.ConfirmationDepth {
		return 0, nil
	}
	return head - s.config.ConfirmationDepth, nil
}

// BlockHash returns the canonical hash of a block
func (s *Source) BlockHash(ctx context.Context, number uint64) (string, error) {
	header, err := s.blockProvider.GetCanonicalHeader(ctx, number)
	if err != nil {
		return "", unavailable(err)
	}
	return header.Hash, nil
}

// FetchEventsAfter returns up to maxCount events strictly after the cursor.
// A cursor whose block hash is no longer canonical yields a *domain.ReorgError.
func (s *Source) FetchEventsAfter(ctx context.Context, cursor domain.Cursor, maxCount int) (domain.Batch, error) {
	if err := s.checkCanonical(ctx, cursor); err != nil {
		return domain.Batch{}, err
	}

	confirmed, err := s.CurrentConfirmedHeight(ctx)
	if err != nil {
		return domain.Batch{}, err
	}

	from := cursor.Position.NextBlock()
	if from > confirmed {
		return domain.Batch{Checkpoint: cursor.Position, CheckpointHash: cursor.BlockHash}, nil
	}
	to := min(confirmed, from+s.config.BlockRange-1)

	logs, err := s.fetchLogs(ctx, from, to)
	if err != nil {
		return domain.Batch{}, unavailable(err)
	}

	logs = slices.DeleteFunc(logs, func(l types.Log) bool {
		return l.Removed || !logPosition(l).After(cursor.Position)
	})
	sort.Slice(logs, func(i, j int) bool {
		return logPosition(logs[i]).Less(logPosition(logs[j]))
	})
	logs = slices.CompactFunc(logs, func(a, b types.Log) bool {
		return logPosition(a) == logPosition(b)
	})

	truncated := maxCount > 0 && len(logs) > maxCount
	if truncated {
		logs = logs[:maxCount]
	}

	blocks := make([]uint64, 0, len(logs)+1)
	for _, l := range logs {
		blocks = append(blocks, l.BlockNumber)
	}
	if !truncated {
		blocks = append(blocks, to)
	}
	headers, err := s.prefetchHeaders(ctx, blocks)
	if err != nil {
		return domain.Batch{}, unavailable(err)
	}

	batch := domain.Batch{Events: make([]domain.Event, 0, len(logs))}
	for _, l := range logs {
		event, err := s.client.ParseEventLog(ctx, l)
		if err != nil {
			return domain.Batch{}, unavailable(err)
		}
		if event == nil {
			continue
		}
		batch.Events = append(batch.Events, *event)
	}

	if truncated {
		last := logs[len(logs)-1]
		batch.Checkpoint = logPosition(last)
		batch.CheckpointHash = last.BlockHash.Hex()
	} else {
		batch.Checkpoint = domain.EndOfBlock(to)
		batch.CheckpointHash = headers[to].Hash
	}

	logger.DebugCtx(ctx, "Fetched marketplace events",
		zap.Uint64("fromBlock", from),
		zap.Uint64("toBlock", to),
		zap.Int("events", len(batch.Events)),
		zap.Bool("truncated", truncated),
		zap.Stringer("checkpoint", batch.Checkpoint))

	return batch, nil
}

// checkCanonical compares the cursor block hash with the canonical chain
func (s *Source) checkCanonical(ctx context.Context, cursor domain.Cursor) error {
	if cursor.BlockHash == "" {
		return nil
	}

	header, err := s.blockProvider.GetCanonicalHeader(ctx, cursor.Position.Block)
	if err != nil {
		return unavailable(err)
	}
	if header.Hash == cursor.BlockHash {
		return nil
	}

	s.blockProvider.Invalidate(cursor.Position.Block)

	depth, err := s.reorgDepth(ctx, cursor.Position.Block)
	if err != nil {
		return err
	}

	return &domain.ReorgError{
		Block:         cursor.Position.Block,
		Depth:         depth,
		StoredHash:    cursor.BlockHash,
		CanonicalHash: header.Hash,
	}
}

// reorgDepth walks back over journaled blocks below the forked block until one
// is still canonical. The depth reaches down to that block, so everything after
// it is refetched. Without a canonical journaled block the depth covers the
// lowest forked one, and is 0 when no journaled block was compared at all.
func (s *Source) reorgDepth(ctx context.Context, forked uint64) (uint64, error) {
	before := forked
	for range maxReorgWalk {
		stored, err := s.store.JournaledBlockBefore(ctx, s.config.ChainID, before)
		if err != nil {
			return 0, fmt.Errorf("failed to read journaled block: %w", err)
		}
		if stored == nil {
			if before == forked {
				return 0, nil
			}
			return forked - before + 1, nil
		}

		header, err := s.blockProvider.GetCanonicalHeader(ctx, stored.Number)
		if err != nil {
			return 0, unavailable(err)
		}
		if header.Hash == stored.Hash {
			return forked - stored.Number, nil
		}

		s.blockProvider.Invalidate(stored.Number)
		before = stored.Number
	}

	logger.WarnCtx(ctx, "Reorg deeper than the journal walk",
		zap.Uint64("forkedBlock", forked),
		zap.Uint64("lowestForked", before))

	// The lowest forked block is rolled back as well
	return forked - before + 1, nil
}

// fetchLogs reads the contract logs of the range, then the transfers of every
// known collection including the ones the factory created inside the range
func (s *Source) fetchLogs(ctx context.Context, from, to uint64) ([]types.Log, error) {
	contracts := s.contractAddresses()

	var logs []types.Log
	if len(contracts) > 0 {
		contractLogs, err := s.client.FilterLogs(ctx, ethereum.FilterQuery{
			FromBlock: new(big.Int).SetUint64(from),
			ToBlock:   new(big.Int).SetUint64(to),
			Addresses: contracts,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to filter contract logs: %w", err)
		}
		logs = append(logs, contractLogs...)
	}

	collections, err := s.collectionAddresses(ctx, logs)
	if err != nil {
		return nil, err
	}
	if len(collections) == 0 {
		return logs, nil
	}

	transferLogs, err := s.client.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(from),
		ToBlock:   new(big.Int).SetUint64(to),
		Addresses: collections,
		Topics:    [][]common.Hash{{transferEventSignature}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to filter transfer logs: %w", err)
	}

	return append(logs, transferLogs...), nil
}

func (s *Source) contractAddresses() []common.Address {
	var addresses []common.Address
	for _, addr := range []string{
		s.config.Contracts.Marketplace,
		s.config.Contracts.Auction,
		s.config.Contracts.Verification,
		s.config.Contracts.Community,
		s.config.Contracts.Factory,
	} {
		if addr != "" {
			addresses = append(addresses, common.HexToAddress(addr))
		}
	}
	return addresses
}

func (s *Source) collectionAddresses(ctx context.Context, contractLogs []types.Log) ([]common.Address, error) {
	known, err := s.store.ListCollectionAddresses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	seen := make(map[common.Address]struct{})
	var addresses []common.Address
	add := func(addr common.Address) {
		if _, ok := seen[addr]; ok {
			return
		}
		seen[addr] = struct{}{}
		addresses = append(addresses, addr)
	}

	for _, addr := range s.config.Contracts.Collections {
		add(common.HexToAddress(addr))
	}
	for _, addr := range known {
		add(common.HexToAddress(addr))
	}

	factory := common.HexToAddress(s.config.Contracts.Factory)
	for _, l := range contractLogs {
		// CollectionCreated(address indexed creator, address indexed nft, string name)
		if l.Address != factory || len(l.Topics) != 3 || l.Topics[0] != collectionCreatedEventSignature {
			continue
		}
		add(common.BytesToAddress(l.Topics[2].Bytes()))
	}

	return addresses, nil
}

// prefetchHeaders loads the headers of the distinct blocks in parallel so
// decoding reads timestamps from the provider cache
func (s *Source) prefetchHeaders(ctx context.Context, blocks []uint64) (map[uint64]block.Header, error) {
	slices.Sort(blocks)
	blocks = slices.Compact(blocks)

	group := s.pool.NewGroup()
	for _, number := range blocks {
		group.SubmitErr(func() (block.Header, error) {
			return s.blockProvider.GetHeader(ctx, number)
		})
	}

	results, err := group.Wait()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch block headers: %w", err)
	}

	headers := make(map[uint64]block.Header, len(results))
	for _, header := range results {
		headers[header.Number] = header
	}
	return headers, nil
}

// Close stops the header worker pool
func (s *Source) Close() {
	s.pool.StopAndWait()
}

func logPosition(l types.Log) domain.Position {
	return domain.Position{
		Block:    l.BlockNumber,
		LogIndex: uint32(l.Index), //nolint:gosec,G115 // log indexes are bounded by the block gas limit
	}
}
