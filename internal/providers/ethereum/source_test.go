package ethereum

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-marketplace-indexer/internal/block"
	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
)

var (
	knownCollection = common.HexToAddress("0x2000000000000000000000000000000000000002")
	newCollection   = common.HexToAddress("0x2000000000000000000000000000000000000003")
)

// testSourceStore serves known collections and the block hashes of a journal
type testSourceStore struct {
	collections []string
	journal     []domain.BlockRef
}

func (s *testSourceStore) ListCollectionAddresses(context.Context) ([]string, error) {
	return s.collections, nil
}

func (s *testSourceStore) JournaledBlockBefore(_ context.Context, _ domain.Chain, before uint64) (*domain.BlockRef, error) {
	var found *domain.BlockRef
	for i := range s.journal {
		if b := &s.journal[i]; b.Number < before && (found == nil || b.Number > found.Number) {
			found = b
		}
	}
	return found, nil
}

type testSourceMocks struct {
	*testClientMocks
	source *Source
	store  *testSourceStore
}

func setupTestSource(t *testing.T) *testSourceMocks {
	tm := setupTestClient(t)
	st := &testSourceStore{collections: []string{knownCollection.Hex()}}
	source := NewSource(SourceConfig{
		ChainID: domain.ChainFantomOpera,
		Contracts: Contracts{
			Marketplace:  marketplaceAddr.Hex(),
			Auction:      auctionAddr.Hex(),
			Verification: verificationAddr.Hex(),
			Factory:      factoryAddr.Hex(),
			Collections:  []string{collectionAddr.Hex()},
		},
		ConfirmationDepth: 10,
		BlockRange:        50,
		HeaderWorkers:     2,
	}, tm.client, tm.blocks, st)
	t.Cleanup(source.Close)

	return &testSourceMocks{testClientMocks: tm, source: source, store: st}
}

// expectLogs serves contract logs and collection transfers for one scan
func (tm *testSourceMocks) expectLogs(t *testing.T, from, to uint64, contractLogs, transferLogs []types.Log) {
	tm.eth.EXPECT().
		FilterLogs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
			assert.Equal(t, from, q.FromBlock.Uint64())
			assert.Equal(t, to, q.ToBlock.Uint64())

			if len(q.Topics) == 0 {
				assert.ElementsMatch(t, []common.Address{marketplaceAddr, auctionAddr, verificationAddr, factoryAddr}, q.Addresses)
				return contractLogs, nil
			}

			assert.Equal(t, [][]common.Hash{{transferEventSignature}}, q.Topics)
			assert.Contains(t, q.Addresses, collectionAddr)
			assert.Contains(t, q.Addresses, knownCollection)
			return transferLogs, nil
		}).
		Times(2)
}

func (tm *testSourceMocks) expectCanonical(n uint64) {
	tm.blocks.EXPECT().GetCanonicalHeader(gomock.Any(), n).Return(header(n), nil)
}

func positions(events []domain.Event) []string {
	var out []string
	for _, ev := range events {
		out = append(out, ev.Position.String()+" "+string(ev.Kind))
	}
	return out
}

func TestFetchEventsAfter_OrdersAndCheckpointsRange(t *testing.T) {
	tm := setupTestSource(t)
	ctx := context.Background()

	tm.expectCanonical(100)
	tm.blocks.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(120), nil)
	tm.expectHeaders(103, 104, 105, 110)
	tm.eth.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("execution reverted")).AnyTimes()

	removed := buildLog(t, marketplaceAddr, "ItemCanceled", domain.Position{Block: 106, LogIndex: 0},
		[]common.Hash{addressTopic(alice), addressTopic(collectionAddr)}, big.NewInt(7))
	removed.Removed = true

	unknown := types.Log{
		Address:     marketplaceAddr,
		Topics:      []common.Hash{common.HexToHash("0x01")},
		BlockNumber: 104,
		Index:       0,
		BlockHash:   blockHash(104),
	}

	contractLogs := []types.Log{
		buildLog(t, marketplaceAddr, "ItemListed", domain.Position{Block: 105, LogIndex: 2},
			[]common.Hash{addressTopic(alice), addressTopic(collectionAddr)},
			big.NewInt(7), payToken, big.NewInt(10), big.NewInt(0)),
		buildLog(t, factoryAddr, "CollectionCreated", domain.Position{Block: 103, LogIndex: 0},
			[]common.Hash{addressTopic(alice), addressTopic(newCollection)}, "Fibbo Art"),
		removed,
		unknown,
	}

	tm.eth.EXPECT().
		FilterLogs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
			assert.Equal(t, uint64(101), q.FromBlock.Uint64())
			assert.Equal(t, uint64(110), q.ToBlock.Uint64())

			if len(q.Topics) == 0 {
				return contractLogs, nil
			}

			assert.ElementsMatch(t, []common.Address{collectionAddr, knownCollection, newCollection}, q.Addresses)
			return []types.Log{
				transferLog(t, collectionAddr, domain.Position{Block: 105, LogIndex: 0}, bob, alice, 7),
				transferLog(t, newCollection, domain.Position{Block: 104, LogIndex: 1}, common.Address{}, alice, 1),
			}, nil
		}).
		Times(2)

	cursor := domain.Cursor{Position: domain.EndOfBlock(100), BlockHash: blockHash(100).Hex()}
	batch, err := tm.source.FetchEventsAfter(ctx, cursor, 100)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"103:0 collection_created",
		"104:0 unknown",
		"104:1 mint",
		"105:0 transfer",
		"105:2 item_listed",
	}, positions(batch.Events))
	assert.Equal(t, newCollection.Hex(), batch.Events[0].CollectionAddress)
	assert.Equal(t, "Fibbo Art", batch.Events[0].Name)
	assert.Equal(t, domain.EndOfBlock(110), batch.Checkpoint)
	assert.Equal(t, blockHash(110).Hex(), batch.CheckpointHash)
}

func TestFetchEventsAfter_TruncatesToMaxCount(t *testing.T) {
	tm := setupTestSource(t)
	ctx := context.Background()

	tm.blocks.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(120), nil)
	tm.expectHeaders(104, 105)

	tm.expectLogs(t, 101, 110,
		[]types.Log{
			buildLog(t, marketplaceAddr, "ItemListed", domain.Position{Block: 105, LogIndex: 2},
				[]common.Hash{addressTopic(alice), addressTopic(collectionAddr)},
				big.NewInt(7), payToken, big.NewInt(10), big.NewInt(0)),
			buildLog(t, verificationAddr, "AddressVerified", domain.Position{Block: 104, LogIndex: 0},
				[]common.Hash{addressTopic(alice)}),
			buildLog(t, verificationAddr, "AddressVerified", domain.Position{Block: 108, LogIndex: 0},
				[]common.Hash{addressTopic(bob)}),
		},
		[]types.Log{
			transferLog(t, collectionAddr, domain.Position{Block: 105, LogIndex: 0}, bob, alice, 7),
		})

	// No hash on the initial cursor, so there is nothing to compare
	batch, err := tm.source.FetchEventsAfter(ctx, domain.InitialCursor(101), 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"104:0 address_verified", "105:0 transfer"}, positions(batch.Events))
	assert.Equal(t, domain.Position{Block: 105, LogIndex: 0}, batch.Checkpoint)
	assert.Equal(t, blockHash(105).Hex(), batch.CheckpointHash)
}

func TestFetchEventsAfter_ResumesInsideBlock(t *testing.T) {
	tm := setupTestSource(t)
	ctx := context.Background()

	tm.expectCanonical(105)
	tm.blocks.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(120), nil)
	tm.expectHeaders(105, 110)

	tm.expectLogs(t, 105, 110,
		[]types.Log{
			buildLog(t, marketplaceAddr, "ItemListed", domain.Position{Block: 105, LogIndex: 2},
				[]common.Hash{addressTopic(alice), addressTopic(collectionAddr)},
				big.NewInt(7), payToken, big.NewInt(10), big.NewInt(0)),
		},
		[]types.Log{
			transferLog(t, collectionAddr, domain.Position{Block: 105, LogIndex: 0}, bob, alice, 7),
		})

	cursor := domain.Cursor{Position: domain.Position{Block: 105, LogIndex: 0}, BlockHash: blockHash(105).Hex()}
	batch, err := tm.source.FetchEventsAfter(ctx, cursor, 100)
	require.NoError(t, err)

	assert.Equal(t, []string{"105:2 item_listed"}, positions(batch.Events))
	assert.Equal(t, domain.EndOfBlock(110), batch.Checkpoint)
}

func TestFetchEventsAfter_CaughtUp(t *testing.T) {
	tm := setupTestSource(t)

	tm.expectCanonical(100)
	tm.blocks.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(105), nil)

	cursor := domain.Cursor{Position: domain.EndOfBlock(100), BlockHash: blockHash(100).Hex()}
	batch, err := tm.source.FetchEventsAfter(context.Background(), cursor, 100)
	require.NoError(t, err)

	assert.Empty(t, batch.Events)
	assert.Equal(t, cursor.Position, batch.Checkpoint)
	assert.Equal(t, cursor.BlockHash, batch.CheckpointHash)
}

func TestFetchEventsAfter_DetectsReorg(t *testing.T) {
	tm := setupTestSource(t)

	tm.blocks.EXPECT().GetCanonicalHeader(gomock.Any(), uint64(100)).Return(block.Header{
		Number: 100,
		Hash:   common.HexToHash("0xfork").Hex(),
	}, nil)
	tm.blocks.EXPECT().Invalidate(uint64(100))

	cursor := domain.Cursor{Position: domain.EndOfBlock(100), BlockHash: blockHash(100).Hex()}
	_, err := tm.source.FetchEventsAfter(context.Background(), cursor, 100)

	var reorgErr *domain.ReorgError
	require.ErrorAs(t, err, &reorgErr)
	assert.ErrorIs(t, err, domain.ErrReorgDetected)
	assert.Equal(t, uint64(100), reorgErr.Block)
	assert.Equal(t, blockHash(100).Hex(), reorgErr.StoredHash)
	// Nothing journaled below the cursor to measure against
	assert.Zero(t, reorgErr.Depth)
}

func TestFetchEventsAfter_ReorgDepthWalksBackToCanonicalBlock(t *testing.T) {
	tm := setupTestSource(t)
	fork := func(n uint64) block.Header {
		return block.Header{Number: n, Hash: common.BigToHash(new(big.Int).SetUint64(0xf0 + n)).Hex()}
	}
	tm.store.journal = []domain.BlockRef{
		{Number: 90, Hash: blockHash(90).Hex()},
		{Number: 95, Hash: blockHash(95).Hex()},
		{Number: 98, Hash: blockHash(98).Hex()},
	}

	gomock.InOrder(
		tm.blocks.EXPECT().GetCanonicalHeader(gomock.Any(), uint64(100)).Return(fork(100), nil),
		tm.blocks.EXPECT().Invalidate(uint64(100)),
		tm.blocks.EXPECT().GetCanonicalHeader(gomock.Any(), uint64(98)).Return(fork(98), nil),
		tm.blocks.EXPECT().Invalidate(uint64(98)),
		tm.blocks.EXPECT().GetCanonicalHeader(gomock.Any(), uint64(95)).Return(header(95), nil),
	)

	cursor := domain.Cursor{Position: domain.EndOfBlock(100), BlockHash: blockHash(100).Hex()}
	_, err := tm.source.FetchEventsAfter(context.Background(), cursor, 100)

	var reorgErr *domain.ReorgError
	require.ErrorAs(t, err, &reorgErr)
	assert.Equal(t, uint64(100), reorgErr.Block)
	// Block 95 is the highest journaled block still canonical
	assert.Equal(t, uint64(5), reorgErr.Depth)
	assert.Equal(t, fork(100).Hash, reorgErr.CanonicalHash)
}

func TestFetchEventsAfter_ReorgDepthCoversEveryForkedJournalBlock(t *testing.T) {
	tm := setupTestSource(t)
	fork := func(n uint64) block.Header {
		return block.Header{Number: n, Hash: common.BigToHash(new(big.Int).SetUint64(0xf0 + n)).Hex()}
	}
	tm.store.journal = []domain.BlockRef{{Number: 97, Hash: blockHash(97).Hex()}}

	tm.blocks.EXPECT().GetCanonicalHeader(gomock.Any(), uint64(100)).Return(fork(100), nil)
	tm.blocks.EXPECT().Invalidate(uint64(100))
	tm.blocks.EXPECT().GetCanonicalHeader(gomock.Any(), uint64(97)).Return(fork(97), nil)
	tm.blocks.EXPECT().Invalidate(uint64(97))

	cursor := domain.Cursor{Position: domain.EndOfBlock(100), BlockHash: blockHash(100).Hex()}
	_, err := tm.source.FetchEventsAfter(context.Background(), cursor, 100)

	// The only journaled block forked too, so the depth reaches below it
	var reorgErr *domain.ReorgError
	require.ErrorAs(t, err, &reorgErr)
	assert.Equal(t, uint64(4), reorgErr.Depth)
}

func TestFetchEventsAfter_Unavailable(t *testing.T) {
	t.Run("head", func(t *testing.T) {
		tm := setupTestSource(t)
		tm.blocks.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(0), errors.New("dial tcp: i/o timeout"))

		_, err := tm.source.FetchEventsAfter(context.Background(), domain.InitialCursor(1), 10)
		assert.ErrorIs(t, err, domain.ErrAdapterUnavailable)
	})

	t.Run("logs", func(t *testing.T) {
		tm := setupTestSource(t)
		tm.blocks.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(100), nil)
		tm.eth.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded)

		_, err := tm.source.FetchEventsAfter(context.Background(), domain.InitialCursor(1), 10)
		assert.ErrorIs(t, err, domain.ErrAdapterUnavailable)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("canonical header", func(t *testing.T) {
		tm := setupTestSource(t)
		tm.blocks.EXPECT().GetCanonicalHeader(gomock.Any(), uint64(100)).Return(block.Header{}, errors.New("503"))

		cursor := domain.Cursor{Position: domain.EndOfBlock(100), BlockHash: blockHash(100).Hex()}
		_, err := tm.source.FetchEventsAfter(context.Background(), cursor, 10)
		assert.ErrorIs(t, err, domain.ErrAdapterUnavailable)
	})
}

func TestCurrentConfirmedHeight(t *testing.T) {
	tm := setupTestSource(t)
	ctx := context.Background()

	tm.blocks.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(120), nil)
	height, err := tm.source.CurrentConfirmedHeight(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(110), height)

	tm.blocks.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(4), nil)
	height, err = tm.source.CurrentConfirmedHeight(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), height)
}

func TestBlockHash(t *testing.T) {
	tm := setupTestSource(t)

	tm.expectCanonical(42)
	hash, err := tm.source.BlockHash(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, blockHash(42).Hex(), hash)
}
