package block_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-marketplace-indexer/internal/block"
	"github.com/feral-file/ff-marketplace-indexer/internal/logger"
	"github.com/feral-file/ff-marketplace-indexer/internal/mocks"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testBlockProviderMocks contains all the mocks needed for testing the block provider
type testBlockProviderMocks struct {
	ctrl     *gomock.Controller
	fetcher  *mocks.MockBlockFetcher
	clock    *mocks.MockClock
	provider block.BlockProvider
}

func setupTest(t *testing.T) *testBlockProviderMocks {
	ctrl := gomock.NewController(t)

	mockFetcher := mocks.NewMockBlockFetcher(ctrl)
	mockClock := mocks.NewMockClock(ctrl)

	provider := block.NewBlockProvider(mockFetcher, block.Config{
		TTL:              10 * time.Second,
		StaleWindow:      2 * time.Minute,
		MaxCachedHeaders: 4,
	}, mockClock)

	return &testBlockProviderMocks{
		ctrl:     ctrl,
		fetcher:  mockFetcher,
		clock:    mockClock,
		provider: provider,
	}
}

func tearDownTest(tm *testBlockProviderMocks) {
	tm.ctrl.Finish()
}

func header(number uint64, hash string) block.Header {
	return block.Header{
		Number:    number,
		Hash:      hash,
		Timestamp: time.Date(2024, 1, 1, 0, 0, int(number), 0, time.UTC), //nolint:gosec,G115
	}
}

func TestBlockProvider_GetLatestBlock_UsesCache_WithinTTL(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tm.clock.EXPECT().Now().Return(now)
	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(1000), nil)

	blockNum1, err := tm.provider.GetLatestBlock(ctx)
	assert.NoError(t, err)
	assert.Equal(t, uint64(1000), blockNum1)

	// Within TTL, fetcher is not called again
	tm.clock.EXPECT().Now().Return(now.Add(5 * time.Second))

	blockNum2, err := tm.provider.GetLatestBlock(ctx)
	assert.NoError(t, err)
	assert.Equal(t, uint64(1000), blockNum2)
}

func TestBlockProvider_GetLatestBlock_RefreshesCache_AfterTTL(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	gomock.InOrder(
		tm.clock.EXPECT().Now().Return(now),
		tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(1000), nil),
		tm.clock.EXPECT().Now().Return(now.Add(11*time.Second)),
		tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(1003), nil),
	)

	_, err := tm.provider.GetLatestBlock(ctx)
	assert.NoError(t, err)

	blockNum, err := tm.provider.GetLatestBlock(ctx)
	assert.NoError(t, err)
	assert.Equal(t, uint64(1003), blockNum)
}

func TestBlockProvider_GetLatestBlock_UsesStaleCacheOnError_WithinStaleWindow(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tm.clock.EXPECT().Now().Return(now)
	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(1000), nil)
	_, err := tm.provider.GetLatestBlock(ctx)
	assert.NoError(t, err)

	tm.clock.EXPECT().Now().Return(now.Add(time.Minute))
	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(0), errors.New("network error"))

	blockNum, err := tm.provider.GetLatestBlock(ctx)
	assert.NoError(t, err)
	assert.Equal(t, uint64(1000), blockNum)
}

func TestBlockProvider_GetLatestBlock_ReturnsError_WhenStaleCache_BeyondStaleWindow(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tm.clock.EXPECT().Now().Return(now)
	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(1000), nil)
	_, err := tm.provider.GetLatestBlock(ctx)
	assert.NoError(t, err)

	tm.clock.EXPECT().Now().Return(now.Add(5 * time.Minute))
	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(0), errors.New("network error"))

	blockNum, err := tm.provider.GetLatestBlock(ctx)
	assert.Error(t, err)
	assert.Equal(t, uint64(0), blockNum)
	assert.Contains(t, err.Error(), "failed to fetch latest block and no valid cache available")
}

func TestBlockProvider_GetHeader_CachesHeaders(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	ctx := context.Background()
	tm.fetcher.EXPECT().FetchHeader(ctx, uint64(100)).Return(header(100, "0xaa"), nil).Times(1)

	h1, err := tm.provider.GetHeader(ctx, 100)
	assert.NoError(t, err)
	assert.Equal(t, "0xaa", h1.Hash)

	h2, err := tm.provider.GetHeader(ctx, 100)
	assert.NoError(t, err)
	assert.Equal(t, h1, h2)
}

func TestBlockProvider_GetCanonicalHeader_ReplacesCachedHeader(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	ctx := context.Background()
	gomock.InOrder(
		tm.fetcher.EXPECT().FetchHeader(ctx, uint64(100)).Return(header(100, "0xaa"), nil),
		tm.fetcher.EXPECT().FetchHeader(ctx, uint64(100)).Return(header(100, "0xbb"), nil),
	)

	_, err := tm.provider.GetHeader(ctx, 100)
	assert.NoError(t, err)

	canonical, err := tm.provider.GetCanonicalHeader(ctx, 100)
	assert.NoError(t, err)
	assert.Equal(t, "0xbb", canonical.Hash)

	cached, err := tm.provider.GetHeader(ctx, 100)
	assert.NoError(t, err)
	assert.Equal(t, "0xbb", cached.Hash)
}

func TestBlockProvider_Invalidate(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	ctx := context.Background()
	tm.fetcher.EXPECT().FetchHeader(ctx, uint64(10)).Return(header(10, "0x10"), nil).Times(1)
	tm.fetcher.EXPECT().FetchHeader(ctx, uint64(11)).Return(header(11, "0x11"), nil).Times(2)

	_, err := tm.provider.GetHeader(ctx, 10)
	assert.NoError(t, err)
	_, err = tm.provider.GetHeader(ctx, 11)
	assert.NoError(t, err)

	tm.provider.Invalidate(11)

	// Block 10 is still cached, block 11 is fetched again
	_, err = tm.provider.GetHeader(ctx, 10)
	assert.NoError(t, err)
	_, err = tm.provider.GetHeader(ctx, 11)
	assert.NoError(t, err)
}

func TestBlockProvider_GetHeader_ReturnsFetchError(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	ctx := context.Background()
	tm.fetcher.EXPECT().FetchHeader(ctx, uint64(7)).Return(block.Header{}, errors.New("boom"))

	_, err := tm.provider.GetHeader(ctx, 7)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch header for block 7")
}

func TestBlockProvider_ConcurrentAccess(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(1000), nil).AnyTimes()
	tm.fetcher.EXPECT().FetchHeader(ctx, uint64(999)).Return(header(999, "0x99"), nil).AnyTimes()
	tm.clock.EXPECT().Now().Return(now).AnyTimes()

	done := make(chan bool, 10)
	for range 10 {
		go func() {
			blockNum, err := tm.provider.GetLatestBlock(ctx)
			assert.NoError(t, err)
			assert.Equal(t, uint64(1000), blockNum)

			h, err := tm.provider.GetHeader(ctx, 999)
			assert.NoError(t, err)
			assert.Equal(t, "0x99", h.Hash)
			done <- true
		}()
	}

	for range 10 {
		<-done
	}
}
