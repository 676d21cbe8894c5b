package scheduler_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-marketplace-indexer/internal/adapter"
	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
	"github.com/feral-file/ff-marketplace-indexer/internal/logger"
	"github.com/feral-file/ff-marketplace-indexer/internal/messaging"
	"github.com/feral-file/ff-marketplace-indexer/internal/metrics"
	"github.com/feral-file/ff-marketplace-indexer/internal/mocks"
	"github.com/feral-file/ff-marketplace-indexer/internal/projection"
	"github.com/feral-file/ff-marketplace-indexer/internal/scheduler"
	"github.com/feral-file/ff-marketplace-indexer/internal/store"
	"github.com/feral-file/ff-marketplace-indexer/internal/store/storetest"
)

const (
	chain          = domain.ChainFantomOpera
	startBlock     = 100
	collectionAddr = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	alice          = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	bob            = "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC"
	carol          = "0x90F79bf6EB2c4f870365E785982E1f101E93b906"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

var baseTime = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func pos(block uint64, logIndex uint32) domain.Position {
	return domain.Position{Block: block, LogIndex: logIndex}
}

func hashOf(block uint64) string {
	return fmt.Sprintf("0x%064x", block)
}

func event(kind domain.EventKind, p domain.Position) domain.Event {
	return domain.Event{
		Kind:              kind,
		Chain:             chain,
		Contract:          collectionAddr,
		CollectionAddress: collectionAddr,
		TokenID:           "1",
		Position:          p,
		BlockHash:         hashOf(p.Block),
		TxHash:            fmt.Sprintf("0xtx%d_%d", p.Block, p.LogIndex),
		Timestamp:         baseTime.Add(time.Duration(p.Block) * time.Second),
	}
}

func mintEvent(p domain.Position, to string) domain.Event {
	ev := event(domain.EventKindMint, p)
	ev.Participants = domain.Participants{From: domain.ETHEREUM_ZERO_ADDRESS, To: to}
	return ev
}

func transferEvent(p domain.Position, from, to string) domain.Event {
	ev := event(domain.EventKindTransfer, p)
	ev.Participants = domain.Participants{From: from, To: to}
	return ev
}

func listEvent(p domain.Position, seller, price string) domain.Event {
	ev := event(domain.EventKindItemListed, p)
	ev.Participants = domain.Participants{Seller: seller}
	ev.Amounts.Price = price
	return ev
}

func saleEvent(p domain.Position, seller, buyer, price string) domain.Event {
	ev := event(domain.EventKindItemSold, p)
	ev.Participants = domain.Participants{Seller: seller, Buyer: buyer}
	ev.Amounts.Price = price
	return ev
}

func batchThrough(block uint64, events ...domain.Event) domain.Batch {
	return domain.Batch{
		Events:         events,
		Checkpoint:     domain.EndOfBlock(block),
		CheckpointHash: hashOf(block),
	}
}

// testSchedulerMocks contains the collaborators of a scheduler under test
type testSchedulerMocks struct {
	ctrl      *gomock.Controller
	source    *mocks.MockEventSource
	store     *storetest.MemoryStore
	projector projection.Projector
	scheduler scheduler.Scheduler
}

func testConfig() scheduler.Config {
	return scheduler.Config{
		ChainID:                 chain,
		StartBlock:              startBlock,
		ConfirmationDepth:       5,
		BatchSize:               10,
		Interval:                10 * time.Millisecond,
		FetchTimeout:            time.Second,
		MaxBackoff:              20 * time.Millisecond,
		MalformedAlertThreshold: 2,
	}
}

func setupTestScheduler(t *testing.T, cfg scheduler.Config, triggers ...messaging.Trigger) *testSchedulerMocks {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	st := storetest.NewMemoryStore()
	tm := &testSchedulerMocks{
		ctrl:      ctrl,
		source:    mocks.NewMockEventSource(ctrl),
		store:     st,
		projector: projection.NewProjector(st, projection.NewEngine(adapter.NewClock()), nil),
	}
	tm.scheduler = scheduler.NewScheduler(tm.source, tm.projector, st, triggers, cfg, adapter.NewClock())

	return tm
}

func (tm *testSchedulerMocks) confirmedAt(height uint64) {
	tm.source.EXPECT().CurrentConfirmedHeight(gomock.Any()).Return(height, nil).AnyTimes()
}

// expectFetch expects one fetch after the given cursor position
func (tm *testSchedulerMocks) expectFetch(t *testing.T, after domain.Position, batch domain.Batch, err error) *gomock.Call {
	return tm.source.EXPECT().
		FetchEventsAfter(gomock.Any(), gomock.Any(), 10).
		DoAndReturn(func(_ context.Context, cursor domain.Cursor, _ int) (domain.Batch, error) {
			assert.Equal(t, after, cursor.Position)
			return batch, err
		})
}

func (tm *testSchedulerMocks) cursor(t *testing.T) domain.Cursor {
	t.Helper()
	cursor, err := tm.store.GetCursor(context.Background(), chain)
	require.NoError(t, err)
	require.NotNil(t, cursor)
	return *cursor
}

func (tm *testSchedulerMocks) owner(t *testing.T) string {
	t.Helper()
	nft, err := tm.store.GetNFT(context.Background(), collectionAddr, "1")
	require.NoError(t, err)
	require.NotNil(t, nft)
	return nft.Owner
}

func TestRunCycle_AppliesBatchAndAdvancesCursor(t *testing.T) {
	tm := setupTestScheduler(t, testConfig())
	ctx := context.Background()

	tm.confirmedAt(200)
	tm.expectFetch(t, domain.EndOfBlock(startBlock-1), batchThrough(150,
		mintEvent(pos(101, 0), alice),
		listEvent(pos(102, 1), alice, "10"),
		saleEvent(pos(120, 0), alice, bob, "10"),
	), nil)

	result, err := tm.scheduler.RunCycle(ctx)
	require.NoError(t, err)

	assert.NotEmpty(t, result.CycleID)
	assert.Equal(t, 3, result.Applied)
	assert.Equal(t, domain.EndOfBlock(startBlock-1), result.From)
	assert.Equal(t, domain.EndOfBlock(150), result.To)
	assert.False(t, result.CaughtUp)

	cursor := tm.cursor(t)
	assert.Equal(t, domain.EndOfBlock(150), cursor.Position)
	assert.Equal(t, hashOf(150), cursor.BlockHash)
	assert.Equal(t, bob, tm.owner(t))
	assert.Len(t, tm.store.Notifications(), 1)
}

func TestRunCycle_EmptyRangeAdvancesToCheckpoint(t *testing.T) {
	tm := setupTestScheduler(t, testConfig())

	tm.confirmedAt(200)
	tm.expectFetch(t, domain.EndOfBlock(startBlock-1), batchThrough(200), nil)

	result, err := tm.scheduler.RunCycle(context.Background())
	require.NoError(t, err)

	assert.True(t, result.CaughtUp)
	assert.Equal(t, domain.EndOfBlock(200), tm.cursor(t).Position)
}

func TestRunCycle_CursorStopsBeforeFailedEvent(t *testing.T) {
	tm := setupTestScheduler(t, testConfig())
	ctx := context.Background()

	events := []domain.Event{
		mintEvent(pos(101, 0), alice),
		transferEvent(pos(102, 0), alice, bob),
		transferEvent(pos(103, 0), bob, carol),
		transferEvent(pos(104, 0), carol, alice),
		transferEvent(pos(105, 0), alice, bob),
	}
	failAt := events[3].Position
	tm.store.FailRecordAt = &failAt

	tm.confirmedAt(200)
	gomock.InOrder(
		tm.expectFetch(t, domain.EndOfBlock(startBlock-1), batchThrough(110, events...), nil),
		tm.expectFetch(t, events[2].Position, batchThrough(110, events[3:]...), nil),
	)

	result, err := tm.scheduler.RunCycle(ctx)
	require.Error(t, err)
	assert.Equal(t, 3, result.Applied)

	cursor := tm.cursor(t)
	assert.Equal(t, events[2].Position, cursor.Position)
	assert.Equal(t, events[2].BlockHash, cursor.BlockHash)
	assert.Equal(t, carol, tm.owner(t))
	assert.Len(t, tm.store.Events(chain), 3)

	// The unapplied suffix is fetched again once the failure clears
	tm.store.FailRecordAt = nil
	result, err = tm.scheduler.RunCycle(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Applied)
	assert.Equal(t, domain.EndOfBlock(110), tm.cursor(t).Position)
	assert.Equal(t, bob, tm.owner(t))
	assert.Len(t, tm.store.Events(chain), 5)
}

func TestRunCycle_SkipsUnknownKinds(t *testing.T) {
	tm := setupTestScheduler(t, testConfig())

	unknown := event(domain.EventKindUnknown, pos(102, 0))
	skippedBefore := testutil.ToFloat64(metrics.EventsSkippedTotal.WithLabelValues(string(domain.EventKindUnknown)))

	tm.confirmedAt(200)
	tm.expectFetch(t, domain.EndOfBlock(startBlock-1), batchThrough(110,
		mintEvent(pos(101, 0), alice),
		unknown,
		transferEvent(pos(103, 0), alice, bob),
	), nil)

	result, err := tm.scheduler.RunCycle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Applied)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, domain.EndOfBlock(110), tm.cursor(t).Position)
	assert.Equal(t, bob, tm.owner(t))
	assert.Len(t, tm.store.Events(chain), 2)
	assert.Equal(t, skippedBefore+1, testutil.ToFloat64(metrics.EventsSkippedTotal.WithLabelValues(string(domain.EventKindUnknown))))
}

func TestRunCycle_MalformedEventAbortsBatchAndAlerts(t *testing.T) {
	tm := setupTestScheduler(t, testConfig())
	ctx := context.Background()

	mint := mintEvent(pos(101, 0), alice)
	malformed := listEvent(pos(102, 0), alice, "")
	alerts := func() float64 {
		return testutil.ToFloat64(metrics.AlertsTotal.WithLabelValues(metrics.AlertMalformedEvent))
	}
	alertsBefore := alerts()

	tm.confirmedAt(200)
	gomock.InOrder(
		tm.expectFetch(t, domain.EndOfBlock(startBlock-1), batchThrough(110, mint, malformed, transferEvent(pos(103, 0), alice, bob)), nil),
		tm.expectFetch(t, mint.Position, batchThrough(110, malformed), nil),
	)

	_, err := tm.scheduler.RunCycle(ctx)
	assert.ErrorIs(t, err, domain.ErrMalformedEvent)
	var projectionErr *domain.ProjectionError
	require.ErrorAs(t, err, &projectionErr)
	assert.Equal(t, "amounts.price", projectionErr.Field)
	assert.Equal(t, alertsBefore, alerts())

	assert.Equal(t, mint.Position, tm.cursor(t).Position)
	assert.Equal(t, alice, tm.owner(t))

	// Second consecutive malformed batch reaches the threshold
	_, err = tm.scheduler.RunCycle(ctx)
	assert.ErrorIs(t, err, domain.ErrMalformedEvent)
	assert.Equal(t, alertsBefore+1, alerts())
	assert.Equal(t, mint.Position, tm.cursor(t).Position)
}

func TestRunCycle_CursorWriteFailed(t *testing.T) {
	tm := setupTestScheduler(t, testConfig())
	tm.store.FailSetCursor = errors.New("connection reset")

	tm.confirmedAt(200)
	tm.expectFetch(t, domain.EndOfBlock(startBlock-1), batchThrough(110, mintEvent(pos(101, 0), alice)), nil)

	_, err := tm.scheduler.RunCycle(context.Background())
	assert.ErrorIs(t, err, domain.ErrCursorWriteFailed)
	assert.ErrorContains(t, err, "connection reset")

	cursor, err := tm.store.GetCursor(context.Background(), chain)
	require.NoError(t, err)
	assert.Nil(t, cursor)
	// The event itself is durable and is a no-op when fetched again
	assert.Len(t, tm.store.Events(chain), 1)
}

func TestRunCycle_AdapterUnavailable(t *testing.T) {
	t.Run("confirmed height", func(t *testing.T) {
		tm := setupTestScheduler(t, testConfig())

		tm.source.EXPECT().
			CurrentConfirmedHeight(gomock.Any()).
			Return(uint64(0), fmt.Errorf("%w: dial tcp: connection refused", domain.ErrAdapterUnavailable))

		_, err := tm.scheduler.RunCycle(context.Background())
		assert.ErrorIs(t, err, domain.ErrAdapterUnavailable)

		cursor, err := tm.store.GetCursor(context.Background(), chain)
		require.NoError(t, err)
		assert.Nil(t, cursor)
	})

	t.Run("fetch timeout", func(t *testing.T) {
		cfg := testConfig()
		cfg.FetchTimeout = 10 * time.Millisecond
		tm := setupTestScheduler(t, cfg)

		tm.confirmedAt(200)
		tm.source.EXPECT().
			FetchEventsAfter(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ domain.Cursor, _ int) (domain.Batch, error) {
				<-ctx.Done()
				return domain.Batch{}, ctx.Err()
			})

		_, err := tm.scheduler.RunCycle(context.Background())
		assert.ErrorIs(t, err, domain.ErrAdapterUnavailable)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestRunCycle_SingleFlight(t *testing.T) {
	tm := setupTestScheduler(t, testConfig())
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})

	tm.confirmedAt(200)
	tm.source.EXPECT().
		FetchEventsAfter(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cursor domain.Cursor, _ int) (domain.Batch, error) {
			close(entered)
			<-release
			return batchThrough(110), nil
		})

	done := make(chan error, 1)
	go func() {
		_, err := tm.scheduler.RunCycle(ctx)
		done <- err
	}()

	<-entered
	_, err := tm.scheduler.RunCycle(ctx)
	assert.ErrorIs(t, err, domain.ErrCycleInProgress)

	status, err := tm.scheduler.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.Running)

	close(release)
	require.NoError(t, <-done)
}

func TestStatus_DoesNotBlockCycles(t *testing.T) {
	tm := setupTestScheduler(t, testConfig())
	ctx := context.Background()

	tm.confirmedAt(200)
	tm.source.EXPECT().
		FetchEventsAfter(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(batchThrough(150), nil).
		AnyTimes()

	stop := make(chan struct{})
	polled := make(chan struct{})
	go func() {
		defer close(polled)
		for {
			select {
			case <-stop:
				return
			default:
			}
			_, _ = tm.scheduler.Status(ctx)
		}
	}()

	for i := 0; i < 200; i++ {
		_, err := tm.scheduler.RunCycle(ctx)
		require.NoError(t, err, "cycle %d", i)
	}
	close(stop)
	<-polled

	status, err := tm.scheduler.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.Running)
}

func TestRunCycle_ReorgRollbackEqualsFullReplay(t *testing.T) {
	tm := setupTestScheduler(t, testConfig())
	ctx := context.Background()

	mint := mintEvent(pos(101, 0), alice)
	list := listEvent(pos(102, 0), alice, "10")
	orphanedSale := saleEvent(pos(108, 0), alice, bob, "10")
	canonicalSale := saleEvent(pos(107, 2), alice, carol, "10")
	canonicalSale.BlockHash = "0xcanonical107"

	tm.confirmedAt(200)
	gomock.InOrder(
		tm.expectFetch(t, domain.EndOfBlock(startBlock-1), batchThrough(110, mint, list, orphanedSale), nil),
		tm.expectFetch(t, domain.EndOfBlock(110), domain.Batch{}, &domain.ReorgError{
			Block:         110,
			StoredHash:    hashOf(110),
			CanonicalHash: "0xcanonical110",
		}),
		tm.source.EXPECT().BlockHash(gomock.Any(), uint64(105)).Return(hashOf(105), nil),
		tm.expectFetch(t, domain.EndOfBlock(105), domain.Batch{
			Events:         []domain.Event{canonicalSale},
			Checkpoint:     domain.EndOfBlock(112),
			CheckpointHash: "0xcanonical112",
		}, nil),
	)

	_, err := tm.scheduler.RunCycle(ctx)
	require.NoError(t, err)
	require.Equal(t, bob, tm.owner(t))

	result, err := tm.scheduler.RunCycle(ctx)
	require.NoError(t, err)
	assert.True(t, result.Reorg)
	assert.Equal(t, 1, result.Applied)

	cursor := tm.cursor(t)
	assert.Equal(t, domain.EndOfBlock(112), cursor.Position)
	assert.Equal(t, "0xcanonical112", cursor.BlockHash)

	// Replaying the canonical chain from scratch gives the same read models
	replayed := storetest.NewMemoryStore()
	p := projection.NewProjector(replayed, projection.NewEngine(adapter.NewClock()), nil)
	for _, ev := range []domain.Event{mint, list, canonicalSale} {
		require.NoError(t, p.Apply(ctx, ev))
	}

	assert.Equal(t, carol, tm.owner(t))
	assert.Equal(t, readModels(t, replayed), readModels(t, tm.store))
	assert.Equal(t, replayed.Events(chain), tm.store.Events(chain))
}

func TestRunCycle_ReorgRollbackIsFlooredAtStartBlock(t *testing.T) {
	cfg := testConfig()
	cfg.ConfirmationDepth = 50
	tm := setupTestScheduler(t, cfg)
	ctx := context.Background()

	tm.confirmedAt(200)
	gomock.InOrder(
		tm.expectFetch(t, domain.EndOfBlock(startBlock-1), batchThrough(110, mintEvent(pos(101, 0), alice)), nil),
		tm.expectFetch(t, domain.EndOfBlock(110), domain.Batch{}, &domain.ReorgError{Block: 110}),
		tm.expectFetch(t, domain.EndOfBlock(startBlock-1), batchThrough(110), nil),
	)

	_, err := tm.scheduler.RunCycle(ctx)
	require.NoError(t, err)

	result, err := tm.scheduler.RunCycle(ctx)
	require.NoError(t, err)
	assert.True(t, result.Reorg)
	assert.Empty(t, tm.store.Events(chain))

	nft, err := tm.store.GetNFT(ctx, collectionAddr, "1")
	require.NoError(t, err)
	assert.Nil(t, nft)
}

func TestResync(t *testing.T) {
	tm := setupTestScheduler(t, testConfig())
	ctx := context.Background()

	tm.confirmedAt(200)
	tm.expectFetch(t, domain.EndOfBlock(startBlock-1), batchThrough(110,
		mintEvent(pos(101, 0), alice),
		transferEvent(pos(103, 0), alice, bob),
		transferEvent(pos(106, 0), bob, carol),
	), nil)
	_, err := tm.scheduler.RunCycle(ctx)
	require.NoError(t, err)

	_, err = tm.scheduler.Resync(ctx, startBlock-1)
	assert.ErrorIs(t, err, domain.ErrInvalidResyncPosition)
	_, err = tm.scheduler.Resync(ctx, 112)
	assert.ErrorIs(t, err, domain.ErrInvalidResyncPosition)

	tm.source.EXPECT().BlockHash(gomock.Any(), uint64(104)).Return(hashOf(104), nil)

	cursor, err := tm.scheduler.Resync(ctx, 105)
	require.NoError(t, err)
	assert.Equal(t, domain.EndOfBlock(104), cursor.Position)
	assert.Equal(t, hashOf(104), cursor.BlockHash)

	assert.Equal(t, domain.EndOfBlock(104), tm.cursor(t).Position)
	assert.Equal(t, bob, tm.owner(t))
	assert.Len(t, tm.store.Events(chain), 2)
}

func TestStatus(t *testing.T) {
	tm := setupTestScheduler(t, testConfig())
	ctx := context.Background()

	tm.confirmedAt(200)
	tm.expectFetch(t, domain.EndOfBlock(startBlock-1), batchThrough(150), nil)

	status, err := tm.scheduler.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.EndOfBlock(startBlock-1), status.Cursor.Position)
	assert.Nil(t, status.LastCycle)

	_, err = tm.scheduler.RunCycle(ctx)
	require.NoError(t, err)

	status, err = tm.scheduler.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, chain, status.Chain)
	assert.Equal(t, uint64(200), status.ConfirmedHeight)
	assert.Equal(t, uint64(50), status.Lag)
	assert.False(t, status.Running)
	require.NotNil(t, status.LastCycle)
	assert.Equal(t, domain.EndOfBlock(150), status.LastCycle.To)
	assert.Empty(t, status.LastError)
}

func TestRun_BacksOffAfterFailure(t *testing.T) {
	tm := setupTestScheduler(t, testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gomock.InOrder(
		tm.source.EXPECT().
			CurrentConfirmedHeight(gomock.Any()).
			Return(uint64(0), fmt.Errorf("%w: timeout", domain.ErrAdapterUnavailable)),
		tm.source.EXPECT().CurrentConfirmedHeight(gomock.Any()).Return(uint64(200), nil),
	)
	tm.source.EXPECT().
		FetchEventsAfter(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Cursor, _ int) (domain.Batch, error) {
			cancel()
			return batchThrough(200), nil
		})

	require.NoError(t, tm.scheduler.Run(ctx))

	assert.Equal(t, domain.EndOfBlock(200), tm.cursor(t).Position)
}

func TestRunCycle_CancelledBeforeApplyKeepsCursor(t *testing.T) {
	tm := setupTestScheduler(t, testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tm.confirmedAt(200)
	tm.source.EXPECT().
		FetchEventsAfter(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Cursor, _ int) (domain.Batch, error) {
			cancel()
			return batchThrough(200, mintEvent(pos(101, 0), alice)), nil
		})

	_, err := tm.scheduler.RunCycle(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	cursor, err := tm.store.GetCursor(context.Background(), chain)
	require.NoError(t, err)
	assert.Nil(t, cursor)
	assert.Empty(t, tm.store.Events(chain))
}

func TestRun_TriggerStartsCycle(t *testing.T) {
	cfg := testConfig()
	cfg.Interval = time.Hour

	ctrl := gomock.NewController(t)
	trigger := mocks.NewMockTrigger(ctrl)
	tm := setupTestScheduler(t, cfg, trigger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	firstCycle := make(chan struct{})
	trigger.EXPECT().
		Listen(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, handler messaging.TriggerHandler) error {
			<-firstCycle
			handler("new_head")
			<-ctx.Done()
			return ctx.Err()
		})

	tm.confirmedAt(200)
	gomock.InOrder(
		tm.source.EXPECT().
			FetchEventsAfter(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.Cursor, _ int) (domain.Batch, error) {
				close(firstCycle)
				return batchThrough(200), nil
			}),
		tm.source.EXPECT().
			FetchEventsAfter(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cursor domain.Cursor, _ int) (domain.Batch, error) {
				assert.Equal(t, domain.EndOfBlock(200), cursor.Position)
				cancel()
				return batchThrough(200), nil
			}),
	)

	require.NoError(t, tm.scheduler.Run(ctx))
	ctrl.Finish()
}

// readModels collects the read models compared across rebuilds
func readModels(t *testing.T, st *storetest.MemoryStore) map[string]any {
	t.Helper()
	ctx := context.Background()

	nft, err := st.GetNFT(ctx, collectionAddr, "1")
	require.NoError(t, err)
	listings, err := st.ListListings(ctx, store.ListingFilter{})
	require.NoError(t, err)

	listingStatus := map[string]string{}
	for _, l := range listings {
		listingStatus[l.ID] = string(l.Status)
	}

	var notificationIDs []string
	for _, n := range st.Notifications() {
		notificationIDs = append(notificationIDs, n.ID)
	}

	return map[string]any{
		"owner":         nft.Owner,
		"listings":      listingStatus,
		"notifications": notificationIDs,
	}
}
