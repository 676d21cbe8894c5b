package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
	"github.com/feral-file/ff-marketplace-indexer/internal/store/schema"
)

const (
	testChain      = domain.ChainFantomOpera
	testCollection = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	testSeller     = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	testBuyer      = "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC"
)

var testTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func testEvent(kind domain.EventKind, block uint64, logIndex uint32) domain.Event {
	return domain.Event{
		Kind:              kind,
		Chain:             testChain,
		Contract:          testCollection,
		CollectionAddress: testCollection,
		TokenID:           "1",
		Participants:      domain.Participants{From: domain.ETHEREUM_ZERO_ADDRESS, To: testSeller},
		Position:          domain.Position{Block: block, LogIndex: logIndex},
		BlockHash:         "0xblock",
		TxHash:            "0xtx",
		Timestamp:         testTime,
	}
}

func testNotification(id string, block uint64) *schema.Notification {
	return &schema.Notification{
		ID:                id,
		Recipient:         testSeller,
		Type:              domain.NOTIFICATION_ITEM_SOLD,
		CollectionAddress: testCollection,
		TokenID:           "1",
		Params:            datatypes.JSON(`{"price":"100"}`),
		Visible:           true,
		Timestamp:         testTime,
		BlockNumber:       block,
	}
}

func TestNormalizeConnectionPoolSettings(t *testing.T) {
	open, idle, lifetime, idleTime := NormalizeConnectionPoolSettings(0, 0, 0, 0)
	assert.Equal(t, 20, open)
	assert.Equal(t, 5, idle)
	assert.Equal(t, 5*time.Minute, lifetime)
	assert.Equal(t, 10*time.Minute, idleTime)

	open, idle, _, _ = NormalizeConnectionPoolSettings(4, 10, time.Minute, time.Minute)
	assert.Equal(t, 4, open)
	assert.Equal(t, 4, idle)
}

func TestCursor(t *testing.T) {
	s := initPGTestDB(t)
	ctx := context.Background()

	cursor, err := s.GetCursor(ctx, testChain)
	require.NoError(t, err)
	assert.Nil(t, cursor)

	want := domain.Cursor{
		Position:  domain.Position{Block: 100, LogIndex: 3},
		BlockHash: "0xabc",
		UpdatedAt: testTime,
	}
	require.NoError(t, s.SetCursor(ctx, testChain, want))

	cursor, err = s.GetCursor(ctx, testChain)
	require.NoError(t, err)
	require.NotNil(t, cursor)
	assert.Equal(t, want.Position, cursor.Position)
	assert.Equal(t, want.BlockHash, cursor.BlockHash)
	assert.True(t, want.UpdatedAt.Equal(cursor.UpdatedAt))

	// Overwrite with an end-of-block cursor
	require.NoError(t, s.SetCursor(ctx, testChain, domain.Cursor{Position: domain.EndOfBlock(120), BlockHash: "0xdef"}))
	cursor, err = s.GetCursor(ctx, testChain)
	require.NoError(t, err)
	assert.Equal(t, domain.EndOfBlock(120), cursor.Position)
	assert.Equal(t, "0xdef", cursor.BlockHash)

	other, err := s.GetCursor(ctx, domain.ChainFantomTestnet)
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestJournal(t *testing.T) {
	s := initPGTestDB(t)
	ctx := context.Background()

	err := s.WithinTransaction(ctx, func(tx Tx) error {
		for _, ev := range []domain.Event{
			testEvent(domain.EventKindMint, 10, 0),
			testEvent(domain.EventKindTransfer, 10, 4),
			testEvent(domain.EventKindTransfer, 11, 1),
			testEvent(domain.EventKindTransfer, 12, 0),
		} {
			created, err := tx.RecordEvent(ctx, ev)
			require.NoError(t, err)
			assert.True(t, created)
		}

		created, err := tx.RecordEvent(ctx, testEvent(domain.EventKindMint, 10, 0))
		require.NoError(t, err)
		assert.False(t, created, "same position is recorded once")

		conflicting := testEvent(domain.EventKindMint, 10, 0)
		conflicting.TxHash = "0xother"
		_, err = tx.RecordEvent(ctx, conflicting)
		assert.ErrorIs(t, err, domain.ErrJournalConflict)

		page, err := tx.ListEvents(ctx, testChain, domain.Position{}, 11, 2)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, domain.Position{Block: 10, LogIndex: 0}, page[0].Position)
		assert.Equal(t, domain.EventKindMint, page[0].Kind)
		assert.Equal(t, testSeller, page[0].Participants.To)
		assert.True(t, testTime.Equal(page[0].Timestamp))
		assert.Equal(t, domain.Position{Block: 10, LogIndex: 4}, page[1].Position)

		page, err = tx.ListEvents(ctx, testChain, page[1].Position, 11, 2)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, domain.Position{Block: 11, LogIndex: 1}, page[0].Position)

		return nil
	})
	require.NoError(t, err)

	events, err := s.ListTokenEvents(ctx, testCollection, "1", 10, 0)
	require.NoError(t, err)
	require.Len(t, events, 4)
	assert.Equal(t, uint64(12), events[0].BlockNumber)

	ref, err := s.JournaledBlockBefore(ctx, testChain, 12)
	require.NoError(t, err)
	require.NotNil(t, ref)
	assert.Equal(t, domain.BlockRef{Number: 11, Hash: "0xblock"}, *ref)

	ref, err = s.JournaledBlockBefore(ctx, testChain, 10)
	require.NoError(t, err)
	assert.Nil(t, ref)
}

func TestWithinTransaction_RollsBackOnError(t *testing.T) {
	s := initPGTestDB(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := s.WithinTransaction(ctx, func(tx Tx) error {
		require.NoError(t, tx.SaveNFT(ctx, &schema.NFT{
			CollectionAddress: testCollection,
			TokenID:           "1",
			Owner:             testSeller,
			Status:            schema.NFTStatusActive,
		}))
		require.NoError(t, tx.SetCursor(ctx, testChain, domain.Cursor{Position: domain.EndOfBlock(5)}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	nft, err := s.GetNFT(ctx, testCollection, "1")
	require.NoError(t, err)
	assert.Nil(t, nft)

	cursor, err := s.GetCursor(ctx, testChain)
	require.NoError(t, err)
	assert.Nil(t, cursor)
}

func TestNFTUpsertAndQuery(t *testing.T) {
	s := initPGTestDB(t)
	ctx := context.Background()

	minted := testTime
	err := s.WithinTransaction(ctx, func(tx Tx) error {
		if err := tx.SaveNFT(ctx, &schema.NFT{
			CollectionAddress: testCollection,
			TokenID:           "1",
			Owner:             testSeller,
			Creator:           testSeller,
			Royalty:           "250",
			Status:            schema.NFTStatusActive,
			MintedAt:          &minted,
			MintPos:           domain.Position{Block: 10},
			OwnerPos:          domain.Position{Block: 10},
		}); err != nil {
			return err
		}
		return tx.SaveNFT(ctx, &schema.NFT{
			CollectionAddress: testCollection,
			TokenID:           "1",
			Owner:             testBuyer,
			Creator:           testSeller,
			Royalty:           "250",
			Status:            schema.NFTStatusActive,
			MintedAt:          &minted,
			MintPos:           domain.Position{Block: 10},
			OwnerPos:          domain.Position{Block: 12, LogIndex: 2},
		})
	})
	require.NoError(t, err)

	nft, err := s.GetNFT(ctx, testCollection, "1")
	require.NoError(t, err)
	require.NotNil(t, nft)
	assert.Equal(t, testBuyer, nft.Owner)
	assert.Equal(t, "250", nft.Royalty)
	assert.Equal(t, domain.Position{Block: 12, LogIndex: 2}, nft.OwnerPos)

	owned, err := s.ListNFTs(ctx, NFTFilter{Owner: testBuyer})
	require.NoError(t, err)
	assert.Len(t, owned, 1)

	owned, err = s.ListNFTs(ctx, NFTFilter{Owner: testSeller})
	require.NoError(t, err)
	assert.Empty(t, owned)
}

func TestListings_OneActivePerNFT(t *testing.T) {
	s := initPGTestDB(t)
	ctx := context.Background()

	listing := func(block uint64, status schema.ListingStatus) *schema.Listing {
		pos := domain.Position{Block: block}
		return &schema.Listing{
			ID:                schema.PositionID(pos),
			CollectionAddress: testCollection,
			TokenID:           "1",
			Seller:            testSeller,
			Price:             "1000000000000000000000",
			Status:            status,
			ListedAt:          testTime,
			ListedPos:         pos,
			PricePos:          pos,
		}
	}

	err := s.WithinTransaction(ctx, func(tx Tx) error {
		require.NoError(t, tx.SaveListing(ctx, listing(10, schema.ListingStatusActive)))
		return tx.SaveListing(ctx, listing(11, schema.ListingStatusActive))
	})
	require.Error(t, err)

	err = s.WithinTransaction(ctx, func(tx Tx) error {
		require.NoError(t, tx.SaveListing(ctx, listing(10, schema.ListingStatusCancelled)))
		require.NoError(t, tx.SaveListing(ctx, listing(11, schema.ListingStatusActive)))

		listings, err := tx.ListTokenListings(ctx, testCollection, "1")
		require.NoError(t, err)
		require.Len(t, listings, 2)
		assert.Equal(t, "10-0", listings[0].ID)
		assert.Equal(t, "1000000000000000000000", listings[1].Price)
		return nil
	})
	require.NoError(t, err)

	active, err := s.ListListings(ctx, ListingFilter{Collection: testCollection, Status: schema.ListingStatusActive})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "11-0", active[0].ID)
}

func TestGetLatestAuction(t *testing.T) {
	s := initPGTestDB(t)
	ctx := context.Background()

	auction, bid, err := s.GetLatestAuction(ctx, testCollection, "1")
	require.NoError(t, err)
	assert.Nil(t, auction)
	assert.Nil(t, bid)

	err = s.WithinTransaction(ctx, func(tx Tx) error {
		for _, block := range []uint64{10, 20} {
			pos := domain.Position{Block: block}
			require.NoError(t, tx.SaveAuction(ctx, &schema.Auction{
				ID:                schema.PositionID(pos),
				CollectionAddress: testCollection,
				TokenID:           "1",
				Seller:            testSeller,
				StartTime:         testTime,
				EndTime:           testTime.Add(time.Hour),
				Status:            schema.AuctionStatusActive,
				CreatedPos:        pos,
			}))
		}
		return tx.SaveHighestBid(ctx, &schema.HighestBid{
			AuctionID: "20-0",
			Bidder:    testBuyer,
			Bid:       "500",
			BidAt:     testTime,
			BidPos:    domain.Position{Block: 21},
		})
	})
	require.NoError(t, err)

	auction, bid, err = s.GetLatestAuction(ctx, testCollection, "1")
	require.NoError(t, err)
	require.NotNil(t, auction)
	require.NotNil(t, bid)
	assert.Equal(t, "20-0", auction.ID)
	assert.Equal(t, testBuyer, bid.Bidder)
	assert.Equal(t, "500", bid.Bid)
}

func TestNotifications(t *testing.T) {
	s := initPGTestDB(t)
	ctx := context.Background()

	err := s.WithinTransaction(ctx, func(tx Tx) error {
		created, err := tx.CreateNotification(ctx, testNotification("n1", 10))
		require.NoError(t, err)
		assert.True(t, created)

		created, err = tx.CreateNotification(ctx, testNotification("n1", 10))
		require.NoError(t, err)
		assert.False(t, created)
		return nil
	})
	require.NoError(t, err)

	hidden, err := s.HideNotification(ctx, "n1")
	require.NoError(t, err)
	assert.True(t, hidden)

	hidden, err = s.HideNotification(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, hidden)

	visible, err := s.ListNotifications(ctx, testSeller, false, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, visible)

	all, err := s.ListNotifications(ctx, testSeller, true, 10, 0)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].Visible)

	// Re-inserting during a rebuild keeps the hidden flag
	err = s.WithinTransaction(ctx, func(tx Tx) error {
		_, err := tx.CreateNotification(ctx, testNotification("n1", 10))
		return err
	})
	require.NoError(t, err)
	all, err = s.ListNotifications(ctx, testSeller, true, 10, 0)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].Visible)
}

func TestResetProjections(t *testing.T) {
	s := initPGTestDB(t)
	ctx := context.Background()

	err := s.WithinTransaction(ctx, func(tx Tx) error {
		for _, ev := range []domain.Event{
			testEvent(domain.EventKindMint, 10, 0),
			testEvent(domain.EventKindTransfer, 15, 0),
		} {
			if _, err := tx.RecordEvent(ctx, ev); err != nil {
				return err
			}
		}
		if _, err := tx.CreateNotification(ctx, testNotification("keep", 10)); err != nil {
			return err
		}
		if _, err := tx.CreateNotification(ctx, testNotification("orphan", 15)); err != nil {
			return err
		}
		if err := tx.SaveCollection(ctx, &schema.Collection{ContractAddress: testCollection, NumberOfItems: 1}); err != nil {
			return err
		}
		if err := tx.SaveVerification(ctx, &schema.Verification{Address: testSeller, Verified: true}); err != nil {
			return err
		}
		if err := tx.SaveSuggestion(ctx, testSuggestion("1", testSeller, 10)); err != nil {
			return err
		}
		return tx.SaveNFT(ctx, &schema.NFT{
			CollectionAddress: testCollection,
			TokenID:           "1",
			Owner:             testSeller,
			Status:            schema.NFTStatusActive,
		})
	})
	require.NoError(t, err)

	err = s.WithinTransaction(ctx, func(tx Tx) error {
		if err := tx.ResetProjections(ctx, testChain, 12); err != nil {
			return err
		}

		events, err := tx.ListEvents(ctx, testChain, domain.Position{}, 100, 10)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, uint64(10), events[0].Position.Block)

		nft, err := tx.GetNFT(ctx, testCollection, "1")
		require.NoError(t, err)
		assert.Nil(t, nft)

		collection, err := tx.GetCollection(ctx, testCollection)
		require.NoError(t, err)
		assert.Nil(t, collection)

		verification, err := tx.GetVerification(ctx, testSeller)
		require.NoError(t, err)
		assert.Nil(t, verification)

		suggestion, err := tx.GetSuggestion(ctx, "1")
		require.NoError(t, err)
		assert.Nil(t, suggestion)
		return nil
	})
	require.NoError(t, err)

	notifications, err := s.ListNotifications(ctx, testSeller, true, 10, 0)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "keep", notifications[0].ID)
}

func TestListCollectionAddresses(t *testing.T) {
	s := initPGTestDB(t)
	ctx := context.Background()

	err := s.WithinTransaction(ctx, func(tx Tx) error {
		for _, addr := range []string{testSeller, testCollection} {
			if err := tx.SaveCollection(ctx, &schema.Collection{ContractAddress: addr}); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	addresses, err := s.ListCollectionAddresses(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{testSeller, testCollection}, addresses)
}

func testSuggestion(id, proposer string, block uint64) *schema.Suggestion {
	return &schema.Suggestion{
		ID:         id,
		Proposer:   proposer,
		Title:      "Suggestion " + id,
		Goal:       "1000000000000000000000",
		Raised:     "0",
		Status:     schema.SuggestionStatusInProgress,
		CreatedAt:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		CreatedPos: domain.Position{Block: block},
	}
}

func TestSuggestions(t *testing.T) {
	s := initPGTestDB(t)
	ctx := context.Background()

	err := s.WithinTransaction(ctx, func(tx Tx) error {
		if err := tx.SaveSuggestion(ctx, testSuggestion("1", testSeller, 10)); err != nil {
			return err
		}
		second := testSuggestion("2", testBuyer, 11)
		second.Status = schema.SuggestionStatusCompleted
		if err := tx.SaveSuggestion(ctx, second); err != nil {
			return err
		}
		for _, d := range []schema.SuggestionDeposit{
			{ID: "13-0", SuggestionID: "1", Depositor: testBuyer, Amount: "5", DepositedAt: time.Now(), Pos: domain.Position{Block: 13}},
			{ID: "12-1", SuggestionID: "1", Depositor: testSeller, Amount: "7", DepositedAt: time.Now(), Pos: domain.Position{Block: 12, LogIndex: 1}},
		} {
			if err := tx.SaveSuggestionDeposit(ctx, &d); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	suggestions, err := s.ListSuggestions(ctx, SuggestionFilter{})
	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	assert.Equal(t, "2", suggestions[0].ID)
	assert.Equal(t, "1000000000000000000000", suggestions[0].Goal)

	suggestions, err = s.ListSuggestions(ctx, SuggestionFilter{Proposer: testSeller, Status: schema.SuggestionStatusInProgress})
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "1", suggestions[0].ID)

	deposits, err := s.ListSuggestionDeposits(ctx, "1")
	require.NoError(t, err)
	require.Len(t, deposits, 2)
	assert.Equal(t, "12-1", deposits[0].ID)
	assert.Equal(t, "13-0", deposits[1].ID)

	missing, err := s.GetSuggestion(ctx, "9")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
