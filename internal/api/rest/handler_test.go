package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-marketplace-indexer/internal/api/middleware"
	"github.com/feral-file/ff-marketplace-indexer/internal/api/rest"
	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
	"github.com/feral-file/ff-marketplace-indexer/internal/logger"
	"github.com/feral-file/ff-marketplace-indexer/internal/mocks"
	"github.com/feral-file/ff-marketplace-indexer/internal/scheduler"
	"github.com/feral-file/ff-marketplace-indexer/internal/store"
	"github.com/feral-file/ff-marketplace-indexer/internal/store/schema"
	"github.com/feral-file/ff-marketplace-indexer/internal/store/storetest"
)

const (
	apiKey     = "test-api-key"
	collection = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	alice      = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	bob        = "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC"
	carol      = "0x90F79bf6EB2c4f870365E785982E1f101E93b906"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type testAPI struct {
	router    *gin.Engine
	store     *storetest.MemoryStore
	scheduler *mocks.MockScheduler
	now       time.Time
}

func setupTestAPI(t *testing.T) *testAPI {
	t.Helper()
	ctrl := gomock.NewController(t)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()

	st := storetest.NewMemoryStore()
	sched := mocks.NewMockScheduler(ctrl)

	auth, err := middleware.NewAuthenticator(middleware.AuthConfig{APIKeys: []string{apiKey}})
	require.NoError(t, err)

	router := gin.New()
	rest.SetupRoutes(router, rest.NewHandler(st, sched, clock), auth)

	return &testAPI{router: router, store: st, scheduler: sched, now: now}
}

func (a *testAPI) seed(t *testing.T, fn func(tx store.Tx) error) {
	t.Helper()
	require.NoError(t, a.store.WithinTransaction(context.Background(), fn))
}

func (a *testAPI) do(method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestGetNFT(t *testing.T) {
	api := setupTestAPI(t)
	api.seed(t, func(tx store.Tx) error {
		return tx.SaveNFT(context.Background(), &schema.NFT{
			CollectionAddress: collection,
			TokenID:           "1",
			Owner:             alice,
			Creator:           alice,
			Royalty:           "250",
			Status:            schema.NFTStatusActive,
			MintPos:           domain.Position{Block: 100, LogIndex: 2},
		})
	})

	// Lowercase addresses are checksummed before lookup
	w := api.do(http.MethodGet, "/api/v1/nfts/"+strings.ToLower(collection)+"/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	nft := decode[rest.NFTResponse](t, w)
	assert.Equal(t, collection, nft.CollectionAddress)
	assert.Equal(t, alice, nft.Owner)
	assert.Equal(t, "250", nft.Royalty)
	assert.Equal(t, uint64(100), nft.MintPosition.Block)

	w = api.do(http.MethodGet, "/api/v1/nfts/"+collection+"/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(http.MethodGet, "/api/v1/nfts/not-an-address/1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodGet, "/api/v1/nfts/"+collection+"/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListNFTs(t *testing.T) {
	api := setupTestAPI(t)
	api.seed(t, func(tx store.Tx) error {
		for i, owner := range []string{alice, bob, alice} {
			if err := tx.SaveNFT(context.Background(), &schema.NFT{
				CollectionAddress: collection,
				TokenID:           fmt.Sprint(i + 1),
				Owner:             owner,
				Status:            schema.NFTStatusActive,
			}); err != nil {
				return err
			}
		}
		return nil
	})

	w := api.do(http.MethodGet, "/api/v1/nfts?owner="+alice, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[rest.ListResponse[rest.NFTResponse]](t, w)
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, 20, resp.Limit)

	w = api.do(http.MethodGet, "/api/v1/nfts?limit=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[rest.ListResponse[rest.NFTResponse]](t, w)
	assert.Len(t, resp.Items, 1)

	w = api.do(http.MethodGet, "/api/v1/nfts?owner=bogus", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"validation_failed"`)

	w = api.do(http.MethodGet, "/api/v1/nfts?offset=-1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCollections(t *testing.T) {
	api := setupTestAPI(t)
	api.seed(t, func(tx store.Tx) error {
		return tx.SaveCollection(context.Background(), &schema.Collection{
			ContractAddress: collection,
			Name:            "Genesis",
			Creator:         alice,
			NumberOfItems:   3,
		})
	})

	w := api.do(http.MethodGet, "/api/v1/collections/"+collection, "")
	require.Equal(t, http.StatusOK, w.Code)
	c := decode[rest.CollectionResponse](t, w)
	assert.Equal(t, "Genesis", c.Name)
	assert.Equal(t, int64(3), c.NumberOfItems)

	w = api.do(http.MethodGet, "/api/v1/collections/"+bob, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(http.MethodGet, "/api/v1/collections", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[rest.ListResponse[rest.CollectionResponse]](t, w).Items, 1)
}

func TestListListings(t *testing.T) {
	api := setupTestAPI(t)
	api.seed(t, func(tx store.Tx) error {
		listings := []schema.Listing{
			{ID: "100-1", Seller: alice, Price: "10", Status: schema.ListingStatusSold, Buyer: bob, ListedPos: domain.Position{Block: 100, LogIndex: 1}},
			{ID: "110-1", Seller: bob, Price: "12", Status: schema.ListingStatusActive, ListedPos: domain.Position{Block: 110, LogIndex: 1}},
		}
		for i := range listings {
			listings[i].CollectionAddress = collection
			listings[i].TokenID = "1"
			if err := tx.SaveListing(context.Background(), &listings[i]); err != nil {
				return err
			}
		}
		return nil
	})

	w := api.do(http.MethodGet, "/api/v1/listings?collection="+collection+"&token_id=1&status=active", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[rest.ListResponse[rest.ListingResponse]](t, w)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, bob, resp.Items[0].Seller)
	assert.Equal(t, "12", resp.Items[0].Price)

	w = api.do(http.MethodGet, "/api/v1/listings?status=pending", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListOffers_DerivesExpiry(t *testing.T) {
	api := setupTestAPI(t)
	api.seed(t, func(tx store.Tx) error {
		offers := []schema.Offer{
			{ID: "open", Creator: alice, Status: schema.OfferStatusOpen, Deadline: api.now.Add(time.Hour), CreatedPos: domain.Position{Block: 103}},
			{ID: "expired", Creator: carol, Status: schema.OfferStatusOpen, Deadline: api.now.Add(-time.Hour), CreatedPos: domain.Position{Block: 102}},
			{ID: "accepted", Creator: bob, Status: schema.OfferStatusAccepted, Deadline: api.now.Add(-time.Hour), AcceptedBy: alice, CreatedPos: domain.Position{Block: 101}},
		}
		for i := range offers {
			offers[i].CollectionAddress = collection
			offers[i].TokenID = "1"
			offers[i].Price = "5"
			if err := tx.SaveOffer(context.Background(), &offers[i]); err != nil {
				return err
			}
		}
		return nil
	})

	statuses := func(w *httptest.ResponseRecorder) map[string]string {
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		out := map[string]string{}
		for _, o := range decode[rest.ListResponse[rest.OfferResponse]](t, w).Items {
			out[o.ID] = o.Status
		}
		return out
	}

	assert.Equal(t, map[string]string{
		"open":     "open",
		"expired":  "expired",
		"accepted": "accepted",
	}, statuses(api.do(http.MethodGet, "/api/v1/offers?collection="+collection+"&token_id=1", "")))

	assert.Equal(t, map[string]string{"open": "open"},
		statuses(api.do(http.MethodGet, "/api/v1/offers?status=open", "")))

	assert.Equal(t, map[string]string{"expired": "expired"},
		statuses(api.do(http.MethodGet, "/api/v1/offers?status=expired", "")))

	assert.Equal(t, map[string]string{"accepted": "accepted"},
		statuses(api.do(http.MethodGet, "/api/v1/offers?creator="+bob, "")))

	assert.Equal(t, map[string]string{"expired": "expired"},
		statuses(api.do(http.MethodGet, "/api/v1/offers?creator="+carol, "")))
}

func TestGetAuction(t *testing.T) {
	api := setupTestAPI(t)
	start := api.now.Add(-time.Hour)
	api.seed(t, func(tx store.Tx) error {
		ctx := context.Background()
		if err := tx.SaveAuction(ctx, &schema.Auction{
			ID:                "120-0",
			CollectionAddress: collection,
			TokenID:           "1",
			Seller:            alice,
			ReservePrice:      "100",
			BuyNowPrice:       "0",
			StartTime:         start,
			EndTime:           start.Add(2 * time.Hour),
			Status:            schema.AuctionStatusActive,
			CreatedPos:        domain.Position{Block: 120},
		}); err != nil {
			return err
		}
		return tx.SaveHighestBid(ctx, &schema.HighestBid{
			AuctionID: "120-0",
			Bidder:    bob,
			Bid:       "150",
			BidAt:     api.now,
			BidPos:    domain.Position{Block: 121},
		})
	})

	w := api.do(http.MethodGet, "/api/v1/auctions/"+collection+"/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	auction := decode[rest.AuctionResponse](t, w)
	assert.Equal(t, "100", auction.ReservePrice)
	assert.Empty(t, auction.WinningBid)
	require.NotNil(t, auction.HighestBid)
	assert.Equal(t, bob, auction.HighestBid.Bidder)
	assert.Equal(t, "150", auction.HighestBid.Bid)

	w = api.do(http.MethodGet, "/api/v1/auctions/"+collection+"/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNotifications(t *testing.T) {
	api := setupTestAPI(t)
	api.seed(t, func(tx store.Tx) error {
		for i, id := range []string{"n1", "n2"} {
			if _, err := tx.CreateNotification(context.Background(), &schema.Notification{
				ID:          id,
				Recipient:   alice,
				Type:        "nft_sold",
				Params:      []byte(`{"price":"10"}`),
				Visible:     true,
				Timestamp:   api.now.Add(time.Duration(i) * time.Minute),
				BlockNumber: uint64(100 + i),
			}); err != nil {
				return err
			}
		}
		return nil
	})

	list := func(query string) []rest.NotificationResponse {
		w := api.do(http.MethodGet, "/api/v1/notifications?"+query, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		return decode[rest.ListResponse[rest.NotificationResponse]](t, w).Items
	}

	items := list("recipient=" + strings.ToLower(alice))
	require.Len(t, items, 2)
	assert.Equal(t, "n2", items[0].ID)
	assert.JSONEq(t, `{"price":"10"}`, string(items[0].Params))

	// Hiding requires authentication
	w := api.do(http.MethodPost, "/api/v1/notifications/n1/hide", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(http.MethodPost, "/api/v1/notifications/n1/hide", "", "Authorization", "ApiKey "+apiKey)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = api.do(http.MethodPost, "/api/v1/notifications/missing/hide", "", "Authorization", "ApiKey "+apiKey)
	assert.Equal(t, http.StatusNotFound, w.Code)

	items = list("recipient=" + alice)
	require.Len(t, items, 1)
	assert.Equal(t, "n2", items[0].ID)
	assert.Len(t, list("recipient="+alice+"&include_hidden=true"), 2)

	w = api.do(http.MethodGet, "/api/v1/notifications", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListEvents(t *testing.T) {
	api := setupTestAPI(t)
	api.seed(t, func(tx store.Tx) error {
		for _, p := range []domain.Position{{Block: 100, LogIndex: 1}, {Block: 101, LogIndex: 0}} {
			if _, err := tx.RecordEvent(context.Background(), domain.Event{
				Kind:              domain.EventKindTransfer,
				Chain:             domain.ChainEthereumMainnet,
				Contract:          collection,
				CollectionAddress: collection,
				TokenID:           "1",
				Participants:      domain.Participants{From: alice, To: bob},
				Position:          p,
				BlockHash:         fmt.Sprintf("0x%064x", p.Block),
				TxHash:            fmt.Sprintf("0x%064x", p.Block+1),
				Timestamp:         api.now,
			}); err != nil {
				return err
			}
		}
		return nil
	})

	w := api.do(http.MethodGet, "/api/v1/events?collection="+collection+"&token_id=1", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	items := decode[rest.ListResponse[rest.EventResponse]](t, w).Items
	require.Len(t, items, 2)
	assert.Equal(t, uint64(101), items[0].BlockNumber)
	assert.Equal(t, uint64(100), items[1].BlockNumber)
	assert.Equal(t, string(domain.EventKindTransfer), items[0].Kind)

	w = api.do(http.MethodGet, "/api/v1/events?collection="+collection, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetVerification(t *testing.T) {
	api := setupTestAPI(t)
	api.seed(t, func(tx store.Tx) error {
		return tx.SaveVerification(context.Background(), &schema.Verification{Address: alice, Verified: true})
	})

	w := api.do(http.MethodGet, "/api/v1/verifications/"+alice, "")
	require.Equal(t, http.StatusOK, w.Code)
	v := decode[rest.VerificationResponse](t, w)
	assert.True(t, v.Verified)
	assert.False(t, v.Inversor)

	w = api.do(http.MethodGet, "/api/v1/verifications/"+bob, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[rest.VerificationResponse](t, w).Verified)
}

func TestSuggestions(t *testing.T) {
	api := setupTestAPI(t)
	api.seed(t, func(tx store.Tx) error {
		ctx := context.Background()
		for _, s := range []schema.Suggestion{
			{ID: "1", Proposer: alice, Title: "Studio", Goal: "100", Raised: "100", Status: schema.SuggestionStatusCompleted, CreatedPos: domain.Position{Block: 100}},
			{ID: "2", Proposer: bob, Title: "Residency", Goal: "50", Raised: "20", Status: schema.SuggestionStatusInProgress, CreatedPos: domain.Position{Block: 101}},
		} {
			if err := tx.SaveSuggestion(ctx, &s); err != nil {
				return err
			}
		}
		return tx.SaveSuggestionDeposit(ctx, &schema.SuggestionDeposit{
			ID: "102-0", SuggestionID: "2", Depositor: carol, Amount: "20", Pos: domain.Position{Block: 102},
		})
	})

	w := api.do(http.MethodGet, "/api/v1/suggestions", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	items := decode[rest.ListResponse[rest.SuggestionResponse]](t, w).Items
	require.Len(t, items, 2)
	assert.Equal(t, "2", items[0].ID)
	assert.Empty(t, items[0].Deposits)

	w = api.do(http.MethodGet, "/api/v1/suggestions?status=completed&proposer="+strings.ToLower(alice), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	items = decode[rest.ListResponse[rest.SuggestionResponse]](t, w).Items
	require.Len(t, items, 1)
	assert.Equal(t, "Studio", items[0].Title)

	w = api.do(http.MethodGet, "/api/v1/suggestions/2", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	one := decode[rest.SuggestionResponse](t, w)
	assert.Equal(t, "20", one.Raised)
	assert.Equal(t, string(schema.SuggestionStatusInProgress), one.Status)
	require.Len(t, one.Deposits, 1)
	assert.Equal(t, carol, one.Deposits[0].Depositor)

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/v1/suggestions/9", "").Code)
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodGet, "/api/v1/suggestions/abc", "").Code)
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodGet, "/api/v1/suggestions?status=funded", "").Code)
}

func TestSyncStatus(t *testing.T) {
	api := setupTestAPI(t)
	api.scheduler.EXPECT().Status(gomock.Any()).Return(scheduler.Status{
		Chain:           domain.ChainEthereumMainnet,
		Cursor:          domain.Cursor{Position: domain.EndOfBlock(150)},
		ConfirmedHeight: 160,
		Lag:             10,
	}, nil)

	w := api.do(http.MethodGet, "/api/v1/sync/status", "")
	require.Equal(t, http.StatusOK, w.Code)
	status := decode[scheduler.Status](t, w)
	assert.Equal(t, uint64(160), status.ConfirmedHeight)
	assert.Equal(t, uint64(10), status.Lag)
	assert.Equal(t, uint64(150), status.Cursor.Position.Block)
}

func TestResync(t *testing.T) {
	auth := []string{"Authorization", "ApiKey " + apiKey}

	t.Run("requires authentication", func(t *testing.T) {
		api := setupTestAPI(t)
		w := api.do(http.MethodPost, "/api/v1/sync/resync", `{"from_block":120}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("requires from_block", func(t *testing.T) {
		api := setupTestAPI(t)
		w := api.do(http.MethodPost, "/api/v1/sync/resync", `{}`, auth...)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rewinds the cursor", func(t *testing.T) {
		api := setupTestAPI(t)
		api.scheduler.EXPECT().Resync(gomock.Any(), uint64(120)).
			Return(domain.Cursor{Position: domain.EndOfBlock(119)}, nil)

		w := api.do(http.MethodPost, "/api/v1/sync/resync", `{"from_block":120}`, auth...)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		resp := decode[struct {
			Cursor domain.Cursor `json:"cursor"`
		}](t, w)
		assert.Equal(t, uint64(119), resp.Cursor.Position.Block)
	})

	t.Run("rejects a position ahead of the cursor", func(t *testing.T) {
		api := setupTestAPI(t)
		api.scheduler.EXPECT().Resync(gomock.Any(), uint64(900)).
			Return(domain.Cursor{}, fmt.Errorf("%w: ahead of cursor", domain.ErrInvalidResyncPosition))

		w := api.do(http.MethodPost, "/api/v1/sync/resync", `{"from_block":900}`, auth...)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"validation_failed"`)
	})

	t.Run("internal failure", func(t *testing.T) {
		api := setupTestAPI(t)
		api.scheduler.EXPECT().Resync(gomock.Any(), uint64(120)).
			Return(domain.Cursor{}, errors.New("db down"))

		w := api.do(http.MethodPost, "/api/v1/sync/resync", `{"from_block":120}`, auth...)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "db down")
	})
}

func TestHealthCheck(t *testing.T) {
	api := setupTestAPI(t)
	w := api.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "marketplace_indexer_")
}
