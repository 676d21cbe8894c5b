package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace-indexer/internal/adapter"
	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
	"github.com/feral-file/ff-marketplace-indexer/internal/scheduler"
	"github.com/feral-file/ff-marketplace-indexer/internal/store"
	"github.com/feral-file/ff-marketplace-indexer/internal/store/schema"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetNFT retrieves a single NFT
	// GET /api/v1/nfts/:collection/:token_id
	GetNFT(c *gin.Context)

	// ListNFTs retrieves NFTs with optional filters
	// GET /api/v1/nfts?owner=<address>&creator=<address>&collection=<address>&limit=<limit>&offset=<offset>
	ListNFTs(c *gin.Context)

	// GetCollection retrieves a single collection
	// GET /api/v1/collections/:address
	GetCollection(c *gin.Context)

	// ListCollections retrieves collections
	// GET /api/v1/collections?limit=<limit>&offset=<offset>
	ListCollections(c *gin.Context)

	// ListListings retrieves listings with optional filters
	// GET /api/v1/listings?collection=<address>&token_id=<id>&seller=<address>&status=<status>
	ListListings(c *gin.Context)

	// ListOffers retrieves offers with optional filters. An open offer past its deadline is reported as expired.
	// GET /api/v1/offers?collection=<address>&token_id=<id>&creator=<address>&status=<status>
	ListOffers(c *gin.Context)

	// GetAuction retrieves the latest auction of an NFT with its highest bid
	// GET /api/v1/auctions/:collection/:token_id
	GetAuction(c *gin.Context)

	// ListNotifications retrieves the notifications of a recipient
	// GET /api/v1/notifications?recipient=<address>&include_hidden=<bool>
	ListNotifications(c *gin.Context)

	// HideNotification hides a notification (requires authentication)
	// POST /api/v1/notifications/:id/hide
	HideNotification(c *gin.Context)

	// ListEvents retrieves the journaled events of an NFT, newest first
	// GET /api/v1/events?collection=<address>&token_id=<id>
	ListEvents(c *gin.Context)

	// GetVerification retrieves the verification state of an address
	// GET /api/v1/verifications/:address
	GetVerification(c *gin.Context)

	// ListSuggestions retrieves community suggestions, newest first
	// GET /api/v1/suggestions?proposer=<address>&status=<status>
	ListSuggestions(c *gin.Context)

	// GetSuggestion retrieves a community suggestion with its deposits
	// GET /api/v1/suggestions/:id
	GetSuggestion(c *gin.Context)

	// GetSyncStatus returns the cursor and confirmed height
	// GET /api/v1/sync/status
	GetSyncStatus(c *gin.Context)

	// Resync rebuilds the read models and rewinds the cursor (requires authentication)
	// POST /api/v1/sync/resync
	Resync(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	store     store.Store
	scheduler scheduler.Scheduler
	clock     adapter.Clock
}

// NewHandler creates a new REST API handler
func NewHandler(st store.Store, sched scheduler.Scheduler, clock adapter.Clock) Handler {
	return &handler{
		store:     st,
		scheduler: sched,
		clock:     clock,
	}
}

// tokenParams reads and normalizes the :collection and :token_id path parameters
func tokenParams(c *gin.Context) (collection string, tokenID string, ok bool) {
	collection = c.Param("collection")
	tokenID = c.Param("token_id")
	if err := normalizeAddress("collection", &collection); err != nil || collection == "" {
		respondBadRequest(c, "Invalid collection address")
		return "", "", false
	}
	if err := validateTokenID(tokenID); err != nil || tokenID == "" {
		respondBadRequest(c, "Invalid token ID")
		return "", "", false
	}
	return collection, tokenID, true
}

func (h *handler) GetNFT(c *gin.Context) {
	collection, tokenID, ok := tokenParams(c)
	if !ok {
		return
	}

	nft, err := h.store.GetNFT(c.Request.Context(), collection, tokenID)
	if err != nil {
		respondInternalError(c, err, "Failed to get NFT")
		return
	}
	if nft == nil {
		respondNotFound(c, "NFT not found")
		return
	}

	c.JSON(http.StatusOK, toNFTResponse(*nft))
}

func (h *handler) ListNFTs(c *gin.Context) {
	params, err := ParseListNFTsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	nfts, err := h.store.ListNFTs(c.Request.Context(), store.NFTFilter{
		Owner:      params.Owner,
		Creator:    params.Creator,
		Collection: params.Collection,
		Limit:      params.Limit,
		Offset:     params.Offset,
	})
	if err != nil {
		respondInternalError(c, err, "Failed to list NFTs")
		return
	}

	c.JSON(http.StatusOK, newListResponse(nfts, params.Pagination, toNFTResponse))
}

func (h *handler) GetCollection(c *gin.Context) {
	address := c.Param("address")
	if err := normalizeAddress("collection", &address); err != nil || address == "" {
		respondBadRequest(c, "Invalid collection address")
		return
	}

	collection, err := h.store.GetCollection(c.Request.Context(), address)
	if err != nil {
		respondInternalError(c, err, "Failed to get collection")
		return
	}
	if collection == nil {
		respondNotFound(c, "Collection not found")
		return
	}

	c.JSON(http.StatusOK, toCollectionResponse(*collection))
}

func (h *handler) ListCollections(c *gin.Context) {
	params, err := ParseListCollectionsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	collections, err := h.store.ListCollections(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondInternalError(c, err, "Failed to list collections")
		return
	}

	c.JSON(http.StatusOK, newListResponse(collections, params.Pagination, toCollectionResponse))
}

func (h *handler) ListListings(c *gin.Context) {
	params, err := ParseListListingsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	listings, err := h.store.ListListings(c.Request.Context(), store.ListingFilter{
		Collection: params.Collection,
		TokenID:    params.TokenID,
		Seller:     params.Seller,
		Status:     schema.ListingStatus(params.Status),
		Limit:      params.Limit,
		Offset:     params.Offset,
	})
	if err != nil {
		respondInternalError(c, err, "Failed to list listings")
		return
	}

	c.JSON(http.StatusOK, newListResponse(listings, params.Pagination, toListingResponse))
}

func (h *handler) ListOffers(c *gin.Context) {
	params, err := ParseListOffersQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	now := h.clock.Now()
	filter := store.OfferFilter{
		Collection: params.Collection,
		TokenID:    params.TokenID,
		Creator:    params.Creator,
		Status:     schema.OfferStatus(params.Status),
		Limit:      params.Limit,
		Offset:     params.Offset,
	}
	switch params.Status {
	case string(schema.OfferStatusOpen):
		filter.DeadlineAfter = &now
	case OfferStatusExpired:
		filter.Status = schema.OfferStatusOpen
		filter.DeadlineNotAfter = &now
	}

	offers, err := h.store.ListOffers(c.Request.Context(), filter)
	if err != nil {
		respondInternalError(c, err, "Failed to list offers")
		return
	}

	c.JSON(http.StatusOK, newListResponse(offers, params.Pagination, offerConverter(now)))
}

func (h *handler) GetAuction(c *gin.Context) {
	collection, tokenID, ok := tokenParams(c)
	if !ok {
		return
	}

	auction, bid, err := h.store.GetLatestAuction(c.Request.Context(), collection, tokenID)
	if err != nil {
		respondInternalError(c, err, "Failed to get auction")
		return
	}
	if auction == nil {
		respondNotFound(c, "Auction not found")
		return
	}

	c.JSON(http.StatusOK, toAuctionResponse(*auction, bid))
}

func (h *handler) ListNotifications(c *gin.Context) {
	params, err := ParseListNotificationsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	notifications, err := h.store.ListNotifications(c.Request.Context(),
		params.Recipient, params.IncludeHidden, params.Limit, params.Offset)
	if err != nil {
		respondInternalError(c, err, "Failed to list notifications")
		return
	}

	c.JSON(http.StatusOK, newListResponse(notifications, params.Pagination, toNotificationResponse))
}

func (h *handler) HideNotification(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Notification ID is required")
		return
	}

	found, err := h.store.HideNotification(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "Failed to hide notification", zap.String("id", id))
		return
	}
	if !found {
		respondNotFound(c, "Notification not found")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) ListEvents(c *gin.Context) {
	params, err := ParseListEventsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	events, err := h.store.ListTokenEvents(c.Request.Context(),
		params.Collection, params.TokenID, params.Limit, params.Offset)
	if err != nil {
		respondInternalError(c, err, "Failed to list events")
		return
	}

	c.JSON(http.StatusOK, newListResponse(events, params.Pagination, toEventResponse))
}

func (h *handler) GetVerification(c *gin.Context) {
	address := c.Param("address")
	if err := normalizeAddress("account", &address); err != nil || address == "" {
		respondBadRequest(c, "Invalid address")
		return
	}

	verification, err := h.store.GetVerification(c.Request.Context(), address)
	if err != nil {
		respondInternalError(c, err, "Failed to get verification")
		return
	}

	// Unknown addresses are simply not verified
	resp := VerificationResponse{Address: address}
	if verification != nil {
		resp.Verified = verification.Verified
		resp.Inversor = verification.Inversor
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) ListSuggestions(c *gin.Context) {
	params, err := ParseListSuggestionsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	suggestions, err := h.store.ListSuggestions(c.Request.Context(), store.SuggestionFilter{
		Proposer: params.Proposer,
		Status:   schema.SuggestionStatus(params.Status),
		Limit:    params.Limit,
		Offset:   params.Offset,
	})
	if err != nil {
		respondInternalError(c, err, "Failed to list suggestions")
		return
	}

	c.JSON(http.StatusOK, newListResponse(suggestions, params.Pagination, toSuggestionResponse))
}

func (h *handler) GetSuggestion(c *gin.Context) {
	id := c.Param("id")
	if _, ok := domain.ParseAmount(id); !ok {
		respondBadRequest(c, "Invalid suggestion ID")
		return
	}

	ctx := c.Request.Context()
	suggestion, err := h.store.GetSuggestion(ctx, id)
	if err != nil {
		respondInternalError(c, err, "Failed to get suggestion", zap.String("id", id))
		return
	}
	if suggestion == nil {
		respondNotFound(c, "Suggestion not found")
		return
	}

	deposits, err := h.store.ListSuggestionDeposits(ctx, id)
	if err != nil {
		respondInternalError(c, err, "Failed to list suggestion deposits", zap.String("id", id))
		return
	}

	resp := toSuggestionResponse(*suggestion)
	for _, d := range deposits {
		resp.Deposits = append(resp.Deposits, toSuggestionDepositResponse(d))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetSyncStatus(c *gin.Context) {
	status, err := h.scheduler.Status(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to get sync status")
		return
	}

	c.JSON(http.StatusOK, status)
}

func (h *handler) Resync(c *gin.Context) {
	var req ResyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	cursor, err := h.scheduler.Resync(c.Request.Context(), *req.FromBlock)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidResyncPosition) {
			respondValidationError(c, err.Error())
			return
		}
		respondInternalError(c, err, "Failed to resync", zap.Uint64("fromBlock", *req.FromBlock))
		return
	}

	c.JSON(http.StatusOK, gin.H{"cursor": cursor})
}

func (h *handler) HealthCheck(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		respondServiceUnavailable(c, "Database unavailable", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
