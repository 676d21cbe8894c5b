package rest

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
	"github.com/feral-file/ff-marketplace-indexer/internal/store/schema"
)

const MAX_PAGE_SIZE = 100

// OfferStatusExpired is the read-time status of an open offer past its deadline
const OfferStatusExpired = "expired"

// Pagination holds the limit/offset pair shared by list endpoints
type Pagination struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

func (p *Pagination) normalize() error {
	if p.Limit < 0 || p.Offset < 0 {
		return fmt.Errorf("limit and offset must not be negative")
	}
	if p.Limit == 0 || p.Limit > MAX_PAGE_SIZE {
		p.Limit = MAX_PAGE_SIZE
	}
	return nil
}

// ListNFTsQueryParams holds query parameters for GET /nfts
type ListNFTsQueryParams struct {
	Owner      string `form:"owner"`
	Creator    string `form:"creator"`
	Collection string `form:"collection"`
	Pagination
}

// ListCollectionsQueryParams holds query parameters for GET /collections
type ListCollectionsQueryParams struct {
	Pagination
}

// ListListingsQueryParams holds query parameters for GET /listings
type ListListingsQueryParams struct {
	Collection string `form:"collection"`
	TokenID    string `form:"token_id"`
	Seller     string `form:"seller"`
	Status     string `form:"status"`
	Pagination
}

// ListOffersQueryParams holds query parameters for GET /offers
type ListOffersQueryParams struct {
	Collection string `form:"collection"`
	TokenID    string `form:"token_id"`
	Creator    string `form:"creator"`
	Status     string `form:"status"`
	Pagination
}

// ListNotificationsQueryParams holds query parameters for GET /notifications
type ListNotificationsQueryParams struct {
	Recipient     string `form:"recipient"`
	IncludeHidden bool   `form:"include_hidden,default=false"`
	Pagination
}

// ListEventsQueryParams holds query parameters for GET /events
type ListEventsQueryParams struct {
	Collection string `form:"collection"`
	TokenID    string `form:"token_id"`
	Pagination
}

// ListSuggestionsQueryParams holds query parameters for GET /suggestions
type ListSuggestionsQueryParams struct {
	Proposer string `form:"proposer"`
	Status   string `form:"status"`
	Pagination
}

// ResyncRequest is the body of POST /sync/resync
type ResyncRequest struct {
	FromBlock *uint64 `json:"from_block" binding:"required"`
}

// normalizeAddress checksums an optional address parameter
func normalizeAddress(name string, addr *string) error {
	if *addr == "" {
		return nil
	}
	if !domain.IsValidAddress(*addr) {
		return fmt.Errorf("invalid %s address: %s", name, *addr)
	}
	*addr = domain.NormalizeAddress(*addr)
	return nil
}

func validateTokenID(tokenID string) error {
	if tokenID == "" {
		return nil
	}
	if _, ok := domain.ParseAmount(tokenID); !ok {
		return fmt.Errorf("invalid token_id: %s", tokenID)
	}
	return nil
}

// ParseListNFTsQuery parses query parameters for GET /nfts
func ParseListNFTsQuery(c *gin.Context) (*ListNFTsQueryParams, error) {
	var params ListNFTsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	for name, addr := range map[string]*string{
		"owner":      &params.Owner,
		"creator":    &params.Creator,
		"collection": &params.Collection,
	} {
		if err := normalizeAddress(name, addr); err != nil {
			return nil, err
		}
	}

	return &params, params.normalize()
}

// ParseListCollectionsQuery parses query parameters for GET /collections
func ParseListCollectionsQuery(c *gin.Context) (*ListCollectionsQueryParams, error) {
	var params ListCollectionsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, params.normalize()
}

// ParseListListingsQuery parses query parameters for GET /listings
func ParseListListingsQuery(c *gin.Context) (*ListListingsQueryParams, error) {
	var params ListListingsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if err := normalizeAddress("collection", &params.Collection); err != nil {
		return nil, err
	}
	if err := normalizeAddress("seller", &params.Seller); err != nil {
		return nil, err
	}
	if err := validateTokenID(params.TokenID); err != nil {
		return nil, err
	}

	switch schema.ListingStatus(params.Status) {
	case "", schema.ListingStatusActive, schema.ListingStatusSold, schema.ListingStatusCancelled:
	default:
		return nil, fmt.Errorf("invalid listing status: %s", params.Status)
	}

	return &params, params.normalize()
}

// ParseListOffersQuery parses query parameters for GET /offers
func ParseListOffersQuery(c *gin.Context) (*ListOffersQueryParams, error) {
	var params ListOffersQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if err := normalizeAddress("collection", &params.Collection); err != nil {
		return nil, err
	}
	if err := normalizeAddress("creator", &params.Creator); err != nil {
		return nil, err
	}
	if err := validateTokenID(params.TokenID); err != nil {
		return nil, err
	}

	switch params.Status {
	case "", OfferStatusExpired,
		string(schema.OfferStatusOpen),
		string(schema.OfferStatusAccepted),
		string(schema.OfferStatusCancelled),
		string(schema.OfferStatusSuperseded):
	default:
		return nil, fmt.Errorf("invalid offer status: %s", params.Status)
	}

	return &params, params.normalize()
}

// ParseListNotificationsQuery parses query parameters for GET /notifications
func ParseListNotificationsQuery(c *gin.Context) (*ListNotificationsQueryParams, error) {
	var params ListNotificationsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Recipient == "" {
		return nil, fmt.Errorf("recipient is required")
	}
	if err := normalizeAddress("recipient", &params.Recipient); err != nil {
		return nil, err
	}

	return &params, params.normalize()
}

// ParseListEventsQuery parses query parameters for GET /events
func ParseListEventsQuery(c *gin.Context) (*ListEventsQueryParams, error) {
	var params ListEventsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Collection == "" || params.TokenID == "" {
		return nil, fmt.Errorf("collection and token_id are required")
	}
	if err := normalizeAddress("collection", &params.Collection); err != nil {
		return nil, err
	}
	if err := validateTokenID(params.TokenID); err != nil {
		return nil, err
	}

	return &params, params.normalize()
}

// ParseListSuggestionsQuery parses query parameters for GET /suggestions
func ParseListSuggestionsQuery(c *gin.Context) (*ListSuggestionsQueryParams, error) {
	var params ListSuggestionsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if err := normalizeAddress("proposer", &params.Proposer); err != nil {
		return nil, err
	}

	switch schema.SuggestionStatus(params.Status) {
	case "", schema.SuggestionStatusInProgress, schema.SuggestionStatusCompleted, schema.SuggestionStatusWithdrawn:
	default:
		return nil, fmt.Errorf("invalid suggestion status: %s", params.Status)
	}

	return &params, params.normalize()
}
