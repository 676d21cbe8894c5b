package rest

import (
	"encoding/json"
	"time"

	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
	"github.com/feral-file/ff-marketplace-indexer/internal/store/schema"
)

// ListResponse wraps a page of items
type ListResponse[T any] struct {
	Items  []T `json:"items"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func newListResponse[S any, T any](items []S, p Pagination, convert func(S) T) ListResponse[T] {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, convert(item))
	}
	return ListResponse[T]{Items: out, Limit: p.Limit, Offset: p.Offset}
}

type NFTResponse struct {
	CollectionAddress string          `json:"collection_address"`
	TokenID           string          `json:"token_id"`
	Owner             string          `json:"owner"`
	Creator           string          `json:"creator,omitempty"`
	Royalty           string          `json:"royalty"`
	MetadataRef       string          `json:"metadata_ref,omitempty"`
	Status            string          `json:"status"`
	MintedAt          *time.Time      `json:"minted_at,omitempty"`
	MintPosition      domain.Position `json:"mint_position"`
}

func toNFTResponse(n schema.NFT) NFTResponse {
	return NFTResponse{
		CollectionAddress: n.CollectionAddress,
		TokenID:           n.TokenID,
		Owner:             n.Owner,
		Creator:           n.Creator,
		Royalty:           n.Royalty,
		MetadataRef:       n.MetadataRef,
		Status:            string(n.Status),
		MintedAt:          n.MintedAt,
		MintPosition:      n.MintPos,
	}
}

type CollectionResponse struct {
	ContractAddress string `json:"contract_address"`
	Name            string `json:"name"`
	Creator         string `json:"creator,omitempty"`
	NumberOfItems   int64  `json:"number_of_items"`
}

func toCollectionResponse(c schema.Collection) CollectionResponse {
	return CollectionResponse{
		ContractAddress: c.ContractAddress,
		Name:            c.Name,
		Creator:         c.Creator,
		NumberOfItems:   c.NumberOfItems,
	}
}

type ListingResponse struct {
	ID                string          `json:"id"`
	CollectionAddress string          `json:"collection_address"`
	TokenID           string          `json:"token_id"`
	Seller            string          `json:"seller"`
	Buyer             string          `json:"buyer,omitempty"`
	PayToken          string          `json:"pay_token"`
	Price             string          `json:"price"`
	StartTime         int64           `json:"start_time"`
	Status            string          `json:"status"`
	ListedAt          time.Time       `json:"listed_at"`
	ListedPosition    domain.Position `json:"listed_position"`
}

func toListingResponse(l schema.Listing) ListingResponse {
	return ListingResponse{
		ID:                l.ID,
		CollectionAddress: l.CollectionAddress,
		TokenID:           l.TokenID,
		Seller:            l.Seller,
		Buyer:             l.Buyer,
		PayToken:          l.PayToken,
		Price:             l.Price,
		StartTime:         l.StartTime,
		Status:            string(l.Status),
		ListedAt:          l.ListedAt,
		ListedPosition:    l.ListedPos,
	}
}

type OfferResponse struct {
	ID                string    `json:"id"`
	CollectionAddress string    `json:"collection_address"`
	TokenID           string    `json:"token_id"`
	Creator           string    `json:"creator"`
	PayToken          string    `json:"pay_token"`
	Price             string    `json:"price"`
	Deadline          time.Time `json:"deadline"`
	// Status is expired for an open offer past its deadline
	Status     string    `json:"status"`
	AcceptedBy string    `json:"accepted_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func offerConverter(now time.Time) func(schema.Offer) OfferResponse {
	return func(o schema.Offer) OfferResponse {
		status := string(o.Status)
		if o.IsExpired(now) {
			status = OfferStatusExpired
		}
		return OfferResponse{
			ID:                o.ID,
			CollectionAddress: o.CollectionAddress,
			TokenID:           o.TokenID,
			Creator:           o.Creator,
			PayToken:          o.PayToken,
			Price:             o.Price,
			Deadline:          o.Deadline,
			Status:            status,
			AcceptedBy:        o.AcceptedBy,
			CreatedAt:         o.CreatedAt,
		}
	}
}

type HighestBidResponse struct {
	Bidder string    `json:"bidder"`
	Bid    string    `json:"bid"`
	BidAt  time.Time `json:"bid_at"`
}

type AuctionResponse struct {
	ID                string              `json:"id"`
	CollectionAddress string              `json:"collection_address"`
	TokenID           string              `json:"token_id"`
	Seller            string              `json:"seller"`
	PayToken          string              `json:"pay_token"`
	ReservePrice      string              `json:"reserve_price"`
	BuyNowPrice       string              `json:"buy_now_price"`
	StartTime         time.Time           `json:"start_time"`
	EndTime           time.Time           `json:"end_time"`
	Status            string              `json:"status"`
	Winner            string              `json:"winner,omitempty"`
	WinningBid        string              `json:"winning_bid,omitempty"`
	HighestBid        *HighestBidResponse `json:"highest_bid,omitempty"`
}

func toAuctionResponse(a schema.Auction, bid *schema.HighestBid) AuctionResponse {
	resp := AuctionResponse{
		ID:                a.ID,
		CollectionAddress: a.CollectionAddress,
		TokenID:           a.TokenID,
		Seller:            a.Seller,
		PayToken:          a.PayToken,
		ReservePrice:      a.ReservePrice,
		BuyNowPrice:       a.BuyNowPrice,
		StartTime:         a.StartTime,
		EndTime:           a.EndTime,
		Status:            string(a.Status),
		Winner:            a.Winner,
	}
	if a.Status == schema.AuctionStatusResulted {
		resp.WinningBid = a.WinningBid
	}
	if bid != nil {
		resp.HighestBid = &HighestBidResponse{
			Bidder: bid.Bidder,
			Bid:    bid.Bid,
			BidAt:  bid.BidAt,
		}
	}
	return resp
}

type NotificationResponse struct {
	ID                string          `json:"id"`
	Recipient         string          `json:"recipient"`
	Type              string          `json:"type"`
	CollectionAddress string          `json:"collection_address,omitempty"`
	TokenID           string          `json:"token_id,omitempty"`
	Params            json.RawMessage `json:"params,omitempty"`
	Visible           bool            `json:"visible"`
	Timestamp         time.Time       `json:"timestamp"`
}

func toNotificationResponse(n schema.Notification) NotificationResponse {
	return NotificationResponse{
		ID:                n.ID,
		Recipient:         n.Recipient,
		Type:              n.Type,
		CollectionAddress: n.CollectionAddress,
		TokenID:           n.TokenID,
		Params:            json.RawMessage(n.Params),
		Visible:           n.Visible,
		Timestamp:         n.Timestamp,
	}
}

type EventResponse struct {
	Kind        string          `json:"kind"`
	BlockNumber uint64          `json:"block_number"`
	LogIndex    uint32          `json:"log_index"`
	BlockHash   string          `json:"block_hash"`
	TxHash      string          `json:"tx_hash"`
	Timestamp   time.Time       `json:"timestamp"`
	Payload     json.RawMessage `json:"payload"`
}

func toEventResponse(e schema.MarketEvent) EventResponse {
	return EventResponse{
		Kind:        string(e.Kind),
		BlockNumber: e.BlockNumber,
		LogIndex:    e.LogIndex,
		BlockHash:   e.BlockHash,
		TxHash:      e.TxHash,
		Timestamp:   e.Timestamp,
		Payload:     json.RawMessage(e.Payload),
	}
}

type VerificationResponse struct {
	Address  string `json:"address"`
	Verified bool   `json:"verified"`
	Inversor bool   `json:"inversor"`
}

type SuggestionDepositResponse struct {
	Depositor   string          `json:"depositor"`
	Amount      string          `json:"amount"`
	DepositedAt time.Time       `json:"deposited_at"`
	Position    domain.Position `json:"position"`
}

func toSuggestionDepositResponse(d schema.SuggestionDeposit) SuggestionDepositResponse {
	return SuggestionDepositResponse{
		Depositor:   d.Depositor,
		Amount:      d.Amount,
		DepositedAt: d.DepositedAt,
		Position:    d.Pos,
	}
}

type SuggestionResponse struct {
	ID          string    `json:"id"`
	Proposer    string    `json:"proposer"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Goal        string    `json:"goal"`
	Raised      string    `json:"raised"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	// Deposits are only included for a single suggestion
	Deposits []SuggestionDepositResponse `json:"deposits,omitempty"`
}

func toSuggestionResponse(s schema.Suggestion) SuggestionResponse {
	return SuggestionResponse{
		ID:          s.ID,
		Proposer:    s.Proposer,
		Title:       s.Title,
		Description: s.Description,
		Goal:        s.Goal,
		Raised:      s.Raised,
		Status:      string(s.Status),
		CreatedAt:   s.CreatedAt,
	}
}
