package projection

import (
	"context"

	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
	"github.com/feral-file/ff-marketplace-indexer/internal/logger"
	"github.com/feral-file/ff-marketplace-indexer/internal/store"
	"github.com/feral-file/ff-marketplace-indexer/internal/store/schema"
)

func orZero(amount string) string {
	if amount == "" {
		return "0"
	}
	return amount
}

// auctionBefore returns the latest auction of the event's NFT created before it
func auctionBefore(ctx context.Context, tx store.ProjectionStore, ev domain.Event) (*schema.Auction, error) {
	auctions, err := tx.ListTokenAuctions(ctx, ev.CollectionAddress, ev.TokenID)
	if err != nil {
		return nil, err
	}

	var found *schema.Auction
	for i := range auctions {
		if auctions[i].CreatedPos.Less(ev.Position) {
			found = &auctions[i]
		}
	}
	if found == nil {
		logger.WarnCtx(ctx, "No auction for event",
			zap.String("kind", string(ev.Kind)),
			zap.String("collection", ev.CollectionAddress),
			zap.String("tokenID", ev.TokenID),
			zap.Stringer("position", ev.Position))
	}
	return found, nil
}

func (e *Engine) applyAuctionCreated(ctx context.Context, tx store.ProjectionStore, ev domain.Event) (Effects, error) {
	auctions, err := tx.ListTokenAuctions(ctx, ev.CollectionAddress, ev.TokenID)
	if err != nil {
		return Effects{}, err
	}

	id := schema.PositionID(ev.Position)
	for _, a := range auctions {
		if a.ID == id {
			return Effects{}, nil
		}
	}

	auction := &schema.Auction{
		ID:                id,
		CollectionAddress: ev.CollectionAddress,
		TokenID:           ev.TokenID,
		Seller:            ev.Participants.Seller,
		PayToken:          ev.PayToken,
		ReservePrice:      orZero(ev.Amounts.ReservePrice),
		BuyNowPrice:       orZero(ev.Amounts.BuyNowPrice),
		StartTime:         e.clock.Unix(ev.Amounts.StartTime, 0),
		EndTime:           e.clock.Unix(ev.Amounts.EndTime, 0),
		Status:            schema.AuctionStatusActive,
		WinningBid:        "0",
		CreatedPos:        ev.Position,
	}

	return Effects{}, tx.SaveAuction(ctx, auction)
}

// outbids reports whether a bid replaces the current highest bid. Equal amounts
// resolve to the earlier bid so replay order does not matter.
func outbids(bid string, pos domain.Position, highest *schema.HighestBid) bool {
	if highest == nil {
		return true
	}

	amount, _ := domain.ParseAmount(bid)
	current, ok := domain.ParseAmount(highest.Bid)
	if !ok {
		return true
	}

	switch amount.Cmp(current) {
	case 1:
		return true
	case 0:
		return pos.Less(highest.BidPos)
	default:
		return false
	}
}

func (e *Engine) applyBidPlaced(ctx context.Context, tx store.ProjectionStore, ev domain.Event) (Effects, error) {
	auction, err := auctionBefore(ctx, tx, ev)
	if err != nil || auction == nil {
		return Effects{}, err
	}

	highest, err := tx.GetHighestBid(ctx, auction.ID)
	if err != nil {
		return Effects{}, err
	}

	if !outbids(ev.Amounts.Bid, ev.Position, highest) {
		return Effects{}, nil
	}

	if err := tx.SaveHighestBid(ctx, &schema.HighestBid{
		AuctionID: auction.ID,
		Bidder:    ev.Participants.Bidder,
		Bid:       ev.Amounts.Bid,
		BidAt:     ev.Timestamp,
		BidPos:    ev.Position,
	}); err != nil {
		return Effects{}, err
	}

	if highest == nil || highest.Bidder == ev.Participants.Bidder {
		return Effects{}, nil
	}

	return notify(ctx, tx, ev, highest.Bidder, domain.NOTIFICATION_OUTBID, map[string]string{
		"bidder":     ev.Participants.Bidder,
		"bid":        ev.Amounts.Bid,
		"auction_id": auction.ID,
	})
}

func (e *Engine) applyAuctionResulted(ctx context.Context, tx store.ProjectionStore, ev domain.Event) (Effects, error) {
	auction, err := auctionBefore(ctx, tx, ev)
	if err != nil {
		return Effects{}, err
	}

	if auction != nil && auction.Status == schema.AuctionStatusActive {
		auction.Status = schema.AuctionStatusResulted
		auction.Winner = ev.Participants.Winner
		auction.WinningBid = ev.Amounts.Bid
		auction.ClosedPos = ev.Position
		if err := tx.SaveAuction(ctx, auction); err != nil {
			return Effects{}, err
		}
	}

	nft, err := loadNFT(ctx, tx, ev)
	if err != nil {
		return Effects{}, err
	}
	if setOwner(nft, ev.Participants.Winner, ev.Position) {
		if err := tx.SaveNFT(ctx, nft); err != nil {
			return Effects{}, err
		}
	}

	return notify(ctx, tx, ev, ev.Participants.Seller, domain.NOTIFICATION_AUCTION_WON, map[string]string{
		"winner":      ev.Participants.Winner,
		"winning_bid": ev.Amounts.Bid,
		"pay_token":   ev.PayToken,
	})
}

func (e *Engine) applyAuctionCancelled(ctx context.Context, tx store.ProjectionStore, ev domain.Event) (Effects, error) {
	auction, err := auctionBefore(ctx, tx, ev)
	if err != nil || auction == nil {
		return Effects{}, err
	}

	if auction.Status != schema.AuctionStatusActive {
		return Effects{}, nil
	}

	auction.Status = schema.AuctionStatusCancelled
	auction.ClosedPos = ev.Position

	return Effects{}, tx.SaveAuction(ctx, auction)
}
