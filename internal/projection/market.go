package projection

import (
	"context"

	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
	"github.com/feral-file/ff-marketplace-indexer/internal/logger"
	"github.com/feral-file/ff-marketplace-indexer/internal/store"
	"github.com/feral-file/ff-marketplace-indexer/internal/store/schema"
)

// activeListingBefore returns the latest active listing created before pos
func activeListingBefore(listings []schema.Listing, pos domain.Position) *schema.Listing {
	var found *schema.Listing
	for i := range listings {
		l := &listings[i]
		if l.Status == schema.ListingStatusActive && l.ListedPos.Less(pos) {
			found = l
		}
	}
	return found
}

// openOfferBefore returns the latest open offer of creator created before pos
func openOfferBefore(offers []schema.Offer, creator string, pos domain.Position) *schema.Offer {
	var found *schema.Offer
	for i := range offers {
		o := &offers[i]
		if o.Status == schema.OfferStatusOpen && o.Creator == creator && o.CreatedPos.Less(pos) {
			found = o
		}
	}
	return found
}

func closeListing(ctx context.Context, tx store.ProjectionStore, listing *schema.Listing, status schema.ListingStatus, pos domain.Position) error {
	listing.Status = status
	listing.ClosedPos = pos
	return tx.SaveListing(ctx, listing)
}

func (e *Engine) applyItemListed(ctx context.Context, tx store.ProjectionStore, ev domain.Event) (Effects, error) {
	listings, err := tx.ListTokenListings(ctx, ev.CollectionAddress, ev.TokenID)
	if err != nil {
		return Effects{}, err
	}

	id := schema.PositionID(ev.Position)
	var newer *schema.Listing
	for i := range listings {
		l := &listings[i]
		if l.ID == id {
			return Effects{}, nil
		}
		if l.Status == schema.ListingStatusActive && l.ListedPos.After(ev.Position) && newer == nil {
			newer = l
		}
	}

	// A new listing supersedes the previous one
	for i := range listings {
		l := &listings[i]
		if l.Status == schema.ListingStatusActive && l.ListedPos.Less(ev.Position) {
			if err := closeListing(ctx, tx, l, schema.ListingStatusCancelled, ev.Position); err != nil {
				return Effects{}, err
			}
		}
	}

	listing := &schema.Listing{
		ID:                id,
		CollectionAddress: ev.CollectionAddress,
		TokenID:           ev.TokenID,
		Seller:            ev.Participants.Seller,
		PayToken:          ev.PayToken,
		Price:             ev.Amounts.Price,
		StartTime:         ev.Amounts.StartTime,
		Status:            schema.ListingStatusActive,
		ListedAt:          ev.Timestamp,
		ListedPos:         ev.Position,
		PricePos:          ev.Position,
	}
	if newer != nil {
		listing.Status = schema.ListingStatusCancelled
		listing.ClosedPos = newer.ListedPos
	}

	return Effects{}, tx.SaveListing(ctx, listing)
}

func (e *Engine) applyListingUpdated(ctx context.Context, tx store.ProjectionStore, ev domain.Event) (Effects, error) {
	listings, err := tx.ListTokenListings(ctx, ev.CollectionAddress, ev.TokenID)
	if err != nil {
		return Effects{}, err
	}

	listing := activeListingBefore(listings, ev.Position)
	if listing == nil {
		logger.WarnCtx(ctx, "No active listing to update",
			zap.String("collection", ev.CollectionAddress),
			zap.String("tokenID", ev.TokenID),
			zap.Stringer("position", ev.Position))
		return Effects{}, nil
	}

	if !ev.Position.After(listing.PricePos) {
		return Effects{}, nil
	}

	listing.Price = ev.Amounts.Price
	if ev.PayToken != "" {
		listing.PayToken = ev.PayToken
	}
	listing.PricePos = ev.Position

	return Effects{}, tx.SaveListing(ctx, listing)
}

func (e *Engine) applyItemSold(ctx context.Context, tx store.ProjectionStore, ev domain.Event) (Effects, error) {
	listings, err := tx.ListTokenListings(ctx, ev.CollectionAddress, ev.TokenID)
	if err != nil {
		return Effects{}, err
	}

	if listing := activeListingBefore(listings, ev.Position); listing != nil {
		listing.Buyer = ev.Participants.Buyer
		if err := closeListing(ctx, tx, listing, schema.ListingStatusSold, ev.Position); err != nil {
			return Effects{}, err
		}
	}

	nft, err := loadNFT(ctx, tx, ev)
	if err != nil {
		return Effects{}, err
	}
	if setOwner(nft, ev.Participants.Buyer, ev.Position) {
		if err := tx.SaveNFT(ctx, nft); err != nil {
			return Effects{}, err
		}
	}

	return notify(ctx, tx, ev, ev.Participants.Seller, domain.NOTIFICATION_ITEM_SOLD, map[string]string{
		"buyer":     ev.Participants.Buyer,
		"price":     ev.Amounts.Price,
		"pay_token": ev.PayToken,
	})
}

func (e *Engine) applyListingCancelled(ctx context.Context, tx store.ProjectionStore, ev domain.Event) (Effects, error) {
	listings, err := tx.ListTokenListings(ctx, ev.CollectionAddress, ev.TokenID)
	if err != nil {
		return Effects{}, err
	}

	listing := activeListingBefore(listings, ev.Position)
	if listing == nil {
		return Effects{}, nil
	}

	return Effects{}, closeListing(ctx, tx, listing, schema.ListingStatusCancelled, ev.Position)
}

func (e *Engine) applyOfferCreated(ctx context.Context, tx store.ProjectionStore, ev domain.Event) (Effects, error) {
	offers, err := tx.ListTokenOffers(ctx, ev.CollectionAddress, ev.TokenID)
	if err != nil {
		return Effects{}, err
	}

	creator := ev.Participants.Creator
	id := schema.PositionID(ev.Position)
	var newer *schema.Offer
	for i := range offers {
		o := &offers[i]
		if o.ID == id {
			return Effects{}, nil
		}
		if o.Status == schema.OfferStatusOpen && o.Creator == creator && o.CreatedPos.After(ev.Position) && newer == nil {
			newer = o
		}
	}

	// A creator holds at most one open offer per NFT
	for i := range offers {
		o := &offers[i]
		if o.Status == schema.OfferStatusOpen && o.Creator == creator && o.CreatedPos.Less(ev.Position) {
			o.Status = schema.OfferStatusSuperseded
			o.ClosedPos = ev.Position
			if err := tx.SaveOffer(ctx, o); err != nil {
				return Effects{}, err
			}
		}
	}

	offer := &schema.Offer{
		ID:                id,
		Creator:           creator,
		CollectionAddress: ev.CollectionAddress,
		TokenID:           ev.TokenID,
		PayToken:          ev.PayToken,
		Price:             ev.Amounts.Price,
		Deadline:          e.clock.Unix(ev.Amounts.Deadline, 0),
		Status:            schema.OfferStatusOpen,
		CreatedAt:         ev.Timestamp,
		CreatedPos:        ev.Position,
	}
	if newer != nil {
		offer.Status = schema.OfferStatusSuperseded
		offer.ClosedPos = newer.CreatedPos
	}

	return Effects{}, tx.SaveOffer(ctx, offer)
}

func (e *Engine) applyOfferAccepted(ctx context.Context, tx store.ProjectionStore, ev domain.Event) (Effects, error) {
	creator := ev.Participants.Creator
	seller := ev.Participants.Seller

	offers, err := tx.ListTokenOffers(ctx, ev.CollectionAddress, ev.TokenID)
	if err != nil {
		return Effects{}, err
	}

	price := ev.Amounts.Price
	payToken := ev.PayToken
	if offer := openOfferBefore(offers, creator, ev.Position); offer != nil {
		offer.Status = schema.OfferStatusAccepted
		offer.AcceptedBy = seller
		offer.ClosedPos = ev.Position
		if err := tx.SaveOffer(ctx, offer); err != nil {
			return Effects{}, err
		}
		if price == "" {
			price = offer.Price
		}
		if payToken == "" {
			payToken = offer.PayToken
		}
	} else {
		logger.WarnCtx(ctx, "No open offer to accept",
			zap.String("collection", ev.CollectionAddress),
			zap.String("tokenID", ev.TokenID),
			zap.String("creator", creator),
			zap.Stringer("position", ev.Position))
	}

	// The NFT changed hands outside the listing
	listings, err := tx.ListTokenListings(ctx, ev.CollectionAddress, ev.TokenID)
	if err != nil {
		return Effects{}, err
	}
	if listing := activeListingBefore(listings, ev.Position); listing != nil {
		if err := closeListing(ctx, tx, listing, schema.ListingStatusCancelled, ev.Position); err != nil {
			return Effects{}, err
		}
	}

	nft, err := loadNFT(ctx, tx, ev)
	if err != nil {
		return Effects{}, err
	}
	if setOwner(nft, creator, ev.Position) {
		if err := tx.SaveNFT(ctx, nft); err != nil {
			return Effects{}, err
		}
	}

	return notify(ctx, tx, ev, seller, domain.NOTIFICATION_OFFER_ACCEPTED, map[string]string{
		"creator":   creator,
		"price":     price,
		"pay_token": payToken,
	})
}

func (e *Engine) applyOfferCancelled(ctx context.Context, tx store.ProjectionStore, ev domain.Event) (Effects, error) {
	offers, err := tx.ListTokenOffers(ctx, ev.CollectionAddress, ev.TokenID)
	if err != nil {
		return Effects{}, err
	}

	offer := openOfferBefore(offers, ev.Participants.Creator, ev.Position)
	if offer == nil {
		return Effects{}, nil
	}

	offer.Status = schema.OfferStatusCancelled
	offer.ClosedPos = ev.Position

	return Effects{}, tx.SaveOffer(ctx, offer)
}
