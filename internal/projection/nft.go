package projection

import (
	"context"
	"fmt"

	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
	"github.com/feral-file/ff-marketplace-indexer/internal/store"
	"github.com/feral-file/ff-marketplace-indexer/internal/store/schema"
)

// loadNFT returns the NFT of the event, or an unsaved placeholder when an
// ownership event is seen before the mint
func loadNFT(ctx context.Context, tx store.ProjectionStore, ev domain.Event) (*schema.NFT, error) {
	nft, err := tx.GetNFT(ctx, ev.CollectionAddress, ev.TokenID)
	if err != nil {
		return nil, err
	}
	if nft == nil {
		nft = &schema.NFT{
			CollectionAddress: ev.CollectionAddress,
			TokenID:           ev.TokenID,
			Royalty:           "0",
			Status:            schema.NFTStatusActive,
		}
	}
	return nft, nil
}

// setOwner changes the owner if the event is newer than the last ownership change.
// It reports whether the record changed.
func setOwner(nft *schema.NFT, owner string, pos domain.Position) bool {
	if !pos.After(nft.OwnerPos) {
		return false
	}
	nft.Owner = owner
	nft.OwnerPos = pos
	return true
}

func (e *Engine) applyMint(ctx context.Context, tx store.ProjectionStore, ev domain.Event) (Effects, error) {
	nft, err := loadNFT(ctx, tx, ev)
	if err != nil {
		return Effects{}, err
	}

	firstMint := nft.MintedAt == nil
	if !firstMint && nft.MintPos == ev.Position {
		return Effects{}, nil
	}

	if firstMint {
		mintedAt := ev.Timestamp
		nft.Creator = ev.Participants.To
		if ev.Participants.Creator != "" {
			nft.Creator = ev.Participants.Creator
		}
		if ev.Amounts.Royalty != "" {
			nft.Royalty = ev.Amounts.Royalty
		}
		nft.MetadataRef = ev.MetadataRef
		nft.MintedAt = &mintedAt
		nft.MintPos = ev.Position
	}

	// A token id can be minted again after a burn
	if setOwner(nft, ev.Participants.To, ev.Position) {
		nft.Status = schema.NFTStatusActive
	}

	if err := tx.SaveNFT(ctx, nft); err != nil {
		return Effects{}, err
	}

	if !firstMint {
		return Effects{}, nil
	}

	collection, err := tx.GetCollection(ctx, ev.CollectionAddress)
	if err != nil {
		return Effects{}, err
	}
	if collection == nil {
		collection = &schema.Collection{ContractAddress: ev.CollectionAddress}
	}
	collection.NumberOfItems++
	if err := tx.SaveCollection(ctx, collection); err != nil {
		return Effects{}, fmt.Errorf("failed to count minted item: %w", err)
	}

	return Effects{}, nil
}

func (e *Engine) applyTransfer(ctx context.Context, tx store.ProjectionStore, ev domain.Event) (Effects, error) {
	nft, err := loadNFT(ctx, tx, ev)
	if err != nil {
		return Effects{}, err
	}

	if !setOwner(nft, ev.Participants.To, ev.Position) {
		return Effects{}, nil
	}

	return Effects{}, tx.SaveNFT(ctx, nft)
}

func (e *Engine) applyBurn(ctx context.Context, tx store.ProjectionStore, ev domain.Event) (Effects, error) {
	nft, err := loadNFT(ctx, tx, ev)
	if err != nil {
		return Effects{}, err
	}

	// The last owner is kept for history, the status marks the burn
	owner := nft.Owner
	if owner == "" {
		owner = ev.Participants.From
	}
	if !setOwner(nft, owner, ev.Position) {
		return Effects{}, nil
	}
	nft.Status = schema.NFTStatusBurned

	return Effects{}, tx.SaveNFT(ctx, nft)
}

func (e *Engine) applyCollectionCreated(ctx context.Context, tx store.ProjectionStore, ev domain.Event) (Effects, error) {
	collection, err := tx.GetCollection(ctx, ev.CollectionAddress)
	if err != nil {
		return Effects{}, err
	}

	if collection == nil {
		collection = &schema.Collection{ContractAddress: ev.CollectionAddress}
	} else if !collection.CreatedPos.IsZero() {
		return Effects{}, nil
	}

	collection.Name = ev.Name
	collection.Creator = ev.Participants.Creator
	collection.CreatedPos = ev.Position

	return Effects{}, tx.SaveCollection(ctx, collection)
}
