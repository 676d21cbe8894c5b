package ethereum

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
)

// marketplaceEventsABI covers every event the indexer projects: the marketplace,
// auction, verification, community and factory contracts plus ERC721 transfers of
// the collections.
const marketplaceEventsABI = `[
{"type":"event","name":"ItemListed","inputs":[
 {"name":"owner","type":"address","indexed":true},
 {"name":"nft","type":"address","indexed":true},
 {"name":"tokenId","type":"uint256","indexed":false},
 {"name":"payToken","type":"address","indexed":false},
 {"name":"pricePerItem","type":"uint256","indexed":false},
 {"name":"startingTime","type":"uint256","indexed":false}]},
{"type":"event","name":"ItemSold","inputs":[
 {"name":"seller","type":"address","indexed":true},
 {"name":"buyer","type":"address","indexed":true},
 {"name":"nft","type":"address","indexed":true},
 {"name":"tokenId","type":"uint256","indexed":false},
 {"name":"payToken","type":"address","indexed":false},
 {"name":"price","type":"uint256","indexed":false}]},
{"type":"event","name":"ItemUpdated","inputs":[
 {"name":"owner","type":"address","indexed":true},
 {"name":"nft","type":"address","indexed":true},
 {"name":"tokenId","type":"uint256","indexed":false},
 {"name":"payToken","type":"address","indexed":false},
 {"name":"newPrice","type":"uint256","indexed":false}]},
{"type":"event","name":"ItemCanceled","inputs":[
 {"name":"owner","type":"address","indexed":true},
 {"name":"nft","type":"address","indexed":true},
 {"name":"tokenId","type":"uint256","indexed":false}]},
{"type":"event","name":"OfferCreated","inputs":[
 {"name":"creator","type":"address","indexed":true},
 {"name":"nft","type":"address","indexed":true},
 {"name":"tokenId","type":"uint256","indexed":false},
 {"name":"payToken","type":"address","indexed":false},
 {"name":"price","type":"uint256","indexed":false},
 {"name":"deadline","type":"uint256","indexed":false}]},
{"type":"event","name":"OfferAccepted","inputs":[
 {"name":"nft","type":"address","indexed":true},
 {"name":"tokenId","type":"uint256","indexed":false},
 {"name":"creator","type":"address","indexed":true},
 {"name":"seller","type":"address","indexed":true},
 {"name":"payToken","type":"address","indexed":false},
 {"name":"price","type":"uint256","indexed":false}]},
{"type":"event","name":"OfferCanceled","inputs":[
 {"name":"creator","type":"address","indexed":true},
 {"name":"nft","type":"address","indexed":true},
 {"name":"tokenId","type":"uint256","indexed":false}]},
{"type":"event","name":"AuctionCreated","inputs":[
 {"name":"nft","type":"address","indexed":true},
 {"name":"tokenId","type":"uint256","indexed":true},
 {"name":"owner","type":"address","indexed":true},
 {"name":"payToken","type":"address","indexed":false},
 {"name":"reservePrice","type":"uint256","indexed":false},
 {"name":"buyNowPrice","type":"uint256","indexed":false},
 {"name":"startTime","type":"uint256","indexed":false},
 {"name":"endTime","type":"uint256","indexed":false}]},
{"type":"event","name":"BidPlaced","inputs":[
 {"name":"nft","type":"address","indexed":true},
 {"name":"tokenId","type":"uint256","indexed":true},
 {"name":"bidder","type":"address","indexed":true},
 {"name":"bid","type":"uint256","indexed":false}]},
{"type":"event","name":"AuctionResulted","inputs":[
 {"name":"oldOwner","type":"address","indexed":false},
 {"name":"nft","type":"address","indexed":true},
 {"name":"tokenId","type":"uint256","indexed":true},
 {"name":"winner","type":"address","indexed":true},
 {"name":"payToken","type":"address","indexed":false},
 {"name":"winningBid","type":"uint256","indexed":false}]},
{"type":"event","name":"AuctionCancelled","inputs":[
 {"name":"nft","type":"address","indexed":true},
 {"name":"tokenId","type":"uint256","indexed":true}]},
{"type":"event","name":"AddressVerified","inputs":[
 {"name":"account","type":"address","indexed":true}]},
{"type":"event","name":"AddressUnverified","inputs":[
 {"name":"account","type":"address","indexed":true}]},
{"type":"event","name":"InversorVerified","inputs":[
 {"name":"account","type":"address","indexed":true}]},
{"type":"event","name":"SuggestionCreated","inputs":[
 {"name":"suggestionId","type":"uint256","indexed":true},
 {"name":"proposer","type":"address","indexed":true},
 {"name":"title","type":"string","indexed":false},
 {"name":"description","type":"string","indexed":false},
 {"name":"totalAmount","type":"uint256","indexed":false}]},
{"type":"event","name":"TokensAddedToSuggestion","inputs":[
 {"name":"suggestionId","type":"uint256","indexed":true},
 {"name":"depositor","type":"address","indexed":true},
 {"name":"amount","type":"uint256","indexed":false}]},
{"type":"event","name":"SuggestionWithdrawn","inputs":[
 {"name":"suggestionId","type":"uint256","indexed":true},
 {"name":"proposer","type":"address","indexed":true},
 {"name":"amount","type":"uint256","indexed":false}]},
{"type":"event","name":"CollectionCreated","inputs":[
 {"name":"creator","type":"address","indexed":true},
 {"name":"nft","type":"address","indexed":true},
 {"name":"name","type":"string","indexed":false}]},
{"type":"event","name":"Transfer","inputs":[
 {"name":"from","type":"address","indexed":true},
 {"name":"to","type":"address","indexed":true},
 {"name":"tokenId","type":"uint256","indexed":true}]}
]`

var (
	marketplaceABI = mustParseABI(marketplaceEventsABI)

	transferEventSignature          = marketplaceABI.Events["Transfer"].ID
	collectionCreatedEventSignature = marketplaceABI.Events["CollectionCreated"].ID

	// eventKinds maps an event name of marketplaceABI to the projected kind.
	// Transfer resolves to mint, transfer or burn from its addresses.
	eventKinds = map[string]domain.EventKind{
		"ItemListed":        domain.EventKindItemListed,
		"ItemSold":          domain.EventKindItemSold,
		"ItemUpdated":       domain.EventKindListingUpdated,
		"ItemCanceled":      domain.EventKindListingCancelled,
		"OfferCreated":      domain.EventKindOfferCreated,
		"OfferAccepted":     domain.EventKindOfferAccepted,
		"OfferCanceled":     domain.EventKindOfferCancelled,
		"AuctionCreated":    domain.EventKindAuctionCreated,
		"BidPlaced":         domain.EventKindBidPlaced,
		"AuctionResulted":   domain.EventKindAuctionResulted,
		"AuctionCancelled":  domain.EventKindAuctionCancelled,
		"AddressVerified":   domain.EventKindAddressVerified,
		"AddressUnverified": domain.EventKindAddressUnverified,
		"InversorVerified":  domain.EventKindInversorVerified,
		"CollectionCreated": domain.EventKindCollectionCreated,

		"SuggestionCreated":       domain.EventKindSuggestionCreated,
		"TokensAddedToSuggestion": domain.EventKindSuggestionFunded,
		"SuggestionWithdrawn":     domain.EventKindSuggestionWithdrawn,
	}
)

func mustParseABI(definition string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic(fmt.Sprintf("invalid ABI: %v", err))
	}
	return parsed
}

// logValues holds the decoded arguments of a log by argument name
type logValues map[string]any

func (v logValues) address(name string) string {
	addr, ok := v[name].(common.Address)
	if !ok {
		return ""
	}
	return addr.Hex()
}

func (v logValues) amount(name string) string {
	n, ok := v[name].(*big.Int)
	if !ok || n == nil {
		return ""
	}
	return n.String()
}

func (v logValues) unix(name string) int64 {
	n, ok := v[name].(*big.Int)
	if !ok || n == nil || !n.IsInt64() {
		return 0
	}
	return n.Int64()
}

func (v logValues) text(name string) string {
	s, _ := v[name].(string)
	return s
}

// decodeLog unpacks both the indexed topics and the data of a log
func decodeLog(event *abi.Event, vLog types.Log) (logValues, error) {
	values := make(map[string]any)

	if err := event.Inputs.UnpackIntoMap(values, vLog.Data); err != nil {
		return nil, fmt.Errorf("failed to unpack %s data: %w", event.Name, err)
	}

	var indexed abi.Arguments
	for _, input := range event.Inputs {
		if input.Indexed {
			indexed = append(indexed, input)
		}
	}
	if len(vLog.Topics)-1 != len(indexed) {
		return nil, fmt.Errorf("invalid %s event: expected %d topics, got %d", event.Name, len(indexed)+1, len(vLog.Topics))
	}
	if err := abi.ParseTopicsIntoMap(values, indexed, vLog.Topics[1:]); err != nil {
		return nil, fmt.Errorf("failed to parse %s topics: %w", event.Name, err)
	}

	return values, nil
}

// fillEvent copies decoded values into the event fields of its kind
func fillEvent(ev *domain.Event, name string, v logValues) {
	ev.CollectionAddress = v.address("nft")
	ev.TokenID = v.amount("tokenId")
	ev.PayToken = v.address("payToken")

	switch name {
	case "Transfer":
		ev.CollectionAddress = ev.Contract
		ev.Participants.From = v.address("from")
		ev.Participants.To = v.address("to")
		ev.Kind = domain.TransferKind(ev.Participants.From, ev.Participants.To)
	case "CollectionCreated":
		ev.Participants.Creator = v.address("creator")
		ev.Name = v.text("name")
	case "ItemListed":
		ev.Participants.Seller = v.address("owner")
		ev.Amounts.Price = v.amount("pricePerItem")
		ev.Amounts.StartTime = v.unix("startingTime")
	case "ItemUpdated":
		ev.Participants.Seller = v.address("owner")
		ev.Amounts.Price = v.amount("newPrice")
	case "ItemCanceled":
		ev.Participants.Seller = v.address("owner")
	case "ItemSold":
		ev.Participants.Seller = v.address("seller")
		ev.Participants.Buyer = v.address("buyer")
		ev.Amounts.Price = v.amount("price")
	case "OfferCreated":
		ev.Participants.Creator = v.address("creator")
		ev.Amounts.Price = v.amount("price")
		ev.Amounts.Deadline = v.unix("deadline")
	case "OfferAccepted":
		ev.Participants.Creator = v.address("creator")
		ev.Participants.Seller = v.address("seller")
		ev.Amounts.Price = v.amount("price")
	case "OfferCanceled":
		ev.Participants.Creator = v.address("creator")
	case "AuctionCreated":
		ev.Participants.Seller = v.address("owner")
		ev.Amounts.ReservePrice = v.amount("reservePrice")
		ev.Amounts.BuyNowPrice = v.amount("buyNowPrice")
		ev.Amounts.StartTime = v.unix("startTime")
		ev.Amounts.EndTime = v.unix("endTime")
	case "BidPlaced":
		ev.Participants.Bidder = v.address("bidder")
		ev.Amounts.Bid = v.amount("bid")
	case "AuctionResulted":
		ev.Participants.Seller = v.address("oldOwner")
		ev.Participants.Winner = v.address("winner")
		ev.Amounts.Bid = v.amount("winningBid")
	case "AddressVerified", "AddressUnverified", "InversorVerified":
		ev.Participants.Account = v.address("account")
	case "SuggestionCreated":
		ev.SuggestionID = v.amount("suggestionId")
		ev.Participants.Creator = v.address("proposer")
		ev.Name = v.text("title")
		ev.Description = v.text("description")
		ev.Amounts.Goal = v.amount("totalAmount")
	case "TokensAddedToSuggestion":
		ev.SuggestionID = v.amount("suggestionId")
		ev.Participants.Depositor = v.address("depositor")
		ev.Amounts.Amount = v.amount("amount")
	case "SuggestionWithdrawn":
		ev.SuggestionID = v.amount("suggestionId")
		ev.Participants.Creator = v.address("proposer")
		ev.Amounts.Amount = v.amount("amount")
	}
}
