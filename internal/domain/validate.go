package domain

// requirement is a single field check applied to an event
type requirement struct {
	field string
	ok    func(e *Event) bool
}

func addressSet(get func(e *Event) string) func(e *Event) bool {
	return func(e *Event) bool { return IsValidAddress(get(e)) }
}

func amountSet(get func(e *Event) string) func(e *Event) bool {
	return func(e *Event) bool {
		_, ok := ParseAmount(get(e))
		return ok
	}
}

var (
	reqCollection = requirement{"collection_address", addressSet(func(e *Event) string { return e.CollectionAddress })}
	reqToken      = requirement{"token_id", amountSet(func(e *Event) string { return e.TokenID })}
	reqFrom       = requirement{"participants.from", addressSet(func(e *Event) string { return e.Participants.From })}
	reqTo         = requirement{"participants.to", addressSet(func(e *Event) string { return e.Participants.To })}
	reqSeller     = requirement{"participants.seller", addressSet(func(e *Event) string { return e.Participants.Seller })}
	reqBuyer      = requirement{"participants.buyer", addressSet(func(e *Event) string { return e.Participants.Buyer })}
	reqCreator    = requirement{"participants.creator", addressSet(func(e *Event) string { return e.Participants.Creator })}
	reqBidder     = requirement{"participants.bidder", addressSet(func(e *Event) string { return e.Participants.Bidder })}
	reqWinner     = requirement{"participants.winner", addressSet(func(e *Event) string { return e.Participants.Winner })}
	reqAccount    = requirement{"participants.account", addressSet(func(e *Event) string { return e.Participants.Account })}
	reqPrice      = requirement{"amounts.price", amountSet(func(e *Event) string { return e.Amounts.Price })}
	reqBid        = requirement{"amounts.bid", amountSet(func(e *Event) string { return e.Amounts.Bid })}
	reqSuggestion = requirement{"suggestion_id", amountSet(func(e *Event) string { return e.SuggestionID })}
	reqDepositor  = requirement{"participants.depositor", addressSet(func(e *Event) string { return e.Participants.Depositor })}
	reqGoal       = requirement{"amounts.goal", amountSet(func(e *Event) string { return e.Amounts.Goal })}
	reqAmount     = requirement{"amounts.amount", amountSet(func(e *Event) string { return e.Amounts.Amount })}
)

var requirements = map[EventKind][]requirement{
	EventKindMint:              {reqCollection, reqToken, reqTo},
	EventKindTransfer:          {reqCollection, reqToken, reqFrom, reqTo},
	EventKindBurn:              {reqCollection, reqToken, reqFrom},
	EventKindCollectionCreated: {reqCollection, reqCreator},
	EventKindItemListed:        {reqCollection, reqToken, reqSeller, reqPrice},
	EventKindListingUpdated:    {reqCollection, reqToken, reqSeller, reqPrice},
	EventKindItemSold:          {reqCollection, reqToken, reqSeller, reqBuyer, reqPrice},
	EventKindListingCancelled:  {reqCollection, reqToken, reqSeller},
	EventKindOfferCreated:      {reqCollection, reqToken, reqCreator, reqPrice},
	EventKindOfferAccepted:     {reqCollection, reqToken, reqCreator, reqSeller},
	EventKindOfferCancelled:    {reqCollection, reqToken, reqCreator},
	EventKindAuctionCreated:    {reqCollection, reqToken, reqSeller},
	EventKindBidPlaced:         {reqCollection, reqToken, reqBidder, reqBid},
	EventKindAuctionResulted:   {reqCollection, reqToken, reqSeller, reqWinner, reqBid},
	EventKindAuctionCancelled:  {reqCollection, reqToken},
	EventKindAddressVerified:   {reqAccount},
	EventKindAddressUnverified: {reqAccount},
	EventKindInversorVerified:  {reqAccount},

	EventKindSuggestionCreated:   {reqSuggestion, reqCreator, reqGoal},
	EventKindSuggestionFunded:    {reqSuggestion, reqDepositor, reqAmount},
	EventKindSuggestionWithdrawn: {reqSuggestion, reqCreator},
}

// IsKnownKind reports whether the kind has a projection
func IsKnownKind(kind EventKind) bool {
	_, ok := requirements[kind]
	return ok
}

// Validate checks that the event carries every field its kind needs.
// Business rules such as deadlines or auction windows are enforced on chain and
// not checked here. Unknown kinds are not validated either.
func (e *Event) Validate() error {
	for _, r := range requirements[e.Kind] {
		if !r.ok(e) {
			return &ProjectionError{
				Kind:     e.Kind,
				Position: e.Position,
				Field:    r.field,
				Reason:   "missing or invalid",
			}
		}
	}
	return nil
}

// Key returns the NFT identity of the event, empty for account-level events
func (e *Event) Key() (collection string, tokenID string) {
	return e.CollectionAddress, e.TokenID
}
