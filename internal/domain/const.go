package domain

const (
	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"

	// Royalties are expressed in basis points
	ROYALTY_DENOMINATOR = 10000

	// Notification types
	NOTIFICATION_ITEM_SOLD      = "ITEM_SOLD"
	NOTIFICATION_OFFER_ACCEPTED = "OFFER_ACCEPTED"
	NOTIFICATION_AUCTION_WON    = "AUCTION_RESULTED"
	NOTIFICATION_OUTBID         = "OUTBID"
)
