package domain

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Chain represents the blockchain network identifier using CAIP-2 format
type Chain string

const (
	ChainEthereumMainnet Chain = "eip155:1"
	ChainEthereumSepolia Chain = "eip155:11155111"
	ChainFantomOpera     Chain = "eip155:250"
	ChainFantomTestnet   Chain = "eip155:4002"
	ChainLocal           Chain = "eip155:31337"
)

// ChainID returns the numeric EIP-155 chain id
func (c Chain) ChainID() (int64, error) {
	namespace, reference, ok := strings.Cut(string(c), ":")
	if !ok || namespace != "eip155" {
		return 0, fmt.Errorf("unsupported chain: %s", c)
	}

	id, err := strconv.ParseInt(reference, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid chain reference %q: %w", reference, err)
	}

	return id, nil
}

// IsValidChain checks if a chain is an EIP-155 chain identifier
func IsValidChain(chain Chain) bool {
	_, err := chain.ChainID()
	return err == nil
}

// Position is the total order of chain events: (blockNumber, logIndex)
type Position struct {
	Block    uint64 `json:"block"`
	LogIndex uint32 `json:"log_index"`
}

// EndOfBlock returns the position after every log of the given block
func EndOfBlock(block uint64) Position {
	return Position{Block: block, LogIndex: math.MaxUint32}
}

// Compare returns -1, 0 or 1 when p is before, equal to or after o
func (p Position) Compare(o Position) int {
	switch {
	case p.Block < o.Block:
		return -1
	case p.Block > o.Block:
		return 1
	case p.LogIndex < o.LogIndex:
		return -1
	case p.LogIndex > o.LogIndex:
		return 1
	default:
		return 0
	}
}

// Less reports whether p sorts before o
func (p Position) Less(o Position) bool {
	return p.Compare(o) < 0
}

// After reports whether p sorts after o
func (p Position) After(o Position) bool {
	return p.Compare(o) > 0
}

// IsZero reports whether p is the zero position
func (p Position) IsZero() bool {
	return p.Block == 0 && p.LogIndex == 0
}

// IsEndOfBlock reports whether p covers every log of its block
func (p Position) IsEndOfBlock() bool {
	return p.LogIndex == math.MaxUint32
}

// NextBlock returns the first block that may still hold events after p
func (p Position) NextBlock() uint64 {
	if p.IsEndOfBlock() {
		return p.Block + 1
	}
	return p.Block
}

func (p Position) String() string {
	if p.IsEndOfBlock() {
		return fmt.Sprintf("%d:end", p.Block)
	}
	return fmt.Sprintf("%d:%d", p.Block, p.LogIndex)
}

// Cursor is the last position whose effects are durably applied to the read models
type Cursor struct {
	Position  Position  `json:"position"`
	BlockHash string    `json:"block_hash,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InitialCursor returns the cursor used before anything was applied,
// so that the first fetch starts at startBlock.
func InitialCursor(startBlock uint64) Cursor {
	if startBlock == 0 {
		return Cursor{}
	}
	return Cursor{Position: EndOfBlock(startBlock - 1)}
}

// BlockRef identifies a block by number and hash
type BlockRef struct {
	Number uint64
	Hash   string
}

// EventKind represents the type of marketplace event
type EventKind string

const (
	EventKindMint              EventKind = "mint"
	EventKindTransfer          EventKind = "transfer"
	EventKindBurn              EventKind = "burn"
	EventKindCollectionCreated EventKind = "collection_created"
	EventKindItemListed        EventKind = "item_listed"
	EventKindListingUpdated    EventKind = "listing_updated"
	EventKindItemSold          EventKind = "item_sold"
	EventKindListingCancelled  EventKind = "listing_cancelled"
	EventKindOfferCreated      EventKind = "offer_created"
	EventKindOfferAccepted     EventKind = "offer_accepted"
	EventKindOfferCancelled    EventKind = "offer_cancelled"
	EventKindAuctionCreated    EventKind = "auction_created"
	EventKindBidPlaced         EventKind = "bid_placed"
	EventKindAuctionResulted   EventKind = "auction_resulted"
	EventKindAuctionCancelled  EventKind = "auction_cancelled"
	EventKindAddressVerified   EventKind = "address_verified"
	EventKindAddressUnverified EventKind = "address_unverified"
	EventKindInversorVerified  EventKind = "inversor_verified"
	EventKindUnknown           EventKind = "unknown"

	// Community contract
	EventKindSuggestionCreated   EventKind = "suggestion_created"
	EventKindSuggestionFunded    EventKind = "suggestion_funded"
	EventKindSuggestionWithdrawn EventKind = "suggestion_withdrawn"
)

// Participants holds the addresses involved in an event. Which ones are set depends on the kind.
type Participants struct {
	From    string `json:"from,omitempty"`
	To      string `json:"to,omitempty"`
	Seller  string `json:"seller,omitempty"`
	Buyer   string `json:"buyer,omitempty"`
	Creator string `json:"creator,omitempty"`
	Bidder  string `json:"bidder,omitempty"`
	Winner  string `json:"winner,omitempty"`
	Account string `json:"account,omitempty"`
	// Depositor funds a community suggestion, the proposer is the creator
	Depositor string `json:"depositor,omitempty"`
}

// Amounts holds the numeric payload of an event. Token amounts are base-10 uint256 strings,
// times are unix seconds.
type Amounts struct {
	Price        string `json:"price,omitempty"`
	Royalty      string `json:"royalty,omitempty"`
	ReservePrice string `json:"reserve_price,omitempty"`
	BuyNowPrice  string `json:"buy_now_price,omitempty"`
	Bid          string `json:"bid,omitempty"`
	StartTime    int64  `json:"start_time,omitempty"`
	EndTime      int64  `json:"end_time,omitempty"`
	Deadline     int64  `json:"deadline,omitempty"`
	// Goal is the total a suggestion asks for, Amount a single deposit or withdrawal
	Goal   string `json:"goal,omitempty"`
	Amount string `json:"amount,omitempty"`
}

// Event is an immutable fact read from the chain
type Event struct {
	Kind              EventKind    `json:"kind"`
	Chain             Chain        `json:"chain"`
	Contract          string       `json:"contract"`
	CollectionAddress string       `json:"collection_address,omitempty"`
	TokenID           string       `json:"token_id,omitempty"`
	Participants      Participants `json:"participants"`
	Amounts           Amounts      `json:"amounts"`
	PayToken          string       `json:"pay_token,omitempty"`
	MetadataRef       string       `json:"metadata_ref,omitempty"`
	Name              string       `json:"name,omitempty"`
	SuggestionID      string       `json:"suggestion_id,omitempty"`
	Description       string       `json:"description,omitempty"`
	Position          Position     `json:"position"`
	BlockHash         string       `json:"block_hash"`
	TxHash            string       `json:"tx_hash"`
	Timestamp         time.Time    `json:"timestamp"`
}

// Batch is one page returned by the event source.
// Checkpoint is the highest position the source has fully scanned, which is at or after
// the last event and lets the cursor move across ranges without events.
type Batch struct {
	Events         []Event
	Checkpoint     Position
	CheckpointHash string
}

// TransferKind determines the event kind of an ERC721 transfer based on from/to addresses
func TransferKind(from, to string) EventKind {
	switch {
	case IsZeroAddress(from):
		return EventKindMint
	case IsZeroAddress(to):
		return EventKindBurn
	default:
		return EventKindTransfer
	}
}

// IsZeroAddress reports whether addr is empty or the zero address
func IsZeroAddress(addr string) bool {
	return addr == "" || common.HexToAddress(addr) == (common.Address{})
}

// NormalizeAddress returns the EIP-55 checksummed form of an address
func NormalizeAddress(addr string) string {
	if addr == "" {
		return ""
	}
	return common.HexToAddress(addr).Hex()
}

// IsValidAddress checks if the string is a hex encoded address
func IsValidAddress(addr string) bool {
	return common.IsHexAddress(addr)
}

// ParseAmount parses a base-10 non-negative integer amount
func ParseAmount(s string) (*big.Int, bool) {
	if s == "" {
		return nil, false
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.Sign() < 0 {
		return nil, false
	}
	return n, true
}
