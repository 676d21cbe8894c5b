package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace-indexer/internal/adapter"
	"github.com/feral-file/ff-marketplace-indexer/internal/block"
	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
	"github.com/feral-file/ff-marketplace-indexer/internal/logger"
)

const (
	// filterLogsTimeout bounds one paginated FilterLogs call
	filterLogsTimeout = time.Minute

	// defaultLogStepSize is the initial block span of one eth_getLogs request
	defaultLogStepSize = uint64(5000)
)

var (
	erc721TokenURIABI = mustParseABI(`[{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"tokenURI","outputs":[{"name":"","type":"string"}],"payable":false,"stateMutability":"view","type":"function"}]`)
	erc2981ABI        = mustParseABI(`[{"inputs":[{"name":"tokenId","type":"uint256"},{"name":"salePrice","type":"uint256"}],"name":"royaltyInfo","outputs":[{"name":"receiver","type":"address"},{"name":"royaltyAmount","type":"uint256"}],"stateMutability":"view","type":"function"}]`)
)

type EthereumClient interface {
	// ParseEventLog turns a log into a marketplace event. Logs with an unrecognised
	// signature become events of kind unknown; ERC20 transfers are skipped with a nil event.
	ParseEventLog(ctx context.Context, vLog types.Log) (*domain.Event, error)

	// FilterLogs retrieves logs for a block range, splitting the range when the node
	// refuses to return that many results
	FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error)

	// SubscribeNewHead subscribes to new chain heads
	SubscribeNewHead(ctx context.Context, ch chan<- *types.Header) (ethereum.Subscription, error)

	// ERC721TokenURI fetches the tokenURI from an ERC721 contract
	ERC721TokenURI(ctx context.Context, contractAddress string, tokenNumber string) (string, error)

	// ERC2981Royalty fetches the royalty of a token in basis points
	ERC2981Royalty(ctx context.Context, contractAddress string, tokenNumber string) (string, error)

	// Close closes the connection
	Close()
}

type ethereumClient struct {
	chainID       domain.Chain
	client        adapter.EthClient
	blockProvider block.BlockProvider
	stepSize      uint64
}

func NewClient(chainID domain.Chain, client adapter.EthClient, blockProvider block.BlockProvider) EthereumClient {
	return &ethereumClient{
		chainID:       chainID,
		client:        client,
		blockProvider: blockProvider,
		stepSize:      defaultLogStepSize,
	}
}

// SubscribeNewHead subscribes to new chain heads
func (c *ethereumClient) SubscribeNewHead(ctx context.Context, ch chan<- *types.Header) (ethereum.Subscription, error) {
	return c.client.SubscribeNewHead(ctx, ch)
}

// FilterLogs handles pagination for eth_getLogs to work around provider result limits
func (c *ethereumClient) FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, filterLogsTimeout)
	defer cancel()

	// If blockhash is specified, use it directly (no pagination needed)
	if query.BlockHash != nil {
		return c.client.FilterLogs(timeoutCtx, query)
	}

	if query.FromBlock == nil || query.ToBlock == nil {
		return nil, fmt.Errorf("filter query needs both fromBlock and toBlock")
	}
	if query.FromBlock.Cmp(query.ToBlock) > 0 {
		return nil, nil
	}

	return c.getLogsWithRetry(timeoutCtx, query, c.stepSize)
}

// getLogsWithRetry processes the range from query.FromBlock to query.ToBlock in
// chunks, halving the chunk size whenever the node reports too many results
func (c *ethereumClient) getLogsWithRetry(ctx context.Context, query ethereum.FilterQuery, stepSize uint64) ([]types.Log, error) {
	currentStepSize := stepSize

	var allLogs []types.Log
	currentFrom := new(big.Int).Set(query.FromBlock)

	for currentFrom.Cmp(query.ToBlock) <= 0 {
		currentTo := new(big.Int).Add(currentFrom, new(big.Int).SetUint64(currentStepSize-1))
		if currentTo.Cmp(query.ToBlock) > 0 {
			currentTo.Set(query.ToBlock)
		}

		queryCopy := query
		queryCopy.FromBlock = new(big.Int).Set(currentFrom)
		queryCopy.ToBlock = new(big.Int).Set(currentTo)

		logs, err := c.client.FilterLogs(ctx, queryCopy)
		if err == nil {
			allLogs = append(allLogs, logs...)
			currentFrom.SetUint64(currentTo.Uint64() + 1)
			continue
		}

		if !isTooManyResultsError(err) || currentStepSize == 1 {
			return nil, err
		}

		currentStepSize = currentStepSize / 2

		logger.WarnCtx(ctx, "Too many results, reducing step size",
			zap.Uint64("oldStepSize", currentStepSize*2),
			zap.Uint64("newStepSize", currentStepSize),
			zap.Uint64("fromBlock", currentFrom.Uint64()),
			zap.Uint64("toBlock", currentTo.Uint64()))
	}

	return allLogs, nil
}

// isTooManyResultsError checks if the error is related to too many results
func isTooManyResultsError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	return strings.Contains(errStr, "query returned more than 10000 results") ||
		strings.Contains(errStr, "query timeout exceeded") ||
		strings.Contains(errStr, "too many results") ||
		strings.Contains(errStr, "block range is too wide") ||
		strings.Contains(errStr, "exceeded maximum")
}

func (c *ethereumClient) callView(ctx context.Context, contractAddress string, data []byte) ([]byte, error) {
	contractAddr := common.HexToAddress(contractAddress)
	result, err := c.client.CallContract(ctx, ethereum.CallMsg{
		To:   &contractAddr,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call contract: %w", err)
	}
	return result, nil
}

// ERC721TokenURI fetches the tokenURI from an ERC721 contract
func (c *ethereumClient) ERC721TokenURI(ctx context.Context, contractAddress string, tokenNumber string) (string, error) {
	tokenID, ok := new(big.Int).SetString(tokenNumber, 10)
	if !ok {
		return "", fmt.Errorf("invalid token number: %s", tokenNumber)
	}

	data, err := erc721TokenURIABI.Pack("tokenURI", tokenID)
	if err != nil {
		return "", fmt.Errorf("failed to pack data: %w", err)
	}

	result, err := c.callView(ctx, contractAddress, data)
	if err != nil {
		return "", err
	}

	var uri string
	if err := erc721TokenURIABI.UnpackIntoInterface(&uri, "tokenURI", result); err != nil {
		return "", fmt.Errorf("failed to unpack result: %w", err)
	}

	return uri, nil
}

// ERC2981Royalty asks royaltyInfo for a sale price equal to the basis point
// denominator, so the returned amount is the royalty in basis points
func (c *ethereumClient) ERC2981Royalty(ctx context.Context, contractAddress string, tokenNumber string) (string, error) {
	tokenID, ok := new(big.Int).SetString(tokenNumber, 10)
	if !ok {
		return "", fmt.Errorf("invalid token number: %s", tokenNumber)
	}

	data, err := erc2981ABI.Pack("royaltyInfo", tokenID, big.NewInt(domain.ROYALTY_DENOMINATOR))
	if err != nil {
		return "", fmt.Errorf("failed to pack data: %w", err)
	}

	result, err := c.callView(ctx, contractAddress, data)
	if err != nil {
		return "", err
	}

	values, err := erc2981ABI.Unpack("royaltyInfo", result)
	if err != nil {
		return "", fmt.Errorf("failed to unpack result: %w", err)
	}
	if len(values) != 2 {
		return "", fmt.Errorf("unexpected royaltyInfo result length: %d", len(values))
	}

	amount, ok := values[1].(*big.Int)
	if !ok {
		return "", fmt.Errorf("unexpected royaltyInfo amount type %T", values[1])
	}

	return amount.String(), nil
}

// ParseEventLog parses a log into a marketplace event
func (c *ethereumClient) ParseEventLog(ctx context.Context, vLog types.Log) (*domain.Event, error) {
	header, err := c.blockProvider.GetHeader(ctx, vLog.BlockNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get block header: %w", err)
	}

	event := &domain.Event{
		Kind:     domain.EventKindUnknown,
		Chain:    c.chainID,
		Contract: vLog.Address.Hex(),
		Position: domain.Position{
			Block:    vLog.BlockNumber,
			LogIndex: uint32(vLog.Index), //nolint:gosec,G115 // log indexes are bounded by the block gas limit
		},
		BlockHash: vLog.BlockHash.Hex(),
		TxHash:    vLog.TxHash.Hex(),
		Timestamp: header.Timestamp,
	}

	if len(vLog.Topics) == 0 {
		return event, nil
	}

	abiEvent, err := marketplaceABI.EventByID(vLog.Topics[0])
	if err != nil {
		logger.DebugCtx(ctx, "Unrecognised event signature",
			zap.String("contract", event.Contract),
			zap.String("signature", vLog.Topics[0].Hex()),
			zap.Stringer("position", event.Position))
		return event, nil
	}

	if abiEvent.ID == transferEventSignature {
		// ERC20 has 3 topics (signature, from, to) with value in data,
		// ERC721 has 4 topics (signature, from, to, tokenId) with no data
		if len(vLog.Topics) == 3 {
			logger.DebugCtx(ctx, "Skipping ERC20 transfer event",
				zap.String("contract", event.Contract),
				zap.String("txHash", event.TxHash))
			return nil, nil
		}
		event.Kind = domain.EventKindTransfer
	} else {
		event.Kind = eventKinds[abiEvent.Name]
	}

	values, err := decodeLog(abiEvent, vLog)
	if err != nil {
		// The event keeps its kind without payload so the projection rejects it
		logger.WarnCtx(ctx, "Failed to decode event log",
			zap.String("kind", string(event.Kind)),
			zap.Stringer("position", event.Position),
			zap.Error(err))
		return event, nil
	}

	fillEvent(event, abiEvent.Name, values)

	if event.Kind == domain.EventKindMint {
		c.enrichMint(ctx, event)
	}

	return event, nil
}

// enrichMint reads the metadata reference and royalty of a freshly minted token.
// Collections without tokenURI or ERC2981 simply leave the fields empty.
func (c *ethereumClient) enrichMint(ctx context.Context, event *domain.Event) {
	uri, err := c.ERC721TokenURI(ctx, event.CollectionAddress, event.TokenID)
	if err != nil {
		logger.DebugCtx(ctx, "Failed to fetch token URI",
			zap.String("collection", event.CollectionAddress),
			zap.String("tokenID", event.TokenID),
			zap.Error(err))
	} else {
		event.MetadataRef = uri
	}

	royalty, err := c.ERC2981Royalty(ctx, event.CollectionAddress, event.TokenID)
	if err != nil {
		logger.DebugCtx(ctx, "Failed to fetch royalty",
			zap.String("collection", event.CollectionAddress),
			zap.String("tokenID", event.TokenID),
			zap.Error(err))
	} else {
		event.Amounts.Royalty = royalty
	}
}

// Close closes the connection
func (c *ethereumClient) Close() {
	c.client.Close()
}
