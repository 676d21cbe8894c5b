package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace-indexer/internal/adapter"
	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
	"github.com/feral-file/ff-marketplace-indexer/internal/logger"
)

var (
	verificationABI = mustParseABI(`[
{"inputs":[{"name":"_address","type":"address"}],"name":"verificateAddress","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"inputs":[{"name":"_address","type":"address"}],"name":"unverifyAddress","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"inputs":[{"name":"_address","type":"address"}],"name":"verificateInversor","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"inputs":[{"name":"_address","type":"address"}],"name":"checkIfVerified","outputs":[{"name":"","type":"bool"}],"stateMutability":"view","type":"function"},
{"inputs":[{"name":"_address","type":"address"}],"name":"checkIfVerifiedInversor","outputs":[{"name":"","type":"bool"}],"stateMutability":"view","type":"function"}
]`)

	addressRegistryABI = mustParseABI(`[{"inputs":[],"name":"verification","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"}]`)

	// ErrReadOnly is returned when a transaction is requested without a signing key
	ErrReadOnly = errors.New("verification contract opened without a private key")
)

// VerificationContract reads and changes the verification status of accounts
//
//go:generate mockgen -source=verification.go -destination=../../mocks/verification_contract.go -package=mocks -mock_names=VerificationContract=MockVerificationContract
type VerificationContract interface {
	// Address returns the resolved contract address
	Address() string

	// IsVerified reports whether the account is a verified artist
	IsVerified(ctx context.Context, account string) (bool, error)

	// IsInversor reports whether the account is a verified inversor
	IsInversor(ctx context.Context, account string) (bool, error)

	// VerifyAddress sends verificateAddress and returns the transaction hash
	VerifyAddress(ctx context.Context, account string) (string, error)

	// UnverifyAddress sends unverifyAddress and returns the transaction hash
	UnverifyAddress(ctx context.Context, account string) (string, error)

	// VerifyInversor sends verificateInversor and returns the transaction hash
	VerifyInversor(ctx context.Context, account string) (string, error)

	// WaitForReceipt polls until the transaction is mined and fails if it reverted
	WaitForReceipt(ctx context.Context, txHash string) error
}

// VerificationConfig holds the configuration of the verification contract binding
type VerificationConfig struct {
	ChainID domain.Chain
	// Address of the verification contract. When empty it is read from Registry.
	Address  string
	Registry string
	// PrivateKey is the hex key of the contract owner, empty for read-only use
	PrivateKey      string
	GasLimitPadding uint64
	ReceiptTimeout  time.Duration
	// ReceiptPollInterval is the first receipt poll delay, 0 means 2s
	ReceiptPollInterval time.Duration
}

type verificationContract struct {
	client  adapter.EthClient
	config  VerificationConfig
	address common.Address
	chainID *big.Int
	key     *ecdsa.PrivateKey
	from    common.Address
}

// NewVerificationContract binds the verification contract, resolving its
// address through the address registry when it is not configured
func NewVerificationContract(ctx context.Context, cfg VerificationConfig, client adapter.EthClient) (VerificationContract, error) {
	chainID, err := cfg.ChainID.ChainID()
	if err != nil {
		return nil, err
	}

	c := &verificationContract{
		client:  client,
		config:  cfg,
		chainID: big.NewInt(chainID),
	}

	if cfg.PrivateKey != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("invalid private key: %w", err)
		}
		c.key = key
		c.from = crypto.PubkeyToAddress(key.PublicKey)
	}

	switch {
	case cfg.Address != "":
		c.address = common.HexToAddress(cfg.Address)
	case cfg.Registry != "":
		address, err := c.resolveFromRegistry(ctx, common.HexToAddress(cfg.Registry))
		if err != nil {
			return nil, err
		}
		c.address = address
	default:
		return nil, errors.New("verification contract address or address registry is required")
	}

	return c, nil
}

func (c *verificationContract) resolveFromRegistry(ctx context.Context, registry common.Address) (common.Address, error) {
	data, err := addressRegistryABI.Pack("verification")
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to pack data: %w", err)
	}

	result, err := c.client.CallContract(ctx, ethereum.CallMsg{To: &registry, Data: data}, nil)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to read verification address from registry: %w", err)
	}

	var address common.Address
	if err := addressRegistryABI.UnpackIntoInterface(&address, "verification", result); err != nil {
		return common.Address{}, fmt.Errorf("failed to unpack result: %w", err)
	}
	if address == (common.Address{}) {
		return common.Address{}, errors.New("address registry has no verification contract")
	}

	logger.InfoCtx(ctx, "Resolved verification contract from registry",
		zap.String("registry", registry.Hex()),
		zap.String("verification", address.Hex()))

	return address, nil
}

func (c *verificationContract) Address() string {
	return c.address.Hex()
}

func (c *verificationContract) IsVerified(ctx context.Context, account string) (bool, error) {
	return c.callBool(ctx, "checkIfVerified", account)
}

func (c *verificationContract) IsInversor(ctx context.Context, account string) (bool, error) {
	return c.callBool(ctx, "checkIfVerifiedInversor", account)
}

func (c *verificationContract) callBool(ctx context.Context, method string, account string) (bool, error) {
	data, err := verificationABI.Pack(method, common.HexToAddress(account))
	if err != nil {
		return false, fmt.Errorf("failed to pack data: %w", err)
	}

	result, err := c.client.CallContract(ctx, ethereum.CallMsg{To: &c.address, Data: data}, nil)
	if err != nil {
		return false, fmt.Errorf("failed to call %s: %w", method, err)
	}

	var ok bool
	if err := verificationABI.UnpackIntoInterface(&ok, method, result); err != nil {
		return false, fmt.Errorf("failed to unpack %s result: %w", method, err)
	}

	return ok, nil
}

func (c *verificationContract) VerifyAddress(ctx context.Context, account string) (string, error) {
	return c.send(ctx, "verificateAddress", account)
}

func (c *verificationContract) UnverifyAddress(ctx context.Context, account string) (string, error) {
	return c.send(ctx, "unverifyAddress", account)
}

func (c *verificationContract) VerifyInversor(ctx context.Context, account string) (string, error) {
	return c.send(ctx, "verificateInversor", account)
}

// send signs and submits a legacy transaction calling method with account
func (c *verificationContract) send(ctx context.Context, method string, account string) (string, error) {
	if c.key == nil {
		return "", ErrReadOnly
	}

	data, err := verificationABI.Pack(method, common.HexToAddress(account))
	if err != nil {
		return "", fmt.Errorf("failed to pack data: %w", err)
	}

	nonce, err := c.client.PendingNonceAt(ctx, c.from)
	if err != nil {
		return "", fmt.Errorf("failed to get nonce: %w", err)
	}

	gasPrice, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to suggest gas price: %w", err)
	}

	gas, err := c.client.EstimateGas(ctx, ethereum.CallMsg{
		From: c.from,
		To:   &c.address,
		Data: data,
	})
	if err != nil {
		return "", fmt.Errorf("failed to estimate gas for %s(%s): %w", method, account, err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &c.address,
		Gas:      gas + c.config.GasLimitPadding,
		GasPrice: gasPrice,
		Data:     data,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainID), c.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := c.client.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("failed to send %s(%s): %w", method, account, err)
	}

	logger.InfoCtx(ctx, "Sent verification transaction",
		zap.String("method", method),
		zap.String("account", account),
		zap.String("txHash", signed.Hash().Hex()),
		zap.Uint64("nonce", nonce))

	return signed.Hash().Hex(), nil
}

func (c *verificationContract) WaitForReceipt(ctx context.Context, txHash string) error {
	hash := common.HexToHash(txHash)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.config.ReceiptPollInterval
	if b.InitialInterval <= 0 {
		b.InitialInterval = 2 * time.Second
	}
	b.MaxInterval = 15 * time.Second
	b.MaxElapsedTime = c.config.ReceiptTimeout

	operation := func() error {
		receipt, err := c.client.TransactionReceipt(ctx, hash)
		if err != nil {
			if errors.Is(err, ethereum.NotFound) {
				logger.DebugCtx(ctx, "Transaction not mined yet", zap.String("txHash", txHash))
			}
			return fmt.Errorf("failed to get receipt: %w", err)
		}

		if receipt.Status != types.ReceiptStatusSuccessful {
			return backoff.Permanent(fmt.Errorf("transaction %s reverted", txHash))
		}
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return fmt.Errorf("failed waiting for receipt of %s: %w", txHash, err)
	}

	return nil
}
