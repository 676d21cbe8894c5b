package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-marketplace-indexer/internal/adapter"
	"github.com/feral-file/ff-marketplace-indexer/internal/config"
	"github.com/feral-file/ff-marketplace-indexer/internal/logger"
	"github.com/feral-file/ff-marketplace-indexer/internal/providers/ethereum"
	"github.com/feral-file/ff-marketplace-indexer/internal/verification"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	dataFile   = flag.String("data", "", "Path to the verification list, overrides data_file")
	dryRun     = flag.Bool("dry-run", false, "Print the calls that would be sent without sending them")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadVerificationSyncConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if *dataFile != "" {
		cfg.DataFile = *dataFile
	}
	if *dryRun {
		cfg.DryRun = true
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "verification-sync",
			"chain":   string(cfg.Ethereum.ChainID),
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	list, err := verification.LoadList(adapter.NewFileSystem(), cfg.DataFile)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load verification list", zap.Error(err), zap.String("data_file", cfg.DataFile))
	}

	ethClient, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial Ethereum RPC", zap.Error(err), zap.String("rpc_url", cfg.Ethereum.RPCURL))
	}
	defer ethClient.Close()

	contract, err := ethereum.NewVerificationContract(ctx, ethereum.VerificationConfig{
		ChainID:         cfg.Ethereum.ChainID,
		Address:         cfg.Ethereum.Contracts.Verification,
		Registry:        cfg.Ethereum.Contracts.Registry,
		PrivateKey:      cfg.PrivateKey,
		GasLimitPadding: cfg.GasLimitPadding,
		ReceiptTimeout:  cfg.ReceiptTimeout,
	}, ethClient)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to bind verification contract", zap.Error(err))
	}

	logger.InfoCtx(ctx, "Applying verification list",
		zap.String("data_file", cfg.DataFile),
		zap.Int("verified", len(list.Verified)),
		zap.Int("unverified", len(list.Unverified)),
		zap.Int("inversors", len(list.Inversors)),
		zap.Bool("dry_run", cfg.DryRun),
	)

	result, err := verification.NewApplier(contract, cfg.DryRun).Apply(ctx, list)
	if err != nil {
		// Mined calls stay mined; a rerun picks up where this one stopped
		logger.FatalCtx(ctx, "Failed to apply verification list", zap.Error(err), zap.Int("mined", len(result.Changes)))
	}

	logger.InfoCtx(ctx, "Verification list applied",
		zap.Int("changes", len(result.Changes)),
		zap.Int("unchanged", result.Unchanged),
	)
}
