package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-marketplace-indexer/internal/adapter"
	"github.com/feral-file/ff-marketplace-indexer/internal/api/middleware"
	"github.com/feral-file/ff-marketplace-indexer/internal/api/server"
	"github.com/feral-file/ff-marketplace-indexer/internal/block"
	"github.com/feral-file/ff-marketplace-indexer/internal/config"
	"github.com/feral-file/ff-marketplace-indexer/internal/logger"
	"github.com/feral-file/ff-marketplace-indexer/internal/messaging"
	"github.com/feral-file/ff-marketplace-indexer/internal/projection"
	"github.com/feral-file/ff-marketplace-indexer/internal/providers/ethereum"
	"github.com/feral-file/ff-marketplace-indexer/internal/providers/jetstream"
	"github.com/feral-file/ff-marketplace-indexer/internal/scheduler"
	"github.com/feral-file/ff-marketplace-indexer/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	once       = flag.Bool("once", false, "Run a single reconciliation cycle and exit")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadIndexerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "marketplace-indexer",
			"chain":   string(cfg.Ethereum.ChainID),
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Marketplace Indexer")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	if cfg.Database.ReadHost != "" {
		if err := store.RegisterReadReplica(db, cfg.Database.ReadDSN()); err != nil {
			logger.FatalCtx(ctx, "Failed to configure read replica", zap.Error(err), zap.String("read_host", cfg.Database.ReadHost))
		}
		logger.InfoCtx(ctx, "Read queries routed to replica", zap.String("read_host", cfg.Database.ReadHost))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clockAdapter := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	natsJS := adapter.NewNatsJetStream()
	ethDialer := adapter.NewEthClientDialer()

	// Connect to the chain
	rpcClient, err := ethDialer.Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial Ethereum RPC", zap.Error(err), zap.String("rpc_url", cfg.Ethereum.RPCURL))
	}
	defer rpcClient.Close()

	blockProvider := block.NewBlockProvider(
		ethereum.NewEthereumBlockFetcher(rpcClient, clockAdapter),
		block.Config{
			TTL:         cfg.Ethereum.BlockHeadTTL,
			StaleWindow: cfg.Ethereum.BlockHeadStaleWindow,
		},
		clockAdapter,
	)
	ethereumClient := ethereum.NewClient(cfg.Ethereum.ChainID, rpcClient, blockProvider)

	source := ethereum.NewSource(ethereum.SourceConfig{
		ChainID: cfg.Ethereum.ChainID,
		Contracts: ethereum.Contracts{
			Marketplace:  cfg.Ethereum.Contracts.Marketplace,
			Auction:      cfg.Ethereum.Contracts.Auction,
			Verification: cfg.Ethereum.Contracts.Verification,
			Community:    cfg.Ethereum.Contracts.Community,
			Factory:      cfg.Ethereum.Contracts.Factory,
			Collections:  cfg.Ethereum.Contracts.Collections,
		},
		ConfirmationDepth: cfg.Ethereum.ConfirmationDepth,
		BlockRange:        cfg.Ethereum.BlockRange,
		HeaderWorkers:     cfg.Worker.WorkerPoolSize,
		HeaderQueueSize:   cfg.Worker.WorkerQueueSize,
	}, ethereumClient, blockProvider, dataStore)
	defer source.Close()

	// Push triggers start a cycle ahead of the interval
	var triggers []messaging.Trigger
	if cfg.Ethereum.WebSocketURL != "" {
		wsClient, err := ethDialer.Dial(ctx, cfg.Ethereum.WebSocketURL)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to dial Ethereum WebSocket", zap.Error(err), zap.String("websocket_url", cfg.Ethereum.WebSocketURL))
		}
		defer wsClient.Close()
		headWatcher := ethereum.NewHeadWatcher(ethereum.NewClient(cfg.Ethereum.ChainID, wsClient, blockProvider))
		defer headWatcher.Close()
		triggers = append(triggers, headWatcher)
	}

	var publisher messaging.Publisher
	if cfg.NATS.Enabled {
		natsCfg := jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			ConsumerName:   cfg.NATS.ConsumerName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
			AckWait:        cfg.NATS.AckWait,
		}

		publisher, err = jetstream.NewPublisher(ctx, natsCfg, natsJS, jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create NATS publisher", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		defer publisher.Close()

		natsTrigger, err := jetstream.NewTrigger(natsCfg, natsJS)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create NATS trigger", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		defer natsTrigger.Close()
		triggers = append(triggers, natsTrigger)
		logger.InfoCtx(ctx, "Connected to NATS JetStream")
	} else {
		logger.WarnCtx(ctx, "NATS disabled, notifications are not fanned out")
	}

	projector := projection.NewProjector(dataStore, projection.NewEngine(clockAdapter), publisher)

	sched := scheduler.NewScheduler(source, projector, dataStore, triggers, scheduler.Config{
		ChainID:                 cfg.Ethereum.ChainID,
		StartBlock:              cfg.Ethereum.StartBlock,
		ConfirmationDepth:       cfg.Ethereum.ConfirmationDepth,
		BatchSize:               cfg.Sync.BatchSize,
		Interval:                cfg.Sync.Interval,
		FetchTimeout:            cfg.Sync.FetchTimeout,
		MaxBackoff:              cfg.Sync.MaxBackoff,
		MalformedAlertThreshold: cfg.Sync.MalformedAlertThreshold,
	}, clockAdapter)

	if *once {
		result, err := sched.RunCycle(ctx)
		if err != nil {
			logger.FatalCtx(ctx, "Reconciliation cycle failed", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Reconciliation cycle completed",
			zap.String("cycleID", result.CycleID),
			zap.Int("applied", result.Applied),
			zap.Stringer("cursor", result.To),
		)
		return
	}

	auth, err := middleware.NewAuthenticator(middleware.AuthConfig{
		JWTPublicKey: cfg.Auth.JWTPublicKey,
		APIKeys:      cfg.Auth.APIKeys,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to configure authentication", zap.Error(err))
	}

	srv := server.New(server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}, dataStore, sched, auth, clockAdapter)

	errCh := make(chan error, 2)
	schedulerDone := make(chan struct{})

	go func() {
		defer close(schedulerDone)
		if err := sched.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- fmt.Errorf("scheduler: %w", err)
		}
	}()

	go func() {
		if err := srv.Start(); err != nil {
			errCh <- fmt.Errorf("server: %w", err)
		}
	}()

	// Wait for shutdown signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err)
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(err, zap.String("component", "server"))
	}

	// The in-flight event and its cursor write complete before Run returns
	select {
	case <-schedulerDone:
	case <-shutdownCtx.Done():
		logger.Warn("Scheduler did not stop before the shutdown deadline")
	}

	logger.Info("Marketplace Indexer stopped")
}
