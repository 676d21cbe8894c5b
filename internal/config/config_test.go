package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0600))
	return configFile
}

func TestLoadIndexerConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *IndexerConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
database:
  host: localhost
  port: 5433
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
nats:
  enabled: true
  url: "nats://localhost:4222"
  stream_name: "TEST_MARKET"
ethereum:
  rpc_url: "http://localhost:8545"
  chain_id: "eip155:4002"
  start_block: 1000
  confirmation_depth: 5
  block_range: 500
  contracts:
    marketplace: "0x0165878A594ca255338adfa4d48449f69242Eb8F"
    auction: "0xa513E6E4b8f2a923D98304ec87F64353C4D5C853"
    collections:
      - "0x5FbDB2315678afecb367f032d93F642f64180aa3"
sync:
  interval: "5s"
  batch_size: 50
  fetch_timeout: "10s"
  malformed_alert_threshold: 2
auth:
  api_keys:
    - "secret"
`,
			validate: func(t *testing.T, cfg *IndexerConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.True(t, cfg.NATS.Enabled)
				assert.Equal(t, "TEST_MARKET", cfg.NATS.StreamName)
				assert.Equal(t, domain.ChainFantomTestnet, cfg.Ethereum.ChainID)
				assert.Equal(t, uint64(1000), cfg.Ethereum.StartBlock)
				assert.Equal(t, uint64(5), cfg.Ethereum.ConfirmationDepth)
				assert.Equal(t, uint64(500), cfg.Ethereum.BlockRange)
				assert.Equal(t, "0x0165878A594ca255338adfa4d48449f69242Eb8F", cfg.Ethereum.Contracts.Marketplace)
				assert.Len(t, cfg.Ethereum.Contracts.Collections, 1)
				assert.Equal(t, 5*time.Second, cfg.Sync.Interval)
				assert.Equal(t, 50, cfg.Sync.BatchSize)
				assert.Equal(t, 10*time.Second, cfg.Sync.FetchTimeout)
				assert.Equal(t, 2, cfg.Sync.MalformedAlertThreshold)
				assert.Equal(t, []string{"secret"}, cfg.Auth.APIKeys)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  dbname: testdb
ethereum:
  rpc_url: "http://localhost:8545"
`,
			validate: func(t *testing.T, cfg *IndexerConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.False(t, cfg.NATS.Enabled)
				assert.Equal(t, "MARKETPLACE", cfg.NATS.StreamName)
				assert.Equal(t, domain.ChainFantomOpera, cfg.Ethereum.ChainID)
				assert.Equal(t, uint64(12), cfg.Ethereum.ConfirmationDepth)
				assert.Equal(t, uint64(2000), cfg.Ethereum.BlockRange)
				assert.Equal(t, 4*time.Second, cfg.Ethereum.BlockHeadTTL)
				assert.Equal(t, time.Minute, cfg.Ethereum.BlockHeadStaleWindow)
				assert.Equal(t, 15*time.Second, cfg.Sync.Interval)
				assert.Equal(t, 500, cfg.Sync.BatchSize)
				assert.Equal(t, 30*time.Second, cfg.Sync.FetchTimeout)
				assert.Equal(t, 5*time.Minute, cfg.Sync.MaxBackoff)
				assert.Equal(t, 3, cfg.Sync.MalformedAlertThreshold)
				assert.Equal(t, 8080, cfg.Server.Port)
			},
		},
		{
			name: "invalid chain id",
			configFile: `
ethereum:
  chain_id: "tezos:mainnet"
`,
			expectError: true,
		},
		{
			name: "invalid contract address",
			configFile: `
ethereum:
  contracts:
    marketplace: "not-an-address"
`,
			expectError: true,
		},
		{
			name: "non positive batch size",
			configFile: `
sync:
  batch_size: 0
`,
			expectError: true,
		},
		{
			name: "invalid yaml",
			configFile: `
database:
  port: invalid
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadIndexerConfig(writeConfig(t, tt.configFile), t.TempDir())

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadIndexerConfig_EnvOverride(t *testing.T) {
	t.Setenv("MARKET_INDEXER_SYNC_BATCH_SIZE", "42")
	t.Setenv("MARKET_INDEXER_ETHEREUM_CONTRACTS_FACTORY", "0x8a68B243B97C8F7E81C347418F48775D7890d0fa")

	cfg, err := LoadIndexerConfig(writeConfig(t, "debug: false\n"), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Sync.BatchSize)
	assert.Equal(t, "0x8a68B243B97C8F7E81C347418F48775D7890d0fa", cfg.Ethereum.Contracts.Factory)
}

func TestLoadVerificationSyncConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *VerificationSyncConfig)
	}{
		{
			name: "valid config",
			configFile: `
private_key: "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
data_file: "config/verified.yaml"
ethereum:
  rpc_url: "http://localhost:8545"
  chain_id: "eip155:31337"
  contracts:
    verification: "0x8a68B243B97C8F7E81C347418F48775D7890d0fa"
`,
			validate: func(t *testing.T, cfg *VerificationSyncConfig) {
				assert.Equal(t, "config/verified.yaml", cfg.DataFile)
				assert.Equal(t, domain.ChainLocal, cfg.Ethereum.ChainID)
				assert.Equal(t, 2*time.Minute, cfg.ReceiptTimeout)
				assert.Equal(t, uint64(20000), cfg.GasLimitPadding)
				assert.False(t, cfg.DryRun)
			},
		},
		{
			name: "dry run without key",
			configFile: `
dry_run: true
ethereum:
  contracts:
    address_registry: "0xa513E6E4b8f2a923D98304ec87F64353C4D5C853"
`,
			validate: func(t *testing.T, cfg *VerificationSyncConfig) {
				assert.True(t, cfg.DryRun)
				assert.Empty(t, cfg.PrivateKey)
			},
		},
		{
			name: "missing private key",
			configFile: `
ethereum:
  contracts:
    verification: "0x8a68B243B97C8F7E81C347418F48775D7890d0fa"
`,
			expectError: true,
		},
		{
			name: "missing contract",
			configFile: `
private_key: "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadVerificationSyncConfig(writeConfig(t, tt.configFile), t.TempDir())

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "indexer",
		Password: "secret",
		DBName:   "market",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=db port=5432 user=indexer password=secret dbname=market sslmode=disable", cfg.DSN())
}
