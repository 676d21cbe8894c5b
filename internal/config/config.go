package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadHost        string        `mapstructure:"read_host"` // Optional replica used by the read API
	ReadPort        int           `mapstructure:"read_port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	ConsumerName   string        `mapstructure:"consumer_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	AckWait        time.Duration `mapstructure:"ack_wait"`
}

// ContractsConfig holds the marketplace contract addresses.
// Collections lists ERC721 collections indexed from the start; collections
// deployed by the factory afterwards are discovered from its events.
type ContractsConfig struct {
	Marketplace  string   `mapstructure:"marketplace"`
	Auction      string   `mapstructure:"auction"`
	Verification string   `mapstructure:"verification"`
	Community    string   `mapstructure:"community"`
	Factory      string   `mapstructure:"factory"`
	Registry     string   `mapstructure:"address_registry"`
	Collections  []string `mapstructure:"collections"`
}

// EthereumConfig holds chain access configuration
type EthereumConfig struct {
	WebSocketURL         string          `mapstructure:"websocket_url"`
	RPCURL               string          `mapstructure:"rpc_url"`
	ChainID              domain.Chain    `mapstructure:"chain_id"`
	StartBlock           uint64          `mapstructure:"start_block"`
	ConfirmationDepth    uint64          `mapstructure:"confirmation_depth"`
	BlockRange           uint64          `mapstructure:"block_range"`
	BlockHeadTTL         time.Duration   `mapstructure:"block_head_ttl"`
	BlockHeadStaleWindow time.Duration   `mapstructure:"block_head_stale_window"`
	Contracts            ContractsConfig `mapstructure:"contracts"`
}

// SyncConfig holds reconciliation scheduler configuration
type SyncConfig struct {
	Interval                time.Duration `mapstructure:"interval"`
	BatchSize               int           `mapstructure:"batch_size"`
	FetchTimeout            time.Duration `mapstructure:"fetch_timeout"`
	MaxBackoff              time.Duration `mapstructure:"max_backoff"`
	MalformedAlertThreshold int           `mapstructure:"malformed_alert_threshold"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration for administrative routes
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// WorkerConfig holds worker pool configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// IndexerConfig holds configuration for marketplace-indexer
type IndexerConfig struct {
	BaseConfig `mapstructure:",squash"`
	Worker     WorkerConfig   `mapstructure:"worker"`
	Database   DatabaseConfig `mapstructure:"database"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Ethereum   EthereumConfig `mapstructure:"ethereum"`
	Sync       SyncConfig     `mapstructure:"sync"`
	Server     ServerConfig   `mapstructure:"server"`
	Auth       AuthConfig     `mapstructure:"auth"`
}

// VerificationSyncConfig holds configuration for verification-sync
type VerificationSyncConfig struct {
	BaseConfig `mapstructure:",squash"`
	Ethereum   EthereumConfig `mapstructure:"ethereum"`
	// PrivateKey is the hex encoded key of the verification contract owner
	PrivateKey      string        `mapstructure:"private_key"`
	DataFile        string        `mapstructure:"data_file"`
	ReceiptTimeout  time.Duration `mapstructure:"receipt_timeout"`
	DryRun          bool          `mapstructure:"dry_run"`
	GasLimitPadding uint64        `mapstructure:"gas_limit_padding"`
}

// LoadIndexerConfig loads configuration for marketplace-indexer
func LoadIndexerConfig(configFile string, envPath string) (*IndexerConfig, error) {
	v := configureViper("marketplace-indexer", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("nats.enabled", false)
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "MARKETPLACE")
	v.SetDefault("nats.consumer_name", "marketplace-indexer")
	v.SetDefault("nats.connection_name", "marketplace-indexer")
	v.SetDefault("nats.ack_wait", "30s")
	v.SetDefault("ethereum.chain_id", string(domain.ChainFantomOpera))
	v.SetDefault("ethereum.confirmation_depth", 12)
	v.SetDefault("ethereum.block_range", 2000)
	v.SetDefault("ethereum.block_head_ttl", "4s")
	v.SetDefault("ethereum.block_head_stale_window", "1m")
	v.SetDefault("sync.interval", "15s")
	v.SetDefault("sync.batch_size", 500)
	v.SetDefault("sync.fetch_timeout", "30s")
	v.SetDefault("sync.max_backoff", "5m")
	v.SetDefault("sync.malformed_alert_threshold", 3)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("worker.pool_size", 8)
	v.SetDefault("worker.queue_size", 256)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg IndexerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Ethereum.validate(); err != nil {
		return nil, err
	}
	if cfg.Sync.BatchSize <= 0 {
		return nil, errors.New("sync.batch_size must be positive")
	}

	return &cfg, nil
}

// LoadVerificationSyncConfig loads configuration for verification-sync
func LoadVerificationSyncConfig(configFile string, envPath string) (*VerificationSyncConfig, error) {
	v := configureViper("verification-sync", configFile, envPath)

	// Set defaults
	v.SetDefault("ethereum.chain_id", string(domain.ChainFantomOpera))
	v.SetDefault("receipt_timeout", "2m")
	v.SetDefault("gas_limit_padding", 20000)
	v.SetDefault("dry_run", false)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg VerificationSyncConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if !domain.IsValidChain(cfg.Ethereum.ChainID) {
		return nil, fmt.Errorf("invalid ethereum.chain_id: %s", cfg.Ethereum.ChainID)
	}
	if cfg.Ethereum.Contracts.Verification == "" && cfg.Ethereum.Contracts.Registry == "" {
		return nil, errors.New("ethereum.contracts.verification or ethereum.contracts.address_registry is required")
	}
	if !cfg.DryRun && cfg.PrivateKey == "" {
		return nil, errors.New("private_key is required unless dry_run is set")
	}

	return &cfg, nil
}

func (c *EthereumConfig) validate() error {
	if !domain.IsValidChain(c.ChainID) {
		return fmt.Errorf("invalid ethereum.chain_id: %s", c.ChainID)
	}
	if c.BlockRange == 0 {
		return errors.New("ethereum.block_range must be positive")
	}

	addresses := []string{
		c.Contracts.Marketplace,
		c.Contracts.Auction,
		c.Contracts.Verification,
		c.Contracts.Community,
		c.Contracts.Factory,
	}
	addresses = append(addresses, c.Contracts.Collections...)
	for _, addr := range addresses {
		if addr != "" && !domain.IsValidAddress(addr) {
			return fmt.Errorf("invalid contract address: %s", addr)
		}
	}

	return nil
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use environment variables
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in the current directory, the service
		// directory (e.g. cmd/marketplace-indexer/) and config/
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("MARKET_INDEXER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.read_host",
		"database.read_port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.enabled",
		"nats.url",
		"nats.stream_name",
		"nats.consumer_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.ack_wait",
		// Ethereum
		"ethereum.websocket_url",
		"ethereum.rpc_url",
		"ethereum.chain_id",
		"ethereum.start_block",
		"ethereum.confirmation_depth",
		"ethereum.block_range",
		"ethereum.block_head_ttl",
		"ethereum.block_head_stale_window",
		"ethereum.contracts.marketplace",
		"ethereum.contracts.auction",
		"ethereum.contracts.verification",
		"ethereum.contracts.community",
		"ethereum.contracts.factory",
		"ethereum.contracts.address_registry",
		"ethereum.contracts.collections",
		// Sync
		"sync.interval",
		"sync.batch_size",
		"sync.fetch_timeout",
		"sync.max_backoff",
		"sync.malformed_alert_threshold",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Worker
		"worker.pool_size",
		"worker.queue_size",
		// Verification sync
		"private_key",
		"data_file",
		"receipt_timeout",
		"dry_run",
		"gas_limit_padding",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// ReadDSN returns the read-replica database connection string.
// If ReadPort is not configured, it falls back to Port.
func (c *DatabaseConfig) ReadDSN() string {
	port := c.ReadPort
	if port == 0 {
		port = c.Port
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.ReadHost, port, c.User, c.Password, c.DBName, c.SSLMode)
}
