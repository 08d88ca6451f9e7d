package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// DriverPostgres selects the PostgreSQL gorm driver
	DriverPostgres = "postgres"
	// DriverSQLite selects the SQLite gorm driver
	DriverSQLite = "sqlite"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres or sqlite
	Path            string        `mapstructure:"path"`   // sqlite file path, ":memory:" for an in-memory database
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// RelayerConfig holds OpenZeppelin Relayer configuration
type RelayerConfig struct {
	URL               string        `mapstructure:"url"`
	APIKey            string        `mapstructure:"api_key"`
	RelayerID         string        `mapstructure:"relayer_id"`
	Timeout           time.Duration `mapstructure:"timeout"`
	WebhookSigningKey string        `mapstructure:"webhook_signing_key"`
	GasLimit          uint64        `mapstructure:"gas_limit"`
	Speed             string        `mapstructure:"speed"`
	PollAttempts      int           `mapstructure:"poll_attempts"`
	PollBaseDelay     time.Duration `mapstructure:"poll_base_delay"`
}

// RegistryConfig holds the mentor registry contract configuration
type RegistryConfig struct {
	Address          string `mapstructure:"address"`
	ChainID          int64  `mapstructure:"chain_id"`
	RPCURL           string `mapstructure:"rpc_url"`
	VerifySignatures bool   `mapstructure:"verify_signatures"`
	DenylistPath     string `mapstructure:"denylist_path"`
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	SubjectPrefix  string        `mapstructure:"subject_prefix"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds

	// Proxies (IPs or CIDRs) whose X-Forwarded-For is honoured. Empty means the TCP peer is the client.
	TrustedProxies []string `mapstructure:"trusted_proxies"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RateLimitConfig holds the per-client limits on relay-paying endpoints
type RateLimitConfig struct {
	Enabled                 bool          `mapstructure:"enabled"`
	RedisAddr               string        `mapstructure:"redis_addr"` // empty keeps the limiter process local
	RedisPassword           string        `mapstructure:"redis_password"`
	RedisDB                 int           `mapstructure:"redis_db"`
	RedisKeyPrefix          string        `mapstructure:"redis_key_prefix"`
	RequestsPerMinute       int           `mapstructure:"requests_per_minute"`
	Burst                   int           `mapstructure:"burst"`
	EnableLocalFallback     bool          `mapstructure:"enable_local_fallback"`
	LocalFallbackMultiplier float64       `mapstructure:"local_fallback_multiplier"`
	HealthCheckInterval     time.Duration `mapstructure:"health_check_interval"`
}

// WorkerConfig holds worker pool configuration
type WorkerConfig struct {
	WorkerPoolSize int `mapstructure:"pool_size"`
}

// ReconcilerSettings holds the reconciliation loop settings
type ReconcilerSettings struct {
	Interval   time.Duration `mapstructure:"interval"`
	BatchSize  int           `mapstructure:"batch_size"`
	StaleAfter time.Duration `mapstructure:"stale_after"`
	Worker     WorkerConfig  `mapstructure:"worker"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig    `mapstructure:"server"`
	Database   DatabaseConfig  `mapstructure:"database"`
	Relayer    RelayerConfig   `mapstructure:"relayer"`
	Registry   RegistryConfig  `mapstructure:"registry"`
	NATS       NATSConfig      `mapstructure:"nats"`
	Auth       AuthConfig      `mapstructure:"auth"`
	CORS       CORSConfig      `mapstructure:"cors"`
	RateLimit  RateLimitConfig `mapstructure:"ratelimit"`
}

// ReconcilerConfig holds configuration for the status reconciler
type ReconcilerConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig     `mapstructure:"database"`
	Relayer    RelayerConfig      `mapstructure:"relayer"`
	NATS       NATSConfig         `mapstructure:"nats"`
	Reconciler ReconcilerSettings `mapstructure:"reconciler"`
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 120)
	setDatabaseDefaults(v)
	setRelayerDefaults(v)
	setNATSDefaults(v)
	v.SetDefault("registry.verify_signatures", false)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("ratelimit.enabled", false)
	v.SetDefault("ratelimit.redis_key_prefix", "mentor-relay:ratelimit:")
	v.SetDefault("ratelimit.requests_per_minute", 10)
	v.SetDefault("ratelimit.burst", 5)
	v.SetDefault("ratelimit.enable_local_fallback", true)
	v.SetDefault("ratelimit.local_fallback_multiplier", 0.5)
	v.SetDefault("ratelimit.health_check_interval", "10s")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Database.Validate(); err != nil {
		return nil, err
	}
	if config.RateLimit.Enabled && config.RateLimit.RequestsPerMinute <= 0 {
		return nil, errors.New("ratelimit.requests_per_minute must be positive when ratelimit is enabled")
	}
	if config.Registry.VerifySignatures && (config.Registry.RPCURL == "" || config.Registry.ChainID == 0) {
		return nil, errors.New("registry.rpc_url and registry.chain_id are required when registry.verify_signatures is enabled")
	}

	return &config, nil
}

// LoadReconcilerConfig loads configuration for the status reconciler
func LoadReconcilerConfig(configFile string, envPath string) (*ReconcilerConfig, error) {
	v := configureViper("reconciler", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	setRelayerDefaults(v)
	setNATSDefaults(v)
	v.SetDefault("reconciler.interval", "1m")
	v.SetDefault("reconciler.batch_size", 100)
	v.SetDefault("reconciler.stale_after", "2m")
	v.SetDefault("reconciler.worker.pool_size", 10)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config ReconcilerConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Database.Validate(); err != nil {
		return nil, err
	}
	if config.Reconciler.BatchSize <= 0 {
		return nil, errors.New("reconciler.batch_size must be positive")
	}

	return &config, nil
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.path", "db/local.db")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
}

func setRelayerDefaults(v *viper.Viper) {
	v.SetDefault("relayer.url", "http://localhost:8080")
	v.SetDefault("relayer.relayer_id", "local-anvil-relayer")
	v.SetDefault("relayer.timeout", "30s")
	v.SetDefault("relayer.gas_limit", 300000)
	v.SetDefault("relayer.speed", "fast")
	v.SetDefault("relayer.poll_attempts", 3)
	v.SetDefault("relayer.poll_base_delay", "1s")
}

func setNATSDefaults(v *viper.Viper) {
	v.SetDefault("nats.stream_name", "RELAYER_TRANSACTIONS")
	v.SetDefault("nats.subject_prefix", "relayer.transactions")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
}

// readConfig reads the config file, falling back to environment variables when it is missing
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			// Config file not found, use environment variables
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
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
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("MENTOR_RELAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

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
		"database.driver",
		"database.path",
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Relayer
		"relayer.url",
		"relayer.api_key",
		"relayer.relayer_id",
		"relayer.timeout",
		"relayer.webhook_signing_key",
		"relayer.gas_limit",
		"relayer.speed",
		"relayer.poll_attempts",
		"relayer.poll_base_delay",
		// Registry
		"registry.address",
		"registry.chain_id",
		"registry.rpc_url",
		"registry.verify_signatures",
		"registry.denylist_path",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.subject_prefix",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.trusted_proxies",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// CORS
		"cors.allowed_origins",
		// Rate limit
		"ratelimit.enabled",
		"ratelimit.redis_addr",
		"ratelimit.redis_password",
		"ratelimit.redis_db",
		"ratelimit.redis_key_prefix",
		"ratelimit.requests_per_minute",
		"ratelimit.burst",
		"ratelimit.enable_local_fallback",
		"ratelimit.local_fallback_multiplier",
		"ratelimit.health_check_interval",
		// Reconciler
		"reconciler.interval",
		"reconciler.batch_size",
		"reconciler.stale_after",
		"reconciler.worker.pool_size",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		_ = godotenv.Overload(filepath.Join(envPath, envFile)) // later files override earlier ones
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

// Validate checks the driver specific settings
func (c *DatabaseConfig) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if c.Path == "" {
			return errors.New("database.path is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.Host == "" || c.DBName == "" {
			return errors.New("database.host and database.dbname are required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported database driver: %q", c.Driver)
	}
	return nil
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.Path
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
