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
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// RedisConfig holds Redis configuration for the budget cache
type RedisConfig struct {
	Addr        string        `mapstructure:"addr"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
	// OpTimeout bounds every cache command so a slow Redis degrades to the in-process cache
	OpTimeout time.Duration `mapstructure:"op_timeout"`
}

// NATSConfig holds NATS JetStream configuration for alert publishing
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	PublishTimeout time.Duration `mapstructure:"publish_timeout"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
	// CORSAllowedOrigins is empty to allow every origin
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// PoolConfig holds worker pool configuration
type PoolConfig struct {
	PoolSize  int `mapstructure:"pool_size"`
	QueueSize int `mapstructure:"queue_size"`
}

// LedgerConfig holds reservation and finalization settings
type LedgerConfig struct {
	DefaultReservationTTL time.Duration `mapstructure:"default_reservation_ttl"`
	MaxReservationTTL     time.Duration `mapstructure:"max_reservation_ttl"`
	// OverrunPolicy is "reject" or "allow_with_alert"
	OverrunPolicy string `mapstructure:"overrun_policy"`
}

// BudgetConfig holds agent budget settings
type BudgetConfig struct {
	DefaultDailyCapMicro        int64 `mapstructure:"default_daily_cap_micro"`
	DefaultRefillThresholdMicro int64 `mapstructure:"default_refill_threshold_micro"`
	// InstanceCount is the number of API instances; with the in-process cache each enforces the cap alone
	InstanceCount int `mapstructure:"instance_count"`
	// CacheRecheckInterval is how often a degraded cache checks whether Redis is back
	CacheRecheckInterval time.Duration `mapstructure:"cache_recheck_interval"`
}

// DLQConfig holds dead-letter queue settings
type DLQConfig struct {
	BaseDelay    time.Duration `mapstructure:"base_delay"`
	MaxDelay     time.Duration `mapstructure:"max_delay"`
	MaxRetries   int           `mapstructure:"max_retries"`
	BatchSize    int           `mapstructure:"batch_size"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	StaleAfter   time.Duration `mapstructure:"stale_after"`
	Worker       PoolConfig    `mapstructure:"worker"`
}

// HygieneConfig holds settings of the reservation and lot expiry sweeper
type HygieneConfig struct {
	Interval       time.Duration `mapstructure:"interval"`
	BatchSize      int           `mapstructure:"batch_size"`
	WorkerPoolSize int           `mapstructure:"worker_pool_size"`
}

// ReconciliationConfig holds settings of the scheduled conservation check
type ReconciliationConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

// WebhookConfig holds settings for ledger event webhooks
type WebhookConfig struct {
	// URL receives finalize and guard violation events; empty disables webhooks
	URL     string        `mapstructure:"url"`
	Secret  string        `mapstructure:"secret"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
	Redis      RedisConfig    `mapstructure:"redis"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Auth       AuthConfig     `mapstructure:"auth"`
	Ledger     LedgerConfig   `mapstructure:"ledger"`
	Budget     BudgetConfig   `mapstructure:"budget"`
	DLQ        DLQConfig      `mapstructure:"dlq"`
	Webhook    WebhookConfig  `mapstructure:"webhook"`
}

// WorkerConfig holds configuration for the DLQ worker and hygiene sweeper
type WorkerConfig struct {
	BaseConfig     `mapstructure:",squash"`
	Database       DatabaseConfig       `mapstructure:"database"`
	Redis          RedisConfig          `mapstructure:"redis"`
	NATS           NATSConfig           `mapstructure:"nats"`
	Ledger         LedgerConfig         `mapstructure:"ledger"`
	DLQ            DLQConfig            `mapstructure:"dlq"`
	Hygiene        HygieneConfig        `mapstructure:"hygiene"`
	Reconciliation ReconciliationConfig `mapstructure:"reconciliation"`
	Webhook        WebhookConfig        `mapstructure:"webhook"`
	MetricsAddr    string               `mapstructure:"metrics_addr"`
}

// CLIConfig holds configuration for the operator CLI
type CLIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	Ledger     LedgerConfig   `mapstructure:"ledger"`
	DLQ        DLQConfig      `mapstructure:"dlq"`
}

// setCommonDefaults sets defaults shared by every program
func setCommonDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("ledger.default_reservation_ttl", "5m")
	v.SetDefault("ledger.max_reservation_ttl", "24h")
	v.SetDefault("ledger.overrun_policy", "reject")
	v.SetDefault("dlq.base_delay", "1m")
	v.SetDefault("dlq.max_delay", "24h")
	v.SetDefault("dlq.max_retries", 3)
	v.SetDefault("webhook.timeout", "10s")
}

// setRedisNATSDefaults sets defaults for the cache and alert transport
func setRedisNATSDefaults(v *viper.Viper) {
	v.SetDefault("redis.dial_timeout", "2s")
	v.SetDefault("redis.op_timeout", "200ms")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "CREDIT_ALERTS")
	v.SetDefault("nats.publish_timeout", "2s")
}

// readConfig reads the config file, falling back to environment variables when none exists
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	setCommonDefaults(v)
	setRedisNATSDefaults(v)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("nats.connection_name", "credit-ledger-api")
	v.SetDefault("budget.default_daily_cap_micro", 10_000_000)
	v.SetDefault("budget.default_refill_threshold_micro", 1_000_000)
	v.SetDefault("budget.instance_count", 1)
	v.SetDefault("budget.cache_recheck_interval", 30*time.Second)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadWorkerConfig loads configuration for the worker program
func LoadWorkerConfig(configFile string, envPath string) (*WorkerConfig, error) {
	v := configureViper("worker", configFile, envPath)

	// Set defaults
	setCommonDefaults(v)
	setRedisNATSDefaults(v)
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("nats.connection_name", "credit-ledger-worker")
	v.SetDefault("dlq.batch_size", 50)
	v.SetDefault("dlq.poll_interval", "10s")
	v.SetDefault("dlq.stale_after", "10m")
	v.SetDefault("dlq.worker.pool_size", 8)
	v.SetDefault("dlq.worker.queue_size", 100)
	v.SetDefault("hygiene.interval", "1m")
	v.SetDefault("hygiene.batch_size", 500)
	v.SetDefault("hygiene.worker_pool_size", 4)
	v.SetDefault("reconciliation.interval", "1h")
	v.SetDefault("metrics_addr", ":9090")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg WorkerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}

	return &cfg, nil
}

// LoadCLIConfig loads configuration for the operator CLI
func LoadCLIConfig(configFile string, envPath string) (*CLIConfig, error) {
	v := configureViper("ledgerctl", configFile, envPath)

	// Set defaults
	setCommonDefaults(v)
	v.SetDefault("database.max_open_conns", 2)
	v.SetDefault("database.max_idle_conns", 1)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg CLIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
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
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/worker/, cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("CREDIT_LEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	commonKeys := []string{
		"debug",
		"sentry_dsn",
		// Database
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
		// Redis
		"redis.addr",
		"redis.password",
		"redis.db",
		"redis.dial_timeout",
		"redis.op_timeout",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.publish_timeout",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.cors_allowed_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Ledger
		"ledger.default_reservation_ttl",
		"ledger.max_reservation_ttl",
		"ledger.overrun_policy",
		// Budget
		"budget.default_daily_cap_micro",
		"budget.default_refill_threshold_micro",
		"budget.instance_count",
		"budget.cache_recheck_interval",
		// DLQ
		"dlq.base_delay",
		"dlq.max_delay",
		"dlq.max_retries",
		"dlq.batch_size",
		"dlq.poll_interval",
		"dlq.stale_after",
		"dlq.worker.pool_size",
		"dlq.worker.queue_size",
		// Hygiene sweeper
		"hygiene.interval",
		"hygiene.batch_size",
		"hygiene.worker_pool_size",
		// Reconciliation
		"reconciliation.interval",
		// Webhook
		"webhook.url",
		"webhook.secret",
		"webhook.timeout",
		"metrics_addr",
	}

	for _, key := range commonKeys {
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
