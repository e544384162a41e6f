package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	if content == "" {
		return ""
	}
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0600))
	return configFile
}

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 20
  write_timeout: 20
  idle_timeout: 180
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
redis:
  addr: "localhost:6379"
  db: 2
nats:
  url: "nats://localhost:4222"
auth:
  jwt_public_key: "test-public-key"
  api_keys:
    - "key1"
    - "key2"
ledger:
  overrun_policy: allow_with_alert
  default_reservation_ttl: 2m
budget:
  default_daily_cap_micro: 5000000
  instance_count: 3
webhook:
  url: "https://hooks.example.com/ledger"
  secret: "whsec"
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 180, cfg.Server.IdleTimeout)
				assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
				assert.Equal(t, 2, cfg.Redis.DB)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "CREDIT_ALERTS", cfg.NATS.StreamName)
				assert.Equal(t, "test-public-key", cfg.Auth.JWTPublicKey)
				assert.Len(t, cfg.Auth.APIKeys, 2)
				assert.Equal(t, "allow_with_alert", cfg.Ledger.OverrunPolicy)
				assert.Equal(t, 2*time.Minute, cfg.Ledger.DefaultReservationTTL)
				assert.Equal(t, 24*time.Hour, cfg.Ledger.MaxReservationTTL)
				assert.Equal(t, int64(5_000_000), cfg.Budget.DefaultDailyCapMicro)
				assert.Equal(t, int64(1_000_000), cfg.Budget.DefaultRefillThresholdMicro)
				assert.Equal(t, 3, cfg.Budget.InstanceCount)
				assert.Equal(t, "https://hooks.example.com/ledger", cfg.Webhook.URL)
				assert.Equal(t, "whsec", cfg.Webhook.Secret)
				assert.Equal(t, 10*time.Second, cfg.Webhook.Timeout)
			},
		},
		{
			name:       "missing config file uses defaults",
			configFile: "",
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 10, cfg.Server.ReadTimeout)
				assert.Equal(t, "reject", cfg.Ledger.OverrunPolicy)
				assert.Equal(t, 5*time.Minute, cfg.Ledger.DefaultReservationTTL)
				assert.Equal(t, 200*time.Millisecond, cfg.Redis.OpTimeout)
				assert.Equal(t, time.Minute, cfg.DLQ.BaseDelay)
				assert.Equal(t, 3, cfg.DLQ.MaxRetries)
				assert.Equal(t, 1, cfg.Budget.InstanceCount)
				assert.Empty(t, cfg.Webhook.URL)
			},
		},
		{
			name:        "malformed config file",
			configFile:  "server: [unclosed",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadAPIConfig(writeConfigFile(t, tt.configFile), "")

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

func TestLoadWorkerConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *WorkerConfig)
	}{
		{
			name: "valid config file",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
dlq:
  base_delay: 30s
  batch_size: 10
  worker:
    pool_size: 4
hygiene:
  interval: 30s
reconciliation:
  interval: 15m
webhook:
  secret: "whsec"
`,
			validate: func(t *testing.T, cfg *WorkerConfig) {
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, 10, cfg.Database.MaxOpenConns)
				assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
				assert.Equal(t, 30*time.Second, cfg.DLQ.BaseDelay)
				assert.Equal(t, 24*time.Hour, cfg.DLQ.MaxDelay)
				assert.Equal(t, 10, cfg.DLQ.BatchSize)
				assert.Equal(t, 10*time.Minute, cfg.DLQ.StaleAfter)
				assert.Equal(t, 4, cfg.DLQ.Worker.PoolSize)
				assert.Equal(t, 100, cfg.DLQ.Worker.QueueSize)
				assert.Equal(t, 30*time.Second, cfg.Hygiene.Interval)
				assert.Equal(t, 500, cfg.Hygiene.BatchSize)
				assert.Equal(t, "whsec", cfg.Webhook.Secret)
				assert.Equal(t, 10*time.Second, cfg.Webhook.Timeout)
				assert.Equal(t, 15*time.Minute, cfg.Reconciliation.Interval)
				assert.Equal(t, ":9090", cfg.MetricsAddr)
			},
		},
		{
			name: "missing database host",
			configFile: `
database:
  dbname: testdb
`,
			expectError: true,
		},
		{
			name: "missing database name",
			configFile: `
database:
  host: localhost
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadWorkerConfig(writeConfigFile(t, tt.configFile), "")

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

func TestLoadCLIConfig(t *testing.T) {
	cfg, err := LoadCLIConfig(writeConfigFile(t, `
database:
  host: db.internal
  dbname: ledger
dlq:
  max_retries: 5
`), "")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 2, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.DLQ.MaxRetries)
	assert.Equal(t, "reject", cfg.Ledger.OverrunPolicy)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "complete config",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "testpass",
				DBName:   "testdb",
				SSLMode:  "require",
			},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=require",
		},
		{
			name: "with special characters in password",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "p@ssw0rd!",
				DBName:   "testdb",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=testuser password=p@ssw0rd! dbname=testdb sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
		})
	}
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	envDir := filepath.Join(tmpDir, "env")
	require.NoError(t, os.MkdirAll(envDir, 0750))

	// godotenv.Overload sets process environment variables; unset them afterwards
	envVars := map[string]string{
		"CREDIT_LEDGER_DEBUG":                 "true",
		"CREDIT_LEDGER_DATABASE_HOST":         "env-host",
		"CREDIT_LEDGER_DATABASE_PORT":         "6543",
		"CREDIT_LEDGER_LEDGER_OVERRUN_POLICY": "allow_with_alert",
		"CREDIT_LEDGER_BUDGET_INSTANCE_COUNT": "4",
		"CREDIT_LEDGER_REDIS_ADDR":            "redis:6379",
		"CREDIT_LEDGER_DLQ_MAX_RETRIES":       "7",
		"CREDIT_LEDGER_NATS_URL":              "nats://nats:4222",
		"CREDIT_LEDGER_AUTH_JWT_PUBLIC_KEY":   "env-key",
		"CREDIT_LEDGER_SERVER_PORT":           "8181",
		"CREDIT_LEDGER_DATABASE_DBNAME":       "env-db",
		"CREDIT_LEDGER_DATABASE_SSLMODE":      "require",
		"CREDIT_LEDGER_REDIS_OP_TIMEOUT":      "1s",
		"CREDIT_LEDGER_DLQ_BASE_DELAY":        "5s",
	}
	var envContent string
	for k, v := range envVars {
		envContent += k + "=" + v + "\n"
		key := k
		t.Cleanup(func() { _ = os.Unsetenv(key) })
	}
	require.NoError(t, os.WriteFile(filepath.Join(envDir, ".env"), []byte(envContent), 0600))

	// The config file holds different values to verify env vars override
	configPath := writeConfigFile(t, `
debug: false
database:
  host: file-host
  port: 5432
  dbname: file-db
ledger:
  overrun_policy: reject
`)

	cfg, err := LoadAPIConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "env-db", cfg.Database.DBName)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, "allow_with_alert", cfg.Ledger.OverrunPolicy)
	assert.Equal(t, 4, cfg.Budget.InstanceCount)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, time.Second, cfg.Redis.OpTimeout)
	assert.Equal(t, 7, cfg.DLQ.MaxRetries)
	assert.Equal(t, 5*time.Second, cfg.DLQ.BaseDelay)
	assert.Equal(t, "nats://nats:4222", cfg.NATS.URL)
	assert.Equal(t, "env-key", cfg.Auth.JWTPublicKey)
	assert.Equal(t, 8181, cfg.Server.Port)
}
