// Package pgtest starts the PostgreSQL database used by integration tests.
//
// Tests use a postgres testcontainer unless TEST_DB_HOST points at an external
// database. Run packages sequentially (go test -p 1) against an external database.
package pgtest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	ledgerlog "github.com/0xHoneyJar/loa-freeside-sub007/internal/logger"
)

// Database is a test database with the ledger schema applied
type Database struct {
	DB        *gorm.DB
	container *postgres.PostgresContainer
}

// Start connects to the test database and applies the schema
func Start(ctx context.Context) (*Database, error) {
	d := &Database{}

	dsn, err := d.dsn(ctx)
	if err != nil {
		return nil, err
	}

	d.DB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		d.Close(ctx)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := applySchema(d.DB); err != nil {
		d.Close(ctx)
		return nil, err
	}

	return d, nil
}

func (d *Database) dsn(ctx context.Context) (string, error) {
	if host := os.Getenv("TEST_DB_HOST"); host != "" {
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host,
			envOr("TEST_DB_PORT", "5432"),
			envOr("TEST_DB_USER", "postgres"),
			envOr("TEST_DB_PASSWORD", "postgres"),
			envOr("TEST_DB_NAME", "credit_ledger_test"))
		fmt.Printf("Using external database: %s\n", host)
		return dsn, nil
	}

	container, err := postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase("credit_ledger_test"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return "", fmt.Errorf("failed to start PostgreSQL container: %w", err)
	}
	d.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		d.Close(ctx)
		return "", fmt.Errorf("failed to get connection string: %w", err)
	}

	return dsn, nil
}

// Close terminates the container, if one was started
func (d *Database) Close(ctx context.Context) {
	if d.container == nil {
		return
	}
	if err := d.container.Terminate(ctx); err != nil {
		fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
	}
	d.container = nil
}

// Main starts the database, runs the package tests and exits
func Main(m *testing.M, db **gorm.DB) {
	ctx := context.Background()

	if err := ledgerlog.Initialize(ledgerlog.Config{Debug: true}); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	d, err := Start(ctx)
	if err != nil {
		fmt.Printf("Failed to set up test database: %v\n", err)
		os.Exit(1)
	}
	*db = d.DB

	code := m.Run()

	d.Close(ctx)
	os.Exit(code)
}

// BeginTx returns a transaction that is rolled back when the test ends
func BeginTx(t *testing.T, db *gorm.DB) *gorm.DB {
	t.Helper()

	tx := db.Begin()
	require.NotNil(t, tx)
	require.NoError(t, tx.Error)

	t.Cleanup(func() {
		tx.Rollback()
	})

	return tx
}

// applySchema runs db/init_pg_db.sql; the script is idempotent
func applySchema(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return fmt.Errorf("failed to locate schema file")
	}
	schemaPath := filepath.Join(filepath.Dir(file), "..", "..", "..", "db", "init_pg_db.sql")

	schemaSQL, err := os.ReadFile(schemaPath) //nolint:gosec,G304
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	if _, err := sqlDB.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
