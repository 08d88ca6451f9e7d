package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	pgTestDB    *gorm.DB
	pgContainer *postgres.PostgresContainer
)

// TestMain sets up the PostgreSQL test database when one is reachable.
// Without Docker or TEST_DB_HOST the PostgreSQL suite is skipped and only SQLite runs.
func TestMain(m *testing.M) {
	ctx := context.Background()

	if os.Getenv("TEST_SKIP_POSTGRES") == "" {
		if err := setupPostgres(ctx); err != nil {
			fmt.Printf("PostgreSQL store tests disabled: %v\n", err)
			pgTestDB = nil
		}
	}

	code := m.Run()

	if pgContainer != nil {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
		}
	}

	os.Exit(code)
}

func setupPostgres(ctx context.Context) (err error) {
	defer func() {
		// testcontainers panics in some environments without a Docker socket
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to start PostgreSQL container: %v", r)
		}
	}()

	var dsn string
	if dbHost := os.Getenv("TEST_DB_HOST"); dbHost != "" {
		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost,
			envOr("TEST_DB_PORT", "5432"),
			envOr("TEST_DB_USER", "postgres"),
			envOr("TEST_DB_PASSWORD", "postgres"),
			envOr("TEST_DB_NAME", "test_db"))
		fmt.Printf("Using external database: %s\n", dbHost)
	} else {
		pgContainer, err = postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			return fmt.Errorf("failed to start PostgreSQL container: %w", err)
		}

		dsn, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			return fmt.Errorf("failed to get connection string: %w", err)
		}
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return err
	}

	pgTestDB = db
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// initPGTestDB isolates each test in a transaction that is rolled back on cleanup
func initPGTestDB(t *testing.T) Store {
	tx := pgTestDB.Begin()
	require.NotNil(t, tx)
	require.NoError(t, tx.Error)

	t.Cleanup(func() {
		tx.Rollback()
	})

	return NewStore(tx)
}

// TestPostgreSQLStore runs all store tests against PostgreSQL
func TestPostgreSQLStore(t *testing.T) {
	if pgTestDB == nil {
		t.Skip("PostgreSQL test database not available")
	}

	RunStoreTests(t, initPGTestDB)
}
