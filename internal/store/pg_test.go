package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	testDB      *gorm.DB
	pgContainer *postgres.PostgresContainer
)

// TestMain starts the test database and applies db/init_pg_db.sql
func TestMain(m *testing.M) {
	ctx := context.Background()

	// TEST_DB_HOST points the tests at an existing database instead of a container
	dbHost := os.Getenv("TEST_DB_HOST")
	dbPort := os.Getenv("TEST_DB_PORT")
	dbUser := os.Getenv("TEST_DB_USER")
	dbPassword := os.Getenv("TEST_DB_PASSWORD")
	dbName := os.Getenv("TEST_DB_NAME")

	var dsn string
	var err error

	if dbHost != "" {
		if dbPort == "" {
			dbPort = "5432"
		}
		if dbUser == "" {
			dbUser = "postgres"
		}
		if dbPassword == "" {
			dbPassword = "postgres"
		}
		if dbName == "" {
			dbName = "test_db"
		}

		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPassword, dbName)

		fmt.Printf("Using external database: %s:%s/%s\n", dbHost, dbPort, dbName)
	} else {
		// Throwaway PostgreSQL container
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
			fmt.Printf("Failed to start PostgreSQL container: %v\n", err)
			os.Exit(1)
		}

		dsn, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Printf("Failed to get connection string: %v\n", err)
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
			os.Exit(1)
		}

		fmt.Printf("Started PostgreSQL container\n")
	}

	testDB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		if pgContainer != nil {
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	// Schema
	err = initializeTestDatabase(testDB)
	if err != nil {
		fmt.Printf("Failed to initialize database: %v\n", err)
		if pgContainer != nil {
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	code := m.Run()

	if pgContainer != nil {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
		}
	}

	os.Exit(code)
}

// initializeTestDatabase applies the schema
func initializeTestDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	schemaPath := filepath.Join("..", "..", "db", "init_pg_db.sql")
	schemaSQL, err := os.ReadFile(schemaPath) //nolint:gosec,G304
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	_, err = sqlDB.Exec(string(schemaSQL))
	if err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}

// initPGTestDB returns a store bound to a transaction that is rolled back when the test ends
func initPGTestDB(t *testing.T) Store {
	tx := testDB.Begin()
	require.NotNil(t, tx)
	require.NoError(t, tx.Error)

	t.Cleanup(func() {
		tx.Rollback()
	})

	return NewPGStore(tx)
}
