// Copyright (c) 2025 ToeiRei
// Passgate - password strength validation toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// package db provides the persistence layer for the attempt audit trail.
// It supports SQLite, PostgreSQL and MySQL through a single bun-backed
// store; the dialect is chosen from the configured database type.
package db // import "github.com/toeirei/passgate/internal/db"

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // Postgres driver (registers "pgx")
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

//go:embed migrations
var embeddedMigrations embed.FS

// sqlOpenFunc is swappable for tests that need to fail or observe opens.
var sqlOpenFunc = sql.Open

// NewStoreFromDSN opens a sql.DB for the given DSN, runs migrations, and
// returns a Store backed by a long-lived *bun.DB. Supported dbTypes are
// "sqlite", "postgres" and "mysql".
func NewStoreFromDSN(dbType, dsn string) (Store, error) {
	driverName := dbType
	// The pgx stdlib driver registers itself as "pgx".
	if dbType == "postgres" {
		driverName = "pgx"
	}

	start := time.Now()
	sqlDB, err := sqlOpenFunc(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Conservative pool defaults for a single-user tool; overridable via
	// environment for CI tuning.
	const (
		defaultMaxOpenConns    = 10
		defaultMaxIdleConns    = 5
		defaultConnMaxLifetime = 5 * time.Minute
	)

	maxOpen := envInt("PASSGATE_DB_MAX_OPEN_CONNS", defaultMaxOpenConns)
	maxIdle := envInt("PASSGATE_DB_MAX_IDLE_CONNS", defaultMaxIdleConns)

	// In-memory SQLite databases are per-connection; a pool of more than
	// one connection would see different empty databases. Tests rely on
	// ":memory:" behaving as a single DB.
	if dbType == "sqlite" && dsn == ":memory:" {
		maxOpen = 1
		maxIdle = 1
	}

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(defaultConnMaxLifetime)

	dbLogf("db: opened %s driver in %s (max open=%d, idle=%d)", driverName, time.Since(start), maxOpen, maxIdle)

	if err := RunMigrations(sqlDB, dbType); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &bunStore{sql: sqlDB, bun: createBunDB(sqlDB, dbType)}, nil
}

// createBunDB constructs a *bun.DB for the provided *sql.DB and dbType.
func createBunDB(sqlDB *sql.DB, dbType string) *bun.DB {
	switch dbType {
	case "postgres":
		return bun.NewDB(sqlDB, pgdialect.New())
	case "mysql":
		return bun.NewDB(sqlDB, mysqldialect.New())
	default:
		return bun.NewDB(sqlDB, sqlitedialect.New())
	}
}

// RunMigrations applies the embedded .up.sql migrations for a database type.
// Files are applied in lexical order; each file may hold one statement.
func RunMigrations(sqlDB *sql.DB, dbType string) error {
	migrationsPath := fmt.Sprintf("migrations/%s", dbType)

	entries, err := fs.ReadDir(embeddedMigrations, migrationsPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("unsupported database type: %q", dbType)
		}
		return fmt.Errorf("failed to read embedded migrations (%s): %w", migrationsPath, err)
	}

	var ups []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ups = append(ups, e.Name())
	}
	sort.Strings(ups)

	for _, name := range ups {
		data, err := embeddedMigrations.ReadFile(migrationsPath + "/" + name)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}
		if _, err := sqlDB.Exec(string(data)); err != nil {
			return fmt.Errorf("migration %s failed: %w", name, err)
		}
		dbLogf("db: applied migration %s", name)
	}
	return nil
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}
