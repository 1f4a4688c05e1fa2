// Package testutil provides helpers for Postgres-backed contract tests.
//
// Tests using it are gated on GEARSHED_TEST_DSN and skip when it is not
// set, so the unit suite stays runnable without a database.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"github.com/gearshed/gearshed/internal/config"
	"github.com/gearshed/gearshed/internal/database"
)

// TestConfig builds an application config pointing at the test database
// named by GEARSHED_TEST_DSN, or skips the test when it is unset.
func TestConfig(t *testing.T) *config.Config {
	t.Helper()

	dsn := os.Getenv("GEARSHED_TEST_DSN")
	if dsn == "" {
		t.Skip("GEARSHED_TEST_DSN not set; skipping Postgres contract tests")
	}

	cc, err := pgconn.ParseConfig(dsn)
	if err != nil {
		t.Fatalf("parse GEARSHED_TEST_DSN: %v", err)
	}

	sslMode := "disable"
	if cc.TLSConfig != nil {
		sslMode = "require"
	}

	return &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port: "0", ReadTimeout: 15, WriteTimeout: 15, IdleTimeout: 60,
		},
		Database: config.DatabaseConfig{
			Host:              cc.Host,
			Port:              int(cc.Port),
			User:              cc.User,
			Password:          cc.Password,
			Name:              cc.Database,
			SSLMode:           sslMode,
			MinConnections:    1,
			MaxConnections:    5,
			ConnectionTimeout: 10,
		},
	}
}

// OpenMigratedDatabase resets the public schema of the test database,
// applies all migrations, and opens a pool over it. Destructive by
// design; point GEARSHED_TEST_DSN at a throwaway database.
func OpenMigratedDatabase(t *testing.T) *database.Database {
	t.Helper()

	cfg := TestConfig(t)
	logger := zerolog.Nop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resetSchema(t, ctx, cfg)

	if err := database.Migrate(ctx, &logger, cfg); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	db, err := database.New(cfg, &logger)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(db.Close)

	return db
}

func resetSchema(t *testing.T, ctx context.Context, cfg *config.Config) {
	t.Helper()

	conn, err := pgx.Connect(ctx, database.DSN(cfg.Database))
	if err != nil {
		t.Fatalf("connect postgres: %v", err)
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, `DROP SCHEMA IF EXISTS public CASCADE; CREATE SCHEMA public`); err != nil {
		t.Fatalf("reset schema: %v", err)
	}
}
