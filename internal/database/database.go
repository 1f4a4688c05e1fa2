// Package database owns the PostgreSQL connection pool and the execution
// helper every repository goes through.
//
// It handles:
//   - building a DSN from config
//   - creating a pgx connection pool (pgxpool) sized from
//     min_connections/max_connections, with the configured connection
//     timeout bounding every acquire
//   - registering the shopspring decimal codec for NUMERIC columns
//   - wiring query tracing/logging (pgx tracelog + zerolog) in local env
//   - translating driver errors at the statement boundary (sqlerr)
//   - running schema migrations (tern)
package database

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gearshed/gearshed/internal/config"
	"github.com/gearshed/gearshed/internal/errs"
	loggerpkg "github.com/gearshed/gearshed/internal/logger"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// acquireAttempts bounds the backoff retry loop around pool acquisition
// when the backend is unreachable. Exhaustion (timeout with no free
// connection) is never retried: the timeout itself is the bound.
const acquireAttempts = 3

// Database wraps the pgx connection pool, the acquire policy, and a
// logger. It is constructed once at startup and passed by reference into
// every repository; Close is its defined teardown.
type Database struct {
	Pool *pgxpool.Pool

	log            *zerolog.Logger
	acquireTimeout time.Duration
	healthy        atomic.Bool
}

// DSN builds the postgres connection string from config. The password is
// URL-escaped so special characters cannot break the URL structure, and
// host/port are joined with net.JoinHostPort for IPv6 safety.
func DSN(cfg config.DatabaseConfig) string {
	hostPort := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		cfg.User,
		url.QueryEscape(cfg.Password),
		hostPort,
		cfg.Name,
		cfg.SSLMode,
	)
}

// New creates the PostgreSQL connection pool.
//
// Behavior:
//   - parse the DSN into a pgxpool config
//   - apply MinConns/MaxConns from config
//   - register the decimal codec on every new connection
//   - in local env, attach SQL statement logging via tracelog
//   - create the pool and ping it within the connection timeout, so
//     startup fails fast with ConnectionUnavailable if the backend is down
func New(cfg *config.Config, log *zerolog.Logger) (*Database, error) {
	poolConfig, err := pgxpool.ParseConfig(DSN(cfg.Database))
	if err != nil {
		return nil, fmt.Errorf("parsing pgx pool config: %w", err)
	}

	poolConfig.MinConns = int32(cfg.Database.MinConnections)
	poolConfig.MaxConns = int32(cfg.Database.MaxConnections)

	// NUMERIC columns (weight, rental_price_per_day) scan into
	// shopspring decimal values.
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	// SQL statement logging is noisy, so it only runs in the local env.
	if cfg.Primary.Env == "local" {
		level := log.GetLevel()
		pgxLogger := loggerpkg.NewPgxLogger(level)
		poolConfig.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(pgxLogger),
			LogLevel: tracelog.LogLevel(loggerpkg.PgxTraceLogLevel(level)),
		}
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("creating pgx pool: %w", err)
	}

	db := &Database{
		Pool:           pool,
		log:            log,
		acquireTimeout: cfg.Database.AcquireTimeout(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), db.acquireTimeout)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errs.Wrap(errs.ConnectionUnavailable, "database is unreachable", err)
	}
	db.healthy.Store(true)

	log.Info().
		Str("host", cfg.Database.Host).
		Str("database", cfg.Database.Name).
		Int("min_connections", cfg.Database.MinConnections).
		Int("max_connections", cfg.Database.MaxConnections).
		Msg("connected to the database")

	return db, nil
}

// acquire checks a connection out of the pool, bounded by the configured
// connection timeout.
//
// Policy:
//   - the timeout elapsing with no free connection surfaces PoolExhausted
//     immediately; the timeout is the retry bound
//   - an unreachable backend is retried with bounded backoff, then
//     surfaces ConnectionUnavailable
//   - caller cancellation is honored on every path
func (db *Database) acquire(ctx context.Context) (*pgxpool.Conn, error) {
	backoff := 100 * time.Millisecond
	var lastErr error

	for attempt := 0; attempt < acquireAttempts; attempt++ {
		acquireCtx, cancel := context.WithTimeout(ctx, db.acquireTimeout)
		conn, err := db.Pool.Acquire(acquireCtx)
		cancel()
		if err == nil {
			return conn, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, errs.Wrap(errs.PoolExhausted,
				"no database connection became available within the configured timeout", err)
		}

		db.log.Warn().Err(err).Int("attempt", attempt+1).Msg("database acquire failed, backing off")
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		backoff *= 2
	}

	return nil, errs.Wrap(errs.ConnectionUnavailable, "database is unreachable", lastErr)
}

// HealthCheck issues a trivial round-trip query and records the outcome.
// A failing pool is flagged unhealthy but never torn down here; callers
// (the health endpoint) detect and report it.
func (db *Database) HealthCheck(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, db.acquireTimeout)
	defer cancel()

	err := db.Pool.Ping(ctx)
	db.healthy.Store(err == nil)
	if err != nil {
		db.log.Error().Err(err).Msg("database health check failed")
		return false
	}
	return true
}

// Healthy reports the outcome of the most recent health check.
func (db *Database) Healthy() bool {
	return db.healthy.Load()
}

// Close drains the pool. New acquisitions fail after this returns.
func (db *Database) Close() {
	db.log.Info().Msg("closing database connection pool")
	db.Pool.Close()
}
