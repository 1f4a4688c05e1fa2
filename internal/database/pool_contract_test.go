package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearshed/gearshed/internal/database"
	"github.com/gearshed/gearshed/internal/errs"
	"github.com/gearshed/gearshed/internal/testutil"
)

func TestPoolExhaustion(t *testing.T) {
	cfg := testutil.TestConfig(t)
	cfg.Database.MinConnections = 1
	cfg.Database.MaxConnections = 2
	cfg.Database.ConnectionTimeout = 1

	logger := zerolog.Nop()
	db, err := database.New(cfg, &logger)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	ctx := context.Background()

	// Pin every connection the pool is allowed to open.
	c1, err := db.Pool.Acquire(ctx)
	require.NoError(t, err)
	defer c1.Release()
	c2, err := db.Pool.Acquire(ctx)
	require.NoError(t, err)
	defer c2.Release()

	start := time.Now()
	_, err = db.Exec(ctx, "SELECT 1")
	assert.True(t, errs.IsKind(err, errs.PoolExhausted), "got %v", err)
	assert.Less(t, time.Since(start), 5*time.Second, "acquire gives up at the configured timeout")

	c1.Release()
	_, err = db.Exec(ctx, "SELECT 1")
	assert.NoError(t, err, "freed connection serves new work")
	// Release in the deferred call is a no-op after this point.
}

func TestWithTxCommitAndRollback(t *testing.T) {
	db := testutil.OpenMigratedDatabase(t)
	ctx := context.Background()

	_, err := db.Exec(ctx, `CREATE TABLE tx_probe (n int)`)
	require.NoError(t, err)

	err = db.WithTx(ctx, func(ctx context.Context, q database.Querier) error {
		_, err := q.Exec(ctx, `INSERT INTO tx_probe (n) VALUES (1)`)
		return err
	})
	require.NoError(t, err)

	boom := errs.New(errs.InvalidValue, "boom")
	err = db.WithTx(ctx, func(ctx context.Context, q database.Querier) error {
		if _, err := q.Exec(ctx, `INSERT INTO tx_probe (n) VALUES (2)`); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, db.QueryRow(ctx, `SELECT count(*) FROM tx_probe`).Scan(&count))
	assert.Equal(t, 1, count, "rolled-back insert is invisible")
}
