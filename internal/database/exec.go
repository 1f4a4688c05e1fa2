package database

import (
	"context"

	"github.com/gearshed/gearshed/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the execution surface repositories are written against. Both
// *Database (pooled, auto-commit) and *Tx (inside a transaction) implement
// it, so the same repository code runs in either scope. All errors
// crossing this boundary are already translated into the domain taxonomy.
type Querier interface {
	// Exec runs a single statement and returns the number of rows
	// affected. Zero rows on an update/delete is not an error; the
	// caller decides whether that means "not found".
	Exec(ctx context.Context, sql string, args ...any) (int64, error)

	// Query runs a statement returning rows. Pass the result to Collect
	// or CollectOne.
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)

	// QueryRow runs a statement expected to return at most one row.
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Exec implements Querier on the pooled database.
func (db *Database) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	conn, err := db.acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx, sql, args...)
	if err != nil {
		return 0, sqlerr.Translate(err)
	}
	return tag.RowsAffected(), nil
}

// Query implements Querier on the pooled database. The returned rows hold
// the connection until closed; Collect/CollectOne always close them.
func (db *Database) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	conn, err := db.acquire(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		conn.Release()
		return nil, sqlerr.Translate(err)
	}
	return &pooledRows{Rows: rows, conn: conn}, nil
}

// QueryRow implements Querier on the pooled database. The connection is
// released when Scan completes.
func (db *Database) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	conn, err := db.acquire(ctx)
	if err != nil {
		return errRow{err: err}
	}
	return &pooledRow{row: conn.QueryRow(ctx, sql, args...), conn: conn}
}

// WithTx runs fn inside one transaction on one pooled connection.
//
// The transaction commits on normal completion and rolls back on error or
// panic; the connection is released on every exit path. One logical
// operation maps to one WithTx call, so partial writes are never
// observable.
func (db *Database) WithTx(ctx context.Context, fn func(ctx context.Context, q Querier) error) error {
	conn, err := db.acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return sqlerr.Translate(err)
	}
	// Rollback after a successful commit is a no-op.
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := fn(ctx, &Tx{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return sqlerr.Translate(err)
	}
	return nil
}

// Tx adapts a pgx transaction to the Querier interface with the same
// error translation as the pooled paths.
type Tx struct {
	tx pgx.Tx
}

func (t *Tx) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	tag, err := t.tx.Exec(ctx, sql, args...)
	if err != nil {
		return 0, sqlerr.Translate(err)
	}
	return tag.RowsAffected(), nil
}

func (t *Tx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	rows, err := t.tx.Query(ctx, sql, args...)
	if err != nil {
		return nil, sqlerr.Translate(err)
	}
	return rows, nil
}

func (t *Tx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return translatingRow{row: t.tx.QueryRow(ctx, sql, args...)}
}

// Collect reads every row into T by column name (using `db` struct tags)
// and closes the rows. It accepts the (rows, err) pair straight from
// Querier.Query so call sites stay one line.
func Collect[T any](rows pgx.Rows, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, sqlerr.Translate(err)
	}
	return items, nil
}

// CollectOne reads exactly one row into T. No rows translates to a
// NotFound domain error.
func CollectOne[T any](rows pgx.Rows, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, sqlerr.Translate(err)
	}
	return &item, nil
}

// pooledRows ties result rows to the pooled connection they came from and
// releases it exactly once on Close.
type pooledRows struct {
	pgx.Rows
	conn     *pgxpool.Conn
	released bool
}

func (r *pooledRows) Close() {
	r.Rows.Close()
	if !r.released {
		r.conn.Release()
		r.released = true
	}
}

// pooledRow releases its connection when scanned.
type pooledRow struct {
	row  pgx.Row
	conn *pgxpool.Conn
}

func (r *pooledRow) Scan(dest ...any) error {
	defer r.conn.Release()
	return sqlerr.Translate(r.row.Scan(dest...))
}

// translatingRow wraps a transaction-scoped row so Scan errors come back
// translated.
type translatingRow struct {
	row pgx.Row
}

func (r translatingRow) Scan(dest ...any) error {
	return sqlerr.Translate(r.row.Scan(dest...))
}

// errRow defers an acquire failure until Scan, matching pgx.Row's
// error-on-scan contract.
type errRow struct {
	err error
}

func (r errRow) Scan(...any) error {
	return r.err
}
