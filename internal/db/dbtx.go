package db

import (
	"context"
	"database/sql"
)

// DBTX is the querying surface the repositories are written against.
// Outside a transaction it is the *sql.DB itself; inside WithinTx it is
// the *sql.Tx, so the same repository code serves both.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
