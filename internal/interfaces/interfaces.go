package interfaces

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the querier contract shared by *pgxpool.Pool and pgx.Tx, so a
// repository can run either against the pool or inside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PgxPool is the subset of *pgxpool.Pool the services depend on.
// pgxmock's pool satisfies it too, which keeps transaction paths testable.
type PgxPool interface {
	DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}
