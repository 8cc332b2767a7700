package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is the subset shared by *pgxpool.Pool and *pgxpool.Conn.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type connKey struct{}

// WithConn returns a context carrying a connection acquired for the current request.
func WithConn(ctx context.Context, conn *pgxpool.Conn) context.Context {
	return context.WithValue(ctx, connKey{}, conn)
}

// ConnFrom returns the request-scoped connection, if any.
func ConnFrom(ctx context.Context) (*pgxpool.Conn, bool) {
	conn, ok := ctx.Value(connKey{}).(*pgxpool.Conn)
	return conn, ok && conn != nil
}
