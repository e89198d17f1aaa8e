package data

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of *pgxpool.Pool the repositories use.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

func exists(ctx context.Context, db DB, query string, args ...any) (bool, error) {
	var found bool
	if err := db.QueryRow(ctx, query, args...).Scan(&found); err != nil {
		return false, handleError(err)
	}
	return found, nil
}

func execAffectingOne(ctx context.Context, db DB, query string, args ...any) error {
	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return handleError(pgx.ErrNoRows)
	}
	return nil
}
