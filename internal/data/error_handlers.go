package data

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"schoolhub/internal/errdefs"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func handleError(err error) error {
	switch {
	case pgErrorCode(err) == uniqueViolation:
		return errdefs.ErrAlreadyExists
	case pgErrorCode(err) == foreignKeyViolation:
		return fmt.Errorf("record is referenced by other records: %w", errdefs.ErrConflict)
	case isNotFound(err):
		return errdefs.ErrNotFound
	}
	return fmt.Errorf("repository error: %w", err)
}
