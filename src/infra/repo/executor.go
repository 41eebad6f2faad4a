package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"oblog/src/core/domain"
)

// DBTX executes parameterized SQL. *pgxpool.Pool, pgx.Tx and pgxmock pools
// all satisfy it.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SQLSTATE codes handled by the repositories.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

type scanner interface {
	Scan(dest ...any) error
}

// translateWriteError converts constraint violations raised on insert/update
// into domain errors. Any other error is returned unchanged.
func translateWriteError(err error, resource string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case uniqueViolation:
		msg := resource + " already exists"
		if pgErr.ConstraintName != "" {
			msg = fmt.Sprintf("%s (%s)", msg, pgErr.ConstraintName)
		}
		return domain.NewConflictError(msg)
	case foreignKeyViolation:
		return domain.NewValidationError("category_id", "category does not exist")
	}
	return err
}

func errEmptyPatch() error {
	return domain.NewValidationError("", "at least one field must be provided")
}
