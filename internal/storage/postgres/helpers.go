package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jobboard-api/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgxpool.Pool / pgx.Tx the repositories need.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// mapPgError translates driver-level constraint violations into the
// storage sentinel errors so callers see one consistent outcome no matter
// which layer detected the duplicate.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if strings.Contains(pgErr.ConstraintName, "email") {
				return storage.ErrDuplicateEmail
			}
			return storage.ErrConflict
		case pgForeignKeyViolation:
			return storage.ErrConflict
		}
	}
	return err
}

// buildListQuery appends WHERE conditions and newest-first ordering to a
// base SELECT.
func buildListQuery(baseQuery string, conditions []string) string {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(baseQuery)

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}

	queryBuilder.WriteString(" ORDER BY created_at DESC")

	return queryBuilder.String()
}

// placeholder returns the positional parameter for the next argument.
func placeholder(args []interface{}) string {
	return fmt.Sprintf("$%d", len(args))
}

// prefixColumns qualifies a comma-separated column list with a table alias.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, part := range parts {
		parts[i] = alias + "." + strings.TrimSpace(part)
	}
	return strings.Join(parts, ", ")
}
