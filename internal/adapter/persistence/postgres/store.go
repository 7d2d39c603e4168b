// Package postgres implements the repositories on PostgreSQL. Natural-key uniqueness is
// enforced by table constraints; violations surface as domainerr.ErrPersistenceConflict.
package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"brokerage_crm/internal/domain/domainerr"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

//go:embed schema.sql
var schema string

const uniqueViolation = "23505"

// Migrate creates the tables and indexes when missing.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// conflictOrErr maps a unique violation to ErrPersistenceConflict.
func conflictOrErr(err error, what string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s (%s): %w", what, pgErr.ConstraintName, domainerr.ErrPersistenceConflict)
	}
	return fmt.Errorf("%s: %w", what, err)
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func decimalArg(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.String()
	return &s
}

func decimalFromText(s *string) decimal.NullDecimal {
	if s == nil {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}
