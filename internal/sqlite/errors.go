package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/mesh-intelligence/companion/pkg/types"
)

// querier is the subset of *sql.DB and *sql.Tx the store helpers need, so
// the same helper runs inside or outside a transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// isConstraintError reports whether err is a SQLite constraint failure
// (CHECK, NOT NULL, UNIQUE, PRIMARY KEY).
func isConstraintError(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
}

// classify wraps driver errors from table operations in the package
// sentinels callers match on.
func classify(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%s: %w", op, types.ErrNotFound)
	case isConstraintError(err):
		return fmt.Errorf("%s: %w: %w", op, types.ErrConstraintViolation, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// classifyInit wraps errors raised while creating, seeding or migrating.
// Constraint failures there are packaging bugs and surface as
// ErrSchemaViolation.
func classifyInit(op string, err error) error {
	if err == nil {
		return nil
	}
	if isConstraintError(err) {
		return fmt.Errorf("%s: %w: %w", op, types.ErrSchemaViolation, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// tableExists checks sqlite_master for a table.
func tableExists(ctx context.Context, q querier, table string) (bool, error) {
	var count int
	err := q.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking table %s: %w", table, err)
	}
	return count > 0, nil
}

// columnExists checks PRAGMA table_info for a column.
func columnExists(ctx context.Context, q querier, table, column string) (bool, error) {
	cols, err := tableColumns(ctx, q, table)
	if err != nil {
		return false, err
	}
	for _, c := range cols {
		if c.Name == column {
			return true, nil
		}
	}
	return false, nil
}

// boolToInt maps a Go bool onto the 0/1 columns.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
