package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/mesh-intelligence/companion/pkg/types"
)

// userVersion reads the schema version stamped in the database header.
func userVersion(ctx context.Context, q querier) (int, error) {
	var v int
	if err := q.QueryRowContext(ctx, "PRAGMA user_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("reading user_version: %w", err)
	}
	return v, nil
}

// setUserVersion stamps the schema version. PRAGMA does not take bound
// parameters, so the integer is formatted into the statement.
func setUserVersion(ctx context.Context, q querier, v int) error {
	if _, err := q.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", v)); err != nil {
		return fmt.Errorf("writing user_version: %w", err)
	}
	return nil
}

// tableColumns returns PRAGMA table_info for a table in declaration order.
func tableColumns(ctx context.Context, q querier, table string) ([]types.Column, error) {
	rows, err := q.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%q)", table))
	if err != nil {
		return nil, fmt.Errorf("table_info(%s): %w", table, err)
	}
	defer rows.Close()

	var cols []types.Column
	for rows.Next() {
		var (
			cid     int
			name    string
			ctype   string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("scanning table_info(%s): %w", table, err)
		}
		cols = append(cols, types.Column{
			Name:       name,
			Type:       ctype,
			NotNull:    notNull == 1,
			Default:    dflt.String,
			PrimaryKey: pk > 0,
		})
	}
	return cols, rows.Err()
}

// masterNames lists user objects of the given sqlite_master type by name.
func masterNames(ctx context.Context, q querier, objType string) ([]string, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = ? AND name NOT LIKE 'sqlite_%' ORDER BY name", objType)
	if err != nil {
		return nil, fmt.Errorf("listing %s objects: %w", objType, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning %s name: %w", objType, err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// describeSchema collects version, tables, columns and indexes. Names are
// read fully before table_info runs since the backend holds one connection.
func describeSchema(ctx context.Context, q querier) (types.Schema, error) {
	version, err := userVersion(ctx, q)
	if err != nil {
		return types.Schema{}, err
	}

	tables, err := masterNames(ctx, q, "table")
	if err != nil {
		return types.Schema{}, err
	}
	indexes, err := masterNames(ctx, q, "index")
	if err != nil {
		return types.Schema{}, err
	}

	s := types.Schema{Version: version, Indexes: indexes}
	for _, name := range tables {
		cols, err := tableColumns(ctx, q, name)
		if err != nil {
			return types.Schema{}, err
		}
		ddl, err := tableSQL(ctx, q, name)
		if err != nil {
			return types.Schema{}, err
		}
		s.Tables = append(s.Tables, types.TableSchema{Name: name, Columns: cols, Checks: checkClauses(ddl)})
	}
	return s, nil
}

// tableSQL returns the CREATE TABLE text sqlite_master keeps for a table.
// ALTER TABLE edits that text in place.
func tableSQL(ctx context.Context, q querier, table string) (string, error) {
	var ddl sql.NullString
	err := q.QueryRowContext(ctx,
		"SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", table,
	).Scan(&ddl)
	if err != nil {
		return "", fmt.Errorf("reading definition of %s: %w", table, err)
	}
	return ddl.String, nil
}

// checkClauses extracts the CHECK expressions of a CREATE TABLE statement.
func checkClauses(ddl string) []string {
	var checks []string
	upper := strings.ToUpper(ddl)
	for i := 0; i < len(ddl); {
		j := strings.Index(upper[i:], "CHECK")
		if j < 0 {
			break
		}
		k := i + j + len("CHECK")
		for k < len(ddl) && strings.ContainsRune(" \t\r\n", rune(ddl[k])) {
			k++
		}
		if k == len(ddl) || ddl[k] != '(' {
			i = k
			continue
		}
		end := closingParen(ddl, k)
		if end < 0 {
			break
		}
		checks = append(checks, strings.Join(strings.Fields(ddl[k+1:end]), " "))
		i = end + 1
	}
	sort.Strings(checks)
	return checks
}

// closingParen returns the index of the parenthesis matching s[open],
// skipping quoted literals, or -1.
func closingParen(s string, open int) int {
	depth, quoted := 0, false
	for i := open; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\'':
			quoted = !quoted
		case quoted:
		case c == '(':
			depth++
		case c == ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
