package sqlite

import (
	"context"
	"database/sql"

	"github.com/mesh-intelligence/companion/pkg/types"
)

// moodTable implements types.MoodTable. Entries are only ever appended.
type moodTable struct {
	backend *Backend
}

// Record appends an entry. Values outside 1..5 are rejected before they
// reach the CHECK constraint.
func (t *moodTable) Record(ctx context.Context, entry types.MoodEntry) (int64, error) {
	if err := entry.Validate(); err != nil {
		return 0, err
	}
	var id int64
	err := t.backend.write(func(db *sql.DB) error {
		res, err := db.ExecContext(ctx, "INSERT INTO mood (value, date) VALUES (?, ?)", entry.Value, entry.Date)
		if err != nil {
			return classify("record mood", err)
		}
		id, err = res.LastInsertId()
		return err
	})
	return id, err
}

// Fetch returns the newest entries first.
func (t *moodTable) Fetch(ctx context.Context, limit int) ([]types.MoodEntry, error) {
	query := "SELECT id, value, date FROM mood ORDER BY id DESC"
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var entries []types.MoodEntry
	err := t.backend.read(func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			return classify("fetch moods", err)
		}
		defer rows.Close()

		for rows.Next() {
			var e types.MoodEntry
			if err := rows.Scan(&e.ID, &e.Value, &e.Date); err != nil {
				return classify("scan mood", err)
			}
			entries = append(entries, e)
		}
		return rows.Err()
	})
	return entries, err
}
