package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/companion/pkg/types"
)

// questTable implements types.QuestTable.
type questTable struct {
	backend *Backend
}

// columns lists the selected quest columns. Stores older than v7 have no
// timer column and report the default instead. Callers hold the lock.
func (t *questTable) columns() string {
	timer := "timer_minutes"
	if t.backend.version < 7 {
		timer = strconv.Itoa(types.DefaultTimerMinutes)
	}
	return "id, title, description, reward, " + timer + ", progress, rewarded, mood"
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuest(row rowScanner) (types.Quest, error) {
	var (
		q        types.Quest
		desc     sql.NullString
		rewarded int
		mood     string
	)
	if err := row.Scan(&q.ID, &q.Title, &desc, &q.Reward, &q.TimerMinutes, &q.Progress, &rewarded, &mood); err != nil {
		return types.Quest{}, err
	}
	q.Description = desc.String
	q.Rewarded = rewarded == 1
	q.Mood = types.Mood(mood)
	return q, nil
}

// Get returns a quest by id.
func (t *questTable) Get(ctx context.Context, id int64) (*types.Quest, error) {
	if id <= 0 {
		return nil, types.ErrInvalidID
	}
	var q types.Quest
	err := t.backend.read(func(db *sql.DB) error {
		var err error
		q, err = scanQuest(db.QueryRowContext(ctx, "SELECT "+t.columns()+" FROM quest WHERE id = ?", id))
		return classify(fmt.Sprintf("get quest %d", id), err)
	})
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// Fetch returns quests matching filter ordered by id.
func (t *questTable) Fetch(ctx context.Context, filter types.QuestFilter) ([]types.Quest, error) {
	var (
		where []string
		args  []any
	)
	if filter.Mood != "" {
		if !filter.Mood.Valid() {
			return nil, types.ErrInvalidMood
		}
		where = append(where, "mood = ?")
		args = append(args, string(filter.Mood))
	}
	if filter.Rewarded != nil {
		where = append(where, "rewarded = ?")
		args = append(args, boolToInt(*filter.Rewarded))
	}

	var quests []types.Quest
	err := t.backend.read(func(db *sql.DB) error {
		query := "SELECT " + t.columns() + " FROM quest"
		if len(where) > 0 {
			query += " WHERE " + strings.Join(where, " AND ")
		}
		query += " ORDER BY id"

		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			return classify("fetch quests", err)
		}
		defer rows.Close()

		for rows.Next() {
			q, err := scanQuest(rows)
			if err != nil {
				return classify("scan quest", err)
			}
			quests = append(quests, q)
		}
		return rows.Err()
	})
	return quests, err
}

// SetProgress records the progress counter.
func (t *questTable) SetProgress(ctx context.Context, id int64, progress int) error {
	if id <= 0 {
		return types.ErrInvalidID
	}
	if progress < 0 {
		return types.ErrInvalidProgress
	}
	return t.backend.write(func(db *sql.DB) error {
		res, err := db.ExecContext(ctx, "UPDATE quest SET progress = ? WHERE id = ?", progress, id)
		if err != nil {
			return classify("set quest progress", err)
		}
		return requireRow(res, fmt.Sprintf("set quest %d progress", id))
	})
}

// Claim pays the quest reward once.
func (t *questTable) Claim(ctx context.Context, id int64) (int, error) {
	if id <= 0 {
		return 0, types.ErrInvalidID
	}
	var balance int
	err := t.backend.inTx(ctx, func(tx *sql.Tx) error {
		var reward, rewarded int
		err := tx.QueryRowContext(ctx, "SELECT reward, rewarded FROM quest WHERE id = ?", id).Scan(&reward, &rewarded)
		if err != nil {
			return classify(fmt.Sprintf("claim quest %d", id), err)
		}
		if rewarded == 1 {
			return fmt.Errorf("claim quest %d: %w", id, types.ErrAlreadyRewarded)
		}
		if _, err := tx.ExecContext(ctx, "UPDATE quest SET rewarded = 1 WHERE id = ? AND rewarded = 0", id); err != nil {
			return classify(fmt.Sprintf("claim quest %d", id), err)
		}
		balance, err = addCoins(ctx, tx, reward)
		return err
	})
	return balance, err
}

// Reset clears progress and the rewarded flag.
func (t *questTable) Reset(ctx context.Context, id int64) error {
	if id <= 0 {
		return types.ErrInvalidID
	}
	return t.backend.write(func(db *sql.DB) error {
		res, err := db.ExecContext(ctx, "UPDATE quest SET progress = 0, rewarded = 0 WHERE id = ?", id)
		if err != nil {
			return classify("reset quest", err)
		}
		return requireRow(res, fmt.Sprintf("reset quest %d", id))
	})
}
