package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/companion/pkg/types"
)

const seedUserSQL = `INSERT OR IGNORE INTO user (id, name, coins, pet_gender) VALUES (?, '', ?, ?)`

// Quest seed rows are inserted only when no quest with the same title and
// mood exists, so re-running the seed never duplicates the catalog.
const (
	seedQuestSQL = `INSERT INTO quest (title, description, reward, timer_minutes, mood)
SELECT ?, ?, ?, ?, ?
WHERE NOT EXISTS (SELECT 1 FROM quest WHERE title = ? AND mood = ?)`

	seedQuestV6SQL = `INSERT INTO quest (title, description, reward, mood)
SELECT ?, ?, ?, ?
WHERE NOT EXISTS (SELECT 1 FROM quest WHERE title = ? AND mood = ?)`
)

// create builds the schema of the given version on an empty store, seeds
// the defaults and stamps the version, in one transaction.
func (b *Backend) create(ctx context.Context, version int) error {
	b.logger.Info("creating store", zap.Int("version", version))

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning create transaction: %w", err)
	}
	defer tx.Rollback()

	for _, ddl := range schemaDDL(version) {
		if _, err := tx.ExecContext(ctx, ddl); err != nil {
			return classifyInit("creating schema", err)
		}
	}

	if err := seedUser(ctx, tx); err != nil {
		return err
	}
	inserted, err := seedQuests(ctx, tx, version >= 7)
	if err != nil {
		return err
	}

	if err := setUserVersion(ctx, tx, version); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing create transaction: %w", err)
	}

	b.logger.Info("store created", zap.Int("version", version), zap.Int("quests_seeded", inserted))
	return nil
}

// seedUser inserts the default profile unless row 1 already exists.
func seedUser(ctx context.Context, q querier) error {
	_, err := q.ExecContext(ctx, seedUserSQL, types.UserID, types.DefaultCoins, string(types.DefaultPetGender))
	return classifyInit("seeding user", err)
}

// seedQuests inserts the built-in catalog, skipping quests already present.
// withTimer is false for stores that predate the timer_minutes column.
// Returns the number of rows inserted.
func seedQuests(ctx context.Context, tx *sql.Tx, withTimer bool) (int, error) {
	query := seedQuestV6SQL
	if withTimer {
		query = seedQuestSQL
	}
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("preparing quest seed: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, q := range questCatalog {
		var res sql.Result
		if withTimer {
			res, err = stmt.ExecContext(ctx, q.title, q.description, q.reward, q.timerMinutes, string(q.mood), q.title, string(q.mood))
		} else {
			res, err = stmt.ExecContext(ctx, q.title, q.description, q.reward, string(q.mood), q.title, string(q.mood))
		}
		if err != nil {
			return inserted, classifyInit(fmt.Sprintf("seeding quest %q", q.title), err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return inserted, fmt.Errorf("seeding quest %q: %w", q.title, err)
		}
		inserted += int(n)
	}
	return inserted, nil
}
