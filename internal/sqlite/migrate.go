package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/companion/pkg/types"
)

// migration upgrades a store from version-1 to version. Steps are additive
// and must be safe to apply to a store that already has their structure.
type migration struct {
	version int
	name    string
	apply   func(ctx context.Context, tx *sql.Tx, log *zap.Logger) error
}

// migrations lists every upgrade step in ascending version order.
var migrations = []migration{
	{
		version: 7,
		name:    "add quest.timer_minutes",
		apply: func(ctx context.Context, tx *sql.Tx, _ *zap.Logger) error {
			return addColumnIfMissing(ctx, tx, types.TableQuest, "timer_minutes", "INTEGER NOT NULL DEFAULT 5")
		},
	},
	{
		version: 8,
		name:    "create accessory table",
		apply: func(ctx context.Context, tx *sql.Tx, _ *zap.Logger) error {
			return createTableIfMissing(ctx, tx, types.TableAccessory, createAccessory)
		},
	},
	{
		version: 9,
		name:    "create quest catalog index",
		apply:   createQuestCatalogIndex,
	},
}

// dedupQuestsSQL keeps one row per (title, mood): the rewarded one first,
// then the one with the most progress, then the oldest.
const dedupQuestsSQL = `DELETE FROM quest WHERE id IN (
    SELECT id FROM (
        SELECT id, ROW_NUMBER() OVER (
            PARTITION BY title, mood ORDER BY rewarded DESC, progress DESC, id
        ) AS pos FROM quest
    ) WHERE pos > 1
)`

// createQuestCatalogIndex merges duplicate catalog rows that older stores
// could accumulate, then adds the unique index that keeps them out.
func createQuestCatalogIndex(ctx context.Context, tx *sql.Tx, log *zap.Logger) error {
	res, err := tx.ExecContext(ctx, dedupQuestsSQL)
	if err != nil {
		return fmt.Errorf("merging duplicate quests: %w", err)
	}
	merged, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("merging duplicate quests: %w", err)
	}
	if merged > 0 {
		log.Warn("merged duplicate quests", zap.Int64("removed", merged))
	}
	_, err = tx.ExecContext(ctx, idxQuestCatalog)
	return err
}

// addColumnIfMissing adds a column unless a previous run already did.
func addColumnIfMissing(ctx context.Context, tx *sql.Tx, table, column, def string) error {
	exists, err := columnExists(ctx, tx, table, column)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	_, err = tx.ExecContext(ctx, fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, def))
	return err
}

// createTableIfMissing runs ddl unless the table is already there.
func createTableIfMissing(ctx context.Context, tx *sql.Tx, table, ddl string) error {
	exists, err := tableExists(ctx, tx, table)
	if err != nil || exists {
		return err
	}
	_, err = tx.ExecContext(ctx, ddl)
	return err
}

// pendingMigrations returns the steps that take a store from version from to
// version to, in the order they must run.
func pendingMigrations(from, to int) []migration {
	var steps []migration
	for _, m := range migrations {
		if m.version > from && m.version <= to {
			steps = append(steps, m)
		}
	}
	return steps
}

// checkMigrationPath rejects stored versions that no step sequence can bring
// to target.
func checkMigrationPath(stored, target int) error {
	if stored > target {
		return fmt.Errorf("%w: store is at version %d, newer than %d", types.ErrMigrationGap, stored, target)
	}
	if stored < MinSchemaVersion {
		return fmt.Errorf("%w: store is at version %d, oldest supported is %d", types.ErrMigrationGap, stored, MinSchemaVersion)
	}
	return nil
}

// migrate runs every pending step and stamps target, all in one
// transaction: a failing step leaves the store at its previous version.
func (b *Backend) migrate(ctx context.Context, from, to int) error {
	steps := pendingMigrations(from, to)
	log := b.logger.With(zap.Int("from", from), zap.Int("to", to))
	log.Info("migrating store", zap.Int("steps", len(steps)))
	start := time.Now()

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning migration transaction: %w", err)
	}
	defer tx.Rollback()

	for _, m := range steps {
		if err := m.apply(ctx, tx, log); err != nil {
			log.Error("migration step failed", zap.Int("version", m.version), zap.String("step", m.name), zap.Error(err))
			return classifyInit(fmt.Sprintf("migration to v%d (%s)", m.version, m.name), err)
		}
		log.Debug("migration step applied", zap.Int("version", m.version), zap.String("step", m.name))
	}

	if err := setUserVersion(ctx, tx, to); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing migration: %w", err)
	}

	log.Info("store migrated", zap.Duration("took", time.Since(start)))
	return nil
}
