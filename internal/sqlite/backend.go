package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/companion/internal/logging"
	"github.com/mesh-intelligence/companion/pkg/types"
)

// pragmas are applied to the single connection right after it opens.
var pragmas = []string{
	"PRAGMA foreign_keys = ON",
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA busy_timeout = 5000",
}

// Backend implements types.Store on a single SQLite file. All access goes
// through one connection; reads take the read lock, writes and
// transactions take the write lock.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	path     string
	version  int
	target   int
	logger   *zap.Logger

	users       *userTable
	quests      *questTable
	accessories *accessoryTable
	moods       *moodTable
}

// Option configures a Backend.
type Option func(*Backend)

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(b *Backend) { b.logger = logging.OrNop(l) }
}

// WithTargetVersion makes Attach create or migrate to version instead of
// CurrentSchemaVersion.
func WithTargetVersion(version int) Option {
	return func(b *Backend) { b.target = version }
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{
		target: CurrentSchemaVersion,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.users = &userTable{backend: b}
	b.quests = &questTable{backend: b}
	b.accessories = &accessoryTable{backend: b}
	b.moods = &moodTable{backend: b}
	return b
}

// Attach opens <DataDir>/virtual_companion.db, creating the directory and
// file if needed, then brings the schema to the target version: a new store
// is created and seeded, an older one is migrated. Attach returns only once
// the schema is complete; on any error nothing stays open.
func (b *Backend) Attach(ctx context.Context, config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}
	if b.target < MinSchemaVersion || b.target > CurrentSchemaVersion {
		return fmt.Errorf("%w: %d (supported %d..%d)", types.ErrUnknownVersion, b.target, MinSchemaVersion, CurrentSchemaVersion)
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("%w: creating data directory: %w", types.ErrStorageUnavailable, err)
	}
	path := filepath.Join(dataDir, DBName)

	db, err := openDB(ctx, path)
	if err != nil {
		return err
	}

	b.db = db
	b.path = path
	b.config = config

	version, err := b.initialize(ctx)
	if err != nil {
		db.Close()
		b.db = nil
		return err
	}

	b.version = version
	b.attached = true
	b.logger.Debug("store attached", zap.String("path", path), zap.Int("version", version))
	return nil
}

// openDB opens the file on a single connection and applies pragmas. Any
// failure here means the file cannot be used at all.
func openDB(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %w", types.ErrStorageUnavailable, path, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: opening %s: %w", types.ErrStorageUnavailable, path, err)
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: %s: %w", types.ErrStorageUnavailable, pragma, err)
		}
	}
	return db, nil
}

// initialize moves the store from its stamped version to the target and
// returns the resulting version. Version 0 is a store that was never
// created.
func (b *Backend) initialize(ctx context.Context) (int, error) {
	stored, err := userVersion(ctx, b.db)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", types.ErrStorageUnavailable, err)
	}

	if stored == 0 {
		if err := b.create(ctx, b.target); err != nil {
			return 0, err
		}
		return b.target, nil
	}

	if err := checkMigrationPath(stored, b.target); err != nil {
		return 0, err
	}
	if stored == b.target {
		return stored, nil
	}

	if b.config.BackupOnMigrate {
		backup, err := b.backup(ctx, stored)
		if err != nil {
			return 0, err
		}
		b.logger.Info("store backed up before migration", zap.String("backup", backup))
	}

	if err := b.migrate(ctx, stored, b.target); err != nil {
		return 0, err
	}
	return b.target, nil
}

// Detach releases all resources held by the backend.
// After Detach, all operations return ErrStoreDetached.
// Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	b.attached = false
	if b.db != nil {
		err := b.db.Close()
		b.db = nil
		if err != nil {
			return fmt.Errorf("closing database: %w", err)
		}
	}
	b.logger.Debug("store detached", zap.String("path", b.path))
	return nil
}

// Version returns the schema version of the attached store, or 0.
func (b *Backend) Version() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return 0
	}
	return b.version
}

// Path returns the database file path of the last Attach.
func (b *Backend) Path() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.path
}

// Schema describes the tables, columns and indexes of the attached store.
func (b *Backend) Schema(ctx context.Context) (types.Schema, error) {
	var s types.Schema
	err := b.read(func(db *sql.DB) error {
		var err error
		s, err = describeSchema(ctx, db)
		return err
	})
	return s, err
}

// Users returns the user profile table.
func (b *Backend) Users() types.UserTable { return b.users }

// Quests returns the quest table.
func (b *Backend) Quests() types.QuestTable { return b.quests }

// Accessories returns the accessory table.
func (b *Backend) Accessories() types.AccessoryTable { return b.accessories }

// Moods returns the mood history table.
func (b *Backend) Moods() types.MoodTable { return b.moods }

// read runs fn under the read lock.
func (b *Backend) read(fn func(db *sql.DB) error) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return types.ErrStoreDetached
	}
	return fn(b.db)
}

// write runs fn under the write lock.
func (b *Backend) write(fn func(db *sql.DB) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.attached {
		return types.ErrStoreDetached
	}
	return fn(b.db)
}

// inTx runs fn in a transaction under the write lock, committing when fn
// returns nil.
func (b *Backend) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return b.write(func(db *sql.DB) error {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("beginning transaction: %w", err)
		}
		defer tx.Rollback()

		if err := fn(tx); err != nil {
			return err
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing transaction: %w", err)
		}
		return nil
	})
}

var _ types.Store = (*Backend)(nil)
