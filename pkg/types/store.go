package types

import (
	"context"
	"errors"
)

// Store is the single owning handle of the local database file. Callers
// attach once at application start, use the typed tables, and detach at
// application end. Attach returns only after the schema has been created or
// migrated, so every table call issued after it sees the full schema.
type Store interface {
	// Attach opens (creating if needed) the database described by config,
	// creates or migrates the schema and seeds defaults on first creation.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(ctx context.Context, config Config) error

	// Detach releases the database. Idempotent: multiple calls succeed.
	// After Detach, table operations return ErrStoreDetached.
	Detach() error

	// Version returns the schema version stamped in the database.
	Version() int

	// Schema describes the tables, columns and indexes currently present.
	Schema(ctx context.Context) (Schema, error)

	Users() UserTable
	Quests() QuestTable
	Accessories() AccessoryTable
	Moods() MoodTable
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// Store initialization errors. Attach wraps one of these around the
// underlying cause so callers can classify failures with errors.Is.
var (
	// ErrSchemaViolation means seed or migration data was rejected by a
	// CHECK, NOT NULL or UNIQUE constraint. It indicates a packaging bug.
	ErrSchemaViolation = errors.New("schema violation")

	// ErrStorageUnavailable means the database file or its directory could
	// not be created or opened.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrMigrationGap means the stored schema version has no known path to
	// the target version (newer than the target, or older than the oldest
	// supported structure).
	ErrMigrationGap = errors.New("no migration path")

	// ErrUnknownVersion means a requested target version is outside the
	// range of schema versions this build knows how to create.
	ErrUnknownVersion = errors.New("unknown schema version")
)
