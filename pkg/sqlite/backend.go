// Package sqlite provides the public API for the SQLite companion store.
// This package exposes the factory function for creating SQLite backends
// while keeping implementation details internal.
package sqlite

import (
	"go.uber.org/zap"

	"github.com/mesh-intelligence/companion/internal/sqlite"
	"github.com/mesh-intelligence/companion/pkg/types"
)

// DBName is the database file name inside the data directory.
const DBName = sqlite.DBName

// CurrentSchemaVersion is the schema version new stores are created at.
const CurrentSchemaVersion = sqlite.CurrentSchemaVersion

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	store := sqlite.NewBackend(logger)
//	err := store.Attach(ctx, types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: dataDir,
//	})
//	defer store.Detach()
func NewBackend(logger *zap.Logger) types.Store {
	return sqlite.NewBackend(sqlite.WithLogger(logger))
}
