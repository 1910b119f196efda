package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/companion/pkg/types"
)

func TestNewBackend(t *testing.T) {
	dir := t.TempDir()
	store := NewBackend(nil)

	require.NoError(t, store.Attach(context.Background(), types.Config{
		Backend: types.BackendSQLite,
		DataDir: dir,
	}))
	defer store.Detach()

	assert.Equal(t, CurrentSchemaVersion, store.Version())
	assert.FileExists(t, filepath.Join(dir, DBName))
}
