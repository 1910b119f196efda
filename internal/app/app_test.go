package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mesh-intelligence/companion/internal/audio"
	"github.com/mesh-intelligence/companion/internal/presence"
	"github.com/mesh-intelligence/companion/pkg/types"
)

func testConfig(t *testing.T, music bool) Config {
	return Config{
		Store:        types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()},
		MusicEnabled: music,
	}
}

func TestOpen(t *testing.T) {
	a, err := Open(context.Background(), testConfig(t, true), nil, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	assert.NotEmpty(t, a.Session)
	assert.Equal(t, 9, a.Store.Version())

	u, err := a.Store.Users().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, types.DefaultCoins, u.Coins)
}

func TestOpen_SessionsDiffer(t *testing.T) {
	cfg := testConfig(t, false)

	a, err := Open(context.Background(), cfg, nil, nil)
	require.NoError(t, err)
	first := a.Session
	require.NoError(t, a.Close())

	a, err = Open(context.Background(), cfg, nil, nil)
	require.NoError(t, err)
	defer a.Close()
	assert.NotEqual(t, first, a.Session)
}

func TestOpen_StorageUnavailable(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	cfg := Config{Store: types.Config{Backend: types.BackendSQLite, DataDir: file}}
	_, err := Open(context.Background(), cfg, nil, nil)
	assert.ErrorIs(t, err, types.ErrStorageUnavailable)
}

func TestApp_PresenceDrivesMusic(t *testing.T) {
	var player *audio.NopPlayer
	factory := func() (audio.Player, error) {
		player = audio.NewNopPlayer()
		return player, nil
	}

	a, err := Open(context.Background(), testConfig(t, true), nil, factory)
	require.NoError(t, err)

	a.Presence.ActivityStarted()
	assert.Equal(t, presence.Foreground, a.Presence.State())
	assert.True(t, a.Music.Playing())

	a.Presence.LowMemory()
	assert.False(t, a.Music.Playing())
	a.Music.Resume()
	assert.True(t, a.Music.Playing())

	a.Presence.LowMemory()
	a.Music.SetEnabled(true)
	assert.True(t, a.Music.Playing(), "turning music on after low memory plays again")

	require.NoError(t, a.Close())
	assert.False(t, a.Music.Playing())
	assert.True(t, player.Stopped())
	assert.Equal(t, presence.Background, a.Presence.State())

	_, err = a.Store.Users().Get(context.Background())
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	assert.NoError(t, a.Close(), "second close is a no-op")
}

func TestApp_MusicDisabled(t *testing.T) {
	a, err := Open(context.Background(), testConfig(t, false), nil, nil)
	require.NoError(t, err)
	defer a.Close()

	a.Presence.ActivityStarted()
	assert.False(t, a.Music.Playing())
}

func TestOpen_LogsSession(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	a, err := Open(context.Background(), testConfig(t, false), zap.New(core), nil)
	require.NoError(t, err)
	require.NoError(t, a.Close())

	opened := logs.FilterMessage("app opened").All()
	require.Len(t, opened, 1)
	assert.Equal(t, a.Session, opened[0].ContextMap()["session"])
	assert.NotZero(t, logs.FilterMessage("store created").Len(), "store logs carry through")
}
