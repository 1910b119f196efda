// Package app wires the companion's long-lived parts together: the store,
// the music controller and the presence observer that drives it.
package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/companion/internal/audio"
	"github.com/mesh-intelligence/companion/internal/logging"
	"github.com/mesh-intelligence/companion/internal/presence"
	"github.com/mesh-intelligence/companion/pkg/sqlite"
	"github.com/mesh-intelligence/companion/pkg/types"
)

// Config selects the store and the initial music setting.
type Config struct {
	Store        types.Config
	MusicEnabled bool
}

// App owns the store for its whole lifetime. Open it once at start and
// Close it at exit.
type App struct {
	Session  string
	Store    types.Store
	Music    *audio.Controller
	Presence *presence.Observer

	logger *zap.Logger
	closed bool
}

// Open attaches the store and returns once the schema is ready. player may
// be nil, in which case music only tracks state.
func Open(ctx context.Context, cfg Config, logger *zap.Logger, player audio.PlayerFactory) (*App, error) {
	session := uuid.NewString()
	logger = logging.OrNop(logger).With(zap.String("session", session))

	store := sqlite.NewBackend(logger.Named("store"))
	if err := store.Attach(ctx, cfg.Store); err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	music := audio.NewController(player, cfg.MusicEnabled, logger.Named("audio"))
	a := &App{
		Session:  session,
		Store:    store,
		Music:    music,
		Presence: presence.NewObserver(music, presence.WithLogger(logger.Named("presence"))),
		logger:   logger,
	}
	logger.Debug("app opened", zap.Int("schema_version", store.Version()))
	return a, nil
}

// Close terminates the presence observer, which stops music, and detaches
// the store. Calling Close again is a no-op.
func (a *App) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	a.Presence.Terminate()
	if err := a.Store.Detach(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	a.logger.Debug("app closed")
	return nil
}
