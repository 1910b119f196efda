// Package audio controls background music for the companion. The controller
// owns one Player at a time and makes every lifecycle call safe to repeat
// from any state; player failures are logged and never reach the caller.
package audio

import (
	"sync"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/companion/internal/logging"
)

// Player plays one looping track.
type Player interface {
	Start() error
	Pause() error
	Stop() error
	Playing() bool
}

// PlayerFactory creates a fresh Player. It is called on the first Start and
// on every Start after Stop released the previous player.
type PlayerFactory func() (Player, error)

// Controller is the music lifecycle used by the presence observer and the
// settings toggle.
type Controller struct {
	mu      sync.Mutex
	factory PlayerFactory
	player  Player
	enabled bool
	logger  *zap.Logger
}

// NewController returns a controller that creates players with factory.
// A nil factory falls back to NewNopPlayer.
func NewController(factory PlayerFactory, enabled bool, logger *zap.Logger) *Controller {
	if factory == nil {
		factory = func() (Player, error) { return NewNopPlayer(), nil }
	}
	return &Controller{
		factory: factory,
		enabled: enabled,
		logger:  logging.OrNop(logger),
	}
}

// Start begins playback, creating the player if needed. Ignored while
// disabled or already playing.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startLocked()
}

func (c *Controller) startLocked() {
	if !c.enabled {
		return
	}
	if c.player == nil {
		p, err := c.factory()
		if err != nil {
			c.logger.Warn("creating music player", zap.Error(err))
			return
		}
		c.player = p
	}
	c.playLocked()
}

// playLocked starts an existing player unless it is already playing. A
// player whose Start failed stays in place so a later Resume retries it.
func (c *Controller) playLocked() {
	if c.player.Playing() {
		return
	}
	if err := c.player.Start(); err != nil {
		c.logger.Warn("starting music", zap.Error(err))
		return
	}
	c.logger.Debug("music started")
}

// Pause halts playback and keeps the player for Resume.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pauseLocked()
}

func (c *Controller) pauseLocked() {
	if c.player == nil || !c.player.Playing() {
		return
	}
	if err := c.player.Pause(); err != nil {
		c.logger.Warn("pausing music", zap.Error(err))
		return
	}
	c.logger.Debug("music paused")
}

// Resume restarts the current player when music is enabled and the player
// is silent, whatever silenced it. Without a player it does nothing.
func (c *Controller) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resumeLocked()
}

func (c *Controller) resumeLocked() {
	if !c.enabled || c.player == nil {
		return
	}
	c.playLocked()
}

// Stop ends playback and releases the player.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.player == nil {
		return
	}
	if err := c.player.Stop(); err != nil {
		c.logger.Warn("stopping music", zap.Error(err))
	}
	c.player = nil
	c.logger.Debug("music stopped")
}

// SetEnabled records the user's music setting. Disabling pauses playback.
// Enabling always resumes, even when the setting was already on.
func (c *Controller) SetEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = enabled
	if enabled {
		c.resumeLocked()
		return
	}
	c.pauseLocked()
}

// Enabled reports the music setting.
func (c *Controller) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// Playing reports whether a player is currently producing sound.
func (c *Controller) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.player != nil && c.player.Playing()
}
