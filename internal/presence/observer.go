// Package presence tracks whether the companion is visible to the user and
// drives the music lifecycle from those transitions.
package presence

import (
	"sync"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/companion/internal/logging"
)

// State is the visibility of the application.
type State int

const (
	Background State = iota
	Foreground
)

func (s State) String() string {
	if s == Foreground {
		return "foreground"
	}
	return "background"
}

// TrimMemoryModerate is the memory pressure level at and above which the
// observer stops music entirely.
const TrimMemoryModerate = 60

// Sink receives lifecycle calls. *audio.Controller implements it.
type Sink interface {
	Start()
	Pause()
	Stop()
}

// Listener is notified of every state transition.
type Listener func(from, to State)

// Option configures an Observer.
type Option func(*Observer)

// WithListener registers a transition listener.
func WithListener(l Listener) Option {
	return func(o *Observer) { o.listener = l }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Observer) { o.logger = logging.OrNop(l) }
}

// Observer is a two-state machine fed by activity start/stop events. A
// configuration change (stop and start of the same screen) does not count
// as leaving the foreground.
type Observer struct {
	mu             sync.Mutex
	sink           Sink
	state          State
	visible        int
	changingConfig bool
	listener       Listener
	logger         *zap.Logger
}

// NewObserver returns an observer in the Background state.
func NewObserver(sink Sink, opts ...Option) *Observer {
	o := &Observer{sink: sink, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// State returns the current state.
func (o *Observer) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// ActivityStarted records a screen becoming visible.
func (o *Observer) ActivityStarted() {
	o.mu.Lock()
	o.visible++
	enter := o.visible == 1 && !o.changingConfig
	o.changingConfig = false
	var from State
	if enter {
		from = o.transitionLocked(Foreground)
	}
	o.mu.Unlock()

	if enter {
		o.sink.Start()
		o.notify(from, Foreground)
	}
}

// ActivityStopped records a screen going out of view. changingConfigurations
// is true when the screen will be recreated immediately.
func (o *Observer) ActivityStopped(changingConfigurations bool) {
	o.mu.Lock()
	o.changingConfig = changingConfigurations
	if o.visible > 0 {
		o.visible--
	}
	// Stop is sent only when leaving Foreground, so a stop with nothing
	// started, or one arriving after Terminate, does not stop music twice.
	leave := o.visible == 0 && !changingConfigurations && o.state == Foreground
	var from State
	if leave {
		from = o.transitionLocked(Background)
	}
	o.mu.Unlock()

	if leave {
		o.sink.Stop()
		o.notify(from, Background)
	}
}

// LowMemory pauses music.
func (o *Observer) LowMemory() {
	o.logger.Debug("low memory")
	o.sink.Pause()
}

// TrimMemory stops music when level is TrimMemoryModerate or above.
func (o *Observer) TrimMemory(level int) {
	o.logger.Debug("trim memory", zap.Int("level", level))
	if level >= TrimMemoryModerate {
		o.sink.Stop()
	}
}

// Terminate stops music and returns to Background.
func (o *Observer) Terminate() {
	o.mu.Lock()
	o.visible = 0
	o.changingConfig = false
	from := o.transitionLocked(Background)
	o.mu.Unlock()

	o.sink.Stop()
	if from != Background {
		o.notify(from, Background)
	}
}

// transitionLocked sets the state and returns the previous one.
func (o *Observer) transitionLocked(to State) State {
	from := o.state
	o.state = to
	if from != to {
		o.logger.Debug("presence changed", zap.Stringer("from", from), zap.Stringer("to", to))
	}
	return from
}

func (o *Observer) notify(from, to State) {
	if o.listener != nil && from != to {
		o.listener(from, to)
	}
}
