package presence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	calls []string
}

func (s *recordingSink) Start() { s.calls = append(s.calls, "start") }
func (s *recordingSink) Pause() { s.calls = append(s.calls, "pause") }
func (s *recordingSink) Stop()  { s.calls = append(s.calls, "stop") }

type transition struct{ from, to State }

func newTestObserver() (*Observer, *recordingSink, *[]transition) {
	sink := &recordingSink{}
	var seen []transition
	o := NewObserver(sink, WithListener(func(from, to State) {
		seen = append(seen, transition{from, to})
	}))
	return o, sink, &seen
}

func TestObserver_ForegroundBackground(t *testing.T) {
	o, sink, seen := newTestObserver()
	require.Equal(t, Background, o.State())

	o.ActivityStarted()
	assert.Equal(t, Foreground, o.State())

	o.ActivityStarted()
	o.ActivityStopped(false)
	assert.Equal(t, Foreground, o.State(), "one screen still visible")

	o.ActivityStopped(false)
	assert.Equal(t, Background, o.State())

	assert.Equal(t, []string{"start", "stop"}, sink.calls)
	assert.Equal(t, []transition{{Background, Foreground}, {Foreground, Background}}, *seen)
}

func TestObserver_ConfigurationChange(t *testing.T) {
	o, sink, seen := newTestObserver()

	o.ActivityStarted()
	o.ActivityStopped(true)
	assert.Equal(t, Foreground, o.State(), "rotation keeps the app in the foreground")
	o.ActivityStarted()
	assert.Equal(t, Foreground, o.State())

	o.ActivityStopped(false)
	assert.Equal(t, Background, o.State())

	assert.Equal(t, []string{"start", "stop"}, sink.calls)
	assert.Len(t, *seen, 2)
}

func TestObserver_StopOnlyLeavesForeground(t *testing.T) {
	t.Run("stop without start", func(t *testing.T) {
		o, sink, seen := newTestObserver()
		o.ActivityStopped(false)
		assert.Equal(t, Background, o.State())
		assert.Empty(t, sink.calls)
		assert.Empty(t, *seen)
	})

	t.Run("stop after terminate", func(t *testing.T) {
		o, sink, seen := newTestObserver()
		o.ActivityStarted()
		o.Terminate()
		o.ActivityStopped(false)
		assert.Equal(t, []string{"start", "stop"}, sink.calls)
		assert.Equal(t, []transition{{Background, Foreground}, {Foreground, Background}}, *seen)
	})
}

func TestObserver_Memory(t *testing.T) {
	tests := []struct {
		name  string
		event func(o *Observer)
		want  []string
	}{
		{"low memory pauses", func(o *Observer) { o.LowMemory() }, []string{"pause"}},
		{"trim below moderate ignored", func(o *Observer) { o.TrimMemory(TrimMemoryModerate - 1) }, nil},
		{"trim at moderate stops", func(o *Observer) { o.TrimMemory(TrimMemoryModerate) }, []string{"stop"}},
		{"trim above moderate stops", func(o *Observer) { o.TrimMemory(80) }, []string{"stop"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, sink, _ := newTestObserver()
			tt.event(o)
			assert.Equal(t, tt.want, sink.calls)
		})
	}
}

func TestObserver_Terminate(t *testing.T) {
	o, sink, seen := newTestObserver()

	o.ActivityStarted()
	o.Terminate()
	assert.Equal(t, Background, o.State())
	assert.Equal(t, []string{"start", "stop"}, sink.calls)
	assert.Equal(t, []transition{{Background, Foreground}, {Foreground, Background}}, *seen)

	o.Terminate()
	assert.Len(t, *seen, 2, "no transition when already in background")

	o.ActivityStarted()
	assert.Equal(t, Foreground, o.State(), "counts reset by terminate")
}

func TestObserver_UnbalancedStop(t *testing.T) {
	o, sink, _ := newTestObserver()
	o.ActivityStopped(false)
	assert.Equal(t, Background, o.State())
	assert.Empty(t, sink.calls)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "foreground", Foreground.String())
	assert.Equal(t, "background", Background.String())
}
