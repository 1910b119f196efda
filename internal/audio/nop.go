package audio

import "sync"

// NopPlayer tracks playback state without producing sound.
type NopPlayer struct {
	mu      sync.Mutex
	playing bool
	stopped bool
}

// NewNopPlayer returns a stopped NopPlayer.
func NewNopPlayer() *NopPlayer { return &NopPlayer{} }

func (p *NopPlayer) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = true
	p.stopped = false
	return nil
}

func (p *NopPlayer) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
	return nil
}

func (p *NopPlayer) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
	p.stopped = true
	return nil
}

func (p *NopPlayer) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Stopped reports whether Stop was the last call.
func (p *NopPlayer) Stopped() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stopped
}
