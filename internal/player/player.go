package player

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/rs/zerolog/log"
)

// DefaultSampleRate is the output rate the speaker is opened with. Tracks
// at other rates are resampled.
const DefaultSampleRate = beep.SampleRate(44100)

// Player plays audio files through beep's speaker.
type Player struct {
	mu       sync.Mutex
	rate     beep.SampleRate
	state    State
	ctrl     *beep.Ctrl
	streamer beep.StreamSeekCloser
	format   beep.Format
	// finished is replaced on every Start so a late callback from a
	// previous track cannot mark the new one as finished.
	finished *atomic.Bool
}

// New opens the audio device at rate and returns a stopped player.
// A device that cannot be opened is reported as ErrNoDevice.
func New(rate beep.SampleRate) (*Player, error) {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoDevice, err)
	}
	return &Player{
		rate:     rate,
		state:    Stopped,
		finished: new(atomic.Bool),
	}, nil
}

// Start plays path from the beginning, replacing the current track.
func (p *Player) Start(path string) error {
	p.Stop()

	src, err := open(path)
	if err != nil {
		return err
	}

	var stream beep.Streamer = src.streamer
	if src.format.SampleRate != p.rate {
		stream = beep.Resample(4, src.format.SampleRate, p.rate, src.streamer)
	}
	ctrl := &beep.Ctrl{Streamer: stream}
	finished := new(atomic.Bool)

	p.mu.Lock()
	p.streamer = src.streamer
	p.format = src.format
	p.ctrl = ctrl
	p.finished = finished
	p.state = Playing
	p.mu.Unlock()

	log.Debug().
		Str("path", path).
		Str("codec", src.codec).
		Int("rate", int(src.format.SampleRate)).
		Msg("playback started")

	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		finished.Store(true)
	})))
	return nil
}

// Stop halts playback and closes the current file.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == Stopped {
		return
	}

	speaker.Clear()

	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	p.ctrl = nil
	p.finished = new(atomic.Bool)
	p.state = Stopped
}

// Pause pauses playback without losing the position.
func (p *Player) Pause() {
	p.setPaused(Playing, Paused, true)
}

// Resume continues paused playback.
func (p *Player) Resume() {
	p.setPaused(Paused, Playing, false)
}

func (p *Player) setPaused(from, to State, paused bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != from || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
	p.state = to
}

// Position returns the decode position of the current track.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.format.SampleRate.D(p.streamer.Position())
	speaker.Unlock()
	return pos
}

// Finished reports whether the current track played to its end.
func (p *Player) Finished() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state != Stopped && p.finished.Load()
}

// State returns the current playback state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Close stops playback and releases the audio device.
func (p *Player) Close() {
	p.Stop()
	speaker.Close()
}
