// Package playback holds the player state machine: the selected and playing
// tracks, pause, shuffle and repeat, and the elapsed time of the current
// track. All methods run on the UI goroutine.
package playback

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/llehouerou/tplay/internal/player"
	"github.com/llehouerou/tplay/internal/playlist"
)

const none = -1

// Options configures a new Controller.
type Options struct {
	Shuffle bool
	Repeat  RepeatMode
	// ShuffleFunc permutes the traversal order. Nil uses a random shuffle.
	ShuffleFunc playlist.ShuffleFunc
}

// Controller couples the track queue with a playback engine.
type Controller struct {
	engine player.Engine
	queue  *playlist.Queue
	order  *playlist.Order

	selected int
	playing  int
	paused   bool
	repeat   RepeatMode
	elapsed  time.Duration
	err      error
}

// New creates a controller over queue. The first track is selected and
// nothing is playing.
func New(engine player.Engine, queue *playlist.Queue, opts Options) *Controller {
	c := &Controller{
		engine:   engine,
		queue:    queue,
		order:    playlist.NewOrder(queue.Len(), opts.ShuffleFunc),
		selected: none,
		playing:  none,
		repeat:   opts.Repeat,
	}
	if !queue.IsEmpty() {
		c.selected = 0
	}
	if opts.Shuffle {
		c.order.Shuffle(c.selected)
	}
	return c
}

// Queue returns the track queue.
func (c *Controller) Queue() *playlist.Queue { return c.queue }

// Selected returns the highlighted index.
func (c *Controller) Selected() (int, bool) { return c.selected, c.selected != none }

// Playing returns the index of the loaded track.
func (c *Controller) Playing() (int, bool) { return c.playing, c.playing != none }

func (c *Controller) Paused() bool { return c.paused }

func (c *Controller) Shuffle() bool { return c.order.Shuffled() }

func (c *Controller) Repeat() RepeatMode { return c.repeat }

func (c *Controller) Elapsed() time.Duration { return c.elapsed }

// Err returns the last playback start error, cleared by the next
// successful start.
func (c *Controller) Err() error { return c.err }

// Order returns the current traversal sequence as queue indices.
func (c *Controller) Order() []int { return c.order.Sequence() }

// MoveSelection moves the selection by delta, wrapping at both ends.
func (c *Controller) MoveSelection(delta int) {
	n := c.queue.Len()
	if n == 0 {
		return
	}
	if c.selected == none {
		c.selected = 0
		return
	}
	c.selected = ((c.selected+delta)%n + n) % n
}

// SelectFirst selects the first track.
func (c *Controller) SelectFirst() {
	if !c.queue.IsEmpty() {
		c.selected = 0
	}
}

// SelectLast selects the last track.
func (c *Controller) SelectLast() {
	if !c.queue.IsEmpty() {
		c.selected = c.queue.Len() - 1
	}
}

// TogglePlay starts the selected track, or pauses/resumes it when it is
// the one already playing.
func (c *Controller) TogglePlay() error {
	if c.selected == none {
		return nil
	}
	if c.playing != c.selected {
		return c.start(c.selected)
	}
	if c.paused {
		c.engine.Resume()
		c.paused = false
	} else {
		c.engine.Pause()
		c.paused = true
	}
	return nil
}

// PlaySelected (re)starts the selected track from the beginning.
func (c *Controller) PlaySelected() error {
	if c.selected == none {
		return nil
	}
	return c.start(c.selected)
}

// Next advances to the next track in traversal order. With repeat off,
// advancing past the last track stops playback.
func (c *Controller) Next() error {
	if c.playing == none {
		return nil
	}
	idx, ok := c.nextIndex()
	if !ok {
		c.Stop()
		return nil
	}
	c.selected = idx
	return c.start(idx)
}

// Previous goes back one track. With repeat off, going back from the
// first track restarts it.
func (c *Controller) Previous() error {
	if c.playing == none {
		return nil
	}
	idx := c.playing
	if c.repeat != RepeatTrack {
		if prev, ok := c.order.Prev(c.playing, c.repeat == RepeatAll); ok {
			idx = prev
		}
	}
	c.selected = idx
	return c.start(idx)
}

func (c *Controller) nextIndex() (int, bool) {
	if c.repeat == RepeatTrack {
		return c.playing, true
	}
	return c.order.Next(c.playing, c.repeat == RepeatAll)
}

// ToggleShuffle switches between queue order and a fresh permutation
// starting at the current track. Playback is not interrupted.
func (c *Controller) ToggleShuffle() {
	if c.order.Shuffled() {
		c.order.Linear()
		return
	}
	current := c.playing
	if current == none {
		current = c.selected
	}
	c.order.Shuffle(current)
}

// CycleRepeat moves to the next repeat mode.
func (c *Controller) CycleRepeat() {
	c.repeat = c.repeat.Next()
}

// Stop halts playback and clears the playing track.
func (c *Controller) Stop() {
	if c.playing != none || c.engine.State().IsActive() {
		c.engine.Stop()
	}
	c.playing = none
	c.paused = false
	c.elapsed = 0
}

// Shutdown stops the engine, giving up when ctx is done.
func (c *Controller) Shutdown(ctx context.Context) error {
	c.playing = none
	c.paused = false
	c.elapsed = 0

	done := make(chan struct{})
	go func() {
		c.engine.Stop()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Tick samples the engine position and advances when the current track
// has played to its end. It returns the change made, if any.
func (c *Controller) Tick() (*TrackChange, error) {
	if c.playing == none {
		return nil, nil
	}

	c.elapsed = max(c.engine.Position(), 0)
	if t, ok := c.queue.Track(c.playing); ok && t.Known() {
		c.elapsed = min(c.elapsed, t.Duration)
	}

	if c.paused || !c.engine.Finished() {
		return nil, nil
	}

	change := &TrackChange{Previous: c.playing}
	err := c.Next()
	change.Index = c.playing
	log.Debug().
		Int("previous", change.Previous).
		Int("index", change.Index).
		Msg("track finished")
	return change, err
}

// Snapshot returns a read-only copy of the state for rendering.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Queue:    c.queue,
		Selected: c.selected,
		Playing:  c.playing,
		Paused:   c.paused,
		Shuffle:  c.order.Shuffled(),
		Repeat:   c.repeat,
		Elapsed:  c.elapsed,
	}
	if t, ok := c.queue.Track(c.playing); ok && t.Known() {
		s.Total = t.Duration
	}
	return s
}

func (c *Controller) start(index int) error {
	t, ok := c.queue.Track(index)
	if !ok {
		return nil
	}

	if c.playing != none {
		c.engine.Stop()
	}
	c.elapsed = 0
	c.paused = false

	if err := c.engine.Start(t.Path); err != nil {
		c.playing = none
		c.err = &TrackError{Path: t.Path, Err: err}
		log.Warn().Err(err).Str("path", t.Path).Msg("playback failed")
		return c.err
	}
	c.playing = index
	c.err = nil
	return nil
}
