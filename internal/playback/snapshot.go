package playback

import (
	"time"

	"github.com/llehouerou/tplay/internal/player"
	"github.com/llehouerou/tplay/internal/playlist"
)

// Snapshot is the state handed to the renderer. The queue it points to
// is immutable.
type Snapshot struct {
	Queue    *playlist.Queue
	Selected int
	Playing  int
	Paused   bool
	Shuffle  bool
	Repeat   RepeatMode
	Elapsed  time.Duration
	Total    time.Duration // 0 when unknown
}

// PlayingTrack returns the loaded track.
func (s Snapshot) PlayingTrack() (playlist.Track, bool) {
	if s.Queue == nil {
		return playlist.Track{}, false
	}
	return s.Queue.Track(s.Playing)
}

// State maps the snapshot to an engine state.
func (s Snapshot) State() player.State {
	switch {
	case s.Playing == none:
		return player.Stopped
	case s.Paused:
		return player.Paused
	default:
		return player.Playing
	}
}

// Progress returns elapsed/total in [0, 1]. ok is false when nothing is
// playing or the total duration is unknown.
func (s Snapshot) Progress() (float64, bool) {
	if s.Playing == none || s.Total <= 0 {
		return 0, false
	}
	f := float64(s.Elapsed) / float64(s.Total)
	return min(max(f, 0), 1), true
}
