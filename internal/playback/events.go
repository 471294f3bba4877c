package playback

import "fmt"

// TrackChange is returned by Tick when a track ended and playback moved on.
//
// Index is -1 when playback stopped at the end of the queue. Previous is
// the index of the track that just finished.
type TrackChange struct {
	Previous int
	Index    int
}

// Stopped reports whether the change ended playback.
func (c TrackChange) Stopped() bool {
	return c.Index < 0
}

// TrackError is returned when the engine cannot start a track.
type TrackError struct {
	Path string
	Err  error
}

func (e *TrackError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *TrackError) Unwrap() error {
	return e.Err
}
