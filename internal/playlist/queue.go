package playlist

import "time"

// Queue holds the scanned tracks in display order. It is immutable once
// built; shuffling only changes the traversal Order.
type Queue struct {
	tracks []Track
}

// NewQueue creates a queue over a copy of tracks.
func NewQueue(tracks []Track) *Queue {
	q := &Queue{tracks: make([]Track, len(tracks))}
	copy(q.tracks, tracks)
	return q
}

// Len returns the number of tracks.
func (q *Queue) Len() int {
	return len(q.tracks)
}

// IsEmpty returns true if the queue has no tracks.
func (q *Queue) IsEmpty() bool {
	return len(q.tracks) == 0
}

// Valid reports whether index points at a track.
func (q *Queue) Valid(index int) bool {
	return index >= 0 && index < len(q.tracks)
}

// Track returns the track at index, or false if out of bounds.
func (q *Queue) Track(index int) (Track, bool) {
	if !q.Valid(index) {
		return Track{}, false
	}
	return q.tracks[index], true
}

// TotalDuration sums the known durations and counts tracks whose length
// is unknown.
func (q *Queue) TotalDuration() (total time.Duration, unknown int) {
	for _, t := range q.tracks {
		if t.Known() {
			total += t.Duration
		} else {
			unknown++
		}
	}
	return total, unknown
}
