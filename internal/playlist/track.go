// Package playlist builds the play queue from the filesystem and provides
// the traversal order used for next/previous.
package playlist

import (
	"path/filepath"
	"strings"
	"time"
)

// DefaultDuration is the estimate used for tracks whose length could not be
// read. Progress for such tracks is approximate until the engine reports
// the end of the stream.
const DefaultDuration = 5 * time.Minute

// Track represents a single playable file.
type Track struct {
	Path     string // absolute file path for playback
	Name     string // display name
	Title    string
	Artist   string
	Album    string
	Duration time.Duration // 0 if unknown
}

// Metadata is what a metadata reader reports for one file.
// Zero values mean "unknown".
type Metadata struct {
	Title    string
	Artist   string
	Album    string
	Duration time.Duration
}

// NewTrack creates a track for path, naming it after the tag title when
// there is one and after the file name otherwise.
func NewTrack(path string, meta Metadata) Track {
	name := meta.Title
	if name == "" {
		base := filepath.Base(path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return Track{
		Path:     path,
		Name:     name,
		Title:    meta.Title,
		Artist:   meta.Artist,
		Album:    meta.Album,
		Duration: max(meta.Duration, 0),
	}
}

// Known reports whether the track's duration was read from the file.
func (t Track) Known() bool {
	return t.Duration > 0
}

// Estimate returns the known duration, or DefaultDuration.
func (t Track) Estimate() time.Duration {
	if t.Known() {
		return t.Duration
	}
	return DefaultDuration
}
