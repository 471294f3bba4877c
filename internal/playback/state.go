// internal/playback/state.go
package playback

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRepeatMode is returned by ParseRepeatMode for unknown names.
var ErrInvalidRepeatMode = errors.New("invalid repeat mode")

// RepeatMode defines the repeat behavior.
type RepeatMode int

const (
	RepeatOff RepeatMode = iota
	RepeatTrack
	RepeatAll
)

// String returns the repeat mode name.
func (m RepeatMode) String() string {
	switch m {
	case RepeatOff:
		return "Off"
	case RepeatTrack:
		return "Track"
	case RepeatAll:
		return "All"
	default:
		return "Unknown"
	}
}

// Next cycles Off -> Track -> All -> Off.
func (m RepeatMode) Next() RepeatMode {
	switch m {
	case RepeatOff:
		return RepeatTrack
	case RepeatTrack:
		return RepeatAll
	default:
		return RepeatOff
	}
}

// ParseRepeatMode parses "off", "track" or "all" (case-insensitive).
// An empty string is RepeatOff.
func ParseRepeatMode(s string) (RepeatMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "off":
		return RepeatOff, nil
	case "track", "one":
		return RepeatTrack, nil
	case "all":
		return RepeatAll, nil
	default:
		return RepeatOff, fmt.Errorf("%w: %q", ErrInvalidRepeatMode, s)
	}
}
