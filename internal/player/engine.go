// internal/player/engine.go
package player

import (
	"errors"
	"time"
)

var (
	// ErrUnsupportedFormat is returned by Start for files the engine cannot decode.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrNoDevice is returned when the audio output cannot be opened.
	ErrNoDevice = errors.New("audio device unavailable")
)

// Engine is the playback collaborator driven by the player state machine.
// Implementations own decoding and the audio device; all methods must be
// safe to call from the UI goroutine while audio plays on another.
type Engine interface {
	// Start stops any current track and plays path from the beginning.
	Start(path string) error
	Pause()
	Resume()
	// Stop halts playback and releases the current file.
	Stop()
	// Position reports how far into the current track playback is.
	Position() time.Duration
	// Finished reports whether the current track played to its end.
	Finished() bool
	State() State
}

// Verify implementations at compile time.
var (
	_ Engine = (*Player)(nil)
	_ Engine = (*Mock)(nil)
)
