// Package app contains the bubbletea model that ties the playback
// controller, key bindings and UI components together.
package app

import "time"

// TickMsg is sent periodically to poll the engine and redraw progress.
type TickMsg time.Time

// QuitRequestMsg asks the model to stop playback and exit. Signal
// handlers send it into the running program.
type QuitRequestMsg struct{}

// StderrMsg carries a line written to stderr by a C library.
type StderrMsg struct {
	Line string
}

// statusClearMsg expires the status line set with the same id.
type statusClearMsg struct {
	id int
}
