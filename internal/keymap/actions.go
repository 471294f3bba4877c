// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Navigation actions
	ActionMoveUp     Action = "move_up"
	ActionMoveDown   Action = "move_down"
	ActionFirstTrack Action = "first_track"
	ActionLastTrack  Action = "last_track"

	// Playback actions
	ActionPlayPause     Action = "play_pause"
	ActionPlaySelected  Action = "play_selected" // enter - restart selected
	ActionNextTrack     Action = "next_track"
	ActionPrevTrack     Action = "prev_track"
	ActionToggleShuffle Action = "toggle_shuffle"
	ActionCycleRepeat   Action = "cycle_repeat"
	ActionStop          Action = "stop"
)

// Contexts group bindings in the help overlay.
const (
	ContextGlobal     = "global"
	ContextNavigation = "navigation"
	ContextPlayback   = "playback"
)

// Binding maps keys to an action.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}
