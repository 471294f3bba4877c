package player

// State is the engine's playback state.
//
//	Stopped --Start--> Playing --Pause--> Paused
//	   ^                 |  ^               |
//	   |                 |  +----Resume-----+
//	   +------Stop-------+------Stop--------+
//
// Start from any state restarts playback. Pause, Resume and Stop in a
// state where they do not apply are ignored. A track that plays to its end
// stays Playing with Finished() reporting true until the next command.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a track is loaded (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}
