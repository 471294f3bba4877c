// internal/app/view.go
package app

import (
	"strings"

	"github.com/llehouerou/tplay/internal/keymap"
	"github.com/llehouerou/tplay/internal/playback"
	"github.com/llehouerou/tplay/internal/ui/header"
	"github.com/llehouerou/tplay/internal/ui/overlay"
	"github.com/llehouerou/tplay/internal/ui/render"
	"github.com/llehouerou/tplay/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 || m.quitting {
		return ""
	}

	snap := m.ctrl.Snapshot()
	view := strings.Join([]string{
		header.Render(m.header, m.width),
		m.list.View(snap),
		m.bar.View(snap),
		m.controlsLine(snap),
		m.statusLine(),
	}, "\n")

	if m.showHelp {
		popup := overlay.Center(m.help.View(), m.width, m.height)
		view = overlay.Compose(view, popup, m.width)
	}
	return view
}

// controlsLine renders e.g. "Shuffle: Off | Repeat: All | Press ? for help".
func (m Model) controlsLine(snap playback.Snapshot) string {
	s := styles.T().S()

	shuffle := "Off"
	if snap.Shuffle {
		shuffle = "On"
	}
	helpKey := "?"
	if keys := m.keys.KeysFor(keymap.ActionHelp); len(keys) > 0 {
		helpKey = keys[0]
	}

	line := "Shuffle: " + shuffle + " | Repeat: " + snap.Repeat.String() + " | Press " + helpKey + " for help"
	return s.Muted.Render(render.TruncateAndPad(line, m.width))
}

func (m Model) statusLine() string {
	s := styles.T().S()
	text := render.TruncateAndPad(m.status.text, m.width)
	if m.status.isErr {
		return s.Error.Render(text)
	}
	return s.Muted.Render(text)
}
