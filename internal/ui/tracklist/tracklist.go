// Package tracklist renders the scrolling list of queued tracks.
package tracklist

import (
	"strings"

	"github.com/llehouerou/tplay/internal/playback"
	"github.com/llehouerou/tplay/internal/player"
	"github.com/llehouerou/tplay/internal/playlist"
	"github.com/llehouerou/tplay/internal/ui"
	"github.com/llehouerou/tplay/internal/ui/cursor"
	"github.com/llehouerou/tplay/internal/ui/render"
	"github.com/llehouerou/tplay/internal/ui/styles"
)

const (
	playingMarker = "♪ "
	pausedMarker  = "⏸ "
	noMarker      = "  "
)

// Model keeps the viewport of the list in sync with the selection.
type Model struct {
	ui.Base
	cursor cursor.Cursor
}

// New creates a track list model.
func New() Model {
	return Model{cursor: cursor.New(ui.ScrollMargin)}
}

// Sync scrolls the viewport so the selected track stays visible.
func (m *Model) Sync(snap playback.Snapshot) {
	n := 0
	if snap.Queue != nil {
		n = snap.Queue.Len()
	}
	m.cursor.Sync(snap.Selected, n, m.Height())
}

// Offset returns the index of the first visible track.
func (m Model) Offset() int {
	return m.cursor.Offset()
}

// View renders exactly Height() lines.
func (m Model) View(snap playback.Snapshot) string {
	width, height := m.Width(), m.Height()
	if width <= 0 || height <= 0 {
		return ""
	}

	lines := make([]string, 0, height)
	if snap.Queue != nil {
		start, end := m.cursor.VisibleRange(snap.Queue.Len(), height)
		for i := start; i < end; i++ {
			t, _ := snap.Queue.Track(i)
			lines = append(lines, renderRow(t, i, snap, width))
		}
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func renderRow(t playlist.Track, index int, snap playback.Snapshot, width int) string {
	s := styles.T().S()

	marker := noMarker
	if index == snap.Playing {
		marker = playingMarker
		if snap.State() == player.Paused {
			marker = pausedMarker
		}
	}

	label := t.Name
	if t.Artist != "" {
		label += " · " + t.Artist
	}
	row := render.Row(marker+render.Sanitize(label), Duration(t), width)

	switch {
	case index == snap.Selected:
		style := s.Cursor
		if index == snap.Playing {
			style = style.Foreground(styles.T().Primary).Bold(true)
		}
		return style.Render(row)
	case index == snap.Playing:
		return s.Playing.Render(row)
	default:
		return s.Base.Render(row)
	}
}

// Duration formats a track length; estimates are prefixed with "~".
func Duration(t playlist.Track) string {
	if t.Known() {
		return render.Duration(t.Duration)
	}
	return "~" + render.Duration(t.Estimate())
}
