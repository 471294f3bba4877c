// Package playerbar renders the now-playing panel: the current track and
// its progress.
package playerbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tplay/internal/playback"
	"github.com/llehouerou/tplay/internal/player"
	"github.com/llehouerou/tplay/internal/ui"
	"github.com/llehouerou/tplay/internal/ui/render"
	"github.com/llehouerou/tplay/internal/ui/styles"
)

// Height is the number of lines the panel occupies.
const Height = 2

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"
	stopSymbol  = "■"
)

// Model holds the progress bar and the spinner used for tracks of
// unknown length.
type Model struct {
	ui.Base
	progress progress.Model
	spinner  spinner.Model
}

// New creates a player bar.
func New() Model {
	s := styles.T().S()

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = s.Muted

	p := progress.New(
		progress.WithGradient(s.Progress[0], s.Progress[1]),
		progress.WithoutPercentage(),
	)

	return Model{progress: p, spinner: sp}
}

// Init starts the spinner.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update advances the spinner.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(tick)
		return m, cmd
	}
	return m, nil
}

// View renders the track line and the progress line.
func (m Model) View(snap playback.Snapshot) string {
	width := m.Width()
	if width <= 0 {
		return ""
	}
	return m.trackLine(snap, width) + "\n" + m.progressLine(snap, width)
}

func (m Model) trackLine(snap playback.Snapshot, width int) string {
	s := styles.T().S()

	t, ok := snap.PlayingTrack()
	if !ok {
		return s.Muted.Render(render.TruncateAndPad(stopSymbol+" Stopped", width))
	}

	symbol := playSymbol
	if snap.State() == player.Paused {
		symbol = pauseSymbol
	}

	var info []string
	if t.Artist != "" {
		info = append(info, t.Artist)
	}
	if t.Album != "" {
		info = append(info, t.Album)
	}

	title := render.Truncate(t.Name, width-2)
	line := s.Playing.Render(symbol+" "+title)
	if len(info) > 0 {
		rest := width - lipgloss.Width(line) - 3
		if rest > 0 {
			line += s.Muted.Render(" · " + render.Truncate(strings.Join(info, " · "), rest))
		}
	}
	return line
}

func (m Model) progressLine(snap playback.Snapshot, width int) string {
	s := styles.T().S()
	if snap.State() == player.Stopped {
		return ""
	}

	elapsed := render.Duration(snap.Elapsed)
	frac, ok := snap.Progress()
	if !ok {
		indicator := m.spinner.View()
		if snap.Paused {
			indicator = s.Muted.Render(pauseSymbol)
		}
		return indicator + " " + s.Muted.Render(elapsed+" / "+render.UnknownDuration)
	}

	times := elapsed + " / " + render.Duration(snap.Total)
	barWidth := width - lipgloss.Width(times) - 1
	if barWidth < ui.MinProgressBarWidth {
		return s.Muted.Render(times)
	}

	bar := m.progress
	bar.Width = barWidth
	return bar.ViewAs(frac) + " " + s.Muted.Render(times)
}
