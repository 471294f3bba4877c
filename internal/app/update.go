// internal/app/update.go
package app

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/tplay/internal/errmsg"
	"github.com/llehouerou/tplay/internal/playback"
	"github.com/llehouerou/tplay/internal/ui/render"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.bar, cmd = m.bar.Update(msg)
		return m, cmd

	case StderrMsg:
		cmd := m.setStatus(render.Sanitize(msg.Line), false)
		return m, tea.Batch(cmd, watchStderr(m.opts.Stderr))

	case statusClearMsg:
		if msg.id == m.status.id {
			m.status.text = ""
		}
		return m, nil

	case QuitRequestMsg:
		cmd := m.quit()
		return m, cmd
	}

	return m, nil
}

// endOfQueue is shown when the last track finishes with repeat off.
const endOfQueue = "End of queue"

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	change, err := m.ctrl.Tick()
	var cmd tea.Cmd
	if change != nil {
		m.syncList()
		if change.Stopped() {
			cmd = m.setStatus(endOfQueue, false)
		}
	}
	if err != nil {
		cmd = m.setPlaybackError(err)
	}
	return m, tea.Batch(cmd, TickCmd(m.opts.TickInterval))
}

// quit stops the engine within the shutdown grace period and exits.
func (m *Model) quit() tea.Cmd {
	if m.quitting {
		return tea.Quit
	}
	m.quitting = true

	ctx, cancel := context.WithTimeout(context.Background(), m.opts.ShutdownTimeout)
	defer cancel()
	if err := m.ctrl.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg(errmsg.Format(errmsg.OpPlaybackStop, err))
	}
	return tea.Quit
}

// setStatus shows text on the status line until the status timeout.
func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	if text == "" {
		return nil
	}
	m.status = status{id: m.status.id + 1, text: text, isErr: isErr}
	return clearStatusCmd(m.opts.StatusTimeout, m.status.id)
}

func (m *Model) setPlaybackError(err error) tea.Cmd {
	var te *playback.TrackError
	if errors.As(err, &te) {
		return m.setStatus(errmsg.FormatWith(errmsg.OpPlaybackStart, filepath.Base(te.Path), te.Err), true)
	}
	return m.setStatus(errmsg.Format(errmsg.OpPlaybackStart, err), true)
}
