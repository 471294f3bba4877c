// internal/app/handlers.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tplay/internal/keymap"
)

// keyHandler attempts to handle a key and reports whether it did.
type keyHandler func(key string) (bool, tea.Cmd)

// chain runs handlers in order until one handles the key.
func chain(key string, handlers ...keyHandler) tea.Cmd {
	for _, h := range handlers {
		if ok, cmd := h(key); ok {
			return cmd
		}
	}
	return nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd := chain(msg.String(), m.handleHelpKey, m.handleActionKey)
	return m, cmd
}

// handleHelpKey owns the keyboard while the help overlay is open.
func (m *Model) handleHelpKey(key string) (bool, tea.Cmd) {
	if !m.showHelp {
		return false, nil
	}

	switch key {
	case "ctrl+c":
		return true, m.quit()
	case "?", "h", "esc", "q":
		m.closeHelp()
	case "j", "down":
		m.help.Scroll(1)
	case "k", "up":
		m.help.Scroll(-1)
	default:
		if action, ok := m.keys.Resolve(key); ok && action == keymap.ActionHelp {
			m.closeHelp()
		}
	}
	return true, nil
}

func (m *Model) closeHelp() {
	m.showHelp = false
	m.help.ResetScroll()
}

// handleActionKey dispatches a bound key to the controller. Unbound keys
// are ignored.
func (m *Model) handleActionKey(key string) (bool, tea.Cmd) {
	action, ok := m.keys.Resolve(key)
	if !ok {
		return false, nil
	}

	var err error
	switch action {
	case keymap.ActionQuit:
		return true, m.quit()
	case keymap.ActionHelp:
		m.showHelp = true
		return true, nil

	case keymap.ActionMoveDown:
		m.ctrl.MoveSelection(1)
	case keymap.ActionMoveUp:
		m.ctrl.MoveSelection(-1)
	case keymap.ActionFirstTrack:
		m.ctrl.SelectFirst()
	case keymap.ActionLastTrack:
		m.ctrl.SelectLast()

	case keymap.ActionPlayPause:
		err = m.ctrl.TogglePlay()
	case keymap.ActionPlaySelected:
		err = m.ctrl.PlaySelected()
	case keymap.ActionNextTrack:
		err = m.ctrl.Next()
	case keymap.ActionPrevTrack:
		err = m.ctrl.Previous()
	case keymap.ActionToggleShuffle:
		m.ctrl.ToggleShuffle()
	case keymap.ActionCycleRepeat:
		m.ctrl.CycleRepeat()
	case keymap.ActionStop:
		m.ctrl.Stop()
	}

	m.syncList()
	if err != nil {
		return true, m.setPlaybackError(err)
	}
	return true, nil
}
