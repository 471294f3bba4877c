// Package helpbindings provides a scrollable popup listing the key bindings.
package helpbindings

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tplay/internal/keymap"
	"github.com/llehouerou/tplay/internal/ui"
	"github.com/llehouerou/tplay/internal/ui/styles"
)

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{
	keymap.ContextGlobal,
	keymap.ContextNavigation,
	keymap.ContextPlayback,
}

// categoryLabels maps context names to display labels.
var categoryLabels = map[string]string{
	keymap.ContextGlobal:     "Global",
	keymap.ContextNavigation: "Navigation",
	keymap.ContextPlayback:   "Playback",
}

// chrome is the number of popup lines around the content (border, title, footer).
const chrome = 6

// Model holds the state for the help popup. Its size is the terminal size.
type Model struct {
	ui.Base
	lines        []string
	scrollOffset int
}

// New builds the help content from the active bindings.
func New(bindings []keymap.Binding) Model {
	return Model{lines: buildContent(bindings)}
}

// Scroll moves the visible window by delta lines.
func (m *Model) Scroll(delta int) {
	m.scrollOffset = min(max(m.scrollOffset+delta, 0), m.maxScroll())
}

// ResetScroll returns to the top.
func (m *Model) ResetScroll() {
	m.scrollOffset = 0
}

// View renders the bordered popup (not centered).
func (m Model) View() string {
	s := styles.T().S()

	visible := m.lines
	if h := m.visibleHeight(); h < len(visible) {
		visible = visible[m.scrollOffset:min(m.scrollOffset+h, len(visible))]
	}

	// Pad to the widest line of the full content for a stable popup width.
	width := 0
	for _, l := range m.lines {
		width = max(width, lipgloss.Width(l))
	}
	footer := m.footer()
	width = max(width, lipgloss.Width(footer))

	var b strings.Builder
	b.WriteString(s.Title.Render("Key Bindings"))
	b.WriteString("\n\n")
	for _, l := range visible {
		b.WriteString(l)
		b.WriteString(strings.Repeat(" ", width-lipgloss.Width(l)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.Subtle.Render(footer))

	return s.Border.Render(b.String())
}

func buildContent(bindings []keymap.Binding) []string {
	s := styles.T().S()

	keyWidth := 0
	for _, b := range bindings {
		keyWidth = max(keyWidth, lipgloss.Width(strings.Join(b.Keys, ", ")))
	}

	var lines []string
	for _, ctx := range categoryOrder {
		group := keymap.ByContext(bindings, ctx)
		if len(group) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines,
			s.Section.Render(categoryLabels[ctx]),
			s.Subtle.Render(strings.Repeat("─", keyWidth+16)),
		)
		for _, b := range group {
			if len(b.Keys) == 0 {
				continue
			}
			keys := strings.Join(b.Keys, ", ")
			pad := strings.Repeat(" ", keyWidth-lipgloss.Width(keys))
			lines = append(lines, s.Key.Render(keys)+pad+"  "+s.Base.Render(b.Description))
		}
	}
	return lines
}

func (m Model) footer() string {
	if m.maxScroll() == 0 {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

func (m Model) visibleHeight() int {
	if m.Height() == 0 {
		return len(m.lines)
	}
	return max(m.Height()-chrome, 3)
}

func (m Model) maxScroll() int {
	return max(len(m.lines)-m.visibleHeight(), 0)
}
