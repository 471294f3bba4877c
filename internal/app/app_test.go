// internal/app/app_test.go
package app

import (
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tplay/internal/keymap"
	"github.com/llehouerou/tplay/internal/playback"
	"github.com/llehouerou/tplay/internal/player"
	"github.com/llehouerou/tplay/internal/playlist"
	"github.com/llehouerou/tplay/internal/ui/testutil"
)

// newTestModel builds a sized model over tracks A, B, C... of one minute each.
func newTestModel(t *testing.T, n int) (Model, *player.Mock) {
	t.Helper()
	tracks := make([]playlist.Track, n)
	for i := range tracks {
		name := string(rune('A' + i))
		tracks[i] = playlist.NewTrack("/music/"+name+".mp3", playlist.Metadata{Duration: time.Minute})
	}
	mock := player.NewMock()
	ctrl := playback.New(mock, playlist.NewQueue(tracks), playback.Options{
		ShuffleFunc: func(s []int) { slices.Reverse(s) },
	})
	m := New(ctrl, keymap.Defaults(), Options{Path: "/music"})
	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	return m, mock
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	result, _ := updateCmd(t, m, msg)
	return result
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	newModel, cmd := m.Update(msg)
	result, ok := newModel.(Model)
	if !ok {
		t.Fatal("Update should return Model")
	}
	return result, cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestUpdate_WindowSizeMsg_ResizesComponents(t *testing.T) {
	m, _ := newTestModel(t, 3)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.width != 120 || m.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", m.width, m.height)
	}
	if got := m.list.Height(); got != 34 {
		t.Errorf("list height = %d, want 34", got)
	}
	if got := m.list.Width(); got != 120 {
		t.Errorf("list width = %d, want 120", got)
	}
}

func TestUpdate_NavigationWraps(t *testing.T) {
	m, mock := newTestModel(t, 3)

	m = update(t, m, key("k"))
	if sel, _ := m.ctrl.Selected(); sel != 2 {
		t.Errorf("after k from top: selected = %d, want 2", sel)
	}
	m = update(t, m, key("j"))
	if sel, _ := m.ctrl.Selected(); sel != 0 {
		t.Errorf("after j from bottom: selected = %d, want 0", sel)
	}
	m = update(t, m, key("G"))
	if sel, _ := m.ctrl.Selected(); sel != 2 {
		t.Errorf("after G: selected = %d, want 2", sel)
	}
	if len(mock.StartCalls()) != 0 {
		t.Error("navigation should not start playback")
	}
}

func TestUpdate_SpaceTogglesPlayback(t *testing.T) {
	m, mock := newTestModel(t, 2)

	m = update(t, m, key("space"))
	if idx, ok := m.ctrl.Playing(); !ok || idx != 0 {
		t.Fatalf("Playing() = %d, %v; want 0, true", idx, ok)
	}
	if mock.LastStart() != "/music/A.mp3" {
		t.Errorf("started %q, want /music/A.mp3", mock.LastStart())
	}

	m = update(t, m, key("space"))
	if !m.ctrl.Paused() || mock.State() != player.Paused {
		t.Error("second space should pause")
	}

	m = update(t, m, key("space"))
	if m.ctrl.Paused() || mock.State() != player.Playing {
		t.Error("third space should resume")
	}
}

func TestUpdate_StartErrorShowsStatus(t *testing.T) {
	m, mock := newTestModel(t, 2)
	mock.SetStartError(player.ErrUnsupportedFormat)

	m = update(t, m, key("j"))
	m, cmd := updateCmd(t, m, key("enter"))

	if cmd == nil {
		t.Error("expected a status clear command")
	}
	want := "Failed to start playback 'B.mp3': unsupported format"
	if m.status.text != want || !m.status.isErr {
		t.Errorf("status = %q (err=%v), want %q", m.status.text, m.status.isErr, want)
	}
	if _, ok := m.ctrl.Playing(); ok {
		t.Error("playing should be none after a failed start")
	}

	// Navigation keeps working.
	m = update(t, m, key("k"))
	if sel, _ := m.ctrl.Selected(); sel != 0 {
		t.Errorf("selected = %d, want 0", sel)
	}

	if !testutil.ContainsLine(testutil.StripANSI(m.View()), want) {
		t.Error("status line missing from view")
	}
}

func TestUpdate_StatusClear(t *testing.T) {
	m, _ := newTestModel(t, 1)
	m = update(t, m, StderrMsg{Line: "ALSA lib pcm.c: underrun"})
	if m.status.text != "ALSA lib pcm.c: underrun" || m.status.isErr {
		t.Fatalf("status = %+v", m.status)
	}

	m = update(t, m, statusClearMsg{id: m.status.id - 1})
	if m.status.text == "" {
		t.Error("stale clear should be ignored")
	}

	m = update(t, m, statusClearMsg{id: m.status.id})
	if m.status.text != "" {
		t.Errorf("status = %q, want cleared", m.status.text)
	}
}

func TestUpdate_TickAdvancesOnTrackEnd(t *testing.T) {
	m, mock := newTestModel(t, 2)
	m = update(t, m, key("enter"))

	mock.SetPosition(30 * time.Second)
	m, cmd := updateCmd(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should reschedule itself")
	}
	if m.ctrl.Elapsed() != 30*time.Second {
		t.Errorf("Elapsed() = %v, want 30s", m.ctrl.Elapsed())
	}

	mock.SimulateFinished()
	m = update(t, m, TickMsg(time.Now()))

	if idx, _ := m.ctrl.Playing(); idx != 1 {
		t.Errorf("Playing() = %d, want 1", idx)
	}
	if sel, _ := m.ctrl.Selected(); sel != 1 {
		t.Errorf("selection should follow playback, got %d", sel)
	}
	if mock.LastStart() != "/music/B.mp3" {
		t.Errorf("started %q, want /music/B.mp3", mock.LastStart())
	}
}

func TestUpdate_TickEndOfQueue(t *testing.T) {
	m, mock := newTestModel(t, 2)
	m = update(t, m, key("G"))
	m = update(t, m, key("enter"))

	mock.SimulateFinished()
	m, cmd := updateCmd(t, m, TickMsg(time.Now()))

	if _, ok := m.ctrl.Playing(); ok {
		t.Error("playback should stop after the last track with repeat off")
	}
	if cmd == nil {
		t.Error("expected status clear and tick commands")
	}
	if m.status.text != endOfQueue || m.status.isErr {
		t.Errorf("status = %q (err=%v), want %q", m.status.text, m.status.isErr, endOfQueue)
	}
	if !testutil.ContainsLine(testutil.StripANSI(m.View()), "End of queue") {
		t.Error("status line missing from view")
	}
}

func TestUpdate_QuitStopsEngine(t *testing.T) {
	for _, msg := range []tea.Msg{key("q"), key("esc"), key("ctrl+c"), QuitRequestMsg{}} {
		m, mock := newTestModel(t, 1)
		m = update(t, m, key("space"))

		m, cmd := updateCmd(t, m, msg)
		if !isQuit(cmd) {
			t.Errorf("%v: expected tea.Quit", msg)
		}
		if mock.State() != player.Stopped {
			t.Errorf("%v: engine state = %v, want stopped", msg, mock.State())
		}
		if m.View() != "" {
			t.Errorf("%v: view should be empty after quit", msg)
		}
	}
}

func TestUpdate_HelpOverlay(t *testing.T) {
	m, _ := newTestModel(t, 1)

	m = update(t, m, key("?"))
	if !m.showHelp {
		t.Fatal("? should open help")
	}
	if !strings.Contains(testutil.StripANSI(m.View()), "Key Bindings") {
		t.Error("help overlay not rendered")
	}

	// j scrolls the popup instead of moving the selection.
	m = update(t, m, key("j"))
	if sel, _ := m.ctrl.Selected(); sel != 0 {
		t.Errorf("selected = %d, want 0", sel)
	}

	m, cmd := updateCmd(t, m, key("q"))
	if m.showHelp {
		t.Error("q should close help")
	}
	if isQuit(cmd) {
		t.Error("q should not quit while help is open")
	}

	m = update(t, m, key("h"))
	_, cmd = updateCmd(t, m, key("ctrl+c"))
	if !isQuit(cmd) {
		t.Error("ctrl+c should quit while help is open")
	}
}

func TestUpdate_UnboundKeyIgnored(t *testing.T) {
	m, mock := newTestModel(t, 2)

	m, cmd := updateCmd(t, m, key("x"))
	if cmd != nil {
		t.Error("unbound key should produce no command")
	}
	if sel, _ := m.ctrl.Selected(); sel != 0 {
		t.Errorf("selected = %d, want 0", sel)
	}
	if len(mock.StartCalls()) != 0 {
		t.Error("unbound key should not start playback")
	}
}

func TestUpdate_KeyOverrides(t *testing.T) {
	bindings, err := keymap.WithOverrides(keymap.Defaults(), map[string][]string{"next_track": {"l"}})
	if err != nil {
		t.Fatal(err)
	}
	mock := player.NewMock()
	queue := playlist.NewQueue([]playlist.Track{
		playlist.NewTrack("/music/A.mp3", playlist.Metadata{}),
		playlist.NewTrack("/music/B.mp3", playlist.Metadata{}),
	})
	m := New(playback.New(mock, queue, playback.Options{}), bindings, Options{})

	m = update(t, m, key("enter"))
	m = update(t, m, key("n"))
	if idx, _ := m.ctrl.Playing(); idx != 0 {
		t.Errorf("n should be unbound, playing = %d", idx)
	}
	m = update(t, m, key("l"))
	if idx, _ := m.ctrl.Playing(); idx != 1 {
		t.Errorf("l should advance, playing = %d", idx)
	}
}

func TestView_Layout(t *testing.T) {
	m, _ := newTestModel(t, 3)
	m = update(t, m, key("s"))
	m = update(t, m, key("r"))
	m = update(t, m, key("enter"))

	out := testutil.StripANSI(m.View())
	lines := strings.Split(out, "\n")
	if len(lines) != 20 {
		t.Errorf("view has %d lines, want 20", len(lines))
	}

	for _, want := range []string{"tplay", "3 tracks", "/music", "▶ A", "Shuffle: On | Repeat: Track | Press ? for help"} {
		if !testutil.ContainsLine(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
	if !strings.HasPrefix(testutil.FindLine(out, "C"), "  C") {
		t.Errorf("track C row = %q", testutil.FindLine(out, "C"))
	}
}

func TestView_ZeroSize(t *testing.T) {
	mock := player.NewMock()
	ctrl := playback.New(mock, playlist.NewQueue(nil), playback.Options{})
	m := New(ctrl, keymap.Defaults(), Options{})

	if m.View() != "" {
		t.Error("view should be empty before the first WindowSizeMsg")
	}
}
