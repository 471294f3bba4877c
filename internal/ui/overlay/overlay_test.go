package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestCompose(t *testing.T) {
	base := strings.Join([]string{
		"aaaaaaaaaa",
		"bbbbbbbbbb",
		"cccccccccc",
	}, "\n")
	over := strings.Join([]string{
		"",
		"   XYZ    ",
		"          ",
	}, "\n")

	got := Compose(base, over, 10)

	assert.Equal(t, "aaaaaaaaaa\nbbbXYZbbbb\ncccccccccc", got)
}

func TestCompose_PadsShortBase(t *testing.T) {
	got := Compose("ab", "    Z", 6)
	assert.Equal(t, "ab  Z ", got)
}

func TestCompose_StyledOverlay(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("OK")
	got := Compose("..........", "  "+styled, 10)

	assert.Equal(t, "..OK......", ansi.Strip(got))
}

func TestCompose_OverlayTallerThanBase(t *testing.T) {
	got := Compose("one", "xxx\nyyy", 3)
	assert.Equal(t, "xxx", got)
}

func TestCenter(t *testing.T) {
	got := Center("[]", 6, 3)
	lines := strings.Split(got, "\n")

	assert.Len(t, lines, 3)
	assert.Equal(t, "  []  ", lines[1])
	assert.Equal(t, "      ", lines[0])
}
