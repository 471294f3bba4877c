// Package render provides text rendering utilities for TUI components.
package render

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Sanitize drops control characters (except tab) and invalid UTF-8 so file
// names cannot break the terminal layout.
func Sanitize(s string) string {
	if !strings.ContainsFunc(s, needsDrop) {
		return strings.ToValidUTF8(s, "")
	}
	return strings.Map(func(r rune) rune {
		if needsDrop(r) {
			return -1
		}
		return r
	}, strings.ToValidUTF8(s, ""))
}

func needsDrop(r rune) bool {
	return r != '\t' && unicode.IsControl(r)
}

// Truncate shortens a string to fit within maxWidth, adding an ellipsis if truncated.
// Uses runewidth for proper handling of wide characters (CJK, emoji).
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, "…")
}

// TruncateAndPad truncates a string if necessary, then pads to the exact width.
func TruncateAndPad(s string, width int) string {
	return runewidth.FillRight(Truncate(s, width), width)
}

// Row creates a row with left and right aligned content separated by spaces.
// The left side is truncated so the row never exceeds width.
func Row(left, right string, width int) string {
	rightWidth := lipgloss.Width(right)
	leftMax := width - rightWidth - 1
	if leftMax < 1 {
		return Truncate(right, width)
	}
	if lipgloss.Width(left) > leftMax {
		left = Truncate(left, leftMax)
	}
	gap := max(width-lipgloss.Width(left)-rightWidth, 1)
	return left + strings.Repeat(" ", gap) + right
}

// Duration formats d as m:ss, or h:mm:ss past one hour.
func Duration(d time.Duration) string {
	d = max(d, 0).Truncate(time.Second)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// UnknownDuration is shown where a duration could not be determined.
const UnknownDuration = "--:--"
