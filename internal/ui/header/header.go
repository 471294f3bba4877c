// internal/ui/header/header.go
package header

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/llehouerou/tplay/internal/ui/render"
	"github.com/llehouerou/tplay/internal/ui/styles"
)

// Height is the fixed height of the header (title line + separator).
const Height = 2

// Title is the application name shown in the header.
const Title = "tplay"

// Info describes the loaded queue.
type Info struct {
	Path    string
	Tracks  int
	Total   time.Duration // sum of known durations
	Unknown int           // tracks without a known duration
}

// Render returns the header for the given width.
func Render(info Info, width int) string {
	if width <= 0 {
		return ""
	}
	t := styles.T()
	s := t.S()

	left := styles.Gradient(Title, t.Primary, t.Secondary) + "  " + s.Muted.Render(Summary(info))
	right := s.Subtle.Render(render.Truncate(info.Path, max(width/2, 10)))

	line := render.Row(left, right, width)
	return line + "\n" + s.Subtle.Render(strings.Repeat("─", width))
}

// Summary formats the track count and total playing time, e.g.
// "1,204 tracks · 3h12m+".
func Summary(info Info) string {
	count := humanize.Comma(int64(info.Tracks)) + " " + english.PluralWord(info.Tracks, "track", "")
	if info.Total <= 0 {
		return count
	}
	total := info.Total.Truncate(time.Minute).String()
	total = strings.TrimSuffix(total, "0s")
	if info.Unknown > 0 {
		total += "+"
	}
	return count + " · " + total
}
