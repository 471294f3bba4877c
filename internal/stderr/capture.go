// Package stderr captures output that C libraries (ALSA, faad2) write
// directly to file descriptor 2, so it cannot corrupt the TUI layout.
package stderr

import (
	"bufio"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultBuffer is the number of captured lines held for the UI.
const DefaultBuffer = 100

// Capture owns a redirected stderr. Lines is closed once capture stops.
type Capture struct {
	lines chan string
	done  chan struct{}
	stop  func()
}

// Lines receives captured stderr lines.
func (c *Capture) Lines() <-chan string {
	return c.lines
}

// Stop restores the original stderr and waits for the reader to drain.
func (c *Capture) Stop() {
	if c.stop == nil {
		return
	}
	c.stop()
	c.stop = nil
	<-c.done
}

// pump forwards trimmed non-empty lines from r to out, logging each one.
// Lines are dropped when out is full. out is closed when r is exhausted.
func pump(r io.Reader, out chan<- string) {
	defer close(out)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		log.Warn().Str("source", "stderr").Msg(line)
		select {
		case out <- line:
		default:
		}
	}
}
