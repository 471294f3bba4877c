//go:build windows

package stderr

// Start is a no-op on Windows: audio libraries there don't write to fd 2.
func Start(_ int) (*Capture, error) {
	c := &Capture{
		lines: make(chan string),
		done:  make(chan struct{}),
	}
	close(c.lines)
	close(c.done)
	return c, nil
}
