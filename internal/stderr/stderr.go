//go:build !windows

package stderr

import (
	"os"
	"syscall"
)

// Start begins capturing stderr output.
// Must be called early in main(), before any C library initialization.
// On error the program can continue without capture.
func Start(buffer int) (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	fd := int(os.Stderr.Fd())
	orig, err := syscall.Dup(fd)
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}

	if err := syscall.Dup2(int(w.Fd()), fd); err != nil {
		syscall.Close(orig)
		r.Close()
		w.Close()
		return nil, err
	}

	c := &Capture{
		lines: make(chan string, max(buffer, 1)),
		done:  make(chan struct{}),
	}
	c.stop = func() {
		_ = syscall.Dup2(orig, fd)
		_ = syscall.Close(orig)
		// fd 2 no longer refers to the pipe, so closing w ends the pump.
		w.Close()
	}

	go func() {
		pump(r, c.lines)
		r.Close()
		close(c.done)
	}()
	return c, nil
}
