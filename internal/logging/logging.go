// Package logging configures the global zerolog logger. The terminal is
// owned by the UI, so logs always go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DebugEnv enables verbose logging when set to a true value.
const DebugEnv = "TPLAY_DEBUG"

// Options configures Setup.
type Options struct {
	Verbose bool
	File    string // empty = DefaultFile()
}

// DefaultFile returns $XDG_STATE_HOME/tplay/tplay.log, creating its directory.
func DefaultFile() (string, error) {
	return xdg.StateFile(filepath.Join("tplay", "tplay.log"))
}

// Verbose reports whether debug logging is requested by flag or environment.
func Verbose(flag bool) bool {
	if flag {
		return true
	}
	v, err := strconv.ParseBool(os.Getenv(DebugEnv))
	return err == nil && v
}

// Setup points the global logger at the log file. The returned closer
// flushes and closes the file.
func Setup(opts Options) (io.Closer, error) {
	path := opts.File
	if path == "" {
		p, err := DefaultFile()
		if err != nil {
			return nil, fmt.Errorf("resolve log file: %w", err)
		}
		path = p
	} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	log.Logger = New(f, opts.Verbose)
	return f, nil
}

// New builds a logger writing to w at warn level, or debug when verbose.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
