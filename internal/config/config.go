// Package config loads the optional TOML configuration file. A missing file
// yields the defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/tplay/internal/playback"
)

// AppName names the config and state directories.
const AppName = "tplay"

const (
	DefaultTickInterval    = 200 * time.Millisecond
	DefaultStatusTimeout   = 4 * time.Second
	DefaultShutdownTimeout = 2 * time.Second
)

// ErrNotFound is returned when an explicitly requested file does not exist.
var ErrNotFound = errors.New("config file not found")

type Config struct {
	TickInterval    time.Duration `koanf:"tick_interval"`
	StatusTimeout   time.Duration `koanf:"status_timeout"`   // how long errors stay on the status line
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"` // grace period for closing the audio device
	ScanWorkers     int           `koanf:"scan_workers"`     // 0 = one per CPU
	Repeat          string        `koanf:"repeat"`           // "off", "track" or "all"
	Shuffle         bool          `koanf:"shuffle"`
	LogFile         string        `koanf:"log_file"` // empty = $XDG_STATE_HOME/tplay/tplay.log

	// Keys overrides the keys of actions, e.g. next_track = ["n", "l"].
	Keys map[string][]string `koanf:"keys"`

	// RepeatMode is Repeat parsed.
	RepeatMode playback.RepeatMode `koanf:"-"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		TickInterval:    DefaultTickInterval,
		StatusTimeout:   DefaultStatusTimeout,
		ShutdownTimeout: DefaultShutdownTimeout,
		Repeat:          "off",
		RepeatMode:      playback.RepeatOff,
	}
}

// Load reads the config files in order of priority (last wins). explicit,
// when set, must exist.
func Load(explicit string) (*Config, error) {
	paths := getConfigPaths()
	if explicit != "" {
		explicit = expandPath(explicit)
		if _, err := os.Stat(explicit); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, explicit)
		}
		paths = append(paths, explicit)
	}
	return loadFrom(paths)
}

func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	mode, err := playback.ParseRepeatMode(cfg.Repeat)
	if err != nil {
		return nil, err
	}
	cfg.RepeatMode = mode

	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	if cfg.StatusTimeout <= 0 {
		cfg.StatusTimeout = DefaultStatusTimeout
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}
	cfg.ScanWorkers = max(cfg.ScanWorkers, 0)

	if cfg.LogFile != "" {
		cfg.LogFile = expandPath(cfg.LogFile)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/tplay/config.toml
		filepath.Join(xdg.ConfigHome, AppName, "config.toml"),
		// 2. ./tplay.toml (pwd)
		AppName + ".toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
