// internal/cli/run.go
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/tplay/internal/app"
	"github.com/llehouerou/tplay/internal/config"
	"github.com/llehouerou/tplay/internal/errmsg"
	"github.com/llehouerou/tplay/internal/keymap"
	"github.com/llehouerou/tplay/internal/logging"
	"github.com/llehouerou/tplay/internal/playback"
	"github.com/llehouerou/tplay/internal/player"
	"github.com/llehouerou/tplay/internal/playlist"
	"github.com/llehouerou/tplay/internal/stderr"
)

// smokeDuration is how long --test plays the first track.
const smokeDuration = 500 * time.Millisecond

// session is everything loaded before the audio device is opened.
type session struct {
	cfg      *config.Config
	bindings []keymap.Binding
	queue    *playlist.Queue
	logs     io.Closer
}

func (s *session) Close() {
	if s.logs != nil {
		_ = s.logs.Close()
	}
}

// prepare loads the configuration, sets up logging, and scans p.Path.
func prepare(ctx context.Context, p Params) (*session, error) {
	cfg, err := config.Load(p.Config)
	if err != nil {
		return nil, fail(errmsg.OpConfigLoad, err)
	}

	logFile := p.LogFile
	if logFile == "" {
		logFile = cfg.LogFile
	}
	logs, err := logging.Setup(logging.Options{
		Verbose: logging.Verbose(p.Verbose),
		File:    logFile,
	})
	if err != nil {
		return nil, fail(errmsg.OpLogOpen, err)
	}
	s := &session{cfg: cfg, logs: logs}

	s.bindings, err = keymap.WithOverrides(keymap.Defaults(), cfg.Keys)
	if err != nil {
		s.Close()
		return nil, fail(errmsg.OpKeysApply, err)
	}

	start := time.Now()
	tracks, err := playlist.Scanner{Workers: cfg.ScanWorkers}.Scan(ctx, p.Path)
	if err != nil {
		s.Close()
		return nil, fail(errmsg.OpScan, err)
	}
	s.queue = playlist.NewQueue(tracks)
	log.Info().
		Str("path", p.Path).
		Int("tracks", s.queue.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("queue loaded")

	return s, nil
}

func run(ctx context.Context, p Params) error {
	s, err := prepare(ctx, p)
	if err != nil {
		return err
	}
	defer s.Close()

	// ALSA and faad2 write to fd 2 directly; keep that off the terminal
	// while the UI owns it.
	var capture *stderr.Capture
	if !p.Test {
		capture, err = stderr.Start(stderr.DefaultBuffer)
		if err != nil {
			log.Warn().Err(err).Msg("stderr capture unavailable")
		} else {
			defer capture.Stop()
		}
	}

	engine, err := player.New(player.DefaultSampleRate)
	if err != nil {
		return fail(errmsg.OpAudioInit, err)
	}

	ctrl := playback.New(engine, s.queue, playback.Options{
		Shuffle: s.cfg.Shuffle,
		Repeat:  s.cfg.RepeatMode,
	})

	if p.Test {
		err = smokeTest(ctx, ctrl)
	} else {
		err = runUI(ctrl, s, p.Path, capture)
	}

	if closeErr := closeEngine(engine, s.cfg.ShutdownTimeout); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

// smokeTest plays the first track briefly and stops.
func smokeTest(ctx context.Context, ctrl *playback.Controller) error {
	if err := ctrl.PlaySelected(); err != nil {
		return fail(errmsg.OpPlaybackStart, err)
	}
	select {
	case <-time.After(smokeDuration):
	case <-ctx.Done():
	}
	ctrl.Stop()
	return nil
}

func runUI(ctrl *playback.Controller, s *session, path string, capture *stderr.Capture) error {
	opts := app.OptionsFromConfig(s.cfg, path)
	if capture != nil {
		opts.Stderr = capture.Lines()
	}
	model := app.New(ctrl, s.bindings, opts)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithoutSignalHandler())

	// SIGINT and SIGTERM take the same path as the quit key.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case sig := <-sigs:
			log.Debug().Str("signal", sig.String()).Msg("quit requested")
			program.Send(app.QuitRequestMsg{})
		case <-done:
		}
	}()

	if _, err := program.Run(); err != nil {
		log.Error().Err(err).Msg(errmsg.Format(errmsg.OpTerminal, err))
		return fail(errmsg.OpTerminal, err)
	}
	return nil
}

// closeEngine releases the audio device, giving up after timeout.
func closeEngine(engine interface{ Close() }, timeout time.Duration) error {
	done := make(chan struct{})
	go func() {
		engine.Close()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		err := fmt.Errorf("%w after %s", errShutdownTimeout, timeout)
		log.Error().Err(err).Msg(errmsg.Format(errmsg.OpPlaybackStop, err))
		return fail(errmsg.OpPlaybackStop, err)
	}
}
