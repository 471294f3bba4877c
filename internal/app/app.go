// internal/app/app.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tplay/internal/config"
	"github.com/llehouerou/tplay/internal/keymap"
	"github.com/llehouerou/tplay/internal/playback"
	"github.com/llehouerou/tplay/internal/ui/header"
	"github.com/llehouerou/tplay/internal/ui/helpbindings"
	"github.com/llehouerou/tplay/internal/ui/playerbar"
	"github.com/llehouerou/tplay/internal/ui/tracklist"
)

// footerHeight covers the controls line and the status line.
const footerHeight = 2

// Options configures the model.
type Options struct {
	Path            string // shown in the header
	TickInterval    time.Duration
	StatusTimeout   time.Duration
	ShutdownTimeout time.Duration
	Stderr          <-chan string // captured C-library output, may be nil
}

// OptionsFromConfig copies the timing settings from cfg.
func OptionsFromConfig(cfg *config.Config, path string) Options {
	return Options{
		Path:            path,
		TickInterval:    cfg.TickInterval,
		StatusTimeout:   cfg.StatusTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}
}

type status struct {
	id    int
	text  string
	isErr bool
}

// Model is the root bubbletea model.
type Model struct {
	ctrl   *playback.Controller
	keys   *keymap.Resolver
	opts   Options
	header header.Info

	list tracklist.Model
	bar  playerbar.Model
	help helpbindings.Model

	width    int
	height   int
	showHelp bool
	status   status
	quitting bool
}

// New creates the model. The controller is owned by the model from here
// on and must not be driven from elsewhere while the program runs.
func New(ctrl *playback.Controller, bindings []keymap.Binding, opts Options) Model {
	def := config.Default()
	if opts.TickInterval <= 0 {
		opts.TickInterval = def.TickInterval
	}
	if opts.StatusTimeout <= 0 {
		opts.StatusTimeout = def.StatusTimeout
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = def.ShutdownTimeout
	}

	q := ctrl.Queue()
	total, unknown := q.TotalDuration()

	return Model{
		ctrl: ctrl,
		keys: keymap.NewResolver(bindings),
		opts: opts,
		header: header.Info{
			Path:    opts.Path,
			Tracks:  q.Len(),
			Total:   total,
			Unknown: unknown,
		},
		list: tracklist.New(),
		bar:  playerbar.New(),
		help: helpbindings.New(bindings),
	}
}

// Init starts the redraw tick, the spinner, and the stderr watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		TickCmd(m.opts.TickInterval),
		m.bar.Init(),
		watchStderr(m.opts.Stderr),
	)
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height

	listHeight := max(height-header.Height-playerbar.Height-footerHeight, 0)
	m.list.SetSize(width, listHeight)
	m.bar.SetSize(width, playerbar.Height)
	m.help.SetSize(width, height)
	m.syncList()
}

func (m *Model) syncList() {
	m.list.Sync(m.ctrl.Snapshot())
}
