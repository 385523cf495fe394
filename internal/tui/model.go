package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/config"
	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/grid"
	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/scene"
	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/surface/term"
)

// Loader loads the layout configuration. It is called at startup, on the
// reload key, and whenever the layout file changes.
type Loader func() (*config.Config, error)

// Model is the bubbletea model for the grid preview.
type Model struct {
	load    Loader
	changes <-chan struct{}

	// Current layout; kept when a reload fails.
	cfg     *config.Config
	scene   *scene.Scene
	surface *term.Surface
	preview string

	// Cursor cell
	row, col int

	layout Layout
	theme  Theme
	keys   keyMap
	help   help.Model
	width  int
	height int

	reloads int
	err     error
}

// New creates the preview model. changes may be nil when the layout file is
// not watched.
func New(load Loader, changes <-chan struct{}) Model {
	h := help.New()
	h.Width = 80
	return Model{
		load:    load,
		changes: changes,
		layout:  Calculate(80, 24),
		theme:   NewTheme(""),
		keys:    defaultKeyMap(),
		help:    h,
		width:   80,
		height:  24,
	}
}

// Init loads the layout and starts listening for file changes.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadScene(m.load), waitForChange(m.changes))
}

// Err returns the error of the last failed load, if any.
func (m Model) Err() error {
	return m.err
}

// Cursor returns the selected cell.
func (m Model) Cursor() (row, column int) {
	return m.row, m.col
}

// loadScene returns a command that loads the config and builds a scene on
// a fresh terminal surface.
func loadScene(load Loader) tea.Cmd {
	return func() tea.Msg {
		cfg, err := load()
		if err != nil {
			return sceneLoadedMsg{err: err}
		}
		sc, surface, err := buildPreview(cfg)
		return sceneLoadedMsg{cfg: cfg, scene: sc, surface: surface, err: err}
	}
}

func buildPreview(cfg *config.Config) (*scene.Scene, *term.Surface, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}
	bg, err := config.Color(cfg.Display.Background, grid.Black)
	if err != nil {
		return nil, nil, err
	}
	surface, err := term.New(cfg.Display.Width, cfg.Display.Height, cfg.Preview.ScaleX, cfg.Preview.ScaleY, bg)
	if err != nil {
		return nil, nil, err
	}
	sc, err := scene.Build(cfg, surface)
	if err != nil {
		return nil, nil, err
	}
	return sc, surface, nil
}

// waitForChange returns a command that blocks until the layout file
// changes. A nil channel disables watching.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return watchClosedMsg{}
		}
		return fileChangedMsg{}
	}
}
