package main

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/config"
	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/grid"
	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/scene"
	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/surface/canvas"
	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/surface/term"
	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/tui"
	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/watch"
)

// buildScene resolves the layout on an in-memory canvas of the display size.
func buildScene(cfg *config.Config) (*scene.Scene, error) {
	sc, _, err := canvasScene(cfg)
	return sc, err
}

func canvasScene(cfg *config.Config) (*scene.Scene, *canvas.Canvas, error) {
	bg, err := config.Color(cfg.Display.Background, grid.Black)
	if err != nil {
		return nil, nil, err
	}
	c, err := canvas.New(cfg.Display.Width, cfg.Display.Height, bg)
	if err != nil {
		return nil, nil, err
	}
	sc, err := scene.Build(cfg, c)
	if err != nil {
		return nil, nil, err
	}
	return sc, c, nil
}

// renderPNG draws the layout and writes it to w as a PNG.
func renderPNG(cfg *config.Config, w io.Writer) (*scene.Scene, error) {
	sc, c, err := canvasScene(cfg)
	if err != nil {
		return nil, err
	}
	if err := sc.Render(); err != nil {
		return nil, err
	}
	if err := c.WritePNG(w); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return sc, nil
}

// renderTerm draws the layout on a terminal surface scaled by the preview
// settings.
func renderTerm(cfg *config.Config, plain bool) (string, *scene.Scene, error) {
	bg, err := config.Color(cfg.Display.Background, grid.Black)
	if err != nil {
		return "", nil, err
	}
	s, err := term.New(cfg.Display.Width, cfg.Display.Height, cfg.Preview.ScaleX, cfg.Preview.ScaleY, bg)
	if err != nil {
		return "", nil, err
	}
	sc, err := scene.Build(cfg, s)
	if err != nil {
		return "", nil, err
	}
	if err := sc.Render(); err != nil {
		return "", nil, err
	}
	if plain {
		return s.Plain(), sc, nil
	}
	return s.String(), sc, nil
}

// runPreview starts the interactive preview. With watch set, saving the
// layout file reloads it.
func runPreview(path string, watchFile bool) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	path = cfg.Path
	load := func() (*config.Config, error) { return config.Load(path) }

	var changes <-chan struct{}
	if watchFile {
		w, err := watch.New(path)
		if err != nil {
			return err
		}
		defer w.Close()
		changes = w.Changes()
		// Watch errors only stop reloads; the preview keeps running.
		go func() {
			for range w.Errors() {
			}
		}()
	}

	program := tea.NewProgram(tui.New(load, changes), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
