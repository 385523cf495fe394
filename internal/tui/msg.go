package tui

import (
	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/config"
	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/scene"
	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/surface/term"
)

// sceneLoadedMsg carries the result of loading and building the layout.
type sceneLoadedMsg struct {
	cfg     *config.Config
	scene   *scene.Scene
	surface *term.Surface
	err     error
}

// fileChangedMsg signals that the layout file changed on disk.
type fileChangedMsg struct{}

// watchClosedMsg signals the change channel closed.
type watchClosedMsg struct{}
