//go:build raylib

// Package window shows a grid in a desktop window through raylib. Each
// display pixel is drawn as a Scale × Scale block so small TFT layouts stay
// readable on a monitor.
package window

import (
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/grid"
)

const defaultFontSize = 10

// Surface draws grid primitives with raylib. It is only valid between
// BeginDrawing and EndDrawing, which Run takes care of.
type Surface struct {
	scale    int32
	fontSize int32
}

// NewSurface returns a surface drawing at the given pixel scale.
func NewSurface(scale int) *Surface {
	if scale < 1 {
		scale = 1
	}
	return &Surface{scale: int32(scale), fontSize: int32(defaultFontSize * scale)}
}

func (s *Surface) FillRect(x, y, width, height int, c grid.Color) {
	if width <= 0 || height <= 0 {
		return
	}
	rl.DrawRectangle(s.px(x), s.px(y), s.px(width), s.px(height), toRL(c))
}

func (s *Surface) DrawRect(x, y, width, height int, c grid.Color) {
	if width <= 0 || height <= 0 {
		return
	}
	rl.DrawRectangleLinesEx(
		rl.NewRectangle(float32(s.px(x)), float32(s.px(y)), float32(s.px(width)), float32(s.px(height))),
		float32(s.scale),
		toRL(c),
	)
}

// DrawText draws text centered on (x, y).
func (s *Surface) DrawText(text string, x, y int, c grid.Color) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, s.fontSize)
	rl.DrawText(text, s.px(x)-w/2, s.px(y)-s.fontSize/2, s.fontSize, toRL(c))
}

func (s *Surface) px(v int) int32 { return int32(v) * s.scale }

func toRL(c grid.Color) rl.Color {
	r, g, b := c.RGBA8()
	return rl.NewColor(r, g, b, 0xFF)
}

// Options describe the window.
type Options struct {
	Title      string
	Width      int // display pixels
	Height     int // display pixels
	Scale      int
	Background grid.Color
}

// Run opens the window and calls frame once per rendered frame until the
// window is closed. An error from frame closes the window and is returned.
func Run(opts Options, frame func(grid.Surface) error) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("window: invalid size %dx%d", opts.Width, opts.Height)
	}
	s := NewSurface(opts.Scale)

	rl.InitWindow(s.px(opts.Width), s.px(opts.Height), opts.Title)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("window: raylib window is not ready")
	}
	rl.SetTargetFPS(30)
	log.Printf("window: %dx%d at scale %d", opts.Width, opts.Height, s.scale)

	bg := toRL(opts.Background)
	for !rl.WindowShouldClose() {
		rl.BeginDrawing()
		rl.ClearBackground(bg)
		err := frame(s)
		rl.EndDrawing()
		if err != nil {
			return fmt.Errorf("window: frame: %w", err)
		}
	}
	return nil
}
