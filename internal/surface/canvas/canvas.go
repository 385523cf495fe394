// Package canvas is an in-memory RGB565 framebuffer implementing
// grid.Surface. It mirrors what a TFT panel would show and can be exported
// as PNG for previews and golden tests.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/grid"
)

// Canvas is a width × height framebuffer. Drawing outside the bounds is
// clipped. It implements grid.Surface and draw.Image.
type Canvas struct {
	width  int
	height int
	pix    []grid.Color
	face   font.Face
}

// New returns a canvas cleared to background.
func New(width, height int, background grid.Color) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas: invalid size %dx%d", width, height)
	}
	c := &Canvas{
		width:  width,
		height: height,
		pix:    make([]grid.Color, width*height),
		face:   basicfont.Face7x13,
	}
	c.Clear(background)
	return c, nil
}

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col grid.Color) {
	for i := range c.pix {
		c.pix[i] = col
	}
}

// Pixel returns the color at (x, y). ok is false outside the canvas.
func (c *Canvas) Pixel(x, y int) (col grid.Color, ok bool) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return 0, false
	}
	return c.pix[y*c.width+x], true
}

func (c *Canvas) set(x, y int, col grid.Color) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.pix[y*c.width+x] = col
}

// FillRect paints a solid rectangle.
func (c *Canvas) FillRect(x, y, width, height int, col grid.Color) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+width, c.width), min(y+height, c.height)
	for py := y0; py < y1; py++ {
		row := c.pix[py*c.width : (py+1)*c.width]
		for px := x0; px < x1; px++ {
			row[px] = col
		}
	}
}

// DrawRect paints a 1px outline on the inside edge of the rectangle, the
// same pixels a TFT driver's drawRect touches.
func (c *Canvas) DrawRect(x, y, width, height int, col grid.Color) {
	if width <= 0 || height <= 0 {
		return
	}
	for px := x; px < x+width; px++ {
		c.set(px, y, col)
		c.set(px, y+height-1, col)
	}
	for py := y; py < y+height; py++ {
		c.set(x, py, col)
		c.set(x+width-1, py, col)
	}
}

// DrawText draws text with its center at (x, y).
func (c *Canvas) DrawText(text string, x, y int, col grid.Color) {
	if text == "" {
		return
	}
	r, g, b := col.RGBA8()
	d := font.Drawer{
		Dst:  c,
		Src:  image.NewUniform(color.RGBA{R: r, G: g, B: b, A: 0xFF}),
		Face: c.face,
	}
	w := d.MeasureString(text).Round()
	m := c.face.Metrics()
	textHeight := (m.Ascent + m.Descent).Round()
	d.Dot = fixed.P(x-w/2, y-textHeight/2+m.Ascent.Round())
	d.DrawString(text)
}

// TextWidth returns the rendered width of text in pixels.
func (c *Canvas) TextWidth(text string) int {
	return font.MeasureString(c.face, text).Round()
}

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (c *Canvas) Bounds() image.Rectangle { return image.Rect(0, 0, c.width, c.height) }

// At implements image.Image.
func (c *Canvas) At(x, y int) color.Color {
	col, ok := c.Pixel(x, y)
	if !ok {
		return color.RGBA{}
	}
	r, g, b := col.RGBA8()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// Set implements draw.Image. Partially transparent source pixels, as the
// font rasterizer produces at glyph edges, are quantized: anything at least
// half opaque is written, the rest is dropped. A TFT has no alpha channel.
func (c *Canvas) Set(x, y int, col color.Color) {
	r, g, b, a := col.RGBA()
	if a < 0x8000 {
		return
	}
	// un-premultiply
	r, g, b = r*0xFFFF/a, g*0xFFFF/a, b*0xFFFF/a
	c.set(x, y, grid.RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8)))
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c); err != nil {
		return fmt.Errorf("canvas: encode png: %w", err)
	}
	return nil
}
