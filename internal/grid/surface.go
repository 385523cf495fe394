package grid

// Surface is the drawing capability a Grid renders onto: a TFT driver, an
// in-memory framebuffer, a terminal, or a window. Coordinates are pixels.
//
// Text is anchored at its center and carries its own color; a Surface must
// not keep a "current text color" between calls.
type Surface interface {
	FillRect(x, y, width, height int, c Color)
	DrawRect(x, y, width, height int, c Color)
	DrawText(text string, x, y int, c Color)
}

// Rect is a pixel rectangle. X and Y are the top-left corner.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the pixel (px, py) lies inside r.
func (r Rect) Contains(px, py int) bool {
	return px >= r.X && px < r.X+r.Width && py >= r.Y && py < r.Y+r.Height
}

// Overlaps reports whether r and o share at least one pixel.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// Point is a pixel coordinate.
type Point struct {
	X, Y int
}

// Padding is the space reserved inside the bounding box on each edge.
type Padding struct {
	Top, Bottom, Left, Right int
}
