package tui

// Rect represents a rectangular region of the terminal.
type Rect struct {
	X, Y, Width, Height int
}

// Layout holds the computed region geometry for a given terminal size.
type Layout struct {
	Header, Footer Rect
	Preview, Side  Rect
	TooSmall       bool // true when terminal is below the minimum 60×16
}

// Minimum terminal size for the preview.
const (
	MinWidth  = 60
	MinHeight = 16
)

// Calculate computes the preview layout for a terminal of the given
// dimensions. Returns a Layout with TooSmall=true below MinWidth×MinHeight.
//
//   - Header: full width, 1 row at top
//   - Footer: full width, 2 rows at bottom (status + help)
//   - Side: 30% of width, clamped to [28, 40], right edge
//   - Preview: the remaining width, full body height
func Calculate(width, height int) Layout {
	if width < MinWidth || height < MinHeight {
		return Layout{TooSmall: true}
	}

	bodyH := height - 3

	sideW := width * 30 / 100
	if sideW < 28 {
		sideW = 28
	}
	if sideW > 40 {
		sideW = 40
	}
	previewW := width - sideW

	return Layout{
		Header:  Rect{X: 0, Y: 0, Width: width, Height: 1},
		Footer:  Rect{X: 0, Y: height - 2, Width: width, Height: 2},
		Preview: Rect{X: 0, Y: 1, Width: previewW, Height: bodyH},
		Side:    Rect{X: previewW, Y: 1, Width: sideW, Height: bodyH},
	}
}

// innerDims returns the content area inside a rounded border.
func innerDims(r Rect) (w, h int) {
	return max(r.Width-2, 0), max(r.Height-2, 0)
}
