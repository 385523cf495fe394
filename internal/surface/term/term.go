// Package term renders a grid.Surface into terminal text. Each character
// cell stands for ScaleX × ScaleY display pixels; fills become background
// colors, outlines become box-drawing runes, and text is centered by
// display width.
package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/grid"
)

// cell is one terminal character.
type cell struct {
	r     rune // 0 = continuation of a wide rune on the left
	fg    grid.Color
	bg    grid.Color
	hasFg bool
}

// Surface is a character buffer implementing grid.Surface.
type Surface struct {
	scaleX int
	scaleY int
	cols   int
	rows   int
	buf    []cell
}

// New creates a surface covering widthPx × heightPx display pixels, with
// scaleX × scaleY pixels per character, cleared to background.
func New(widthPx, heightPx, scaleX, scaleY int, background grid.Color) (*Surface, error) {
	if scaleX <= 0 || scaleY <= 0 {
		return nil, fmt.Errorf("term: invalid scale %dx%d", scaleX, scaleY)
	}
	if widthPx <= 0 || heightPx <= 0 {
		return nil, fmt.Errorf("term: invalid size %dx%d", widthPx, heightPx)
	}
	s := &Surface{
		scaleX: scaleX,
		scaleY: scaleY,
		cols:   ceilDiv(widthPx, scaleX),
		rows:   ceilDiv(heightPx, scaleY),
	}
	s.buf = make([]cell, s.cols*s.rows)
	for i := range s.buf {
		s.buf[i] = cell{r: ' ', bg: background}
	}
	return s, nil
}

// Size returns the surface size in characters.
func (s *Surface) Size() (cols, rows int) { return s.cols, s.rows }

// span maps the pixel interval [p, p+n) to character indices [a, b).
// Boundaries are rounded so that edge-adjacent pixel rectangles map to
// edge-adjacent character rectangles.
func span(p, n, scale int) (a, b int) {
	return roundDiv(p, scale), roundDiv(p+n, scale)
}

func (s *Surface) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return nil
	}
	return &s.buf[row*s.cols+col]
}

// FillRect sets the background of every character the rectangle covers and
// clears its content.
func (s *Surface) FillRect(x, y, width, height int, c grid.Color) {
	c0, c1 := span(x, width, s.scaleX)
	r0, r1 := span(y, height, s.scaleY)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			if ch := s.at(col, row); ch != nil {
				*ch = cell{r: ' ', bg: c}
			}
		}
	}
}

// DrawRect draws a box around the characters the rectangle covers.
func (s *Surface) DrawRect(x, y, width, height int, c grid.Color) {
	c0, c1 := span(x, width, s.scaleX)
	r0, r1 := span(y, height, s.scaleY)
	if c1 <= c0 || r1 <= r0 {
		return
	}
	last, bottom := c1-1, r1-1
	for col := c0; col <= last; col++ {
		s.put(col, r0, '─', c)
		s.put(col, bottom, '─', c)
	}
	for row := r0; row <= bottom; row++ {
		s.put(c0, row, '│', c)
		s.put(last, row, '│', c)
	}
	switch {
	case c0 == last && r0 == bottom:
		s.put(c0, r0, '□', c)
	case r0 == bottom:
		s.put(c0, r0, '╶', c)
		s.put(last, r0, '╴', c)
	case c0 == last:
		s.put(c0, r0, '╷', c)
		s.put(c0, bottom, '╵', c)
	default:
		s.put(c0, r0, '┌', c)
		s.put(last, r0, '┐', c)
		s.put(c0, bottom, '└', c)
		s.put(last, bottom, '┘', c)
	}
}

// DrawText writes text centered on the character containing (x, y).
func (s *Surface) DrawText(text string, x, y int, c grid.Color) {
	if text == "" {
		return
	}
	col := floorDiv(x, s.scaleX) - runewidth.StringWidth(text)/2
	row := floorDiv(y, s.scaleY)
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.put(col, row, r, c)
		if w == 2 {
			s.put(col+1, row, 0, c)
		}
		col += w
	}
}

func (s *Surface) put(col, row int, r rune, fg grid.Color) {
	ch := s.at(col, row)
	if ch == nil {
		return
	}
	ch.r = r
	ch.fg = fg
	ch.hasFg = true
}

// Plain returns the buffer as text without colors, one line per row.
func (s *Surface) Plain() string {
	var b strings.Builder
	for row := 0; row < s.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < s.cols; col++ {
			if r := s.buf[row*s.cols+col].r; r != 0 {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// String renders the buffer with lipgloss colors. Runs of characters with
// the same colors share one style.
func (s *Surface) String() string {
	var b strings.Builder
	for row := 0; row < s.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		line := s.buf[row*s.cols : (row+1)*s.cols]
		start := 0
		for i := 1; i <= len(line); i++ {
			if i < len(line) && sameStyle(line[i], line[start]) {
				continue
			}
			b.WriteString(styleFor(line[start]).Render(runText(line[start:i])))
			start = i
		}
	}
	return b.String()
}

func sameStyle(a, b cell) bool {
	return a.bg == b.bg && a.hasFg == b.hasFg && (!a.hasFg || a.fg == b.fg)
}

func styleFor(c cell) lipgloss.Style {
	st := lipgloss.NewStyle().Background(lipgloss.Color(c.bg.Hex()))
	if c.hasFg {
		st = st.Foreground(lipgloss.Color(c.fg.Hex()))
	}
	return st
}

func runText(cells []cell) string {
	var b strings.Builder
	for _, c := range cells {
		if c.r != 0 {
			b.WriteRune(c.r)
		}
	}
	return b.String()
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

func roundDiv(a, b int) int {
	return floorDiv(2*a+b, 2*b)
}
