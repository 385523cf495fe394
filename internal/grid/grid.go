// Package grid lays out a fixed rows × columns table on a pixel display and
// draws it through a Surface.
//
// Geometry is resolved once per Generate call: explicitly sized rows and
// columns keep their size, the remaining space is split evenly between the
// others, and every cell gets a rectangle and a center point.
package grid

import (
	"fmt"
	"math"
)

// CoordinateMode selects the origin used for resolved cell coordinates.
type CoordinateMode int

const (
	// CoordinateAbsolute places cells at the table origin plus padding.
	CoordinateAbsolute CoordinateMode = iota

	// CoordinateCompat reproduces the legacy firmware: the table x is not
	// added to cell x coordinates (they start at the left padding on every
	// row), while cell y coordinates do include the table y.
	CoordinateCompat
)

func (m CoordinateMode) String() string {
	switch m {
	case CoordinateAbsolute:
		return "absolute"
	case CoordinateCompat:
		return "compat"
	default:
		return fmt.Sprintf("CoordinateMode(%d)", int(m))
	}
}

// Option configures a Grid at construction.
type Option func(*Grid)

// WithStorage makes the Grid keep its geometry in s instead of a fresh
// SliceStorage.
func WithStorage(s Storage) Option {
	return func(g *Grid) { g.store = s }
}

// WithCoordinateMode sets how cell coordinates are anchored.
func WithCoordinateMode(m CoordinateMode) Option {
	return func(g *Grid) { g.mode = m }
}

// Grid is a fixed-size table laid out inside a pixel bounding box.
// A Grid and its Surface are not safe for concurrent use.
type Grid struct {
	surface Surface
	bounds  Rect
	rows    int
	columns int
	padding Padding
	mode    CoordinateMode
	store   Storage

	generated bool
	diag      Diagnostics
}

// New creates a rows × columns grid inside bounds. Every cell starts with
// the given outline and fill colors; all rows and columns start unspecified.
func New(surface Surface, bounds Rect, rows, columns int, outline, fill Color, opts ...Option) (*Grid, error) {
	if surface == nil {
		return nil, fmt.Errorf("grid: new: %w", ErrNilSurface)
	}
	if rows < 1 || columns < 1 {
		return nil, fmt.Errorf("grid: new %dx%d: %w", rows, columns, ErrInvalidDimensions)
	}
	if bounds.Width < 0 || bounds.Height < 0 {
		return nil, fmt.Errorf("grid: new with size %dx%d: %w", bounds.Width, bounds.Height, ErrInvalidDimensions)
	}

	g := &Grid{
		surface: surface,
		bounds:  bounds,
		rows:    rows,
		columns: columns,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.store == nil {
		g.store = NewSliceStorage()
	}
	if err := g.store.Reset(rows, columns); err != nil {
		return nil, err
	}

	cells := g.store.Cells()
	for i := range cells {
		cells[i].Fill = fill
		cells[i].Outline = outline
	}
	return g, nil
}

// SetRowHeight requests an explicit height for row. Zero reverts the row to
// an evenly distributed height. Applied on the next Generate.
func (g *Grid) SetRowHeight(row, height int) error {
	if err := g.checkRow(row); err != nil {
		return fmt.Errorf("grid: set row height: %w", err)
	}
	if height < 0 {
		return fmt.Errorf("grid: set row %d height %d: %w", row, height, ErrInvalidSize)
	}
	g.store.Rows()[row].Requested = height
	return nil
}

// SetColumnWidth requests an explicit width for column. Zero reverts the
// column to an evenly distributed width. Applied on the next Generate.
func (g *Grid) SetColumnWidth(column, width int) error {
	if err := g.checkColumn(column); err != nil {
		return fmt.Errorf("grid: set column width: %w", err)
	}
	if width < 0 {
		return fmt.Errorf("grid: set column %d width %d: %w", column, width, ErrInvalidSize)
	}
	g.store.Columns()[column].Requested = width
	return nil
}

// SetPadding replaces all four paddings at once.
func (g *Grid) SetPadding(p Padding) error {
	if p.Top < 0 || p.Bottom < 0 || p.Left < 0 || p.Right < 0 {
		return fmt.Errorf("grid: set padding %+v: %w", p, ErrInvalidSize)
	}
	g.padding = p
	return nil
}

func (g *Grid) SetPaddingTop(px int) error {
	p := g.padding
	p.Top = px
	return g.SetPadding(p)
}

func (g *Grid) SetPaddingBottom(px int) error {
	p := g.padding
	p.Bottom = px
	return g.SetPadding(p)
}

func (g *Grid) SetPaddingLeft(px int) error {
	p := g.padding
	p.Left = px
	return g.SetPadding(p)
}

func (g *Grid) SetPaddingRight(px int) error {
	p := g.padding
	p.Right = px
	return g.SetPadding(p)
}

// SetCellFillColor changes the fill color of one cell. It is used by the
// next draw call; geometry is unaffected.
func (g *Grid) SetCellFillColor(row, column int, c Color) error {
	cell, err := g.cell(row, column)
	if err != nil {
		return fmt.Errorf("grid: set fill color: %w", err)
	}
	cell.Fill = c
	return nil
}

// SetCellOutlineColor changes the outline color of one cell.
func (g *Grid) SetCellOutlineColor(row, column int, c Color) error {
	cell, err := g.cell(row, column)
	if err != nil {
		return fmt.Errorf("grid: set outline color: %w", err)
	}
	cell.Outline = c
	return nil
}

// Generate resolves column widths, row heights, cell coordinates and cell
// centers, in that order, overwriting any previous result. Cell colors are
// kept. The returned Diagnostics describe space that could not be
// distributed.
func (g *Grid) Generate() Diagnostics {
	d := Diagnostics{
		AvailableWidth:  g.bounds.Width - g.padding.Left - g.padding.Right,
		AvailableHeight: g.bounds.Height - g.padding.Top - g.padding.Bottom,
		RequestedWidth:  requestedSum(g.store.Columns()),
		RequestedHeight: requestedSum(g.store.Rows()),
	}
	d.ColumnSlack, d.ColumnsDegenerate = distribute(g.store.Columns(), d.AvailableWidth)
	d.RowSlack, d.RowsDegenerate = distribute(g.store.Rows(), d.AvailableHeight)

	g.resolveCoordinates()
	g.resolveCenters()

	g.generated = true
	g.diag = d
	return d
}

// distribute assigns every unspecified track an equal share of what is left
// of total after the explicit tracks. It returns the space left unassigned
// and whether there was no unspecified track to give it to.
func distribute(tracks []Track, total int) (slack int, degenerate bool) {
	remaining := total
	unspecified := 0
	for i := range tracks {
		if tracks[i].Requested != 0 {
			remaining -= tracks[i].Requested
		} else {
			unspecified++
		}
	}

	equal := 0
	if unspecified > 0 {
		equal = int(math.Round(float64(remaining) / float64(unspecified)))
	}

	sum := 0
	for i := range tracks {
		if tracks[i].Requested != 0 {
			tracks[i].Size = tracks[i].Requested
		} else {
			tracks[i].Size = equal
		}
		sum += tracks[i].Size
	}

	slack = total - sum
	return slack, unspecified == 0 && slack != 0
}

func requestedSum(tracks []Track) int {
	sum := 0
	for _, t := range tracks {
		sum += t.Requested
	}
	return sum
}

func (g *Grid) resolveCoordinates() {
	originX := g.bounds.X + g.padding.Left
	if g.mode == CoordinateCompat {
		originX = g.padding.Left
	}
	originY := g.bounds.Y + g.padding.Top

	columns := g.store.Columns()
	offset := originX
	for i := range columns {
		columns[i].Offset = offset
		offset += columns[i].Size
	}

	rows := g.store.Rows()
	offset = originY
	for i := range rows {
		rows[i].Offset = offset
		offset += rows[i].Size
	}

	cells := g.store.Cells()
	for r := range rows {
		for c := range columns {
			cell := &cells[r*g.columns+c]
			cell.Rect = Rect{
				X:      columns[c].Offset,
				Y:      rows[r].Offset,
				Width:  columns[c].Size,
				Height: rows[r].Size,
			}
		}
	}
}

func (g *Grid) resolveCenters() {
	cells := g.store.Cells()
	for i := range cells {
		cell := &cells[i]
		cell.Center = Point{
			X: cell.X + cell.Width/2,
			Y: cell.Y + cell.Height/2,
		}
	}
}

func (g *Grid) checkRow(row int) error {
	if row < 0 || row >= g.rows {
		return fmt.Errorf("row %d of %d: %w", row, g.rows, ErrOutOfRange)
	}
	return nil
}

func (g *Grid) checkColumn(column int) error {
	if column < 0 || column >= g.columns {
		return fmt.Errorf("column %d of %d: %w", column, g.columns, ErrOutOfRange)
	}
	return nil
}

func (g *Grid) cell(row, column int) (*Cell, error) {
	if err := g.checkRow(row); err != nil {
		return nil, err
	}
	if err := g.checkColumn(column); err != nil {
		return nil, err
	}
	return &g.store.Cells()[row*g.columns+column], nil
}
