package grid

import "fmt"

// CellInfo is a read-only view of one resolved cell.
type CellInfo struct {
	Row, Column int
	Rect        Rect
	Center      Point
	Fill        Color
	Outline     Color
}

// X returns the table origin x plus the left padding.
func (g *Grid) X() int { return g.bounds.X + g.padding.Left }

// Y returns the table origin y plus the top padding.
func (g *Grid) Y() int { return g.bounds.Y + g.padding.Top }

// Width returns the sum of resolved column widths. Padding is not included;
// use OuterWidth for the padded size.
func (g *Grid) Width() int {
	w := 0
	for _, c := range g.store.Columns() {
		w += c.Size
	}
	return w
}

// Height returns the sum of resolved row heights, without padding.
func (g *Grid) Height() int {
	h := 0
	for _, r := range g.store.Rows() {
		h += r.Size
	}
	return h
}

// OuterWidth is Width plus left and right padding.
func (g *Grid) OuterWidth() int { return g.Width() + g.padding.Left + g.padding.Right }

// OuterHeight is Height plus top and bottom padding.
func (g *Grid) OuterHeight() int { return g.Height() + g.padding.Top + g.padding.Bottom }

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Columns() int { return g.columns }
func (g *Grid) Padding() Padding { return g.padding }
func (g *Grid) Bounds() Rect { return g.bounds }
func (g *Grid) CoordinateMode() CoordinateMode { return g.mode }

// Generated reports whether Generate has run at least once.
func (g *Grid) Generated() bool { return g.generated }

// Diagnostics returns the result of the last Generate.
func (g *Grid) Diagnostics() Diagnostics { return g.diag }

// ColumnWidth returns the resolved width of column.
func (g *Grid) ColumnWidth(column int) (int, error) {
	if err := g.checkColumn(column); err != nil {
		return 0, fmt.Errorf("grid: column width: %w", err)
	}
	return g.store.Columns()[column].Size, nil
}

// RowHeight returns the resolved height of row.
func (g *Grid) RowHeight(row int) (int, error) {
	if err := g.checkRow(row); err != nil {
		return 0, fmt.Errorf("grid: row height: %w", err)
	}
	return g.store.Rows()[row].Size, nil
}

// ColumnWidths returns a copy of all resolved column widths.
func (g *Grid) ColumnWidths() []int {
	return sizes(g.store.Columns())
}

// RowHeights returns a copy of all resolved row heights.
func (g *Grid) RowHeights() []int {
	return sizes(g.store.Rows())
}

// ColumnTracks returns a copy of every column: requested size, resolved size
// and offset.
func (g *Grid) ColumnTracks() []Track {
	return append([]Track(nil), g.store.Columns()...)
}

// RowTracks returns a copy of every row.
func (g *Grid) RowTracks() []Track {
	return append([]Track(nil), g.store.Rows()...)
}

func sizes(tracks []Track) []int {
	out := make([]int, len(tracks))
	for i, t := range tracks {
		out[i] = t.Size
	}
	return out
}

// Cell returns the geometry and colors of one cell.
func (g *Grid) Cell(row, column int) (CellInfo, error) {
	c, err := g.cell(row, column)
	if err != nil {
		return CellInfo{}, fmt.Errorf("grid: cell: %w", err)
	}
	return g.info(row, column, c), nil
}

// Cells returns every cell in row-major order.
func (g *Grid) Cells() []CellInfo {
	cells := g.store.Cells()
	out := make([]CellInfo, 0, len(cells))
	for i := range cells {
		out = append(out, g.info(i/g.columns, i%g.columns, &cells[i]))
	}
	return out
}

// CellAt returns the row and column of the cell containing pixel (px, py).
// ok is false when the pixel falls outside every cell or the grid has not
// been generated.
func (g *Grid) CellAt(px, py int) (row, column int, ok bool) {
	if !g.generated {
		return 0, 0, false
	}
	cells := g.store.Cells()
	for i := range cells {
		if cells[i].Contains(px, py) {
			return i / g.columns, i % g.columns, true
		}
	}
	return 0, 0, false
}

func (g *Grid) info(row, column int, c *Cell) CellInfo {
	return CellInfo{
		Row:     row,
		Column:  column,
		Rect:    c.Rect,
		Center:  c.Center,
		Fill:    c.Fill,
		Outline: c.Outline,
	}
}
