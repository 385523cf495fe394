package grid

import "fmt"

// Draw paints every cell in row-major order: the fill first, then the
// outline over the same rectangle.
func (g *Grid) Draw() error {
	if !g.generated {
		return fmt.Errorf("grid: draw: %w", ErrNotGenerated)
	}
	cells := g.store.Cells()
	for i := range cells {
		g.paint(&cells[i])
	}
	return nil
}

// RedrawCell repaints the fill and outline of a single cell.
func (g *Grid) RedrawCell(row, column int) error {
	c, err := g.drawable(row, column)
	if err != nil {
		return fmt.Errorf("grid: redraw cell: %w", err)
	}
	g.paint(c)
	return nil
}

// DrawCellText draws text centered in the cell using color.
func (g *Grid) DrawCellText(row, column int, text string, color Color) error {
	c, err := g.drawable(row, column)
	if err != nil {
		return fmt.Errorf("grid: draw cell text: %w", err)
	}
	g.surface.DrawText(text, c.Center.X, c.Center.Y, color)
	return nil
}

// DrawCellOutline redraws only the border of one cell, leaving its fill and
// text untouched.
func (g *Grid) DrawCellOutline(row, column int) error {
	c, err := g.drawable(row, column)
	if err != nil {
		return fmt.Errorf("grid: draw cell outline: %w", err)
	}
	g.surface.DrawRect(c.X, c.Y, c.Width, c.Height, c.Outline)
	return nil
}

// EraseCell fills the cell interior, 1px inside the outline, with the
// cell's fill color. Cells without an interior are left alone.
func (g *Grid) EraseCell(row, column int) error {
	c, err := g.drawable(row, column)
	if err != nil {
		return fmt.Errorf("grid: erase cell: %w", err)
	}
	if c.Width <= 2 || c.Height <= 2 {
		return nil
	}
	g.surface.FillRect(c.X+1, c.Y+1, c.Width-2, c.Height-2, c.Fill)
	return nil
}

func (g *Grid) paint(c *Cell) {
	g.surface.FillRect(c.X, c.Y, c.Width, c.Height, c.Fill)
	g.surface.DrawRect(c.X, c.Y, c.Width, c.Height, c.Outline)
}

func (g *Grid) drawable(row, column int) (*Cell, error) {
	if !g.generated {
		return nil, ErrNotGenerated
	}
	return g.cell(row, column)
}
