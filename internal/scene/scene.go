// Package scene turns a grid.toml configuration into a generated Grid on a
// surface and renders it.
package scene

import (
	"fmt"
	"time"

	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/config"
	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/grid"
	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/store"
)

// Text is a label drawn at the center of one cell.
type Text struct {
	Row, Column int
	Value       string
	Color       grid.Color
}

// Scene is a configured, generated grid plus the text it carries.
type Scene struct {
	cfg        *config.Config
	grid       *grid.Grid
	texts      []Text
	background grid.Color
}

// Build validates cfg, creates the grid on surface, applies padding,
// explicit sizes and cell styles, and generates the geometry.
func Build(cfg *config.Config, surface grid.Surface) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scene: invalid config: %w", err)
	}

	background, err := config.Color(cfg.Display.Background, grid.Black)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	outline, err := config.Color(cfg.Grid.OutlineColor, grid.White)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	fill, err := config.Color(cfg.Grid.FillColor, grid.Black)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	textColor, err := config.Color(cfg.Grid.TextColor, grid.DefaultTextColor)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	opts := []grid.Option{grid.WithCoordinateMode(coordinateMode(cfg.Display.Coordinates))}
	if cfg.Grid.Storage == config.StorageFixed {
		opts = append(opts, grid.WithStorage(&grid.FixedStorage{}))
	}

	bounds := grid.Rect{X: cfg.Grid.X, Y: cfg.Grid.Y, Width: cfg.Grid.Width, Height: cfg.Grid.Height}
	g, err := grid.New(surface, bounds, cfg.Grid.Rows, cfg.Grid.Columns, outline, fill, opts...)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	p := cfg.Grid.Padding
	if err := g.SetPadding(grid.Padding{Top: p.Top, Bottom: p.Bottom, Left: p.Left, Right: p.Right}); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	for _, r := range cfg.Grid.RowSizes {
		if err := g.SetRowHeight(r.Index, r.Height); err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
	}
	for _, c := range cfg.Grid.ColumnSizes {
		if err := g.SetColumnWidth(c.Index, c.Width); err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
	}

	s := &Scene{cfg: cfg, grid: g, background: background}
	for _, c := range cfg.Cells {
		if err := s.applyCell(c, textColor); err != nil {
			return nil, fmt.Errorf("scene: cell (%d, %d): %w", c.Row, c.Column, err)
		}
	}

	g.Generate()
	return s, nil
}

func (s *Scene) applyCell(c config.CellConfig, defaultText grid.Color) error {
	if c.Fill != "" {
		fill, err := config.Color(c.Fill, 0)
		if err != nil {
			return err
		}
		if err := s.grid.SetCellFillColor(c.Row, c.Column, fill); err != nil {
			return err
		}
	}
	if c.Outline != "" {
		outline, err := config.Color(c.Outline, 0)
		if err != nil {
			return err
		}
		if err := s.grid.SetCellOutlineColor(c.Row, c.Column, outline); err != nil {
			return err
		}
	}
	if c.Text == "" {
		return nil
	}
	color, err := config.Color(c.TextColor, defaultText)
	if err != nil {
		return err
	}
	s.texts = append(s.texts, Text{Row: c.Row, Column: c.Column, Value: c.Text, Color: color})
	return nil
}

func coordinateMode(s string) grid.CoordinateMode {
	if s == config.CoordinatesCompat {
		return grid.CoordinateCompat
	}
	return grid.CoordinateAbsolute
}

// Render draws every cell, then every configured text. It does not clear
// the surface; use Background for that.
func (s *Scene) Render() error {
	if err := s.grid.Draw(); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	for _, t := range s.texts {
		if err := s.grid.DrawCellText(t.Row, t.Column, t.Value, t.Color); err != nil {
			return fmt.Errorf("scene: %w", err)
		}
	}
	return nil
}

// Grid returns the generated grid.
func (s *Scene) Grid() *grid.Grid { return s.grid }

// Config returns the configuration the scene was built from.
func (s *Scene) Config() *config.Config { return s.cfg }

// Background returns the display background color.
func (s *Scene) Background() grid.Color { return s.background }

// Texts returns the configured cell labels in config order.
func (s *Scene) Texts() []Text { return append([]Text(nil), s.texts...) }

// Text returns the label of one cell, if any.
func (s *Scene) Text(row, column int) (Text, bool) {
	for _, t := range s.texts {
		if t.Row == row && t.Column == column {
			return t, true
		}
	}
	return Text{}, false
}

// Diagnostics returns the result of the scene's Generate.
func (s *Scene) Diagnostics() grid.Diagnostics { return s.grid.Diagnostics() }

// Snapshot captures the resolved geometry for the store. name defaults to
// the config name.
func (s *Scene) Snapshot(name string) store.Snapshot {
	if name == "" {
		name = s.cfg.Name
	}
	snap := store.Snapshot{
		Name:        name,
		Source:      s.cfg.Path,
		CreatedAt:   time.Now().UTC(),
		Coordinates: s.grid.CoordinateMode().String(),
		Columns:     trackRecords(s.grid.ColumnTracks()),
		Rows:        trackRecords(s.grid.RowTracks()),
	}
	for _, c := range s.grid.Cells() {
		rec := store.CellRecord{
			Row:     c.Row,
			Column:  c.Column,
			X:       c.Rect.X,
			Y:       c.Rect.Y,
			Width:   c.Rect.Width,
			Height:  c.Rect.Height,
			CenterX: c.Center.X,
			CenterY: c.Center.Y,
			Fill:    c.Fill.String(),
			Outline: c.Outline.String(),
		}
		if t, ok := s.Text(c.Row, c.Column); ok {
			rec.Text = t.Value
		}
		snap.Cells = append(snap.Cells, rec)
	}
	return snap
}

func trackRecords(tracks []grid.Track) []store.TrackRecord {
	out := make([]store.TrackRecord, len(tracks))
	for i, t := range tracks {
		out[i] = store.TrackRecord{Index: i, Requested: t.Requested, Size: t.Size, Offset: t.Offset}
	}
	return out
}
