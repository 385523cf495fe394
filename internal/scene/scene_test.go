package scene

import (
	"testing"

	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/config"
	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/grid"
	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/surface/canvas"
)

// testConfig is a 200x100 display with a 2x2 grid: 10px side padding, a
// 60px first column and a styled first cell.
func testConfig() *config.Config {
	cfg := config.Defaults()
	cfg.Name = "test"
	cfg.Display.Width, cfg.Display.Height = 200, 100
	cfg.Grid.Width, cfg.Grid.Height = 200, 100
	cfg.Grid.Rows, cfg.Grid.Columns = 2, 2
	cfg.Grid.Padding = config.PaddingConfig{Left: 10, Right: 10}
	cfg.Grid.ColumnSizes = []config.ColumnSize{{Index: 0, Width: 60}}
	cfg.Cells = []config.CellConfig{
		{Row: 0, Column: 0, Text: "A", Fill: "red"},
		{Row: 1, Column: 1, Outline: "yellow"},
	}
	return &cfg
}

func mustCanvas(t *testing.T) *canvas.Canvas {
	t.Helper()
	c, err := canvas.New(200, 100, grid.Black)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func mustBuild(t *testing.T, cfg *config.Config, s grid.Surface) *Scene {
	t.Helper()
	sc, err := Build(cfg, s)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return sc
}

func TestBuild_Geometry(t *testing.T) {
	sc := mustBuild(t, testConfig(), mustCanvas(t))
	g := sc.Grid()

	if !g.Generated() {
		t.Fatal("Build did not generate")
	}
	if got := g.ColumnWidths(); got[0] != 60 || got[1] != 120 {
		t.Errorf("column widths = %v, want [60 120]", got)
	}
	if got := g.RowHeights(); got[0] != 50 || got[1] != 50 {
		t.Errorf("row heights = %v, want [50 50]", got)
	}
	cell, err := g.Cell(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if cell.Rect != (grid.Rect{X: 70, Y: 50, Width: 120, Height: 50}) {
		t.Errorf("cell (1,1) = %+v", cell.Rect)
	}
	if cell.Outline != grid.Yellow || cell.Fill != grid.Navy {
		t.Errorf("cell (1,1) colors = %v/%v, want Yellow/Navy", cell.Outline, cell.Fill)
	}
	first, _ := g.Cell(0, 0)
	if first.Fill != grid.Red || first.Outline != grid.White {
		t.Errorf("cell (0,0) colors = %v/%v, want Red/White", first.Fill, first.Outline)
	}
	if !sc.Diagnostics().OK() {
		t.Errorf("unexpected warnings: %v", sc.Diagnostics().Warnings())
	}
	if sc.Background() != grid.Black {
		t.Errorf("Background = %v", sc.Background())
	}
}

func TestBuild_Texts(t *testing.T) {
	cfg := testConfig()
	cfg.Cells = append(cfg.Cells, config.CellConfig{Row: 1, Column: 0, Text: "B", TextColor: "#00FF00"})
	sc := mustBuild(t, cfg, mustCanvas(t))

	texts := sc.Texts()
	if len(texts) != 2 {
		t.Fatalf("Texts = %+v, want 2", texts)
	}
	if texts[0] != (Text{Row: 0, Column: 0, Value: "A", Color: grid.White}) {
		t.Errorf("texts[0] = %+v", texts[0])
	}
	if texts[1].Color != grid.Green {
		t.Errorf("texts[1].Color = %v, want Green", texts[1].Color)
	}
	if _, ok := sc.Text(1, 1); ok {
		t.Error("Text(1,1) found a label on an unlabeled cell")
	}
}

func TestBuild_InvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Grid.Rows = 0
	if _, err := Build(cfg, mustCanvas(t)); err == nil {
		t.Error("Build with zero rows succeeded")
	}
	if _, err := Build(testConfig(), nil); err == nil {
		t.Error("Build with nil surface succeeded")
	}
}

func TestBuild_FixedStorageMatchesDynamic(t *testing.T) {
	dynamic := mustBuild(t, testConfig(), mustCanvas(t))
	cfg := testConfig()
	cfg.Grid.Storage = config.StorageFixed
	fixed := mustBuild(t, cfg, mustCanvas(t))

	a, b := dynamic.Grid().Cells(), fixed.Grid().Cells()
	if len(a) != len(b) {
		t.Fatalf("cell counts %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("cell %d: dynamic %+v, fixed %+v", i, a[i], b[i])
		}
	}
}

func TestBuild_CompatCoordinates(t *testing.T) {
	cfg := testConfig()
	cfg.Grid.X, cfg.Grid.Width = 20, 180
	cfg.Grid.Y, cfg.Grid.Height = 10, 90
	cfg.Display.Coordinates = config.CoordinatesCompat
	sc := mustBuild(t, cfg, mustCanvas(t))

	cell, _ := sc.Grid().Cell(0, 0)
	if cell.Rect.X != 10 || cell.Rect.Y != 10 {
		t.Errorf("compat cell (0,0) at (%d,%d), want (10,10)", cell.Rect.X, cell.Rect.Y)
	}
}

func TestBuild_OverflowIsReported(t *testing.T) {
	cfg := testConfig()
	cfg.Grid.ColumnSizes = []config.ColumnSize{{Index: 0, Width: 150}, {Index: 1, Width: 100}}
	sc := mustBuild(t, cfg, mustCanvas(t))

	d := sc.Diagnostics()
	if !d.ColumnOverflow() || d.OK() {
		t.Errorf("Diagnostics = %+v, want column overflow", d)
	}
	if d.ColumnSlack != -70 {
		t.Errorf("ColumnSlack = %d, want -70", d.ColumnSlack)
	}
}

func TestRender(t *testing.T) {
	c := mustCanvas(t)
	sc := mustBuild(t, testConfig(), c)
	if err := sc.Render(); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		x, y int
		want grid.Color
	}{
		{"cell (0,0) fill", 14, 5, grid.Red},
		{"cell (1,1) fill", 130, 75, grid.Navy},
		{"cell (1,1) outline", 70, 75, grid.Yellow},
		{"cell (0,1) outline", 70, 25, grid.White},
		{"left padding untouched", 5, 50, grid.Black},
	}
	for _, tt := range tests {
		if got, _ := c.Pixel(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: pixel(%d,%d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}

	// The "A" label is drawn in white around the center of cell (0,0).
	found := false
	for y := 15; y < 35 && !found; y++ {
		for x := 30; x < 50; x++ {
			if p, _ := c.Pixel(x, y); p == grid.White {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no text pixels near the center of cell (0,0)")
	}
}

func TestSnapshot(t *testing.T) {
	cfg := testConfig()
	cfg.Path = "/layouts/grid.toml"
	sc := mustBuild(t, cfg, mustCanvas(t))

	snap := sc.Snapshot("")
	if snap.Name != "test" || snap.Source != "/layouts/grid.toml" || snap.Coordinates != "absolute" {
		t.Errorf("snapshot header = %q %q %q", snap.Name, snap.Source, snap.Coordinates)
	}
	if snap.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
	if len(snap.Columns) != 2 || len(snap.Rows) != 2 || len(snap.Cells) != 4 {
		t.Fatalf("snapshot shape = %d cols, %d rows, %d cells", len(snap.Columns), len(snap.Rows), len(snap.Cells))
	}
	col := snap.Columns[0]
	if col.Index != 0 || col.Requested != 60 || col.Size != 60 || col.Offset != 10 {
		t.Errorf("column 0 = %+v", col)
	}
	if snap.Columns[1].Requested != 0 || snap.Columns[1].Offset != 70 {
		t.Errorf("column 1 = %+v", snap.Columns[1])
	}
	first := snap.Cells[0]
	if first.Text != "A" || first.Fill != "0xF800" || first.CenterX != 40 || first.CenterY != 25 {
		t.Errorf("cell 0 = %+v", first)
	}
	if snap.Cells[3].Row != 1 || snap.Cells[3].Column != 1 || snap.Cells[3].Text != "" {
		t.Errorf("cell 3 = %+v", snap.Cells[3])
	}

	if named := sc.Snapshot("release"); named.Name != "release" {
		t.Errorf("Snapshot(release).Name = %q", named.Name)
	}
}
