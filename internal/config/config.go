// Package config parses grid.toml layout files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"

	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/grid"
)

// FileName is the layout file looked up by Load.
const FileName = "grid.toml"

// SchemaVersion is written by InitFile. Load accepts any 1.x schema.
const SchemaVersion = "1.0.0"

const supportedSchema = "^1"

// DefaultAccentColor is the default preview cursor color (indigo).
const DefaultAccentColor = "#7D56F4"

// Coordinate modes accepted in display.coordinates.
const (
	CoordinatesAbsolute = "absolute"
	CoordinatesCompat   = "compat"
)

// Storage strategies accepted in grid.storage.
const (
	StorageDynamic = "dynamic"
	StorageFixed   = "fixed"
)

// Snapshot backends accepted in snapshots.backend.
const (
	BackendJSONL  = "jsonl"
	BackendSQLite = "sqlite"
)

// Config is the top-level grid.toml configuration.
type Config struct {
	Schema    string          `toml:"schema"`
	Name      string          `toml:"name"`
	Display   DisplayConfig   `toml:"display"`
	Grid      GridConfig      `toml:"grid"`
	Cells     []CellConfig    `toml:"cells"`
	Preview   PreviewConfig   `toml:"preview"`
	Snapshots SnapshotsConfig `toml:"snapshots"`

	// Path is the file the config was loaded from; empty for Defaults.
	Path string `toml:"-"`
}

// DisplayConfig describes the physical panel.
type DisplayConfig struct {
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	Background  string `toml:"background"`
	Coordinates string `toml:"coordinates"`
}

// GridConfig places the table on the panel.
type GridConfig struct {
	X            int           `toml:"x"`
	Y            int           `toml:"y"`
	Width        int           `toml:"width"`
	Height       int           `toml:"height"`
	Rows         int           `toml:"rows"`
	Columns      int           `toml:"columns"`
	OutlineColor string        `toml:"outline_color"`
	FillColor    string        `toml:"fill_color"`
	TextColor    string        `toml:"text_color"`
	Storage      string        `toml:"storage"`
	Padding      PaddingConfig `toml:"padding"`
	RowSizes     []RowSize     `toml:"row"`
	ColumnSizes  []ColumnSize  `toml:"column"`
}

// PaddingConfig is the space kept free inside the grid box.
type PaddingConfig struct {
	Top    int `toml:"top"`
	Bottom int `toml:"bottom"`
	Left   int `toml:"left"`
	Right  int `toml:"right"`
}

// RowSize requests an explicit height for one row.
type RowSize struct {
	Index  int `toml:"index"`
	Height int `toml:"height"`
}

// ColumnSize requests an explicit width for one column.
type ColumnSize struct {
	Index int `toml:"index"`
	Width int `toml:"width"`
}

// CellConfig styles one cell. Empty colors fall back to the grid defaults.
type CellConfig struct {
	Row       int    `toml:"row"`
	Column    int    `toml:"column"`
	Text      string `toml:"text"`
	Fill      string `toml:"fill"`
	Outline   string `toml:"outline"`
	TextColor string `toml:"text_color"`
}

// PreviewConfig controls the terminal preview.
type PreviewConfig struct {
	ScaleX      int    `toml:"scale_x"` // display pixels per terminal column
	ScaleY      int    `toml:"scale_y"` // display pixels per terminal row
	AccentColor string `toml:"accent_color"`
}

// SnapshotsConfig selects where resolved geometry snapshots are kept.
type SnapshotsConfig struct {
	Backend string `toml:"backend"`
	Dir     string `toml:"dir"` // relative paths are resolved against the config file
}

// Defaults returns a 320x240 panel with a 3x3 grid filling it.
func Defaults() Config {
	return Config{
		Schema: SchemaVersion,
		Display: DisplayConfig{
			Width:       320,
			Height:      240,
			Background:  "black",
			Coordinates: CoordinatesAbsolute,
		},
		Grid: GridConfig{
			Width:        320,
			Height:       240,
			Rows:         3,
			Columns:      3,
			OutlineColor: "white",
			FillColor:    "navy",
			TextColor:    "white",
			Storage:      StorageDynamic,
		},
		Preview: PreviewConfig{
			ScaleX:      4,
			ScaleY:      8,
			AccentColor: DefaultAccentColor,
		},
		Snapshots: SnapshotsConfig{
			Backend: BackendJSONL,
			Dir:     ".tftgrid",
		},
	}
}

// Validate checks the configuration for problems that would otherwise
// surface as a broken layout. It returns all found issues joined together.
func (c *Config) Validate() error {
	var errs []error

	if c.Schema != "" {
		if err := checkSchema(c.Schema); err != nil {
			errs = append(errs, err)
		}
	}

	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		errs = append(errs, fmt.Errorf("display.width and display.height must be > 0"))
	}
	errs = appendColorErr(errs, "display.background", c.Display.Background)
	switch c.Display.Coordinates {
	case CoordinatesAbsolute, CoordinatesCompat:
	default:
		errs = append(errs, fmt.Errorf("display.coordinates must be %q or %q", CoordinatesAbsolute, CoordinatesCompat))
	}

	g := c.Grid
	if g.Rows < 1 || g.Columns < 1 {
		errs = append(errs, fmt.Errorf("grid.rows and grid.columns must be >= 1"))
	}
	if g.X < 0 || g.Y < 0 || g.Width < 0 || g.Height < 0 {
		errs = append(errs, fmt.Errorf("grid.x, grid.y, grid.width and grid.height must be >= 0"))
	}
	if c.Display.Width > 0 && g.X+g.Width > c.Display.Width {
		errs = append(errs, fmt.Errorf("grid.x + grid.width (%d) exceeds display.width (%d)", g.X+g.Width, c.Display.Width))
	}
	if c.Display.Height > 0 && g.Y+g.Height > c.Display.Height {
		errs = append(errs, fmt.Errorf("grid.y + grid.height (%d) exceeds display.height (%d)", g.Y+g.Height, c.Display.Height))
	}
	p := g.Padding
	if p.Top < 0 || p.Bottom < 0 || p.Left < 0 || p.Right < 0 {
		errs = append(errs, fmt.Errorf("grid.padding values must be >= 0"))
	}
	errs = appendColorErr(errs, "grid.outline_color", g.OutlineColor)
	errs = appendColorErr(errs, "grid.fill_color", g.FillColor)
	errs = appendColorErr(errs, "grid.text_color", g.TextColor)

	switch g.Storage {
	case StorageDynamic:
	case StorageFixed:
		if g.Rows > grid.MaxFixedRows || g.Columns > grid.MaxFixedColumns {
			errs = append(errs, fmt.Errorf("grid.storage %q holds at most %dx%d cells",
				StorageFixed, grid.MaxFixedRows, grid.MaxFixedColumns))
		}
	default:
		errs = append(errs, fmt.Errorf("grid.storage must be %q or %q", StorageDynamic, StorageFixed))
	}

	seen := make(map[int]bool)
	for i, r := range g.RowSizes {
		switch {
		case r.Index < 0 || r.Index >= g.Rows:
			errs = append(errs, fmt.Errorf("grid.row[%d]: index %d out of range (rows = %d)", i, r.Index, g.Rows))
		case seen[r.Index]:
			errs = append(errs, fmt.Errorf("grid.row[%d]: row %d sized twice", i, r.Index))
		}
		if r.Height < 0 {
			errs = append(errs, fmt.Errorf("grid.row[%d]: height must be >= 0 (0 = distribute)", i))
		}
		seen[r.Index] = true
	}
	seen = make(map[int]bool)
	for i, col := range g.ColumnSizes {
		switch {
		case col.Index < 0 || col.Index >= g.Columns:
			errs = append(errs, fmt.Errorf("grid.column[%d]: index %d out of range (columns = %d)", i, col.Index, g.Columns))
		case seen[col.Index]:
			errs = append(errs, fmt.Errorf("grid.column[%d]: column %d sized twice", i, col.Index))
		}
		if col.Width < 0 {
			errs = append(errs, fmt.Errorf("grid.column[%d]: width must be >= 0 (0 = distribute)", i))
		}
		seen[col.Index] = true
	}

	cells := make(map[[2]int]bool)
	for i, cell := range c.Cells {
		key := [2]int{cell.Row, cell.Column}
		switch {
		case cell.Row < 0 || cell.Row >= g.Rows || cell.Column < 0 || cell.Column >= g.Columns:
			errs = append(errs, fmt.Errorf("cells[%d]: (%d, %d) is outside the %dx%d grid", i, cell.Row, cell.Column, g.Rows, g.Columns))
		case cells[key]:
			errs = append(errs, fmt.Errorf("cells[%d]: (%d, %d) configured twice", i, cell.Row, cell.Column))
		}
		cells[key] = true
		errs = appendOptionalColorErr(errs, fmt.Sprintf("cells[%d].fill", i), cell.Fill)
		errs = appendOptionalColorErr(errs, fmt.Sprintf("cells[%d].outline", i), cell.Outline)
		errs = appendOptionalColorErr(errs, fmt.Sprintf("cells[%d].text_color", i), cell.TextColor)
	}

	if c.Preview.ScaleX < 1 || c.Preview.ScaleY < 1 {
		errs = append(errs, fmt.Errorf("preview.scale_x and preview.scale_y must be >= 1"))
	}
	errs = appendColorErr(errs, "preview.accent_color", c.Preview.AccentColor)

	switch c.Snapshots.Backend {
	case BackendJSONL, BackendSQLite:
	default:
		errs = append(errs, fmt.Errorf("snapshots.backend must be %q or %q", BackendJSONL, BackendSQLite))
	}
	if c.Snapshots.Dir == "" {
		errs = append(errs, fmt.Errorf("snapshots.dir must not be empty"))
	}

	return errors.Join(errs...)
}

func checkSchema(s string) error {
	v, err := semver.NewVersion(s)
	if err != nil {
		return fmt.Errorf("schema %q is not a semantic version", s)
	}
	constraint, err := semver.NewConstraint(supportedSchema)
	if err != nil {
		return fmt.Errorf("schema constraint %q: %w", supportedSchema, err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("schema %s is not supported (want %s)", v, supportedSchema)
	}
	return nil
}

func appendColorErr(errs []error, key, value string) []error {
	if _, err := grid.ParseColor(value); err != nil {
		return append(errs, fmt.Errorf("%s must be a color (\"#RRGGBB\", \"0xF800\" or a name like \"navy\"), got %q", key, value))
	}
	return errs
}

func appendOptionalColorErr(errs []error, key, value string) []error {
	if value == "" {
		return errs
	}
	return appendColorErr(errs, key, value)
}

// Color parses value, returning fallback when value is empty.
func Color(value string, fallback grid.Color) (grid.Color, error) {
	if value == "" {
		return fallback, nil
	}
	c, err := grid.ParseColor(value)
	if err != nil {
		return 0, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

// SnapshotDir returns snapshots.dir, resolved against the directory of the
// loaded file when relative.
func (c *Config) SnapshotDir() string {
	if filepath.IsAbs(c.Snapshots.Dir) || c.Path == "" {
		return c.Snapshots.Dir
	}
	return filepath.Join(filepath.Dir(c.Path), c.Snapshots.Dir)
}

// Load reads grid.toml from the given path. If path is empty, it walks up
// from the current working directory looking for grid.toml. Returns an error
// if the file contains unknown keys (likely typos). The result is not
// validated; call Validate.
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := findConfig()
		if err != nil {
			return nil, err
		}
		path = found
	}

	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %s (possible typos?)", path, strings.Join(keys, ", "))
	}

	cfg.Path = path
	if cfg.Name == "" {
		cfg.Name = defaultName(path)
	}
	return &cfg, nil
}

// defaultName names a layout after its file, or after its directory when
// the file has the default name.
func defaultName(path string) string {
	base := filepath.Base(path)
	if base == FileName {
		abs, err := filepath.Abs(path)
		if err != nil {
			return strings.TrimSuffix(base, filepath.Ext(base))
		}
		return filepath.Base(filepath.Dir(abs))
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// findConfig walks up from the current directory looking for grid.toml.
func findConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("config: get working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("config: %s not found (searched up from %s)", FileName, dir)
		}
		dir = parent
	}
}

// InitFile writes a sample grid.toml to the given directory.
func InitFile(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config: %s already exists at %s", FileName, path)
	}
	if err := os.WriteFile(path, []byte(template), 0644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}

const template = `# grid.toml: TFT grid layout
schema = "1.0.0"
name = ""  # defaults to the directory name

[display]
width = 320
height = 240
background = "black"
coordinates = "absolute"  # "compat" drops grid.x from cell x like the old firmware

[grid]
x = 0
y = 0
width = 320
height = 240
rows = 4
columns = 3
outline_color = "white"
fill_color = "navy"
text_color = "white"
storage = "dynamic"  # "fixed" keeps up to 32x32 cells in static arrays

[grid.padding]
top = 4
bottom = 4
left = 4
right = 4

# Explicit sizes; every other row and column shares the remaining space.
[[grid.row]]
index = 0
height = 32

[[grid.column]]
index = 0
width = 96

[[cells]]
row = 0
column = 0
text = "TFT"
fill = "darkcyan"

[[cells]]
row = 0
column = 1
text = "GRID"
fill = "darkcyan"

[[cells]]
row = 0
column = 2
text = "v1"
fill = "darkcyan"
text_color = "yellow"

[preview]
scale_x = 4  # display pixels per terminal column
scale_y = 8  # display pixels per terminal row
accent_color = "#7D56F4"

[snapshots]
backend = "jsonl"  # or "sqlite"
dir = ".tftgrid"
`
