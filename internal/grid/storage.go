package grid

import "fmt"

// Track is one row or one column of the grid.
type Track struct {
	Requested int // explicit size in pixels; 0 = distribute evenly
	Size      int // resolved size
	Offset    int // resolved position of the leading edge
}

// Cell holds the resolved geometry and style of one grid cell.
type Cell struct {
	Rect
	Center  Point
	Fill    Color
	Outline Color
}

// Storage owns the track and cell buffers of a Grid. Cells are laid out
// row-major in a single slice: cell (r, c) is Cells()[r*columns+c].
//
// Implementations differ only in where the memory comes from; the
// resolution algorithm is the same for all of them.
type Storage interface {
	// Reset sizes the buffers for rows × columns and zeroes them.
	Reset(rows, columns int) error
	Rows() []Track
	Columns() []Track
	Cells() []Cell
}

// SliceStorage allocates its buffers on the heap on every Reset.
type SliceStorage struct {
	rows    []Track
	columns []Track
	cells   []Cell
}

// NewSliceStorage returns an empty dynamic storage.
func NewSliceStorage() *SliceStorage {
	return &SliceStorage{}
}

func (s *SliceStorage) Reset(rows, columns int) error {
	s.rows = make([]Track, rows)
	s.columns = make([]Track, columns)
	s.cells = make([]Cell, rows*columns)
	return nil
}

func (s *SliceStorage) Rows() []Track { return s.rows }
func (s *SliceStorage) Columns() []Track { return s.columns }
func (s *SliceStorage) Cells() []Cell { return s.cells }

// Capacity of FixedStorage.
const (
	MaxFixedRows    = 32
	MaxFixedColumns = 32
)

// FixedStorage keeps its buffers in fixed-size arrays so a grid can live
// in a package-level variable and never touch the heap. The zero value is
// ready to use.
type FixedStorage struct {
	rows    [MaxFixedRows]Track
	columns [MaxFixedColumns]Track
	cells   [MaxFixedRows * MaxFixedColumns]Cell
	nrows   int
	ncols   int
}

func (s *FixedStorage) Reset(rows, columns int) error {
	if rows > MaxFixedRows || columns > MaxFixedColumns {
		return fmt.Errorf("grid: fixed storage holds %dx%d, need %dx%d: %w",
			MaxFixedRows, MaxFixedColumns, rows, columns, ErrCapacity)
	}
	*s = FixedStorage{nrows: rows, ncols: columns}
	return nil
}

func (s *FixedStorage) Rows() []Track { return s.rows[:s.nrows] }
func (s *FixedStorage) Columns() []Track { return s.columns[:s.ncols] }
func (s *FixedStorage) Cells() []Cell { return s.cells[:s.nrows*s.ncols] }
