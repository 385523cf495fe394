// Package store persists snapshots of resolved grid geometry and reads them
// back for listing and diffing. Two backends share the Store interface: an
// append-only JSONL file and a SQLite database.
package store

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when no snapshot matches a lookup.
var ErrNotFound = errors.New("snapshot not found")

// Writer persists snapshots to durable storage.
type Writer interface {
	// Save stores s and returns it with ID and CreatedAt filled in.
	Save(s Snapshot) (Snapshot, error)
	Close() error
}

// Reader retrieves saved snapshots.
type Reader interface {
	List() ([]Summary, error)
	Get(id int64) (Snapshot, error)
	Latest(name string) (Snapshot, error)
}

// Store combines Writer and Reader into a single handle.
type Store interface {
	Writer
	Reader
}

// Snapshot is the resolved geometry of one grid at one point in time.
type Snapshot struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Source      string        `json:"source,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	Coordinates string        `json:"coordinates"`
	Columns     []TrackRecord `json:"columns"`
	Rows        []TrackRecord `json:"rows"`
	Cells       []CellRecord  `json:"cells"`
}

// TrackRecord is one resolved row or column.
type TrackRecord struct {
	Index     int `json:"index"`
	Requested int `json:"requested"`
	Size      int `json:"size"`
	Offset    int `json:"offset"`
}

// CellRecord is one resolved cell. Colors are RGB565 strings ("0xF800").
type CellRecord struct {
	Row     int    `json:"row"`
	Column  int    `json:"column"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	CenterX int    `json:"center_x"`
	CenterY int    `json:"center_y"`
	Fill    string `json:"fill"`
	Outline string `json:"outline"`
	Text    string `json:"text,omitempty"`
}

// Summary describes a saved snapshot without its geometry.
type Summary struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	Rows      int
	Columns   int
	Cells     int
}

func (s Snapshot) summary() Summary {
	return Summary{
		ID:        s.ID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
		Rows:      len(s.Rows),
		Columns:   len(s.Columns),
		Cells:     len(s.Cells),
	}
}

// Backends accepted by Open.
const (
	BackendJSONL  = "jsonl"
	BackendSQLite = "sqlite"
)

// Open returns the store for backend, kept in dir.
func Open(backend, dir string) (Store, error) {
	switch backend {
	case BackendJSONL, "":
		return NewJSONL(dir)
	case BackendSQLite:
		return NewSQLite(dir)
	default:
		return nil, fmt.Errorf("store: unknown backend %q", backend)
	}
}
