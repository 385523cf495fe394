package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/glebarez/sqlite"
)

// SQLiteFile is the database file name used inside the store directory.
const SQLiteFile = "snapshots.db"

// SQLite is a Store backed by a SQLite database. Summary columns are kept
// in the table for listing; the full snapshot is stored as JSON.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) snapshots.db in dir.
func NewSQLite(dir string) (*SQLite, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("store: mkdir %q: %w", dir, err)
	}
	path := filepath.Join(dir, SQLiteFile)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", path, err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: enable wal: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		row_count INTEGER NOT NULL,
		column_count INTEGER NOT NULL,
		cell_count INTEGER NOT NULL,
		body TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_name ON snapshots(name, id DESC);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("store: create tables: %w", err)
	}
	return nil
}

// Save inserts s and returns it with the database ID.
func (s *SQLite) Save(snap Snapshot) (Snapshot, error) {
	if snap.CreatedAt.IsZero() {
		snap.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return Snapshot{}, fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO snapshots (name, created_at, row_count, column_count, cell_count, body) VALUES (?, ?, ?, ?, ?, '')`,
		snap.Name, snap.CreatedAt.UnixNano(), len(snap.Rows), len(snap.Columns), len(snap.Cells),
	)
	if err != nil {
		return Snapshot{}, fmt.Errorf("store: insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Snapshot{}, fmt.Errorf("store: insert id: %w", err)
	}
	snap.ID = id

	body, err := json.Marshal(snap)
	if err != nil {
		return Snapshot{}, fmt.Errorf("store: marshal: %w", err)
	}
	if _, err := tx.Exec(`UPDATE snapshots SET body = ? WHERE id = ?`, string(body), id); err != nil {
		return Snapshot{}, fmt.Errorf("store: update body: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return Snapshot{}, fmt.Errorf("store: commit: %w", err)
	}
	return snap, nil
}

// List returns summaries of all snapshots in save order.
func (s *SQLite) List() ([]Summary, error) {
	rows, err := s.db.Query(`SELECT id, name, created_at, row_count, column_count, cell_count FROM snapshots ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		var ts int64
		if err := rows.Scan(&sum.ID, &sum.Name, &ts, &sum.Rows, &sum.Columns, &sum.Cells); err != nil {
			return nil, fmt.Errorf("store: scan: %w", err)
		}
		sum.CreatedAt = time.Unix(0, ts).UTC()
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	return out, nil
}

// Get returns the snapshot with the given ID.
func (s *SQLite) Get(id int64) (Snapshot, error) {
	return s.one(fmt.Sprintf("snapshot %d", id), `SELECT body FROM snapshots WHERE id = ?`, id)
}

// Latest returns the newest snapshot saved under name.
func (s *SQLite) Latest(name string) (Snapshot, error) {
	return s.one(fmt.Sprintf("latest %q", name),
		`SELECT body FROM snapshots WHERE name = ? ORDER BY id DESC LIMIT 1`, name)
}

func (s *SQLite) one(what, query string, arg any) (Snapshot, error) {
	var body string
	err := s.db.QueryRow(query, arg).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, fmt.Errorf("store: %s: %w", what, ErrNotFound)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("store: %s: %w", what, err)
	}
	var snap Snapshot
	if err := json.Unmarshal([]byte(body), &snap); err != nil {
		return Snapshot{}, fmt.Errorf("store: decode %s: %w", what, err)
	}
	return snap, nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
