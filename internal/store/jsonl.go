package store

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// JSONLFile is the file name used inside the store directory.
const JSONLFile = "snapshots.jsonl"

// JSONL is a Store backed by an append-only JSONL file. Each line is one
// JSON-serialized Snapshot. The file is synced after every Save.
type JSONL struct {
	file *os.File
	mu   sync.Mutex
	idx  *fileIndex
	pos  int64 // current write position in the file
}

// NewJSONL opens (or creates) snapshots.jsonl in dir and indexes the
// snapshots already in it. dir is created with os.MkdirAll if it does not
// exist. A torn last line left by an interrupted write is truncated away.
func NewJSONL(dir string) (*JSONL, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("store: mkdir %q: %w", dir, err)
	}
	path := filepath.Join(dir, JSONLFile)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", path, err)
	}
	j := &JSONL{file: f, idx: newFileIndex()}
	if err := j.load(); err != nil {
		_ = f.Close()
		return nil, err
	}
	return j, nil
}

// load rebuilds the index from the file and positions the writer at the
// end of the last complete line.
func (j *JSONL) load() error {
	if _, err := j.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("store: seek: %w", err)
	}
	r := bufio.NewReader(j.file)
	var offset int64
	for {
		line, err := r.ReadBytes('\n')
		if errors.Is(err, io.EOF) {
			if len(line) > 0 {
				log.Printf("store: truncating incomplete line at offset %d", offset)
				if terr := j.file.Truncate(offset); terr != nil {
					return fmt.Errorf("store: truncate: %w", terr)
				}
			}
			break
		}
		if err != nil {
			return fmt.Errorf("store: read: %w", err)
		}
		lineLen := int64(len(line))
		var s Snapshot
		if uerr := json.Unmarshal(bytes.TrimSpace(line), &s); uerr != nil || s.ID == 0 {
			log.Printf("store: skipping malformed line at offset %d: %v", offset, uerr)
		} else {
			j.idx.onAppend(s, offset, lineLen)
		}
		offset += lineLen
	}
	j.pos = offset
	if _, err := j.file.Seek(offset, io.SeekStart); err != nil {
		return fmt.Errorf("store: seek: %w", err)
	}
	return nil
}

// Save assigns the next ID, stamps CreatedAt when unset, and appends s as a
// JSON line. It is safe to call from multiple goroutines.
func (j *JSONL) Save(s Snapshot) (Snapshot, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	s.ID = j.idx.nextID()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	data, err := json.Marshal(s)
	if err != nil {
		return Snapshot{}, fmt.Errorf("store: marshal: %w", err)
	}
	data = append(data, '\n')

	lineOffset := j.pos
	if _, err := j.file.WriteAt(data, lineOffset); err != nil {
		return Snapshot{}, fmt.Errorf("store: write: %w", err)
	}
	if err := j.file.Sync(); err != nil {
		return Snapshot{}, fmt.Errorf("store: sync: %w", err)
	}
	lineLen := int64(len(data))
	j.pos += lineLen
	j.idx.onAppend(s, lineOffset, lineLen)
	return s, nil
}

// Close closes the underlying file.
func (j *JSONL) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.file.Close()
}

// List returns summaries of all snapshots in save order. The returned slice
// is a copy and safe to mutate.
func (j *JSONL) List() ([]Summary, error) {
	j.mu.Lock()
	result := make([]Summary, len(j.idx.summaries))
	copy(result, j.idx.summaries)
	j.mu.Unlock()
	return result, nil
}

// Get reads one snapshot using the in-memory byte-offset index.
func (j *JSONL) Get(id int64) (Snapshot, error) {
	j.mu.Lock()
	r, ok := j.idx.ranges[id]
	j.mu.Unlock()
	if !ok {
		return Snapshot{}, fmt.Errorf("store: snapshot %d: %w", id, ErrNotFound)
	}
	buf := make([]byte, r.end-r.start)
	if _, err := j.file.ReadAt(buf, r.start); err != nil {
		return Snapshot{}, fmt.Errorf("store: read snapshot %d: %w", id, err)
	}
	var s Snapshot
	if err := json.Unmarshal(bytes.TrimSpace(buf), &s); err != nil {
		return Snapshot{}, fmt.Errorf("store: decode snapshot %d: %w", id, err)
	}
	return s, nil
}

// Latest returns the newest snapshot saved under name.
func (j *JSONL) Latest(name string) (Snapshot, error) {
	j.mu.Lock()
	id, ok := j.idx.latest[name]
	j.mu.Unlock()
	if !ok {
		return Snapshot{}, fmt.Errorf("store: latest %q: %w", name, ErrNotFound)
	}
	return j.Get(id)
}
