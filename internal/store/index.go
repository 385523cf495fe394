package store

// lineRange is the [start, end) byte range of one snapshot line in the
// JSONL file, including its trailing newline.
type lineRange struct {
	start int64
	end   int64
}

// fileIndex keeps in-memory byte-offset bookmarks per saved snapshot so Get
// reads a single line with file.ReadAt instead of scanning the file.
type fileIndex struct {
	summaries []Summary           // in save order
	ranges    map[int64]lineRange // snapshot ID → line range
	latest    map[string]int64    // snapshot name → newest ID
	lastID    int64
}

func newFileIndex() *fileIndex {
	return &fileIndex{
		ranges: make(map[int64]lineRange),
		latest: make(map[string]int64),
	}
}

// onAppend records a snapshot line. lineOffset is the offset of the first
// byte of the line; lineLen includes the trailing newline.
func (idx *fileIndex) onAppend(s Snapshot, lineOffset, lineLen int64) {
	idx.summaries = append(idx.summaries, s.summary())
	idx.ranges[s.ID] = lineRange{start: lineOffset, end: lineOffset + lineLen}
	idx.latest[s.Name] = s.ID
	if s.ID > idx.lastID {
		idx.lastID = s.ID
	}
}

// nextID returns the ID the next saved snapshot gets.
func (idx *fileIndex) nextID() int64 {
	return idx.lastID + 1
}
