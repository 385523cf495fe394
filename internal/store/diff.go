package store

import (
	"fmt"
	"strconv"
)

// Change is one difference between two snapshots.
type Change struct {
	Target string // "columns", "rows", "column 2", "row 0", "cell 1,3"
	Field  string
	Old    string
	New    string
}

func (c Change) String() string {
	return fmt.Sprintf("%s %s: %s -> %s", c.Target, c.Field, c.Old, c.New)
}

// Diff lists geometry and style differences between two snapshots, tracks first
// then cells in row-major order. Cells present in only one snapshot are
// reported with an empty Old or New.
func Diff(from, to Snapshot) []Change {
	var out []Change
	out = append(out, diffTracks("column", "columns", from.Columns, to.Columns)...)
	out = append(out, diffTracks("row", "rows", from.Rows, to.Rows)...)
	if from.Coordinates != to.Coordinates {
		out = append(out, Change{Target: "grid", Field: "coordinates", Old: from.Coordinates, New: to.Coordinates})
	}

	oldCells := make(map[[2]int]CellRecord, len(from.Cells))
	for _, c := range from.Cells {
		oldCells[[2]int{c.Row, c.Column}] = c
	}
	seen := make(map[[2]int]bool, len(to.Cells))
	for _, n := range to.Cells {
		key := [2]int{n.Row, n.Column}
		seen[key] = true
		target := fmt.Sprintf("cell %d,%d", n.Row, n.Column)
		o, ok := oldCells[key]
		if !ok {
			out = append(out, Change{Target: target, Field: "rect", New: rectString(n)})
			continue
		}
		out = append(out, diffCell(target, o, n)...)
	}
	for _, o := range from.Cells {
		if !seen[[2]int{o.Row, o.Column}] {
			out = append(out, Change{Target: fmt.Sprintf("cell %d,%d", o.Row, o.Column), Field: "rect", Old: rectString(o)})
		}
	}
	return out
}

func diffTracks(kind, plural string, from, to []TrackRecord) []Change {
	var out []Change
	if len(from) != len(to) {
		out = append(out, Change{Target: plural, Field: "count", Old: strconv.Itoa(len(from)), New: strconv.Itoa(len(to))})
	}
	for i := 0; i < min(len(from), len(to)); i++ {
		target := kind + " " + strconv.Itoa(i)
		out = appendIntChange(out, target, "requested", from[i].Requested, to[i].Requested)
		out = appendIntChange(out, target, "size", from[i].Size, to[i].Size)
		out = appendIntChange(out, target, "offset", from[i].Offset, to[i].Offset)
	}
	return out
}

func diffCell(target string, o, n CellRecord) []Change {
	var out []Change
	if rectString(o) != rectString(n) {
		out = append(out, Change{Target: target, Field: "rect", Old: rectString(o), New: rectString(n)})
	}
	if o.CenterX != n.CenterX || o.CenterY != n.CenterY {
		out = append(out, Change{
			Target: target,
			Field:  "center",
			Old:    fmt.Sprintf("(%d,%d)", o.CenterX, o.CenterY),
			New:    fmt.Sprintf("(%d,%d)", n.CenterX, n.CenterY),
		})
	}
	out = appendStringChange(out, target, "fill", o.Fill, n.Fill)
	out = appendStringChange(out, target, "outline", o.Outline, n.Outline)
	out = appendStringChange(out, target, "text", strconv.Quote(o.Text), strconv.Quote(n.Text))
	return out
}

func rectString(c CellRecord) string {
	return fmt.Sprintf("%dx%d@(%d,%d)", c.Width, c.Height, c.X, c.Y)
}

func appendIntChange(out []Change, target, field string, from, to int) []Change {
	if from == to {
		return out
	}
	return append(out, Change{Target: target, Field: field, Old: strconv.Itoa(from), New: strconv.Itoa(to)})
}

func appendStringChange(out []Change, target, field, from, to string) []Change {
	if from == to {
		return out
	}
	return append(out, Change{Target: target, Field: field, Old: from, New: to})
}
