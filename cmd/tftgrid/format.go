package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/grid"
	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/scene"
	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/store"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD93D"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

// formatInspect describes the resolved layout: tracks, cells, warnings.
func formatInspect(sc *scene.Scene) string {
	cfg := sc.Config()
	g := sc.Grid()
	p := g.Padding()
	b := g.Bounds()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s\n", titleStyle.Render("Layout"), cfg.Name)
	fmt.Fprintf(&sb, "  display     %dx%d\n", cfg.Display.Width, cfg.Display.Height)
	fmt.Fprintf(&sb, "  bounds      %dx%d @ (%d,%d)\n", b.Width, b.Height, b.X, b.Y)
	fmt.Fprintf(&sb, "  padding     top %d  bottom %d  left %d  right %d\n", p.Top, p.Bottom, p.Left, p.Right)
	fmt.Fprintf(&sb, "  inner       %dx%d @ (%d,%d)\n", g.Width(), g.Height(), g.X(), g.Y())
	fmt.Fprintf(&sb, "  coordinates %s\n\n", g.CoordinateMode())

	sb.WriteString(titleStyle.Render("Columns") + "\n")
	sb.WriteString(trackTable("column", "width", g.ColumnTracks()).String() + "\n\n")
	sb.WriteString(titleStyle.Render("Rows") + "\n")
	sb.WriteString(trackTable("row", "height", g.RowTracks()).String() + "\n\n")

	cells := newTable("cell", "rect", "center", "fill", "outline", "text")
	for _, c := range g.Cells() {
		text := ""
		if t, ok := sc.Text(c.Row, c.Column); ok {
			text = t.Value
		}
		cells.Row(
			fmt.Sprintf("%d,%d", c.Row, c.Column),
			fmt.Sprintf("%dx%d @ (%d,%d)", c.Rect.Width, c.Rect.Height, c.Rect.X, c.Rect.Y),
			fmt.Sprintf("(%d,%d)", c.Center.X, c.Center.Y),
			c.Fill.String(),
			c.Outline.String(),
			text,
		)
	}
	sb.WriteString(titleStyle.Render("Cells") + "\n")
	sb.WriteString(cells.String() + "\n")

	if warnings := sc.Diagnostics().Warnings(); len(warnings) > 0 {
		sb.WriteString("\n" + titleStyle.Render("Warnings") + "\n")
		for _, w := range warnings {
			sb.WriteString(warnStyle.Render("  ! "+w) + "\n")
		}
	}
	return sb.String()
}

func trackTable(kind, size string, tracks []grid.Track) *table.Table {
	t := newTable(kind, "requested", size, "offset")
	for i, tr := range tracks {
		requested := "auto"
		if tr.Requested > 0 {
			requested = strconv.Itoa(tr.Requested)
		}
		t.Row(strconv.Itoa(i), requested, strconv.Itoa(tr.Size), strconv.Itoa(tr.Offset))
	}
	return t
}

// formatSnapshotList renders saved snapshot summaries, newest last.
func formatSnapshotList(summaries []store.Summary) string {
	if len(summaries) == 0 {
		return "No snapshots saved. Run 'tftgrid snapshot save' first.\n"
	}
	t := newTable("id", "name", "created", "grid", "cells")
	for _, s := range summaries {
		t.Row(
			strconv.FormatInt(s.ID, 10),
			s.Name,
			s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%dx%d", s.Rows, s.Columns),
			strconv.Itoa(s.Cells),
		)
	}
	return t.String() + "\n"
}

// formatChanges lists the differences from base to the current layout.
func formatChanges(base store.Snapshot, changes []store.Change) string {
	header := fmt.Sprintf("Compared with snapshot %d (%s, %s)\n",
		base.ID, base.Name, base.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	if len(changes) == 0 {
		return header + "No changes.\n"
	}
	var sb strings.Builder
	sb.WriteString(header)
	for _, c := range changes {
		sb.WriteString("  " + c.String() + "\n")
	}
	fmt.Fprintf(&sb, "%d change(s)\n", len(changes))
	return sb.String()
}

// printWarnings writes layout warnings, one per line.
func printWarnings(w io.Writer, d grid.Diagnostics) {
	for _, msg := range d.Warnings() {
		fmt.Fprintf(w, "warning: %s\n", msg)
	}
}
