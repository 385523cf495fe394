package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/grid"
)

// View renders the preview: header bar, grid preview, cell panel, footer.
func (m Model) View() string {
	if m.layout.TooSmall {
		return fmt.Sprintf("Terminal too small (%dx%d); need at least %dx%d.",
			m.width, m.height, MinWidth, MinHeight)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderPreview(), m.renderSide())
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderFooter())
}

func (m Model) renderHeader() string {
	parts := []string{"▦ tftgrid"}
	if m.cfg != nil {
		g := m.scene.Grid()
		parts = append(parts,
			m.cfg.Name,
			fmt.Sprintf("%dx%d px", m.cfg.Display.Width, m.cfg.Display.Height),
			fmt.Sprintf("%d×%d cells", g.Rows(), g.Columns()),
			fmt.Sprintf("reload #%d", m.reloads),
		)
	}
	return m.theme.AccentHeaderStyle().Width(m.width).Render(strings.Join(parts, "  │  "))
}

func (m Model) renderPreview() string {
	w, h := innerDims(m.layout.Preview)
	content := m.preview
	if content == "" {
		content = labelStyle.Render("loading…")
	}
	content = lipgloss.NewStyle().MaxWidth(w).MaxHeight(h).Render(content)
	return m.theme.PanelBorderStyle(false).Width(w).Height(h).Render(content)
}

func (m Model) renderSide() string {
	w, h := innerDims(m.layout.Side)
	content := lipgloss.NewStyle().Width(w).MaxHeight(h).Render(strings.Join(m.sideLines(), "\n"))
	return m.theme.PanelBorderStyle(true).Width(w).Height(h).Render(content)
}

func (m Model) sideLines() []string {
	if m.scene == nil {
		return []string{labelStyle.Render("no layout loaded")}
	}
	g := m.scene.Grid()
	cell, err := g.Cell(m.row, m.col)
	if err != nil {
		return []string{errorStyle.Render(err.Error())}
	}

	field := func(label, value string) string {
		return labelStyle.Render(fmt.Sprintf("%-8s", label)) + valueStyle.Render(value)
	}
	r := cell.Rect
	lines := []string{
		field("cell", fmt.Sprintf("%d,%d", cell.Row, cell.Column)),
		field("rect", fmt.Sprintf("%dx%d @ (%d,%d)", r.Width, r.Height, r.X, r.Y)),
		field("center", fmt.Sprintf("(%d,%d)", cell.Center.X, cell.Center.Y)),
		field("fill", colorLabel(cell.Fill)),
		field("outline", colorLabel(cell.Outline)),
		field("column", trackLabel(g.ColumnTracks()[cell.Column])),
		field("row", trackLabel(g.RowTracks()[cell.Row])),
	}
	if t, ok := m.scene.Text(cell.Row, cell.Column); ok {
		lines = append(lines, field("text", fmt.Sprintf("%q", t.Value)))
	}

	if warnings := m.scene.Diagnostics().Warnings(); len(warnings) > 0 {
		lines = append(lines, "", warnStyle.Render("warnings"))
		for _, w := range warnings {
			lines = append(lines, warnStyle.Render("! "+w))
		}
	}
	return lines
}

func (m Model) renderFooter() string {
	status := footerStyle.Render("watching for changes")
	if m.changes == nil {
		status = footerStyle.Render("press r to reload")
	}
	if m.err != nil {
		status = errorStyle.Render("error: " + m.err.Error())
	}
	status = lipgloss.NewStyle().MaxWidth(m.width).Render(status)
	return status + "\n" + m.help.View(m.keys)
}

func colorLabel(c grid.Color) string {
	return fmt.Sprintf("%s %s", c, c.Hex())
}

func trackLabel(t grid.Track) string {
	if t.Requested > 0 {
		return fmt.Sprintf("%dpx (fixed)", t.Size)
	}
	return fmt.Sprintf("%dpx (auto)", t.Size)
}
