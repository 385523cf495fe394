package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = Calculate(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case sceneLoadedMsg:
		return m.handleLoaded(msg), nil

	case fileChangedMsg:
		return m, tea.Batch(loadScene(m.load), waitForChange(m.changes))

	case watchClosedMsg:
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Reload):
		return m, loadScene(m.load)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)
	}
	return m, nil
}

func (m Model) handleLoaded(msg sceneLoadedMsg) Model {
	if msg.err != nil {
		m.err = msg.err
		return m
	}
	m.err = nil
	m.cfg = msg.cfg
	m.scene = msg.scene
	m.surface = msg.surface
	m.theme = NewTheme(msg.cfg.Preview.AccentColor)
	m.reloads++

	g := m.scene.Grid()
	m.row = min(m.row, g.Rows()-1)
	m.col = min(m.col, g.Columns()-1)
	m.redraw()
	return m
}

// moveCursor moves the selected cell, staying inside the grid.
func (m *Model) moveCursor(dr, dc int) {
	if m.scene == nil {
		return
	}
	g := m.scene.Grid()
	m.row = clamp(m.row+dr, 0, g.Rows()-1)
	m.col = clamp(m.col+dc, 0, g.Columns()-1)
	m.redraw()
}

// redraw repaints the scene onto the terminal surface and outlines the
// cursor cell in the accent color.
func (m *Model) redraw() {
	if m.scene == nil {
		return
	}
	cfg := m.scene.Config()
	m.surface.FillRect(0, 0, cfg.Display.Width, cfg.Display.Height, m.scene.Background())
	if err := m.scene.Render(); err != nil {
		m.err = err
		return
	}
	if cell, err := m.scene.Grid().Cell(m.row, m.col); err == nil {
		r := cell.Rect
		m.surface.DrawRect(r.X, r.Y, r.Width, r.Height, m.theme.CursorColor())
	}
	m.preview = m.surface.String()
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
