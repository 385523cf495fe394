package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/grid"
)

// Theme holds accent-color-derived styles and the cursor color drawn onto
// the preview surface.
type Theme struct {
	accentStyle   lipgloss.Style // header bar
	borderFocused lipgloss.Style // side panel border
	borderDim     lipgloss.Style // preview border
	cursor        grid.Color
}

// NewTheme creates a Theme from an accent color string (e.g. "#7D56F4" or
// a palette name). An empty or unparsable color falls back to the default.
func NewTheme(accentColor string) Theme {
	cursor, err := grid.ParseColor(accentColor)
	if err != nil {
		cursor, _ = grid.ParseHex(defaultAccentColor)
	}
	c := lipgloss.Color(cursor.Hex())
	return Theme{
		accentStyle: lipgloss.NewStyle().
			Background(c).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true),
		borderFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c),
		borderDim: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray),
		cursor: cursor,
	}
}

// AccentHeaderStyle returns the style for the header bar.
func (t Theme) AccentHeaderStyle() lipgloss.Style { return t.accentStyle }

// PanelBorderStyle returns the border for a panel; focused panels use the
// accent color.
func (t Theme) PanelBorderStyle(focused bool) lipgloss.Style {
	if focused {
		return t.borderFocused
	}
	return t.borderDim
}

// CursorColor is the outline color of the selected cell.
func (t Theme) CursorColor() grid.Color { return t.cursor }
