package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 16-bit RGB565 pixel value, the native format of TFT panels
// driven over SPI (5 bits red, 6 bits green, 5 bits blue).
type Color uint16

// Named colors matching the TFT_eSPI palette.
const (
	Black       Color = 0x0000
	Navy        Color = 0x000F
	DarkGreen   Color = 0x03E0
	DarkCyan    Color = 0x03EF
	Maroon      Color = 0x7800
	Purple      Color = 0x780F
	Olive       Color = 0x7BE0
	LightGrey   Color = 0xD69A
	DarkGrey    Color = 0x7BEF
	Blue        Color = 0x001F
	Green       Color = 0x07E0
	Cyan        Color = 0x07FF
	Red         Color = 0xF800
	Magenta     Color = 0xF81F
	Yellow      Color = 0xFFE0
	White       Color = 0xFFFF
	Orange      Color = 0xFDA0
	GreenYellow Color = 0xB7E0
	Pink        Color = 0xFE19
)

// DefaultTextColor is used for cell text when no color is configured.
const DefaultTextColor = White

// RGB packs 8-bit channels into RGB565, dropping the low bits.
func RGB(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// RGBA8 expands the color to 8-bit channels. Low bits are filled by
// replicating the high bits so White maps to 0xFF and Black to 0x00.
func (c Color) RGBA8() (r, g, b uint8) {
	r5 := uint8(c >> 11 & 0x1F)
	g6 := uint8(c >> 5 & 0x3F)
	b5 := uint8(c & 0x1F)
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

// Hex formats the color as "#RRGGBB".
func (c Color) Hex() string {
	r, g, b := c.RGBA8()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

func (c Color) String() string {
	return fmt.Sprintf("0x%04X", uint16(c))
}

// ParseHex parses "#RRGGBB" into the nearest RGB565 color.
func ParseHex(s string) (Color, error) {
	if len(s) != 7 || !strings.HasPrefix(s, "#") {
		return 0, fmt.Errorf("grid: color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("grid: color %q: %w", s, err)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

var colorNames = map[string]Color{
	"black":       Black,
	"navy":        Navy,
	"darkgreen":   DarkGreen,
	"darkcyan":    DarkCyan,
	"maroon":      Maroon,
	"purple":      Purple,
	"olive":       Olive,
	"lightgrey":   LightGrey,
	"darkgrey":    DarkGrey,
	"blue":        Blue,
	"green":       Green,
	"cyan":        Cyan,
	"red":         Red,
	"magenta":     Magenta,
	"yellow":      Yellow,
	"white":       White,
	"orange":      Orange,
	"greenyellow": GreenYellow,
	"pink":        Pink,
}

// ParseColor accepts "#RRGGBB", a raw RGB565 value such as "0xF800", or a
// palette name ("navy", "DarkGrey"; case and underscores are ignored).
func ParseColor(s string) (Color, error) {
	switch {
	case strings.HasPrefix(s, "#"):
		return ParseHex(s)
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		v, err := strconv.ParseUint(s[2:], 16, 16)
		if err != nil {
			return 0, fmt.Errorf("grid: color %q: want 0x0000 to 0xFFFF", s)
		}
		return Color(v), nil
	}
	name := strings.ToLower(strings.ReplaceAll(s, "_", ""))
	if c, ok := colorNames[name]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("grid: unknown color %q", s)
}
