// palette.go - Built-in color themes and hex color helpers.
package card

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette is a named four-color theme. A palette swaps the card's
// colors while keeping the default geometry.
type Palette struct {
	Name       string
	Background color.RGBA
	Primary    color.RGBA
	Secondary  color.RGBA
	Accent     color.RGBA
}

// Palettes holds the built-in themes, default first.
var Palettes = []Palette{
	{"Bakuretsu Dark", mustHex("#12121a"), mustHex("#ffffff"), mustHex("#9ca3af"), mustHex("#ec4899")},
	{"Midnight Blue", mustHex("#0a192f"), mustHex("#e6f1ff"), mustHex("#8892b0"), mustHex("#64ffda")},
	{"Deep Purple", mustHex("#1a1025"), mustHex("#ffffff"), mustHex("#a78bfa"), mustHex("#c084fc")},
	{"Ocean", mustHex("#0c1821"), mustHex("#ffffff"), mustHex("#94a3b8"), mustHex("#38bdf8")},
	{"Forest", mustHex("#14201a"), mustHex("#ffffff"), mustHex("#86efac"), mustHex("#22c55e")},
	{"Sunset", mustHex("#1c1412"), mustHex("#ffffff"), mustHex("#fca5a5"), mustHex("#f97316")},
	{"Monochrome", mustHex("#171717"), mustHex("#ffffff"), mustHex("#a3a3a3"), mustHex("#ffffff")},
	{"Retrowave", mustHex("#1a1a2e"), mustHex("#edf2f4"), mustHex("#e056fd"), mustHex("#00d9ff")},
	{"Ramadan", mustHex("#0a0e2a"), mustHex("#ffffff"), mustHex("#c9a961"), mustHex("#ffd700")},
}

// DefaultPalette is the theme used when none is named.
func DefaultPalette() Palette {
	return Palettes[0]
}

// PaletteByName finds a built-in palette by name, case-insensitively.
func PaletteByName(name string) (Palette, bool) {
	for _, p := range Palettes {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Palette{}, false
}

// Style returns the default geometry dressed in the palette's colors.
func (p Palette) Style() Style {
	s := DefaultStyle()
	s.Background = p.Background
	s.Primary = p.Primary
	s.Secondary = p.Secondary
	s.Accent = p.Accent
	return s
}

// ParseHex parses "#rrggbb" or "#rrggbbaa" into a color. The leading
// "#" is optional.
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected 6 or 8 hex digits", s)
	}

	rv, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid red channel in %q: %w", s, err)
	}
	gv, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid green channel in %q: %w", s, err)
	}
	bv, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid blue channel in %q: %w", s, err)
	}
	av := uint64(0xff)
	if len(hex) == 8 {
		av, err = strconv.ParseUint(hex[6:8], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid alpha channel in %q: %w", s, err)
		}
	}

	return color.RGBA{uint8(rv), uint8(gv), uint8(bv), uint8(av)}, nil
}

// FormatHex renders a color as "#rrggbb", appending the alpha byte
// only when the color is not fully opaque.
func FormatHex(c color.RGBA) string {
	if c.A != 0xff {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// mustHex backs the built-in palette table; it panics on a bad
// literal the way regexp.MustCompile does.
func mustHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
