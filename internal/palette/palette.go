// Package palette holds the fixed color tables and color helpers shared by
// the color modes. Tables are package-level and never mutated; every accessor
// returns a copy.
package palette

import (
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/yildizm/molview/internal/molerr"
)

// Color is a parsed color. Source keeps the caller's spelling so a style read
// returns exactly what was set.
type Color struct {
	Source string
	Hex    string // normalized #RRGGBB
	rgb    colorful.Color
}

// Int returns the 0xRRGGBB integer form used by Molstar
func (c Color) Int() int {
	v, _ := strconv.ParseInt(strings.TrimPrefix(c.Hex, "#"), 16, 32)
	return int(v)
}

// ParseColor accepts #RRGGBB, #RGB (with or without the leading #) and the
// named custom colors.
func ParseColor(s string) (Color, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Color{}, molerr.New(molerr.ErrTypeInvalidColor, s, "empty color")
	}

	if hex, ok := namedColors[strings.ToLower(trimmed)]; ok {
		c, _ := colorful.Hex(hex)
		return Color{Source: s, Hex: hex, rgb: c}, nil
	}

	digits := strings.TrimPrefix(trimmed, "#")
	if (len(digits) != 6 && len(digits) != 3) || !isHexDigits(digits) {
		return Color{}, molerr.New(molerr.ErrTypeInvalidColor, s, "expected #RRGGBB, #RGB or a named color")
	}

	c, err := colorful.Hex("#" + strings.ToLower(digits))
	if err != nil {
		return Color{}, molerr.Wrap(molerr.ErrTypeInvalidColor, s, "unparsable hex color", err)
	}

	return Color{Source: s, Hex: strings.ToUpper(c.Hex()), rgb: c}, nil
}

// MustColor parses a color from the fixed tables and panics on failure
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ColorToInt converts a color string to its 0xRRGGBB integer
func ColorToInt(s string) (int, error) {
	c, err := ParseColor(s)
	if err != nil {
		return 0, err
	}
	return c.Int(), nil
}

func isHexDigits(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// Palette returns the control points of a rainbow palette
func Palette(name string) ([]string, error) {
	colors, ok := rainbowPalettes[name]
	if !ok {
		return nil, molerr.Newf(molerr.ErrTypeUnknownPalette, name,
			"unknown palette (available: %s)", strings.Join(paletteOrder, ", "))
	}
	out := make([]string, len(colors))
	copy(out, colors)
	return out, nil
}

// IsPalette reports whether name is a known palette
func IsPalette(name string) bool {
	_, ok := rainbowPalettes[name]
	return ok
}

// PaletteNames lists the palettes in a stable order
func PaletteNames() []string {
	out := make([]string, len(paletteOrder))
	copy(out, paletteOrder)
	return out
}

// ChainColors returns the auto-palette cycled over chains
func ChainColors() []string {
	out := make([]string, len(chainColors))
	copy(out, chainColors)
	return out
}

// ChainColor returns the i-th auto-palette color, wrapping around
func ChainColor(i int) string {
	if i < 0 {
		i = -i
	}
	return chainColors[i%len(chainColors)]
}

// NamedColors returns the named custom colors
func NamedColors() map[string]string {
	out := make(map[string]string, len(namedColors))
	for k, v := range namedColors {
		out[k] = v
	}
	return out
}

// NamedColorNames lists the named colors alphabetically
func NamedColorNames() []string {
	names := make([]string, 0, len(namedColors))
	for k := range namedColors {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// SecondaryColor returns the default color of a secondary structure class
func SecondaryColor(class string) string {
	return secondaryColors[class]
}

// ElementColor returns the CPK color of an element symbol
func ElementColor(symbol string) string {
	if c, ok := elementColors[strings.ToUpper(strings.TrimSpace(symbol))]; ok {
		return c
	}
	return DefaultElementColor
}

// ElementTable returns a copy of the element table
func ElementTable() map[string]string {
	out := make(map[string]string, len(elementColors))
	for k, v := range elementColors {
		out[k] = v
	}
	return out
}

// ResidueColor returns the amino-acid color of a three-letter residue name
func ResidueColor(name string) string {
	if c, ok := residueColors[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return c
	}
	return DefaultResidueColor
}

// ResidueTable returns a copy of the amino-acid table
func ResidueTable() map[string]string {
	out := make(map[string]string, len(residueColors))
	for k, v := range residueColors {
		out[k] = v
	}
	return out
}

// PLDDTBand maps a confidence score in [0,100] to its band
func PLDDTBand(score float64) string {
	switch {
	case score > 90:
		return BandVeryHigh
	case score >= 70:
		return BandConfident
	case score >= 50:
		return BandLow
	default:
		return BandVeryLow
	}
}

// PLDDTColor maps a confidence score to its band color
func PLDDTColor(score float64) string {
	return plddtColors[PLDDTBand(score)]
}

// PLDDTColors returns the band table
func PLDDTColors() map[string]string {
	out := make(map[string]string, len(plddtColors))
	for k, v := range plddtColors {
		out[k] = v
	}
	return out
}
