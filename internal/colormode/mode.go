// Package colormode resolves color modes into the theme half of a style
// descriptor. Each mode is its own type carrying only the fields that mode
// takes, so a parameter for the wrong mode cannot be expressed.
package colormode

import (
	"sort"
	"strings"

	"github.com/yildizm/molview/internal/molerr"
	"github.com/yildizm/molview/internal/palette"
)

// Mode names
const (
	NameElement   = "element"
	NameCustom    = "custom"
	NameResidue   = "residue"
	NameChain     = "chain"
	NameSecondary = "secondary"
	NameRainbow   = "rainbow"
	NamePLDDT     = "plddt"
)

// Names lists every mode name
func Names() []string {
	return []string{NameCustom, NameElement, NameResidue, NameChain, NameSecondary, NameRainbow, NamePLDDT}
}

// Mode is one color mode variant
type Mode interface {
	// Name returns the mode name
	Name() string

	// normalize validates the variant and fills defaults
	normalize() (Mode, error)
}

// Element colors atoms by element using the CPK table
type Element struct{}

// Custom colors everything with one color
type Custom struct {
	Color string
}

// Residue colors by amino-acid type
type Residue struct{}

// Chain colors by chain ID; CustomColors overrides the auto palette per chain
type Chain struct {
	CustomColors map[string]string
}

// Secondary colors by secondary structure class; empty fields take defaults
type Secondary struct {
	HelixColor string
	SheetColor string
	CoilColor  string
}

// Rainbow colors residues along each chain by a palette gradient
type Rainbow struct {
	Palette string
}

// PLDDT colors residues by predicted-model confidence bands
type PLDDT struct{}

func (Element) Name() string   { return NameElement }
func (Custom) Name() string    { return NameCustom }
func (Residue) Name() string   { return NameResidue }
func (Chain) Name() string     { return NameChain }
func (Secondary) Name() string { return NameSecondary }
func (Rainbow) Name() string   { return NameRainbow }
func (PLDDT) Name() string     { return NamePLDDT }

func (m Element) normalize() (Mode, error) { return m, nil }
func (m Residue) normalize() (Mode, error) { return m, nil }
func (m PLDDT) normalize() (Mode, error)   { return m, nil }

func (m Custom) normalize() (Mode, error) {
	if m.Color == "" {
		m.Color = palette.DefaultCustomColor
	}
	if _, err := palette.ParseColor(m.Color); err != nil {
		return nil, err
	}
	return m, nil
}

func (m Chain) normalize() (Mode, error) {
	if len(m.CustomColors) == 0 {
		return Chain{}, nil
	}
	colors := make(map[string]string, len(m.CustomColors))
	for chain, c := range m.CustomColors {
		if _, err := palette.ParseColor(c); err != nil {
			return nil, err
		}
		colors[chain] = c
	}
	return Chain{CustomColors: colors}, nil
}

func (m Secondary) normalize() (Mode, error) {
	defaults := []struct {
		field *string
		class string
	}{
		{&m.HelixColor, palette.Helix},
		{&m.SheetColor, palette.Sheet},
		{&m.CoilColor, palette.Coil},
	}
	for _, d := range defaults {
		if *d.field == "" {
			*d.field = palette.SecondaryColor(d.class)
		}
		if _, err := palette.ParseColor(*d.field); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m Rainbow) normalize() (Mode, error) {
	if m.Palette == "" {
		m.Palette = palette.DefaultPalette
	}
	if !palette.IsPalette(m.Palette) {
		_, err := palette.Palette(m.Palette)
		return nil, err
	}
	return m, nil
}

// Params are the loosely-typed mode parameters accepted by Parse
type Params struct {
	Color        string            `yaml:"color" json:"color,omitempty"`
	Palette      string            `yaml:"palette" json:"palette,omitempty"`
	HelixColor   string            `yaml:"helix_color" json:"helix_color,omitempty"`
	SheetColor   string            `yaml:"sheet_color" json:"sheet_color,omitempty"`
	CoilColor    string            `yaml:"coil_color" json:"coil_color,omitempty"`
	CustomColors map[string]string `yaml:"custom_colors" json:"custom_colors,omitempty"`
}

// Parse builds a mode variant from its name; parameters that do not belong
// to the named mode are ignored
func Parse(name string, p Params) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameElement:
		return Element{}, nil
	case NameCustom:
		return Custom{Color: p.Color}, nil
	case NameResidue:
		return Residue{}, nil
	case NameChain:
		return Chain{CustomColors: p.CustomColors}, nil
	case NameSecondary:
		return Secondary{HelixColor: p.HelixColor, SheetColor: p.SheetColor, CoilColor: p.CoilColor}, nil
	case NameRainbow:
		return Rainbow{Palette: p.Palette}, nil
	case NamePLDDT:
		return PLDDT{}, nil
	default:
		names := Names()
		sort.Strings(names)
		return nil, molerr.Newf(molerr.ErrTypeUnknownColorMode, name,
			"unknown color mode (available: %s)", strings.Join(names, ", "))
	}
}
