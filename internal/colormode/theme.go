package colormode

import (
	"github.com/yildizm/molview/internal/palette"
)

// Molstar color theme names
const (
	MolstarUniform            = "uniform"
	MolstarElementSymbol      = "element-symbol"
	MolstarResidueName        = "residue-name"
	MolstarChainID            = "chain-id"
	MolstarCustomChainColors  = "custom-chain-colors"
	MolstarSecondaryStructure = "secondary-structure"
	MolstarRainbowSequence    = "rainbow-sequence"
	MolstarPLDDTConfidence    = "plddt-confidence"
)

// Theme is the resolved color half of a style descriptor
type Theme struct {
	Mode   string                 `json:"mode"`
	Name   string                 `json:"name"`
	Params map[string]interface{} `json:"params"`
	Table  map[string]string      `json:"table,omitempty"`

	variant Mode
}

// Variant returns the validated mode the theme was resolved from
func (t Theme) Variant() Mode {
	return t.variant
}

// Default returns the element theme every session starts with
func Default() Theme {
	t, _ := Resolve(Element{})
	return t
}

// Resolve validates a mode and builds its theme
func Resolve(m Mode) (Theme, error) {
	if m == nil {
		m = Element{}
	}
	normalized, err := m.normalize()
	if err != nil {
		return Theme{}, err
	}

	t := Theme{
		Mode:    normalized.Name(),
		Params:  map[string]interface{}{},
		variant: normalized,
	}

	switch v := normalized.(type) {
	case Element:
		t.Name = MolstarElementSymbol
		t.Table = palette.ElementTable()
	case Residue:
		t.Name = MolstarResidueName
		t.Table = palette.ResidueTable()
	case Custom:
		c, _ := palette.ParseColor(v.Color)
		t.Name = MolstarUniform
		t.Params["value"] = c.Int()
	case Chain:
		if len(v.CustomColors) == 0 {
			t.Name = MolstarChainID
			break
		}
		t.Name = MolstarCustomChainColors
		colors := make(map[string]interface{}, len(v.CustomColors))
		for chain, c := range v.CustomColors {
			colors[chain] = c
		}
		t.Params["colors"] = colors
	case Secondary:
		t.Name = MolstarSecondaryStructure
		t.Params = secondaryParams(v)
	case Rainbow:
		colors, _ := palette.Palette(v.Palette)
		t.Name = MolstarRainbowSequence
		t.Params["palette"] = v.Palette
		t.Params["colors"] = colors
	case PLDDT:
		t.Name = MolstarPLDDTConfidence
	}

	return t, nil
}

// secondaryParams maps the three classes onto Molstar's secondary structure kinds
func secondaryParams(s Secondary) map[string]interface{} {
	helix, _ := palette.ColorToInt(s.HelixColor)
	sheet, _ := palette.ColorToInt(s.SheetColor)
	coil, _ := palette.ColorToInt(s.CoilColor)

	return map[string]interface{}{
		"colors": map[string]interface{}{
			"name": "custom",
			"params": map[string]interface{}{
				"alphaHelix":    helix,
				"threeTenHelix": helix,
				"piHelix":       helix,
				"betaStrand":    sheet,
				"betaTurn":      sheet,
				"coil":          coil,
				"bend":          coil,
				"turn":          coil,
				"dna":           coil,
				"rna":           coil,
				"carbohydrate":  coil,
			},
		},
		"saturation": -1,
		"lightness":  0,
	}
}
