package colormode

import (
	"github.com/yildizm/molview/internal/palette"
	"github.com/yildizm/molview/internal/structure"
)

// Coloring is the per-structure result of applying a theme. Themes that
// Molstar computes on its own (element, residue, custom, secondary) leave
// Chains and Residues empty.
type Coloring struct {
	// Theme is the Molstar theme actually used for this structure
	Theme string `json:"theme"`

	// Fallback is set when pLDDT coloring fell back to element coloring
	Fallback bool `json:"fallback,omitempty"`

	// Chains maps chain ID to a single color
	Chains map[string]string `json:"chains,omitempty"`

	// Residues maps chain ID to one color per residue in file order
	Residues map[string][]string `json:"residues,omitempty"`

	// Numbers holds the author residue numbers matching Residues
	Numbers map[string][]int `json:"numbers,omitempty"`
}

// PerResidue reports whether the page must color from Chains or Residues
// rather than from a Molstar theme
func (c Coloring) PerResidue() bool {
	return len(c.Chains) > 0 || len(c.Residues) > 0
}

// Colorize applies the theme to one scanned structure
func (t Theme) Colorize(sum *structure.Summary) Coloring {
	c := Coloring{Theme: t.Name}
	if sum == nil {
		return c
	}

	switch v := t.variant.(type) {
	case Chain:
		c.Chains = ChainAssignment(v, sum.SortedChainIDs())
	case Rainbow:
		c.Residues = rainbowResidues(v, sum)
	case PLDDT:
		if !sum.HasConfidence {
			c.Theme = MolstarElementSymbol
			c.Fallback = true
			return c
		}
		c.Residues = plddtResidues(sum)
	}
	if len(c.Residues) > 0 {
		c.Numbers = residueNumbers(sum)
	}
	return c
}

func residueNumbers(sum *structure.Summary) map[string][]int {
	out := make(map[string][]int, len(sum.Chains))
	for _, chain := range sum.Chains {
		numbers := make([]int, len(chain.Residues))
		for i, r := range chain.Residues {
			numbers[i] = r.Number
		}
		out[chain.ID] = numbers
	}
	return out
}

// ChainAssignment gives every chain a #RRGGBB color: explicit ones first,
// the rest from the auto palette in sorted chain order so the result depends
// only on the chain set
func ChainAssignment(m Chain, chainIDs []string) map[string]string {
	out := make(map[string]string, len(chainIDs))
	for i, id := range chainIDs {
		if c, err := palette.ParseColor(m.CustomColors[id]); err == nil {
			out[id] = c.Hex
			continue
		}
		out[id] = palette.ChainColor(i)
	}
	return out
}

// rainbowResidues interpolates the palette along each chain, 0 at the
// N-terminus and 1 at the C-terminus
func rainbowResidues(m Rainbow, sum *structure.Summary) map[string][]string {
	raw, err := palette.Palette(m.Palette)
	if err != nil {
		return nil
	}
	points, err := palette.ParseAll(raw)
	if err != nil {
		return nil
	}

	out := make(map[string][]string, len(sum.Chains))
	for _, chain := range sum.Chains {
		n := len(chain.Residues)
		colors := make([]string, n)
		for i := range chain.Residues {
			pos := 0.0
			if n > 1 {
				pos = float64(i) / float64(n-1)
			}
			colors[i] = palette.At(points, pos)
		}
		out[chain.ID] = colors
	}
	return out
}

func plddtResidues(sum *structure.Summary) map[string][]string {
	out := make(map[string][]string, len(sum.Chains))
	for _, chain := range sum.Chains {
		colors := make([]string, len(chain.Residues))
		for i, r := range chain.Residues {
			colors[i] = palette.PLDDTColor(r.Confidence)
		}
		out[chain.ID] = colors
	}
	return out
}
