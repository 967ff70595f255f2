package colormode

import (
	"errors"
	"testing"

	"github.com/yildizm/molview/internal/molerr"
	"github.com/yildizm/molview/internal/palette"
	"github.com/yildizm/molview/internal/structure"
)

func TestResolveThemeNames(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{Element{}, MolstarElementSymbol},
		{Custom{Color: "#FF0000"}, MolstarUniform},
		{Residue{}, MolstarResidueName},
		{Chain{}, MolstarChainID},
		{Chain{CustomColors: map[string]string{"A": "red"}}, MolstarCustomChainColors},
		{Secondary{}, MolstarSecondaryStructure},
		{Rainbow{}, MolstarRainbowSequence},
		{PLDDT{}, MolstarPLDDTConfidence},
	}

	for _, tt := range tests {
		t.Run(tt.mode.Name(), func(t *testing.T) {
			theme, err := Resolve(tt.mode)
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if theme.Name != tt.want {
				t.Errorf("Expected theme %s, got %s", tt.want, theme.Name)
			}
			if theme.Mode != tt.mode.Name() {
				t.Errorf("Expected mode %s, got %s", tt.mode.Name(), theme.Mode)
			}
		})
	}
}

func TestResolveCustomColor(t *testing.T) {
	theme, err := Resolve(Custom{Color: "#FF0000"})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if v := theme.Params["value"]; v != 0xFF0000 {
		t.Errorf("Expected uniform value 0xFF0000, got %v", v)
	}

	// the color the caller supplied is kept as given
	if c := theme.Variant().(Custom).Color; c != "#FF0000" {
		t.Errorf("Expected custom color to read back unchanged, got %s", c)
	}
}

func TestResolveDefaults(t *testing.T) {
	theme, err := Resolve(Custom{})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if c := theme.Variant().(Custom).Color; c != palette.DefaultCustomColor {
		t.Errorf("Expected default custom color, got %s", c)
	}

	theme, err = Resolve(Rainbow{})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if p := theme.Params["palette"]; p != palette.DefaultPalette {
		t.Errorf("Expected default palette, got %v", p)
	}

	theme, err = Resolve(Secondary{HelixColor: "#FF0000"})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	s := theme.Variant().(Secondary)
	if s.HelixColor != "#FF0000" || s.SheetColor != palette.SecondaryColor(palette.Sheet) {
		t.Errorf("Expected helix override with default sheet, got %+v", s)
	}
	colors := theme.Params["colors"].(map[string]interface{})["params"].(map[string]interface{})
	if colors["alphaHelix"] != 0xFF0000 || colors["threeTenHelix"] != 0xFF0000 {
		t.Errorf("Expected helix kinds to share the helix color, got %v", colors)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		want error
	}{
		{"bad custom color", Custom{Color: "notacolor"}, molerr.ErrInvalidColor},
		{"bad chain color", Chain{CustomColors: map[string]string{"A": "#12"}}, molerr.ErrInvalidColor},
		{"bad helix color", Secondary{HelixColor: "#GGGGGG"}, molerr.ErrInvalidColor},
		{"unknown palette", Rainbow{Palette: "sunset"}, molerr.ErrUnknownPalette},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Resolve(tt.mode); !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParse(t *testing.T) {
	m, err := Parse("Rainbow", Params{Palette: palette.Viridis, Color: "#FFFFFF"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	r, ok := m.(Rainbow)
	if !ok || r.Palette != palette.Viridis {
		t.Errorf("Expected rainbow viridis, got %#v", m)
	}

	if _, err := Parse("hydrophobicity", Params{}); !errors.Is(err, molerr.ErrUnknownColorMode) {
		t.Errorf("Expected UnknownColorMode, got %v", err)
	}
}

func TestChainAssignment(t *testing.T) {
	got := ChainAssignment(Chain{CustomColors: map[string]string{"B": "#FF0000", "C": "teal"}}, []string{"A", "B", "C"})
	if got["A"] != palette.ChainColor(0) {
		t.Errorf("Expected auto color for A, got %s", got["A"])
	}
	if got["B"] != "#FF0000" {
		t.Errorf("Expected override for B, got %s", got["B"])
	}
	if want := palette.MustColor("teal").Hex; got["C"] != want {
		t.Errorf("Expected named override for C as %s, got %s", want, got["C"])
	}
}

func TestColorizeRainbow(t *testing.T) {
	theme, err := Resolve(Rainbow{Palette: palette.BlueRed})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	sum := &structure.Summary{Chains: []*structure.Chain{{
		ID:       "A",
		Residues: []structure.Residue{{Number: 10}, {Number: 11}, {Number: 14}},
	}}}

	c := theme.Colorize(sum)
	if !c.PerResidue() {
		t.Error("Expected rainbow coloring to be per residue")
	}
	if numbers := c.Numbers["A"]; len(numbers) != 3 || numbers[0] != 10 || numbers[2] != 14 {
		t.Errorf("Expected author residue numbers alongside colors, got %v", numbers)
	}
	want := []string{"#0000FF", "#800080", "#FF0000"}
	got := c.Residues["A"]
	if len(got) != len(want) {
		t.Fatalf("Expected %d residue colors, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Residue %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestColorizePLDDT(t *testing.T) {
	theme, _ := Resolve(PLDDT{})

	predicted := &structure.Summary{
		HasConfidence: true,
		Chains: []*structure.Chain{{
			ID:       "A",
			Residues: []structure.Residue{{Confidence: 95}, {Confidence: 70}, {Confidence: 55}, {Confidence: 20}},
		}},
	}
	c := theme.Colorize(predicted)
	if c.Fallback || c.Theme != MolstarPLDDTConfidence {
		t.Fatalf("Expected plddt coloring, got %+v", c)
	}
	bands := []string{palette.BandVeryHigh, palette.BandConfident, palette.BandLow, palette.BandVeryLow}
	for i, band := range bands {
		if want := palette.PLDDTColors()[band]; c.Residues["A"][i] != want {
			t.Errorf("Residue %d: expected %s color %s, got %s", i, band, want, c.Residues["A"][i])
		}
	}

	experimental := &structure.Summary{Chains: predicted.Chains}
	c = theme.Colorize(experimental)
	if !c.Fallback || c.Theme != MolstarElementSymbol {
		t.Errorf("Expected element fallback without confidence values, got %+v", c)
	}
	if len(c.Residues) != 0 || c.PerResidue() {
		t.Errorf("Fallback must not carry residue colors, got %v", c.Residues)
	}
}
