package palette

import (
	"errors"
	"testing"

	"github.com/yildizm/molview/internal/molerr"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantHex string
		wantErr bool
	}{
		{name: "six digit hex", input: "#FF0000", wantHex: "#FF0000"},
		{name: "lowercase hex", input: "#4ecdc4", wantHex: "#4ECDC4"},
		{name: "no hash", input: "00ff00", wantHex: "#00FF00"},
		{name: "short hex", input: "#abc", wantHex: "#AABBCC"},
		{name: "named color", input: "teal", wantHex: "#4ECDC4"},
		{name: "named color mixed case", input: "Purple", wantHex: "#DA77F2"},
		{name: "empty", input: "", wantErr: true},
		{name: "bad digit", input: "#12345g", wantErr: true},
		{name: "wrong length", input: "#1234", wantErr: true},
		{name: "unknown name", input: "chartreuse-ish", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseColor(tt.input)
			if tt.wantErr {
				if !errors.Is(err, molerr.ErrInvalidColor) {
					t.Fatalf("Expected InvalidColor, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if c.Hex != tt.wantHex {
				t.Errorf("Expected hex %s, got %s", tt.wantHex, c.Hex)
			}
			if c.Source != tt.input {
				t.Errorf("Expected source %q preserved, got %q", tt.input, c.Source)
			}
		})
	}
}

func TestColorInt(t *testing.T) {
	v, err := ColorToInt("#4ECDC4")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if v != 0x4ECDC4 {
		t.Errorf("Expected 0x4ECDC4, got %#x", v)
	}
}

func TestPalette(t *testing.T) {
	for _, name := range PaletteNames() {
		colors, err := Palette(name)
		if err != nil {
			t.Fatalf("Palette(%s) failed: %v", name, err)
		}
		if len(colors) < 2 {
			t.Errorf("Palette %s has %d control points", name, len(colors))
		}
		if _, err := ParseAll(colors); err != nil {
			t.Errorf("Palette %s has an invalid color: %v", name, err)
		}
	}

	if len(PaletteNames()) != 6 {
		t.Errorf("Expected 6 palettes, got %d", len(PaletteNames()))
	}

	_, err := Palette("sunset")
	if !errors.Is(err, molerr.ErrUnknownPalette) {
		t.Errorf("Expected UnknownPalette, got %v", err)
	}
}

func TestPaletteReturnsCopy(t *testing.T) {
	colors, _ := Palette(Rainbow)
	colors[0] = "#123456"

	again, _ := Palette(Rainbow)
	if again[0] != "#0000FF" {
		t.Errorf("Palette table was mutated through a returned slice: %s", again[0])
	}
}

func TestInterpolate(t *testing.T) {
	mid, err := Interpolate("#000000", "#FFFFFF", 0.5)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if mid != "#808080" {
		t.Errorf("Expected #808080, got %s", mid)
	}

	start, _ := Interpolate("#0000FF", "#FF0000", 0)
	if start != "#0000FF" {
		t.Errorf("Expected #0000FF at 0, got %s", start)
	}
	end, _ := Interpolate("#0000FF", "#FF0000", 2)
	if end != "#FF0000" {
		t.Errorf("Expected clamped #FF0000, got %s", end)
	}
}

func TestGradient(t *testing.T) {
	g, err := Gradient([]string{"#0000FF", "#FF0000"}, 3)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := []string{"#0000FF", "#800080", "#FF0000"}
	if len(g) != len(want) {
		t.Fatalf("Expected %d colors, got %d", len(want), len(g))
	}
	for i := range want {
		if g[i] != want[i] {
			t.Errorf("Step %d: expected %s, got %s", i, want[i], g[i])
		}
	}

	empty, _ := Gradient([]string{"#000000"}, 0)
	if len(empty) != 0 {
		t.Errorf("Expected empty gradient for zero steps")
	}

	single, _ := Gradient([]string{"#00FF00", "#FF0000"}, 1)
	if len(single) != 1 || single[0] != "#00FF00" {
		t.Errorf("Expected first color for one step, got %v", single)
	}
}

func TestPLDDTBands(t *testing.T) {
	tests := []struct {
		score float64
		band  string
	}{
		{95, BandVeryHigh},
		{90.5, BandVeryHigh},
		{90, BandConfident},
		{70, BandConfident},
		{69.9, BandLow},
		{50, BandLow},
		{49.9, BandVeryLow},
		{0, BandVeryLow},
	}
	for _, tt := range tests {
		if got := PLDDTBand(tt.score); got != tt.band {
			t.Errorf("PLDDTBand(%v) = %s, want %s", tt.score, got, tt.band)
		}
	}
	if PLDDTColor(95) != "#0053D6" {
		t.Errorf("Expected dark blue for very high confidence, got %s", PLDDTColor(95))
	}
}

func TestElementAndResidueTables(t *testing.T) {
	if ElementColor("o") != "#FF0D0D" {
		t.Errorf("Expected oxygen red, got %s", ElementColor("o"))
	}
	if ElementColor("Xx") != DefaultElementColor {
		t.Errorf("Expected default for unknown element")
	}
	if ResidueColor("lys") != "#145AFF" {
		t.Errorf("Expected lysine blue, got %s", ResidueColor("lys"))
	}
	if ResidueColor("HOH") != DefaultResidueColor {
		t.Errorf("Expected default for non amino acid")
	}
}

func TestChainColorCycles(t *testing.T) {
	n := len(ChainColors())
	if ChainColor(0) != ChainColor(n) {
		t.Errorf("Expected chain palette to wrap after %d colors", n)
	}
}
