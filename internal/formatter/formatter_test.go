package formatter

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/yildizm/molview/internal/colormode"
	"github.com/yildizm/molview/internal/molerr"
	"github.com/yildizm/molview/internal/structure"
)

func experimentalReport() *StructureReport {
	sum := &structure.Summary{
		Name:            "1ABC",
		Format:          structure.FormatPDB,
		Title:           "SAMPLE DIPEPTIDE",
		Atoms:           1234,
		HetAtoms:        2,
		Models:          1,
		SolventResidues: 2,
		Experimental:    true,
		Chains: []*structure.Chain{
			{ID: "A", Residues: []structure.Residue{{Name: "ALA", Number: 1}, {Name: "GLY", Number: 2}}},
			{ID: "B", Residues: []structure.Residue{{Name: "SER", Number: 1}}},
		},
	}
	s := &structure.Structure{Name: "1ABC", Data: strings.Repeat("x", 2048), Format: structure.FormatPDB}
	return NewStructureReport("1abc.pdb", s, sum)
}

func predictedReport() *StructureReport {
	sum := &structure.Summary{
		Name:          "AF-P12345",
		Format:        structure.FormatMMCIF,
		Atoms:         6,
		Models:        1,
		HasConfidence: true,
		Chains: []*structure.Chain{
			{ID: "A", Residues: []structure.Residue{
				{Name: "MET", Number: 1, Confidence: 48.5},
				{Name: "LYS", Number: 2, Confidence: 92},
				{Name: "LEU", Number: 3, Confidence: 76},
			}},
		},
	}
	s := &structure.Structure{Name: "AF-P12345", Data: "data_AF", Format: structure.FormatMMCIF}
	return NewStructureReport("P12345", s, sum)
}

func TestNew(t *testing.T) {
	for _, format := range []string{"", "text", "json", "markdown", "md"} {
		if _, err := New(format, false, false); err != nil {
			t.Errorf("Expected formatter for %q, got %v", format, err)
		}
	}

	_, err := New("csv", false, false)
	if !errors.Is(err, molerr.ErrInvalidArgument) {
		t.Errorf("Expected InvalidArgument for csv, got %v", err)
	}
}

func TestReportChains(t *testing.T) {
	r := experimentalReport()

	rows := r.Chains()
	if len(rows) != 2 {
		t.Fatalf("Expected 2 chains, got %d", len(rows))
	}
	if rows[0].ID != "A" || rows[0].Residues != 2 {
		t.Errorf("Expected chain A with 2 residues, got %+v", rows[0])
	}
	if rows[0].Color != "" {
		t.Errorf("Expected no color without a theme, got %s", rows[0].Color)
	}

	theme, err := colormode.Resolve(colormode.Chain{CustomColors: map[string]string{"A": "#FF0000"}})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	rows = r.WithTheme(theme).Chains()
	if rows[0].Color != "#FF0000" {
		t.Errorf("Expected chain A #FF0000, got %s", rows[0].Color)
	}
	if rows[1].Color == "" {
		t.Errorf("Expected chain B to get an automatic color")
	}
}

func TestReportBands(t *testing.T) {
	if bands := experimentalReport().Bands(); bands != nil {
		t.Errorf("Expected no bands for experimental structure, got %v", bands)
	}

	bands := predictedReport().Bands()
	if len(bands) != 4 {
		t.Fatalf("Expected 4 bands, got %d", len(bands))
	}
	want := map[string]int{"very_high": 1, "confident": 1, "low": 0, "very_low": 1}
	for _, b := range bands {
		if b.Residues != want[b.Name] {
			t.Errorf("Band %s: expected %d residues, got %d", b.Name, want[b.Name], b.Residues)
		}
		if b.Color == "" {
			t.Errorf("Band %s has no color", b.Name)
		}
	}
	if bands[0].Name != "very_high" {
		t.Errorf("Expected most confident band first, got %s", bands[0].Name)
	}
}

func TestGenerateNotes(t *testing.T) {
	tests := []struct {
		name   string
		report *StructureReport
		want   string
	}{
		{"solvent", experimentalReport(), "--remove-solvent"},
		{"chains", experimentalReport(), "--color chain"},
		{"predicted", predictedReport(), "--color plddt"},
		{"unscanned", &StructureReport{Name: "x"}, "could not be scanned"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes := strings.Join(generateNotes(tt.report), "\n")
			if !strings.Contains(notes, tt.want) {
				t.Errorf("Expected notes to mention %q, got %q", tt.want, notes)
			}
		})
	}
}

func TestTerminalFormatStructures(t *testing.T) {
	f := NewTerminal(false, false)

	out, err := f.FormatStructures([]*StructureReport{experimentalReport(), predictedReport()})
	if err != nil {
		t.Fatalf("FormatStructures failed: %v", err)
	}
	text := string(out)

	for _, want := range []string{"Structure Summary", "1ABC", "1,234", "2.0 KiB", "experimental", "predicted", "pLDDT 72.2", "Very high"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}
	if strings.Index(text, "1ABC") > strings.Index(text, "AF-P12345") {
		t.Errorf("Expected structures in input order")
	}
}

func TestTerminalWriteChains(t *testing.T) {
	f := &terminalFormatter{}
	var b strings.Builder
	f.writeChains(&b, experimentalReport())

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header plus 2 chain lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], "├─ A: 2 residues") {
		t.Errorf("Unexpected first chain line %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "└─ B: 1 residues") {
		t.Errorf("Unexpected last chain line %q", lines[2])
	}
}

func TestTerminalFormatSearch(t *testing.T) {
	f := NewTerminal(false, false)

	out, err := f.FormatSearch(&SearchReport{Query: "hemoglobin", IDs: []string{"4HHB", "2HHB"}})
	if err != nil {
		t.Fatalf("FormatSearch failed: %v", err)
	}
	if !strings.Contains(string(out), "4HHB") || !strings.Contains(string(out), "2HHB") {
		t.Errorf("Expected both IDs in output, got %q", out)
	}

	out, _ = f.FormatSearch(&SearchReport{Query: "nothing"})
	if !strings.Contains(string(out), "no entries found") {
		t.Errorf("Expected empty-result line, got %q", out)
	}
}

func TestJSONFormatStructures(t *testing.T) {
	out, err := NewJSON().FormatStructures([]*StructureReport{predictedReport(), {Name: "raw", Format: structure.FormatSDF}})
	if err != nil {
		t.Fatalf("FormatStructures failed: %v", err)
	}

	var decoded struct {
		Structures []StructureOutput `json:"structures"`
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if len(decoded.Structures) != 2 {
		t.Fatalf("Expected 2 structures, got %d", len(decoded.Structures))
	}

	p := decoded.Structures[0]
	if !p.Scanned || p.Residues != 3 {
		t.Errorf("Expected scanned structure with 3 residues, got %+v", p)
	}
	if p.MeanConfidence == nil || *p.MeanConfidence < 72 || *p.MeanConfidence > 72.2 {
		t.Errorf("Expected mean confidence ~72.17, got %v", p.MeanConfidence)
	}
	if len(p.Bands) != 4 {
		t.Errorf("Expected 4 bands, got %d", len(p.Bands))
	}

	raw := decoded.Structures[1]
	if raw.Scanned {
		t.Errorf("Expected unscanned structure")
	}
	if raw.Chains == nil {
		t.Errorf("Expected empty chain list, got null")
	}
}

func TestJSONFormatSearch(t *testing.T) {
	out, err := NewJSON().FormatSearch(&SearchReport{Query: "kinase", Max: 5})
	if err != nil {
		t.Fatalf("FormatSearch failed: %v", err)
	}
	if !strings.Contains(string(out), `"ids": []`) {
		t.Errorf("Expected empty ids array, got %s", out)
	}
}

func TestMarkdownFormat(t *testing.T) {
	f := NewMarkdown()

	out, err := f.FormatStructures([]*StructureReport{experimentalReport(), predictedReport()})
	if err != nil {
		t.Fatalf("FormatStructures failed: %v", err)
	}
	md := string(out)
	for _, want := range []string{"# Structure Report", "## 1ABC", "| Chain | Residues | Color |", "### Confidence", "| Mean pLDDT | 72.2 |"} {
		if !strings.Contains(md, want) {
			t.Errorf("Expected markdown to contain %q", want)
		}
	}

	out, err = f.FormatSearch(&SearchReport{Query: "a|b", IDs: []string{"1UBQ"}})
	if err != nil {
		t.Fatalf("FormatSearch failed: %v", err)
	}
	if !strings.Contains(string(out), `a\|b`) {
		t.Errorf("Expected escaped pipe in query, got %s", out)
	}
	if !strings.Contains(string(out), "https://www.rcsb.org/structure/1UBQ") {
		t.Errorf("Expected entry link, got %s", out)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[int]string{0: "0", 999: "999", 1000: "1,000", 1234567: "1,234,567"}
	for in, want := range tests {
		if got := formatNumber(in); got != want {
			t.Errorf("Expected %s, got %s", want, got)
		}
	}
}
