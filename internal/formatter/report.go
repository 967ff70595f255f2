package formatter

import (
	"github.com/yildizm/molview/internal/colormode"
	"github.com/yildizm/molview/internal/palette"
	"github.com/yildizm/molview/internal/structure"
)

// StructureReport describes one loaded structure
type StructureReport struct {
	// Source is where the data came from: a path, PDB ID or UniProt accession
	Source string
	Name   string
	Format structure.Format
	Bytes  int

	// Summary is nil when the atom records could not be scanned
	Summary *structure.Summary

	// Coloring, when set, adds a color column to the chain listing
	Coloring *colormode.Coloring
}

// NewStructureReport builds a report for s; sum may be nil
func NewStructureReport(source string, s *structure.Structure, sum *structure.Summary) *StructureReport {
	return &StructureReport{
		Source:  source,
		Name:    s.Name,
		Format:  s.Format,
		Bytes:   len(s.Data),
		Summary: sum,
	}
}

// WithTheme colors the chain listing with a resolved theme
func (r *StructureReport) WithTheme(t colormode.Theme) *StructureReport {
	c := t.Colorize(r.Summary)
	r.Coloring = &c
	return r
}

// ChainRow is one line of the chain listing
type ChainRow struct {
	ID             string  `json:"id"`
	Residues       int     `json:"residues"`
	Color          string  `json:"color,omitempty"`
	MeanConfidence float64 `json:"mean_confidence,omitempty"`
}

// Chains lists the chains in file order
func (r *StructureReport) Chains() []ChainRow {
	if r.Summary == nil {
		return nil
	}
	rows := make([]ChainRow, 0, len(r.Summary.Chains))
	for _, c := range r.Summary.Chains {
		row := ChainRow{ID: c.ID, Residues: len(c.Residues)}
		if r.Summary.HasConfidence && len(c.Residues) > 0 {
			total := 0.0
			for _, res := range c.Residues {
				total += res.Confidence
			}
			row.MeanConfidence = total / float64(len(c.Residues))
		}
		row.Color = r.chainColor(c.ID)
		rows = append(rows, row)
	}
	return rows
}

// chainColor is the chain's color, or its first residue's for per-residue themes
func (r *StructureReport) chainColor(id string) string {
	if r.Coloring == nil {
		return ""
	}
	if c, ok := r.Coloring.Chains[id]; ok {
		return c
	}
	if res := r.Coloring.Residues[id]; len(res) > 0 {
		return res[0]
	}
	return ""
}

// Band is a pLDDT confidence band with its residue count
type Band struct {
	Name     string `json:"name"`
	Color    string `json:"color"`
	Residues int    `json:"residues"`
}

// bandOrder lists bands from most to least confident
var bandOrder = []string{palette.BandVeryHigh, palette.BandConfident, palette.BandLow, palette.BandVeryLow}

// Bands counts residues per confidence band; nil without confidence values
func (r *StructureReport) Bands() []Band {
	if r.Summary == nil || !r.Summary.HasConfidence {
		return nil
	}
	counts := make(map[string]int, len(bandOrder))
	for _, c := range r.Summary.Chains {
		for _, res := range c.Residues {
			counts[palette.PLDDTBand(res.Confidence)]++
		}
	}
	colors := palette.PLDDTColors()
	bands := make([]Band, 0, len(bandOrder))
	for _, name := range bandOrder {
		bands = append(bands, Band{Name: name, Color: colors[name], Residues: counts[name]})
	}
	return bands
}

// SearchReport is the result of a full-text search
type SearchReport struct {
	Query string   `json:"query"`
	Max   int      `json:"max"`
	IDs   []string `json:"ids"`
}
