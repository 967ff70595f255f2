package formatter

import (
	"encoding/json"

	"github.com/yildizm/molview/internal/structure"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

// StructureOutput represents one structure in JSON output
type StructureOutput struct {
	Name            string           `json:"name"`
	Source          string           `json:"source"`
	Format          structure.Format `json:"format"`
	Bytes           int              `json:"bytes"`
	Scanned         bool             `json:"scanned"`
	Title           string           `json:"title,omitempty"`
	Atoms           int              `json:"atoms"`
	HetAtoms        int              `json:"het_atoms"`
	Models          int              `json:"models"`
	Residues        int              `json:"residues"`
	SolventResidues int              `json:"solvent_residues"`
	Experimental    bool             `json:"experimental"`
	Theme           string           `json:"theme,omitempty"`
	Chains          []ChainRow       `json:"chains"`
	MeanConfidence  *float64         `json:"mean_confidence,omitempty"`
	Bands           []Band           `json:"plddt_bands,omitempty"`
	Notes           []string         `json:"notes,omitempty"`
}

func (f *jsonFormatter) FormatStructures(reports []*StructureReport) ([]byte, error) {
	outputs := make([]*StructureOutput, 0, len(reports))
	for _, r := range reports {
		outputs = append(outputs, createStructureOutput(r))
	}
	return json.MarshalIndent(struct {
		Structures []*StructureOutput `json:"structures"`
	}{outputs}, "", "  ")
}

func (f *jsonFormatter) FormatSearch(report *SearchReport) ([]byte, error) {
	out := *report
	if out.IDs == nil {
		out.IDs = []string{}
	}
	return json.MarshalIndent(&out, "", "  ")
}

// createStructureOutput flattens a report
func createStructureOutput(r *StructureReport) *StructureOutput {
	out := &StructureOutput{
		Name:   r.Name,
		Source: r.Source,
		Format: r.Format,
		Bytes:  r.Bytes,
		Chains: r.Chains(),
		Bands:  r.Bands(),
		Notes:  generateNotes(r),
	}
	if out.Chains == nil {
		out.Chains = []ChainRow{}
	}
	if r.Coloring != nil {
		out.Theme = r.Coloring.Theme
	}

	if sum := r.Summary; sum != nil {
		out.Scanned = true
		out.Title = sum.Title
		out.Atoms = sum.Atoms
		out.HetAtoms = sum.HetAtoms
		out.Models = sum.Models
		out.Residues = sum.ResidueCount()
		out.SolventResidues = sum.SolventResidues
		out.Experimental = sum.Experimental
		if sum.HasConfidence {
			mean := sum.MeanConfidence()
			out.MeanConfidence = &mean
		}
	}
	return out
}
