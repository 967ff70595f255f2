// Package structure holds loaded structure payloads and a light read-only
// scanner over their atom records. Rendering-grade parsing is left to Molstar;
// the scanner only extracts what coloring and summaries need.
package structure

import (
	"sort"
)

// Structure is one loaded payload; immutable once created
type Structure struct {
	Name   string `json:"name"`
	Data   string `json:"data"`
	Format Format `json:"format"`
	KeepH  bool   `json:"keepH,omitempty"`
}

// New builds a Structure, detecting the format when format is empty
func New(name, data, format string) (*Structure, error) {
	var (
		f   Format
		err error
	)
	if format == "" {
		f, err = DetectFormat(data)
	} else {
		f, err = NormalizeFormat(format)
	}
	if err != nil {
		return nil, err
	}
	return &Structure{Name: name, Data: data, Format: f}, nil
}

// Residue is one polymer residue of a chain
type Residue struct {
	Name       string  `json:"name"`
	Number     int     `json:"number"`
	Insertion  string  `json:"insertion,omitempty"`
	Confidence float64 `json:"confidence"`
}

// Chain holds the polymer residues of one chain in file order
type Chain struct {
	ID       string    `json:"id"`
	Residues []Residue `json:"residues"`
}

// Summary is what the scanner extracts from a structure
type Summary struct {
	Name            string   `json:"name"`
	Format          Format   `json:"format"`
	Title           string   `json:"title,omitempty"`
	Atoms           int      `json:"atoms"`
	HetAtoms        int      `json:"het_atoms"`
	Models          int      `json:"models"`
	Molecules       int      `json:"molecules,omitempty"`
	SolventResidues int      `json:"solvent_residues"`
	Chains          []*Chain `json:"chains"`
	Experimental    bool     `json:"experimental"`
	HasConfidence   bool     `json:"has_confidence"`
}

// ResidueCount returns the number of polymer residues over all chains
func (s *Summary) ResidueCount() int {
	n := 0
	for _, c := range s.Chains {
		n += len(c.Residues)
	}
	return n
}

// ChainIDs returns chain IDs in file order
func (s *Summary) ChainIDs() []string {
	ids := make([]string, 0, len(s.Chains))
	for _, c := range s.Chains {
		ids = append(ids, c.ID)
	}
	return ids
}

// SortedChainIDs returns chain IDs sorted lexically
func (s *Summary) SortedChainIDs() []string {
	ids := s.ChainIDs()
	sort.Strings(ids)
	return ids
}

// Chain returns the chain with the given ID, or nil
func (s *Summary) Chain(id string) *Chain {
	for _, c := range s.Chains {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// MeanConfidence averages residue confidence; 0 without confidence values
func (s *Summary) MeanConfidence() float64 {
	if !s.HasConfidence {
		return 0
	}
	total, n := 0.0, 0
	for _, c := range s.Chains {
		for _, r := range c.Residues {
			total += r.Confidence
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

// solventResidues are residue names treated as solvent (water and ions)
var solventResidues = map[string]bool{
	"HOH": true, "WAT": true, "DOD": true, "H2O": true, "SOL": true,
	"NA": true, "CL": true, "K": true, "MG": true, "CA": true,
	"ZN": true, "MN": true, "IOD": true, "BR": true,
}

// IsSolvent reports whether a residue name is water or a common ion
func IsSolvent(resName string) bool {
	return solventResidues[resName]
}
