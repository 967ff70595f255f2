package structure

import (
	"errors"
	"testing"

	"github.com/yildizm/molview/internal/molerr"
)

const samplePDB = `HEADER    PROTEIN                                 01-JAN-00   TEST
TITLE     SAMPLE DIPEPTIDE
EXPDTA    X-RAY DIFFRACTION
ATOM      1  N   ALA A   1       0.000   0.000   0.000  1.00 10.00           N
ATOM      2  CA  ALA A   1       1.458   0.000   0.000  1.00 12.00           C
ATOM      3  C   ALA A   1       2.009   1.420   0.000  1.00 11.00           C
ATOM      4  N   GLY A   2       3.000   1.500   0.000  1.00 13.00           N
ATOM      5  CA  GLY A   2       4.000   1.600   0.000  1.00 14.00           C
ATOM      6  N   SER B   1       5.000   0.000   0.000  1.00 15.00           N
ATOM      7  CA  SER B   1       6.000   0.000   0.000  1.00 16.00           C
HETATM    8  O   HOH A 101       7.000   0.000   0.000  1.00 20.00           O
HETATM    9  O   HOH A 102       8.000   0.000   0.000  1.00 20.00           O
END
`

const samplePredictedPDB = `ATOM      1  N   MET A   1       0.000   0.000   0.000  1.00 45.00           N
ATOM      2  CA  MET A   1       1.458   0.000   0.000  1.00 48.50           C
ATOM      3  N   LYS A   2       3.000   1.500   0.000  1.00 91.00           N
ATOM      4  CA  LYS A   2       4.000   1.600   0.000  1.00 92.00           C
ATOM      5  N   LEU A   3       5.000   0.000   0.000  1.00 75.00           N
ATOM      6  CA  LEU A   3       6.000   0.000   0.000  1.00 76.00           C
END
`

const sampleCIF = `data_AF-P00520-F1
#
_struct.title 'AlphaFold prediction'
#
loop_
_ma_qa_metric_local.label_asym_id
_ma_qa_metric_local.metric_value
A 87.2
#
loop_
_atom_site.group_PDB
_atom_site.id
_atom_site.type_symbol
_atom_site.label_atom_id
_atom_site.label_comp_id
_atom_site.label_asym_id
_atom_site.label_seq_id
_atom_site.Cartn_x
_atom_site.Cartn_y
_atom_site.Cartn_z
_atom_site.B_iso_or_equiv
_atom_site.auth_seq_id
_atom_site.auth_asym_id
_atom_site.pdbx_PDB_model_num
ATOM 1 N N MET A 1 0.0 0.0 0.0 87.20 1 A 1
ATOM 2 C CA MET A 1 1.0 0.0 0.0 88.10 1 A 1
ATOM 3 N N "GLU" A 2 2.0 0.0 0.0 93.00 2 A 1
ATOM 4 C CA GLU A 2 3.0 0.0 0.0 94.00 2 A 1
#
`

const sampleSDF = `aspirin
  molview

 13 13  0  0  0  0  0  0  0  0999 V2000
    1.2333    0.5540    0.7792 O   0  0  0  0  0  0  0  0  0  0  0  0
M  END
$$$$
`

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Format
	}{
		{name: "pdb with header", data: samplePDB, want: FormatPDB},
		{name: "pdb atoms only", data: samplePredictedPDB, want: FormatPDB},
		{name: "mmcif data block", data: sampleCIF, want: FormatMMCIF},
		{name: "mmcif without data line", data: "\n\nloop_\n_atom_site.id\n1\n", want: FormatMMCIF},
		{name: "sdf", data: sampleSDF, want: FormatSDF},
		{name: "leading whitespace", data: "\n\n   " + samplePDB, want: FormatPDB},
		{name: "sdf with blank title", data: "\n  molview\n\n  1  0  0  0  0  0  0  0  0  0999 V3000\nM  END\n", want: FormatSDF},
		{
			name: "pdb mentioning molfile markers",
			data: "HEADER    LIGAND COMPLEX\nREMARK   3 LIGAND COORDINATES FROM V2000 MOLFILE\n" +
				"COMPND   2 MOLECULE: M  END OF CHAIN;\n" + samplePredictedPDB,
			want: FormatPDB,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat(tt.data)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectFormat() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDetectFormatUnknown(t *testing.T) {
	for _, data := range []string{"", "   \n  ", "hello world\nthis is not a structure"} {
		if _, err := DetectFormat(data); !errors.Is(err, molerr.ErrUnknownFormat) {
			t.Errorf("Expected UnknownFormat for %q, got %v", data, err)
		}
	}
}

func TestNormalizeFormat(t *testing.T) {
	tests := map[string]Format{
		"pdb":   FormatPDB,
		"PDB":   FormatPDB,
		"cif":   FormatMMCIF,
		"mmCIF": FormatMMCIF,
		"sdf":   FormatSDF,
	}
	for in, want := range tests {
		got, err := NormalizeFormat(in)
		if err != nil {
			t.Errorf("NormalizeFormat(%q) failed: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("NormalizeFormat(%q) = %s, want %s", in, got, want)
		}
	}

	if _, err := NormalizeFormat("xyz"); !errors.Is(err, molerr.ErrUnknownFormat) {
		t.Errorf("Expected UnknownFormat, got %v", err)
	}
}

func TestNewDetectsFormat(t *testing.T) {
	s, err := New("test", samplePDB, "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Format != FormatPDB {
		t.Errorf("Expected pdb, got %s", s.Format)
	}

	s, err = New("test", sampleCIF, "cif")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Format != FormatMMCIF {
		t.Errorf("Expected mmcif, got %s", s.Format)
	}
}

func TestScanPDB(t *testing.T) {
	sum, err := Scan(&Structure{Name: "dipeptide", Data: samplePDB, Format: FormatPDB})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if sum.Title != "SAMPLE DIPEPTIDE" {
		t.Errorf("Expected title, got %q", sum.Title)
	}
	if sum.Atoms != 7 || sum.HetAtoms != 2 {
		t.Errorf("Expected 7 atoms and 2 het atoms, got %d and %d", sum.Atoms, sum.HetAtoms)
	}
	if sum.SolventResidues != 2 {
		t.Errorf("Expected 2 solvent residues, got %d", sum.SolventResidues)
	}
	ids := sum.ChainIDs()
	if len(ids) != 2 || ids[0] != "A" || ids[1] != "B" {
		t.Fatalf("Expected chains [A B], got %v", ids)
	}
	if n := len(sum.Chain("A").Residues); n != 2 {
		t.Errorf("Expected 2 residues in chain A, got %d", n)
	}
	if sum.ResidueCount() != 3 {
		t.Errorf("Expected 3 residues, got %d", sum.ResidueCount())
	}
	if !sum.Experimental {
		t.Error("Expected EXPDTA to mark the structure experimental")
	}
	if sum.HasConfidence {
		t.Error("Experimental structure must not report confidence values")
	}
}

func TestScanPredictedPDB(t *testing.T) {
	sum, err := Scan(&Structure{Data: samplePredictedPDB, Format: FormatPDB})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if !sum.HasConfidence {
		t.Fatal("Expected confidence values for predicted model")
	}

	residues := sum.Chain("A").Residues
	want := []float64{48.5, 92, 76}
	for i, r := range residues {
		if r.Confidence != want[i] {
			t.Errorf("Residue %d: expected CA confidence %v, got %v", i, want[i], r.Confidence)
		}
	}
	if mean := sum.MeanConfidence(); mean < 72 || mean > 72.2 {
		t.Errorf("Expected mean confidence ~72.17, got %v", mean)
	}
}

func TestScanMMCIF(t *testing.T) {
	sum, err := Scan(&Structure{Data: sampleCIF, Format: FormatMMCIF})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if sum.Title != "AlphaFold prediction" {
		t.Errorf("Expected quoted title, got %q", sum.Title)
	}
	if sum.Atoms != 4 {
		t.Errorf("Expected 4 atoms, got %d", sum.Atoms)
	}
	chain := sum.Chain("A")
	if chain == nil || len(chain.Residues) != 2 {
		t.Fatalf("Expected 2 residues in chain A, got %+v", chain)
	}
	if chain.Residues[1].Name != "GLU" {
		t.Errorf("Expected quoted residue name GLU, got %s", chain.Residues[1].Name)
	}
	if chain.Residues[0].Confidence != 88.1 {
		t.Errorf("Expected CA confidence 88.1, got %v", chain.Residues[0].Confidence)
	}
	if !sum.HasConfidence {
		t.Error("Expected ma_qa_metric block to mark confidence values")
	}
}

func TestScanSDF(t *testing.T) {
	sum, err := Scan(&Structure{Data: sampleSDF, Format: FormatSDF})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if sum.Molecules != 1 {
		t.Errorf("Expected 1 molecule, got %d", sum.Molecules)
	}
	if sum.HetAtoms != 13 {
		t.Errorf("Expected 13 atoms from counts line, got %d", sum.HetAtoms)
	}
	if sum.HasConfidence || len(sum.Chains) != 0 {
		t.Error("SDF has no chains or confidence values")
	}
}

func TestTokenize(t *testing.T) {
	got := tokenize(`ATOM 1 'O5''' "two words" x`)
	want := []string{"ATOM", "1", "O5''", "two words", "x"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Token %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
