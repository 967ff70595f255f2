package structure

import (
	"strings"

	"github.com/yildizm/molview/internal/molerr"
)

// Format tags a structure payload
type Format string

const (
	FormatPDB   Format = "pdb"
	FormatMMCIF Format = "mmcif"
	FormatSDF   Format = "sdf"
)

// String returns the format tag
func (f Format) String() string {
	return string(f)
}

// NormalizeFormat maps user spellings onto a Format; cif is an alias of mmcif
func NormalizeFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdb", "ent":
		return FormatPDB, nil
	case "mmcif", "cif":
		return FormatMMCIF, nil
	case "sdf", "mol":
		return FormatSDF, nil
	default:
		return "", molerr.New(molerr.ErrTypeUnknownFormat, s, "unsupported format (use pdb, mmcif or sdf)")
	}
}

// pdbRecords are record names that open a PDB file
var pdbRecords = map[string]bool{
	"HEADER": true, "TITLE": true, "COMPND": true, "SOURCE": true,
	"KEYWDS": true, "EXPDTA": true, "AUTHOR": true, "REVDAT": true,
	"REMARK": true, "SEQRES": true, "HELIX": true, "SHEET": true,
	"ATOM": true, "HETATM": true, "MODEL": true, "CRYST1": true,
	"ORIGX": true, "SCALE": true, "MTRIX": true,
}

const (
	detectLines    = 50
	pdbRecordLines = 20
)

// DetectFormat inspects the leading lines of a payload
func DetectFormat(data string) (Format, error) {
	lines := leadingLines(data, detectLines)
	if len(lines) == 0 {
		return "", molerr.New(molerr.ErrTypeUnknownFormat, "", "empty structure data")
	}

	if strings.HasPrefix(strings.ToLower(lines[0]), "data_") {
		return FormatMMCIF, nil
	}
	for _, line := range lines {
		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, "loop_") ||
			strings.HasPrefix(lower, "_atom_site") ||
			strings.HasPrefix(lower, "_cell") {
			return FormatMMCIF, nil
		}
	}

	if isMolfile(data) {
		return FormatSDF, nil
	}

	for i, line := range lines {
		if i >= pdbRecordLines {
			break
		}
		if pdbRecords[recordName(line)] {
			return FormatPDB, nil
		}
	}
	for _, line := range lines {
		switch recordName(line) {
		case "ATOM", "HETATM":
			return FormatPDB, nil
		}
	}

	return "", molerr.New(molerr.ErrTypeUnknownFormat, "", "no PDB, mmCIF or SDF markers found")
}

// isMolfile looks for the V2000/V3000 counts line, the fourth line of a
// molfile, or for a record that starts with M  END or is $$$$. Free text
// elsewhere, such as PDB REMARK lines, never matches.
func isMolfile(data string) bool {
	header := strings.SplitN(data, "\n", 5)
	if len(header) >= 4 {
		counts := strings.ToUpper(header[3])
		if strings.Contains(counts, "V2000") || strings.Contains(counts, "V3000") {
			return true
		}
	}
	for line := range strings.Lines(data) {
		line = strings.TrimRight(line, "\r\n ")
		if line == "$$$$" || strings.HasPrefix(line, "M  END") {
			return true
		}
	}
	return false
}

// leadingLines returns up to n trimmed non-empty lines out of the first n lines
func leadingLines(data string, n int) []string {
	raw := strings.SplitN(strings.TrimSpace(data), "\n", n+1)
	if len(raw) > n {
		raw = raw[:n]
	}
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// recordName returns the upper-cased PDB record name (columns 1-6)
func recordName(line string) string {
	if len(line) > 6 {
		line = line[:6]
	}
	return strings.ToUpper(strings.TrimSpace(line))
}
