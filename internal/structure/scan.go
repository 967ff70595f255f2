package structure

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/yildizm/molview/internal/molerr"
)

// Scan extracts a Summary from a structure's atom records. Only the first
// model of multi-model files contributes residues.
func Scan(s *Structure) (*Summary, error) {
	if s == nil {
		return nil, molerr.New(molerr.ErrTypeInvalidArgument, "", "nil structure")
	}

	var (
		sum *Summary
		err error
	)
	switch s.Format {
	case FormatPDB:
		sum, err = scanPDB(s.Data)
	case FormatMMCIF:
		sum, err = scanMMCIF(s.Data)
	case FormatSDF:
		sum = scanSDF(s.Data)
	default:
		return nil, molerr.New(molerr.ErrTypeUnknownFormat, string(s.Format), "cannot scan format")
	}
	if err != nil {
		return nil, err
	}

	sum.Name = s.Name
	sum.Format = s.Format
	return sum, nil
}

// builder accumulates atoms into chains and residues
type builder struct {
	sum       *Summary
	chains    map[string]*Chain
	last      *Residue
	lastKey   string
	hasCA     bool
	bfactors  int
	outOfBand bool
	nonZero   bool
}

func newBuilder() *builder {
	return &builder{
		sum:    &Summary{Models: 1},
		chains: make(map[string]*Chain),
	}
}

type atomRecord struct {
	het       bool
	atomName  string
	resName   string
	chainID   string
	resNum    int
	insertion string
	bfactor   float64
	hasB      bool
}

func (b *builder) add(a atomRecord) {
	if a.het {
		b.sum.HetAtoms++
	} else {
		b.sum.Atoms++
	}

	key := a.chainID + "|" + strconv.Itoa(a.resNum) + a.insertion + "|" + a.resName
	newResidue := key != b.lastKey
	b.lastKey = key

	if a.het {
		if newResidue && IsSolvent(a.resName) {
			b.sum.SolventResidues++
		}
		b.last = nil
		return
	}

	if newResidue {
		chain, ok := b.chains[a.chainID]
		if !ok {
			chain = &Chain{ID: a.chainID}
			b.chains[a.chainID] = chain
			b.sum.Chains = append(b.sum.Chains, chain)
		}
		chain.Residues = append(chain.Residues, Residue{
			Name:       a.resName,
			Number:     a.resNum,
			Insertion:  a.insertion,
			Confidence: a.bfactor,
		})
		b.last = &chain.Residues[len(chain.Residues)-1]
		b.hasCA = false
		b.track(a)
		return
	}

	// residue confidence is taken from CA when present
	if b.last != nil && a.atomName == "CA" && !b.hasCA {
		b.last.Confidence = a.bfactor
		b.hasCA = true
		b.track(a)
	}
}

func (b *builder) track(a atomRecord) {
	if !a.hasB {
		return
	}
	b.bfactors++
	if a.bfactor < 0 || a.bfactor > 100 {
		b.outOfBand = true
	}
	if a.bfactor != 0 {
		b.nonZero = true
	}
}

// finish decides whether B-factors carry per-residue confidence: the model
// must not be experimental and every value must lie in [0,100].
func (b *builder) finish(qaMetrics bool) *Summary {
	if b.sum.ResidueCount() > 0 {
		plausible := b.bfactors > 0 && !b.outOfBand && b.nonZero
		b.sum.HasConfidence = qaMetrics || (!b.sum.Experimental && plausible)
	}
	return b.sum
}

func scanPDB(data string) (*Summary, error) {
	b := newBuilder()
	models := 0
	inFirstModel := true

	scanner := bufio.NewScanner(strings.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		switch recordName(line) {
		case "TITLE":
			if len(line) > 10 {
				b.sum.Title = strings.TrimSpace(b.sum.Title + " " + strings.TrimSpace(line[10:]))
			}
		case "EXPDTA":
			b.sum.Experimental = true
		case "MODEL":
			models++
		case "ENDMDL":
			inFirstModel = false
		case "ATOM", "HETATM":
			if !inFirstModel {
				continue
			}
			if a, ok := parsePDBAtom(line); ok {
				b.add(a)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, molerr.Wrap(molerr.ErrTypeInvalidArgument, "", "failed to read PDB data", err)
	}

	if models > 0 {
		b.sum.Models = models
	}
	return b.finish(false), nil
}

// parsePDBAtom reads the fixed columns of an ATOM/HETATM record
func parsePDBAtom(line string) (atomRecord, bool) {
	if len(line) < 27 {
		return atomRecord{}, false
	}
	resNum, err := strconv.Atoi(strings.TrimSpace(line[22:26]))
	if err != nil {
		return atomRecord{}, false
	}

	a := atomRecord{
		het:       strings.HasPrefix(line, "HETATM"),
		atomName:  strings.TrimSpace(line[12:16]),
		resName:   strings.ToUpper(strings.TrimSpace(line[17:20])),
		chainID:   strings.TrimSpace(line[21:22]),
		resNum:    resNum,
		insertion: strings.TrimSpace(line[26:27]),
	}
	if len(line) >= 66 {
		if v, err := strconv.ParseFloat(strings.TrimSpace(line[60:66]), 64); err == nil {
			a.bfactor = v
			a.hasB = true
		}
	}
	return a, true
}

func scanMMCIF(data string) (*Summary, error) {
	b := newBuilder()
	lines := strings.Split(data, "\n")
	qaMetrics := false
	firstModel := ""
	models := map[string]bool{}

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		lower := strings.ToLower(line)

		switch {
		case strings.HasPrefix(lower, "_ma_qa_metric_local"):
			qaMetrics = true
		case strings.HasPrefix(lower, "_exptl.method"):
			b.sum.Experimental = true
		case strings.HasPrefix(lower, "_struct.title"):
			fields := tokenize(line)
			if len(fields) > 1 {
				b.sum.Title = strings.Join(fields[1:], " ")
			}
		case lower == "loop_" && i+1 < len(lines) &&
			strings.HasPrefix(strings.ToLower(strings.TrimSpace(lines[i+1])), "_atom_site."):
			var columns []string
			j := i + 1
			for ; j < len(lines); j++ {
				col := strings.TrimSpace(lines[j])
				if !strings.HasPrefix(strings.ToLower(col), "_atom_site.") {
					break
				}
				columns = append(columns, strings.TrimPrefix(strings.ToLower(col), "_atom_site."))
			}
			idx := columnIndex(columns)
			for ; j < len(lines); j++ {
				row := strings.TrimSpace(lines[j])
				if row == "" {
					continue
				}
				if row == "#" || strings.HasPrefix(row, "_") || strings.HasPrefix(strings.ToLower(row), "loop_") ||
					strings.HasPrefix(strings.ToLower(row), "data_") {
					break
				}
				fields := tokenize(row)
				if len(fields) < len(columns) {
					continue
				}
				model := idx.get(fields, "pdbx_pdb_model_num")
				if model != "" {
					models[model] = true
					if firstModel == "" {
						firstModel = model
					}
					if model != firstModel {
						continue
					}
				}
				if a, ok := idx.atom(fields); ok {
					b.add(a)
				}
			}
			i = j - 1
		}
	}

	if len(models) > 0 {
		b.sum.Models = len(models)
	}
	return b.finish(qaMetrics), nil
}

type cifColumns map[string]int

func columnIndex(columns []string) cifColumns {
	idx := make(cifColumns, len(columns))
	for i, c := range columns {
		idx[c] = i
	}
	return idx
}

func (c cifColumns) get(fields []string, names ...string) string {
	for _, name := range names {
		if i, ok := c[name]; ok && i < len(fields) {
			v := fields[i]
			if v == "?" || v == "." {
				return ""
			}
			return v
		}
	}
	return ""
}

func (c cifColumns) atom(fields []string) (atomRecord, bool) {
	resNum, err := strconv.Atoi(c.get(fields, "auth_seq_id", "label_seq_id"))
	if err != nil {
		return atomRecord{}, false
	}
	a := atomRecord{
		het:       strings.EqualFold(c.get(fields, "group_pdb"), "HETATM"),
		atomName:  strings.Trim(c.get(fields, "label_atom_id", "auth_atom_id"), `"`),
		resName:   strings.ToUpper(c.get(fields, "label_comp_id", "auth_comp_id")),
		chainID:   c.get(fields, "auth_asym_id", "label_asym_id"),
		resNum:    resNum,
		insertion: c.get(fields, "pdbx_pdb_ins_code"),
	}
	if v, err := strconv.ParseFloat(c.get(fields, "b_iso_or_equiv"), 64); err == nil {
		a.bfactor = v
		a.hasB = true
	}
	return a, true
}

// tokenize splits a CIF data line on whitespace, honouring quoted values
func tokenize(line string) []string {
	var (
		out []string
		i   int
	)
	for i < len(line) {
		for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		if i >= len(line) {
			break
		}
		if q := line[i]; q == '\'' || q == '"' {
			end := i + 1
			for end < len(line) {
				if line[end] == q && (end+1 == len(line) || line[end+1] == ' ' || line[end+1] == '\t') {
					break
				}
				end++
			}
			out = append(out, line[i+1:min(end, len(line))])
			i = end + 1
			continue
		}
		start := i
		for i < len(line) && line[i] != ' ' && line[i] != '\t' {
			i++
		}
		out = append(out, line[start:i])
	}
	return out
}

func scanSDF(data string) *Summary {
	sum := &Summary{Models: 1}
	lines := strings.Split(data, "\n")

	block := 0
	for i, line := range lines {
		if block == 3 && len(line) >= 3 {
			if n, err := strconv.Atoi(strings.TrimSpace(line[:3])); err == nil {
				sum.HetAtoms += n
			}
		}
		block++
		if strings.HasPrefix(strings.TrimSpace(line), "$$$$") {
			sum.Molecules++
			block = 0
			continue
		}
		if i == len(lines)-1 && block > 3 {
			sum.Molecules++
		}
	}
	return sum
}
