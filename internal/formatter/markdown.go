package formatter

import (
	"fmt"
	"strings"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) FormatStructures(reports []*StructureReport) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# Structure Report\n\n")

	for _, r := range reports {
		fmt.Fprintf(&b, "## %s\n\n", escapeMarkdown(r.Name))
		f.writeSummaryTable(&b, r)
		f.writeChainTable(&b, r)
		f.writeBandTable(&b, r)
		f.writeNotes(&b, r)
	}

	b.WriteString("---\n")
	b.WriteString("*Report generated by molview*\n")

	return []byte(b.String()), nil
}

func (f *markdownFormatter) FormatSearch(report *SearchReport) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# RCSB Search\n\n")
	fmt.Fprintf(&b, "**Query**: %s\n\n", escapeMarkdown(report.Query))

	if len(report.IDs) == 0 {
		b.WriteString("No entries found.\n")
		return []byte(b.String()), nil
	}

	b.WriteString("| # | PDB ID |\n")
	b.WriteString("|---|--------|\n")
	for i, id := range report.IDs {
		fmt.Fprintf(&b, "| %d | [%s](https://www.rcsb.org/structure/%s) |\n", i+1, id, id)
	}
	return []byte(b.String()), nil
}

// writeSummaryTable writes the metric table of one structure
func (f *markdownFormatter) writeSummaryTable(b *strings.Builder, r *StructureReport) {
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(b, "| Source | %s |\n", escapeMarkdown(r.Source))
	fmt.Fprintf(b, "| Format | %s |\n", r.Format)
	fmt.Fprintf(b, "| Size | %s |\n", formatBytes(r.Bytes))

	if sum := r.Summary; sum != nil {
		if sum.Title != "" {
			fmt.Fprintf(b, "| Title | %s |\n", escapeMarkdown(sum.Title))
		}
		fmt.Fprintf(b, "| Atoms | %s |\n", formatNumber(sum.Atoms))
		fmt.Fprintf(b, "| Hetero atoms | %s |\n", formatNumber(sum.HetAtoms))
		fmt.Fprintf(b, "| Models | %d |\n", sum.Models)
		fmt.Fprintf(b, "| Residues | %s |\n", formatNumber(sum.ResidueCount()))
		fmt.Fprintf(b, "| Solvent residues | %d |\n", sum.SolventResidues)
		if sum.HasConfidence {
			fmt.Fprintf(b, "| Mean pLDDT | %.1f |\n", sum.MeanConfidence())
		}
	}
	b.WriteString("\n")
}

// writeChainTable lists chains
func (f *markdownFormatter) writeChainTable(b *strings.Builder, r *StructureReport) {
	rows := r.Chains()
	if len(rows) == 0 {
		return
	}

	b.WriteString("### Chains\n\n")
	b.WriteString("| Chain | Residues | Color |\n")
	b.WriteString("|-------|----------|-------|\n")
	for _, row := range rows {
		color := row.Color
		if color == "" {
			color = "-"
		}
		fmt.Fprintf(b, "| %s | %d | %s |\n", row.ID, row.Residues, color)
	}
	b.WriteString("\n")
}

// writeBandTable writes the pLDDT band distribution
func (f *markdownFormatter) writeBandTable(b *strings.Builder, r *StructureReport) {
	bands := r.Bands()
	if len(bands) == 0 {
		return
	}

	b.WriteString("### Confidence\n\n")
	b.WriteString("| Band | Color | Residues |\n")
	b.WriteString("|------|-------|----------|\n")
	for _, band := range bands {
		fmt.Fprintf(b, "| %s | %s | %d |\n", bandLabel(band.Name), band.Color, band.Residues)
	}
	b.WriteString("\n")
}

// writeNotes writes a numbered list of hints
func (f *markdownFormatter) writeNotes(b *strings.Builder, r *StructureReport) {
	notes := generateNotes(r)
	if len(notes) == 0 {
		return
	}

	b.WriteString("### Notes\n\n")
	for i, note := range notes {
		fmt.Fprintf(b, "%d. %s\n", i+1, note)
	}
	b.WriteString("\n")
}

var markdownEscaper = strings.NewReplacer("|", "\\|", "*", "\\*", "_", "\\_", "`", "\\`")

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
