package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/go-termfmt"
)

// terminalFormatter formats output as plain text for terminal display using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter
func NewTerminal(color, emoji bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = emoji
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) FormatStructures(reports []*StructureReport) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b, "Structure Summary")

	for _, r := range reports {
		f.writeStatistics(&b, r)
		f.writeChains(&b, r)
		f.writeConfidence(&b, r)
		f.writeNotes(&b, r)
	}

	return []byte(b.String()), nil
}

func (f *terminalFormatter) FormatSearch(report *SearchReport) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b, "RCSB Search")

	fmt.Fprintf(&b, "%s %q\n", symbol("pattern", "🔍", f.opts), report.Query)
	if len(report.IDs) == 0 {
		b.WriteString("└─ no entries found\n")
		return []byte(b.String()), nil
	}

	items := make([]termfmt.TreeItem, 0, len(report.IDs))
	for i, id := range report.IDs {
		items = append(items, termfmt.TreeItem{
			Label: fmt.Sprintf("%d", i+1),
			Value: id,
			Last:  i == len(report.IDs)-1,
		})
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n")

	return []byte(b.String()), nil
}

// writeStatistics writes one structure's counts with tree-style formatting
func (f *terminalFormatter) writeStatistics(b *strings.Builder, r *StructureReport) {
	fmt.Fprintf(b, "%s %s\n", symbol("statistics", "📊", f.opts), r.Name)

	items := []termfmt.TreeItem{
		{Label: "Source", Value: r.Source},
		{Label: "Format", Value: r.Format.String()},
		{Label: "Size", Value: formatBytes(r.Bytes)},
	}

	if sum := r.Summary; sum != nil {
		if sum.Title != "" {
			items = append(items, termfmt.TreeItem{Label: "Title", Value: sum.Title})
		}
		items = append(items,
			termfmt.TreeItem{Label: "Atoms", Value: formatNumber(sum.Atoms)},
			termfmt.TreeItem{Label: "Hetero atoms", Value: formatNumber(sum.HetAtoms)},
		)
		if sum.Molecules > 0 {
			items = append(items, termfmt.TreeItem{Label: "Molecules", Value: formatNumber(sum.Molecules)})
		}
		kind := "predicted"
		if sum.Experimental {
			kind = "experimental"
		} else if !sum.HasConfidence {
			kind = "unknown"
		}
		items = append(items,
			termfmt.TreeItem{Label: "Models", Value: formatNumber(sum.Models)},
			termfmt.TreeItem{Label: "Residues", Value: formatNumber(sum.ResidueCount())},
			termfmt.TreeItem{Label: "Origin", Value: kind},
		)
	}
	items[len(items)-1].Last = true

	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n\n")
}

// writeChains lists chains with their residue counts and colors
func (f *terminalFormatter) writeChains(b *strings.Builder, r *StructureReport) {
	rows := r.Chains()
	if len(rows) == 0 {
		return
	}

	title := "Chains"
	if r.Coloring != nil {
		title = fmt.Sprintf("Chains (%s)", r.Coloring.Theme)
	}
	fmt.Fprintf(b, "%s %s\n", symbol("target", "🎯", f.opts), title)

	for i, row := range rows {
		branch := "├─"
		if i == len(rows)-1 {
			branch = "└─"
		}
		fmt.Fprintf(b, "%s %s: %d residues", branch, row.ID, row.Residues)
		if row.Color != "" {
			fmt.Fprintf(b, " %s", row.Color)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

// writeConfidence writes pLDDT bands with confidence bars
func (f *terminalFormatter) writeConfidence(b *strings.Builder, r *StructureReport) {
	bands := r.Bands()
	if len(bands) == 0 {
		return
	}
	total := r.Summary.ResidueCount()

	fmt.Fprintf(b, "%s pLDDT %.1f\n", symbol("insights", "💡", f.opts), r.Summary.MeanConfidence())

	items := make([]termfmt.TreeItem, 0, len(bands))
	for i, band := range bands {
		share := 0.0
		if total > 0 {
			share = float64(band.Residues) / float64(total)
		}
		items = append(items, termfmt.TreeItem{
			Label: fmt.Sprintf("%-10s %s", bandLabel(band.Name), termfmt.CreateConfidenceBar(share, f.opts)),
			Value: fmt.Sprintf("%d (%.0f%%)", band.Residues, share*100),
			Last:  i == len(bands)-1,
		})
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n\n")
}

// writeNotes writes follow-up hints
func (f *terminalFormatter) writeNotes(b *strings.Builder, r *StructureReport) {
	notes := generateNotes(r)
	if len(notes) == 0 {
		return
	}

	fmt.Fprintf(b, "%s Notes\n", symbol("recommendations", "📋", f.opts))
	for _, note := range notes {
		b.WriteString("• " + note + "\n")
	}
	b.WriteString("\n")
}

// writeHeader writes a box-drawn header
func (f *terminalFormatter) writeHeader(b *strings.Builder, header string) {
	headerLen := len(header)

	b.WriteString("╔" + strings.Repeat("═", headerLen+2) + "╗\n")
	b.WriteString("║ " + header + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", headerLen+2) + "╝\n\n")
}
