package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/go-termfmt"
)

// formatNumber formats numbers with commas for readability
func formatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return addCommas(fmt.Sprintf("%d", n))
}

// addCommas adds commas to number strings
func addCommas(s string) string {
	if len(s) <= 3 {
		return s
	}
	return addCommas(s[:len(s)-3]) + "," + s[len(s)-3:]
}

// formatBytes renders a payload size
func formatBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// symbol returns the termfmt emoji for key, or fallback when it has none
func symbol(key, fallback string, opts *termfmt.TerminalOptions) string {
	if s := termfmt.GetEmoji(key, opts); s != "" {
		return s
	}
	if opts != nil && !opts.Emoji {
		return ""
	}
	return fallback
}

// bandLabel turns very_high into "Very high"
func bandLabel(name string) string {
	s := strings.ReplaceAll(name, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// generateNotes lists follow-up hints for a structure
func generateNotes(r *StructureReport) []string {
	var notes []string

	sum := r.Summary
	if sum == nil {
		return []string{"Atom records could not be scanned; only Molstar-side color themes apply"}
	}

	if sum.HasConfidence {
		notes = append(notes, fmt.Sprintf("Predicted model with mean pLDDT %.1f; color it with --color plddt",
			sum.MeanConfidence()))
	}
	if sum.SolventResidues > 0 {
		notes = append(notes, fmt.Sprintf("%d solvent residue(s); --remove-solvent hides them", sum.SolventResidues))
	}
	if sum.Models > 1 {
		notes = append(notes, fmt.Sprintf("%d models in file; Molstar shows the first", sum.Models))
	}
	if len(sum.Chains) > 1 {
		notes = append(notes, fmt.Sprintf("%d chains; --color chain tells them apart", len(sum.Chains)))
	}
	return notes
}
