package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yildizm/molview/internal/palette"
	"github.com/yildizm/molview/internal/ui"
)

func newPalettesCommand() *cobra.Command {
	var tables []string

	cmd := &cobra.Command{
		Use:   "palettes",
		Short: "Show rainbow palettes and color tables",
		Long: `Show the rainbow palettes available to --palette, and optionally the
fixed color tables used by the other color modes.

Tables: chain, plddt, named, element, residue, all

Examples:
  molview palettes
  molview palettes --table plddt --table chain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPalettes(cmd.OutOrStdout(), tables)
		},
	}

	cmd.Flags().StringSliceVar(&tables, "table", nil, "also show color tables (chain, plddt, named, element, residue, all)")
	return cmd
}

func runPalettes(w io.Writer, tables []string) error {
	color := useColor(w)

	out, err := ui.RenderPalettes(color)
	if err != nil {
		return err
	}

	for _, name := range expandTables(tables) {
		table, title, err := colorTable(name)
		if err != nil {
			return err
		}
		out += "\n" + ui.RenderColorTable(title, table, color)
	}

	_, err = io.WriteString(w, out)
	return err
}

var tableNames = []string{"chain", "plddt", "named", "element", "residue"}

func expandTables(tables []string) []string {
	for _, t := range tables {
		if strings.EqualFold(t, "all") {
			return tableNames
		}
	}
	return tables
}

// colorTable returns a color table and its title by name
func colorTable(name string) (map[string]string, string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "chain":
		table := make(map[string]string)
		for i, c := range palette.ChainColors() {
			table[fmt.Sprintf("%02d", i+1)] = c
		}
		return table, "Chain colors (assigned in chain order)", nil
	case "plddt":
		return palette.PLDDTColors(), "pLDDT confidence bands", nil
	case "named":
		return palette.NamedColors(), "Named colors", nil
	case "element":
		return palette.ElementTable(), "Element colors", nil
	case "residue":
		return palette.ResidueTable(), "Residue colors", nil
	default:
		return nil, "", fmt.Errorf("unknown color table: %s (available: %s, all)", name, strings.Join(tableNames, ", "))
	}
}
