package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/yildizm/molview/internal/colormode"
	"github.com/yildizm/molview/internal/formatter"
	"github.com/yildizm/molview/internal/logger"
	"github.com/yildizm/molview/internal/structure"
)

type infoOptions struct {
	pdbIDs       []string
	alphaFoldIDs []string
	format       string
	version      int
	colorMode    string
	palette      string
}

func newInfoCommand() *cobra.Command {
	opts := &infoOptions{}

	cmd := &cobra.Command{
		Use:   "info [files...]",
		Short: "Summarize chains, residues and confidence of structures",
		Long: `Print a summary of each structure: format, atom and residue counts,
chains and, for predicted models, pLDDT confidence bands.

With --color the chain listing shows the color each chain gets in that mode.

Examples:
  molview info 1ubq.pdb
  molview info --pdb 4HHB --color chain
  molview info --alphafold P69905 -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.Context(), cmd.OutOrStdout(), args, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.pdbIDs, "pdb", nil, "RCSB PDB IDs to fetch")
	cmd.Flags().StringSliceVar(&opts.alphaFoldIDs, "alphafold", nil, "UniProt accessions to fetch from AlphaFold DB")
	cmd.Flags().StringVar(&opts.format, "format", "", "download format for --pdb (pdb, mmcif)")
	cmd.Flags().IntVar(&opts.version, "version", 0, "AlphaFold DB version (default from config)")
	cmd.Flags().StringVar(&opts.colorMode, "color", "", "show chain colors for this color mode")
	cmd.Flags().StringVar(&opts.palette, "palette", "", "rainbow palette for --color rainbow")

	return cmd
}

func runInfo(ctx context.Context, stdout io.Writer, args []string, opts *infoOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := newLogger("info")

	sources := collectSources(args, opts.pdbIDs, opts.alphaFoldIDs)
	if len(sources) == 0 {
		return fmt.Errorf("no structures given: pass files, --pdb or --alphafold")
	}

	var theme *colormode.Theme
	if opts.colorMode != "" {
		params := GetGlobalConfig().Style.Params
		if opts.palette != "" {
			params.Palette = opts.palette
		}
		mode, err := colormode.Parse(opts.colorMode, params)
		if err != nil {
			return err
		}
		t, err := colormode.Resolve(mode)
		if err != nil {
			return err
		}
		theme = &t
	}

	pdbFormat, err := downloadFormat(opts.format)
	if err != nil {
		return err
	}
	loaded, err := newSourceLoader(pdbFormat, opts.version).loadAll(ctx, sources)
	if err != nil {
		return err
	}

	reports := make([]*formatter.StructureReport, 0, len(loaded))
	for _, ls := range loaded {
		report, err := buildReport(ls, log)
		if err != nil {
			return fmt.Errorf("%s: %w", ls.source, err)
		}
		if theme != nil {
			report.WithTheme(*theme)
		}
		reports = append(reports, report)
	}

	f, err := formatter.New(getOutputFormat(), useColor(stdout), !isEmojiDisabled())
	if err != nil {
		return err
	}
	out, err := f.FormatStructures(reports)
	if err != nil {
		return err
	}
	_, err = stdout.Write(out)
	return err
}

// buildReport parses and scans one structure. A scan failure still yields
// a report without chains.
func buildReport(ls *loadedSource, log *logger.Logger) (*formatter.StructureReport, error) {
	s, err := structure.New(ls.name, ls.data, string(ls.format))
	if err != nil {
		return nil, err
	}
	sum, err := structure.Scan(s)
	if err != nil {
		log.Warn("structure scan failed", logger.F("source", ls.source), logger.Err(err))
		sum = nil
	}
	return formatter.NewStructureReport(ls.source.String(), s, sum), nil
}
