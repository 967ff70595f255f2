package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yildizm/molview/internal/config"
	"github.com/yildizm/molview/internal/display"
	"github.com/yildizm/molview/internal/emoji"
	"github.com/yildizm/molview/internal/logger"
	"github.com/yildizm/molview/internal/molerr"
	"github.com/yildizm/molview/internal/structure"
	"github.com/yildizm/molview/internal/viewer"
)

// viewOptions are the flags of the view command
type viewOptions struct {
	style        styleOptions
	pdbIDs       []string
	alphaFoldIDs []string
	grid         string
	format       string
	version      int
	out          string
	mime         bool
}

func newViewCommand() *cobra.Command {
	opts := &viewOptions{}

	cmd := &cobra.Command{
		Use:   "view [files...]",
		Short: "Render structures into a Molstar viewer page",
		Long: `Render one or more structures with Molstar.

Structures are read from files ("-" reads stdin), fetched from RCSB with --pdb,
or fetched from the AlphaFold database with --alphafold. With --grid RxC each
structure gets its own cell, filled row by row.

Examples:
  molview view 1ubq.pdb --out ubq.html
  molview view --pdb 1UBQ --color secondary --surface
  molview view --alphafold P69905 --color plddt --out hba.html
  molview view --pdb 1A3N --pdb 4HHB --grid 1x2 --color chain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args, opts)
		},
	}

	addStyleFlags(cmd, &opts.style)
	cmd.Flags().StringSliceVar(&opts.pdbIDs, "pdb", nil, "RCSB PDB IDs to fetch")
	cmd.Flags().StringSliceVar(&opts.alphaFoldIDs, "alphafold", nil, "UniProt accessions to fetch from AlphaFold DB")
	cmd.Flags().StringVar(&opts.grid, "grid", "", "viewer grid as ROWSxCOLS, e.g. 2x2")
	cmd.Flags().StringVar(&opts.format, "format", "", "download format for --pdb (pdb, mmcif)")
	cmd.Flags().IntVar(&opts.version, "version", 0, "AlphaFold DB version (default from config)")
	cmd.Flags().StringVar(&opts.out, "out", "", "write a standalone HTML page to this file")
	cmd.Flags().BoolVar(&opts.mime, "mime", false, "print a notebook display bundle instead of HTML")

	return cmd
}

func runView(ctx context.Context, stdout, stderr io.Writer, args []string, opts *viewOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := GetGlobalConfig()
	log := newLogger("view")

	sources := collectSources(args, opts.pdbIDs, opts.alphaFoldIDs)
	if len(sources) == 0 {
		return fmt.Errorf("no structures given: pass files, --pdb or --alphafold")
	}

	var grid *viewer.GridSize
	if opts.grid != "" {
		g, err := parseGrid(opts.grid)
		if err != nil {
			return err
		}
		if len(sources) > g.Rows*g.Cols {
			return molerr.Newf(molerr.ErrTypeInvalidGrid, opts.grid,
				"%d structures do not fit a %dx%d grid", len(sources), g.Rows, g.Cols)
		}
		grid = &g
	}

	pdbFormat, err := downloadFormat(opts.format)
	if err != nil {
		return err
	}

	loader := newSourceLoader(pdbFormat, opts.version)
	loaded, err := loader.loadAll(ctx, sources)
	if err != nil {
		return err
	}

	// --out writes the standalone page instead of going through Show
	var d display.Display
	if opts.out == "" {
		d = display.NewWriter(stdout)
		if opts.mime {
			d = display.NewMIME(stdout)
		}
	}

	v, err := buildViewer(cfg, &opts.style, grid, loaded, d, stderr)
	if err != nil {
		return err
	}

	if opts.out != "" {
		path := outputPath(cfg, opts.out)
		if err := writePage(v, path); err != nil {
			return err
		}
		log.Info("viewer written", logger.F("path", path), logger.Count(len(loaded)))
		fmt.Fprintf(stderr, "%s Wrote %s\n", emoji.GetEmoji("file"), path)
		return nil
	}
	return v.Show()
}

// buildViewer creates the viewer, loads every structure and applies style.
// Show hands markup to d; viewer warnings go to stderr when it is set.
func buildViewer(cfg *config.Config, style *styleOptions, grid *viewer.GridSize, loaded []*loadedSource,
	d display.Display, stderr io.Writer) (*viewer.Viewer, error) {
	vopts := style.viewerOptions(cfg)
	vopts.Grid = grid
	vopts.Display = d
	if stderr != nil {
		vopts.Logger = vopts.Logger.WithWriter(stderr)
	}

	v, err := viewer.View(vopts)
	if err != nil {
		return nil, err
	}

	for i, ls := range loaded {
		modelOpts := []viewer.ModelOption{viewer.WithName(ls.name)}
		if ls.format != "" {
			modelOpts = append(modelOpts, viewer.WithFormat(ls.format))
		}
		if grid != nil {
			modelOpts = append(modelOpts, viewer.At(i/grid.Cols, i%grid.Cols))
		}
		if err := v.AddModel(ls.data, modelOpts...); err != nil {
			return nil, fmt.Errorf("%s: %w", ls.source, err)
		}
	}

	if err := style.apply(v, cfg); err != nil {
		return nil, err
	}
	v.ZoomTo()
	return v, nil
}

// writePage writes v as a standalone page
func writePage(v *viewer.Viewer, path string) error {
	html, err := v.HTML()
	if err != nil {
		return err
	}
	return display.NewFile(path).Display(html)
}

// outputPath resolves relative paths against the configured output directory
func outputPath(cfg *config.Config, path string) string {
	if filepath.IsAbs(path) || cfg.Output.Directory == "" || cfg.Output.Directory == "." {
		return path
	}
	return filepath.Join(cfg.Output.Directory, path)
}

// parseGrid parses ROWSxCOLS
func parseGrid(s string) (viewer.GridSize, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return viewer.GridSize{}, molerr.New(molerr.ErrTypeInvalidGrid, s, "grid must be ROWSxCOLS, e.g. 2x2")
	}
	rows, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return viewer.GridSize{}, molerr.Wrap(molerr.ErrTypeInvalidGrid, s, "invalid grid rows", err)
	}
	cols, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return viewer.GridSize{}, molerr.Wrap(molerr.ErrTypeInvalidGrid, s, "invalid grid columns", err)
	}
	if rows <= 0 || cols <= 0 {
		return viewer.GridSize{}, molerr.New(molerr.ErrTypeInvalidGrid, s, "grid must have at least one row and one column")
	}
	return viewer.GridSize{Rows: rows, Cols: cols}, nil
}

// downloadFormat validates --format for RCSB downloads
func downloadFormat(s string) (structure.Format, error) {
	if s == "" {
		return structure.FormatPDB, nil
	}
	f, err := structure.NormalizeFormat(s)
	if err != nil {
		return "", err
	}
	if f == structure.FormatSDF {
		return "", molerr.New(molerr.ErrTypeInvalidFormat, s, "RCSB downloads are pdb or mmcif")
	}
	return f, nil
}
