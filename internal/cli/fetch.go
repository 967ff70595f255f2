package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yildizm/molview/internal/emoji"
	"github.com/yildizm/molview/internal/logger"
)

type fetchOptions struct {
	format    string
	alphaFold bool
	version   int
	out       string
}

func newFetchCommand() *cobra.Command {
	opts := &fetchOptions{}

	cmd := &cobra.Command{
		Use:   "fetch ID",
		Short: "Download a structure from RCSB PDB or AlphaFold DB",
		Long: `Download a structure file and print it, or save it with --out.

With --alphafold the ID is a UniProt accession and the predicted model is
downloaded in mmCIF format.

Examples:
  molview fetch 1UBQ > 1ubq.pdb
  molview fetch 4HHB --format mmcif --out 4hhb.cif
  molview fetch P69905 --alphafold --out hba.cif`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "", "download format (pdb, mmcif)")
	cmd.Flags().BoolVar(&opts.alphaFold, "alphafold", false, "treat ID as a UniProt accession")
	cmd.Flags().IntVar(&opts.version, "version", 0, "AlphaFold DB version (default from config)")
	cmd.Flags().StringVar(&opts.out, "out", "", "write to this file instead of stdout")

	return cmd
}

func runFetch(ctx context.Context, stdout, stderr io.Writer, id string, opts *fetchOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := downloadFormat(opts.format)
	if err != nil {
		return err
	}

	s := source{kind: sourcePDB, ref: id}
	if opts.alphaFold {
		s.kind = sourceAlphaFold
	}

	loader := newSourceLoader(format, opts.version)
	ls, err := loader.load(ctx, s)
	if err != nil {
		return err
	}

	if opts.out == "" {
		_, err := io.WriteString(stdout, ls.data)
		return err
	}

	path := outputPath(GetGlobalConfig(), opts.out)
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(ls.data), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	newLogger("fetch").Info("structure saved", logger.F("source", s), logger.F("path", path),
		logger.F("bytes", len(ls.data)))
	fmt.Fprintf(stderr, "%s Saved %s (%s) to %s\n", emoji.GetEmoji("download"),
		strings.ToUpper(strings.TrimSpace(id)), ls.format, path)
	return nil
}
