package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/yildizm/molview/internal/formatter"
	"github.com/yildizm/molview/internal/logger"
	"github.com/yildizm/molview/internal/ui"
)

type searchOptions struct {
	view        viewOptions
	max         int
	interactive bool
}

func newSearchCommand() *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Full-text search of the RCSB Protein Data Bank",
		Long: `Search RCSB PDB and list matching entry IDs in relevance order.

With --interactive the results open in a picker; the chosen entry is fetched
and rendered like 'molview view --pdb ID', honoring the style flags.

Examples:
  molview search hemoglobin --max 5
  molview search "insulin receptor" -o json
  molview search lysozyme -i --color rainbow --out lyz.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args[0], opts)
		},
	}

	addStyleFlags(cmd, &opts.view.style)
	cmd.Flags().IntVar(&opts.max, "max", 0, "maximum number of results (default from config)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick a result and view it")
	cmd.Flags().StringVar(&opts.view.out, "out", "", "with --interactive, write the page to this file")
	cmd.Flags().StringVar(&opts.view.format, "format", "", "with --interactive, download format (pdb, mmcif)")

	return cmd
}

func runSearch(cmd *cobra.Command, query string, opts *searchOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := GetGlobalConfig()

	limit := opts.max
	if !cmd.Flags().Changed("max") {
		limit = cfg.Fetch.MaxResults
	}

	client, err := newFetchClient()
	if err != nil {
		return err
	}

	if opts.interactive {
		search := func(ctx context.Context, q string) ([]string, error) {
			return client.SearchPDB(ctx, q, limit)
		}
		id, ok, err := ui.RunPicker(ctx, query, search)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		newLogger("search").Info("entry picked", logger.F("id", id))
		view := opts.view
		view.pdbIDs = []string{id}
		return runView(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), nil, &view)
	}

	ids, err := client.SearchPDB(ctx, query, limit)
	if err != nil {
		return err
	}
	return printSearch(cmd.OutOrStdout(), &formatter.SearchReport{Query: query, Max: limit, IDs: ids})
}

func printSearch(w io.Writer, report *formatter.SearchReport) error {
	f, err := formatter.New(getOutputFormat(), useColor(w), !isEmojiDisabled())
	if err != nil {
		return err
	}
	out, err := f.FormatSearch(report)
	if err != nil {
		return fmt.Errorf("failed to format results: %w", err)
	}
	_, err = w.Write(out)
	return err
}
