package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yildizm/molview/internal/config"
	"github.com/yildizm/molview/internal/emoji"
	"github.com/yildizm/molview/internal/fetch"
	"github.com/yildizm/molview/internal/logger"
	"github.com/yildizm/molview/internal/ui"
)

var (
	cfgFile   string
	verbose   bool
	noColor   bool
	noEmoji   bool
	outputFmt string
	uiTheme   string

	globalConfig *config.Config
)

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "molview",
		Short: "Molecular structure viewer for notebooks and the browser",
		Long: `molview renders protein and small-molecule structures with Molstar.

Structures come from local PDB, mmCIF and SDF files, the RCSB Protein Data
Bank or the AlphaFold database. Pages can be written as standalone HTML,
as notebook display bundles, or printed for embedding.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Auto-disable emojis on Windows if not explicitly set
			if runtime.GOOS == "windows" && !cmd.Flag("no-emoji").Changed {
				noEmoji = true
			}

			if skipsConfig(cmd) {
				globalConfig = config.DefaultConfig()
			} else {
				cfg, err := config.NewLoader().WithLogger(newLogger("config")).LoadConfig(cfgFile)
				if err != nil {
					return err
				}
				globalConfig = cfg
			}

			if !cmd.Flag("output").Changed && globalConfig.Output.DefaultFormat != "" {
				outputFmt = globalConfig.Output.DefaultFormat
			}
			if !cmd.Flag("verbose").Changed {
				verbose = globalConfig.Output.Verbose
			}
			if !cmd.Flag("no-emoji").Changed && !globalConfig.Output.Emoji {
				noEmoji = true
			}
			emoji.SetEmojiDisabled(noEmoji)

			if !ui.SetThemeByName(uiTheme) {
				return fmt.Errorf("unknown theme: %s (available: %s)", uiTheme, strings.Join(ui.GetAvailableThemes(), ", "))
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noEmoji, "no-emoji", false, "disable emoji output (useful for Windows terminals)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "text", "output format (text, json, markdown)")
	rootCmd.PersistentFlags().StringVar(&uiTheme, "theme", "default", "terminal theme for palettes and the search picker")

	rootCmd.AddCommand(newViewCommand())
	rootCmd.AddCommand(newFetchCommand())
	rootCmd.AddCommand(newSearchCommand())
	rootCmd.AddCommand(newInfoCommand())
	rootCmd.AddCommand(newPalettesCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

// skipsConfig reports commands that must run even when the config is broken
func skipsConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "config", "version":
			return true
		}
	}
	return false
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "molview %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// Global helpers

// GetGlobalConfig returns the loaded configuration, or defaults before loading
func GetGlobalConfig() *config.Config {
	if globalConfig == nil {
		return config.DefaultConfig()
	}
	return globalConfig
}

func isVerbose() bool {
	return verbose
}

func getOutputFormat() string {
	return outputFmt
}

func isEmojiDisabled() bool {
	return noEmoji
}

// useColor decides whether output to w is colored
func useColor(w io.Writer) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	switch GetGlobalConfig().Output.ColorMode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// newLogger creates a component logger tied to the --verbose flag
func newLogger(component string) *logger.Logger {
	return logger.NewWithCallback(component, isVerbose)
}

// newFetchClient builds the RCSB/AlphaFold client from config
func newFetchClient() (*fetch.Client, error) {
	cfg := GetGlobalConfig().Fetch
	return fetch.New(&cfg, fetch.WithLogger(newLogger("fetch")))
}
