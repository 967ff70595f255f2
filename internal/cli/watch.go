package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/yildizm/molview/internal/emoji"
	"github.com/yildizm/molview/internal/logger"
)

type watchOptions struct {
	view viewOptions
}

func newWatchCommand() *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Re-render a viewer page whenever a structure file changes",
		Long: `Watch a structure file and rewrite the viewer page each time the file is
saved. Editors that replace the file on save are handled. Press Ctrl+C to stop
watching.

Examples:
  molview watch model.pdb --out model.html
  molview watch ligand.sdf --out ligand.html --style stick`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args[0], opts)
		},
	}

	addStyleFlags(cmd, &opts.view.style)
	cmd.Flags().StringVar(&opts.view.out, "out", "", "page to rewrite on every change (required)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runWatch(cmd *cobra.Command, filename string, opts *watchOptions) error {
	if err := validateWatchFilePath(filename); err != nil {
		return fmt.Errorf("invalid file path: %w", err)
	}
	log := newLogger("watch")
	stderr := cmd.ErrOrStderr()

	render := func() error {
		return runView(context.Background(), cmd.OutOrStdout(), stderr, []string{filename}, &opts.view)
	}
	if err := render(); err != nil {
		return err
	}

	watcher, err := createWatcher(filename)
	if err != nil {
		return err
	}
	defer cleanupWatcher(watcher, log)

	fmt.Fprintf(stderr, "%s Watching %s (Ctrl+C to stop)\n", emoji.GetEmoji("watch"), filename)

	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(contextOf(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return runWatchLoop(ctx, watcher, filename, render, stderr, log)
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// cleanupWatcher closes watcher, logging failures
func cleanupWatcher(watcher *fsnotify.Watcher, log *logger.Logger) {
	if err := watcher.Close(); err != nil {
		log.Warn("failed to close watcher", logger.Err(err))
	}
}

// createWatcher watches the directory holding filename, so replacing the
// file on save keeps being noticed
func createWatcher(filename string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(filepath.Clean(filename))); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch file: %w", err)
	}

	return watcher, nil
}

// runWatchLoop calls render for every change to filename until ctx is done
func runWatchLoop(ctx context.Context, watcher *fsnotify.Watcher, filename string, render func() error, stderr io.Writer, log *logger.Logger) error {
	target := filepath.Clean(filename)

	for {
		select {
		case <-ctx.Done():
			log.Debug("stopping watch", logger.F("file", target))
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !isChange(event, target) {
				continue
			}
			if err := render(); err != nil {
				// Half-written files fail to parse; the next write retries
				log.Warn("re-render failed", logger.F("file", target), logger.Err(err))
				fmt.Fprintf(stderr, "%s %v\n", emoji.GetEmoji("warning"), err)
				continue
			}
			log.Debug("re-rendered", logger.F("file", target), logger.F("op", event.Op.String()))

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			log.Warn("watcher error", logger.Err(err))
		}
	}
}

// isChange reports writes and re-creations of target
func isChange(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// validateWatchFilePath validates that a file path is safe to watch
func validateWatchFilePath(path string) error {
	// Check for empty path
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty file path")
	}

	// Clean the path to resolve . and .. elements
	cleanPath := filepath.Clean(path)

	// Check for path traversal attempts
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	if cleanPath == "-" {
		return fmt.Errorf("cannot watch stdin")
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("cannot watch directory, must be a file")
	}

	return nil
}
