package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yildizm/molview/internal/fetch"
	"github.com/yildizm/molview/internal/logger"
	"github.com/yildizm/molview/internal/structure"
)

// sourceKind is where a structure comes from
type sourceKind int

const (
	sourceFile sourceKind = iota
	sourcePDB
	sourceAlphaFold
)

// source is one structure named on the command line
type source struct {
	kind sourceKind
	ref  string
}

func (s source) String() string {
	switch s.kind {
	case sourcePDB:
		return "pdb:" + strings.ToUpper(s.ref)
	case sourceAlphaFold:
		return "alphafold:" + strings.ToUpper(s.ref)
	default:
		return s.ref
	}
}

// loadedSource is structure text ready for AddModel
type loadedSource struct {
	source source
	name   string
	data   string
	// format is empty when it should be detected from data
	format structure.Format
}

// collectSources orders files first, then PDB IDs, then AlphaFold accessions
func collectSources(files, pdbIDs, alphaFoldIDs []string) []source {
	sources := make([]source, 0, len(files)+len(pdbIDs)+len(alphaFoldIDs))
	for _, f := range files {
		sources = append(sources, source{kind: sourceFile, ref: f})
	}
	for _, id := range pdbIDs {
		sources = append(sources, source{kind: sourcePDB, ref: id})
	}
	for _, id := range alphaFoldIDs {
		sources = append(sources, source{kind: sourceAlphaFold, ref: id})
	}
	return sources
}

// sourceLoader reads files and fetches remote entries
type sourceLoader struct {
	client           *fetch.Client
	pdbFormat        structure.Format
	alphaFoldVersion int
	stdin            io.Reader
	log              *logger.Logger
}

func newSourceLoader(pdbFormat structure.Format, alphaFoldVersion int) *sourceLoader {
	return &sourceLoader{
		pdbFormat:        pdbFormat,
		alphaFoldVersion: alphaFoldVersion,
		stdin:            os.Stdin,
		log:              newLogger("source"),
	}
}

// fetchClient builds the client on first remote source
func (l *sourceLoader) fetchClient() (*fetch.Client, error) {
	if l.client == nil {
		client, err := newFetchClient()
		if err != nil {
			return nil, err
		}
		l.client = client
	}
	return l.client, nil
}

// load reads or downloads one source
func (l *sourceLoader) load(ctx context.Context, s source) (*loadedSource, error) {
	switch s.kind {
	case sourcePDB:
		client, err := l.fetchClient()
		if err != nil {
			return nil, err
		}
		data, err := client.FetchPDB(ctx, s.ref, l.pdbFormat)
		if err != nil {
			return nil, err
		}
		format := l.pdbFormat
		if format == "" {
			format = structure.FormatPDB
		}
		l.log.Debug("fetched entry", logger.F("source", s), logger.F("bytes", len(data)))
		return &loadedSource{source: s, name: strings.ToUpper(strings.TrimSpace(s.ref)), data: data, format: format}, nil

	case sourceAlphaFold:
		client, err := l.fetchClient()
		if err != nil {
			return nil, err
		}
		data, err := client.FetchAlphaFold(ctx, s.ref, l.alphaFoldVersion)
		if err != nil {
			return nil, err
		}
		name := "AF-" + strings.ToUpper(strings.TrimSpace(s.ref))
		l.log.Debug("fetched prediction", logger.F("source", s), logger.F("bytes", len(data)))
		return &loadedSource{source: s, name: name, data: data, format: structure.FormatMMCIF}, nil

	default:
		data, format, err := l.readFile(s.ref)
		if err != nil {
			return nil, err
		}
		return &loadedSource{source: s, name: nameFromPath(s.ref), data: data, format: format}, nil
	}
}

// loadAll loads every source, stopping at the first failure
func (l *sourceLoader) loadAll(ctx context.Context, sources []source) ([]*loadedSource, error) {
	loaded := make([]*loadedSource, 0, len(sources))
	for _, s := range sources {
		ls, err := l.load(ctx, s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s, err)
		}
		loaded = append(loaded, ls)
	}
	return loaded, nil
}

// readFile reads a structure file; "-" is stdin
func (l *sourceLoader) readFile(path string) (string, structure.Format, error) {
	if path == "-" {
		data, err := io.ReadAll(l.stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), "", nil
	}

	if err := validateInputPath(path); err != nil {
		return "", "", err
	}
	// #nosec G304 - path is validated by validateInputPath
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), formatFromPath(path), nil
}

// formatFromPath maps a file extension to its format; unknown extensions
// are left to detection
func formatFromPath(path string) structure.Format {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "gz" {
		return ""
	}
	f, err := structure.NormalizeFormat(ext)
	if err != nil {
		return ""
	}
	return f
}

// nameFromPath is the file name without its extension
func nameFromPath(path string) string {
	if path == "-" {
		return ""
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// validateInputPath checks that path is a readable regular file
func validateInputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty file path")
	}
	info, err := os.Stat(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, expected a structure file", path)
	}
	return nil
}
