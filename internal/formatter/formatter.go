// Package formatter renders structure summaries and search results for the
// terminal, JSON and Markdown.
package formatter

import (
	"github.com/yildizm/molview/internal/molerr"
)

// Formatter defines the interface for output formatting
type Formatter interface {
	FormatStructures(reports []*StructureReport) ([]byte, error)
	FormatSearch(report *SearchReport) ([]byte, error)
}

// Output formats
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// New returns the formatter for an output format name
func New(format string, color, emoji bool) (Formatter, error) {
	switch format {
	case FormatText, "":
		return NewTerminal(color, emoji), nil
	case FormatJSON:
		return NewJSON(), nil
	case FormatMarkdown, "md":
		return NewMarkdown(), nil
	default:
		return nil, molerr.Newf(molerr.ErrTypeInvalidArgument, format,
			"unsupported output format (use %s, %s or %s)", FormatText, FormatJSON, FormatMarkdown)
	}
}
