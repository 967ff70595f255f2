// Package molview renders protein and small-molecule structures with Molstar
// through a py3Dmol-style API.
//
// A viewer holds one session, or one per cell of a viewergrid. Structures
// are added from text, styled, and shown through a Display:
//
//	ctx := context.Background()
//	data, err := molview.FetchPDB(ctx, "1UBQ", "pdb")
//	if err != nil {
//		return err
//	}
//	v, err := molview.View(molview.DefaultOptions())
//	if err != nil {
//		return err
//	}
//	if err := v.AddModel(data); err != nil {
//		return err
//	}
//	if err := v.SetColorMode(molview.SecondaryStructure("", "", "")); err != nil {
//		return err
//	}
//	return v.Show()
//
// In a grid, every AddModel needs a cell; style calls apply to all cells.
package molview

import (
	"context"
	"sync"

	"github.com/yildizm/molview/internal/colormode"
	"github.com/yildizm/molview/internal/display"
	"github.com/yildizm/molview/internal/fetch"
	"github.com/yildizm/molview/internal/molerr"
	"github.com/yildizm/molview/internal/structure"
	"github.com/yildizm/molview/internal/viewer"
)

// Viewer types
type (
	Viewer          = viewer.Viewer
	Options         = viewer.Options
	GridSize        = viewer.GridSize
	ModelOption     = viewer.ModelOption
	Representation  = viewer.Representation
	Representations = viewer.Representations
	SurfaceOptions  = viewer.SurfaceOptions
	StyleDescriptor = viewer.StyleDescriptor
	Payload         = viewer.Payload
)

// Representations
const (
	Cartoon = viewer.Cartoon
	Stick   = viewer.Stick
	Sphere  = viewer.Sphere
	Line    = viewer.Line
)

// Structure formats
const (
	FormatPDB   = structure.FormatPDB
	FormatMMCIF = structure.FormatMMCIF
	FormatSDF   = structure.FormatSDF
)

// View creates a viewer; see Options for the defaults
func View(opts Options) (*Viewer, error) {
	return viewer.View(opts)
}

// DefaultOptions is an 800x600 single viewer writing to stdout
func DefaultOptions() Options {
	return viewer.DefaultOptions()
}

// Grid returns options for a rows x cols viewergrid
func Grid(rows, cols int) Options {
	opts := viewer.DefaultOptions()
	opts.Grid = &GridSize{Rows: rows, Cols: cols}
	return opts
}

// Model options
var (
	WithFormat    = viewer.WithFormat
	At            = viewer.At
	WithName      = viewer.WithName
	KeepHydrogens = viewer.KeepHydrogens
)

// DefaultSurface is a 40% opaque surface in the theme's colors
func DefaultSurface() SurfaceOptions {
	return viewer.DefaultSurface()
}

// Display receives rendered viewer markup
type Display = display.Display

// Displays
var (
	NewWriterDisplay = display.NewWriter
	NewFileDisplay   = display.NewFile
	NewMIMEDisplay   = display.NewMIME
)

// ColorMode is a validated color mode variant
type ColorMode = colormode.Mode

// ElementColors colors atoms by element
func ElementColors() ColorMode { return colormode.Element{} }

// CustomColor colors everything with one color
func CustomColor(color string) ColorMode { return colormode.Custom{Color: color} }

// ResidueColors colors by amino-acid type
func ResidueColors() ColorMode { return colormode.Residue{} }

// ChainColors colors by chain; colors overrides the automatic palette for
// the chains it names and may be nil
func ChainColors(colors map[string]string) ColorMode {
	return colormode.Chain{CustomColors: colors}
}

// SecondaryStructure colors helices, sheets and coils; empty colors take
// the defaults
func SecondaryStructure(helix, sheet, coil string) ColorMode {
	return colormode.Secondary{HelixColor: helix, SheetColor: sheet, CoilColor: coil}
}

// Rainbow colors residues along each chain by a palette; "" is rainbow
func Rainbow(palette string) ColorMode { return colormode.Rainbow{Palette: palette} }

// PLDDT colors predicted models by confidence, falling back to element
// colors when the structure carries none
func PLDDT() ColorMode { return colormode.PLDDT{} }

// ParseColorMode builds a mode from its name, as the CLI and config do
func ParseColorMode(name string, params colormode.Params) (ColorMode, error) {
	return colormode.Parse(name, params)
}

// Client fetches from RCSB PDB and AlphaFold DB
type Client = fetch.Client

// FetchConfig holds the fetch endpoints
type FetchConfig = fetch.Config

// NewClient creates a client for custom endpoints
func NewClient(cfg *FetchConfig) (*Client, error) {
	return fetch.New(cfg)
}

var (
	defaultClientOnce sync.Once
	defaultClient     *Client
	defaultClientErr  error
)

// DefaultClient is the shared client for the public endpoints
func DefaultClient() (*Client, error) {
	defaultClientOnce.Do(func() {
		defaultClient, defaultClientErr = fetch.New(fetch.DefaultConfig())
	})
	return defaultClient, defaultClientErr
}

// FetchPDB downloads an RCSB entry; format is "pdb" (or "") or "mmcif"
func FetchPDB(ctx context.Context, pdbID, format string) (string, error) {
	c, err := DefaultClient()
	if err != nil {
		return "", err
	}
	return c.FetchPDB(ctx, pdbID, structure.Format(format))
}

// Query is FetchPDB under its py3Dmol name
func Query(ctx context.Context, pdbID, format string) (string, error) {
	return FetchPDB(ctx, pdbID, format)
}

// FetchAlphaFold downloads a predicted model; version 0 is the current
// database version
func FetchAlphaFold(ctx context.Context, uniprotID string, version int) (string, error) {
	c, err := DefaultClient()
	if err != nil {
		return "", err
	}
	return c.FetchAlphaFold(ctx, uniprotID, version)
}

// SearchPDB returns up to maxResults entry IDs for a full-text query
func SearchPDB(ctx context.Context, text string, maxResults int) ([]string, error) {
	c, err := DefaultClient()
	if err != nil {
		return nil, err
	}
	return c.SearchPDB(ctx, text, maxResults)
}

// Error is the error type returned by every operation
type Error = molerr.Error

// Sentinels for errors.Is
var (
	ErrInvalidColor            = molerr.ErrInvalidColor
	ErrUnknownPalette          = molerr.ErrUnknownPalette
	ErrUnknownColorMode        = molerr.ErrUnknownColorMode
	ErrUnknownFormat           = molerr.ErrUnknownFormat
	ErrInvalidFormat           = molerr.ErrInvalidFormat
	ErrMissingViewerCoordinate = molerr.ErrMissingViewerCoordinate
	ErrOutOfRangeCoordinate    = molerr.ErrOutOfRangeCoordinate
	ErrInvalidGrid             = molerr.ErrInvalidGrid
	ErrInvalidLayout           = molerr.ErrInvalidLayout
	ErrInvalidArgument         = molerr.ErrInvalidArgument
	ErrNotFound                = molerr.ErrNotFound
	ErrNetwork                 = molerr.ErrNetwork
)

// IsNotFound reports a missing PDB entry or AlphaFold prediction
func IsNotFound(err error) bool { return molerr.IsType(err, molerr.ErrTypeNotFound) }

// IsNetworkError reports transport failures and non-404 HTTP errors
func IsNetworkError(err error) bool { return molerr.IsType(err, molerr.ErrTypeNetwork) }

// IsInvalidColor reports an unparsable color
func IsInvalidColor(err error) bool { return molerr.IsType(err, molerr.ErrTypeInvalidColor) }

// IsGridError reports grid construction and coordinate errors
func IsGridError(err error) bool {
	switch molerr.TypeOf(err) {
	case molerr.ErrTypeInvalidGrid, molerr.ErrTypeMissingViewerCoordinate, molerr.ErrTypeOutOfRangeCoordinate:
		return true
	}
	return false
}
