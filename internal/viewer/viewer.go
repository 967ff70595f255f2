// Package viewer manages viewer sessions: one per grid cell, or a single one.
// Style calls carry no cell coordinate and apply to every session alike, so
// a grid of structures can be restyled for comparison in one call.
//
// A Viewer is not safe for concurrent use.
package viewer

import (
	"fmt"
	"os"

	"github.com/yildizm/molview/internal/display"
	"github.com/yildizm/molview/internal/logger"
	"github.com/yildizm/molview/internal/molerr"
	"github.com/yildizm/molview/internal/render"
	"github.com/yildizm/molview/internal/structure"
)

// Defaults for a new viewer
const (
	DefaultWidth      = 800
	DefaultHeight     = 600
	DefaultBackground = "#FFFFFF"
)

// GridSize is a viewergrid of Rows x Cols independent sessions
type GridSize struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Options configure View
type Options struct {
	Width  int
	Height int

	// Grid allocates one session per cell; nil means a single session
	Grid *GridSize

	// Panel shows the structure list and layout controls
	Panel bool

	// Background is the initial background color
	Background string

	// ShowSequence and ShowAnimation expose the Molstar sequence and
	// animation widgets
	ShowSequence  bool
	ShowAnimation bool

	// Assets locates the Molstar bundle
	Assets render.Assets

	// Display receives Show output; nil writes to stdout
	Display display.Display

	Logger *logger.Logger
}

// DefaultOptions returns an 800x600 single viewer
func DefaultOptions() Options {
	return Options{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Background: DefaultBackground,
		Assets:     render.DefaultAssets(),
	}
}

// Layout modes
const (
	LayoutSingle = "single"
	LayoutGrid   = "grid"
)

// Model is one loaded structure
type Model struct {
	Name      string
	Structure *structure.Structure

	summary *structure.Summary
}

// Summary returns the scanned chains and residues, nil when scanning failed
func (m Model) Summary() *structure.Summary {
	return m.summary
}

// Session is the state of one viewer cell
type Session struct {
	Row    int
	Col    int
	models []Model
	style  StyleDescriptor
	camera Camera
}

// Viewer owns the sessions of one view
type Viewer struct {
	opts     Options
	grid     *GridSize
	sessions []*Session
	layout   string
	log      *logger.Logger
}

// View allocates the sessions described by opts
func View(opts Options) (*Viewer, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, molerr.Newf(molerr.ErrTypeInvalidArgument, fmt.Sprintf("%dx%d", opts.Width, opts.Height),
			"viewer width and height must be positive")
	}
	if opts.Background == "" {
		opts.Background = DefaultBackground
	}
	style, err := DefaultStyle(opts.Background)
	if err != nil {
		return nil, err
	}
	if opts.Display == nil {
		opts.Display = display.NewWriter(os.Stdout)
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	v := &Viewer{
		opts:   opts,
		layout: LayoutSingle,
		log:    opts.Logger,
	}

	if opts.Grid == nil {
		v.sessions = []*Session{{style: style}}
		return v, nil
	}

	rows, cols := opts.Grid.Rows, opts.Grid.Cols
	if rows <= 0 || cols <= 0 {
		return nil, molerr.Newf(molerr.ErrTypeInvalidGrid, fmt.Sprintf("%dx%d", rows, cols),
			"viewergrid must have at least one row and one column")
	}
	v.grid = &GridSize{Rows: rows, Cols: cols}
	v.layout = LayoutGrid
	v.sessions = make([]*Session, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v.sessions = append(v.sessions, &Session{Row: r, Col: c, style: style})
		}
	}
	return v, nil
}

// IsGrid reports whether the viewer was created with a viewergrid
func (v *Viewer) IsGrid() bool {
	return v.grid != nil
}

// Grid returns the grid size, or 1x1 for a single viewer
func (v *Viewer) Grid() GridSize {
	if v.grid == nil {
		return GridSize{Rows: 1, Cols: 1}
	}
	return *v.grid
}

// session returns the cell at (row, col) or OutOfRangeCoordinate
func (v *Viewer) session(row, col int) (*Session, error) {
	g := v.Grid()
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return nil, molerr.Newf(molerr.ErrTypeOutOfRangeCoordinate, fmt.Sprintf("(%d,%d)", row, col),
			"viewer position out of bounds for %dx%d grid", g.Rows, g.Cols)
	}
	return v.sessions[row*g.Cols+col], nil
}

// ModelOption configures AddModel
type ModelOption func(*modelOptions)

type modelOptions struct {
	format   structure.Format
	name     string
	keepH    bool
	row, col int
	hasCell  bool
}

// WithFormat sets the format instead of detecting it
func WithFormat(f structure.Format) ModelOption {
	return func(o *modelOptions) { o.format = f }
}

// At places the model in a grid cell; single viewers ignore it
func At(row, col int) ModelOption {
	return func(o *modelOptions) {
		o.row, o.col = row, col
		o.hasCell = true
	}
}

// WithName names the model
func WithName(name string) ModelOption {
	return func(o *modelOptions) { o.name = name }
}

// KeepHydrogens is accepted for py3Dmol compatibility and recorded on the model
func KeepHydrogens() ModelOption {
	return func(o *modelOptions) { o.keepH = true }
}

// AddModel loads structure text into a session. In a grid the cell is
// required and a cell holds one structure; a single viewer accumulates
// models. A failed call changes nothing.
func (v *Viewer) AddModel(data string, opts ...ModelOption) error {
	var o modelOptions
	for _, opt := range opts {
		opt(&o)
	}

	target := v.sessions[0]
	if v.grid != nil {
		if !o.hasCell {
			return molerr.New(molerr.ErrTypeMissingViewerCoordinate, "",
				"grid viewers need a cell coordinate for every model")
		}
		s, err := v.session(o.row, o.col)
		if err != nil {
			return err
		}
		target = s
	}

	s, err := structure.New(o.name, data, string(o.format))
	if err != nil {
		return err
	}
	s.KeepH = o.keepH

	if s.Name == "" {
		if v.grid != nil {
			s.Name = fmt.Sprintf("Structure (%d,%d)", o.row, o.col)
		} else {
			s.Name = fmt.Sprintf("Structure %d", len(target.models)+1)
		}
	}

	m := Model{Name: s.Name, Structure: s}
	if sum, err := structure.Scan(s); err != nil {
		v.log.Warn("structure scan failed; per-residue coloring disabled",
			logger.F("model", s.Name), logger.Err(err))
	} else {
		m.summary = sum
	}

	if v.grid != nil {
		target.models = []Model{m}
	} else {
		target.models = append(target.models, m)
	}
	v.log.Debug("model added", logger.F("name", m.Name), logger.F("format", s.Format),
		logger.F("row", target.Row), logger.F("col", target.Col))
	return nil
}

// Clear empties every session's structures, keeping style
func (v *Viewer) Clear() {
	for _, s := range v.sessions {
		s.models = nil
	}
}

// RemoveAllModels is Clear under its py3Dmol name
func (v *Viewer) RemoveAllModels() {
	v.Clear()
}

// ClearAt empties one grid cell; single viewers clear their only session
func (v *Viewer) ClearAt(row, col int) error {
	if v.grid == nil {
		v.sessions[0].models = nil
		return nil
	}
	s, err := v.session(row, col)
	if err != nil {
		return err
	}
	s.models = nil
	return nil
}

// Models lists every loaded model, cells in row-major order
func (v *Viewer) Models() []Model {
	var out []Model
	for _, s := range v.sessions {
		out = append(out, s.models...)
	}
	return out
}

// Model returns the i-th model of Models
func (v *Viewer) Model(i int) (Model, bool) {
	models := v.Models()
	if i < 0 || i >= len(models) {
		return Model{}, false
	}
	return models[i], true
}

// ModelsAt lists the models of one cell
func (v *Viewer) ModelsAt(row, col int) ([]Model, error) {
	s := v.sessions[0]
	if v.grid != nil {
		var err error
		if s, err = v.session(row, col); err != nil {
			return nil, err
		}
	}
	return append([]Model(nil), s.models...), nil
}

// Style returns the style of the first session; all sessions share it
func (v *Viewer) Style() StyleDescriptor {
	return v.sessions[0].style
}

// StyleAt returns the style of one cell
func (v *Viewer) StyleAt(row, col int) (StyleDescriptor, error) {
	s, err := v.session(row, col)
	if err != nil {
		return StyleDescriptor{}, err
	}
	return s.style, nil
}

// Layout returns the current layout mode
func (v *Viewer) Layout() string {
	return v.layout
}

// SetLayout switches the panel between one structure and the grid
func (v *Viewer) SetLayout(mode string) error {
	switch mode {
	case LayoutSingle, LayoutGrid:
		v.layout = mode
		return nil
	default:
		return molerr.Newf(molerr.ErrTypeInvalidLayout, mode, "layout must be %q or %q", LayoutSingle, LayoutGrid)
	}
}
