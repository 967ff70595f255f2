package viewer

import (
	"strings"

	"github.com/yildizm/molview/internal/colormode"
	"github.com/yildizm/molview/internal/logger"
	"github.com/yildizm/molview/internal/molerr"
	"github.com/yildizm/molview/internal/palette"
)

// Style defaults
const (
	DefaultSurfaceOpacity = 40
	DefaultSpinSpeed      = 0.2
)

// Representation is a molecular representation toggle
type Representation string

const (
	Cartoon Representation = "cartoon"
	Stick   Representation = "stick"
	Sphere  Representation = "sphere"
	Line    Representation = "line"
)

// ParseRepresentation accepts cartoon, stick, sphere and line
func ParseRepresentation(s string) (Representation, error) {
	switch r := Representation(strings.ToLower(strings.TrimSpace(s))); r {
	case Cartoon, Stick, Sphere, Line:
		return r, nil
	default:
		return "", molerr.New(molerr.ErrTypeInvalidArgument, s, "representation must be cartoon, stick, sphere or line")
	}
}

// Representations are the enabled representation toggles
type Representations struct {
	Cartoon bool `json:"cartoon"`
	Stick   bool `json:"stick"`
	Sphere  bool `json:"sphere"`
	Line    bool `json:"line"`
}

// SurfaceOptions control the molecular surface; the zero value is disabled
type SurfaceOptions struct {
	Enabled bool `json:"enabled"`

	// Opacity in percent, clamped to 0-100
	Opacity int `json:"opacity"`

	// InheritColor uses the color theme; otherwise Color is used when set
	InheritColor bool   `json:"inherit_color"`
	Color        string `json:"color,omitempty"`
}

// DefaultSurface is an enabled 40% surface in the theme's colors
func DefaultSurface() SurfaceOptions {
	return SurfaceOptions{Enabled: true, Opacity: DefaultSurfaceOpacity, InheritColor: true}
}

// Spin is continuous rotation of the camera
type Spin struct {
	Enabled bool    `json:"enabled"`
	Speed   float64 `json:"speed"`
}

// Camera holds pending camera requests
type Camera struct {
	// ResetRequests counts ZoomTo calls; the page always fits on load
	ResetRequests int `json:"reset_requests"`
}

// StyleDescriptor is the complete render style of a session
type StyleDescriptor struct {
	Color           colormode.Theme `json:"color"`
	Representations Representations `json:"representations"`
	Surface         SurfaceOptions  `json:"surface"`
	Illustrative    bool            `json:"illustrative"`
	Background      string          `json:"background"`
	Spin            Spin            `json:"spin"`
	RemoveSolvent   bool            `json:"remove_solvent"`
}

// DefaultStyle is element-colored cartoon on the given background
func DefaultStyle(background string) (StyleDescriptor, error) {
	bg, err := palette.ParseColor(background)
	if err != nil {
		return StyleDescriptor{}, err
	}
	return StyleDescriptor{
		Color:           colormode.Default(),
		Representations: Representations{Cartoon: true},
		Surface:         SurfaceOptions{Opacity: DefaultSurfaceOpacity, InheritColor: true},
		Background:      bg.Hex,
		Spin:            Spin{Speed: DefaultSpinSpeed},
	}, nil
}

// broadcast applies fn to every session's style
func (v *Viewer) broadcast(fn func(*StyleDescriptor)) {
	for _, s := range v.sessions {
		fn(&s.style)
	}
}

// SetColorMode resolves the mode once and applies it to all sessions. An
// invalid mode leaves every session as it was.
func (v *Viewer) SetColorMode(m colormode.Mode) error {
	theme, err := colormode.Resolve(m)
	if err != nil {
		return err
	}
	v.broadcast(func(s *StyleDescriptor) { s.Color = theme })
	v.log.Debug("color mode set", logger.F("mode", theme.Mode), logger.F("theme", theme.Name),
		logger.Count(len(v.sessions)))
	return nil
}

// SetStyle turns representations on; representations not named stay as they are
func (v *Viewer) SetStyle(reps ...Representation) error {
	var on Representations
	for _, r := range reps {
		switch r {
		case Cartoon:
			on.Cartoon = true
		case Stick:
			on.Stick = true
		case Sphere:
			on.Sphere = true
		case Line:
			on.Line = true
		default:
			return molerr.New(molerr.ErrTypeInvalidArgument, string(r), "unknown representation")
		}
	}
	v.broadcast(func(s *StyleDescriptor) {
		s.Representations.Cartoon = s.Representations.Cartoon || on.Cartoon
		s.Representations.Stick = s.Representations.Stick || on.Stick
		s.Representations.Sphere = s.Representations.Sphere || on.Sphere
		s.Representations.Line = s.Representations.Line || on.Line
	})
	return nil
}

// SetRepresentations replaces the representation toggles outright
func (v *Viewer) SetRepresentations(r Representations) {
	v.broadcast(func(s *StyleDescriptor) { s.Representations = r })
}

// SetSurface replaces the surface settings
func (v *Viewer) SetSurface(opts SurfaceOptions) error {
	if opts.Color != "" {
		c, err := palette.ParseColor(opts.Color)
		if err != nil {
			return err
		}
		opts.Color = c.Hex
	}
	opts.Opacity = max(0, min(100, opts.Opacity))
	v.broadcast(func(s *StyleDescriptor) { s.Surface = opts })
	return nil
}

// AddSurface enables the default surface
func (v *Viewer) AddSurface() {
	surface := DefaultSurface()
	v.broadcast(func(s *StyleDescriptor) { s.Surface = surface })
}

// SetIllustrativeStyle toggles outline rendering
func (v *Viewer) SetIllustrativeStyle(enabled bool) {
	v.broadcast(func(s *StyleDescriptor) { s.Illustrative = enabled })
}

// SetBackgroundColor sets the canvas background
func (v *Viewer) SetBackgroundColor(color string) error {
	c, err := palette.ParseColor(color)
	if err != nil {
		return err
	}
	v.broadcast(func(s *StyleDescriptor) { s.Background = c.Hex })
	return nil
}

// Spin toggles camera rotation; a non-positive speed keeps the default
func (v *Viewer) Spin(enabled bool, speed float64) {
	if speed <= 0 {
		speed = DefaultSpinSpeed
	}
	v.broadcast(func(s *StyleDescriptor) { s.Spin = Spin{Enabled: enabled, Speed: speed} })
}

// RemoveSolvent hides water and ions
func (v *Viewer) RemoveSolvent(enabled bool) {
	v.broadcast(func(s *StyleDescriptor) { s.RemoveSolvent = enabled })
}

// ZoomTo requests a camera reset to fit the loaded structures
func (v *Viewer) ZoomTo() {
	for _, s := range v.sessions {
		s.camera.ResetRequests++
	}
}
