package cli

import (
	"github.com/spf13/cobra"
	"github.com/yildizm/molview/internal/colormode"
	"github.com/yildizm/molview/internal/config"
	"github.com/yildizm/molview/internal/render"
	"github.com/yildizm/molview/internal/viewer"
)

// styleOptions are the viewer and style flags shared by view, search and
// watch. Flags left unset fall back to the config file.
type styleOptions struct {
	colorMode    string
	palette      string
	customColor  string
	chainColors  map[string]string
	helixColor   string
	sheetColor   string
	coilColor    string
	reps         []string
	surface      bool
	opacity      int
	surfaceColor string
	illustrative bool
	background   string
	spin         bool
	spinSpeed    float64
	noSolvent    bool
	panel        bool
	width        int
	height       int
	sequence     bool
	animation    bool

	cmd *cobra.Command
}

// addStyleFlags registers the style flags on cmd
func addStyleFlags(cmd *cobra.Command, o *styleOptions) {
	o.cmd = cmd
	f := cmd.Flags()
	f.StringVar(&o.colorMode, "color", "", "color mode (element, custom, residue, chain, secondary, rainbow, plddt)")
	f.StringVar(&o.palette, "palette", "", "rainbow palette (see 'molview palettes')")
	f.StringVar(&o.customColor, "custom-color", "", "color for --color custom")
	f.StringToStringVar(&o.chainColors, "chain-color", nil, "per-chain colors for --color chain (A=red,B=#00FF00)")
	f.StringVar(&o.helixColor, "helix-color", "", "helix color for --color secondary")
	f.StringVar(&o.sheetColor, "sheet-color", "", "sheet color for --color secondary")
	f.StringVar(&o.coilColor, "coil-color", "", "coil color for --color secondary")
	f.StringSliceVar(&o.reps, "style", nil, "representations to enable (cartoon, stick, sphere, line)")
	f.BoolVar(&o.surface, "surface", false, "add a molecular surface")
	f.IntVar(&o.opacity, "opacity", viewer.DefaultSurfaceOpacity, "surface opacity in percent")
	f.StringVar(&o.surfaceColor, "surface-color", "", "surface color instead of the color theme")
	f.BoolVar(&o.illustrative, "illustrative", false, "illustrative rendering")
	f.StringVar(&o.background, "background", "", "background color")
	f.BoolVar(&o.spin, "spin", false, "spin the camera")
	f.Float64Var(&o.spinSpeed, "spin-speed", viewer.DefaultSpinSpeed, "spin speed")
	f.BoolVar(&o.noSolvent, "remove-solvent", false, "hide water and ions")
	f.BoolVar(&o.panel, "panel", false, "show the structure list panel")
	f.IntVar(&o.width, "width", viewer.DefaultWidth, "viewer width in pixels")
	f.IntVar(&o.height, "height", viewer.DefaultHeight, "viewer height in pixels")
	f.BoolVar(&o.sequence, "sequence", false, "show the sequence widget")
	f.BoolVar(&o.animation, "animation", false, "show the animation controls")
}

func (o *styleOptions) changed(name string) bool {
	return o.cmd != nil && o.cmd.Flags().Changed(name)
}

// viewerOptions builds View options from config and flags
func (o *styleOptions) viewerOptions(cfg *config.Config) viewer.Options {
	opts := viewer.Options{
		Width:         cfg.Viewer.Width,
		Height:        cfg.Viewer.Height,
		Background:    cfg.Viewer.Background,
		Panel:         cfg.Viewer.Panel,
		ShowSequence:  cfg.Viewer.ShowSequence,
		ShowAnimation: cfg.Viewer.ShowAnimation,
		Assets:        cfg.Viewer.Assets(),
		Logger:        newLogger("viewer"),
	}
	if opts.Assets.ScriptURL == "" || opts.Assets.StyleURL == "" {
		opts.Assets = render.DefaultAssets()
	}
	if o.changed("width") {
		opts.Width = o.width
	}
	if o.changed("height") {
		opts.Height = o.height
	}
	if o.changed("panel") {
		opts.Panel = o.panel
	}
	if o.changed("sequence") {
		opts.ShowSequence = o.sequence
	}
	if o.changed("animation") {
		opts.ShowAnimation = o.animation
	}
	return opts
}

// mode builds the color mode from config with flag overrides
func (o *styleOptions) mode(cfg *config.Config) (colormode.Mode, error) {
	name := cfg.Style.ColorMode
	params := cfg.Style.Params
	if o.changed("color") {
		name = o.colorMode
	}
	if o.changed("palette") {
		params.Palette = o.palette
	}
	if o.changed("custom-color") {
		params.Color = o.customColor
	}
	if o.changed("chain-color") {
		params.CustomColors = o.chainColors
	}
	if o.changed("helix-color") {
		params.HelixColor = o.helixColor
	}
	if o.changed("sheet-color") {
		params.SheetColor = o.sheetColor
	}
	if o.changed("coil-color") {
		params.CoilColor = o.coilColor
	}
	return colormode.Parse(name, params)
}

// apply sets the configured style on every session of v
func (o *styleOptions) apply(v *viewer.Viewer, cfg *config.Config) error {
	mode, err := o.mode(cfg)
	if err != nil {
		return err
	}
	if err := v.SetColorMode(mode); err != nil {
		return err
	}

	reps := cfg.Style.Representations
	if o.changed("style") {
		reps = o.reps
	}
	if len(reps) > 0 {
		var r viewer.Representations
		for _, name := range reps {
			rep, err := viewer.ParseRepresentation(name)
			if err != nil {
				return err
			}
			switch rep {
			case viewer.Cartoon:
				r.Cartoon = true
			case viewer.Stick:
				r.Stick = true
			case viewer.Sphere:
				r.Sphere = true
			case viewer.Line:
				r.Line = true
			}
		}
		v.SetRepresentations(r)
	}

	if o.surface {
		surface := viewer.DefaultSurface()
		surface.Opacity = cfg.Style.SurfaceOpacity
		if o.changed("opacity") {
			surface.Opacity = o.opacity
		}
		if o.surfaceColor != "" {
			surface.InheritColor = false
			surface.Color = o.surfaceColor
		}
		if err := v.SetSurface(surface); err != nil {
			return err
		}
	}

	if o.illustrative {
		v.SetIllustrativeStyle(true)
	}
	if o.changed("background") {
		if err := v.SetBackgroundColor(o.background); err != nil {
			return err
		}
	}
	if o.spin {
		speed := cfg.Style.SpinSpeed
		if o.changed("spin-speed") {
			speed = o.spinSpeed
		}
		v.Spin(true, speed)
	}
	if o.noSolvent {
		v.RemoveSolvent(true)
	}
	return nil
}
