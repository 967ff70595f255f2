package config

import (
	"fmt"

	"github.com/yildizm/molview/internal/colormode"
	"github.com/yildizm/molview/internal/fetch"
	"github.com/yildizm/molview/internal/palette"
	"github.com/yildizm/molview/internal/render"
)

// Config holds the complete application configuration
type Config struct {
	Version string       `yaml:"version" json:"version"`
	Viewer  ViewerConfig `yaml:"viewer" json:"viewer"`
	Fetch   fetch.Config `yaml:"fetch" json:"fetch"`
	Style   StyleConfig  `yaml:"style" json:"style"`
	Output  OutputConfig `yaml:"output" json:"output"`
}

// ViewerConfig sets up new viewers
type ViewerConfig struct {
	Width         int    `yaml:"width" json:"width"`
	Height        int    `yaml:"height" json:"height"`
	Background    string `yaml:"background" json:"background"`
	Panel         bool   `yaml:"panel" json:"panel"`
	ShowSequence  bool   `yaml:"show_sequence" json:"show_sequence"`
	ShowAnimation bool   `yaml:"show_animation" json:"show_animation"`
	MolstarJS     string `yaml:"molstar_js" json:"molstar_js"`
	MolstarCSS    string `yaml:"molstar_css" json:"molstar_css"`
}

// Assets returns the configured Molstar bundle
func (v ViewerConfig) Assets() render.Assets {
	return render.Assets{ScriptURL: v.MolstarJS, StyleURL: v.MolstarCSS}
}

// StyleConfig is the style applied to every new viewer
type StyleConfig struct {
	ColorMode       string           `yaml:"color_mode" json:"color_mode"`
	Params          colormode.Params `yaml:",inline" json:"params"`
	Representations []string         `yaml:"representations" json:"representations"`
	SurfaceOpacity  int              `yaml:"surface_opacity" json:"surface_opacity"`
	SpinSpeed       float64          `yaml:"spin_speed" json:"spin_speed"`
}

// Mode builds the configured color mode
func (s StyleConfig) Mode() (colormode.Mode, error) {
	return colormode.Parse(s.ColorMode, s.Params)
}

// OutputConfig configures output formatting and display
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // text|json|markdown
	ColorMode     string `yaml:"color_mode" json:"color_mode"`         // auto|always|never
	Directory     string `yaml:"directory" json:"directory"`           // where rendered pages go
	Verbose       bool   `yaml:"verbose" json:"verbose"`
	Emoji         bool   `yaml:"emoji" json:"emoji"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Viewer: ViewerConfig{
			Width:      800,
			Height:     600,
			Background: "#FFFFFF",
			MolstarJS:  render.DefaultScriptURL,
			MolstarCSS: render.DefaultStyleURL,
		},
		Fetch: *fetch.DefaultConfig(),
		Style: StyleConfig{
			ColorMode:       colormode.NameElement,
			Params:          colormode.Params{Palette: palette.DefaultPalette},
			Representations: []string{"cartoon"},
			SurfaceOpacity:  40,
			SpinSpeed:       0.2,
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			ColorMode:     "auto",
			Directory:     ".",
			Emoji:         true,
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateViewerConfig(); err != nil {
		return err
	}
	if err := c.Fetch.Validate(); err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	if err := c.validateStyleConfig(); err != nil {
		return err
	}
	return c.validateOutputConfig()
}

func (c *Config) validateViewerConfig() error {
	if c.Viewer.Width < 1 || c.Viewer.Height < 1 {
		return fmt.Errorf("viewer width and height must be greater than 0")
	}
	if _, err := palette.ParseColor(c.Viewer.Background); err != nil {
		return fmt.Errorf("viewer background: %w", err)
	}
	return nil
}

func (c *Config) validateStyleConfig() error {
	mode, err := c.Style.Mode()
	if err != nil {
		return fmt.Errorf("style: %w", err)
	}
	if _, err := colormode.Resolve(mode); err != nil {
		return fmt.Errorf("style: %w", err)
	}
	for _, r := range c.Style.Representations {
		switch r {
		case "cartoon", "stick", "sphere", "line":
		default:
			return fmt.Errorf("invalid representation: %s (must be one of: cartoon, stick, sphere, line)", r)
		}
	}
	if c.Style.SurfaceOpacity < 0 || c.Style.SurfaceOpacity > 100 {
		return fmt.Errorf("surface_opacity must be between 0 and 100")
	}
	if c.Style.SpinSpeed < 0 {
		return fmt.Errorf("spin_speed must be non-negative")
	}
	return nil
}

// validateOutputConfig validates output-related configuration
func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"json":     true,
			"text":     true,
			"markdown": true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: json, text, markdown)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	return nil
}
