package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/yildizm/molview/internal/molerr"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %s", cfg.Version)
	}
	if cfg.Viewer.Width != 800 || cfg.Viewer.Height != 600 {
		t.Errorf("Expected 800x600 viewer, got %dx%d", cfg.Viewer.Width, cfg.Viewer.Height)
	}
	if cfg.Viewer.Background != "#FFFFFF" {
		t.Errorf("Expected white background, got %s", cfg.Viewer.Background)
	}
	if cfg.Style.ColorMode != "element" {
		t.Errorf("Expected element color mode, got %s", cfg.Style.ColorMode)
	}
	if cfg.Style.SurfaceOpacity != 40 {
		t.Errorf("Expected surface opacity 40, got %d", cfg.Style.SurfaceOpacity)
	}
	if cfg.Fetch.AlphaFoldVersion != 4 {
		t.Errorf("Expected AlphaFold version 4, got %d", cfg.Fetch.AlphaFoldVersion)
	}
	if cfg.Output.DefaultFormat != "text" {
		t.Errorf("Expected default output format text, got %s", cfg.Output.DefaultFormat)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid, got error: %v", err)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			modify: func(c *Config) {},
		},
		{
			name:    "zero width",
			modify:  func(c *Config) { c.Viewer.Width = 0 },
			wantErr: "width and height",
		},
		{
			name:    "invalid background",
			modify:  func(c *Config) { c.Viewer.Background = "notacolor" },
			wantErr: "viewer background",
		},
		{
			name:    "relative fetch url",
			modify:  func(c *Config) { c.Fetch.FilesURL = "files.rcsb.org" },
			wantErr: "fetch",
		},
		{
			name:    "unknown color mode",
			modify:  func(c *Config) { c.Style.ColorMode = "hydrophobicity" },
			wantErr: "unknown color mode",
		},
		{
			name: "unknown palette",
			modify: func(c *Config) {
				c.Style.ColorMode = "rainbow"
				c.Style.Params.Palette = "sunset"
			},
			wantErr: "palette",
		},
		{
			name: "invalid custom color",
			modify: func(c *Config) {
				c.Style.ColorMode = "custom"
				c.Style.Params.Color = "#12"
			},
			wantErr: "style",
		},
		{
			name:    "unknown representation",
			modify:  func(c *Config) { c.Style.Representations = []string{"ribbon"} },
			wantErr: "invalid representation",
		},
		{
			name:    "opacity out of range",
			modify:  func(c *Config) { c.Style.SurfaceOpacity = 101 },
			wantErr: "surface_opacity",
		},
		{
			name:    "negative spin speed",
			modify:  func(c *Config) { c.Style.SpinSpeed = -1 },
			wantErr: "spin_speed",
		},
		{
			name:    "invalid output format",
			modify:  func(c *Config) { c.Output.DefaultFormat = "csv" },
			wantErr: "invalid output format",
		},
		{
			name:    "invalid color mode",
			modify:  func(c *Config) { c.Output.ColorMode = "sometimes" },
			wantErr: "invalid color mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidationKeepsErrorType(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Style.ColorMode = "hydrophobicity"

	err := cfg.Validate()
	if !errors.Is(err, molerr.ErrUnknownColorMode) {
		t.Errorf("Expected UnknownColorMode, got %v", err)
	}
}

func TestStyleConfigMode(t *testing.T) {
	s := StyleConfig{ColorMode: "rainbow"}
	s.Params.Palette = "viridis"

	mode, err := s.Mode()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if mode.Name() != "rainbow" {
		t.Errorf("Expected rainbow mode, got %s", mode.Name())
	}
}

func TestViewerAssets(t *testing.T) {
	v := ViewerConfig{MolstarJS: "https://example.org/molstar.js", MolstarCSS: "https://example.org/molstar.css"}
	a := v.Assets()
	if a.ScriptURL != v.MolstarJS || a.StyleURL != v.MolstarCSS {
		t.Errorf("Expected assets from viewer config, got %+v", a)
	}
}

func TestExpandPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "relative path",
			input:    "./config.yaml",
			expected: "./config.yaml",
		},
		{
			name:     "absolute path",
			input:    "/etc/molview/config.yaml",
			expected: "/etc/molview/config.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := expandPath(tt.input); result != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, result)
			}
		})
	}

	home := "~/.config/molview/config.yaml"
	if result := expandPath(home); result == home {
		t.Errorf("Expected path to be expanded, but got same path")
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := GetConfigPaths()
	if len(paths) != 3 {
		t.Fatalf("Expected 3 config paths, got %d", len(paths))
	}
	if paths[0] != "./.molview.yaml" {
		t.Errorf("Expected ./.molview.yaml first, got %s", paths[0])
	}
	if strings.HasPrefix(paths[1], "~") {
		t.Errorf("Expected path %s to be expanded", paths[1])
	}
	if paths[2] != "/etc/molview/config.yaml" {
		t.Errorf("Expected /etc/molview/config.yaml last, got %s", paths[2])
	}
}
