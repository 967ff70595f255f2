package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yildizm/molview/internal/logger"
	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.molview.yaml",               // Project-specific config (highest priority)
	"~/.config/molview/config.yaml", // User config
	"/etc/molview/config.yaml",      // System config (lowest priority)
}

// EnvPrefix prefixes every environment override
const EnvPrefix = "MOLVIEW_"

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
	log         *logger.Logger
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
		log:         logger.New("config", nil),
	}
}

// WithLogger sets the logger used for skipped config files
func (l *Loader) WithLogger(log *logger.Logger) *Loader {
	if log != nil {
		l.log = log
	}
	return l
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables
// 3. ./.molview.yaml
// 4. ~/.config/molview/config.yaml
// 5. /etc/molview/config.yaml
// 6. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	config := DefaultConfig()

	// If custom path is provided, use only that path
	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// Lowest priority first so later files win
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			expandedPath := expandPath(l.configPaths[i])
			if !fileExists(expandedPath) {
				continue
			}
			if err := l.loadFromFile(config, expandedPath); err != nil {
				l.log.Warn("skipping config file", logger.F("path", expandedPath), logger.Err(err))
			}
		}
	}

	if err := l.applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFromFile decodes a YAML file over config. Keys absent from the file
// keep their current values, so explicit false and 0 are honored.
func (l *Loader) loadFromFile(config *Config, path string) error {
	// #nosec G304 - path is validated by validateConfigPath() or comes from ConfigPaths
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	// Decode into a copy so a broken file leaves config untouched
	merged := *config
	merged.Style.Representations = append([]string(nil), config.Style.Representations...)
	if config.Style.Params.CustomColors != nil {
		merged.Style.Params.CustomColors = make(map[string]string, len(config.Style.Params.CustomColors))
		for k, v := range config.Style.Params.CustomColors {
			merged.Style.Params.CustomColors[k] = v
		}
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&merged); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	*config = merged
	return nil
}

// applyEnvOverrides applies environment variable overrides to the config
func (l *Loader) applyEnvOverrides(config *Config) error {
	envMappings := map[string]func(string) error{
		// Viewer Config
		"VIEWER_WIDTH":          func(v string) error { return parseInt(v, &config.Viewer.Width) },
		"VIEWER_HEIGHT":         func(v string) error { return parseInt(v, &config.Viewer.Height) },
		"VIEWER_BACKGROUND":     func(v string) error { config.Viewer.Background = v; return nil },
		"VIEWER_PANEL":          func(v string) error { return parseBool(v, &config.Viewer.Panel) },
		"VIEWER_SHOW_SEQUENCE":  func(v string) error { return parseBool(v, &config.Viewer.ShowSequence) },
		"VIEWER_SHOW_ANIMATION": func(v string) error { return parseBool(v, &config.Viewer.ShowAnimation) },
		"VIEWER_MOLSTAR_JS":     func(v string) error { config.Viewer.MolstarJS = v; return nil },
		"VIEWER_MOLSTAR_CSS":    func(v string) error { config.Viewer.MolstarCSS = v; return nil },

		// Fetch Config
		"FETCH_FILES_URL":         func(v string) error { config.Fetch.FilesURL = v; return nil },
		"FETCH_SEARCH_URL":        func(v string) error { config.Fetch.SearchURL = v; return nil },
		"FETCH_ALPHAFOLD_URL":     func(v string) error { config.Fetch.AlphaFoldURL = v; return nil },
		"FETCH_ALPHAFOLD_VERSION": func(v string) error { return parseInt(v, &config.Fetch.AlphaFoldVersion) },
		"FETCH_MAX_RESULTS":       func(v string) error { return parseInt(v, &config.Fetch.MaxResults) },

		// Style Config
		"STYLE_COLOR_MODE":      func(v string) error { config.Style.ColorMode = v; return nil },
		"STYLE_PALETTE":         func(v string) error { config.Style.Params.Palette = v; return nil },
		"STYLE_COLOR":           func(v string) error { config.Style.Params.Color = v; return nil },
		"STYLE_SURFACE_OPACITY": func(v string) error { return parseInt(v, &config.Style.SurfaceOpacity) },
		"STYLE_SPIN_SPEED":      func(v string) error { return parseFloat(v, &config.Style.SpinSpeed) },

		// Output Config
		"OUTPUT_DEFAULT_FORMAT": func(v string) error { config.Output.DefaultFormat = v; return nil },
		"OUTPUT_COLOR_MODE":     func(v string) error { config.Output.ColorMode = v; return nil },
		"OUTPUT_DIRECTORY":      func(v string) error { config.Output.Directory = v; return nil },
		"OUTPUT_VERBOSE":        func(v string) error { return parseBool(v, &config.Output.Verbose) },
		"OUTPUT_EMOJI":          func(v string) error { return parseBool(v, &config.Output.Emoji) },
	}

	for key, setter := range envMappings {
		envVar := EnvPrefix + key
		if value := os.Getenv(envVar); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}

	// Comma-separated list
	if reps := os.Getenv(EnvPrefix + "STYLE_REPRESENTATIONS"); reps != "" {
		config.Style.Representations = nil
		for _, r := range strings.Split(reps, ",") {
			if r = strings.TrimSpace(r); r != "" {
				config.Style.Representations = append(config.Style.Representations, r)
			}
		}
	}

	return nil
}

// GetConfigPaths returns the list of configuration file paths that will be searched
func GetConfigPaths() []string {
	paths := make([]string, 0, len(ConfigPaths))
	for _, path := range ConfigPaths {
		paths = append(paths, expandPath(path))
	}
	return paths
}

// FindConfigFile finds the first existing config file in the search paths
func FindConfigFile() (string, bool) {
	for _, path := range ConfigPaths {
		expandedPath := expandPath(path)
		if fileExists(expandedPath) {
			return expandedPath, true
		}
	}
	return "", false
}

// Helper functions

// validateConfigPath validates that a config path is safe to read
func validateConfigPath(path string) error {
	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if strings.HasPrefix(absPath, "/proc/") || strings.HasPrefix(absPath, "/sys/") {
		return fmt.Errorf("access to system files not allowed")
	}

	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// FileExists reports whether path exists
func FileExists(path string) bool {
	return fileExists(path)
}

// Type conversion helpers

func parseInt(s string, dst *int) error {
	val, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseBool(s string, dst *bool) error {
	val, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseFloat(s string, dst *float64) error {
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}
