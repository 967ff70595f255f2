package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/molview/internal/ui/components"
)

// Theme holds the terminal colors used for headings, result rows and
// status text. Structure colors come from the color mode, not from here.
type Theme struct {
	Name string

	Accent    lipgloss.AdaptiveColor // headings, focused borders
	Subtle    lipgloss.AdaptiveColor // hints, counts
	Highlight lipgloss.AdaptiveColor // cursor row background
	Frame     lipgloss.AdaptiveColor
	Alert     lipgloss.AdaptiveColor
}

func pair(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// Built-in themes
var (
	DefaultTheme = Theme{
		Name:      "default",
		Accent:    pair("#0F766E", "#2DD4BF"),
		Subtle:    pair("#6B7280", "#9CA3AF"),
		Highlight: pair("#CCFBF1", "#134E4A"),
		Frame:     pair("#D1D5DB", "#374151"),
		Alert:     pair("#DC2626", "#EF4444"),
	}

	HighContrastTheme = Theme{
		Name:      "high-contrast",
		Accent:    pair("#000000", "#FFFFFF"),
		Subtle:    pair("#555555", "#BBBBBB"),
		Highlight: pair("#CCCCCC", "#333333"),
		Frame:     pair("#000000", "#FFFFFF"),
		Alert:     pair("#CC0000", "#FF4444"),
	}

	MinimalTheme = Theme{
		Name:      "minimal",
		Accent:    pair("#2D3748", "#E2E8F0"),
		Subtle:    pair("#A0AEC0", "#718096"),
		Highlight: pair("#EDF2F7", "#2D3748"),
		Frame:     pair("#E2E8F0", "#2D3748"),
		Alert:     pair("#C53030", "#FC8181"),
	}
)

// themes in the order they are listed to users
var themes = []*Theme{&DefaultTheme, &HighContrastTheme, &MinimalTheme}

var currentTheme = DefaultTheme

// GetTheme returns the active theme
func GetTheme() Theme {
	return currentTheme
}

// SetTheme makes theme the active theme
func SetTheme(theme *Theme) {
	currentTheme = *theme
}

// SetThemeByName activates a built-in theme; it reports false for unknown names
func SetThemeByName(name string) bool {
	for _, t := range themes {
		if t.Name == name {
			SetTheme(t)
			return true
		}
	}
	return false
}

// GetAvailableThemes lists the built-in theme names
func GetAvailableThemes() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// IsColorDisabled honors NO_COLOR
func IsColorDisabled() bool {
	return os.Getenv("NO_COLOR") != ""
}

// Styles are the rendered styles of a theme
type Styles struct {
	Theme Theme

	Title  lipgloss.Style
	Header lipgloss.Style
	Muted  lipgloss.Style
	Alert  lipgloss.Style
}

// GetStyles builds styles for the active theme
func GetStyles() *Styles {
	t := GetTheme()
	return &Styles{
		Theme:  t,
		Title:  lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Padding(0, 1),
		Header: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Muted:  lipgloss.NewStyle().Foreground(t.Subtle),
		Alert:  lipgloss.NewStyle().Foreground(t.Alert).Bold(true),
	}
}

// ListColors maps the theme onto the result list
func (t Theme) ListColors() components.ListColors {
	return components.ListColors{
		Accent:    t.Accent,
		Dim:       t.Subtle,
		Highlight: t.Highlight,
		Frame:     t.Frame,
	}
}

// StyledText renders text with style unless colors are disabled
func StyledText(text string, style *lipgloss.Style) string {
	if IsColorDisabled() {
		return text
	}
	return style.Render(text)
}
