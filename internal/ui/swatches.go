package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/molview/internal/palette"
)

// SwatchWidth is the number of gradient cells drawn per palette
const SwatchWidth = 32

// RenderSwatch draws a gradient as a row of colored cells. Without color
// it lists the control points instead.
func RenderSwatch(colors []string, width int, color bool) (string, error) {
	if !color || IsColorDisabled() {
		return strings.Join(colors, " "), nil
	}
	steps, err := palette.Gradient(colors, width)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, c := range steps {
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c)).Render(" "))
	}
	return b.String(), nil
}

// RenderPalettes draws every rainbow palette with its name
func RenderPalettes(color bool) (string, error) {
	styles := GetStyles()
	names := palette.PaletteNames()

	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}

	var b strings.Builder
	b.WriteString(StyledText("Rainbow palettes", &styles.Header) + "\n\n")
	for _, name := range names {
		colors, err := palette.Palette(name)
		if err != nil {
			return "", err
		}
		swatch, err := RenderSwatch(colors, SwatchWidth, color)
		if err != nil {
			return "", err
		}
		label := name
		if name == palette.DefaultPalette {
			label += "*"
		}
		fmt.Fprintf(&b, "  %-*s  %s\n", width+1, label, swatch)
	}
	b.WriteString("\n" + StyledText("* default", &styles.Muted) + "\n")
	return b.String(), nil
}

// RenderColorTable draws a name to color table, sorted by name
func RenderColorTable(title string, table map[string]string, color bool) string {
	styles := GetStyles()

	keys := make([]string, 0, len(table))
	width := 0
	for k := range table {
		keys = append(keys, k)
		width = max(width, len(k))
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(StyledText(title, &styles.Header) + "\n\n")
	for _, k := range keys {
		cell := "  "
		if color && !IsColorDisabled() {
			cell = lipgloss.NewStyle().Background(lipgloss.Color(table[k])).Render("  ")
		}
		fmt.Fprintf(&b, "  %s %-*s %s\n", cell, width, k, table[k])
	}
	return b.String()
}
