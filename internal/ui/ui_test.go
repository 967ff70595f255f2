package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPickerSelectsEntry(t *testing.T) {
	m := NewPickerWithResults("kinase", []string{"1ATP", "2SRC", "3LCK"})

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	id, ok := m.Choice()
	if !ok || id != "2SRC" {
		t.Errorf("Expected 2SRC, got %q (ok=%v)", id, ok)
	}
	if cmd == nil {
		t.Errorf("Expected quit command after selection")
	}
}

func TestPickerQuitWithoutChoice(t *testing.T) {
	m := NewPickerWithResults("kinase", []string{"1ATP"})

	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := m.Choice(); ok {
		t.Errorf("Expected no choice after quit")
	}
	if m.View() != "" {
		t.Errorf("Expected empty view after quit")
	}
}

func TestPickerFilter(t *testing.T) {
	m := NewPickerWithResults("hemoglobin", []string{"4HHB", "2HHB", "1A3N"})

	m.Update(runes("/"))
	m.Update(runes("1a"))
	if m.list.Len() != 1 {
		t.Fatalf("Expected 1 filtered entry, got %d", m.list.Len())
	}
	// q is filter text while filtering
	m.Update(runes("q"))
	if m.quitting {
		t.Fatal("Expected q to be filter input, not quit")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if id, _ := m.Choice(); id != "1A3N" {
		t.Errorf("Expected 1A3N, got %q", id)
	}
}

func TestPickerFilterEscapeClears(t *testing.T) {
	m := NewPickerWithResults("hemoglobin", []string{"4HHB", "2HHB"})

	m.Update(runes("/"))
	m.Update(runes("zzz"))
	if m.list.Len() != 0 {
		t.Fatalf("Expected no matches, got %d", m.list.Len())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.list.Len() != 2 {
		t.Errorf("Expected filter cleared, got %d entries", m.list.Len())
	}
	if !strings.Contains(m.View(), "4HHB") {
		t.Errorf("Expected results in view")
	}
}

func TestPickerRunsSearch(t *testing.T) {
	var gotQuery string
	search := func(ctx context.Context, query string) ([]string, error) {
		gotQuery = query
		return []string{"1UBQ"}, nil
	}

	m := NewPicker(context.Background(), "ubiquitin", search)
	if !strings.Contains(m.View(), "Searching") {
		t.Errorf("Expected searching view, got %q", m.View())
	}

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Expected search command")
	}
	m.Update(cmd())

	if gotQuery != "ubiquitin" {
		t.Errorf("Expected query ubiquitin, got %q", gotQuery)
	}
	if m.list.Len() != 1 {
		t.Errorf("Expected 1 result, got %d", m.list.Len())
	}
}

func TestPickerSearchError(t *testing.T) {
	boom := errors.New("search down")
	m := NewPicker(context.Background(), "x", func(context.Context, string) ([]string, error) {
		return nil, boom
	})

	_, cmd := m.Update(m.Init()())
	if cmd == nil {
		t.Errorf("Expected quit command on error")
	}
	if !errors.Is(m.Err(), boom) {
		t.Errorf("Expected search error, got %v", m.Err())
	}
}

func TestPickerNoResults(t *testing.T) {
	m := NewPickerWithResults("nothing", nil)
	if !strings.Contains(m.View(), "No entries found") {
		t.Errorf("Expected empty-result message, got %q", m.View())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if _, ok := m.Choice(); ok {
		t.Errorf("Expected no choice with no results")
	}
}

func TestRenderPalettesPlain(t *testing.T) {
	out, err := RenderPalettes(false)
	if err != nil {
		t.Fatalf("RenderPalettes failed: %v", err)
	}
	for _, name := range []string{"rainbow*", "viridis", "blue-red"} {
		if !strings.Contains(out, name) {
			t.Errorf("Expected output to list %s", name)
		}
	}
	if !strings.Contains(out, "#0000FF") {
		t.Errorf("Expected control points in plain output")
	}
}

func TestRenderSwatchInvalidColor(t *testing.T) {
	if _, err := RenderSwatch([]string{"nope"}, 4, true); err == nil && !IsColorDisabled() {
		t.Error("Expected error for invalid control point")
	}
}

func TestRenderColorTable(t *testing.T) {
	out := RenderColorTable("Chains", map[string]string{"B": "#00FF00", "A": "#FF0000"}, false)
	if strings.Index(out, "A") > strings.Index(out, "B ") {
		t.Errorf("Expected sorted keys, got %q", out)
	}
	if !strings.Contains(out, "#FF0000") {
		t.Errorf("Expected color values in table")
	}
}

func TestSetThemeByName(t *testing.T) {
	defer SetTheme(&DefaultTheme)

	for _, name := range GetAvailableThemes() {
		if !SetThemeByName(name) {
			t.Errorf("Expected theme %s to be available", name)
		}
		if GetTheme().Name != name {
			t.Errorf("Expected active theme %s, got %s", name, GetTheme().Name)
		}
	}
	if SetThemeByName("neon") {
		t.Errorf("Expected unknown theme to be rejected")
	}
}
