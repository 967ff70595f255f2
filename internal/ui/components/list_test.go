package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

var plainColors = ListColors{
	Accent:    lipgloss.NoColor{},
	Dim:       lipgloss.NoColor{},
	Highlight: lipgloss.NoColor{},
	Frame:     lipgloss.NoColor{},
}

func TestEntryListFilter(t *testing.T) {
	l := NewEntryList("Results", 40, 10, plainColors)
	l.SetEntries([]Entry{{ID: "4HHB", Label: "hemoglobin"}, {ID: "1UBQ"}, {ID: "2HHB"}})

	tests := []struct {
		filter string
		want   int
	}{
		{"", 3},
		{"hhb", 2},
		{"HEMO", 1},
		{"zzz", 0},
	}
	for _, tt := range tests {
		l.SetFilter(tt.filter)
		if l.Len() != tt.want {
			t.Errorf("SetFilter(%q): expected %d entries, got %d", tt.filter, tt.want, l.Len())
		}
		if l.Total() != 3 {
			t.Errorf("Expected filter to keep all entries, got %d", l.Total())
		}
	}

	if _, ok := l.Current(); ok {
		t.Error("Expected no current entry when nothing matches")
	}
}

func TestEntryListCursor(t *testing.T) {
	l := NewEntryList("Results", 40, 10, plainColors)
	l.SetIDs([]string{"1A3N", "2HHB", "4HHB"})

	l.Up()
	if e, _ := l.Current(); e.ID != "1A3N" {
		t.Errorf("Expected cursor to stay on first entry, got %s", e.ID)
	}
	l.Down()
	l.Down()
	l.Down()
	if e, _ := l.Current(); e.ID != "4HHB" {
		t.Errorf("Expected cursor to stop on last entry, got %s", e.ID)
	}

	l.SetFilter("2h")
	if e, ok := l.Current(); !ok || e.ID != "2HHB" {
		t.Errorf("Expected filter to reset cursor onto 2HHB, got %v", e)
	}
}

func TestEntryListViewScrolls(t *testing.T) {
	ids := make([]string, 20)
	for i := range ids {
		ids[i] = strings.Repeat(string(rune('A'+i)), 4)
	}
	l := NewEntryList("Results", 40, 8, plainColors)
	l.Marker = "*"
	l.SetIDs(ids)
	for range 10 {
		l.Down()
	}

	out := l.View()
	if !strings.Contains(out, "* KKKK") {
		t.Errorf("Expected cursor row in view, got:\n%s", out)
	}
	if strings.Contains(out, "AAAA") {
		t.Errorf("Expected first rows scrolled out, got:\n%s", out)
	}
	if !strings.Contains(out, "of 20)") {
		t.Errorf("Expected scroll indicator, got:\n%s", out)
	}
}
