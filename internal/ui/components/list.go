// Package components holds reusable terminal widgets.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Entry is one row of an EntryList
type Entry struct {
	ID    string
	Label string // optional text after the ID
}

// ListColors are the colors an EntryList draws with
type ListColors struct {
	Accent    lipgloss.TerminalColor
	Dim       lipgloss.TerminalColor
	Highlight lipgloss.TerminalColor
	Frame     lipgloss.TerminalColor
}

// EntryList is a scrolling, filterable list of structure identifiers
type EntryList struct {
	Title   string
	Width   int
	Height  int
	Focused bool
	Marker  string // drawn before every ID, e.g. an emoji
	Colors  ListColors

	entries []Entry
	visible []int // indices into entries that pass the filter
	cursor  int   // index into visible
	filter  string
}

// NewEntryList creates an empty list
func NewEntryList(title string, width, height int, colors ListColors) *EntryList {
	return &EntryList{Title: title, Width: width, Height: height, Colors: colors}
}

// SetIDs replaces the entries with one row per identifier
func (l *EntryList) SetIDs(ids []string) {
	entries := make([]Entry, len(ids))
	for i, id := range ids {
		entries[i] = Entry{ID: id}
	}
	l.SetEntries(entries)
}

// SetEntries replaces the entries and resets the cursor
func (l *EntryList) SetEntries(entries []Entry) {
	l.entries = entries
	l.cursor = 0
	l.refilter()
}

// Total is the number of entries ignoring the filter
func (l *EntryList) Total() int { return len(l.entries) }

// Len is the number of entries passing the filter
func (l *EntryList) Len() int { return len(l.visible) }

// Current returns the entry under the cursor
func (l *EntryList) Current() (Entry, bool) {
	if l.cursor >= len(l.visible) {
		return Entry{}, false
	}
	return l.entries[l.visible[l.cursor]], true
}

// Up moves the cursor one row up
func (l *EntryList) Up() {
	if l.cursor > 0 {
		l.cursor--
	}
}

// Down moves the cursor one row down
func (l *EntryList) Down() {
	if l.cursor < len(l.visible)-1 {
		l.cursor++
	}
}

// Filter returns the active filter text
func (l *EntryList) Filter() string { return l.filter }

// SetFilter keeps only entries whose ID or label contains text, ignoring case
func (l *EntryList) SetFilter(text string) {
	l.filter = text
	l.cursor = 0
	l.refilter()
}

func (l *EntryList) refilter() {
	needle := strings.ToLower(l.filter)
	l.visible = l.visible[:0]
	for i, e := range l.entries {
		if needle == "" ||
			strings.Contains(strings.ToLower(e.ID), needle) ||
			strings.Contains(strings.ToLower(e.Label), needle) {
			l.visible = append(l.visible, i)
		}
	}
}

// window returns the [start, end) range of visible rows that fits Height
// and keeps the cursor on screen
func (l *EntryList) window() (start, end int) {
	// title, filter line and spacing
	rows := max(l.Height-4, 1)
	if l.cursor >= rows {
		start = l.cursor - rows + 1
	}
	end = min(start+rows, len(l.visible))
	return start, end
}

// View renders the list inside a rounded frame
func (l *EntryList) View() string {
	dim := lipgloss.NewStyle().Foreground(l.Colors.Dim)

	lines := []string{lipgloss.NewStyle().Foreground(l.Colors.Accent).Bold(true).Render(l.Title)}
	if l.filter != "" {
		lines = append(lines, dim.Render(fmt.Sprintf("Filter: %s (%d of %d)", l.filter, len(l.visible), len(l.entries))))
	}
	lines = append(lines, "")

	start, end := l.window()
	for i := start; i < end; i++ {
		lines = append(lines, l.row(l.entries[l.visible[i]], i))
	}
	if len(l.visible) == 0 {
		lines = append(lines, dim.Render("no matches"))
	}
	if end-start < len(l.visible) {
		lines = append(lines, "", dim.Render(fmt.Sprintf("(%d-%d of %d)", start+1, end, len(l.visible))))
	}

	frame := l.Colors.Frame
	if l.Focused {
		frame = l.Colors.Accent
	}
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(frame)
	if l.Width > 0 {
		box = box.Width(l.Width)
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (l *EntryList) row(e Entry, index int) string {
	text := fmt.Sprintf("%2d. ", index+1)
	if l.Marker != "" {
		text += l.Marker + " "
	}
	text += e.ID
	if e.Label != "" {
		text += "  " + e.Label
	}

	style := lipgloss.NewStyle().Foreground(l.Colors.Dim)
	if index == l.cursor {
		style = lipgloss.NewStyle().Foreground(l.Colors.Accent).Background(l.Colors.Highlight).Bold(true)
	}
	if l.Width > 4 {
		style = style.Width(l.Width - 4)
	}
	return style.Render(text)
}
