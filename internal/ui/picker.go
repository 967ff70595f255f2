package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yildizm/molview/internal/emoji"
	"github.com/yildizm/molview/internal/ui/components"
)

// PickerModel searches RCSB and lets the user pick one entry
type PickerModel struct {
	ctx    context.Context
	search SearchFunc
	query  string

	list      *components.EntryList
	styles    *Styles
	searching bool
	filtering bool
	ready     bool
	quitting  bool
	chosen    string
	err       error
}

// NewPicker creates a picker that runs search on start
func NewPicker(ctx context.Context, query string, search SearchFunc) *PickerModel {
	return &PickerModel{
		ctx:       ctx,
		search:    search,
		query:     query,
		list:      newResultList(query),
		styles:    GetStyles(),
		searching: search != nil,
	}
}

// NewPickerWithResults creates a picker over results already fetched
func NewPickerWithResults(query string, ids []string) *PickerModel {
	m := NewPicker(context.Background(), query, nil)
	m.setResults(ids)
	return m
}

func newResultList(query string) *components.EntryList {
	l := components.NewEntryList(fmt.Sprintf("Results for %q", query), 60, 16, GetTheme().ListColors())
	l.Marker = emoji.GetEmoji("structure")
	return l
}

func (m *PickerModel) setResults(ids []string) {
	m.list.SetIDs(ids)
	m.list.Focused = true
	m.searching = false
}

// Init starts the search
func (m *PickerModel) Init() tea.Cmd {
	if m.searching {
		return CreateSearchCommand(m.ctx, m.search, m.query)
	}
	return nil
}

// Update handles messages
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.list.Width = min(msg.Width-2, 80)
		m.list.Height = max(msg.Height-6, 5)

	case searchCompleteMsg:
		m.setResults(msg.ids)

	case searchErrorMsg:
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit

	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterKey(msg)
		}
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleKeyPress handles navigation keys
func (m *PickerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		m.list.Up()
	case "down", "j":
		m.list.Down()
	case "/":
		if !m.searching {
			m.filtering = true
		}
	case "enter", " ":
		if e, ok := m.list.Current(); ok {
			m.chosen = e.ID
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// handleFilterKey edits the filter query
func (m *PickerModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEsc:
		m.filtering = false
		m.list.SetFilter("")
	case tea.KeyEnter:
		m.filtering = false
	case tea.KeyBackspace:
		if q := []rune(m.list.Filter()); len(q) > 0 {
			m.list.SetFilter(string(q[:len(q)-1]))
		}
	case tea.KeyRunes:
		m.list.SetFilter(m.list.Filter() + string(msg.Runes))
	}
	return m, nil
}

// View renders the picker
func (m *PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyledText("molview search", &m.styles.Title) + "\n\n")

	switch {
	case m.searching:
		fmt.Fprintf(&b, "%s Searching RCSB for %q...\n", emoji.GetEmoji("search"), m.query)
	case m.list.Total() == 0:
		fmt.Fprintf(&b, "No entries found for %q\n", m.query)
	default:
		b.WriteString(m.list.View() + "\n")
	}

	help := "↑/↓ move • enter view • / filter • q quit"
	if m.filtering {
		help = "type to filter • enter keep • esc clear"
	}
	b.WriteString("\n" + StyledText(help, &m.styles.Muted) + "\n")
	return b.String()
}

// Choice returns the picked identifier, false when the user quit
func (m *PickerModel) Choice() (string, bool) {
	return m.chosen, m.chosen != ""
}

// Err returns the search error, if any
func (m *PickerModel) Err() error {
	return m.err
}

// RunPicker runs the picker and returns the chosen identifier; ok is false
// when the user quit without choosing
func RunPicker(ctx context.Context, query string, search SearchFunc) (id string, ok bool, err error) {
	model := NewPicker(ctx, query, search)
	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return "", false, err
	}
	if model.Err() != nil {
		return "", false, model.Err()
	}
	id, ok = model.Choice()
	return id, ok, nil
}
