package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// SearchFunc runs a search and returns matching identifiers
type SearchFunc func(ctx context.Context, query string) ([]string, error)

type searchCompleteMsg struct {
	ids []string
}

type searchErrorMsg struct {
	err error
}

// CreateSearchCommand creates a tea command that performs the search
func CreateSearchCommand(ctx context.Context, search SearchFunc, query string) tea.Cmd {
	return func() tea.Msg {
		ids, err := search(ctx, query)
		if err != nil {
			return searchErrorMsg{err: err}
		}
		return searchCompleteMsg{ids: ids}
	}
}
