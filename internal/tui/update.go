package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.Cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			if len(m.FilteredIndices) == 0 {
				return m, nil
			}
			m.Choice = m.Items[m.FilteredIndices[m.SelectedIdx]]
			m.Chosen = true
			return m, tea.Quit
		case tea.KeyUp, tea.KeyCtrlP, tea.KeyShiftTab:
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
			}
			return m, nil
		case tea.KeyDown, tea.KeyCtrlN, tea.KeyTab:
			if m.SelectedIdx < len(m.FilteredIndices)-1 {
				m.SelectedIdx++
			}
			return m, nil
		}

		before := m.InputBuffer.Value()
		m.InputBuffer, cmd = m.InputBuffer.Update(msg)
		if m.InputBuffer.Value() != before {
			m.performSearch()
		}
		return m, cmd
	}

	m.InputBuffer, cmd = m.InputBuffer.Update(msg)
	return m, cmd
}

// performSearch narrows FilteredIndices to items containing every word of
// the filter, case-insensitively.
func (m *Model) performSearch() {
	terms := strings.Fields(strings.ToLower(m.InputBuffer.Value()))

	filtered := make([]int, 0, len(m.Items))
	for i, item := range m.Items {
		lower := strings.ToLower(item)
		match := true
		for _, t := range terms {
			if !strings.Contains(lower, t) {
				match = false
				break
			}
		}
		if match {
			filtered = append(filtered, i)
		}
	}
	m.FilteredIndices = filtered

	// Bounds check
	if m.SelectedIdx >= len(m.FilteredIndices) {
		if len(m.FilteredIndices) > 0 {
			m.SelectedIdx = len(m.FilteredIndices) - 1
		} else {
			m.SelectedIdx = 0
		}
	}
}
