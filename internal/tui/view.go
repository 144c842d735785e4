package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"earl/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	unselectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	boxStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63"))
)

// defaultVisibleItems is used before the first WindowSizeMsg arrives.
const defaultVisibleItems = 10

func (m Model) View() string {
	if m.Chosen || m.Cancelled {
		return ""
	}

	var b strings.Builder
	if m.Header != "" {
		b.WriteString(headerStyle.Render(m.Header))
		b.WriteString("\n")
	}
	b.WriteString(m.InputBuffer.View())
	b.WriteString("\n")

	// Windowing: roughly 40% of the terminal, like fzf --height=40%.
	visibleItems := defaultVisibleItems
	if m.WindowSize.Height > 0 {
		visibleItems = m.WindowSize.Height*2/5 - 4
	}
	if visibleItems < 3 {
		visibleItems = 3
	}

	startIdx := 0
	endIdx := len(m.FilteredIndices)
	if len(m.FilteredIndices) > visibleItems {
		if m.SelectedIdx >= visibleItems/2 {
			startIdx = m.SelectedIdx - (visibleItems / 2)
		}
		if startIdx+visibleItems > len(m.FilteredIndices) {
			startIdx = len(m.FilteredIndices) - visibleItems
		}
		endIdx = startIdx + visibleItems
	}

	for i := startIdx; i < endIdx; i++ {
		item := m.Items[m.FilteredIndices[i]]
		if i == m.SelectedIdx {
			b.WriteString(selectedItemStyle.Render(model.IconCursor + " " + item))
		} else {
			b.WriteString(unselectedItemStyle.Render("  " + item))
		}
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render(fmt.Sprintf("%d/%d  ↑/↓ move • enter select • esc cancel", len(m.FilteredIndices), len(m.Items))))
	return boxStyle.Render(b.String()) + "\n"
}
