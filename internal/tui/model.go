// Package tui is a small bubbletea list chooser: type to filter, arrows to
// move, enter to pick, esc to cancel.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model holds the chooser state.
type Model struct {
	// Data
	Items  []string
	Header string

	// UI State
	SelectedIdx int // Index into FilteredIndices
	WindowSize  tea.WindowSizeMsg

	// Search State
	InputBuffer     textinput.Model
	FilteredIndices []int // Indices of Items to show

	// Result
	Choice    string
	Chosen    bool
	Cancelled bool
}

// New returns a focused chooser over items.
func New(items []string, prompt, header string) Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = "type to filter"
	ti.CharLimit = 120
	ti.Focus()

	m := Model{
		Items:       items,
		Header:      header,
		InputBuffer: ti,
	}
	m.performSearch()
	return m
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}
