package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestChooser_EnterPicksFirst(t *testing.T) {
	m := New([]string{"home", "work.aws", "work.gcp"}, "> ", "Pick")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.Chosen)
	assert.Equal(t, "home", m.Choice)
}

func TestChooser_FilterAndMove(t *testing.T) {
	m := New([]string{"home", "work.aws", "work.gcp", "play.aws"}, "> ", "")

	m = send(t, m, runes("wo"))
	assert.Equal(t, []int{1, 2}, m.FilteredIndices)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Chosen)
	assert.Equal(t, "work.gcp", m.Choice)
}

func TestChooser_MultiWordFilter(t *testing.T) {
	m := New([]string{"work.aws", "play.aws", "work.gcp"}, "> ", "")

	m = send(t, m, runes("AWS work"))
	assert.Equal(t, []int{0}, m.FilteredIndices)
}

func TestChooser_NoMatchEnterDoesNothing(t *testing.T) {
	m := New([]string{"a", "b"}, "> ", "")

	m = send(t, m, runes("zzz"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Chosen)
	assert.Empty(t, m.FilteredIndices)
	assert.Equal(t, 0, m.SelectedIdx)
}

func TestChooser_EscCancels(t *testing.T) {
	m := New([]string{"a"}, "> ", "")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.Cancelled)
	assert.False(t, m.Chosen)
	assert.Empty(t, m.View())
}

func TestChooser_CursorClampsAfterFilter(t *testing.T) {
	m := New([]string{"alpha", "beta", "gamma"}, "> ", "")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.SelectedIdx)

	m = send(t, m, runes("beta"))
	assert.Equal(t, 0, m.SelectedIdx)
}

func TestChooser_ViewWindows(t *testing.T) {
	items := make([]string, 50)
	for i := range items {
		items[i] = string(rune('A'+i%26)) + "-item"
	}
	m := New(items, "> ", "Header")
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})

	view := m.View()
	assert.Contains(t, view, "Header")
	assert.Contains(t, view, "50/50")
	assert.Contains(t, view, "A-item")
	assert.NotContains(t, view, "Z-item")
}
