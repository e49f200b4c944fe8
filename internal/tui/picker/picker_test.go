package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/skingen/internal/project"
)

func testChoices() []Choice {
	return []Choice{
		{Variant: project.VariantIOS, Description: "iMessage"},
		{Variant: project.VariantAndroid, Description: "WhatsApp"},
		{Variant: project.VariantDiscord, Description: "Discord"},
	}
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestNew_StartsOnCurrentVariant(t *testing.T) {
	t.Parallel()

	m := New(testChoices(), project.VariantDiscord)
	assert.Equal(t, 2, m.cursor)
	assert.Contains(t, m.View(), "(current)")
}

func TestUpdate_NavigationAndSelect(t *testing.T) {
	t.Parallel()

	m := New(testChoices(), project.VariantIOS)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.cursor)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 1, m.cursor)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	v, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, project.VariantAndroid, v)
	assert.Empty(t, m.View())
}

func TestUpdate_NumberKeysJump(t *testing.T) {
	t.Parallel()

	m := New(testChoices(), project.VariantIOS)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	assert.Equal(t, 2, m.cursor)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'9'}})
	assert.Equal(t, 2, m.cursor)
}

func TestUpdate_Cancel(t *testing.T) {
	t.Parallel()

	m := New(testChoices(), project.VariantIOS)
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestView_ListsEveryChoice(t *testing.T) {
	t.Parallel()

	view := New(testChoices(), project.VariantIOS).View()
	for _, c := range testChoices() {
		assert.Contains(t, view, string(c.Variant))
		assert.Contains(t, view, c.Description)
	}
}
