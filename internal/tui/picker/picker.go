// Package picker is the interactive variant selector shown when the variant
// command runs on a terminal without an argument.
package picker

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/skingen/internal/project"
)

// Choice is one selectable variant.
type Choice struct {
	Variant     project.Variant
	Description string
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultKeys() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "cancel")),
	}
}

// Model is the Bubbletea state of the picker.
type Model struct {
	choices   []Choice
	current   project.Variant
	cursor    int
	chosen    bool
	cancelled bool
	keys      keyMap
	help      help.Model
}

// New builds a picker with the cursor on the current variant.
func New(choices []Choice, current project.Variant) Model {
	m := Model{
		choices: choices,
		current: current,
		keys:    defaultKeys(),
		help:    help.New(),
	}
	for i, c := range choices {
		if c.Variant == current {
			m.cursor = i
			break
		}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.Select):
			if len(m.choices) > 0 {
				m.chosen = true
			}
			return m, tea.Quit
		}

		// Direct selection with number keys
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if index := int(s[0] - '1'); index < len(m.choices) {
				m.cursor = index
			}
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.chosen || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Choose a template"))
	b.WriteString("\n")

	for i, c := range m.choices {
		line := fmt.Sprintf("%d. %-10s %s", i+1, c.Variant, descriptionStyle.Render(c.Description))
		if c.Variant == m.current {
			line += " " + currentMarkStyle.Render("(current)")
		}
		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render(line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Selected returns the chosen variant, or false when the picker was cancelled.
func (m Model) Selected() (project.Variant, bool) {
	if !m.chosen || m.cancelled || len(m.choices) == 0 {
		return "", false
	}
	return m.choices[m.cursor].Variant, true
}

// Run shows the picker on the given streams and returns the selection.
func Run(choices []Choice, current project.Variant, in io.Reader, out io.Writer) (project.Variant, bool, error) {
	program := tea.NewProgram(New(choices, current), tea.WithInput(in), tea.WithOutput(out))
	final, err := program.Run()
	if err != nil {
		return "", false, fmt.Errorf("run picker: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return "", false, fmt.Errorf("unexpected picker model %T", final)
	}
	v, chosen := m.Selected()
	return v, chosen, nil
}
