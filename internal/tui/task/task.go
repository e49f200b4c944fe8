// Package task shows a spinner while a single blocking operation runs.
package task

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Func is the work performed behind the spinner.
type Func func(ctx context.Context) (string, error)

type doneMsg struct {
	result string
	err    error
}

// Model renders the spinner and records the outcome of the work.
type Model struct {
	label   string
	spinner spinner.Model
	work    tea.Cmd
	cancel  context.CancelFunc
	done    bool
	result  string
	err     error
}

// New prepares a model that runs fn once started.
func New(ctx context.Context, label string, fn Func) Model {
	ctx, cancel := context.WithCancel(ctx)
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return Model{
		label:   label,
		spinner: s,
		cancel:  cancel,
		work: func() tea.Msg {
			result, err := fn(ctx)
			return doneMsg{result: result, err: err}
		},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.work)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.done = true
		m.result = msg.result
		m.err = msg.err
		m.cancel()
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancel()
			m.done = true
			m.err = context.Canceled
			return m, tea.Quit
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s\n", m.spinner.View(), labelStyle.Render(m.label))
}

// Result returns the outcome recorded by Update.
func (m Model) Result() (string, error) {
	return m.result, m.err
}

// Run executes fn behind a spinner rendered to out.
func Run(ctx context.Context, label string, fn Func, in io.Reader, out io.Writer) (string, error) {
	program := tea.NewProgram(New(ctx, label, fn), tea.WithInput(in), tea.WithOutput(out), tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("run task: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return "", fmt.Errorf("unexpected task model %T", final)
	}
	return m.Result()
}
