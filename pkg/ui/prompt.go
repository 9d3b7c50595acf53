// Package ui implements the interactive prompts of the semtag CLI as Bubble
// Tea models: a cursor-select over bump kinds and a yes/no confirmation.
package ui

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	semtag "github.com/example/semtag/pkg"
)

// ErrAborted is returned when the user cancels a prompt (esc or ctrl+c).
var ErrAborted = errors.New("aborted by user")

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

type selectModel struct {
	title   string
	choices []semtag.Kind
	cursor  int
	chosen  bool
	aborted bool
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case "enter":
		m.chosen = true
		return m, tea.Quit
	case "q", "esc", "ctrl+c":
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

func (m selectModel) View() string {
	if m.chosen || m.aborted {
		return ""
	}
	s := titleStyle.Render(m.title) + "\n"
	for i, c := range m.choices {
		if i == m.cursor {
			s += cursorStyle.Render("› "+c.String()) + "\n"
		} else {
			s += "  " + c.String() + "\n"
		}
	}
	s += faintStyle.Render("↑/↓ move · enter select · esc cancel") + "\n"
	return s
}

// AskBumpKind presents the Major/Minor/Patch choices and returns the
// selected kind, or ErrAborted if the user cancels.
func AskBumpKind() (semtag.Kind, error) {
	m := selectModel{title: "Which version to bump?", choices: semtag.Kinds}
	final, err := tea.NewProgram(m, tea.WithOutput(os.Stderr)).Run()
	if err != nil {
		return 0, fmt.Errorf("bump prompt failed: %w", err)
	}
	res := final.(selectModel)
	if res.aborted {
		return 0, ErrAborted
	}
	return res.choices[res.cursor], nil
}

type confirmModel struct {
	question string
	def      bool
	answer   bool
	done     bool
	aborted  bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y":
		m.answer = true
		m.done = true
		return m, tea.Quit
	case "n", "N":
		m.answer = false
		m.done = true
		return m, tea.Quit
	case "enter":
		m.answer = m.def
		m.done = true
		return m, tea.Quit
	case "esc", "ctrl+c":
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	hint := "[Y/n]"
	if !m.def {
		hint = "[y/N]"
	}
	return titleStyle.Render(m.question) + " " + faintStyle.Render(hint) + "\n"
}

// Confirm asks a yes/no question, with def as the answer for a bare enter.
// ErrAborted is returned if the user cancels instead of answering.
func Confirm(question string, def bool) (bool, error) {
	m := confirmModel{question: question, def: def}
	final, err := tea.NewProgram(m, tea.WithOutput(os.Stderr)).Run()
	if err != nil {
		return false, fmt.Errorf("confirm prompt failed: %w", err)
	}
	res := final.(confirmModel)
	if res.aborted {
		return false, ErrAborted
	}
	return res.answer, nil
}
