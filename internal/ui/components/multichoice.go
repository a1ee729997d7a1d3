package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/camposb/preu/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector. It does not know the right
// answer: callers either grade the whole set later or call Reveal to
// show immediate feedback.
type MultiChoice struct {
	Question string
	Options  []string
	Selected int
	Chosen   int // -1 until the learner picks an option

	revealed     bool
	correctIndex int
}

// NewMultiChoice creates a selector with no option chosen yet.
func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{
		Question: question,
		Options:  options,
		Selected: 0,
		Chosen:   -1,
	}
}

// SetChosen restores a previous pick, e.g. when navigating back to an
// already answered question.
func (m *MultiChoice) SetChosen(index int) {
	if index < 0 || index >= len(m.Options) {
		m.Chosen = -1
		return
	}
	m.Chosen = index
	m.Selected = index
}

// Reveal switches the component into feedback mode: the correct option
// is highlighted and further input is ignored.
func (m *MultiChoice) Reveal(correctIndex int) {
	m.revealed = true
	m.correctIndex = correctIndex
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.revealed {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "1", "2", "3", "4":
		i := int(kmsg.String()[0] - '1')
		if i < len(m.Options) {
			m.Selected = i
			m.Chosen = i
		}
	case "enter":
		m.Chosen = m.Selected
	}

	return m, nil
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	labels := []string{"A", "B", "C", "D"}

	for i, opt := range m.Options {
		label := labels[i%len(labels)]
		prefix := "  "
		if i == m.Selected && !m.revealed {
			prefix = "▸ "
		}

		marker := " "
		if i == m.Chosen {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		if m.revealed {
			switch {
			case i == m.correctIndex:
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
			case i == m.Chosen:
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
			continue
		}

		if i == m.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else if i == m.Chosen {
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}

// Answered reports whether the learner has picked an option.
func (m MultiChoice) Answered() bool {
	return m.Chosen >= 0
}
