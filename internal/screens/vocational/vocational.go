package vocational

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/camposb/preu/internal/screen"
	"github.com/camposb/preu/internal/ui/components"
	"github.com/camposb/preu/internal/ui/layout"
	"github.com/camposb/preu/internal/ui/theme"
	voc "github.com/camposb/preu/internal/vocational"
)

// section labels in the order the form presents them. Keys match the
// career weight tables.
var sections = []struct {
	Key   string
	Label string
}{
	{"leng", "Comprensión Lectora"},
	{"m1", "Matemática M1"},
	{"m2", "Matemática M2"},
	{"ciencias", "Ciencias"},
	{"historia", "Historia"},
}

// VocationalScreen simulates weighted career scores from per-section
// PAES scores (0-1000).
type VocationalScreen struct {
	inputs   []components.TextInput
	active   int
	rankings []voc.Ranking
	showing  bool
}

var _ screen.Screen = (*VocationalScreen)(nil)
var _ screen.KeyHintProvider = (*VocationalScreen)(nil)

// New creates the simulator form with empty inputs.
func New() *VocationalScreen {
	s := &VocationalScreen{}
	for range sections {
		s.inputs = append(s.inputs, components.NewTextInput("0-1000", true, 4))
	}
	return s
}

func (s *VocationalScreen) Init() tea.Cmd {
	if len(s.inputs) > 0 {
		return s.inputs[0].Init()
	}
	return nil
}

func (s *VocationalScreen) Title() string {
	return "Vocacional"
}

func (s *VocationalScreen) KeyHints() []layout.KeyHint {
	if s.showing {
		return []layout.KeyHint{
			{Key: "e", Description: "Editar puntajes"},
			{Key: "Esc", Description: "Volver"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Campo"},
		{Key: "Enter", Description: "Simular"},
		{Key: "Esc", Description: "Volver"},
	}
}

func (s *VocationalScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	if s.showing {
		if isKey && kmsg.String() == "e" {
			s.showing = false
			return s, s.inputs[s.active].Focus()
		}
		return s, nil
	}

	if isKey {
		switch kmsg.String() {
		case "up", "shift+tab":
			if s.active > 0 {
				s.inputs[s.active].Blur()
				s.active--
				return s, s.inputs[s.active].Focus()
			}
			return s, nil
		case "down", "tab":
			if s.active < len(s.inputs)-1 {
				s.inputs[s.active].Blur()
				s.active++
				return s, s.inputs[s.active].Focus()
			}
			return s, nil
		case "enter":
			s.simulate()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.inputs[s.active], cmd = s.inputs[s.active].Update(msg)
	return s, cmd
}

// simulate ranks careers from the current form values. Empty or
// invalid fields count as zero.
func (s *VocationalScreen) simulate() {
	scores := make(map[string]int, len(sections))
	for i, sec := range sections {
		v, err := s.inputs[i].NumericValue()
		if err != nil {
			v = 0
		}
		scores[sec.Key] = voc.ClampScore(v)
	}
	s.rankings = voc.Rank(scores)
	s.showing = true
}

func (s *VocationalScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Simulador vocacional"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Ingresa tus puntajes por sección (0 a 1000)"))
	b.WriteString("\n\n")

	if s.showing {
		for i, r := range s.rankings {
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if i == 0 {
				style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
			}
			line := fmt.Sprintf("%d. %-18s %4d puntos ponderados", i+1, r.Career.Name, r.Total)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
			b.WriteString("\n")
		}
		return b.String()
	}

	for i, sec := range sections {
		marker := "   "
		labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.active {
			marker = " ▸ "
			labelStyle = labelStyle.Foreground(theme.Primary).Bold(true)
		}
		line := fmt.Sprintf("%s%-22s %s", marker, labelStyle.Render(sec.Label), s.inputs[i].View())
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	return b.String()
}
