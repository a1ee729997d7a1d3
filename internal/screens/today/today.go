package today

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/camposb/preu/internal/mastery"
	"github.com/camposb/preu/internal/plan"
	prac "github.com/camposb/preu/internal/practice"
	"github.com/camposb/preu/internal/review"
	"github.com/camposb/preu/internal/router"
	"github.com/camposb/preu/internal/screen"
	practicescreen "github.com/camposb/preu/internal/screens/practice"
	"github.com/camposb/preu/internal/state"
	"github.com/camposb/preu/internal/ui/layout"
	"github.com/camposb/preu/internal/ui/theme"
)

// TodayScreen shows the recommended plan for the day. Selecting an
// item jumps straight into a drill for its topic.
type TodayScreen struct {
	st       *state.Manager
	grader   *prac.Grader
	items    []plan.Item
	selected int
}

var _ screen.Screen = (*TodayScreen)(nil)
var _ screen.KeyHintProvider = (*TodayScreen)(nil)

// New builds the plan once at screen creation.
func New(st *state.Manager, tracker *mastery.Tracker, sched *review.Scheduler, grader *prac.Grader) *TodayScreen {
	return &TodayScreen{
		st:     st,
		grader: grader,
		items:  plan.Build(sched, tracker, time.Now()),
	}
}

func (s *TodayScreen) Init() tea.Cmd {
	return nil
}

func (s *TodayScreen) Title() string {
	return "Plan de hoy"
}

func (s *TodayScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Practicar"},
		{Key: "Esc", Description: "Volver"},
	}
}

func (s *TodayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.items)-1 {
			s.selected++
		}
	case "enter":
		if s.selected >= len(s.items) {
			return s, nil
		}
		item := s.items[s.selected]
		if item.TopicID == "" {
			return s, nil
		}
		s.st.SetLastRoute(item.Page, item.SubjectID, item.TopicID)
		_ = s.st.Persist(context.Background())
		st, grader := s.st, s.grader
		return s, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: practicescreen.New(st, grader, practicescreen.Preset{TopicID: item.TopicID}),
			}
		}
	}
	return s, nil
}

func (s *TodayScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Plan de hoy"))
	b.WriteString("\n\n")

	if len(s.items) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("Nada pendiente por ahora. ¡Buen trabajo!"))
		return b.String()
	}

	tagColor := func(kind plan.Kind) lipgloss.Style {
		switch kind {
		case plan.KindReview:
			return lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		case plan.KindReinforce:
			return lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		default:
			return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		}
	}

	for i, item := range s.items {
		prefix := "  "
		titleStyle := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "▸ "
			titleStyle = titleStyle.Foreground(theme.Primary).Bold(true)
		}

		line := fmt.Sprintf("%s%s  %s",
			prefix, tagColor(item.Kind).Render("["+item.Tag+"]"), titleStyle.Render(item.Title))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("      "+item.Subtitle)))
		b.WriteString("\n\n")
	}

	return b.String()
}
