package study

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/camposb/preu/internal/catalog"
	"github.com/camposb/preu/internal/mastery"
	prac "github.com/camposb/preu/internal/practice"
	"github.com/camposb/preu/internal/review"
	"github.com/camposb/preu/internal/router"
	"github.com/camposb/preu/internal/screen"
	practicescreen "github.com/camposb/preu/internal/screens/practice"
	"github.com/camposb/preu/internal/state"
	"github.com/camposb/preu/internal/ui/components"
	"github.com/camposb/preu/internal/ui/layout"
	"github.com/camposb/preu/internal/ui/theme"
)

type level int

const (
	levelSubjects level = iota
	levelTopics
	levelDetail
	levelRecall
)

// StudyScreen browses subjects and topics, launches drills, runs the
// active-recall check and schedules manual reviews.
type StudyScreen struct {
	st      *state.Manager
	tracker *mastery.Tracker
	sched   *review.Scheduler
	grader  *prac.Grader

	level    level
	subjects []catalog.Subject
	topics   []catalog.Topic
	subIdx   int
	topIdx   int

	recallQ   catalog.Question
	recallMC  components.MultiChoice
	recallOut *prac.RecallOutcome

	notice string
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New creates the study screen at the subject list.
func New(st *state.Manager, tracker *mastery.Tracker, sched *review.Scheduler, grader *prac.Grader) *StudyScreen {
	return &StudyScreen{
		st:       st,
		tracker:  tracker,
		sched:    sched,
		grader:   grader,
		subjects: catalog.Subjects(),
	}
}

func (s *StudyScreen) Init() tea.Cmd {
	return nil
}

func (s *StudyScreen) Title() string {
	return "Estudiar"
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	switch s.level {
	case levelDetail:
		return []layout.KeyHint{
			{Key: "p", Description: "Practicar"},
			{Key: "r", Description: "Recuerdo activo"},
			{Key: "a", Description: "Agendar repaso"},
			{Key: "Esc", Description: "Volver"},
		}
	case levelRecall:
		if s.recallOut != nil {
			return []layout.KeyHint{{Key: "cualquier tecla", Description: "Continuar"}}
		}
		return []layout.KeyHint{
			{Key: "1-4", Description: "Responder"},
			{Key: "Enter", Description: "Elegir"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navegar"},
			{Key: "Enter", Description: "Abrir"},
			{Key: "Esc", Description: "Volver"},
		}
	}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	key := kmsg.String()

	switch s.level {
	case levelSubjects:
		switch key {
		case "up", "k":
			if s.subIdx > 0 {
				s.subIdx--
			}
		case "down", "j":
			if s.subIdx < len(s.subjects)-1 {
				s.subIdx++
			}
		case "enter":
			s.topics = catalog.TopicsBySubject(s.subjects[s.subIdx].ID)
			s.topIdx = 0
			if len(s.topics) > 0 {
				s.level = levelTopics
			}
		}
		return s, nil

	case levelTopics:
		switch key {
		case "up", "k":
			if s.topIdx > 0 {
				s.topIdx--
			}
		case "down", "j":
			if s.topIdx < len(s.topics)-1 {
				s.topIdx++
			}
		case "enter":
			s.notice = ""
			s.level = levelDetail
			topic := s.topics[s.topIdx]
			s.st.SetLastRoute("study", topic.Subject, topic.ID)
			_ = s.st.Persist(context.Background())
		case "esc":
			s.level = levelSubjects
			return s, nil
		}
		return s, nil

	case levelDetail:
		return s.handleDetailKey(key)

	case levelRecall:
		return s.handleRecallKey(kmsg)
	}

	return s, nil
}

func (s *StudyScreen) handleDetailKey(key string) (screen.Screen, tea.Cmd) {
	topic := s.topics[s.topIdx]

	switch key {
	case "p":
		st, grader := s.st, s.grader
		return s, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: practicescreen.New(st, grader, practicescreen.Preset{TopicID: topic.ID}),
			}
		}
	case "r":
		q, ok := prac.RecallQuestion(topic)
		if !ok {
			s.notice = "Este tema aún no tiene preguntas de recuerdo."
			return s, nil
		}
		s.recallQ = q
		s.recallMC = components.NewMultiChoice(q.Stem, q.Options)
		s.recallOut = nil
		s.level = levelRecall
		return s, nil
	case "a":
		s.sched.Schedule(topic.ID, 1)
		_ = s.st.Persist(context.Background())
		s.notice = "Repaso agendado para mañana."
		return s, nil
	case "esc":
		s.level = levelTopics
		return s, nil
	}
	return s, nil
}

func (s *StudyScreen) handleRecallKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.recallOut != nil {
		// Feedback shown, any key returns to the topic.
		s.level = levelDetail
		return s, nil
	}

	var cmd tea.Cmd
	s.recallMC, cmd = s.recallMC.Update(msg)
	if s.recallMC.Chosen >= 0 {
		topic := s.topics[s.topIdx]
		out, err := s.grader.CheckRecall(context.Background(), topic, s.recallQ, s.recallMC.Chosen)
		if err != nil {
			s.notice = err.Error()
			s.level = levelDetail
			return s, nil
		}
		s.recallOut = out
		s.recallMC.Reveal(s.recallQ.AnswerIndex)
	}
	return s, cmd
}

func (s *StudyScreen) View(width, height int) string {
	switch s.level {
	case levelSubjects:
		return s.renderSubjects(width)
	case levelTopics:
		return s.renderTopics(width)
	case levelDetail:
		return s.renderDetail(width)
	case levelRecall:
		return s.renderRecall(width)
	}
	return ""
}

func (s *StudyScreen) renderSubjects(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Materias"))
	b.WriteString("\n\n")

	for i, sub := range s.subjects {
		prefix := "    "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.subIdx {
			prefix = "  ▸ "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		count := len(catalog.TopicsBySubject(sub.ID))
		suffix := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d temas", count))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(prefix+sub.Name)+suffix))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *StudyScreen) renderTopics(width int) string {
	sub := s.subjects[s.subIdx]

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(sub.Name))
	b.WriteString("\n\n")

	barWidth := width / 3
	if barWidth < 20 {
		barWidth = 20
	}

	for i, topic := range s.topics {
		prefix := "    "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.topIdx {
			prefix = "  ▸ "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		bar := components.NewScoreBar("", s.tracker.Get(topic.ID), true, barWidth)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(prefix+topic.Title)))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *StudyScreen) renderDetail(width int) string {
	topic := s.topics[s.topIdx]

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(topic.Title))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("%s · %s · dominio %d%%", topic.Axis, topic.Level, s.tracker.Get(topic.ID))))
	b.WriteString("\n\n")

	interval := s.sched.IntervalFor(topic.ID)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("Intervalo de repaso actual: %d día(s)", interval))))
	b.WriteString("\n\n")

	writeResources := func(label string, rs []catalog.Resource) {
		if len(rs) == 0 {
			return
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(label)))
		b.WriteString("\n")
		for _, r := range rs {
			line := "· " + r.Title
			if r.Minutes > 0 {
				line += fmt.Sprintf(" (%d min)", r.Minutes)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	writeResources("Miniclases", topic.Learn.MiniClasses)
	writeResources("Clases completas", topic.Learn.DeepClasses)
	writeResources("Explicaciones alternativas", topic.Learn.AltStyles)

	if s.notice != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Render(s.notice)))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *StudyScreen) renderRecall(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Recuerdo activo · responde de memoria"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.recallMC.View()))

	if s.recallOut != nil {
		b.WriteString("\n")
		if s.recallOut.Correct {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Success).
				Bold(true).
				Render("¡Correcto!"))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Error).
				Bold(true).
				Render("Casi. Revisa la explicación:"))
		}
		b.WriteString("\n")
		for _, line := range s.recallQ.Explanation {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).
				Render(fmt.Sprintf("Dominio del tema: %d%%", s.recallOut.NewScore))))
		b.WriteString("\n")
	}

	return b.String()
}
