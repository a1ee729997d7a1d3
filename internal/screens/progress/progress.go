package progress

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/camposb/preu/internal/catalog"
	"github.com/camposb/preu/internal/mastery"
	prog "github.com/camposb/preu/internal/progress"
	"github.com/camposb/preu/internal/review"
	"github.com/camposb/preu/internal/screen"
	"github.com/camposb/preu/internal/state"
	"github.com/camposb/preu/internal/store"
	"github.com/camposb/preu/internal/ui/components"
	"github.com/camposb/preu/internal/ui/layout"
	"github.com/camposb/preu/internal/ui/theme"
)

// accuraciesLoadedMsg carries the per-topic accuracy aggregates.
type accuraciesLoadedMsg struct {
	Rows []store.TopicAccuracy
	Err  error
}

// ProgressScreen summarises attempts, estimated score and next steps,
// and lets the learner edit the weekly goal.
type ProgressScreen struct {
	st      *state.Manager
	tracker *mastery.Tracker
	sched   *review.Scheduler
	events  store.EventRepo

	accuracies []store.TopicAccuracy
	editing    bool
	goalInput  components.TextInput
	notice     string
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

// New creates the progress screen.
func New(st *state.Manager, tracker *mastery.Tracker, sched *review.Scheduler, events store.EventRepo) *ProgressScreen {
	return &ProgressScreen{
		st:      st,
		tracker: tracker,
		sched:   sched,
		events:  events,
	}
}

func (s *ProgressScreen) Init() tea.Cmd {
	if s.events == nil {
		return nil
	}
	events := s.events
	return func() tea.Msg {
		rows, err := events.TopicAccuracies(context.Background())
		return accuraciesLoadedMsg{Rows: rows, Err: err}
	}
}

func (s *ProgressScreen) Title() string {
	return "Progreso"
}

func (s *ProgressScreen) KeyHints() []layout.KeyHint {
	if s.editing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Guardar meta"},
			{Key: "Esc", Description: "Cancelar"},
		}
	}
	return []layout.KeyHint{
		{Key: "g", Description: "Meta semanal"},
		{Key: "Esc", Description: "Volver"},
	}
}

func (s *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case accuraciesLoadedMsg:
		if msg.Err == nil {
			s.accuracies = msg.Rows
		}
		return s, nil

	case tea.KeyMsg:
		if s.editing {
			switch msg.String() {
			case "enter":
				if total, err := s.goalInput.NumericValue(); err == nil {
					s.st.SetWeeklyGoalTotal(total)
					_ = s.st.Persist(context.Background())
					s.notice = "Meta semanal actualizada."
				}
				s.editing = false
				return s, nil
			case "esc":
				s.editing = false
				return s, nil
			}
			var cmd tea.Cmd
			s.goalInput, cmd = s.goalInput.Update(msg)
			return s, cmd
		}

		if msg.String() == "g" {
			s.editing = true
			s.notice = ""
			s.goalInput = components.NewTextInput("sesiones por semana (0-40)", true, 2)
			return s, s.goalInput.Init()
		}
	}
	return s, nil
}

func (s *ProgressScreen) View(width, height int) string {
	data := s.st.Data()
	now := time.Now()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Tu progreso"))
	b.WriteString("\n\n")

	avg := prog.AverageScore(data.Attempts)
	estimate := prog.EstimateScoreText(s.tracker)
	summary := fmt.Sprintf("Promedio %d%%  ·  Puntaje estimado %s  ·  Racha %d  ·  Nivel %d",
		avg, estimate, data.Streak, data.Level)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Render(summary)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Secondary).
			Render("Próximo paso: "+prog.NextStepText(s.sched, s.tracker, now))))
	b.WriteString("\n\n")

	// Weekly goal.
	goalWidth := width / 3
	if goalWidth < 20 {
		goalWidth = 20
	}
	goalPct := 0
	if data.WeeklyGoals.Total > 0 {
		goalPct = data.WeeklyGoals.Done * 100 / data.WeeklyGoals.Total
	}
	goalBar := components.NewScoreBar(
		fmt.Sprintf("Meta semanal %d/%d", data.WeeklyGoals.Done, data.WeeklyGoals.Total),
		goalPct, false, goalWidth)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, goalBar.View()))
	b.WriteString("\n")

	if s.editing {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			"Nueva meta: "+s.goalInput.View()))
		b.WriteString("\n")
	}
	if s.notice != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Render(s.notice)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Recent attempts.
	recent := prog.RecentScores(data.Attempts, 8)
	if len(recent) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("Aún no hay sesiones corregidas. ¡Parte con una práctica!")))
		b.WriteString("\n")
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Últimas sesiones")))
		b.WriteString("\n")
		start := len(data.Attempts) - len(recent)
		for _, a := range data.Attempts[start:] {
			label := fmt.Sprintf("%s  %s  %d%%",
				shortDate(a.Date), catalog.SubjectName(a.SubjectID), a.ScorePct)
			if a.TimeUsedMin > 0 {
				label += fmt.Sprintf("  (%d min)", a.TimeUsedMin)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Render(label)))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	// Per-topic accuracy from the event log.
	if len(s.accuracies) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Precisión por tema")))
		b.WriteString("\n")
		for _, acc := range s.accuracies {
			pct := 0
			if acc.Total > 0 {
				pct = acc.Correct * 100 / acc.Total
			}
			line := fmt.Sprintf("%s  %d/%d (%d%%)",
				catalog.TopicTitle(acc.TopicID), acc.Correct, acc.Total, pct)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// shortDate trims an RFC 3339 stamp to its date part.
func shortDate(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		if len(iso) >= 10 {
			return iso[:10]
		}
		return iso
	}
	return t.Format("02-01")
}
