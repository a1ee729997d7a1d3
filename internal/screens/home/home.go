package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/camposb/preu/internal/catalog"
	"github.com/camposb/preu/internal/mastery"
	"github.com/camposb/preu/internal/plan"
	"github.com/camposb/preu/internal/practice"
	"github.com/camposb/preu/internal/review"
	"github.com/camposb/preu/internal/router"
	"github.com/camposb/preu/internal/screen"
	"github.com/camposb/preu/internal/screens/diagnostic"
	practicescreen "github.com/camposb/preu/internal/screens/practice"
	"github.com/camposb/preu/internal/screens/progress"
	"github.com/camposb/preu/internal/screens/study"
	"github.com/camposb/preu/internal/screens/today"
	"github.com/camposb/preu/internal/screens/vocational"
	"github.com/camposb/preu/internal/state"
	"github.com/camposb/preu/internal/store"
	"github.com/camposb/preu/internal/ui/components"
	"github.com/camposb/preu/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	st      *state.Manager
	tracker *mastery.Tracker
	sched   *review.Scheduler
	menu    components.Menu
	message string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen with all navigation targets wired.
func New(st *state.Manager, tracker *mastery.Tracker, sched *review.Scheduler, grader *practice.Grader, events store.EventRepo) *HomeScreen {
	goTo := func(page string, build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			st.SetLastRoute(page, "", "")
			_ = st.Persist(context.Background())
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: build()}
			}
		}
	}

	items := []components.MenuItem{
		{Label: "Plan de hoy", Hint: "repasos y refuerzos sugeridos", Action: goTo("plan", func() screen.Screen {
			return today.New(st, tracker, sched, grader)
		})},
		{Label: "Estudiar", Hint: "temas, miniclases y recuerdo activo", Action: goTo("study", func() screen.Screen {
			return study.New(st, tracker, sched, grader)
		})},
		{Label: "Practicar", Hint: "sesión corta o ensayo con tiempo", Action: goTo("practice", func() screen.Screen {
			return practicescreen.New(st, grader, practicescreen.Preset{})
		})},
		{Label: "Progreso", Hint: "puntaje estimado y racha", Action: goTo("progress", func() screen.Screen {
			return progress.New(st, tracker, sched, events)
		})},
		{Label: "Diagnóstico", Hint: "parte aquí si es tu primera vez", Action: goTo("diagnostic", func() screen.Screen {
			return diagnostic.New(st, tracker, sched)
		})},
		{Label: "Vocacional", Hint: "simula puntajes ponderados", Action: goTo("vocational", func() screen.Screen {
			return vocational.New()
		})},
		{Label: "Salir", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		st:      st,
		tracker: tracker,
		sched:   sched,
		menu:    components.NewMenu(items),
		message: catalog.RandomMessage(),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	data := h.st.Data()
	now := time.Now()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Preu · tu compañero de estudio"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(h.message))
	b.WriteString("\n\n")

	due := len(h.sched.Due(now))
	stats := fmt.Sprintf("Racha %d  ·  Nivel %d  ·  Metas %d/%d  ·  Repasos pendientes %d",
		data.Streak, data.Level, data.WeeklyGoals.Done, data.WeeklyGoals.Total, due)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(stats)))
	b.WriteString("\n\n")

	items := plan.Build(h.sched, h.tracker, now)
	if len(items) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Hoy te toca")))
		b.WriteString("\n")
		for i, it := range items {
			if i >= 3 {
				break
			}
			line := fmt.Sprintf("%s  %s", it.Tag, it.Title)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Inicio"
}
