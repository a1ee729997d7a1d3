package diagnostic

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/camposb/preu/internal/catalog"
	"github.com/camposb/preu/internal/mastery"
	"github.com/camposb/preu/internal/review"
	"github.com/camposb/preu/internal/screen"
	"github.com/camposb/preu/internal/state"
	"github.com/camposb/preu/internal/ui/components"
	"github.com/camposb/preu/internal/ui/layout"
	"github.com/camposb/preu/internal/ui/theme"
)

type step int

const (
	stepTrack step = iota
	stepLevel
	stepDone
)

// DiagnosticScreen seeds an initial mastery baseline from the chosen
// track and self-perceived level, and schedules the first review.
type DiagnosticScreen struct {
	st      *state.Manager
	tracker *mastery.Tracker
	sched   *review.Scheduler

	step      step
	track     string
	trackMenu components.Menu
	levelMenu components.Menu
	seeded    int
}

var _ screen.Screen = (*DiagnosticScreen)(nil)
var _ screen.KeyHintProvider = (*DiagnosticScreen)(nil)

// New creates the diagnostic screen at the track step.
func New(st *state.Manager, tracker *mastery.Tracker, sched *review.Scheduler) *DiagnosticScreen {
	s := &DiagnosticScreen{
		st:      st,
		tracker: tracker,
		sched:   sched,
	}

	pickTrack := func(track string) func() tea.Cmd {
		return func() tea.Cmd {
			s.track = track
			s.step = stepLevel
			return nil
		}
	}
	s.trackMenu = components.NewMenu([]components.MenuItem{
		{Label: "PAES", Hint: "admisión universitaria chilena", Action: pickTrack("PAES")},
		{Label: "IB", Hint: "bachillerato internacional", Action: pickTrack("IB")},
		{Label: "Ambos", Hint: "mezcla PAES + IB", Action: pickTrack("MIX")},
	})

	pickLevel := func(level string) func() tea.Cmd {
		return func() tea.Cmd {
			s.seed(level)
			return nil
		}
	}
	s.levelMenu = components.NewMenu([]components.MenuItem{
		{Label: "Recién parto", Hint: "base baja, sin miedo", Action: pickLevel("basico")},
		{Label: "Nivel medio", Hint: "manejo algunos temas", Action: pickLevel("medio")},
		{Label: "Voy avanzada/o", Hint: "quiero afinar detalles", Action: pickLevel("alto")},
	})

	return s
}

// seed runs the diagnostic bootstrap and schedules the first review.
func (s *DiagnosticScreen) seed(level string) {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	s.tracker.SeedDiagnostic(s.track, level, rnd)

	topics := catalog.Topics()
	if len(topics) > 0 {
		s.sched.Schedule(topics[0].ID, 1)
	}

	s.seeded = len(s.st.Data().Mastery)

	s.st.SetLastRoute("home", "", "")
	_ = s.st.Persist(context.Background())
	s.step = stepDone
}

func (s *DiagnosticScreen) Init() tea.Cmd {
	return nil
}

func (s *DiagnosticScreen) Title() string {
	return "Diagnóstico"
}

func (s *DiagnosticScreen) KeyHints() []layout.KeyHint {
	if s.step == stepDone {
		return []layout.KeyHint{{Key: "Esc", Description: "Volver al inicio"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Elegir"},
		{Key: "Esc", Description: "Volver"},
	}
}

func (s *DiagnosticScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch s.step {
	case stepTrack:
		s.trackMenu, cmd = s.trackMenu.Update(msg)
	case stepLevel:
		s.levelMenu, cmd = s.levelMenu.Update(msg)
	}
	return s, cmd
}

func (s *DiagnosticScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	switch s.step {
	case stepTrack:
		b.WriteString(theme.Title.Width(width).Render("¿Para qué te preparas?"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.trackMenu.View()))

	case stepLevel:
		b.WriteString(theme.Title.Width(width).Render("¿Cómo sientes tu nivel hoy?"))
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Width(width).Render("Sin presión: esto solo arma tu punto de partida."))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.levelMenu.View()))

	case stepDone:
		b.WriteString(theme.Title.Width(width).Render("¡Diagnóstico listo!"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).
				Render(fmt.Sprintf("Se estimó tu dominio inicial en %d temas.", s.seeded))))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render("Tu primer repaso quedó agendado para mañana.")))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Secondary).
				Render("Revisa el Plan de hoy para partir.")))
	}

	return b.String()
}
