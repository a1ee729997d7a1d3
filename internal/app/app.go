package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/camposb/preu/internal/mastery"
	"github.com/camposb/preu/internal/practice"
	"github.com/camposb/preu/internal/review"
	"github.com/camposb/preu/internal/router"
	"github.com/camposb/preu/internal/screen"
	"github.com/camposb/preu/internal/screens/diagnostic"
	"github.com/camposb/preu/internal/screens/home"
	practicescreen "github.com/camposb/preu/internal/screens/practice"
	"github.com/camposb/preu/internal/screens/progress"
	"github.com/camposb/preu/internal/screens/study"
	"github.com/camposb/preu/internal/screens/today"
	"github.com/camposb/preu/internal/screens/vocational"
	"github.com/camposb/preu/internal/state"
	"github.com/camposb/preu/internal/store"
	"github.com/camposb/preu/internal/ui/layout"
	"github.com/camposb/preu/internal/ui/theme"
)

// Options carries the wired services into the TUI.
type Options struct {
	State   *state.Manager
	Tracker *mastery.Tracker
	Sched   *review.Scheduler
	Grader  *practice.Grader
	Events  store.EventRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts    Options
	router  *router.Router
	initCmd tea.Cmd
	width   int
	height  int
}

// newAppModel creates the model with the home screen at the bottom of
// the stack, resuming the last visited page on top when one is saved.
func newAppModel(opts Options) AppModel {
	theme.Apply(opts.State.Data().Theme)

	homeScreen := home.New(opts.State, opts.Tracker, opts.Sched, opts.Grader, opts.Events)
	r := router.New(homeScreen)

	var initCmd tea.Cmd
	if resumed := resumeScreen(opts); resumed != nil {
		initCmd = r.Push(resumed)
	}

	return AppModel{
		opts:    opts,
		router:  r,
		initCmd: initCmd,
	}
}

// resumeScreen maps the persisted last route to a screen, nil when the
// learner was at home or the page is unknown.
func resumeScreen(opts Options) screen.Screen {
	route := opts.State.Data().LastRoute
	if route == nil {
		return nil
	}
	switch route.Page {
	case "plan":
		return today.New(opts.State, opts.Tracker, opts.Sched, opts.Grader)
	case "study":
		return study.New(opts.State, opts.Tracker, opts.Sched, opts.Grader)
	case "practice":
		return practicescreen.New(opts.State, opts.Grader, practicescreen.Preset{
			SubjectID: route.SubjectID,
		})
	case "progress":
		return progress.New(opts.State, opts.Tracker, opts.Sched, opts.Events)
	case "diagnostic":
		return diagnostic.New(opts.State, opts.Tracker, opts.Sched)
	case "vocational":
		return vocational.New()
	}
	return nil
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			theme.Apply(m.opts.State.ToggleTheme())
			_ = m.opts.State.Persist(context.Background())
			return m, nil
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	data := m.opts.State.Data()
	header := layout.RenderHeader(title, data.Streak, data.Level, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Volver"},
				{Key: "Ctrl+T", Description: "Tema"},
				{Key: "Ctrl+C", Description: "Salir"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navegar"},
				{Key: "Enter", Description: "Elegir"},
				{Key: "Ctrl+T", Description: "Tema"},
				{Key: "Ctrl+C", Description: "Salir"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
