package practice

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/camposb/preu/internal/catalog"
	prac "github.com/camposb/preu/internal/practice"
	"github.com/camposb/preu/internal/router"
	"github.com/camposb/preu/internal/screen"
	"github.com/camposb/preu/internal/state"
	"github.com/camposb/preu/internal/ui/components"
	"github.com/camposb/preu/internal/ui/layout"
)

const (
	drillQuestionCount = 5
	examQuestionCount  = 8
	examTimeLimitMin   = 10
)

type phase int

const (
	phasePickSubject phase = iota
	phasePickMode
	phaseQuestion
	phaseResults
)

// Preset pre-selects the session content, skipping the setup steps.
// TopicID wins over SubjectID; both empty means interactive setup.
type Preset struct {
	SubjectID string
	TopicID   string
}

// tickMsg is sent every second while a timed session runs.
type tickMsg time.Time

// gradedMsg carries the grading outcome back into the update loop.
type gradedMsg struct {
	Result *prac.Result
	Err    error
}

// PracticeScreen drives a drill or timed mock-exam session.
type PracticeScreen struct {
	st     *state.Manager
	grader *prac.Grader

	phase     phase
	subjects  []catalog.Subject
	selected  int
	subjectID string
	modeMenu  components.Menu

	sess    *prac.Session
	mc      components.MultiChoice
	now     time.Time
	timeUp  bool
	grading bool

	result *prac.Result
	errMsg string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a practice screen. With an empty preset the learner picks
// subject and mode first.
func New(st *state.Manager, grader *prac.Grader, preset Preset) *PracticeScreen {
	s := &PracticeScreen{
		st:       st,
		grader:   grader,
		subjects: catalog.Subjects(),
		now:      time.Now(),
	}

	if preset.TopicID != "" {
		if topic, err := catalog.GetTopic(preset.TopicID); err == nil {
			s.startSession(prac.ModeDrill, topic.Subject, topic.Practice.QuestionIDs, 0)
			return s
		}
	}
	if preset.SubjectID != "" {
		s.subjectID = preset.SubjectID
		s.enterModePick()
		return s
	}

	s.phase = phasePickSubject
	return s
}

func (s *PracticeScreen) Init() tea.Cmd {
	if s.sess != nil && s.sess.TimeLimit > 0 {
		return tickCmd()
	}
	return nil
}

func (s *PracticeScreen) Title() string {
	return "Práctica"
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseQuestion:
		if s.timeUp {
			return []layout.KeyHint{
				{Key: "f", Description: "Terminar y corregir"},
				{Key: "Esc", Description: "Volver"},
			}
		}
		return []layout.KeyHint{
			{Key: "1-4", Description: "Responder"},
			{Key: "←→", Description: "Pregunta"},
			{Key: "f", Description: "Corregir"},
			{Key: "Esc", Description: "Volver"},
		}
	case phaseResults:
		return []layout.KeyHint{
			{Key: "r", Description: "Reintentar"},
			{Key: "Esc", Description: "Volver"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navegar"},
			{Key: "Enter", Description: "Elegir"},
			{Key: "Esc", Description: "Volver"},
		}
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return s.handleTick(msg)
	case gradedMsg:
		return s.handleGraded(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *PracticeScreen) handleTick(msg tickMsg) (screen.Screen, tea.Cmd) {
	if s.sess == nil || s.phase != phaseQuestion || s.sess.TimeLimit == 0 {
		return s, nil
	}
	s.now = time.Time(msg)
	if prac.Expired(s.sess, s.now) {
		// Time is up: stop the clock and wait for the learner to
		// grade, never grade on their behalf.
		s.timeUp = true
		return s, nil
	}
	return s, tickCmd()
}

func (s *PracticeScreen) handleGraded(msg gradedMsg) (screen.Screen, tea.Cmd) {
	s.grading = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.result = msg.Result
	s.phase = phaseResults
	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch s.phase {
	case phasePickSubject:
		switch key {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.subjects)-1 {
				s.selected++
			}
		case "enter":
			if s.selected < len(s.subjects) {
				s.subjectID = s.subjects[s.selected].ID
				s.enterModePick()
			}
		}
		return s, nil

	case phasePickMode:
		var cmd tea.Cmd
		s.modeMenu, cmd = s.modeMenu.Update(msg)
		return s, cmd

	case phaseQuestion:
		return s.handleQuestionKey(msg)

	case phaseResults:
		if key == "r" && s.result != nil {
			s.sess = s.sess.Restart(time.Now())
			s.result = nil
			s.timeUp = false
			s.now = time.Now()
			s.phase = phaseQuestion
			s.syncChoice()
			if s.sess.TimeLimit > 0 {
				return s, tickCmd()
			}
			return s, nil
		}
		return s, nil
	}

	return s, nil
}

func (s *PracticeScreen) handleQuestionKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.grading {
		return s, nil
	}

	switch msg.String() {
	case "f":
		return s, s.finish()
	case "right", "l", "n":
		if s.sess.Next() {
			s.syncChoice()
		}
		return s, nil
	case "left", "h", "p":
		if s.sess.Prev() {
			s.syncChoice()
		}
		return s, nil
	case "enter":
		if s.timeUp {
			return s, s.finish()
		}
	}

	if s.timeUp {
		return s, nil
	}

	var cmd tea.Cmd
	s.mc, cmd = s.mc.Update(msg)
	if s.mc.Chosen >= 0 {
		s.sess.Select(s.mc.Chosen)
	}
	return s, cmd
}

// finish grades the session asynchronously.
func (s *PracticeScreen) finish() tea.Cmd {
	if s.sess == nil || s.grading {
		return nil
	}
	s.grading = true
	sess := s.sess
	grader := s.grader
	return func() tea.Msg {
		res, err := grader.Finish(context.Background(), sess)
		return gradedMsg{Result: res, Err: err}
	}
}

func (s *PracticeScreen) enterModePick() {
	s.phase = phasePickMode
	s.modeMenu = components.NewMenu([]components.MenuItem{
		{Label: "Sesión corta", Hint: "5 preguntas, sin tiempo", Action: func() tea.Cmd {
			ids := questionIDsFor(s.subjectID, drillQuestionCount)
			s.startSession(prac.ModeDrill, s.subjectID, ids, 0)
			return s.Init()
		}},
		{Label: "Ensayo con tiempo", Hint: "hasta 8 preguntas, 10 minutos", Action: func() tea.Cmd {
			ids := questionIDsFor(s.subjectID, examQuestionCount)
			s.startSession(prac.ModeExam, s.subjectID, ids, examTimeLimitMin)
			return s.Init()
		}},
	})
}

func (s *PracticeScreen) startSession(mode, subjectID string, questionIDs []string, timeLimitMin int) {
	s.sess = prac.NewSession(mode, subjectID, questionIDs, timeLimitMin, time.Now())
	s.now = time.Now()
	s.timeUp = false
	if len(s.sess.Questions) == 0 {
		s.errMsg = "no hay preguntas disponibles para esta materia"
		return
	}
	s.phase = phaseQuestion
	s.syncChoice()
	s.st.SetLastRoute("practice", subjectID, "")
	_ = s.st.Persist(context.Background())
}

// syncChoice rebuilds the selector for the current question, restoring
// a previously picked answer.
func (s *PracticeScreen) syncChoice() {
	q := s.sess.Question()
	s.mc = components.NewMultiChoice(q.Stem, q.Options)
	if prev := s.sess.Answers[s.sess.Current]; prev != prac.Unanswered {
		s.mc.SetChosen(prev)
	}
}

// questionIDsFor picks up to n question ids for a subject.
func questionIDsFor(subjectID string, n int) []string {
	qs := catalog.QuestionsBySubject(subjectID)
	ids := make([]string, 0, n)
	for _, q := range qs {
		if len(ids) == n {
			break
		}
		ids = append(ids, q.ID)
	}
	return ids
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
