package practice

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/camposb/preu/internal/mastery"
	prac "github.com/camposb/preu/internal/practice"
	"github.com/camposb/preu/internal/review"
	"github.com/camposb/preu/internal/state"
	"github.com/camposb/preu/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testServices(t *testing.T) (*state.Manager, *prac.Grader) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	manager := state.NewManager(s.SnapshotRepo(), s.NextSequence)
	if err := manager.Load(context.Background()); err != nil {
		t.Fatalf("load state: %v", err)
	}
	tracker := mastery.NewTracker(manager)
	sched := review.NewScheduler(manager)
	grader := prac.NewGrader(manager, tracker, sched, s.EventRepo())
	return manager, grader
}

func TestPracticeScreen_Title(t *testing.T) {
	manager, grader := testServices(t)
	s := New(manager, grader, Preset{})
	if s.Title() != "Práctica" {
		t.Errorf("Title = %q, want %q", s.Title(), "Práctica")
	}
}

func TestPracticeScreen_SetupFlow(t *testing.T) {
	manager, grader := testServices(t)
	s := New(manager, grader, Preset{})

	if s.phase != phasePickSubject {
		t.Fatalf("phase = %v, want phasePickSubject", s.phase)
	}
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty subject pick view")
	}

	scr, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = scr.(*PracticeScreen)
	if s.phase != phasePickMode {
		t.Fatalf("phase = %v after subject pick, want phasePickMode", s.phase)
	}
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty mode pick view")
	}
}

func TestPracticeScreen_TopicPresetStartsDrill(t *testing.T) {
	manager, grader := testServices(t)
	s := New(manager, grader, Preset{TopicID: "funciones"})

	if s.phase != phaseQuestion {
		t.Fatalf("phase = %v, want phaseQuestion", s.phase)
	}
	if s.sess == nil || len(s.sess.Questions) != 2 {
		t.Fatalf("expected 2 questions for funciones drill, got %+v", s.sess)
	}
	if s.sess.Mode != "drill" || s.sess.TimeLimit != 0 {
		t.Errorf("expected untimed drill, got mode=%q limit=%v", s.sess.Mode, s.sess.TimeLimit)
	}

	route := manager.Data().LastRoute
	if route == nil || route.Page != "practice" {
		t.Errorf("expected last route practice, got %+v", route)
	}
}

func TestPracticeScreen_AnswerAndGrade(t *testing.T) {
	manager, grader := testServices(t)
	s := New(manager, grader, Preset{TopicID: "funciones"})

	// Answer the first question and advance.
	scr, _ := s.Update(keyPress('2'))
	s = scr.(*PracticeScreen)
	if s.sess.Answers[0] != 1 {
		t.Fatalf("Answers[0] = %d, want 1", s.sess.Answers[0])
	}
	scr, _ = s.Update(keyPress('n'))
	s = scr.(*PracticeScreen)
	if s.sess.Current != 1 {
		t.Fatalf("Current = %d, want 1", s.sess.Current)
	}

	scr, _ = s.Update(keyPress('3'))
	s = scr.(*PracticeScreen)
	if s.sess.Answers[1] != 2 {
		t.Fatalf("Answers[1] = %d, want 2", s.sess.Answers[1])
	}

	// Grade.
	scr, cmd := s.Update(keyPress('f'))
	s = scr.(*PracticeScreen)
	if cmd == nil {
		t.Fatal("expected grading command")
	}
	msg := cmd()
	graded, ok := msg.(gradedMsg)
	if !ok {
		t.Fatalf("expected gradedMsg, got %T", msg)
	}
	if graded.Err != nil {
		t.Fatalf("grading failed: %v", graded.Err)
	}

	scr, _ = s.Update(graded)
	s = scr.(*PracticeScreen)
	if s.phase != phaseResults {
		t.Fatalf("phase = %v after grading, want phaseResults", s.phase)
	}
	if s.result.Correct != 2 || s.result.Total != 2 {
		t.Errorf("result = %d/%d, want 2/2", s.result.Correct, s.result.Total)
	}
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty results view")
	}
}

func TestPracticeScreen_NavigationRestoresAnswer(t *testing.T) {
	manager, grader := testServices(t)
	s := New(manager, grader, Preset{TopicID: "funciones"})

	scr, _ := s.Update(keyPress('1'))
	s = scr.(*PracticeScreen)
	scr, _ = s.Update(keyPress('n'))
	s = scr.(*PracticeScreen)
	scr, _ = s.Update(keyPress('p'))
	s = scr.(*PracticeScreen)

	if s.mc.Chosen != 0 {
		t.Errorf("expected restored answer 0, got %d", s.mc.Chosen)
	}
}

func TestPracticeScreen_TimeUpBlocksAnswers(t *testing.T) {
	manager, grader := testServices(t)
	s := New(manager, grader, Preset{TopicID: "funciones"})
	s.startSession(prac.ModeExam, "paes_m1", []string{"q2", "q5"}, 1)

	scr, cmd := s.Update(tickMsg(s.sess.StartedAt.Add(2 * time.Minute)))
	s = scr.(*PracticeScreen)
	if !s.timeUp {
		t.Fatal("expected timeUp after the limit passed")
	}
	if cmd != nil {
		t.Error("expected the clock to stop after expiry")
	}

	// Answer keys are ignored once time is up.
	scr, _ = s.Update(keyPress('1'))
	s = scr.(*PracticeScreen)
	if s.sess.Answers[0] != prac.Unanswered {
		t.Errorf("expected answer to stay unanswered, got %d", s.sess.Answers[0])
	}

	// Grading still works.
	_, cmd = s.Update(keyPress('f'))
	if cmd == nil {
		t.Error("expected grading command after time up")
	}
}

func TestPracticeScreen_RetryRestartsSession(t *testing.T) {
	manager, grader := testServices(t)
	s := New(manager, grader, Preset{TopicID: "funciones"})

	scr, _ := s.Update(keyPress('2'))
	s = scr.(*PracticeScreen)
	_, cmd := s.Update(keyPress('f'))
	graded := cmd().(gradedMsg)
	scr, _ = s.Update(graded)
	s = scr.(*PracticeScreen)

	firstID := s.sess.ID
	scr, _ = s.Update(keyPress('r'))
	s = scr.(*PracticeScreen)

	if s.phase != phaseQuestion {
		t.Fatalf("phase = %v after retry, want phaseQuestion", s.phase)
	}
	if s.sess.ID == firstID {
		t.Error("expected a fresh session id after retry")
	}
	if s.sess.Answers[0] != prac.Unanswered {
		t.Error("expected cleared answers after retry")
	}
}
