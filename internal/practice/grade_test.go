package practice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/camposb/preu/internal/catalog"
	"github.com/camposb/preu/internal/mastery"
	"github.com/camposb/preu/internal/review"
	"github.com/camposb/preu/internal/state"
	"github.com/camposb/preu/internal/store"
)

func newTestGrader(t *testing.T) (*Grader, *state.Manager) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	st := state.NewManager(s.SnapshotRepo(), s.NextSequence)
	if err := st.Load(context.Background()); err != nil {
		t.Fatalf("load state: %v", err)
	}
	g := NewGrader(st, mastery.NewTracker(st), review.NewScheduler(st), s.EventRepo())
	g.now = func() time.Time { return testNow }
	return g, st
}

func TestFinish_ScoreAndSideEffects(t *testing.T) {
	g, st := newTestGrader(t)
	ctx := context.Background()

	// q2 and q5 belong to funciones (answers 1 and 2), q6 to ecuaciones
	// (answer 2).
	s := NewSession(ModeDrill, "paes_m1", []string{"q2", "q5", "q6"}, 0, testNow)
	s.Answers[0] = 1 // correct
	s.Answers[1] = 0 // wrong
	s.Answers[2] = 2 // correct

	res, err := g.Finish(ctx, s)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}

	if res.Correct != 2 || res.Total != 3 {
		t.Errorf("correct/total = %d/%d, want 2/3", res.Correct, res.Total)
	}
	if res.Attempt.ScorePct != 67 {
		t.Errorf("scorePct = %d, want 67", res.Attempt.ScorePct)
	}
	if res.Attempt.TimeUsedMin != 0 {
		t.Errorf("timeUsedMin = %d, want 0 for untimed", res.Attempt.TimeUsedMin)
	}
	if s.Status() != StatusGraded {
		t.Error("session should be graded")
	}

	// Mastery: funciones +8 then -4, ecuaciones +8.
	if got := st.Data().Mastery["funciones"]; got != 4 {
		t.Errorf("mastery[funciones] = %d, want 4", got)
	}
	if got := st.Data().Mastery["ecuaciones"]; got != 8 {
		t.Errorf("mastery[ecuaciones] = %d, want 8", got)
	}

	// Reviews: funciones graded twice, last result wrong resets to 1 day.
	// Ecuaciones correct from scratch lands on the 2-day floor.
	reviews := map[string]int{}
	for _, r := range st.Data().Reviews {
		reviews[r.TopicID] = r.IntervalDays
	}
	if reviews["funciones"] != 1 {
		t.Errorf("funciones interval = %d, want 1", reviews["funciones"])
	}
	if reviews["ecuaciones"] != 2 {
		t.Errorf("ecuaciones interval = %d, want 2", reviews["ecuaciones"])
	}

	// Streak advanced, level untouched (67 < 70), attempt logged.
	if st.Data().Streak != 1 {
		t.Errorf("streak = %d, want 1", st.Data().Streak)
	}
	if st.Data().Level != 1 {
		t.Errorf("level = %d, want 1", st.Data().Level)
	}
	if len(st.Data().Attempts) != 1 || st.Data().Attempts[0].ID != s.ID {
		t.Errorf("attempts = %+v, want one with the session id", st.Data().Attempts)
	}
}

func TestFinish_PersistsSnapshotAndEvents(t *testing.T) {
	g, _ := newTestGrader(t)
	ctx := context.Background()

	s := NewSession(ModeExam, "paes_m1", []string{"q2"}, 10, testNow)
	s.Select(1)
	g.now = func() time.Time { return testNow.Add(7 * time.Minute) }

	res, err := g.Finish(ctx, s)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if res.Attempt.TimeUsedMin != 7 {
		t.Errorf("timeUsedMin = %d, want 7", res.Attempt.TimeUsedMin)
	}

	rows, err := g.Events.RecentAttempts(ctx, 10)
	if err != nil {
		t.Fatalf("recent attempts: %v", err)
	}
	if len(rows) != 1 || rows[0].AttemptID != s.ID {
		t.Fatalf("event rows = %+v, want the graded attempt", rows)
	}
	if rows[0].ScorePct != 100 || rows[0].Mode != ModeExam {
		t.Errorf("row = %+v, want 100%% exam", rows[0])
	}

	accs, err := g.Events.TopicAccuracies(ctx)
	if err != nil {
		t.Fatalf("topic accuracies: %v", err)
	}
	if len(accs) != 1 || accs[0].TopicID != "funciones" || accs[0].Correct != 1 {
		t.Errorf("accuracies = %+v, want funciones 1/1", accs)
	}
}

func TestFinish_UnansweredCountsWrong(t *testing.T) {
	g, st := newTestGrader(t)

	s := NewSession(ModeDrill, "paes_m1", []string{"q2", "q5"}, 0, testNow)
	s.Answers[0] = 1 // correct, q5 left unanswered

	res, err := g.Finish(context.Background(), s)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if res.Attempt.ScorePct != 50 {
		t.Errorf("scorePct = %d, want 50", res.Attempt.ScorePct)
	}
	if got := st.Data().Mastery["funciones"]; got != 4 {
		t.Errorf("mastery[funciones] = %d, want 4 (+8 then -4)", got)
	}
}

func TestFinish_Twice(t *testing.T) {
	g, _ := newTestGrader(t)

	s := NewSession(ModeDrill, "paes_m1", []string{"q2"}, 0, testNow)
	if _, err := g.Finish(context.Background(), s); err != nil {
		t.Fatalf("first finish: %v", err)
	}
	_, err := g.Finish(context.Background(), s)
	if !errors.Is(err, ErrAlreadyGraded) {
		t.Errorf("second finish err = %v, want ErrAlreadyGraded", err)
	}
}

func TestFinish_EmptySession(t *testing.T) {
	g, _ := newTestGrader(t)
	s := NewSession(ModeDrill, "paes_m1", nil, 0, testNow)
	_, err := g.Finish(context.Background(), s)
	if !errors.Is(err, ErrNoQuestions) {
		t.Errorf("err = %v, want ErrNoQuestions", err)
	}
}

func TestCheckRecall_Correct(t *testing.T) {
	g, st := newTestGrader(t)
	topic, err := catalog.GetTopic("funciones")
	if err != nil {
		t.Fatalf("get topic: %v", err)
	}
	q, ok := RecallQuestion(topic)
	if !ok {
		t.Fatal("expected a recall question for funciones")
	}
	if q.ID != "q2" {
		t.Fatalf("recall question = %s, want q2", q.ID)
	}

	out, err := g.CheckRecall(context.Background(), topic, q, q.AnswerIndex)
	if err != nil {
		t.Fatalf("check recall: %v", err)
	}
	if !out.Correct {
		t.Error("expected a correct outcome")
	}
	if out.NewScore != 8 {
		t.Errorf("new score = %d, want 8", out.NewScore)
	}

	// Counts as a perfect session for streak and level, no attempt.
	if st.Data().Streak != 1 || st.Data().Level != 2 {
		t.Errorf("streak/level = %d/%d, want 1/2", st.Data().Streak, st.Data().Level)
	}
	if len(st.Data().Attempts) != 0 {
		t.Errorf("attempts = %+v, want none from recall", st.Data().Attempts)
	}

	// Review rescheduled off the topic, 2-day floor for a first correct.
	if len(st.Data().Reviews) != 1 || st.Data().Reviews[0].IntervalDays != 2 {
		t.Errorf("reviews = %+v, want funciones at 2 days", st.Data().Reviews)
	}
}

func TestCheckRecall_Miss(t *testing.T) {
	g, st := newTestGrader(t)
	topic, _ := catalog.GetTopic("funciones")
	q, _ := RecallQuestion(topic)

	out, err := g.CheckRecall(context.Background(), topic, q, q.AnswerIndex+1)
	if err != nil {
		t.Fatalf("check recall: %v", err)
	}
	if out.Correct {
		t.Error("expected a miss")
	}
	if out.NewScore != 0 {
		t.Errorf("new score = %d, want clamped 0", out.NewScore)
	}
	// Miss scores 40: streak still advances, level does not.
	if st.Data().Streak != 1 || st.Data().Level != 1 {
		t.Errorf("streak/level = %d/%d, want 1/1", st.Data().Streak, st.Data().Level)
	}
	if len(st.Data().Reviews) != 1 || st.Data().Reviews[0].IntervalDays != 1 {
		t.Errorf("reviews = %+v, want funciones reset to 1 day", st.Data().Reviews)
	}
}
