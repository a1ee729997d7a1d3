package practice

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func TestNewSession_InitializesUnanswered(t *testing.T) {
	s := NewSession(ModeDrill, "paes_m1", []string{"q2", "q5", "q6"}, 0, testNow)

	if s.ID == "" {
		t.Error("expected a session id")
	}
	if len(s.Questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(s.Questions))
	}
	if s.Current != 0 {
		t.Errorf("current = %d, want 0", s.Current)
	}
	for i, a := range s.Answers {
		if a != Unanswered {
			t.Errorf("answer %d = %d, want unanswered", i, a)
		}
	}
	if s.Status() != StatusInProgress {
		t.Errorf("status = %v, want in progress", s.Status())
	}
	if s.TimeLimit != 0 {
		t.Errorf("time limit = %v, want untimed", s.TimeLimit)
	}
}

func TestNewSession_SkipsUnknownQuestions(t *testing.T) {
	s := NewSession(ModeDrill, "paes_m1", []string{"q2", "nope", "q5"}, 0, testNow)
	if len(s.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(s.Questions))
	}
	if len(s.Answers) != 2 {
		t.Fatalf("answers len = %d, want 2", len(s.Answers))
	}
}

func TestSelectAndNavigate(t *testing.T) {
	s := NewSession(ModeExam, "paes_m1", []string{"q2", "q5"}, 10, testNow)

	s.Select(1)
	if s.Answers[0] != 1 {
		t.Errorf("answer 0 = %d, want 1", s.Answers[0])
	}

	// Out-of-range selections are ignored.
	s.Select(9)
	if s.Answers[0] != 1 {
		t.Errorf("answer 0 = %d after bad select, want 1", s.Answers[0])
	}
	s.Select(-1)
	if s.Answers[0] != 1 {
		t.Errorf("answer 0 = %d after negative select, want 1", s.Answers[0])
	}

	if !s.Next() {
		t.Fatal("expected Next to advance")
	}
	if s.AtLast() != true {
		t.Error("expected to be at the last question")
	}
	if s.Next() {
		t.Error("Next at the last question must not advance")
	}

	s.Select(2)
	if !s.Prev() {
		t.Fatal("expected Prev to step back")
	}
	if s.Prev() {
		t.Error("Prev at the first question must not move")
	}

	// Earlier answer kept.
	if s.Answers[1] != 2 {
		t.Errorf("answer 1 = %d, want 2", s.Answers[1])
	}
	if s.AnsweredCount() != 2 {
		t.Errorf("answered = %d, want 2", s.AnsweredCount())
	}
}

func TestRestart_FreshAnswers(t *testing.T) {
	s := NewSession(ModeDrill, "paes_m1", []string{"q2", "q5"}, 5, testNow)
	s.Select(1)
	s.status = StatusGraded

	later := testNow.Add(time.Hour)
	fresh := s.Restart(later)
	if fresh.ID == s.ID {
		t.Error("restart must mint a new session id")
	}
	if fresh.Status() != StatusInProgress {
		t.Error("restart must begin in progress")
	}
	if len(fresh.Questions) != 2 || fresh.Questions[0].ID != "q2" {
		t.Errorf("questions = %+v, want same set", fresh.Questions)
	}
	for i, a := range fresh.Answers {
		if a != Unanswered {
			t.Errorf("answer %d = %d, want unanswered", i, a)
		}
	}
	if fresh.TimeLimit != 5*time.Minute {
		t.Errorf("time limit = %v, want 5m", fresh.TimeLimit)
	}
	if !fresh.StartedAt.Equal(later) {
		t.Errorf("startedAt = %v, want %v", fresh.StartedAt, later)
	}
}

func TestCountdown(t *testing.T) {
	s := NewSession(ModeExam, "paes_m1", []string{"q2"}, 10, testNow)

	if got := Remaining(s, testNow.Add(4*time.Minute)); got != 6*time.Minute {
		t.Errorf("remaining = %v, want 6m", got)
	}
	if Expired(s, testNow.Add(9*time.Minute)) {
		t.Error("expired early")
	}
	if !Expired(s, testNow.Add(10*time.Minute)) {
		t.Error("not expired at the limit")
	}
	if got := Remaining(s, testNow.Add(11*time.Minute)); got != 0 {
		t.Errorf("remaining past limit = %v, want 0", got)
	}
}

func TestCountdown_Untimed(t *testing.T) {
	s := NewSession(ModeDrill, "paes_m1", []string{"q2"}, 0, testNow)
	if Expired(s, testNow.Add(24*time.Hour)) {
		t.Error("untimed session can never expire")
	}
	if got := Remaining(s, testNow.Add(time.Hour)); got != 0 {
		t.Errorf("remaining = %v, want 0 for untimed", got)
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{59 * time.Second, "00:59"},
		{10 * time.Minute, "10:00"},
		{9*time.Minute + 5*time.Second, "09:05"},
		{-time.Second, "00:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.d); got != tt.want {
			t.Errorf("FormatClock(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
