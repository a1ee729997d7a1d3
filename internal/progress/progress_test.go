package progress

import (
	"testing"
	"time"

	"github.com/camposb/preu/internal/mastery"
	"github.com/camposb/preu/internal/review"
	"github.com/camposb/preu/internal/state"
	"github.com/camposb/preu/internal/store"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func attemptsWithScores(scores ...int) []store.AttemptData {
	var out []store.AttemptData
	for i, s := range scores {
		out = append(out, store.AttemptData{
			ID: string(rune('a' + i)), SubjectID: "paes_m1", Mode: "drill", ScorePct: s,
		})
	}
	return out
}

func TestAverageScore(t *testing.T) {
	if got := AverageScore(nil); got != 0 {
		t.Errorf("empty = %d, want 0", got)
	}
	if got := AverageScore(attemptsWithScores(40, 60, 80)); got != 60 {
		t.Errorf("got %d, want 60", got)
	}
	// 67+50 = 117/2 = 58.5 rounds to 59.
	if got := AverageScore(attemptsWithScores(67, 50)); got != 59 {
		t.Errorf("got %d, want 59", got)
	}
}

func TestEstimateScore(t *testing.T) {
	st := state.NewManager(nil, nil)
	tracker := mastery.NewTracker(st)

	if _, ok := EstimateScore(tracker); ok {
		t.Error("expected no estimate without mastery data")
	}
	if got := EstimateScoreText(tracker); got != "—" {
		t.Errorf("text = %q, want sentinel", got)
	}

	st.Data().Mastery["funciones"] = 0
	if est, ok := EstimateScore(tracker); !ok || est != 350 {
		t.Errorf("zero mastery estimate = %d/%v, want 350", est, ok)
	}

	st.Data().Mastery["funciones"] = 100
	if est, _ := EstimateScore(tracker); est != 700 {
		t.Errorf("full mastery estimate = %d, want 700", est)
	}

	st.Data().Mastery["funciones"] = 40
	st.Data().Mastery["mrua"] = 60
	// mean 50 -> 350 + 175 = 525
	if est, _ := EstimateScore(tracker); est != 525 {
		t.Errorf("estimate = %d, want 525", est)
	}
	if got := EstimateScoreText(tracker); got != "525" {
		t.Errorf("text = %q, want 525", got)
	}
}

func TestScoreMessage(t *testing.T) {
	tests := []struct {
		score, avg int
		want       string
	}{
		{70, 70, "Vas bien. Se nota avance."},
		{80, 70, "Vas bien. Se nota avance."},
		{65, 70, "Normal. La consistencia te sube."},
		{60, 70, "Normal. La consistencia te sube."},
		{59, 70, "Tranquila/o: esto es parte del proceso."},
	}
	for _, tt := range tests {
		if got := ScoreMessage(tt.score, tt.avg); got != tt.want {
			t.Errorf("ScoreMessage(%d, %d) = %q, want %q", tt.score, tt.avg, got, tt.want)
		}
	}
}

func TestNextStepText(t *testing.T) {
	st := state.NewManager(nil, nil)
	tracker := mastery.NewTracker(st)
	sched := review.NewScheduler(st)

	// Fresh record: generic suggestion.
	if got := NextStepText(sched, tracker, testNow); got != "hacer un ensayo corto para medir avance" {
		t.Errorf("fresh = %q", got)
	}

	// Weak topic data but nothing due. The weakest is the first
	// zero-score topic in catalog order, not mrua.
	st.Data().Mastery["mrua"] = 15
	got := NextStepText(sched, tracker, testNow)
	want := `reforzar "Funciones (dominio, rango y gráfica)" con miniclase + práctica`
	if got != want {
		t.Errorf("weak = %q, want %q", got, want)
	}

	// A due review wins over weakness.
	st.Data().Reviews = append(st.Data().Reviews, store.ReviewData{
		TopicID:      "funciones",
		DueISO:       testNow.Add(-time.Hour).Format(time.RFC3339),
		IntervalDays: 1,
	})
	got = NextStepText(sched, tracker, testNow)
	if got != `repasar "Funciones (dominio, rango y gráfica)"` {
		t.Errorf("due = %q", got)
	}
}

func TestRecentScores(t *testing.T) {
	attempts := attemptsWithScores(10, 20, 30, 40)

	got := RecentScores(attempts, 2)
	if len(got) != 2 || got[0] != 30 || got[1] != 40 {
		t.Errorf("got %v, want [30 40]", got)
	}

	got = RecentScores(attempts, 10)
	if len(got) != 4 {
		t.Errorf("got %v, want all 4", got)
	}

	if got := RecentScores(nil, 3); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}
