package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Theme:   "dark",
			Streak:  3,
			Mastery: map[string]int{"funciones": 56},
			Reviews: []ReviewData{
				{TopicID: "funciones", DueISO: now.Format(time.RFC3339), IntervalDays: 2},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Theme != "dark" {
		t.Errorf("data.theme = %q, want %q", snap.Data.Theme, "dark")
	}
	if snap.Data.Mastery["funciones"] != 56 {
		t.Errorf("data.mastery[funciones] = %d, want 56", snap.Data.Mastery["funciones"])
	}
	if len(snap.Data.Reviews) != 1 || snap.Data.Reviews[0].IntervalDays != 2 {
		t.Errorf("data.reviews = %+v, want one entry with interval 2", snap.Data.Reviews)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1, Streak: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Streak != 3 {
		t.Errorf("data.streak = %d, want 3", snap.Data.Streak)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	err := repo.Save(ctx, &Snapshot{
		Sequence:  1,
		Timestamp: time.Now().UTC(),
		Data:      SnapshotData{Version: 1},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest after clear: %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot after clear")
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestEventRepoAttempts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	attempts := []AttemptEventData{
		{AttemptID: "a1", Mode: "drill", SubjectID: "paes_m1", ScorePct: 67, QuestionCount: 3},
		{AttemptID: "a2", Mode: "exam", SubjectID: "paes_m1", ScorePct: 80, TimeUsedMin: 12, QuestionCount: 5},
		{AttemptID: "a3", Mode: "drill", SubjectID: "paes_ciencias", ScorePct: 40, QuestionCount: 3},
	}
	for _, a := range attempts {
		if err := repo.AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append attempt %s: %v", a.AttemptID, err)
		}
	}

	rows, err := repo.RecentAttempts(ctx, 2)
	if err != nil {
		t.Fatalf("recent attempts: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	// Newest first.
	if rows[0].AttemptID != "a3" || rows[1].AttemptID != "a2" {
		t.Errorf("order = [%s, %s], want [a3, a2]", rows[0].AttemptID, rows[1].AttemptID)
	}
	if rows[1].TimeUsedMin != 12 {
		t.Errorf("a2 timeUsedMin = %d, want 12", rows[1].TimeUsedMin)
	}
}

func TestEventRepoTopicAccuracies(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{AttemptID: "a1", QuestionID: "q2", TopicID: "funciones", ChosenIndex: 1, Correct: true},
		{AttemptID: "a1", QuestionID: "q5", TopicID: "funciones", ChosenIndex: 0, Correct: false},
		{AttemptID: "a1", QuestionID: "q1", TopicID: "mrua", ChosenIndex: 2, Correct: true},
		// Unmapped question, excluded from accuracy rollup.
		{AttemptID: "a1", QuestionID: "q99", ChosenIndex: -1, Correct: false},
		// Active recall check, no attempt.
		{QuestionID: "q4", TopicID: "mrua", ChosenIndex: 0, Correct: true},
	}
	for i, a := range answers {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append answer %d: %v", i, err)
		}
	}

	accs, err := repo.TopicAccuracies(ctx)
	if err != nil {
		t.Fatalf("topic accuracies: %v", err)
	}
	if len(accs) != 2 {
		t.Fatalf("got %d topics, want 2", len(accs))
	}
	// Sorted by topic id.
	if accs[0].TopicID != "funciones" || accs[1].TopicID != "mrua" {
		t.Fatalf("order = [%s, %s], want [funciones, mrua]", accs[0].TopicID, accs[1].TopicID)
	}
	if accs[0].Total != 2 || accs[0].Correct != 1 {
		t.Errorf("funciones = %d/%d, want 1/2", accs[0].Correct, accs[0].Total)
	}
	if accs[1].Total != 2 || accs[1].Correct != 2 {
		t.Errorf("mrua = %d/%d, want 2/2", accs[1].Correct, accs[1].Total)
	}
}

func TestEventRepoClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendAttempt(ctx, AttemptEventData{
		AttemptID: "a1", Mode: "drill", SubjectID: "paes_m1", ScorePct: 50,
	}); err != nil {
		t.Fatalf("append attempt: %v", err)
	}
	if err := repo.AppendAnswer(ctx, AnswerEventData{
		AttemptID: "a1", QuestionID: "q1", TopicID: "mrua", ChosenIndex: 0, Correct: true,
	}); err != nil {
		t.Fatalf("append answer: %v", err)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	rows, err := repo.RecentAttempts(ctx, 0)
	if err != nil {
		t.Fatalf("recent attempts after clear: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d attempts after clear, want 0", len(rows))
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	// Check that the snapshots table exists.
	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "snapshots" {
		t.Errorf("table name = %q, want 'snapshots'", name)
	}
}
