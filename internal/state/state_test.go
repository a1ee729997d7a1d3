package state

import (
	"context"
	"testing"
	"time"

	"github.com/camposb/preu/internal/store"
)

// memRepo is an in-memory SnapshotRepo for tests.
type memRepo struct {
	snaps []*store.Snapshot
}

func (r *memRepo) Save(_ context.Context, snap *store.Snapshot) error {
	cp := *snap
	r.snaps = append(r.snaps, &cp)
	return nil
}

func (r *memRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(r.snaps) == 0 {
		return nil, nil
	}
	return r.snaps[len(r.snaps)-1], nil
}

func (r *memRepo) Prune(_ context.Context, keep int) error {
	if len(r.snaps) > keep {
		r.snaps = r.snaps[len(r.snaps)-keep:]
	}
	return nil
}

func (r *memRepo) Clear(_ context.Context) error {
	r.snaps = nil
	return nil
}

func newTestManager() (*Manager, *memRepo) {
	repo := &memRepo{}
	var seq int64
	next := func(context.Context) (int64, error) {
		seq++
		return seq, nil
	}
	return NewManager(repo, next), repo
}

func TestLoadEmptyYieldsDefaults(t *testing.T) {
	m, _ := newTestManager()
	if err := m.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	d := m.Data()
	if d.Theme != "dark" {
		t.Errorf("theme = %q, want dark", d.Theme)
	}
	if d.Streak != 0 || d.Level != 1 {
		t.Errorf("streak/level = %d/%d, want 0/1", d.Streak, d.Level)
	}
	if d.WeeklyGoals.Total != 0 || d.WeeklyGoals.Done != 0 {
		t.Errorf("goals = %+v, want zero", d.WeeklyGoals)
	}
	if d.Mastery == nil || len(d.Mastery) != 0 {
		t.Errorf("mastery = %v, want empty map", d.Mastery)
	}
}

func TestPersistAndReload(t *testing.T) {
	m, repo := newTestManager()
	ctx := context.Background()

	m.Data().Streak = 4
	m.Data().Mastery["funciones"] = 32
	m.AppendAttempt(store.AttemptData{
		ID: "a1", Date: "2026-08-30T10:00:00Z", Mode: "drill",
		SubjectID: "paes_m1", ScorePct: 67,
	})
	if err := m.Persist(ctx); err != nil {
		t.Fatalf("persist: %v", err)
	}

	m2 := NewManager(repo, func(context.Context) (int64, error) { return 99, nil })
	if err := m2.Load(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	d := m2.Data()
	if d.Streak != 4 {
		t.Errorf("streak = %d, want 4", d.Streak)
	}
	if d.Mastery["funciones"] != 32 {
		t.Errorf("mastery[funciones] = %d, want 32", d.Mastery["funciones"])
	}
	if len(d.Attempts) != 1 || d.Attempts[0].ID != "a1" {
		t.Errorf("attempts = %+v, want [a1]", d.Attempts)
	}
}

func TestLoadSanitizesOutOfRangeFields(t *testing.T) {
	m, repo := newTestManager()
	ctx := context.Background()

	repo.Save(ctx, &store.Snapshot{
		Sequence:  1,
		Timestamp: time.Now(),
		Data: store.SnapshotData{
			Theme:       "neon",
			Streak:      500,
			Level:       0,
			WeeklyGoals: store.GoalsData{Total: 100, Done: 90},
			Mastery:     map[string]int{"mrua": 250, "funciones": -3, "": 50},
			Attempts: []store.AttemptData{
				{ID: "", SubjectID: "paes_m1", Date: "x", ScorePct: 10},
				{ID: "a1", SubjectID: "paes_m1", Date: "2026-08-30T10:00:00Z", ScorePct: 140, TimeUsedMin: -2},
			},
		},
	})

	if err := m.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	d := m.Data()
	if d.Theme != "dark" {
		t.Errorf("theme = %q, want dark", d.Theme)
	}
	if d.Streak != 99 {
		t.Errorf("streak = %d, want 99", d.Streak)
	}
	if d.Level != 1 {
		t.Errorf("level = %d, want 1", d.Level)
	}
	if d.WeeklyGoals.Total != 40 || d.WeeklyGoals.Done != 40 {
		t.Errorf("goals = %+v, want 40/40", d.WeeklyGoals)
	}
	if d.Mastery["mrua"] != 100 || d.Mastery["funciones"] != 0 {
		t.Errorf("mastery = %v, want clamped to [0,100]", d.Mastery)
	}
	if _, ok := d.Mastery[""]; ok {
		t.Error("empty topic id survived sanitize")
	}
	if len(d.Attempts) != 1 {
		t.Fatalf("attempts = %d, want 1 (id-less entry dropped)", len(d.Attempts))
	}
	if d.Attempts[0].ScorePct != 100 || d.Attempts[0].TimeUsedMin != 0 {
		t.Errorf("attempt = %+v, want score 100, time 0", d.Attempts[0])
	}
}

func TestLoadDropsBrokenReviewsAndDedupes(t *testing.T) {
	m, repo := newTestManager()
	ctx := context.Background()

	repo.Save(ctx, &store.Snapshot{
		Sequence:  1,
		Timestamp: time.Now(),
		Data: store.SnapshotData{
			Reviews: []store.ReviewData{
				{TopicID: "mrua", DueISO: "2026-09-02T00:00:00Z", IntervalDays: 2},
				{TopicID: "", DueISO: "2026-09-02T00:00:00Z", IntervalDays: 1},
				{TopicID: "funciones", DueISO: "not-a-date", IntervalDays: 1},
				{TopicID: "mrua", DueISO: "2026-09-05T00:00:00Z", IntervalDays: 99},
			},
		},
	})

	if err := m.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	reviews := m.Data().Reviews
	if len(reviews) != 1 {
		t.Fatalf("reviews = %+v, want exactly one mrua entry", reviews)
	}
	r := reviews[0]
	if r.TopicID != "mrua" || r.DueISO != "2026-09-05T00:00:00Z" {
		t.Errorf("review = %+v, want the later mrua entry", r)
	}
	if r.IntervalDays != 14 {
		t.Errorf("intervalDays = %d, want clamped to 14", r.IntervalDays)
	}
}

func TestToggleTheme(t *testing.T) {
	m, _ := newTestManager()
	if got := m.ToggleTheme(); got != "light" {
		t.Errorf("first toggle = %q, want light", got)
	}
	if got := m.ToggleTheme(); got != "dark" {
		t.Errorf("second toggle = %q, want dark", got)
	}
}

func TestSetWeeklyGoalTotalClamps(t *testing.T) {
	m, _ := newTestManager()

	m.SetWeeklyGoalTotal(100)
	if m.Data().WeeklyGoals.Total != 40 {
		t.Errorf("total = %d, want 40", m.Data().WeeklyGoals.Total)
	}

	m.Data().WeeklyGoals.Done = 40
	m.SetWeeklyGoalTotal(5)
	if g := m.Data().WeeklyGoals; g.Total != 5 || g.Done != 5 {
		t.Errorf("goals = %+v, want 5/5", g)
	}

	m.SetWeeklyGoalTotal(-2)
	if g := m.Data().WeeklyGoals; g.Total != 0 || g.Done != 0 {
		t.Errorf("goals = %+v, want 0/0", g)
	}
}

func TestRecordActivity(t *testing.T) {
	m, _ := newTestManager()
	m.SetWeeklyGoalTotal(3)

	m.RecordActivity(80)
	d := m.Data()
	if d.Streak != 1 || d.Level != 2 || d.WeeklyGoals.Done != 1 {
		t.Errorf("after 80%%: streak=%d level=%d done=%d, want 1/2/1", d.Streak, d.Level, d.WeeklyGoals.Done)
	}

	m.RecordActivity(40)
	if d.Streak != 2 || d.Level != 2 || d.WeeklyGoals.Done != 2 {
		t.Errorf("after 40%%: streak=%d level=%d done=%d, want 2/2/2", d.Streak, d.Level, d.WeeklyGoals.Done)
	}
}

func TestRecordActivityCaps(t *testing.T) {
	m, _ := newTestManager()
	m.Data().Streak = 99
	m.Data().Level = 50
	m.Data().WeeklyGoals = store.GoalsData{Total: 2, Done: 2}

	m.RecordActivity(100)
	d := m.Data()
	if d.Streak != 99 || d.Level != 50 || d.WeeklyGoals.Done != 2 {
		t.Errorf("caps breached: streak=%d level=%d done=%d", d.Streak, d.Level, d.WeeklyGoals.Done)
	}
}

func TestRecordActivityNoGoalTarget(t *testing.T) {
	m, _ := newTestManager()
	m.RecordActivity(90)
	if m.Data().WeeklyGoals.Done != 0 {
		t.Errorf("done = %d, want 0 when no target is set", m.Data().WeeklyGoals.Done)
	}
}

func TestReset(t *testing.T) {
	m, repo := newTestManager()
	ctx := context.Background()

	m.Data().Streak = 7
	m.Data().Mastery["mrua"] = 64
	if err := m.Persist(ctx); err != nil {
		t.Fatalf("persist: %v", err)
	}

	if err := m.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if m.Data().Streak != 0 || len(m.Data().Mastery) != 0 {
		t.Errorf("data after reset = %+v, want defaults", m.Data())
	}

	// Only the fresh default snapshot remains.
	if len(repo.snaps) != 1 {
		t.Fatalf("snapshots after reset = %d, want 1", len(repo.snaps))
	}
	if repo.snaps[0].Data.Streak != 0 {
		t.Errorf("persisted snapshot = %+v, want defaults", repo.snaps[0].Data)
	}
}

func TestSetLastRoute(t *testing.T) {
	m, _ := newTestManager()

	m.SetLastRoute("study", "paes_m1", "funciones")
	r := m.Data().LastRoute
	if r == nil || r.Page != "study" || r.SubjectID != "paes_m1" || r.TopicID != "funciones" {
		t.Errorf("route = %+v, want study/paes_m1/funciones", r)
	}

	m.SetLastRoute("", "", "")
	if m.Data().LastRoute != nil {
		t.Error("route should be cleared by empty page")
	}
}
