// Package state owns the persistent learner record. It loads the latest
// snapshot at startup, merges it over defaults, and writes a new snapshot
// after every mutating operation. Domain services mutate the record
// through the Manager so persistence stays in one place.
package state

import (
	"context"
	"fmt"
	"time"

	"github.com/camposb/preu/internal/store"
)

// Version is the current snapshot layout version.
const Version = 1

// keepSnapshots is how many snapshots Prune retains after each save.
const keepSnapshots = 20

const (
	maxStreak       = 99
	maxLevel        = 50
	maxGoalTotal    = 40
	levelUpScore    = 70
	maxMastery      = 100
	maxIntervalDays = 14
)

// SequenceFunc yields the next global sequence number for a snapshot.
type SequenceFunc func(ctx context.Context) (int64, error)

// Manager holds the in-memory learner record and persists it through a
// SnapshotRepo. It is not safe for concurrent use; the TUI event loop
// and CLI commands are single-threaded.
type Manager struct {
	data *store.SnapshotData
	repo store.SnapshotRepo
	next SequenceFunc
	now  func() time.Time
}

// NewManager creates a Manager with a default record. Call Load to merge
// in any previously saved snapshot.
func NewManager(repo store.SnapshotRepo, next SequenceFunc) *Manager {
	return &Manager{
		data: defaultData(),
		repo: repo,
		next: next,
		now:  time.Now,
	}
}

func defaultData() *store.SnapshotData {
	return &store.SnapshotData{
		Version:     Version,
		Theme:       "dark",
		Streak:      0,
		Level:       1,
		WeeklyGoals: store.GoalsData{Total: 0, Done: 0},
		Attempts:    []store.AttemptData{},
		Mastery:     map[string]int{},
		Reviews:     []store.ReviewData{},
	}
}

// Data returns the live learner record. Callers that mutate it must
// follow up with Persist.
func (m *Manager) Data() *store.SnapshotData {
	return m.data
}

// Load replaces the in-memory record with the latest snapshot, sanitized
// field by field. Malformed or missing data falls back to defaults; Load
// never surfaces corruption to the caller as an error.
func (m *Manager) Load(ctx context.Context) error {
	snap, err := m.repo.Latest(ctx)
	if err != nil {
		return fmt.Errorf("load latest snapshot: %w", err)
	}
	if snap == nil {
		m.data = defaultData()
		return nil
	}
	m.data = sanitize(snap.Data)
	return nil
}

// Persist writes the current record as a new snapshot and prunes old ones.
func (m *Manager) Persist(ctx context.Context) error {
	seq, err := m.next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	err = m.repo.Save(ctx, &store.Snapshot{
		Sequence:  seq,
		Timestamp: m.now().UTC(),
		Data:      *m.data,
	})
	if err != nil {
		return fmt.Errorf("persist state: %w", err)
	}
	if err := m.repo.Prune(ctx, keepSnapshots); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// Reset wipes all saved snapshots and restores the default record.
func (m *Manager) Reset(ctx context.Context) error {
	if err := m.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear snapshots: %w", err)
	}
	m.data = defaultData()
	return m.Persist(ctx)
}

// SetTheme switches the color theme. Anything other than "light" is
// treated as "dark".
func (m *Manager) SetTheme(theme string) {
	if theme != "light" {
		theme = "dark"
	}
	m.data.Theme = theme
}

// ToggleTheme flips between light and dark and returns the new theme.
func (m *Manager) ToggleTheme() string {
	if m.data.Theme == "light" {
		m.data.Theme = "dark"
	} else {
		m.data.Theme = "light"
	}
	return m.data.Theme
}

// SetLastRoute remembers where the learner was so the next launch can
// resume there. Empty ids are omitted from the record.
func (m *Manager) SetLastRoute(page, subjectID, topicID string) {
	if page == "" {
		m.data.LastRoute = nil
		return
	}
	m.data.LastRoute = &store.RouteData{
		Page:      page,
		SubjectID: subjectID,
		TopicID:   topicID,
	}
}

// SetWeeklyGoalTotal updates the weekly session target. The total is
// clamped to [0,40] and done is pulled down so it never exceeds it.
func (m *Manager) SetWeeklyGoalTotal(total int) {
	total = clamp(total, 0, maxGoalTotal)
	m.data.WeeklyGoals.Total = total
	if m.data.WeeklyGoals.Done > total {
		m.data.WeeklyGoals.Done = total
	}
}

// RecordActivity applies the streak, level and weekly-goal rules for one
// graded session. Streak always advances; level only on a score of 70 or
// better; the goal counter only when a target is set.
func (m *Manager) RecordActivity(scorePct int) {
	m.data.Streak = min(maxStreak, m.data.Streak+1)
	if scorePct >= levelUpScore {
		m.data.Level = min(maxLevel, m.data.Level+1)
	}
	if m.data.WeeklyGoals.Total > 0 {
		m.data.WeeklyGoals.Done = min(m.data.WeeklyGoals.Total, m.data.WeeklyGoals.Done+1)
	}
}

// AppendAttempt adds one graded session to the attempt log.
func (m *Manager) AppendAttempt(a store.AttemptData) {
	m.data.Attempts = append(m.data.Attempts, a)
}

// sanitize rebuilds a record from possibly stale or hand-edited snapshot
// data, clamping every field to its documented range and dropping entries
// that cannot be repaired.
func sanitize(data store.SnapshotData) *store.SnapshotData {
	out := defaultData()
	out.Version = Version

	if data.Theme == "light" {
		out.Theme = "light"
	}
	if data.LastRoute != nil && data.LastRoute.Page != "" {
		route := *data.LastRoute
		out.LastRoute = &route
	}
	out.Streak = clamp(data.Streak, 0, maxStreak)
	out.Level = clamp(data.Level, 1, maxLevel)
	out.WeeklyGoals.Total = clamp(data.WeeklyGoals.Total, 0, maxGoalTotal)
	out.WeeklyGoals.Done = clamp(data.WeeklyGoals.Done, 0, out.WeeklyGoals.Total)

	for _, a := range data.Attempts {
		if a.ID == "" || a.SubjectID == "" {
			continue
		}
		a.ScorePct = clamp(a.ScorePct, 0, 100)
		if a.TimeUsedMin < 0 {
			a.TimeUsedMin = 0
		}
		out.Attempts = append(out.Attempts, a)
	}

	for topicID, score := range data.Mastery {
		if topicID == "" {
			continue
		}
		out.Mastery[topicID] = clamp(score, 0, maxMastery)
	}

	// One review entry per topic; a later entry wins over an earlier one.
	seen := make(map[string]int)
	for _, r := range data.Reviews {
		if r.TopicID == "" {
			continue
		}
		if _, err := time.Parse(time.RFC3339, r.DueISO); err != nil {
			continue
		}
		r.IntervalDays = clamp(r.IntervalDays, 1, maxIntervalDays)
		if i, ok := seen[r.TopicID]; ok {
			out.Reviews[i] = r
			continue
		}
		seen[r.TopicID] = len(out.Reviews)
		out.Reviews = append(out.Reviews, r)
	}

	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
