// Package review implements the spaced-repetition scheduler. Each topic
// carries at most one pending review with a due date and an interval in
// days. Correct results double the interval up to two weeks; a wrong
// result resets it to a single day.
package review

import (
	"sort"
	"time"

	"github.com/camposb/preu/internal/state"
	"github.com/camposb/preu/internal/store"
)

const (
	// MinInterval is the shortest review interval in days.
	MinInterval = 1

	// MaxInterval is the back-off ceiling in days.
	MaxInterval = 14

	growthFloor = 2
)

// Scheduler reads and mutates the review entries inside the learner record.
type Scheduler struct {
	st  *state.Manager
	now func() time.Time
}

// NewScheduler creates a Scheduler over the given state manager.
func NewScheduler(st *state.Manager) *Scheduler {
	return &Scheduler{st: st, now: time.Now}
}

// Schedule sets or replaces the review for a topic, due the given number
// of days from now. Days are clamped to [1,14]. An empty topic id is a
// silent no-op.
func (s *Scheduler) Schedule(topicID string, days int) {
	if topicID == "" {
		return
	}
	if days < MinInterval {
		days = MinInterval
	}
	if days > MaxInterval {
		days = MaxInterval
	}
	s.upsert(topicID, days)
}

// ScheduleFromResult applies the back-off policy after a graded answer.
// Correct doubles the previous interval (floor 2, ceiling 14); wrong
// resets to 1 day. An empty topic id is a silent no-op so unmapped
// questions leave the schedule untouched.
func (s *Scheduler) ScheduleFromResult(topicID string, correct bool) {
	if topicID == "" {
		return
	}
	next := MinInterval
	if correct {
		prev := s.IntervalFor(topicID)
		next = prev * 2
		if next < growthFloor {
			next = growthFloor
		}
		if next > MaxInterval {
			next = MaxInterval
		}
	}
	s.upsert(topicID, next)
}

// IntervalFor returns the current interval for a topic, 1 if none is
// scheduled.
func (s *Scheduler) IntervalFor(topicID string) int {
	for _, r := range s.st.Data().Reviews {
		if r.TopicID == topicID {
			return r.IntervalDays
		}
	}
	return MinInterval
}

// Due returns the reviews whose due date is at or before now, soonest
// first. Entries with equal due dates keep their stored order.
func (s *Scheduler) Due(now time.Time) []store.ReviewData {
	var due []store.ReviewData
	for _, r := range s.st.Data().Reviews {
		t, err := time.Parse(time.RFC3339, r.DueISO)
		if err != nil {
			continue
		}
		if !t.After(now) {
			due = append(due, r)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		ti, _ := time.Parse(time.RFC3339, due[i].DueISO)
		tj, _ := time.Parse(time.RFC3339, due[j].DueISO)
		return ti.Before(tj)
	})
	return due
}

// NextDue returns the earliest pending review regardless of due date, or
// false when nothing is scheduled.
func (s *Scheduler) NextDue() (store.ReviewData, bool) {
	var best store.ReviewData
	var bestTime time.Time
	found := false
	for _, r := range s.st.Data().Reviews {
		t, err := time.Parse(time.RFC3339, r.DueISO)
		if err != nil {
			continue
		}
		if !found || t.Before(bestTime) {
			best, bestTime, found = r, t, true
		}
	}
	return best, found
}

// upsert replaces the existing entry for a topic or appends a new one.
func (s *Scheduler) upsert(topicID string, days int) {
	due := s.now().AddDate(0, 0, days).UTC().Format(time.RFC3339)
	entry := store.ReviewData{TopicID: topicID, DueISO: due, IntervalDays: days}

	reviews := s.st.Data().Reviews
	for i, r := range reviews {
		if r.TopicID == topicID {
			reviews[i] = entry
			return
		}
	}
	s.st.Data().Reviews = append(reviews, entry)
}
