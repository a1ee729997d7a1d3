package store

import (
	"context"
	"time"
)

// RouteData is the last route the learner visited.
type RouteData struct {
	Page      string `json:"page"`
	SubjectID string `json:"subjectId,omitempty"`
	TopicID   string `json:"topicId,omitempty"`
}

// GoalsData holds the weekly session goals.
type GoalsData struct {
	Total int `json:"total"`
	Done  int `json:"done"`
}

// AttemptData is one graded session in the attempt log.
type AttemptData struct {
	ID          string `json:"id"`
	Date        string `json:"date"` // RFC 3339
	Mode        string `json:"mode"` // drill or exam
	SubjectID   string `json:"subjectId"`
	ScorePct    int    `json:"scorePct"`
	TimeUsedMin int    `json:"timeUsedMin"`
}

// ReviewData is the spaced-repetition entry for one topic.
type ReviewData struct {
	TopicID      string `json:"topicId"`
	DueISO       string `json:"dueISO"` // RFC 3339
	IntervalDays int    `json:"intervalDays"`
}

// SnapshotData is the full persisted learner record. It is the single
// source of truth: every domain service reads and writes through it, and
// it is serialized back to the store after every mutating operation.
type SnapshotData struct {
	Version     int            `json:"version"`
	Theme       string         `json:"theme"`
	LastRoute   *RouteData     `json:"lastRoute,omitempty"`
	Streak      int            `json:"streak"`
	Level       int            `json:"level"`
	WeeklyGoals GoalsData      `json:"weeklyGoals"`
	Attempts    []AttemptData  `json:"attempts"`
	Mastery     map[string]int `json:"mastery"`
	Reviews     []ReviewData   `json:"reviews"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error

	// Clear deletes all snapshots. Used by full reset.
	Clear(ctx context.Context) error
}

// AttemptEventData captures one graded session for the event log.
type AttemptEventData struct {
	AttemptID     string
	Mode          string
	SubjectID     string
	ScorePct      int
	TimeUsedMin   int
	QuestionCount int
}

// AnswerEventData captures one graded answer for the event log.
type AnswerEventData struct {
	AttemptID   string // empty for active recall
	QuestionID  string
	TopicID     string // empty when the question is unmapped
	ChosenIndex int    // -1 when left unanswered
	Correct     bool
}

// AttemptRow is an attempt as read back from the event log.
type AttemptRow struct {
	AttemptID   string
	Mode        string
	SubjectID   string
	ScorePct    int
	TimeUsedMin int
	Timestamp   time.Time
}

// TopicAccuracy aggregates answer outcomes per topic.
type TopicAccuracy struct {
	TopicID string
	Total   int
	Correct int
}

// EventRepo provides append and query access to the domain event log.
// The log is append-only; snapshots remain the source of truth for state.
type EventRepo interface {
	// AppendAttempt records a graded session.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// AppendAnswer records a single graded answer.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// RecentAttempts returns the most recent attempts, newest first.
	RecentAttempts(ctx context.Context, limit int) ([]AttemptRow, error)

	// TopicAccuracies aggregates answer correctness per topic across
	// the whole log, sorted by topic id.
	TopicAccuracies(ctx context.Context) ([]TopicAccuracy, error)

	// Clear deletes all events. Used by full reset.
	Clear(ctx context.Context) error
}
