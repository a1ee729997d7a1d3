// Package practice runs the question sessions: short drills, timed exam
// rehearsals and single-question active-recall checks. A session moves
// from InProgress to Graded exactly once; grading applies every side
// effect (mastery, review schedule, streak, attempt log) in one shot.
package practice

import (
	"time"

	"github.com/google/uuid"

	"github.com/camposb/preu/internal/catalog"
)

// Unanswered marks a question the learner has not picked an option for.
const Unanswered = -1

// Session modes.
const (
	ModeDrill = "drill"
	ModeExam  = "exam"
)

// Status is the session lifecycle state.
type Status int

const (
	StatusInProgress Status = iota
	StatusGraded
)

// Session is one in-progress run over a fixed question set.
type Session struct {
	ID        string
	Mode      string
	SubjectID string
	Questions []catalog.Question
	Answers   []int
	Current   int
	TimeLimit time.Duration // 0 means untimed
	StartedAt time.Time

	status Status
}

// NewSession starts a session over the given question ids. Unknown ids
// are skipped; answers start out unanswered.
func NewSession(mode, subjectID string, questionIDs []string, timeLimitMin int, now time.Time) *Session {
	questions := catalog.QuestionsByIDs(questionIDs)
	answers := make([]int, len(questions))
	for i := range answers {
		answers[i] = Unanswered
	}
	var limit time.Duration
	if timeLimitMin > 0 {
		limit = time.Duration(timeLimitMin) * time.Minute
	}
	return &Session{
		ID:        uuid.NewString(),
		Mode:      mode,
		SubjectID: subjectID,
		Questions: questions,
		Answers:   answers,
		TimeLimit: limit,
		StartedAt: now,
	}
}

// Status returns the lifecycle state.
func (s *Session) Status() Status {
	return s.status
}

// Question returns the question at the current index.
func (s *Session) Question() catalog.Question {
	return s.Questions[s.Current]
}

// Select records the chosen option for the current question. Graded
// sessions ignore the call.
func (s *Session) Select(optionIndex int) {
	if s.status != StatusInProgress {
		return
	}
	if optionIndex < 0 || optionIndex >= len(s.Question().Options) {
		return
	}
	s.Answers[s.Current] = optionIndex
}

// Next advances to the following question and reports whether it moved.
// It returns false on the last question; finishing is explicit.
func (s *Session) Next() bool {
	if s.Current >= len(s.Questions)-1 {
		return false
	}
	s.Current++
	return true
}

// Prev steps back one question and reports whether it moved.
func (s *Session) Prev() bool {
	if s.Current == 0 {
		return false
	}
	s.Current--
	return true
}

// AtLast reports whether the current question is the final one.
func (s *Session) AtLast() bool {
	return s.Current == len(s.Questions)-1
}

// AnsweredCount returns how many questions have a selected option.
func (s *Session) AnsweredCount() int {
	n := 0
	for _, a := range s.Answers {
		if a != Unanswered {
			n++
		}
	}
	return n
}

// Restart returns a fresh InProgress session over the same question set.
// The graded original keeps its attempt record.
func (s *Session) Restart(now time.Time) *Session {
	ids := make([]string, len(s.Questions))
	for i, q := range s.Questions {
		ids[i] = q.ID
	}
	limitMin := int(s.TimeLimit / time.Minute)
	return NewSession(s.Mode, s.SubjectID, ids, limitMin, now)
}
