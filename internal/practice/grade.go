package practice

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/camposb/preu/internal/catalog"
	"github.com/camposb/preu/internal/mastery"
	"github.com/camposb/preu/internal/review"
	"github.com/camposb/preu/internal/state"
	"github.com/camposb/preu/internal/store"
)

// ErrAlreadyGraded is returned when Finish is called on a graded session.
var ErrAlreadyGraded = errors.New("session already graded")

// ErrNoQuestions is returned when a session has nothing to grade.
var ErrNoQuestions = errors.New("session has no questions")

// QuestionResult is the graded outcome for a single question.
type QuestionResult struct {
	Question catalog.Question
	Chosen   int
	Correct  bool
}

// Result summarizes a graded session.
type Result struct {
	Attempt store.AttemptData
	Correct int
	Total   int
	Details []QuestionResult
}

// Grader applies the grading side effects to the learner record. Events
// is optional; a nil event repo skips the append-only log.
type Grader struct {
	State   *state.Manager
	Mastery *mastery.Tracker
	Reviews *review.Scheduler
	Events  store.EventRepo

	now func() time.Time
}

// NewGrader wires a Grader over the shared domain services.
func NewGrader(st *state.Manager, tracker *mastery.Tracker, sched *review.Scheduler, events store.EventRepo) *Grader {
	return &Grader{
		State:   st,
		Mastery: tracker,
		Reviews: sched,
		Events:  events,
		now:     time.Now,
	}
}

// Finish grades the session and applies every side effect exactly once:
// per-question mastery bumps and review rescheduling, the streak and
// level rules, one attempt record, and a persisted snapshot. Unanswered
// questions count as wrong.
func (g *Grader) Finish(ctx context.Context, s *Session) (*Result, error) {
	if s.Status() == StatusGraded {
		return nil, ErrAlreadyGraded
	}
	if len(s.Questions) == 0 {
		return nil, ErrNoQuestions
	}

	now := g.now()
	res := &Result{Total: len(s.Questions)}
	for i, q := range s.Questions {
		ok := s.Answers[i] == q.AnswerIndex
		if ok {
			res.Correct++
		}
		res.Details = append(res.Details, QuestionResult{Question: q, Chosen: s.Answers[i], Correct: ok})

		topicID, _ := g.Mastery.BumpByQuestion(q.ID, ok)
		g.Reviews.ScheduleFromResult(topicID, ok)
	}

	scorePct := int(math.Round(float64(res.Correct) / float64(res.Total) * 100))
	g.State.RecordActivity(scorePct)

	res.Attempt = store.AttemptData{
		ID:          s.ID,
		Date:        now.UTC().Format(time.RFC3339),
		Mode:        s.Mode,
		SubjectID:   s.SubjectID,
		ScorePct:    scorePct,
		TimeUsedMin: timeUsedMin(s, now),
	}
	g.State.AppendAttempt(res.Attempt)
	s.status = StatusGraded

	if err := g.State.Persist(ctx); err != nil {
		return res, err
	}
	if err := g.appendEvents(ctx, s, res); err != nil {
		return res, err
	}
	return res, nil
}

func (g *Grader) appendEvents(ctx context.Context, s *Session, res *Result) error {
	if g.Events == nil {
		return nil
	}
	err := g.Events.AppendAttempt(ctx, store.AttemptEventData{
		AttemptID:     s.ID,
		Mode:          s.Mode,
		SubjectID:     s.SubjectID,
		ScorePct:      res.Attempt.ScorePct,
		TimeUsedMin:   res.Attempt.TimeUsedMin,
		QuestionCount: res.Total,
	})
	if err != nil {
		return err
	}
	for _, d := range res.Details {
		topicID, _ := catalog.TopicForQuestion(d.Question.ID)
		err := g.Events.AppendAnswer(ctx, store.AnswerEventData{
			AttemptID:   s.ID,
			QuestionID:  d.Question.ID,
			TopicID:     topicID,
			ChosenIndex: d.Chosen,
			Correct:     d.Correct,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
