package practice

import (
	"context"

	"github.com/camposb/preu/internal/catalog"
	"github.com/camposb/preu/internal/store"
)

// RecallScore values fed into the streak and level rules. A recalled
// answer counts like a perfect session, a miss like a low one.
const (
	recallHitScore  = 100
	recallMissScore = 40
)

// RecallOutcome is the graded result of one active-recall check.
type RecallOutcome struct {
	Question catalog.Question
	Chosen   int
	Correct  bool
	NewScore int // topic mastery after the bump
}

// CheckRecall grades a single quick question against a topic. It bumps
// the topic's mastery, reschedules its review from the outcome and runs
// the streak rules, but records no attempt. The state is persisted
// before returning.
func (g *Grader) CheckRecall(ctx context.Context, topic catalog.Topic, question catalog.Question, chosenIndex int) (*RecallOutcome, error) {
	ok := chosenIndex == question.AnswerIndex

	g.Mastery.BumpByQuestion(question.ID, ok)
	g.Reviews.ScheduleFromResult(topic.ID, ok)
	if ok {
		g.State.RecordActivity(recallHitScore)
	} else {
		g.State.RecordActivity(recallMissScore)
	}

	out := &RecallOutcome{
		Question: question,
		Chosen:   chosenIndex,
		Correct:  ok,
		NewScore: g.Mastery.Get(topic.ID),
	}

	if err := g.State.Persist(ctx); err != nil {
		return out, err
	}
	if g.Events != nil {
		err := g.Events.AppendAnswer(ctx, store.AnswerEventData{
			QuestionID:  question.ID,
			TopicID:     topic.ID,
			ChosenIndex: chosenIndex,
			Correct:     ok,
		})
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

// RecallQuestion picks the quick question for a topic, the first one its
// practice set references. False when the topic has none.
func RecallQuestion(topic catalog.Topic) (catalog.Question, bool) {
	for _, id := range topic.Practice.QuestionIDs {
		if q, err := catalog.GetQuestion(id); err == nil {
			return q, true
		}
	}
	return catalog.Question{}, false
}
