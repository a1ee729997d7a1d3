package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/camposb/preu/ent"
	"github.com/camposb/preu/ent/answerevent"
	"github.com/camposb/preu/ent/attemptevent"
)

// eventRepo implements EventRepo using the ent client and the shared
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetMode(data.Mode).
		SetSubjectID(data.SubjectID).
		SetScorePct(data.ScorePct).
		SetTimeUsedMin(data.TimeUsedMin).
		SetQuestionCount(data.QuestionCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetQuestionID(data.QuestionID).
		SetChosenIndex(data.ChosenIndex).
		SetCorrect(data.Correct)

	if data.AttemptID != "" {
		builder = builder.SetAttemptID(data.AttemptID)
	}
	if data.TopicID != "" {
		builder = builder.SetTopicID(data.TopicID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAttempts(ctx context.Context, limit int) ([]AttemptRow, error) {
	q := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent attempts: %w", err)
	}

	rows := make([]AttemptRow, 0, len(events))
	for _, e := range events {
		rows = append(rows, AttemptRow{
			AttemptID:   e.AttemptID,
			Mode:        e.Mode,
			SubjectID:   e.SubjectID,
			ScorePct:    e.ScorePct,
			TimeUsedMin: e.TimeUsedMin,
			Timestamp:   e.Timestamp,
		})
	}
	return rows, nil
}

func (r *eventRepo) TopicAccuracies(ctx context.Context) ([]TopicAccuracy, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.TopicIDNEQ("")).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query topic accuracies: %w", err)
	}

	byTopic := make(map[string]*TopicAccuracy)
	for _, e := range events {
		acc, ok := byTopic[e.TopicID]
		if !ok {
			acc = &TopicAccuracy{TopicID: e.TopicID}
			byTopic[e.TopicID] = acc
		}
		acc.Total++
		if e.Correct {
			acc.Correct++
		}
	}

	out := make([]TopicAccuracy, 0, len(byTopic))
	for _, acc := range byTopic {
		out = append(out, *acc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TopicID < out[j].TopicID })
	return out, nil
}

func (r *eventRepo) Clear(ctx context.Context) error {
	if _, err := r.client.AnswerEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear answer events: %w", err)
	}
	if _, err := r.client.AttemptEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear attempt events: %w", err)
	}
	return nil
}
