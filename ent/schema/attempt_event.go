package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one graded practice or exam session.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Unique().
			Comment("UUID of the attempt, shared with its answer events"),
		field.String("mode").
			NotEmpty().
			Comment("drill or exam"),
		field.String("subject_id").
			NotEmpty().
			Comment("Subject the session covered"),
		field.Int("score_pct").
			Comment("Rounded percentage 0-100"),
		field.Int("time_used_min").
			Default(0).
			Comment("Minutes consumed against the time limit, 0 when untimed"),
		field.Int("question_count").
			Default(0).
			Comment("Number of questions in the session"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id"),
		index.Fields("mode"),
	}
}
