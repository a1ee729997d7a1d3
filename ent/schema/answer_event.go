package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single graded answer, either inside a practice
// session or from an active-recall check.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			Optional().
			Comment("UUID of the owning attempt, empty for active recall"),
		field.String("question_id").
			NotEmpty().
			Comment("Catalog question id"),
		field.String("topic_id").
			Optional().
			Comment("Owning topic, empty when the question is unmapped"),
		field.Int("chosen_index").
			Comment("Selected option index, -1 when left unanswered"),
		field.Bool("correct").
			Comment("Whether the chosen option was the answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("topic_id"),
		index.Fields("correct"),
	}
}
