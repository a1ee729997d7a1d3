// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/camposb/preu/ent/answerevent"
	"github.com/camposb/preu/ent/attemptevent"
	"github.com/camposb/preu/ent/schema"
	"github.com/camposb/preu/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[1].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescAttemptID is the schema descriptor for attempt_id field.
	attempteventDescAttemptID := attempteventFields[0].Descriptor()
	// attemptevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	attemptevent.AttemptIDValidator = attempteventDescAttemptID.Validators[0].(func(string) error)
	// attempteventDescMode is the schema descriptor for mode field.
	attempteventDescMode := attempteventFields[1].Descriptor()
	// attemptevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	attemptevent.ModeValidator = attempteventDescMode.Validators[0].(func(string) error)
	// attempteventDescSubjectID is the schema descriptor for subject_id field.
	attempteventDescSubjectID := attempteventFields[2].Descriptor()
	// attemptevent.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	attemptevent.SubjectIDValidator = attempteventDescSubjectID.Validators[0].(func(string) error)
	// attempteventDescTimeUsedMin is the schema descriptor for time_used_min field.
	attempteventDescTimeUsedMin := attempteventFields[4].Descriptor()
	// attemptevent.DefaultTimeUsedMin holds the default value on creation for the time_used_min field.
	attemptevent.DefaultTimeUsedMin = attempteventDescTimeUsedMin.Default.(int)
	// attempteventDescQuestionCount is the schema descriptor for question_count field.
	attempteventDescQuestionCount := attempteventFields[5].Descriptor()
	// attemptevent.DefaultQuestionCount holds the default value on creation for the question_count field.
	attemptevent.DefaultQuestionCount = attempteventDescQuestionCount.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
