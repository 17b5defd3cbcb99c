// Code generated by ent, DO NOT EDIT.

package analysisrunevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/prepsage/examlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldEQ(FieldTimestamp, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldEQ(FieldRunID, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldEQ(FieldSource, v))
}

// QuestionCount applies equality check predicate on the "question_count" field. It's identical to QuestionCountEQ.
func QuestionCount(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldEQ(FieldQuestionCount, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldEQ(FieldCorrect, v))
}

// Wrong applies equality check predicate on the "wrong" field. It's identical to WrongEQ.
func Wrong(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldEQ(FieldWrong, v))
}

// Unattempted applies equality check predicate on the "unattempted" field. It's identical to UnattemptedEQ.
func Unattempted(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldEQ(FieldUnattempted, v))
}

// Unknown applies equality check predicate on the "unknown" field. It's identical to UnknownEQ.
func Unknown(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldEQ(FieldUnknown, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldEQ(FieldDurationMs, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldEQ(FieldSuccess, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldLTE(FieldTimestamp, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldContainsFold(FieldRunID, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldContainsFold(FieldSource, v))
}

// QuestionCountEQ applies the EQ predicate on the "question_count" field.
func QuestionCountEQ(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldEQ(FieldQuestionCount, v))
}

// QuestionCountNEQ applies the NEQ predicate on the "question_count" field.
func QuestionCountNEQ(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldNEQ(FieldQuestionCount, v))
}

// QuestionCountIn applies the In predicate on the "question_count" field.
func QuestionCountIn(vs ...int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldIn(FieldQuestionCount, vs...))
}

// QuestionCountNotIn applies the NotIn predicate on the "question_count" field.
func QuestionCountNotIn(vs ...int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldNotIn(FieldQuestionCount, vs...))
}

// QuestionCountGT applies the GT predicate on the "question_count" field.
func QuestionCountGT(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldGT(FieldQuestionCount, v))
}

// QuestionCountGTE applies the GTE predicate on the "question_count" field.
func QuestionCountGTE(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldGTE(FieldQuestionCount, v))
}

// QuestionCountLT applies the LT predicate on the "question_count" field.
func QuestionCountLT(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldLT(FieldQuestionCount, v))
}

// QuestionCountLTE applies the LTE predicate on the "question_count" field.
func QuestionCountLTE(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldLTE(FieldQuestionCount, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldNEQ(FieldCorrect, v))
}

// CorrectIn applies the In predicate on the "correct" field.
func CorrectIn(vs ...int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldIn(FieldCorrect, vs...))
}

// CorrectNotIn applies the NotIn predicate on the "correct" field.
func CorrectNotIn(vs ...int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldNotIn(FieldCorrect, vs...))
}

// CorrectGT applies the GT predicate on the "correct" field.
func CorrectGT(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldGT(FieldCorrect, v))
}

// CorrectGTE applies the GTE predicate on the "correct" field.
func CorrectGTE(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldGTE(FieldCorrect, v))
}

// CorrectLT applies the LT predicate on the "correct" field.
func CorrectLT(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldLT(FieldCorrect, v))
}

// CorrectLTE applies the LTE predicate on the "correct" field.
func CorrectLTE(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldLTE(FieldCorrect, v))
}

// WrongEQ applies the EQ predicate on the "wrong" field.
func WrongEQ(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldEQ(FieldWrong, v))
}

// WrongNEQ applies the NEQ predicate on the "wrong" field.
func WrongNEQ(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldNEQ(FieldWrong, v))
}

// WrongIn applies the In predicate on the "wrong" field.
func WrongIn(vs ...int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldIn(FieldWrong, vs...))
}

// WrongNotIn applies the NotIn predicate on the "wrong" field.
func WrongNotIn(vs ...int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldNotIn(FieldWrong, vs...))
}

// WrongGT applies the GT predicate on the "wrong" field.
func WrongGT(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldGT(FieldWrong, v))
}

// WrongGTE applies the GTE predicate on the "wrong" field.
func WrongGTE(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldGTE(FieldWrong, v))
}

// WrongLT applies the LT predicate on the "wrong" field.
func WrongLT(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldLT(FieldWrong, v))
}

// WrongLTE applies the LTE predicate on the "wrong" field.
func WrongLTE(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldLTE(FieldWrong, v))
}

// UnattemptedEQ applies the EQ predicate on the "unattempted" field.
func UnattemptedEQ(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldEQ(FieldUnattempted, v))
}

// UnattemptedNEQ applies the NEQ predicate on the "unattempted" field.
func UnattemptedNEQ(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldNEQ(FieldUnattempted, v))
}

// UnattemptedIn applies the In predicate on the "unattempted" field.
func UnattemptedIn(vs ...int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldIn(FieldUnattempted, vs...))
}

// UnattemptedNotIn applies the NotIn predicate on the "unattempted" field.
func UnattemptedNotIn(vs ...int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldNotIn(FieldUnattempted, vs...))
}

// UnattemptedGT applies the GT predicate on the "unattempted" field.
func UnattemptedGT(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldGT(FieldUnattempted, v))
}

// UnattemptedGTE applies the GTE predicate on the "unattempted" field.
func UnattemptedGTE(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldGTE(FieldUnattempted, v))
}

// UnattemptedLT applies the LT predicate on the "unattempted" field.
func UnattemptedLT(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldLT(FieldUnattempted, v))
}

// UnattemptedLTE applies the LTE predicate on the "unattempted" field.
func UnattemptedLTE(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldLTE(FieldUnattempted, v))
}

// UnknownEQ applies the EQ predicate on the "unknown" field.
func UnknownEQ(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldEQ(FieldUnknown, v))
}

// UnknownNEQ applies the NEQ predicate on the "unknown" field.
func UnknownNEQ(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldNEQ(FieldUnknown, v))
}

// UnknownIn applies the In predicate on the "unknown" field.
func UnknownIn(vs ...int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldIn(FieldUnknown, vs...))
}

// UnknownNotIn applies the NotIn predicate on the "unknown" field.
func UnknownNotIn(vs ...int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldNotIn(FieldUnknown, vs...))
}

// UnknownGT applies the GT predicate on the "unknown" field.
func UnknownGT(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldGT(FieldUnknown, v))
}

// UnknownGTE applies the GTE predicate on the "unknown" field.
func UnknownGTE(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldGTE(FieldUnknown, v))
}

// UnknownLT applies the LT predicate on the "unknown" field.
func UnknownLT(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldLT(FieldUnknown, v))
}

// UnknownLTE applies the LTE predicate on the "unknown" field.
func UnknownLTE(v int) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldLTE(FieldUnknown, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldLTE(FieldDurationMs, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldNEQ(FieldSuccess, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnalysisRunEvent) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnalysisRunEvent) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnalysisRunEvent) predicate.AnalysisRunEvent {
	return predicate.AnalysisRunEvent(sql.NotPredicates(p))
}
