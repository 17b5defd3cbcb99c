// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/prepsage/examlens/ent/analysisrunevent"
)

// AnalysisRunEvent is the model entity for the AnalysisRunEvent schema.
type AnalysisRunEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID assigned to the run
	RunID string `json:"run_id,omitempty"`
	// What triggered the run: api or cli
	Source string `json:"source,omitempty"`
	// Number of questions in the exam
	QuestionCount int `json:"question_count,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct int `json:"correct,omitempty"`
	// Wrong holds the value of the "wrong" field.
	Wrong int `json:"wrong,omitempty"`
	// Unattempted holds the value of the "unattempted" field.
	Unattempted int `json:"unattempted,omitempty"`
	// Degraded evaluations where the LLM call failed
	Unknown int `json:"unknown,omitempty"`
	// Wall-clock time for the whole pipeline run
	DurationMs int64 `json:"duration_ms,omitempty"`
	// Whether the pipeline reached its terminal stage
	Success bool `json:"success,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalysisRunEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysisrunevent.FieldSuccess:
			values[i] = new(sql.NullBool)
		case analysisrunevent.FieldID, analysisrunevent.FieldSequence, analysisrunevent.FieldQuestionCount, analysisrunevent.FieldCorrect, analysisrunevent.FieldWrong, analysisrunevent.FieldUnattempted, analysisrunevent.FieldUnknown, analysisrunevent.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case analysisrunevent.FieldRunID, analysisrunevent.FieldSource, analysisrunevent.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case analysisrunevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalysisRunEvent fields.
func (_m *AnalysisRunEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysisrunevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case analysisrunevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case analysisrunevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case analysisrunevent.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case analysisrunevent.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case analysisrunevent.FieldQuestionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_count", values[i])
			} else if value.Valid {
				_m.QuestionCount = int(value.Int64)
			}
		case analysisrunevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = int(value.Int64)
			}
		case analysisrunevent.FieldWrong:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field wrong", values[i])
			} else if value.Valid {
				_m.Wrong = int(value.Int64)
			}
		case analysisrunevent.FieldUnattempted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field unattempted", values[i])
			} else if value.Valid {
				_m.Unattempted = int(value.Int64)
			}
		case analysisrunevent.FieldUnknown:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field unknown", values[i])
			} else if value.Valid {
				_m.Unknown = int(value.Int64)
			}
		case analysisrunevent.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		case analysisrunevent.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case analysisrunevent.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnalysisRunEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AnalysisRunEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AnalysisRunEvent.
// Note that you need to call AnalysisRunEvent.Unwrap() before calling this method if this AnalysisRunEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalysisRunEvent) Update() *AnalysisRunEventUpdateOne {
	return NewAnalysisRunEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalysisRunEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalysisRunEvent) Unwrap() *AnalysisRunEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalysisRunEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalysisRunEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AnalysisRunEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("question_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionCount))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("wrong=")
	builder.WriteString(fmt.Sprintf("%v", _m.Wrong))
	builder.WriteString(", ")
	builder.WriteString("unattempted=")
	builder.WriteString(fmt.Sprintf("%v", _m.Unattempted))
	builder.WriteString(", ")
	builder.WriteString("unknown=")
	builder.WriteString(fmt.Sprintf("%v", _m.Unknown))
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteByte(')')
	return builder.String()
}

// AnalysisRunEvents is a parsable slice of AnalysisRunEvent.
type AnalysisRunEvents []*AnalysisRunEvent
