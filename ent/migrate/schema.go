// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisRunEventsColumns holds the columns for the "analysis_run_events" table.
	AnalysisRunEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "source", Type: field.TypeString, Default: "api"},
		{Name: "question_count", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeInt, Default: 0},
		{Name: "wrong", Type: field.TypeInt, Default: 0},
		{Name: "unattempted", Type: field.TypeInt, Default: 0},
		{Name: "unknown", Type: field.TypeInt, Default: 0},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// AnalysisRunEventsTable holds the schema information for the "analysis_run_events" table.
	AnalysisRunEventsTable = &schema.Table{
		Name:       "analysis_run_events",
		Columns:    AnalysisRunEventsColumns,
		PrimaryKey: []*schema.Column{AnalysisRunEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analysisrunevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnalysisRunEventsColumns[1]},
			},
			{
				Name:    "analysisrunevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnalysisRunEventsColumns[2]},
			},
			{
				Name:    "analysisrunevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{AnalysisRunEventsColumns[3]},
			},
			{
				Name:    "analysisrunevent_source",
				Unique:  false,
				Columns: []*schema.Column{AnalysisRunEventsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisRunEventsTable,
		LlmRequestEventsTable,
	}
)

func init() {
}
