package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalysisRunEvent records one completed exam analysis pipeline run.
type AnalysisRunEvent struct {
	ent.Schema
}

func (AnalysisRunEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnalysisRunEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Unique().
			Comment("UUID assigned to the run"),
		field.String("source").
			Default("api").
			Comment("What triggered the run: api or cli"),
		field.Int("question_count").
			Comment("Number of questions in the exam"),
		field.Int("correct").
			Default(0),
		field.Int("wrong").
			Default(0),
		field.Int("unattempted").
			Default(0),
		field.Int("unknown").
			Default(0).
			Comment("Degraded evaluations where the LLM call failed"),
		field.Int64("duration_ms").
			Default(0).
			Comment("Wall-clock time for the whole pipeline run"),
		field.Bool("success").
			Comment("Whether the pipeline reached its terminal stage"),
		field.String("error_message").
			Default(""),
	}
}

func (AnalysisRunEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("source"),
	}
}
