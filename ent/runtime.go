// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/prepsage/examlens/ent/analysisrunevent"
	"github.com/prepsage/examlens/ent/llmrequestevent"
	"github.com/prepsage/examlens/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysisruneventMixin := schema.AnalysisRunEvent{}.Mixin()
	analysisruneventMixinFields0 := analysisruneventMixin[0].Fields()
	_ = analysisruneventMixinFields0
	analysisruneventFields := schema.AnalysisRunEvent{}.Fields()
	_ = analysisruneventFields
	// analysisruneventDescTimestamp is the schema descriptor for timestamp field.
	analysisruneventDescTimestamp := analysisruneventMixinFields0[1].Descriptor()
	// analysisrunevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	analysisrunevent.DefaultTimestamp = analysisruneventDescTimestamp.Default.(func() time.Time)
	// analysisruneventDescSource is the schema descriptor for source field.
	analysisruneventDescSource := analysisruneventFields[1].Descriptor()
	// analysisrunevent.DefaultSource holds the default value on creation for the source field.
	analysisrunevent.DefaultSource = analysisruneventDescSource.Default.(string)
	// analysisruneventDescCorrect is the schema descriptor for correct field.
	analysisruneventDescCorrect := analysisruneventFields[3].Descriptor()
	// analysisrunevent.DefaultCorrect holds the default value on creation for the correct field.
	analysisrunevent.DefaultCorrect = analysisruneventDescCorrect.Default.(int)
	// analysisruneventDescWrong is the schema descriptor for wrong field.
	analysisruneventDescWrong := analysisruneventFields[4].Descriptor()
	// analysisrunevent.DefaultWrong holds the default value on creation for the wrong field.
	analysisrunevent.DefaultWrong = analysisruneventDescWrong.Default.(int)
	// analysisruneventDescUnattempted is the schema descriptor for unattempted field.
	analysisruneventDescUnattempted := analysisruneventFields[5].Descriptor()
	// analysisrunevent.DefaultUnattempted holds the default value on creation for the unattempted field.
	analysisrunevent.DefaultUnattempted = analysisruneventDescUnattempted.Default.(int)
	// analysisruneventDescUnknown is the schema descriptor for unknown field.
	analysisruneventDescUnknown := analysisruneventFields[6].Descriptor()
	// analysisrunevent.DefaultUnknown holds the default value on creation for the unknown field.
	analysisrunevent.DefaultUnknown = analysisruneventDescUnknown.Default.(int)
	// analysisruneventDescDurationMs is the schema descriptor for duration_ms field.
	analysisruneventDescDurationMs := analysisruneventFields[7].Descriptor()
	// analysisrunevent.DefaultDurationMs holds the default value on creation for the duration_ms field.
	analysisrunevent.DefaultDurationMs = analysisruneventDescDurationMs.Default.(int64)
	// analysisruneventDescErrorMessage is the schema descriptor for error_message field.
	analysisruneventDescErrorMessage := analysisruneventFields[9].Descriptor()
	// analysisrunevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	analysisrunevent.DefaultErrorMessage = analysisruneventDescErrorMessage.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
}
