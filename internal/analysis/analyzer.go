// Package analysis implements the exam analysis stages and wires them into
// a fixed pipeline: plan, classify subjects, evaluate each question in a
// loop, infer mindset for wrong answers, aggregate by subject, explain
// unattempted questions, and synthesize the final report.
//
// Stages absorb their own failures. A model call that fails degrades the
// affected item or stage output and the run continues; the pipeline always
// reaches the report stage.
package analysis

import (
	"context"

	"go.uber.org/zap"

	"github.com/prepsage/examlens/internal/exam"
	"github.com/prepsage/examlens/internal/llm"
	"github.com/prepsage/examlens/internal/pipeline"
)

// Stage identifiers for the analysis graph.
const (
	StagePlan        pipeline.StageID = "plan"
	StageClassify    pipeline.StageID = "classify_subjects"
	StageEvaluate    pipeline.StageID = "evaluate"
	StageMindset     pipeline.StageID = "mindset_inference"
	StageSubjects    pipeline.StageID = "subject_analysis"
	StageUnattempted pipeline.StageID = "unattempted_analysis"
	StageReport      pipeline.StageID = "summary_report"
)

// Analyzer runs the full exam analysis pipeline against one LLM provider.
type Analyzer struct {
	provider llm.Provider
	log      *zap.Logger
	cfg      Config
}

// New creates an Analyzer. A nil logger disables stage logging.
func New(provider llm.Provider, log *zap.Logger, cfg Config) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{provider: provider, log: log, cfg: cfg}
}

// Pipeline compiles the analysis graph. The evaluate stage loops back onto
// itself until every question has a result, then control moves on to the
// mindset stage.
func (a *Analyzer) Pipeline() (*pipeline.Runner[exam.State], error) {
	g := pipeline.New[exam.State]().
		AddNode(StagePlan, a.plan).
		AddNode(StageClassify, a.classifySubjects).
		AddNode(StageEvaluate, a.evaluate).
		AddNode(StageMindset, a.inferMindset).
		AddNode(StageSubjects, a.analyzeSubjects).
		AddNode(StageUnattempted, a.analyzeUnattempted).
		AddNode(StageReport, a.summarize).
		SetEntry(StagePlan).
		AddEdge(StagePlan, StageClassify).
		AddEdge(StageClassify, StageEvaluate).
		AddConditionalEdge(StageEvaluate, nextAfterEvaluation).
		AddEdge(StageMindset, StageSubjects).
		AddEdge(StageSubjects, StageUnattempted).
		AddEdge(StageUnattempted, StageReport).
		AddEdge(StageReport, pipeline.End)

	return g.Compile()
}

// Analyze runs the pipeline to completion over a fresh state and returns the
// final state. The returned error covers only infrastructure failures
// (context cancellation, step cap); analysis degradations are recorded in the
// state itself.
func (a *Analyzer) Analyze(ctx context.Context, task string, questions []exam.Question, references []string) (exam.State, error) {
	runner, err := a.Pipeline()
	if err != nil {
		return exam.State{}, err
	}
	// One evaluate step per question plus the fixed stages.
	if steps := len(questions) + 16; steps > runner.MaxSteps {
		runner.MaxSteps = steps
	}
	return runner.Run(ctx, exam.NewState(task, questions, references))
}

func (a *Analyzer) userRequest(system, content string, schema *llm.Schema, maxTokens int) llm.Request {
	return llm.Request{
		System:      system,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: content}},
		Schema:      schema,
		MaxTokens:   maxTokens,
		Temperature: a.cfg.Temperature,
	}
}
