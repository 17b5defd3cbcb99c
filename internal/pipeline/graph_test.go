package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testState struct {
	visited []StageID
	n       int
}

func record(id StageID) Stage[testState] {
	return func(_ context.Context, s testState) (testState, error) {
		s.visited = append(s.visited, id)
		return s, nil
	}
}

func TestCompile_Validations(t *testing.T) {
	t.Run("no entry", func(t *testing.T) {
		_, err := New[testState]().AddNode("a", record("a")).AddEdge("a", End).Compile()
		assert.ErrorContains(t, err, "no entry stage")
	})

	t.Run("unregistered entry", func(t *testing.T) {
		_, err := New[testState]().
			AddNode("a", record("a")).AddEdge("a", End).
			SetEntry("missing").Compile()
		assert.ErrorContains(t, err, "not registered")
	})

	t.Run("node without outgoing edge", func(t *testing.T) {
		_, err := New[testState]().AddNode("a", record("a")).SetEntry("a").Compile()
		assert.ErrorContains(t, err, "no outgoing edge")
	})

	t.Run("node with edge and router", func(t *testing.T) {
		_, err := New[testState]().
			AddNode("a", record("a")).
			AddEdge("a", End).
			AddConditionalEdge("a", func(testState) StageID { return End }).
			SetEntry("a").Compile()
		assert.ErrorContains(t, err, "both an edge and a router")
	})

	t.Run("edge to unregistered stage", func(t *testing.T) {
		_, err := New[testState]().
			AddNode("a", record("a")).AddEdge("a", "ghost").
			SetEntry("a").Compile()
		assert.ErrorContains(t, err, "unregistered stage")
	})
}

func TestRun_LinearChain(t *testing.T) {
	runner, err := New[testState]().
		AddNode("a", record("a")).
		AddNode("b", record("b")).
		AddNode("c", record("c")).
		SetEntry("a").
		AddEdge("a", "b").
		AddEdge("b", "c").
		AddEdge("c", End).
		Compile()
	require.NoError(t, err)

	out, err := runner.Run(t.Context(), testState{})
	require.NoError(t, err)
	assert.Equal(t, []StageID{"a", "b", "c"}, out.visited)
}

func TestRun_SelfLoop(t *testing.T) {
	loop := func(_ context.Context, s testState) (testState, error) {
		s.visited = append(s.visited, "loop")
		s.n++
		return s, nil
	}

	runner, err := New[testState]().
		AddNode("loop", loop).
		AddNode("done", record("done")).
		SetEntry("loop").
		AddConditionalEdge("loop", func(s testState) StageID {
			if s.n < 3 {
				return "loop"
			}
			return "done"
		}).
		AddEdge("done", End).
		Compile()
	require.NoError(t, err)

	out, err := runner.Run(t.Context(), testState{})
	require.NoError(t, err)
	assert.Equal(t, 3, out.n)
	assert.Equal(t, []StageID{"loop", "loop", "loop", "done"}, out.visited)
}

func TestRun_StageErrorAbortsWithState(t *testing.T) {
	boom := errors.New("boom")
	runner, err := New[testState]().
		AddNode("a", record("a")).
		AddNode("b", func(_ context.Context, s testState) (testState, error) {
			return s, boom
		}).
		SetEntry("a").
		AddEdge("a", "b").
		AddEdge("b", End).
		Compile()
	require.NoError(t, err)

	out, err := runner.Run(t.Context(), testState{})
	require.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, `stage "b"`)
	// State as of the failing stage comes back with the error.
	assert.Equal(t, []StageID{"a"}, out.visited)
}

func TestRun_StepCap(t *testing.T) {
	runner, err := New[testState]().
		AddNode("spin", record("spin")).
		SetEntry("spin").
		AddConditionalEdge("spin", func(testState) StageID { return "spin" }).
		Compile()
	require.NoError(t, err)
	runner.MaxSteps = 10

	_, err = runner.Run(t.Context(), testState{})
	assert.ErrorContains(t, err, "exceeded 10 steps")
}

func TestRun_ContextCancelled(t *testing.T) {
	runner, err := New[testState]().
		AddNode("a", record("a")).
		SetEntry("a").
		AddEdge("a", End).
		Compile()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err = runner.Run(ctx, testState{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_RouterToUnregisteredStage(t *testing.T) {
	runner, err := New[testState]().
		AddNode("a", record("a")).
		SetEntry("a").
		AddConditionalEdge("a", func(testState) StageID { return "ghost" }).
		Compile()
	require.NoError(t, err)

	_, err = runner.Run(t.Context(), testState{})
	assert.ErrorContains(t, err, `unregistered stage "ghost"`)
}
