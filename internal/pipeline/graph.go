// Package pipeline runs a fixed directed graph of stages over a shared
// state value. The topology is declared once at build time: plain edges
// advance unconditionally, conditional edges pick the next stage from the
// state, which is how a stage loops back onto itself.
package pipeline

import (
	"context"
	"fmt"
)

// StageID names one node in the graph.
type StageID string

// End is the terminal pseudo-stage. Routing to End stops the run.
const End StageID = "__end__"

// defaultMaxSteps bounds a single run. Loop-back edges make runaway cycles
// possible if a router misbehaves, so the runner refuses to spin forever.
const defaultMaxSteps = 1000

// Stage transforms the state. Stages are expected to absorb their own
// failures and record them in the state; a returned error aborts the run.
type Stage[S any] func(ctx context.Context, state S) (S, error)

// Router inspects the state after a stage completes and picks the next
// stage to execute.
type Router[S any] func(state S) StageID

// Graph is a pipeline under construction. Build it with AddNode / AddEdge /
// AddConditionalEdge / SetEntry, then Compile.
type Graph[S any] struct {
	nodes   map[StageID]Stage[S]
	edges   map[StageID]StageID
	routers map[StageID]Router[S]
	entry   StageID
}

// New returns an empty graph.
func New[S any]() *Graph[S] {
	return &Graph[S]{
		nodes:   make(map[StageID]Stage[S]),
		edges:   make(map[StageID]StageID),
		routers: make(map[StageID]Router[S]),
	}
}

// AddNode registers a stage under an id.
func (g *Graph[S]) AddNode(id StageID, stage Stage[S]) *Graph[S] {
	g.nodes[id] = stage
	return g
}

// AddEdge declares an unconditional transition from one stage to the next.
func (g *Graph[S]) AddEdge(from, to StageID) *Graph[S] {
	g.edges[from] = to
	return g
}

// AddConditionalEdge declares a state-dependent transition. The router runs
// after each execution of from and may return from itself, forming a loop.
func (g *Graph[S]) AddConditionalEdge(from StageID, route Router[S]) *Graph[S] {
	g.routers[from] = route
	return g
}

// SetEntry declares the stage the run starts at.
func (g *Graph[S]) SetEntry(id StageID) *Graph[S] {
	g.entry = id
	return g
}

// Compile validates the topology and returns a Runner. Every node must have
// exactly one outgoing edge or router, and every static edge must point at a
// registered node or End.
func (g *Graph[S]) Compile() (*Runner[S], error) {
	if g.entry == "" {
		return nil, fmt.Errorf("pipeline: no entry stage set")
	}
	if _, ok := g.nodes[g.entry]; !ok {
		return nil, fmt.Errorf("pipeline: entry stage %q not registered", g.entry)
	}
	for id := range g.nodes {
		_, hasEdge := g.edges[id]
		_, hasRouter := g.routers[id]
		if hasEdge && hasRouter {
			return nil, fmt.Errorf("pipeline: stage %q has both an edge and a router", id)
		}
		if !hasEdge && !hasRouter {
			return nil, fmt.Errorf("pipeline: stage %q has no outgoing edge", id)
		}
	}
	for from, to := range g.edges {
		if _, ok := g.nodes[from]; !ok {
			return nil, fmt.Errorf("pipeline: edge from unregistered stage %q", from)
		}
		if to != End {
			if _, ok := g.nodes[to]; !ok {
				return nil, fmt.Errorf("pipeline: edge %q -> unregistered stage %q", from, to)
			}
		}
	}
	for from := range g.routers {
		if _, ok := g.nodes[from]; !ok {
			return nil, fmt.Errorf("pipeline: router on unregistered stage %q", from)
		}
	}
	return &Runner[S]{graph: g, MaxSteps: defaultMaxSteps}, nil
}

// Runner executes a compiled graph. A Runner is immutable and safe to share;
// each Run owns its state value for the duration of the run.
type Runner[S any] struct {
	graph *Graph[S]

	// MaxSteps caps stage executions per run.
	MaxSteps int
}

// Run executes the graph from the entry stage until a transition reaches
// End, returning the final state. The state as of the failing stage is
// returned alongside any error.
func (r *Runner[S]) Run(ctx context.Context, state S) (S, error) {
	current := r.graph.entry

	for steps := 0; ; steps++ {
		if steps >= r.MaxSteps {
			return state, fmt.Errorf("pipeline: exceeded %d steps at stage %q", r.MaxSteps, current)
		}
		if err := ctx.Err(); err != nil {
			return state, err
		}

		stage := r.graph.nodes[current]
		next, err := stage(ctx, state)
		if err != nil {
			return state, fmt.Errorf("pipeline: stage %q: %w", current, err)
		}
		state = next

		if route, ok := r.graph.routers[current]; ok {
			current = route(state)
		} else {
			current = r.graph.edges[current]
		}
		if current == End {
			return state, nil
		}
		if _, ok := r.graph.nodes[current]; !ok {
			return state, fmt.Errorf("pipeline: routed to unregistered stage %q", current)
		}
	}
}
