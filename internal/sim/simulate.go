package sim

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/specialistvlad/gatesim/internal/ctxlog"
	"github.com/specialistvlad/gatesim/internal/graph"
	"github.com/specialistvlad/gatesim/internal/primitive"
)

// Result is the outcome of a simulation run.
type Result struct {
	// Outputs maps every primary output to its resolved level.
	Outputs map[string]bool
	// Passes is the number of passes executed.
	Passes int
	// Evaluated is the number of instance evaluations performed.
	Evaluated int
}

// Simulate assigns a level to every edge of g and returns the primary
// outputs. Every primary input must be present in inputs and nothing else
// may be. Edge values left by an earlier run are cleared first.
func Simulate(ctx context.Context, g *graph.Graph, inputs map[string]bool, opts ...Option) (*Result, error) {
	o := options{workers: 1, passes: -1}
	for _, opt := range opts {
		opt(&o)
	}
	logger := ctxlog.FromContext(ctx).With("netlist", g.Name)

	if err := checkInputs(g, inputs); err != nil {
		return nil, err
	}

	passes := o.passes
	if passes < 0 {
		l, err := g.LongestPath()
		var cycleErr *graph.CycleError
		switch {
		case errors.As(err, &cycleErr):
			// Run one pass per instance; the loop members never become
			// ready and are reported below.
			l = countInstances(g)
			logger.Warn("Graph has a combinational loop.", "node", cycleErr.Node)
		case err != nil:
			return nil, err
		}
		passes = l
	}
	logger.Debug("Simulate: Starting.", "passes", passes, "workers", o.workers)

	g.ResetValues()
	seed(g, inputs)

	s := &state{g: g, done: make(map[graph.NodeID]bool)}
	for _, n := range g.Nodes() {
		if !n.Kind.IsNet() {
			s.pending = append(s.pending, n)
		}
	}

	res := &Result{}
	for pass := 1; pass <= passes; pass++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ready := s.ready()
		if err := s.evaluate(ctx, ready, o.workers); err != nil {
			return nil, err
		}
		res.Passes = pass
		res.Evaluated += len(ready)
		logger.Debug("Simulate: Pass complete.", "pass", pass, "evaluated", len(ready))
	}

	var unresolved []string
	for _, n := range s.pending {
		if !s.done[n.ID] {
			unresolved = append(unresolved, n.Name)
		}
	}
	if len(unresolved) > 0 {
		return nil, &InconsistencyError{Passes: passes, Unresolved: unresolved}
	}

	outputs, err := collectOutputs(g)
	if err != nil {
		return nil, err
	}
	res.Outputs = outputs
	logger.Debug("Simulate: Finished.", "passes", res.Passes, "evaluated", res.Evaluated)
	return res, nil
}

func checkInputs(g *graph.Graph, inputs map[string]bool) error {
	for _, n := range g.Nodes() {
		if n.Kind != primitive.KindInput {
			continue
		}
		if _, ok := inputs[n.Name]; !ok {
			return &MissingInputError{Net: n.Name}
		}
	}
	names := make([]string, 0, len(inputs))
	for name := range inputs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if n, ok := g.NodeByName(name); !ok || n.Kind != primitive.KindInput {
			return &UnknownInputError{Net: name}
		}
	}
	return nil
}

func countInstances(g *graph.Graph) int {
	count := 0
	for _, n := range g.Nodes() {
		if !n.Kind.IsNet() {
			count++
		}
	}
	return count
}

// seed writes source levels onto the edges leaving inputs and constants.
func seed(g *graph.Graph, inputs map[string]bool) {
	for _, n := range g.Nodes() {
		var level bool
		switch n.Kind {
		case primitive.KindInput:
			level = inputs[n.Name]
		case primitive.KindConstant:
			level = n.Const
		default:
			continue
		}
		for _, e := range g.OutEdges(n.ID) {
			e.Value = graph.ValueOf(level)
		}
	}
}

// collectOutputs reads the edge entering each primary output.
func collectOutputs(g *graph.Graph) (map[string]bool, error) {
	outputs := make(map[string]bool)
	for _, n := range g.Nodes() {
		if n.Kind != primitive.KindOutput {
			continue
		}
		in := g.InEdges(n.ID)
		if len(in) != 1 {
			return nil, &InconsistencyError{Err: fmt.Errorf("primary output %q has %d drivers", n.Name, len(in))}
		}
		level, ok := in[0].Value.Bool()
		if !ok {
			return nil, &InconsistencyError{Err: fmt.Errorf("primary output %q is unset", n.Name)}
		}
		outputs[n.Name] = level
	}
	return outputs, nil
}
