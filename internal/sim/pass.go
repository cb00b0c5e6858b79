package sim

import (
	"context"
	"fmt"

	"github.com/specialistvlad/gatesim/internal/graph"
	"github.com/specialistvlad/gatesim/internal/primitive"
	"golang.org/x/sync/errgroup"
)

// state tracks which instances have run. Each instance runs at most once
// per simulation.
type state struct {
	g       *graph.Graph
	pending []*graph.Node
	done    map[graph.NodeID]bool
}

// ready returns the instances that have not run and whose inputs are all
// set.
func (s *state) ready() []*graph.Node {
	var out []*graph.Node
	for _, n := range s.pending {
		if s.done[n.ID] {
			continue
		}
		set := true
		for _, e := range s.g.InEdges(n.ID) {
			if e.Value == graph.Unset {
				set = false
				break
			}
		}
		if set {
			out = append(out, n)
		}
	}
	return out
}

// evaluate computes every ready instance, then writes all results. No
// edge is written until every instance of the pass has been computed.
func (s *state) evaluate(ctx context.Context, ready []*graph.Node, workers int) error {
	results := make([]map[primitive.Role]bool, len(ready))
	if workers < 1 {
		workers = 1
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, n := range ready {
		i, n := i, n
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := s.eval(n)
			if err != nil {
				return &InconsistencyError{Err: fmt.Errorf("instance %q: %w", n.Name, err)}
			}
			results[i] = out
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for i, n := range ready {
		for _, e := range s.g.OutEdges(n.ID) {
			level, ok := results[i][e.Role]
			if !ok {
				return &InconsistencyError{Err: fmt.Errorf("instance %q produces no %s output", n.Name, e.Role)}
			}
			e.Value = graph.ValueOf(level)
		}
		s.done[n.ID] = true
	}
	return nil
}

// eval computes the outputs of one instance from its inbound edges.
func (s *state) eval(n *graph.Node) (map[primitive.Role]bool, error) {
	in := s.g.InEdges(n.ID)
	if n.Kind.IsVoter() {
		return s.vote(n, in)
	}
	levels := make([]bool, len(in))
	for i, e := range in {
		if e.Port != i {
			return nil, fmt.Errorf("input port %d is not connected", i)
		}
		levels[i], _ = e.Value.Bool()
	}
	return primitive.Eval(n.Kind, n.Word, levels)
}

// vote evaluates a voter separately for every role it forwards, over the
// inbound edges carrying that role.
func (s *state) vote(n *graph.Node, in []*graph.Edge) (map[primitive.Role]bool, error) {
	byRole := make(map[primitive.Role][]bool)
	for _, e := range in {
		level, _ := e.Value.Bool()
		byRole[e.Role] = append(byRole[e.Role], level)
	}
	out := make(map[primitive.Role]bool)
	for _, e := range s.g.OutEdges(n.ID) {
		levels, ok := byRole[e.Role]
		if !ok {
			return nil, fmt.Errorf("no %s input to vote on", e.Role)
		}
		out[e.Role] = primitive.Vote(n.Kind, levels)
	}
	return out, nil
}
