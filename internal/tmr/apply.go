package tmr

import (
	"context"
	"fmt"

	"github.com/specialistvlad/gatesim/internal/ctxlog"
	"github.com/specialistvlad/gatesim/internal/graph"
	"github.com/specialistvlad/gatesim/internal/primitive"
)

// votePairs lists the replica pair feeding each AND gate.
var votePairs = [3][2]int{{0, 1}, {1, 2}, {2, 0}}

// ReplicaName returns the name of replica i of target.
func ReplicaName(target string, i int) string { return fmt.Sprintf("%s_%d", target, i) }

// AndName returns the name of AND gate i of target.
func AndName(target string, i int) string { return fmt.Sprintf("%s_and%d", target, i) }

// OrName returns the name of the OR gate of target.
func OrName(target string) string { return target + "_or" }

func generatedNames(target string) []string {
	names := make([]string, 0, 7)
	for i := 0; i < 3; i++ {
		names = append(names, ReplicaName(target, i))
	}
	for i := 0; i < 3; i++ {
		names = append(names, AndName(target, i))
	}
	return append(names, OrName(target))
}

// Apply hardens every named instance of g in place, in the given order.
// On error g is left untouched.
func Apply(ctx context.Context, g *graph.Graph, names []string) error {
	logger := ctxlog.FromContext(ctx).With("netlist", g.Name)

	targets, err := validate(g, names)
	if err != nil {
		return err
	}

	for _, t := range targets {
		if err := harden(g, t); err != nil {
			return fmt.Errorf("hardening %q: %w", t.Name, err)
		}
		logger.Debug("Hardened instance.", "instance", t.Name, "kind", t.Kind, "nodes", g.NumNodes(), "edges", g.NumEdges())
	}
	logger.Debug("TMR batch applied.", "targets", len(targets))
	return nil
}

// validate resolves the batch against the current graph without
// modifying it.
func validate(g *graph.Graph, names []string) ([]*graph.Node, error) {
	seen := make(map[string]bool, len(names))
	claimed := make(map[string]string)
	targets := make([]*graph.Node, 0, len(names))
	for _, name := range names {
		n, ok := g.NodeByName(name)
		if !ok || n.Kind.IsNet() || n.Kind.IsVoter() {
			return nil, &UnknownModuleError{Name: name}
		}
		if seen[name] {
			return nil, &DuplicateTargetError{Name: name}
		}
		seen[name] = true
		targets = append(targets, n)
	}
	for _, name := range names {
		for _, gen := range generatedNames(name) {
			if _, ok := g.NodeByName(gen); ok {
				return nil, &NameCollisionError{Target: name, Name: gen}
			}
			if _, ok := claimed[gen]; ok {
				return nil, &NameCollisionError{Target: name, Name: gen}
			}
			claimed[gen] = name
		}
	}
	return targets, nil
}

// harden rewrites one instance. Both edge sets are captured and checked
// before the instance is removed.
func harden(g *graph.Graph, target *graph.Node) error {
	inbound := copyEdges(g.InEdges(target.ID))
	outbound := copyEdges(g.OutEdges(target.ID))
	if err := stage(g, target, inbound, outbound); err != nil {
		return err
	}
	name, kind, word := target.Name, target.Kind, target.Word
	g.RemoveNode(target.ID)

	var replicas [3]graph.NodeID
	for i := range replicas {
		id, err := g.AddNode(graph.Node{Name: ReplicaName(name, i), Kind: kind, Word: word, Origin: name})
		if err != nil {
			return err
		}
		replicas[i] = id
		for _, e := range inbound {
			e.To = id
			if _, err := g.AddEdge(e); err != nil {
				return err
			}
		}
	}

	var ands [3]graph.NodeID
	for i := range ands {
		id, err := g.AddNode(graph.Node{Name: AndName(name, i), Kind: primitive.KindAND, Origin: name})
		if err != nil {
			return err
		}
		ands[i] = id
	}
	or, err := g.AddNode(graph.Node{Name: OrName(name), Kind: primitive.KindOR, Origin: name})
	if err != nil {
		return err
	}

	var andPorts [3]int
	orPort := 0
	for _, e := range outbound {
		for i, pair := range votePairs {
			for _, r := range pair {
				if _, err := g.AddEdge(graph.Edge{From: replicas[r], To: ands[i], Port: andPorts[i], Role: e.Role, Value: e.Value}); err != nil {
					return err
				}
				andPorts[i]++
			}
			if _, err := g.AddEdge(graph.Edge{From: ands[i], To: or, Port: orPort, Role: e.Role, Value: e.Value}); err != nil {
				return err
			}
			orPort++
		}
		e.From = or
		if _, err := g.AddEdge(e); err != nil {
			return err
		}
	}
	return nil
}

// stage checks that every edge endpoint other than target is live and
// that the generated names are free.
func stage(g *graph.Graph, target *graph.Node, inbound, outbound []graph.Edge) error {
	for _, e := range inbound {
		if e.From == target.ID {
			return fmt.Errorf("instance drives itself through edge %d", e.ID)
		}
		if _, ok := g.Node(e.From); !ok {
			return fmt.Errorf("source node not found: %d", e.From)
		}
	}
	for _, e := range outbound {
		if _, ok := g.Node(e.To); !ok {
			return fmt.Errorf("destination node not found: %d", e.To)
		}
	}
	for _, gen := range generatedNames(target.Name) {
		if _, ok := g.NodeByName(gen); ok {
			return &NameCollisionError{Target: target.Name, Name: gen}
		}
	}
	return nil
}

func copyEdges(edges []*graph.Edge) []graph.Edge {
	out := make([]graph.Edge, len(edges))
	for i, e := range edges {
		out[i] = *e
	}
	return out
}
