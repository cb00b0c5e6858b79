package graph

import "fmt"

// CycleError reports a combinational loop.
type CycleError struct {
	Node string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cycle detected involving node %q", e.Node)
}

// DetectCycles checks the graph for any cycles using a depth-first search
// over outbound edges.
func (g *Graph) DetectCycles() error {
	// permanent: fully visited, not on a cycle.
	// temporary: on the current recursion stack.
	permanent := make(map[NodeID]bool)
	temporary := make(map[NodeID]bool)

	var visit func(n *Node) error
	visit = func(n *Node) error {
		if permanent[n.ID] {
			return nil
		}
		if temporary[n.ID] {
			return &CycleError{Node: n.Name}
		}
		temporary[n.ID] = true
		for _, e := range g.OutEdges(n.ID) {
			if err := visit(g.nodes[e.To]); err != nil {
				return err
			}
		}
		delete(temporary, n.ID)
		permanent[n.ID] = true
		return nil
	}

	for _, n := range g.Nodes() {
		if err := visit(n); err != nil {
			return err
		}
	}
	return nil
}

// LongestPath returns the largest number of instances on any path from a
// source to a sink. Net nodes do not count as hops. A cyclic graph
// returns a *CycleError naming a node that could not be ordered.
func (g *Graph) LongestPath() (int, error) {
	indeg := make(map[NodeID]int, g.live)
	depth := make(map[NodeID]int, g.live)
	var queue []NodeID
	for _, n := range g.Nodes() {
		indeg[n.ID] = len(n.in)
		if len(n.in) == 0 {
			queue = append(queue, n.ID)
		}
	}

	longest, seen := 0, 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		seen++

		n := g.nodes[id]
		if !n.Kind.IsNet() {
			depth[id]++
		}
		if depth[id] > longest {
			longest = depth[id]
		}
		for _, e := range g.OutEdges(id) {
			if depth[id] > depth[e.To] {
				depth[e.To] = depth[id]
			}
			indeg[e.To]--
			if indeg[e.To] == 0 {
				queue = append(queue, e.To)
			}
		}
	}

	if seen < g.live {
		for _, n := range g.Nodes() {
			if indeg[n.ID] > 0 {
				return 0, &CycleError{Node: n.Name}
			}
		}
	}
	return longest, nil
}
