package graph

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNodeExists is returned by AddNode when the name is taken.
var ErrNodeExists = errors.New("node already exists")

// New creates and returns an initialized, empty Graph.
func New(name string) *Graph {
	return &Graph{
		Name:   name,
		byName: make(map[string]NodeID),
	}
}

// AddNode stores a copy of n under a fresh ID and returns the ID. Names
// are unique among live nodes.
func (g *Graph) AddNode(n Node) (NodeID, error) {
	if n.Name == "" {
		return 0, fmt.Errorf("node name must not be empty")
	}
	if _, ok := g.byName[n.Name]; ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeExists, n.Name)
	}
	id := NodeID(len(g.nodes))
	n.ID = id
	n.in, n.out = nil, nil
	g.nodes = append(g.nodes, &n)
	g.byName[n.Name] = id
	g.live++
	return id, nil
}

// AddEdge connects from to input position port of to.
func (g *Graph) AddEdge(e Edge) (EdgeID, error) {
	if e.From == e.To {
		return 0, fmt.Errorf("self-referential edge not allowed on node %d", e.From)
	}
	from, ok := g.Node(e.From)
	if !ok {
		return 0, fmt.Errorf("source node not found: %d", e.From)
	}
	to, ok := g.Node(e.To)
	if !ok {
		return 0, fmt.Errorf("destination node not found: %d", e.To)
	}
	id := EdgeID(len(g.edges))
	e.ID = id
	g.edges = append(g.edges, &e)
	from.out = append(from.out, id)
	to.in = append(to.in, id)
	g.nEdges++
	return id, nil
}

// RemoveNode deletes a node and every edge touching it.
func (g *Graph) RemoveNode(id NodeID) {
	n, ok := g.Node(id)
	if !ok {
		return
	}
	// dropEdge compacts n.in and n.out, so walk detached copies.
	in, out := n.in, n.out
	n.in, n.out = nil, nil
	for _, eid := range in {
		g.dropEdge(eid)
	}
	for _, eid := range out {
		g.dropEdge(eid)
	}
	delete(g.byName, n.Name)
	g.nodes[id] = nil
	g.live--
}

func (g *Graph) dropEdge(id EdgeID) {
	e := g.edges[id]
	if e == nil {
		return
	}
	g.edges[id] = nil
	g.nEdges--
	if from := g.nodes[e.From]; from != nil {
		from.out = without(from.out, id)
	}
	if to := g.nodes[e.To]; to != nil {
		to.in = without(to.in, id)
	}
}

func without(ids []EdgeID, id EdgeID) []EdgeID {
	out := ids[:0]
	for _, x := range ids {
		if x != id {
			out = append(out, x)
		}
	}
	return out
}

// Node returns the live node with the given ID.
func (g *Graph) Node(id NodeID) (*Node, bool) {
	if id < 0 || int(id) >= len(g.nodes) || g.nodes[id] == nil {
		return nil, false
	}
	return g.nodes[id], true
}

// NodeByName returns the live node with the given name.
func (g *Graph) NodeByName(name string) (*Node, bool) {
	id, ok := g.byName[name]
	if !ok {
		return nil, false
	}
	return g.nodes[id], true
}

// Edge returns the live edge with the given ID.
func (g *Graph) Edge(id EdgeID) (*Edge, bool) {
	if id < 0 || int(id) >= len(g.edges) || g.edges[id] == nil {
		return nil, false
	}
	return g.edges[id], true
}

// InEdges returns the edges entering id ordered by input port.
func (g *Graph) InEdges(id NodeID) []*Edge {
	n, ok := g.Node(id)
	if !ok {
		return nil
	}
	edges := g.collect(n.in)
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Port < edges[j].Port })
	return edges
}

// OutEdges returns the edges leaving id in creation order.
func (g *Graph) OutEdges(id NodeID) []*Edge {
	n, ok := g.Node(id)
	if !ok {
		return nil
	}
	return g.collect(n.out)
}

func (g *Graph) collect(ids []EdgeID) []*Edge {
	edges := make([]*Edge, 0, len(ids))
	for _, id := range ids {
		edges = append(edges, g.edges[id])
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].ID < edges[j].ID })
	return edges
}

// Nodes returns every live node in ID order.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, 0, g.live)
	for _, n := range g.nodes {
		if n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// Edges returns every live edge in ID order.
func (g *Graph) Edges() []*Edge {
	edges := make([]*Edge, 0, g.nEdges)
	for _, e := range g.edges {
		if e != nil {
			edges = append(edges, e)
		}
	}
	return edges
}

// NumNodes returns the number of live nodes.
func (g *Graph) NumNodes() int { return g.live }

// NumEdges returns the number of live edges.
func (g *Graph) NumEdges() int { return g.nEdges }

// ResetValues clears the value of every edge.
func (g *Graph) ResetValues() {
	for _, e := range g.edges {
		if e != nil {
			e.Value = Unset
		}
	}
}
