package graph

import (
	"github.com/specialistvlad/gatesim/internal/bitvec"
	"github.com/specialistvlad/gatesim/internal/primitive"
)

// NodeID indexes the node arena.
type NodeID int

// EdgeID indexes the edge arena.
type EdgeID int

// Value is the propagated level of an edge.
type Value int8

const (
	Unset Value = iota
	Low
	High
)

// ValueOf converts a boolean level.
func ValueOf(b bool) Value {
	if b {
		return High
	}
	return Low
}

// Bool returns the level and whether it has been set.
func (v Value) Bool() (level, ok bool) {
	return v == High, v != Unset
}

func (v Value) String() string {
	switch v {
	case Low:
		return "0"
	case High:
		return "1"
	}
	return "x"
}

// Node is a net (primary input, primary output, constant) or a primitive
// instance. Voter gates inserted by TMR are instances too.
type Node struct {
	ID   NodeID
	Name string
	Kind primitive.Kind
	// Word is the configuration word of CFG and ARI1 instances.
	Word bitvec.Word
	// Const is the driven level of a constant node.
	Const bool
	// Origin names the hardened instance a replica or voter stands for.
	Origin string

	in  []EdgeID
	out []EdgeID
}

// Edge connects a driver's output to a consumer input port.
type Edge struct {
	ID   EdgeID
	From NodeID
	To   NodeID
	// Port is the input position on To, in declaration order.
	Port  int
	Role  primitive.Role
	Value Value
}

// Graph is the arena-backed circuit graph.
type Graph struct {
	// Name is the netlist name the graph was built from.
	Name string

	nodes  []*Node
	edges  []*Edge
	byName map[string]NodeID
	live   int
	nEdges int
}
