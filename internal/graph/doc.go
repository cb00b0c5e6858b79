// Package graph holds the circuit graph: a node table of nets and
// primitive instances plus edge records carrying a role tag and a
// propagated value.
//
// # Layout
//
// Nodes and edges live in two arenas and are addressed by index
// (NodeID, EdgeID). Removing a node leaves a tombstone so identifiers
// handed out earlier stay stable. Each node keeps the IDs of its inbound
// and outbound edges; nodes never point at each other directly.
//
//	input A ──plain──▶ INBUF ──plain──▶ CFG2 ──plain──▶ OUTBUF ──▶ output Y
//	                                  ▲
//	constant VCC ─────plain───────────┘
//
// # Ownership
//
// A Graph has a single owner at a time. The builder creates it, the
// simulator writes edge values and the TMR transform rewrites topology.
// None of these may run concurrently on the same Graph; read-only
// queries (InEdges, OutEdges, Node) are safe to call from several
// goroutines while nothing mutates the graph.
package graph
