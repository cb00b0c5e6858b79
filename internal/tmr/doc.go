// Package tmr hardens instances of a circuit graph with triple modular
// redundancy.
//
// Each target is replaced by three replicas fed by the target's inbound
// edges. For every outbound edge of the target, the replicas vote
// through three 2-input AND gates, over the pairs (0,1), (1,2) and (2,0),
// whose outputs meet in one OR gate that drives the original destination:
//
//	        ┌─▶ name_0 ─┬─▶ name_and0 ─┐
//	src ────┼─▶ name_1 ─┼─▶ name_and1 ─┼─▶ name_or ─▶ dst
//	        └─▶ name_2 ─┴─▶ name_and2 ─┘
//
// A batch is validated against the graph as it was before the batch.
// Nothing is rewired unless every name in the batch is acceptable.
package tmr
