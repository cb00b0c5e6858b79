// Package sim propagates boolean levels through a circuit graph.
//
// Simulate seeds the edges leaving primary inputs and constants, then runs
// L passes, L being the longest instance chain in the graph. Each pass
// first collects every instance whose inputs are all set and that has not
// run yet, then evaluates that set, optionally on several goroutines, and
// writes the results to the instance's outbound edges. Because the ready
// set is fixed before any result is written, the outcome does not depend
// on the worker count.
//
// An instance still waiting on an input after the last pass means the
// graph is malformed (a loop, or a dangling edge) and yields an
// *InconsistencyError.
package sim
