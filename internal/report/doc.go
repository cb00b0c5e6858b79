// Package report renders a circuit graph and simulation results as text:
// Graphviz DOT, an adjacency listing and "net: 0|1" output lines.
package report
