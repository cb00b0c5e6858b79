package builder

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/gatesim/internal/config"
	"github.com/specialistvlad/gatesim/internal/ctxlog"
	"github.com/specialistvlad/gatesim/internal/graph"
)

// Constant net names. They are always present in a built graph.
const (
	GND = "GND"
	VCC = "VCC"
)

// Build constructs a complete, validated circuit graph from a netlist.
func Build(ctx context.Context, nl *config.Netlist) (*graph.Graph, error) {
	if nl == nil {
		return nil, errors.New("netlist is nil")
	}
	logger := ctxlog.FromContext(ctx).With("netlist", nl.Name)
	logger.Debug("Build: Starting graph construction.")
	g := graph.New(nl.Name)

	// First pass: nets, constants and instances.
	placed, err := createNodes(ctx, nl, g)
	if err != nil {
		return nil, err
	}
	logger.Debug("Build: Node creation complete.", "node_count", g.NumNodes())

	// Second pass: resolve every consumed net to its driver.
	if err := linkNodes(ctx, nl, g, placed); err != nil {
		return nil, err
	}
	logger.Debug("Build: Node linking complete.", "edge_count", g.NumEdges())

	if err := g.DetectCycles(); err != nil {
		return nil, fmt.Errorf("error validating circuit graph: %w", err)
	}
	logger.Debug("Build: Cycle detection passed.")

	logger.Debug("Build: Graph construction successful.")
	return g, nil
}
