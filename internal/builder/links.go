package builder

import (
	"context"
	"fmt"

	"github.com/specialistvlad/gatesim/internal/config"
	"github.com/specialistvlad/gatesim/internal/ctxlog"
	"github.com/specialistvlad/gatesim/internal/graph"
	"github.com/specialistvlad/gatesim/internal/primitive"
)

// driver is the (instance, output role) pair producing a net.
type driver struct {
	id   graph.NodeID
	name string
	role primitive.Role
}

// linkNodes performs the second pass, establishing driver to consumer edges.
func linkNodes(ctx context.Context, nl *config.Netlist, g *graph.Graph, placed []placedInstance) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting node linking pass.")

	drivers, err := collectDrivers(g, placed)
	if err != nil {
		return err
	}

	for _, p := range placed {
		for port, net := range p.inputs() {
			src, err := resolve(g, drivers, net)
			if err != nil {
				return &UnresolvedNetError{Instance: p.inst.Name, Net: net, Port: port}
			}
			if src.id == p.id {
				return fmt.Errorf("error validating circuit graph: %w", &graph.CycleError{Node: p.inst.Name})
			}
			if _, err := g.AddEdge(graph.Edge{From: src.id, To: p.id, Port: port, Role: src.role}); err != nil {
				return fmt.Errorf("linking %q input %d: %w", p.inst.Name, port, err)
			}
			logger.Debug("Linked input port.", "instance", p.inst.Name, "port", port, "net", net, "driver", src.name, "role", src.role)
		}
	}

	for _, name := range nl.Outputs {
		out, _ := g.NodeByName(name)
		d, ok := drivers[name]
		if !ok {
			return &UnresolvedNetError{Net: name}
		}
		if _, err := g.AddEdge(graph.Edge{From: d.id, To: out.ID, Role: d.role}); err != nil {
			return fmt.Errorf("linking primary output %q: %w", name, err)
		}
		logger.Debug("Linked primary output.", "net", name, "driver", d.name, "role", d.role)
	}

	logger.Debug("Finished node linking pass.")
	return nil
}

// collectDrivers maps every net named on an output port to its driver.
// Sources (primary inputs and constants) cannot be driven.
func collectDrivers(g *graph.Graph, placed []placedInstance) (map[string]driver, error) {
	drivers := make(map[string]driver)
	for _, p := range placed {
		for pos, net := range p.outputs() {
			if net == "" {
				continue
			}
			if n, ok := g.NodeByName(net); ok && n.Kind.IsSource() {
				return nil, &MultipleDriversError{Net: net, Drivers: []string{n.Kind.String(), p.inst.Name}}
			}
			if prev, ok := drivers[net]; ok {
				return nil, &MultipleDriversError{Net: net, Drivers: []string{prev.name, p.inst.Name}}
			}
			drivers[net] = driver{id: p.id, name: p.inst.Name, role: primitive.OutputRole(p.kind, pos)}
		}
	}
	return drivers, nil
}

// resolve finds what drives net: a constant, a primary input or an
// instance output.
func resolve(g *graph.Graph, drivers map[string]driver, net string) (driver, error) {
	if n, ok := g.NodeByName(net); ok && n.Kind.IsSource() {
		return driver{id: n.ID, name: n.Name, role: primitive.RolePlain}, nil
	}
	if d, ok := drivers[net]; ok {
		return d, nil
	}
	return driver{}, fmt.Errorf("net %q has no driver", net)
}
