package builder

import (
	"context"
	"errors"

	"github.com/specialistvlad/gatesim/internal/bitvec"
	"github.com/specialistvlad/gatesim/internal/config"
	"github.com/specialistvlad/gatesim/internal/ctxlog"
	"github.com/specialistvlad/gatesim/internal/graph"
	"github.com/specialistvlad/gatesim/internal/primitive"
)

// placedInstance ties a netlist instance to its graph node.
type placedInstance struct {
	inst *config.Instance
	id   graph.NodeID
	kind primitive.Kind
}

func (p placedInstance) outputs() []string {
	return p.inst.Ports[:p.kind.OutputCount()]
}

func (p placedInstance) inputs() []string {
	return p.inst.Ports[p.kind.OutputCount():]
}

// createNodes performs the first pass of graph creation.
func createNodes(ctx context.Context, nl *config.Netlist, g *graph.Graph) ([]placedInstance, error) {
	logger := ctxlog.FromContext(ctx)

	nets := make(map[string]bool)
	declare := func(name string) error {
		if nets[name] {
			return &DuplicateNameError{Name: name}
		}
		nets[name] = true
		return nil
	}
	addNet := func(n graph.Node) error {
		if err := declare(n.Name); err != nil {
			return err
		}
		_, err := g.AddNode(n)
		return err
	}

	for _, name := range nl.Inputs {
		if err := addNet(graph.Node{Name: name, Kind: primitive.KindInput}); err != nil {
			return nil, err
		}
	}
	for _, name := range nl.Outputs {
		if err := addNet(graph.Node{Name: name, Kind: primitive.KindOutput}); err != nil {
			return nil, err
		}
	}
	if err := addNet(graph.Node{Name: GND, Kind: primitive.KindConstant, Const: false}); err != nil {
		return nil, err
	}
	if err := addNet(graph.Node{Name: VCC, Kind: primitive.KindConstant, Const: true}); err != nil {
		return nil, err
	}
	for _, name := range nl.Wires {
		if err := declare(name); err != nil {
			return nil, err
		}
	}

	placed := make([]placedInstance, 0, len(nl.Instances))
	for _, inst := range nl.Instances {
		kind, ok := primitive.ParseKind(inst.Kind)
		if !ok {
			return nil, &UnsupportedKindError{Instance: inst.Name, Kind: inst.Kind}
		}
		lo, hi := kind.InputRange()
		outs := kind.OutputCount()
		if n := len(inst.Ports); n < outs+lo || n > outs+hi {
			return nil, &PortCountError{Instance: inst.Name, Kind: inst.Kind, Got: n, Min: outs + lo, Max: outs + hi}
		}

		var word bitvec.Word
		if kind.HasInit() {
			w, err := parseWord(inst, kind)
			if err != nil {
				return nil, err
			}
			word = w
		} else if inst.Init != "" {
			logger.Warn("Ignoring configuration word on primitive without one.", "instance", inst.Name, "kind", inst.Kind, "init", inst.Init)
		}

		// Instances share the namespace with every net, wires included.
		if err := declare(inst.Name); err != nil {
			return nil, err
		}
		id, err := g.AddNode(graph.Node{Name: inst.Name, Kind: kind, Word: word})
		if errors.Is(err, graph.ErrNodeExists) {
			return nil, &DuplicateNameError{Name: inst.Name}
		}
		if err != nil {
			return nil, err
		}
		logger.Debug("Created instance node.", "instance", inst.Name, "kind", kind, "init", inst.Init)
		placed = append(placed, placedInstance{inst: inst, id: id, kind: kind})
	}
	return placed, nil
}

// parseWord reads an instance's configuration word and checks its width
// against the width its kind and input count require.
func parseWord(inst *config.Instance, kind primitive.Kind) (bitvec.Word, error) {
	inputs := len(inst.Ports) - kind.OutputCount()
	want := kind.WordWidth(inputs)
	if inst.Init == "" {
		return bitvec.Word{}, &ConfigWidthError{Instance: inst.Name, Kind: inst.Kind, Want: want}
	}
	w, err := bitvec.Parse(inst.Init)
	if err != nil {
		return bitvec.Word{}, &ConfigWidthError{Instance: inst.Name, Kind: inst.Kind, Want: want, Err: err}
	}
	if w.Width() != want {
		return bitvec.Word{}, &ConfigWidthError{Instance: inst.Name, Kind: inst.Kind, Want: want, Got: w.Width()}
	}
	return w, nil
}
