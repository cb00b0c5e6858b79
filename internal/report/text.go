package report

import (
	"io"
	"sort"

	"github.com/specialistvlad/gatesim/internal/graph"
	"github.com/specialistvlad/gatesim/internal/primitive"
)

// WriteAdjacency lists every node with its outbound edges, one node per
// line:
//
//	add_0 (ARI1) -> add_1[4] FCO=1, S0_obuf[0] S=0
func WriteAdjacency(w io.Writer, g *graph.Graph) error {
	p := &printer{w: w}
	for _, n := range g.Nodes() {
		p.printf("%s (%s) ->", n.Name, n.Kind)
		for i, e := range g.OutEdges(n.ID) {
			to, _ := g.Node(e.To)
			sep := " "
			if i > 0 {
				sep = ", "
			}
			value := e.Value.String()
			if e.Role != primitive.RolePlain {
				value = e.Role.String() + "=" + value
			}
			p.printf("%s%s[%d] %s", sep, to.Name, e.Port, value)
		}
		p.printf("\n")
	}
	return p.err
}

// WriteOutputs prints one "net: 0|1" line per output, sorted by net name.
func WriteOutputs(w io.Writer, outputs map[string]bool) error {
	names := make([]string, 0, len(outputs))
	for name := range outputs {
		names = append(names, name)
	}
	sort.Strings(names)

	p := &printer{w: w}
	for _, name := range names {
		p.printf("%s: %s\n", name, Bit(outputs[name]))
	}
	return p.err
}

// Bit formats a level as "0" or "1".
func Bit(level bool) string {
	return graph.ValueOf(level).String()
}
