package report

import (
	"io"
	"strings"

	"github.com/specialistvlad/gatesim/internal/graph"
	"github.com/specialistvlad/gatesim/internal/primitive"
)

var roleColors = map[primitive.LogicalRole]string{
	primitive.LogicalInput:      "lightblue",
	primitive.LogicalOutput:     "palegreen",
	primitive.LogicalConstant:   "lightgrey",
	primitive.LogicalBuffer:     "white",
	primitive.LogicalLogic:      "lightyellow",
	primitive.LogicalArithmetic: "orange",
	primitive.LogicalVoting:     "pink",
}

var edgeColors = map[primitive.Role]string{
	primitive.RolePlain: "black",
	primitive.RoleY:     "red",
	primitive.RoleS:     "blue",
	primitive.RoleFCO:   "green",
}

var dotReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// dotEscape quotes each line for a DOT string and joins them with \n.
func dotEscape(lines ...string) string {
	for i, l := range lines {
		lines[i] = dotReplacer.Replace(l)
	}
	return strings.Join(lines, `\n`)
}

// WriteDOT writes g as a Graphviz digraph. Nodes are coloured by logical
// role, edges by output role and labelled with their value.
func WriteDOT(w io.Writer, g *graph.Graph) error {
	p := &printer{w: w}
	p.printf("digraph %q\n{\n", g.Name)
	p.printf("  rankdir=LR;\n")
	p.printf("  node\t[fontname=\"Helvetica\", style=filled];\n")

	var inputs, outputs []*graph.Node
	for _, n := range g.Nodes() {
		shape := "box"
		lines := []string{n.Name, n.Kind.String()}
		if n.Kind.IsNet() {
			shape = "ellipse"
			lines = lines[:1]
		}
		if !n.Word.IsZero() {
			lines = append(lines, n.Word.String())
		}
		label := dotEscape(lines...)
		p.printf("  n%d\t[label=\"%s\", shape=%s, fillcolor=%s];\n", n.ID, label, shape, roleColors[n.Kind.Logical()])
		switch n.Kind {
		case primitive.KindInput:
			inputs = append(inputs, n)
		case primitive.KindOutput:
			outputs = append(outputs, n)
		}
	}

	for _, rank := range [][]*graph.Node{inputs, outputs} {
		if len(rank) == 0 {
			continue
		}
		p.printf("  {  rank=same")
		for _, n := range rank {
			p.printf("; n%d", n.ID)
		}
		p.printf(";}\n")
	}

	for _, e := range g.Edges() {
		label := e.Value.String()
		if e.Role != primitive.RolePlain {
			label = e.Role.String() + "=" + label
		}
		p.printf("  n%d -> n%d\t[label=%q, color=%s];\n", e.From, e.To, label, edgeColors[e.Role])
	}
	p.printf("}\n")
	return p.err
}
