package sim

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/gatesim/internal/bitvec"
	"github.com/specialistvlad/gatesim/internal/builder"
	"github.com/specialistvlad/gatesim/internal/config"
	"github.com/specialistvlad/gatesim/internal/ctxlog"
	"github.com/specialistvlad/gatesim/internal/graph"
	"github.com/specialistvlad/gatesim/internal/primitive"
	"github.com/specialistvlad/gatesim/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	return ctxlog.Discard(context.Background())
}

func build(t *testing.T, nl *config.Netlist) *graph.Graph {
	t.Helper()
	g, err := builder.Build(testCtx(), nl)
	require.NoError(t, err)
	return g
}

// edgeValues snapshots every edge value keyed by edge ID.
func edgeValues(g *graph.Graph) map[graph.EdgeID]graph.Value {
	out := make(map[graph.EdgeID]graph.Value)
	for _, e := range g.Edges() {
		out[e.ID] = e.Value
	}
	return out
}

func TestSimulate_And2(t *testing.T) {
	g := build(t, testutil.And2Netlist())

	testCases := []struct {
		a, b, want bool
	}{
		{true, true, true},
		{true, false, false},
		{false, true, false},
		{false, false, false},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("A=%v,B=%v", tc.a, tc.b), func(t *testing.T) {
			res, err := Simulate(testCtx(), g, map[string]bool{"A": tc.a, "B": tc.b})
			require.NoError(t, err)
			assert.Equal(t, map[string]bool{"Y": tc.want}, res.Outputs)
			assert.Equal(t, 3, res.Passes)
			assert.Equal(t, 4, res.Evaluated)
		})
	}
}

func TestSimulate_Adder2(t *testing.T) {
	g := build(t, testutil.Adder2Netlist())

	for _, in := range testutil.Bits("A0", "A1", "B0", "B1", "CI") {
		bit := func(name string) int {
			if in[name] {
				return 1
			}
			return 0
		}
		sum := bit("A0") + 2*bit("A1") + bit("B0") + 2*bit("B1") + bit("CI")
		want := map[string]bool{"S0": sum&1 == 1, "S1": sum&2 == 2, "CO": sum&4 == 4}

		res, err := Simulate(testCtx(), g, in)
		require.NoError(t, err)
		assert.Equal(t, want, res.Outputs, "inputs %v", in)
	}
}

func TestSimulate_Mux(t *testing.T) {
	g := build(t, testutil.MuxNetlist())

	for _, in := range testutil.Bits("D0", "D1", "S", "EN") {
		want := in["D0"]
		if in["S"] {
			want = in["D1"]
		}
		want = want && in["EN"]

		res, err := Simulate(testCtx(), g, in)
		require.NoError(t, err)
		assert.Equal(t, want, res.Outputs["Y"], "inputs %v", in)
	}
}

func TestSimulate_ConstantsSeedEdges(t *testing.T) {
	nl := &config.Netlist{
		Name:    "const",
		Outputs: []string{"Y", "Z"},
		Instances: []*config.Instance{
			{Kind: "OUTBUF", Name: "y_obuf", Ports: []string{"Y", "VCC"}},
			{Kind: "OUTBUF", Name: "z_obuf", Ports: []string{"Z", "GND"}},
		},
	}
	res, err := Simulate(testCtx(), build(t, nl), map[string]bool{})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"Y": true, "Z": false}, res.Outputs)
}

func TestSimulate_Deterministic(t *testing.T) {
	g := build(t, testutil.Adder2Netlist())
	in := map[string]bool{"A0": true, "A1": false, "B0": true, "B1": true, "CI": false}

	first, err := Simulate(testCtx(), g, in)
	require.NoError(t, err)
	firstEdges := edgeValues(g)

	second, err := Simulate(testCtx(), g, in)
	require.NoError(t, err)

	assert.Equal(t, first.Outputs, second.Outputs)
	if diff := cmp.Diff(firstEdges, edgeValues(g)); diff != "" {
		t.Errorf("edge values differ between runs (-first +second):\n%s", diff)
	}
}

func TestSimulate_NoResidualState(t *testing.T) {
	g := build(t, testutil.And2Netlist())

	res, err := Simulate(testCtx(), g, map[string]bool{"A": true, "B": true})
	require.NoError(t, err)
	assert.True(t, res.Outputs["Y"])

	res, err = Simulate(testCtx(), g, map[string]bool{"A": true, "B": false})
	require.NoError(t, err)
	assert.False(t, res.Outputs["Y"])
}

func TestSimulate_ConvergenceBound(t *testing.T) {
	g := build(t, testutil.Adder2Netlist())
	in := map[string]bool{"A0": true, "A1": true, "B0": true, "B1": false, "CI": true}

	l, err := g.LongestPath()
	require.NoError(t, err)

	res, err := Simulate(testCtx(), g, in)
	require.NoError(t, err)
	assert.Equal(t, l, res.Passes)
	for _, e := range g.Edges() {
		assert.NotEqual(t, graph.Unset, e.Value, "edge %d unset after %d passes", e.ID, l)
	}
	atL := edgeValues(g)

	more, err := Simulate(testCtx(), g, in, WithPasses(l+1))
	require.NoError(t, err)
	assert.Equal(t, res.Outputs, more.Outputs)
	assert.Equal(t, res.Evaluated, more.Evaluated)
	assert.Equal(t, atL, edgeValues(g))

	_, err = Simulate(testCtx(), g, in, WithPasses(l-1))
	var target *InconsistencyError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, []string{"S1_obuf", "CO_obuf"}, target.Unresolved)
}

func TestSimulate_WorkersAgree(t *testing.T) {
	for _, in := range testutil.Bits("A0", "A1", "B0", "B1", "CI") {
		seq := build(t, testutil.Adder2Netlist())
		par := build(t, testutil.Adder2Netlist())

		want, err := Simulate(testCtx(), seq, in, WithWorkers(1))
		require.NoError(t, err)
		got, err := Simulate(testCtx(), par, in, WithWorkers(8))
		require.NoError(t, err)

		assert.Equal(t, want, got)
		assert.Equal(t, edgeValues(seq), edgeValues(par))
	}
}

func TestSimulate_InputErrors(t *testing.T) {
	g := build(t, testutil.And2Netlist())

	t.Run("missing", func(t *testing.T) {
		_, err := Simulate(testCtx(), g, map[string]bool{"A": true})
		var target *MissingInputError
		require.ErrorAs(t, err, &target)
		assert.Equal(t, "B", target.Net)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := Simulate(testCtx(), g, map[string]bool{"A": true, "B": true, "Y": true})
		var target *UnknownInputError
		require.ErrorAs(t, err, &target)
		assert.Equal(t, "Y", target.Net)
	})
}

// loopGraph wires two buffers into a ring fed by nothing, next to a
// healthy path from A to Y.
func loopGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New("loop")
	add := func(name string, k primitive.Kind) graph.NodeID {
		id, err := g.AddNode(graph.Node{Name: name, Kind: k, Word: wordFor(k)})
		require.NoError(t, err)
		return id
	}
	link := func(from, to graph.NodeID, port int) {
		_, err := g.AddEdge(graph.Edge{From: from, To: to, Port: port})
		require.NoError(t, err)
	}
	a := add("A", primitive.KindInput)
	buf := add("buf", primitive.KindINBUF)
	y := add("Y", primitive.KindOutput)
	x1 := add("x1", primitive.KindCFG2)
	x2 := add("x2", primitive.KindCFG1)
	link(a, buf, 0)
	link(buf, y, 0)
	link(a, x1, 0)
	link(x2, x1, 1)
	link(x1, x2, 0)
	return g
}

func wordFor(k primitive.Kind) bitvec.Word {
	switch k {
	case primitive.KindCFG1:
		return bitvec.New(2, 0b10)
	case primitive.KindCFG2:
		return bitvec.New(4, 0b1000)
	}
	return bitvec.Word{}
}

func TestSimulate_LoopIsInconsistent(t *testing.T) {
	_, err := Simulate(testCtx(), loopGraph(t), map[string]bool{"A": true})
	var target *InconsistencyError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, []string{"x1", "x2"}, target.Unresolved)
	assert.Equal(t, 3, target.Passes)
	assert.ErrorContains(t, err, "unresolved after 3 pass(es)")
}

func TestSimulate_Cancelled(t *testing.T) {
	g := build(t, testutil.And2Netlist())
	ctx, cancel := context.WithCancel(testCtx())
	cancel()

	_, err := Simulate(ctx, g, map[string]bool{"A": true, "B": true})
	assert.ErrorIs(t, err, context.Canceled)
}
