package testutil

import "github.com/specialistvlad/gatesim/internal/config"

// And2Netlist is a two input AND gate built from one CFG1 whose LUT is
// 4'h8, buffered on both sides.
func And2Netlist() *config.Netlist {
	return &config.Netlist{
		Name:    "and2",
		Inputs:  []string{"A", "B"},
		Outputs: []string{"Y"},
		Wires:   []string{"A_c", "B_c", "Y_c"},
		Instances: []*config.Instance{
			{Kind: "INBUF", Name: "A_ibuf", Ports: []string{"A_c", "A"}},
			{Kind: "INBUF", Name: "B_ibuf", Ports: []string{"B_c", "B"}},
			{Kind: "CFG1", Name: "and_0", Ports: []string{"Y_c", "A_c", "B_c"}, Init: "4'h8"},
			{Kind: "OUTBUF", Name: "Y_obuf", Ports: []string{"Y", "Y_c"}},
		},
	}
}

// FullAdderWord configures an ARI1 as one ripple-carry adder bit with a
// tied low: y = d^b, generate = d&b, propagate = y.
const FullAdderWord = "20'h7A05A"

// Adder2Netlist is a two bit ripple-carry adder made of two ARI1s.
// S = A + B + CI with carry out CO. The Y outputs are left unconnected.
func Adder2Netlist() *config.Netlist {
	nl := &config.Netlist{
		Name:    "adder2",
		Inputs:  []string{"A0", "A1", "B0", "B1", "CI"},
		Outputs: []string{"S0", "S1", "CO"},
		Wires:   []string{"A0_c", "A1_c", "B0_c", "B1_c", "CI_c", "S0_c", "S1_c", "C1", "C2"},
	}
	for _, in := range nl.Inputs {
		nl.Instances = append(nl.Instances, &config.Instance{Kind: "INBUF", Name: in + "_ibuf", Ports: []string{in + "_c", in}})
	}
	nl.Instances = append(nl.Instances,
		&config.Instance{Kind: "ARI1", Name: "add_0", Ports: []string{"", "S0_c", "C1", "GND", "A0_c", "GND", "B0_c", "CI_c"}, Init: FullAdderWord},
		&config.Instance{Kind: "ARI1", Name: "add_1", Ports: []string{"", "S1_c", "C2", "GND", "A1_c", "GND", "B1_c", "C1"}, Init: FullAdderWord},
		&config.Instance{Kind: "OUTBUF", Name: "S0_obuf", Ports: []string{"S0", "S0_c"}},
		&config.Instance{Kind: "OUTBUF", Name: "S1_obuf", Ports: []string{"S1", "S1_c"}},
		&config.Instance{Kind: "OUTBUF", Name: "CO_obuf", Ports: []string{"CO", "C2"}},
	)
	return nl
}

// MuxNetlist selects D1 when S is high and D0 otherwise through a CFG3,
// then gates the result with a TRIBUFF enabled by EN.
func MuxNetlist() *config.Netlist {
	return &config.Netlist{
		Name:    "mux",
		Inputs:  []string{"D0", "D1", "S", "EN"},
		Outputs: []string{"Y"},
		Wires:   []string{"D0_c", "D1_c", "S_c", "EN_c", "M", "Y_c"},
		Instances: []*config.Instance{
			{Kind: "INBUF", Name: "D0_ibuf", Ports: []string{"D0_c", "D0"}},
			{Kind: "INBUF", Name: "D1_ibuf", Ports: []string{"D1_c", "D1"}},
			{Kind: "INBUF", Name: "S_ibuf", Ports: []string{"S_c", "S"}},
			{Kind: "INBUF", Name: "EN_ibuf", Ports: []string{"EN_c", "EN"}},
			{Kind: "CFG3", Name: "mux_0", Ports: []string{"M", "D0_c", "D1_c", "S_c"}, Init: "8'hCA"},
			{Kind: "TRIBUFF", Name: "tri_0", Ports: []string{"Y_c", "M", "EN_c"}},
			{Kind: "OUTBUF", Name: "Y_obuf", Ports: []string{"Y", "Y_c"}},
		},
	}
}

// Bits returns every assignment of the named inputs, the first name
// toggling fastest.
func Bits(names ...string) []map[string]bool {
	out := make([]map[string]bool, 0, 1<<len(names))
	for n := 0; n < 1<<len(names); n++ {
		m := make(map[string]bool, len(names))
		for i, name := range names {
			m[name] = n>>i&1 == 1
		}
		out = append(out, m)
	}
	return out
}
