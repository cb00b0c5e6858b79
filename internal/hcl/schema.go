package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Netlists    []*netlistBlock    `hcl:"netlist,block"`
	Simulations []*simulationBlock `hcl:"simulation,block"`
	TMR         []*tmrBlock        `hcl:"tmr,block"`
}

type netlistBlock struct {
	Name      string           `hcl:"name,label"`
	Inputs    []string         `hcl:"inputs,optional"`
	Outputs   []string         `hcl:"outputs,optional"`
	Wires     []string         `hcl:"wires,optional"`
	Instances []*instanceBlock `hcl:"instance,block"`
}

type instanceBlock struct {
	Kind  string   `hcl:"kind,label"`
	Name  string   `hcl:"name,label"`
	Ports []string `hcl:"ports"`
	Init  string   `hcl:"init,optional"`
}

type simulationBlock struct {
	Inputs hcl.Expression `hcl:"inputs"`
}

type tmrBlock struct {
	Targets []string `hcl:"targets"`
}
