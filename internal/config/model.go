package config

// Job is the unified, format-agnostic representation of one simulation job:
// the netlist itself plus what to do with it.
type Job struct {
	Netlist *Netlist
	// Inputs assigns a value to every primary input. Nil when the job
	// declares no simulation.
	Inputs map[string]bool
	// Harden lists the instances to triplicate, in the order given.
	Harden []string
}

// Netlist is the parsed representation of declared nets and instances.
type Netlist struct {
	Name    string
	Inputs  []string
	Outputs []string
	Wires   []string
	// Instances keeps declaration order; graph node IDs follow it.
	Instances []*Instance
}

// Instance is one primitive occurrence.
type Instance struct {
	Kind string
	Name string
	// Ports lists net names with output ports first: position 0 for
	// single-output kinds, positions 0/1/2 (Y, S, FCO) for ARI1. The
	// remaining positions are inputs in declared order.
	Ports []string
	// Init is the configuration word as written, e.g. "4'h8". Empty for
	// buffers.
	Init string
}
