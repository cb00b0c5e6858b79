// Package hcl provides the concrete HCL implementation of the
// config.Loader interface. It is responsible for file discovery and
// parsing, and for translating netlist, simulation and tmr blocks into
// the format-agnostic config.Job.
package hcl
