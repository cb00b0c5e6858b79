// Package config defines the format-agnostic netlist model consumed by the
// graph builder, along with the Loader interface for reading it from
// various sources.
//
// The `config.Job` is the single source of truth for the `builder`, `sim`
// and `tmr` packages. Concrete implementations of the Loader interface,
// such as for HCL, are provided in separate packages.
package config
