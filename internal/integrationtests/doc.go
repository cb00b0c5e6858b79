// Package integration_tests runs whole netlists through the HCL loader,
// the builder, the simulator and the TMR pass, the way the CLI does.
package integration_tests
