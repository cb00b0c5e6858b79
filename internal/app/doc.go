// Package app wires the loader, builder, simulator, TMR transform and
// reporters into one run. It owns the logger and the output writers; the
// cli package only turns arguments into a Config.
package app
