// Package cli turns command-line arguments into an app.Config. It never
// runs anything itself; errors that should end the process carry their
// exit code in an *ExitError.
package cli
