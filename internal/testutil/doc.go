// Package testutil holds fixtures shared by the package tests: small
// netlists with known behaviour, a goroutine-safe log buffer and helpers
// for laying out job files in a temporary directory.
//
// It depends only on the config model so that any package, including the
// builder and simulator, can use it from its internal tests.
package testutil
