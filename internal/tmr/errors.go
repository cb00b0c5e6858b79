package tmr

import "fmt"

// UnknownModuleError is returned when a target is not an instance of the
// graph. Nets, constants and voter gates cannot be hardened.
type UnknownModuleError struct {
	Name string
}

func (e *UnknownModuleError) Error() string {
	return fmt.Sprintf("unknown module %q", e.Name)
}

// DuplicateTargetError is returned when a batch names an instance twice.
type DuplicateTargetError struct {
	Name string
}

func (e *DuplicateTargetError) Error() string {
	return fmt.Sprintf("module %q is listed more than once", e.Name)
}

// NameCollisionError is returned when a generated replica or voter name
// is already taken.
type NameCollisionError struct {
	Target string
	Name   string
}

func (e *NameCollisionError) Error() string {
	return fmt.Sprintf("hardening %q would create %q, which already exists", e.Target, e.Name)
}
