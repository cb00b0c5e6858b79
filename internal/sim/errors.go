package sim

import (
	"fmt"
	"strings"
)

// InconsistencyError is returned when instances are still unresolved
// after the pass budget, or a node cannot be evaluated from its edges.
type InconsistencyError struct {
	Passes     int
	Unresolved []string
	Err        error
}

func (e *InconsistencyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("simulation inconsistency: %v", e.Err)
	}
	return fmt.Sprintf("simulation inconsistency: %d instance(s) unresolved after %d pass(es): %s",
		len(e.Unresolved), e.Passes, strings.Join(e.Unresolved, ", "))
}

func (e *InconsistencyError) Unwrap() error { return e.Err }

// MissingInputError is returned when a primary input has no value.
type MissingInputError struct {
	Net string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("primary input %q is not assigned", e.Net)
}

// UnknownInputError is returned when a value is given for a net that is
// not a primary input.
type UnknownInputError struct {
	Net string
}

func (e *UnknownInputError) Error() string {
	return fmt.Sprintf("%q is not a primary input", e.Net)
}
