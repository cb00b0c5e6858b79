package builder

import (
	"fmt"
	"strings"
)

// UnresolvedNetError is returned when a net is consumed but nothing
// drives it. Instance is empty for an undriven primary output.
type UnresolvedNetError struct {
	Instance string
	Net      string
	Port     int
}

func (e *UnresolvedNetError) Error() string {
	if e.Instance == "" {
		return fmt.Sprintf("primary output %q has no driver", e.Net)
	}
	if e.Net == "" {
		return fmt.Sprintf("instance %q: input %d is not connected", e.Instance, e.Port)
	}
	return fmt.Sprintf("instance %q: input %d references net %q which has no driver, constant or primary input", e.Instance, e.Port, e.Net)
}

// ConfigWidthError is returned when an instance's configuration word is
// missing, malformed or of the wrong width.
type ConfigWidthError struct {
	Instance string
	Kind     string
	Want     int
	Got      int
	Err      error
}

func (e *ConfigWidthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("instance %q (%s): configuration word: %v", e.Instance, e.Kind, e.Err)
	}
	if e.Got == 0 {
		return fmt.Sprintf("instance %q (%s): missing %d-bit configuration word", e.Instance, e.Kind, e.Want)
	}
	return fmt.Sprintf("instance %q (%s): configuration word is %d bits wide, want %d", e.Instance, e.Kind, e.Got, e.Want)
}

func (e *ConfigWidthError) Unwrap() error { return e.Err }

// MultipleDriversError is returned when a net has more than one driver.
type MultipleDriversError struct {
	Net     string
	Drivers []string
}

func (e *MultipleDriversError) Error() string {
	return fmt.Sprintf("net %q has multiple drivers: %s", e.Net, strings.Join(e.Drivers, ", "))
}

// DuplicateNameError is returned when a net or instance name is declared
// more than once.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("name %q is declared more than once", e.Name)
}

// UnsupportedKindError is returned for an instance of an unknown primitive.
type UnsupportedKindError struct {
	Instance string
	Kind     string
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("instance %q: unsupported primitive %q", e.Instance, e.Kind)
}

// PortCountError is returned when an instance's port list does not fit
// its kind.
type PortCountError struct {
	Instance string
	Kind     string
	Got      int
	Min, Max int
}

func (e *PortCountError) Error() string {
	if e.Min == e.Max {
		return fmt.Sprintf("instance %q (%s): has %d ports, want %d", e.Instance, e.Kind, e.Got, e.Min)
	}
	return fmt.Sprintf("instance %q (%s): has %d ports, want %d to %d", e.Instance, e.Kind, e.Got, e.Min, e.Max)
}
