package primitive

import "fmt"

// Kind discriminates graph nodes.
type Kind int

const (
	KindInput Kind = iota
	KindOutput
	KindConstant
	KindINBUF
	KindOUTBUF
	KindTRIBUFF
	KindCFG1
	KindCFG2
	KindCFG3
	KindCFG4
	KindARI1
	KindAND
	KindOR
)

var kindNames = map[Kind]string{
	KindInput:    "input",
	KindOutput:   "output",
	KindConstant: "constant",
	KindINBUF:    "INBUF",
	KindOUTBUF:   "OUTBUF",
	KindTRIBUFF:  "TRIBUFF",
	KindCFG1:     "CFG1",
	KindCFG2:     "CFG2",
	KindCFG3:     "CFG3",
	KindCFG4:     "CFG4",
	KindARI1:     "ARI1",
	KindAND:      "AND",
	KindOR:       "OR",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a netlist primitive name to its Kind. Only kinds that
// may appear in a netlist are accepted.
func ParseKind(s string) (Kind, bool) {
	for k := KindINBUF; k <= KindARI1; k++ {
		if kindNames[k] == s {
			return k, true
		}
	}
	return 0, false
}

// IsNet reports whether k is a net node (primary input, primary output or
// constant) rather than an instance.
func (k Kind) IsNet() bool {
	return k == KindInput || k == KindOutput || k == KindConstant
}

// IsSource reports whether nodes of kind k seed values into the graph.
func (k Kind) IsSource() bool {
	return k == KindInput || k == KindConstant
}

// IsVoter reports whether k is one of the majority-voting gates.
func (k Kind) IsVoter() bool {
	return k == KindAND || k == KindOR
}

// IsCFG reports whether k is a lookup-table primitive.
func (k Kind) IsCFG() bool {
	return k >= KindCFG1 && k <= KindCFG4
}

// HasInit reports whether instances of kind k carry a configuration word.
func (k Kind) HasInit() bool {
	return k.IsCFG() || k == KindARI1
}

// OutputCount returns the number of output positions at the head of an
// instance's port list.
func (k Kind) OutputCount() int {
	switch {
	case k == KindARI1:
		return 3
	case k.IsNet():
		return 0
	default:
		return 1
	}
}

// InputRange returns the accepted number of input ports.
func (k Kind) InputRange() (min, max int) {
	switch {
	case k == KindINBUF, k == KindOUTBUF:
		return 1, 1
	case k == KindTRIBUFF:
		return 2, 2
	case k.IsCFG():
		return 1, 4
	case k == KindARI1:
		return 5, 5
	}
	return 0, 0
}

// WordWidth returns the configuration word width required for an
// instance of kind k with the given number of inputs, or 0 when the kind
// takes no word.
func (k Kind) WordWidth(inputs int) int {
	switch {
	case k.IsCFG():
		return 1 << uint(inputs)
	case k == KindARI1:
		return ARI1Width
	}
	return 0
}

// LogicalRole is the classification handed to renderers for layout and
// colouring.
type LogicalRole string

const (
	LogicalInput      LogicalRole = "input"
	LogicalOutput     LogicalRole = "output"
	LogicalConstant   LogicalRole = "constant"
	LogicalBuffer     LogicalRole = "buffer"
	LogicalLogic      LogicalRole = "logic"
	LogicalArithmetic LogicalRole = "arithmetic"
	LogicalVoting     LogicalRole = "voting"
)

// Logical returns the logical role of kind k.
func (k Kind) Logical() LogicalRole {
	switch {
	case k == KindInput:
		return LogicalInput
	case k == KindOutput:
		return LogicalOutput
	case k == KindConstant:
		return LogicalConstant
	case k == KindINBUF, k == KindOUTBUF, k == KindTRIBUFF:
		return LogicalBuffer
	case k == KindARI1:
		return LogicalArithmetic
	case k.IsVoter():
		return LogicalVoting
	}
	return LogicalLogic
}
