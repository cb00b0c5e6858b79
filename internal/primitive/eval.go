package primitive

import (
	"fmt"

	"github.com/specialistvlad/gatesim/internal/bitvec"
)

// ARI1Width is the configuration word width of an ARI1: a 16 entry LUT,
// then a 2-bit generate selector, then a 2-bit propagate selector.
const ARI1Width = 20

// ARI1Result holds the three ARI1 outputs.
type ARI1Result struct {
	Y   bool
	S   bool
	FCO bool
}

// EvalCFG reads the LUT word at the address formed by inputs, the
// last-declared input being the most significant address bit.
func EvalCFG(word bitvec.Word, inputs []bool) bool {
	return word.Lookup(inputs...)
}

// EvalARI1 decodes an ARI1. Inputs are given in declared order a, d, c,
// b followed by the carry-in.
func EvalARI1(word bitvec.Word, a, d, c, b, fci bool) ARI1Result {
	lut := word.Slice(0, 16)
	y := lut.Bit(bitvec.IndexMSBFirst(a, d, c, b))
	f0 := lut.Bit(bitvec.IndexMSBFirst(false, d, c, b))
	f1 := lut.Bit(bitvec.IndexMSBFirst(true, d, c, b))

	var g bool
	switch word.Slice(16, 18).Uint() {
	case 0b00:
		g = false
	case 0b01:
		g = f0
	case 0b10:
		g = true
	case 0b11:
		g = f1
	}

	var p bool
	switch word.Slice(18, 20).Uint() {
	case 0b00:
		p = false
	case 0b01:
		p = y
	default:
		p = true
	}

	fco := fci
	if !p {
		fco = g
	}
	return ARI1Result{Y: y, S: y != fci, FCO: fco}
}

// EvalTRIBUFF drives d when enabled. A disabled buffer reads as 0.
func EvalTRIBUFF(d, e bool) bool {
	return d && e
}

// Vote evaluates a voter gate over its inputs.
func Vote(k Kind, inputs []bool) bool {
	switch k {
	case KindAND:
		for _, in := range inputs {
			if !in {
				return false
			}
		}
		return len(inputs) > 0
	case KindOR:
		for _, in := range inputs {
			if in {
				return true
			}
		}
		return false
	}
	panic(fmt.Sprintf("primitive: %s is not a voter", k))
}

// Eval computes every output of an instance from its inputs in declared
// order. The result is indexed by output role.
func Eval(k Kind, word bitvec.Word, inputs []bool) (map[Role]bool, error) {
	lo, hi := k.InputRange()
	if len(inputs) < lo || len(inputs) > hi {
		return nil, fmt.Errorf("%s takes %d..%d inputs, got %d", k, lo, hi, len(inputs))
	}
	if want := k.WordWidth(len(inputs)); want != word.Width() {
		return nil, fmt.Errorf("%s with %d inputs needs a %d-bit word, got %d", k, len(inputs), want, word.Width())
	}

	switch {
	case k == KindINBUF, k == KindOUTBUF:
		return map[Role]bool{RolePlain: inputs[0]}, nil
	case k == KindTRIBUFF:
		return map[Role]bool{RolePlain: EvalTRIBUFF(inputs[0], inputs[1])}, nil
	case k.IsCFG():
		return map[Role]bool{RolePlain: EvalCFG(word, inputs)}, nil
	case k == KindARI1:
		r := EvalARI1(word, inputs[0], inputs[1], inputs[2], inputs[3], inputs[4])
		return map[Role]bool{RoleY: r.Y, RoleS: r.S, RoleFCO: r.FCO}, nil
	}
	return nil, fmt.Errorf("%s cannot be evaluated as an instance", k)
}
