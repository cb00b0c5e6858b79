package hcl

import (
	"fmt"
	"math/big"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// InputValueError is returned when a simulation input is not a boolean.
type InputValueError struct {
	Net   string
	Value string
}

func (e *InputValueError) Error() string {
	return fmt.Sprintf("input %q: %s is not a bit; use true, false, 0 or 1", e.Net, e.Value)
}

// decodeInputs evaluates the inputs attribute of a simulation block.
func decodeInputs(sb *simulationBlock) (map[string]bool, error) {
	val, diags := sb.Inputs.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() || !val.IsWhollyKnown() {
		return nil, fmt.Errorf("inputs must be a known object")
	}
	ty := val.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("inputs must be an object, got %s", ty.FriendlyName())
	}

	inputs := make(map[string]bool)
	for net, v := range val.AsValueMap() {
		level, err := toBit(v)
		if err != nil {
			return nil, &InputValueError{Net: net, Value: describe(v)}
		}
		inputs[net] = level
	}
	return inputs, nil
}

// toBit accepts a bool, the numbers 0 and 1, or anything cty converts to
// a bool ("true", "false").
func toBit(v cty.Value) (bool, error) {
	if v.IsNull() {
		return false, fmt.Errorf("null")
	}
	if v.Type() == cty.Number {
		bf := v.AsBigFloat()
		switch {
		case bf.Cmp(big.NewFloat(0)) == 0:
			return false, nil
		case bf.Cmp(big.NewFloat(1)) == 0:
			return true, nil
		}
		return false, fmt.Errorf("number out of range")
	}
	b, err := convert.Convert(v, cty.Bool)
	if err != nil {
		return false, err
	}
	return b.True(), nil
}

func describe(v cty.Value) string {
	switch {
	case v.IsNull():
		return "null"
	case v.Type() == cty.String:
		return fmt.Sprintf("%q", v.AsString())
	case v.Type() == cty.Number:
		return v.AsBigFloat().Text('f', -1)
	}
	return v.Type().FriendlyName()
}
