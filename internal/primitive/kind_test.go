package primitive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKind(t *testing.T) {
	for _, name := range []string{"INBUF", "OUTBUF", "TRIBUFF", "CFG1", "CFG2", "CFG3", "CFG4", "ARI1"} {
		k, ok := ParseKind(name)
		assert.True(t, ok, name)
		assert.Equal(t, name, k.String())
	}
	for _, name := range []string{"input", "AND", "OR", "cfg1", "LUT4", ""} {
		_, ok := ParseKind(name)
		assert.False(t, ok, name)
	}
}

func TestKind_Shape(t *testing.T) {
	testCases := []struct {
		kind    Kind
		outputs int
		minIn   int
		maxIn   int
		hasInit bool
		logical LogicalRole
	}{
		{KindINBUF, 1, 1, 1, false, LogicalBuffer},
		{KindOUTBUF, 1, 1, 1, false, LogicalBuffer},
		{KindTRIBUFF, 1, 2, 2, false, LogicalBuffer},
		{KindCFG3, 1, 1, 4, true, LogicalLogic},
		{KindARI1, 3, 5, 5, true, LogicalArithmetic},
		{KindAND, 1, 0, 0, false, LogicalVoting},
		{KindInput, 0, 0, 0, false, LogicalInput},
		{KindOutput, 0, 0, 0, false, LogicalOutput},
		{KindConstant, 0, 0, 0, false, LogicalConstant},
	}
	for _, tc := range testCases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			assert.Equal(t, tc.outputs, tc.kind.OutputCount())
			lo, hi := tc.kind.InputRange()
			assert.Equal(t, tc.minIn, lo)
			assert.Equal(t, tc.maxIn, hi)
			assert.Equal(t, tc.hasInit, tc.kind.HasInit())
			assert.Equal(t, tc.logical, tc.kind.Logical())
		})
	}
}

func TestKind_WordWidth(t *testing.T) {
	assert.Equal(t, 2, KindCFG1.WordWidth(1))
	assert.Equal(t, 4, KindCFG1.WordWidth(2))
	assert.Equal(t, 16, KindCFG4.WordWidth(4))
	assert.Equal(t, 20, KindARI1.WordWidth(5))
	assert.Equal(t, 0, KindINBUF.WordWidth(1))
}

func TestOutputRole(t *testing.T) {
	assert.Equal(t, RoleY, OutputRole(KindARI1, 0))
	assert.Equal(t, RoleS, OutputRole(KindARI1, 1))
	assert.Equal(t, RoleFCO, OutputRole(KindARI1, 2))
	assert.Equal(t, RolePlain, OutputRole(KindCFG2, 0))
	assert.Equal(t, "FCO", RoleFCO.String())
	assert.Equal(t, "plain", RolePlain.String())
}
