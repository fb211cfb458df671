package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryOp_Apply(t *testing.T) {
	testcases := []struct {
		op       BinaryOp
		a, b     float64
		expected float64
	}{
		{OpAdd, 6, 3, 9},
		{OpSub, 6, 3, 3},
		{OpMul, 6, 3, 18},
		{OpDiv, 6, 3, 2},
	}
	for _, tc := range testcases {
		t.Run(tc.op.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.op.Apply(tc.a, tc.b))
			assert.Equal(t, tc.expected, Swap(tc.op).Apply(tc.b, tc.a))
		})
	}
	require.Equal(t, "unknown", _opMax.String())
	require.Panics(t, func() { _opMax.Apply(1, 2) })
}

func TestSwap_Twice(t *testing.T) {
	op := Swap(Swap(OpSub))
	require.Equal(t, OpSub, op)
	require.Equal(t, float64(1), op.Apply(3, 2))
}

func TestSwapOperands(t *testing.T) {
	require.Nil(t, SwapOperands(nil))

	ops := DefaultOperators()
	swapped := SwapOperands(ops)
	require.Len(t, swapped, len(ops))
	require.Equal(t, float64(-1), swapped['-'].Apply(3, 2))
	require.Equal(t, float64(1), ops['-'].Apply(3, 2))

	prefixOps := DefaultPrefixOperators()
	require.Equal(t, float64(0.5), prefixOps['/'].Apply(4, 2))
}
