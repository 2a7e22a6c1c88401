package polar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHardDecision(t *testing.T) {
	dst := make([]uint8, 4)
	hardDecision(dst, []float64{0.5, -0.5, 0, -3})
	require.Equal(t, []uint8{0, 1, 0, 1}, dst)
}

func TestSingleParityCheck(t *testing.T) {
	cases := []struct {
		llr  []float64
		want []uint8
	}{
		// Parity already even, nothing to fix.
		{[]float64{-5, -5, 2, 3}, []uint8{1, 1, 0, 0}},
		// Odd parity, least reliable position flipped to 0.
		{[]float64{-5, 5, 5, 5}, []uint8{0, 0, 0, 0}},
		{[]float64{2, -0.5, 3, 4}, []uint8{0, 0, 0, 0}},
		// Odd parity, least reliable position flipped to 1.
		{[]float64{3, -2, 1, 4}, []uint8{0, 1, 1, 0}},
	}
	for _, c := range cases {
		dst := make([]uint8, len(c.llr))
		singleParityCheck(dst, c.llr)
		require.Equal(t, c.want, dst, "llr %v", c.llr)
	}
}

func TestRepetition(t *testing.T) {
	dst := make([]uint8, 3)
	repetition(dst, []float64{1, 2, -0.5})
	require.Equal(t, []uint8{0, 0, 0}, dst)

	repetition(dst, []float64{-1, -2, 0.5})
	require.Equal(t, []uint8{1, 1, 1}, dst)

	// A zero sum decides 0.
	dst2 := make([]uint8, 2)
	repetition(dst2, []float64{1, -1})
	require.Equal(t, []uint8{0, 0}, dst2)
}

func TestCheckLLR(t *testing.T) {
	dst := make([]float64, 2)
	checkLLR(dst, []float64{3, -4, -1, 2})
	require.Equal(t, []float64{-1, -2}, dst)
}

func TestUpdateLLR(t *testing.T) {
	dst := make([]float64, 2)
	updateLLR(dst, []float64{1, 2, 3, 4}, []uint8{1, 0})
	require.Equal(t, []float64{2, 6}, dst)
}

func TestCombineBits(t *testing.T) {
	dst := make([]uint8, 4)
	combineBits(dst, []uint8{1, 0}, []uint8{1, 1})
	require.Equal(t, []uint8{0, 1, 1, 1}, dst)
}

func TestGRepetition(t *testing.T) {
	// All-ones last chunk: stride sums hard-decided, tiled over both chunks.
	dst := make([]uint8, 8)
	gRepetition(dst, []float64{1, -1, 2, -2, 1, -1, 2, -2}, 2, 1)
	require.Equal(t, []uint8{0, 1, 0, 1, 0, 1, 0, 1}, dst)

	// SPC last chunk: the stride sums [-4,10,10,10] decide [1,0,0,0] and the
	// parity fixup flips the weak position back to 0.
	gRepetition(dst, []float64{5, 5, 5, 5, -9, 5, 5, 5}, 2, 0)
	require.Equal(t, []uint8{0, 0, 0, 0, 0, 0, 0, 0}, dst)
}

func TestRGParity(t *testing.T) {
	// Each stride across the two chunks is decided as a parity check pair.
	dst := make([]uint8, 4)
	rgParity(dst, []float64{5, -5, -1, -4}, 2)
	require.Equal(t, []uint8{0, 1, 0, 1}, dst)
}
