package regress

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinear_ExactLine(t *testing.T) {
	xs := []float64{1, 2, 3, 4}
	ys := []float64{3, 5, 7, 9}
	f, ok := Linear(xs, ys)
	require.True(t, ok)
	require.Equal(t, 4, f.N)
	require.InDelta(t, 2.0, f.Slope, 1e-9)
	require.InDelta(t, 1.0, f.Intercept, 1e-9)
	require.InDelta(t, 1.0, f.R2, 1e-9)
	require.InDelta(t, 21.0, f.At(10), 1e-9)
}

func TestLinear_Degenerate(t *testing.T) {
	_, ok := Linear([]float64{1}, []float64{2})
	require.False(t, ok, "one point")

	_, ok = Linear([]float64{5, 5, 5}, []float64{1, 2, 3})
	require.False(t, ok, "constant x")

	_, ok = Linear([]float64{1, 2}, []float64{1})
	require.False(t, ok, "length mismatch")

	f, ok := Linear([]float64{1, 2, 3}, []float64{4, 4, 4})
	require.True(t, ok, "constant y still has a line")
	require.InDelta(t, 0, f.Slope, 1e-12)
	require.Equal(t, 1.0, f.R2)
}

func TestNormalize(t *testing.T) {
	z := Normalize([]float64{1, 2, 3})
	require.InDeltaSlice(t, []float64{-1, 0, 1}, z, 1e-12)

	require.Equal(t, []float64{0, 0}, Normalize([]float64{7, 7}))
	require.Empty(t, Normalize(nil))
}

func TestFirstComponent_Correlated(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ys := []float64{10, 20, 30, 40, 50}
	pc, err := FirstComponent(xs, ys)
	require.NoError(t, err)
	require.Len(t, pc, 5)

	z := Normalize(xs)
	for i := range pc {
		require.InDelta(t, math.Sqrt2*z[i], pc[i], 1e-9)
	}
	// larger inputs give larger scores
	for i := 1; i < len(pc); i++ {
		require.Greater(t, pc[i], pc[i-1])
	}
}

func TestFirstComponent_Errors(t *testing.T) {
	_, err := FirstComponent([]float64{1}, []float64{1})
	require.Error(t, err)
	_, err = FirstComponent([]float64{1, 2}, []float64{1})
	require.Error(t, err)
}
