package force

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jizhihang/fhd/raster"
)

func singlePixel(w, h, x, y int) raster.Mask {
	m, _ := raster.New(w, h)
	m.Set(x, y, true)
	return m
}

func TestHistogramSinglePair(t *testing.T) {
	// A strictly to the right of B, same row: all force in bucket 0.
	a := singlePixel(5, 5, 3, 2)
	b := singlePixel(5, 5, 1, 2)

	h, err := Histogram(a, b, 4, 0)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 0, 0, 0}, h, 1e-12)
}

func TestHistogramReversalIsHalfRotation(t *testing.T) {
	// Swapping operands turns direction theta into theta + pi, which is a
	// rotation by numDirs/2 buckets.
	a := singlePixel(5, 5, 3, 2)
	b := singlePixel(5, 5, 1, 2)

	ab, err := Histogram(a, b, 4, 0)
	require.NoError(t, err)
	ba, err := Histogram(b, a, 4, 0)
	require.NoError(t, err)

	for k := range ab {
		assert.InDelta(t, ab[k], ba[(k+2)%4], 1e-12, "bucket %d", k)
	}
}

func TestHistogramDiagonalPair(t *testing.T) {
	// B at (0, 1), A at (1, 0): A is up-right of B, angle pi/4.
	a := singlePixel(3, 3, 1, 0)
	b := singlePixel(3, 3, 0, 1)

	h, err := Histogram(a, b, 8, 1)
	require.NoError(t, err)
	want := make([]float64, 8)
	want[1] = 1 / math.Sqrt2
	assert.InDeltaSlice(t, want, h, 1e-12)
}

func TestHistogramForceWeighting(t *testing.T) {
	// Distance 2 along bucket 0; weight is 1/2^force.
	a := singlePixel(5, 5, 3, 2)
	b := singlePixel(5, 5, 1, 2)

	h, err := Histogram(a, b, 4, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 1/math.Sqrt(2), h[0], 1e-12)
}

func TestHistogramShapeSymmetry(t *testing.T) {
	// A shape histogram pairs every (p, q) with (q, p), so opposite
	// buckets carry the same mass.
	m, _ := raster.New(6, 6)
	for y := 1; y < 4; y++ {
		for x := 1; x < 4; x++ {
			m.Set(x, y, true)
		}
	}

	h, err := Histogram(m, m, 8, 0.5)
	require.NoError(t, err)
	for k := 0; k < 4; k++ {
		assert.InDelta(t, h[k], h[k+4], 1e-12, "bucket %d vs %d", k, k+4)
	}
}

func TestHistogramEmptyMask(t *testing.T) {
	a, _ := raster.New(4, 4)
	b := singlePixel(4, 4, 1, 1)
	h, err := Histogram(a, b, 8, 0)
	require.NoError(t, err)
	assert.Equal(t, make([]float64, 8), h)
}

func TestHistogramValidation(t *testing.T) {
	a := singlePixel(4, 4, 1, 1)
	b := singlePixel(5, 4, 1, 1)

	_, err := Histogram(a, b, 8, 0)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = Histogram(a, a, 0, 0)
	assert.ErrorIs(t, err, ErrBadNumDirs)

	_, err = Histogram(a, a, 8, -0.5)
	assert.ErrorIs(t, err, ErrBadForce)

	// Self-relation by value, not by reference.
	aCopy := singlePixel(4, 4, 1, 1)
	_, err = Histogram(a, aCopy, 8, 1)
	assert.ErrorIs(t, err, ErrOverlapForce)

	// Distinct masks may use force >= 1.
	c := singlePixel(4, 4, 2, 2)
	_, err = Histogram(a, c, 8, 2)
	assert.NoError(t, err)
}

func BenchmarkHistogram(b *testing.B) {
	m, _ := raster.New(32, 32)
	n, _ := raster.New(32, 32)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			m.Set(x, y, true)
			n.Set(x+16, y+16, true)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Histogram(m, n, 180, 0)
	}
}
