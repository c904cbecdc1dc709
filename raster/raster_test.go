package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m, err := New(4, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, m.Width)
	assert.Equal(t, 3, m.Height)
	assert.Len(t, m.Pix, 12)

	_, err = New(0, 3)
	assert.ErrorIs(t, err, ErrBadDimensions)
	_, err = New(4, -1)
	assert.ErrorIs(t, err, ErrBadDimensions)
}

func TestSetAt(t *testing.T) {
	m, err := New(3, 3)
	require.NoError(t, err)
	m.Set(1, 2, true)
	assert.True(t, m.At(1, 2))
	assert.False(t, m.At(2, 1))
	m.Set(1, 2, false)
	assert.False(t, m.At(1, 2))
}

func TestEqualIgnoresByteValues(t *testing.T) {
	a, _ := New(2, 2)
	b, _ := New(2, 2)
	a.Pix[3] = 0xff
	b.Pix[3] = 1 // different byte, same foreground
	assert.True(t, a.Equal(b))

	b.Pix[0] = 0xff
	assert.False(t, a.Equal(b))

	c, _ := New(2, 3)
	assert.False(t, a.Equal(c))
}

func TestPoints(t *testing.T) {
	m, _ := New(3, 2)
	m.Set(2, 0, true)
	m.Set(0, 1, true)
	pts := m.Points()
	require.Len(t, pts, 2)
	assert.Equal(t, image.Point{X: 2, Y: 0}, pts[0])
	assert.Equal(t, image.Point{X: 0, Y: 1}, pts[1])
}

func TestFromImageThreshold(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 1))
	img.SetGray(0, 0, color.Gray{Y: 0x7f})
	img.SetGray(1, 0, color.Gray{Y: 0x80})
	m := FromImage(img, 0x80)
	assert.False(t, m.At(0, 0))
	assert.True(t, m.At(1, 0))
}

func TestGrayRoundTrip(t *testing.T) {
	m, _ := New(4, 4)
	m.Set(1, 1, true)
	m.Set(3, 2, true)
	back := FromImage(m.Gray(), 0x80)
	assert.True(t, m.Equal(back))
}

func TestRescaleKeepsBinary(t *testing.T) {
	m, _ := New(4, 4)
	// Foreground block in the upper-left quadrant.
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			m.Set(x, y, true)
		}
	}
	out, err := m.Rescale(8, 8)
	require.NoError(t, err)
	assert.Equal(t, 8, out.Width)
	assert.Equal(t, 8, out.Height)
	for _, v := range out.Pix {
		assert.True(t, v == 0 || v == 0xff, "pixel value %d is not binary", v)
	}
	assert.True(t, out.At(0, 0))
	assert.False(t, out.At(7, 7))

	_, err = m.Rescale(0, 8)
	assert.ErrorIs(t, err, ErrBadDimensions)
}
