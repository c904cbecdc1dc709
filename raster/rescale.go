package raster

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Rescale resamples the mask to the given dimensions with nearest-neighbor
// interpolation, which keeps the result strictly binary.
func (m Mask) Rescale(width, height int) (Mask, error) {
	if width <= 0 || height <= 0 {
		return Mask{}, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	if width == m.Width && height == m.Height {
		out := Mask{Width: width, Height: height, Pix: make([]uint8, len(m.Pix))}
		copy(out.Pix, m.Pix)
		return out, nil
	}
	src := m.Gray()
	dst := image.NewGray(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return FromImage(dst, 0x80), nil
}
