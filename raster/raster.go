// Package raster provides the binary raster masks consumed by the force
// histogram kernel. A mask is a row-major byte grid where zero is
// background and any non-zero value is foreground.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"

	// Registered decode formats for LoadFile.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

var (
	// ErrBadDimensions indicates non-positive mask dimensions.
	ErrBadDimensions = errors.New("raster: mask dimensions must be positive")
	// ErrDecode indicates an image file that could not be decoded.
	ErrDecode = errors.New("raster: cannot decode image")
)

// Mask is a 2D binary raster. Pix holds one byte per pixel in row-major
// order (Pix[y*Width+x]); zero is background.
type Mask struct {
	Width  int
	Height int
	Pix    []uint8
}

// New returns an all-background mask of the given dimensions.
func New(width, height int) (Mask, error) {
	if width <= 0 || height <= 0 {
		return Mask{}, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	return Mask{Width: width, Height: height, Pix: make([]uint8, width*height)}, nil
}

// At reports whether the pixel at (x, y) is foreground.
func (m Mask) At(x, y int) bool {
	return m.Pix[y*m.Width+x] != 0
}

// Set marks the pixel at (x, y) as foreground or background.
func (m Mask) Set(x, y int, on bool) {
	if on {
		m.Pix[y*m.Width+x] = 0xff
	} else {
		m.Pix[y*m.Width+x] = 0
	}
}

// SameSize reports whether two masks have identical dimensions.
func (m Mask) SameSize(o Mask) bool {
	return m.Width == o.Width && m.Height == o.Height
}

// Equal reports whether two masks have identical dimensions and the same
// foreground pattern. Byte values are compared as binary, so 1 and 255 mark
// the same foreground.
func (m Mask) Equal(o Mask) bool {
	if !m.SameSize(o) {
		return false
	}
	for i := range m.Pix {
		if (m.Pix[i] != 0) != (o.Pix[i] != 0) {
			return false
		}
	}
	return true
}

// Points returns the coordinates of all foreground pixels in row-major
// order.
func (m Mask) Points() []image.Point {
	var pts []image.Point
	for y := 0; y < m.Height; y++ {
		row := m.Pix[y*m.Width : (y+1)*m.Width]
		for x, v := range row {
			if v != 0 {
				pts = append(pts, image.Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// Gray renders the mask as an 8-bit grayscale image with foreground at 255.
func (m Mask) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	for i, v := range m.Pix {
		if v != 0 {
			img.Pix[i] = 0xff
		}
	}
	return img
}

// FromImage binarizes an image: pixels whose luminance is at or above
// threshold become foreground.
func FromImage(img image.Image, threshold uint8) Mask {
	b := img.Bounds()
	m := Mask{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    make([]uint8, b.Dx()*b.Dy()),
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			if g.Y >= threshold {
				m.Pix[(y-b.Min.Y)*m.Width+(x-b.Min.X)] = 0xff
			}
		}
	}
	return m
}

// LoadFile decodes an image file (PNG, JPEG or BMP) and binarizes it with
// the given luminance threshold.
func LoadFile(path string, threshold uint8) (Mask, error) {
	f, err := os.Open(path)
	if err != nil {
		return Mask{}, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return Mask{}, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return FromImage(img, threshold), nil
}
