// Package force computes directional force histograms between binary
// raster masks.
//
// The histogram of a relative to b along D directions measures, for each
// angular bucket, the attraction exerted between foreground pixels of the
// two masks in that direction, weighted by 1/d^force where d is the pixel
// distance. Histogram(a, b) describes the spatial position of a relative
// to b; Histogram(a, a) describes the shape of a.
//
// The kernel evaluates the attraction integral directly over foreground
// pixel pairs, replacing the native raster-sweep routine the descriptors
// were originally computed with. Both formulations honor the same
// contract: D non-negative values, with bucket k covering directions
// around angle 2*pi*k/D.
package force

import (
	"errors"
	"fmt"
	"math"

	"github.com/jizhihang/fhd/internal/parallel"
	"github.com/jizhihang/fhd/raster"
)

var (
	// ErrShapeMismatch indicates masks of different dimensions.
	ErrShapeMismatch = errors.New("force: masks must have the same dimensions")
	// ErrBadNumDirs indicates a non-positive direction count.
	ErrBadNumDirs = errors.New("force: number of directions must be positive")
	// ErrBadForce indicates a negative attraction force.
	ErrBadForce = errors.New("force: attraction force must be >= 0")
	// ErrOverlapForce indicates a self-relation with attraction force >= 1,
	// whose integral diverges on overlapping rasters.
	ErrOverlapForce = errors.New("force: attraction force must be < 1 when both masks are equal")
)

// Histogram computes the force histogram of a relative to b along numDirs
// directions with the given attraction force.
//
// Both masks must have the same dimensions. A self-relation (a equal to b
// by foreground pattern, not by reference) requires force < 1.
func Histogram(a, b raster.Mask, numDirs int, force float64) ([]float64, error) {
	if !a.SameSize(b) {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrShapeMismatch, a.Width, a.Height, b.Width, b.Height)
	}
	if numDirs <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadNumDirs, numDirs)
	}
	if force < 0 {
		return nil, fmt.Errorf("%w: %g", ErrBadForce, force)
	}
	if force >= 1 && a.Equal(b) {
		return nil, fmt.Errorf("%w: force %g", ErrOverlapForce, force)
	}

	pa := a.Points()
	pb := b.Points()
	hist := make([]float64, numDirs)
	if len(pa) == 0 || len(pb) == 0 {
		return hist, nil
	}

	workers := parallel.NumWorkers(0)
	locals := make([][]float64, workers)
	parallel.Chunks(0, len(pa), workers, func(w, start, end int) {
		h := make([]float64, numDirs)
		for _, p := range pa[start:end] {
			for _, q := range pb {
				dx := float64(p.X - q.X)
				// Image rows grow downward; flip so angle 0 points right
				// and angles increase counterclockwise.
				dy := float64(q.Y - p.Y)
				if dx == 0 && dy == 0 {
					continue
				}
				weight := 1.0
				if force != 0 {
					weight = 1.0 / math.Pow(math.Hypot(dx, dy), force)
				}
				h[bucket(dx, dy, numDirs)] += weight
			}
		}
		locals[w] = h
	})

	for _, h := range locals {
		for k, v := range h {
			hist[k] += v
		}
	}
	return hist, nil
}

// bucket maps the direction of (dx, dy) to the nearest of numDirs angular
// buckets centered on 2*pi*k/numDirs. Centered buckets keep grid-aligned
// directions stable against rounding in the angle computation.
func bucket(dx, dy float64, numDirs int) int {
	ang := math.Atan2(dy, dx)
	if ang < 0 {
		ang += 2 * math.Pi
	}
	k := int(math.Round(ang * float64(numDirs) / (2 * math.Pi)))
	if k >= numDirs {
		k -= numDirs
	}
	return k
}
