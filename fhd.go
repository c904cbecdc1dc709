// Package fhd implements Force Histogram Decomposition (FHD) descriptors.
//
// An FHD descriptor represents a multi-layer shape (an image decomposed
// into N binary layers) as an upper-triangular matrix of directional force
// histograms: diagonal entries describe the shape of each layer, and
// off-diagonal entries describe the pairwise spatial relation between
// layers. Descriptors are compared by combining a shape distance and a
// spatial-relation distance under a layer-matching strategy.
//
// Basic usage:
//
//	desc, err := fhd.Compute(layers, fhd.DefaultConfig())
//	...
//	d, err := fhd.Distance(descA, descB, fhd.DefaultDistanceConfig())
package fhd

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/jizhihang/fhd/force"
	"github.com/jizhihang/fhd/internal/parallel"
	"github.com/jizhihang/fhd/raster"
)

// HistogramFunc computes one force histogram between two binary masks.
// force.Histogram satisfies it; an external kernel with the same contract
// can be plugged into Config.Histogram instead.
type HistogramFunc func(a, b raster.Mask, numDirs int, force float64) ([]float64, error)

// FHD is a Force Histogram Decomposition descriptor: N layers, each
// histogram spanning NumDirs directions. Only the upper triangle (row <=
// column) is stored; At derives below-diagonal entries by the
// swap-and-rotate rule. N and NumDirs are fixed after construction.
type FHD struct {
	N            int
	NumDirs      int
	ShapeForce   float64
	SpatialForce float64

	// hists holds the N*(N+1)/2 upper-triangular histograms row by row.
	hists [][]float64
}

// New builds a descriptor from raw upper-triangular histograms, ordered row
// by row: (0,0), (0,1), ..., (0,N-1), (1,1), ..., (N-1,N-1). There must be
// exactly n*(n+1)/2 histograms of identical non-zero length. The slices
// are retained, not copied.
func New(histograms [][]float64, n int, shapeForce, spatialForce float64) (*FHD, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNoLayers, n)
	}
	if err := validForces(shapeForce, spatialForce); err != nil {
		return nil, err
	}
	if len(histograms) != n*(n+1)/2 {
		return nil, fmt.Errorf("%w: got %d histograms for %d layers, want %d",
			ErrBadHistograms, len(histograms), n, n*(n+1)/2)
	}
	numDirs := len(histograms[0])
	if numDirs == 0 {
		return nil, fmt.Errorf("%w: empty histogram", ErrBadHistograms)
	}
	for k, h := range histograms {
		if len(h) != numDirs {
			return nil, fmt.Errorf("%w: histogram %d has length %d, want %d",
				ErrBadHistograms, k, len(h), numDirs)
		}
	}
	return &FHD{
		N:            n,
		NumDirs:      numDirs,
		ShapeForce:   shapeForce,
		SpatialForce: spatialForce,
		hists:        histograms,
	}, nil
}

// Config configures descriptor construction.
type Config struct {
	// NumDirs is the number of directions per histogram. Default: 180.
	NumDirs int

	// ShapeForce is the attraction force for diagonal (shape) histograms.
	// Must be in [0, 1). Default: 0.
	ShapeForce float64

	// SpatialForce is the attraction force for off-diagonal
	// (spatial-relation) histograms. Must be >= 0. Default: 0.
	SpatialForce float64

	// NumWorkers for the pairwise histogram computations.
	// 0 = one per CPU.
	NumWorkers int

	// Histogram is the kernel invoked per layer pair.
	// nil = force.Histogram.
	Histogram HistogramFunc
}

// DefaultConfig returns the default construction configuration.
func DefaultConfig() Config {
	return Config{NumDirs: 180}
}

// Compute builds an FHD descriptor for the given binary layers. The kernel
// runs once per layer pair (i, j) with i <= j; pairs are independent and
// are spread across workers.
func Compute(layers []raster.Mask, cfg Config) (*FHD, error) {
	n := len(layers)
	if n == 0 {
		return nil, ErrNoLayers
	}
	if cfg.NumDirs <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadNumDirs, cfg.NumDirs)
	}
	if err := validForces(cfg.ShapeForce, cfg.SpatialForce); err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if !layers[i].SameSize(layers[0]) {
			return nil, fmt.Errorf("%w: layer %d is %dx%d, layer 0 is %dx%d",
				ErrLayerShape, i, layers[i].Width, layers[i].Height,
				layers[0].Width, layers[0].Height)
		}
	}
	kernel := cfg.Histogram
	if kernel == nil {
		kernel = force.Histogram
	}

	type pair struct{ i, j int }
	pairs := make([]pair, 0, n*(n+1)/2)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			pairs = append(pairs, pair{i, j})
		}
	}

	hists := make([][]float64, len(pairs))
	errs := make([]error, len(pairs))
	parallel.For(0, len(pairs), cfg.NumWorkers, func(p int) {
		i, j := pairs[p].i, pairs[p].j
		f := cfg.SpatialForce
		if i == j {
			f = cfg.ShapeForce
		}
		h, err := kernel(layers[i], layers[j], cfg.NumDirs, f)
		if err != nil {
			errs[p] = fmt.Errorf("fhd: histogram (%d, %d): %w", i, j, err)
			return
		}
		if len(h) != cfg.NumDirs {
			errs[p] = fmt.Errorf("%w: kernel returned %d values for (%d, %d), want %d",
				ErrBadHistograms, len(h), i, j, cfg.NumDirs)
			return
		}
		hists[p] = h
	})
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return &FHD{
		N:            n,
		NumDirs:      cfg.NumDirs,
		ShapeForce:   cfg.ShapeForce,
		SpatialForce: cfg.SpatialForce,
		hists:        hists,
	}, nil
}

// At returns the histogram for the layer pair (i, j). For i <= j this is
// the stored histogram (not a copy). For i > j it is a fresh copy of the
// stored (j, i) histogram rotated by half a turn: the relation seen in
// reversed layer order is the 180-degree rotation of the forward one.
func (d *FHD) At(i, j int) []float64 {
	if i < 0 || j < 0 || i >= d.N || j >= d.N {
		panic(fmt.Sprintf("fhd: layer index (%d, %d) out of range for %d layers", i, j, d.N))
	}
	if i > j {
		return roll(d.hists[triIndex(d.N, j, i)], d.NumDirs/2)
	}
	return d.hists[triIndex(d.N, i, j)]
}

// Shape returns the shape histogram of layer i, i.e. At(i, i).
func (d *FHD) Shape(i int) []float64 {
	return d.At(i, i)
}

// Normalize rescales every stored histogram in place so that its maximum
// becomes 1. The whole descriptor is checked first: if any histogram is
// all zeros, Normalize reports ErrDegenerateHistogram and mutates nothing.
// Not safe to call concurrently with reads of the same descriptor.
func (d *FHD) Normalize() error {
	for i := 0; i < d.N; i++ {
		for j := i; j < d.N; j++ {
			if floats.Max(d.hists[triIndex(d.N, i, j)]) == 0 {
				return fmt.Errorf("%w: (%d, %d)", ErrDegenerateHistogram, i, j)
			}
		}
	}
	for _, h := range d.hists {
		floats.Scale(1/floats.Max(h), h)
	}
	return nil
}

// validForces checks the attraction-force preconditions shared by Compute,
// New and Load. The shape force parameterizes a self-relation, whose
// integral diverges for forces >= 1.
func validForces(shapeForce, spatialForce float64) error {
	if shapeForce < 0 || shapeForce >= 1 {
		return fmt.Errorf("%w: shape force %g", ErrBadForce, shapeForce)
	}
	if spatialForce < 0 {
		return fmt.Errorf("%w: spatial force %g", ErrBadForce, spatialForce)
	}
	return nil
}

// triIndex maps (i, j) with i <= j to its row-major upper-triangle offset.
func triIndex(n, i, j int) int {
	return i*n - i*(i-1)/2 + (j - i)
}

// roll returns a copy of h circularly shifted right by shift buckets:
// out[(k+shift) mod D] = h[k].
func roll(h []float64, shift int) []float64 {
	n := len(h)
	out := make([]float64, n)
	shift = ((shift % n) + n) % n
	for k, v := range h {
		out[(k+shift)%n] = v
	}
	return out
}
