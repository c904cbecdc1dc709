package fhd

import (
	"fmt"

	"github.com/jizhihang/fhd/hdist"
)

// AlphaAuto selects the default shape/spatial weight 1 - 2/(N+1), which
// balances the N shape comparisons against the N*(N-1)/2 spatial-relation
// comparisons so neither count dominates as N grows.
const AlphaAuto = -1.0

// DistanceConfig configures the distance between two descriptors.
type DistanceConfig struct {
	// Metric is the histogram distance metric. Default: hdist.L2.
	Metric hdist.Metric

	// Matching is the layer-matching strategy. Default: MatchDefault.
	Matching Strategy

	// Alpha weights the shape distance against the spatial-relation
	// distance. Must be in [0, 1], or AlphaAuto. Default: AlphaAuto.
	Alpha float64

	// NumWorkers for the optimal-matching permutation search.
	// 0 = one per CPU.
	NumWorkers int
}

// DefaultDistanceConfig returns the default comparison configuration.
func DefaultDistanceConfig() DistanceConfig {
	return DistanceConfig{
		Metric:   hdist.L2,
		Matching: MatchDefault,
		Alpha:    AlphaAuto,
	}
}

// Distance computes the weighted distance between two FHD descriptors:
// alpha*shape + (1-alpha)*spatial, with the shape and spatial terms
// produced under the configured matching strategy. Pure function of its
// inputs; both descriptors must have the same N and NumDirs.
func Distance(a, b *FHD, cfg DistanceConfig) (float64, error) {
	if a.N != b.N {
		return 0, fmt.Errorf("%w: %d vs %d layers", ErrSizeMismatch, a.N, b.N)
	}
	if a.NumDirs != b.NumDirs {
		return 0, fmt.Errorf("%w: %d vs %d directions", ErrSizeMismatch, a.NumDirs, b.NumDirs)
	}
	alpha := cfg.Alpha
	if alpha == AlphaAuto {
		alpha = 1 - 2/(float64(a.N)+1)
	} else if alpha < 0 || alpha > 1 {
		return 0, fmt.Errorf("%w: %g", ErrBadAlpha, alpha)
	}

	var (
		shape, spatial float64
		err            error
	)
	switch cfg.Matching {
	case MatchDefault:
		shape, err = identityShapeDistance(a, b, cfg.Metric)
		if err != nil {
			return 0, err
		}
		match := make([]int, a.N)
		for i := range match {
			match[i] = i
		}
		spatial, err = spatialDistance(a, b, match, cfg.Metric)
		if err != nil {
			return 0, err
		}

	case MatchGreedy:
		cost, cerr := shapeCost(a, b, cfg.Metric)
		if cerr != nil {
			return 0, cerr
		}
		// Greedy matching is direction-dependent; run it both ways and
		// keep the cheaper assignment to approximate symmetry.
		matchAB, costAB := greedyMatch(cost)
		matchBA, costBA := greedyMatch(cost.T())
		match := matchAB
		shape = costAB
		if costBA < costAB {
			match = invert(matchBA)
			shape = costBA
		}
		spatial, err = spatialDistance(a, b, match, cfg.Metric)
		if err != nil {
			return 0, err
		}

	case MatchOptimal:
		cost, cerr := shapeCost(a, b, cfg.Metric)
		if cerr != nil {
			return 0, cerr
		}
		match, total := optimalMatch(cost, cfg.NumWorkers)
		shape = total
		spatial, err = spatialDistance(a, b, match, cfg.Metric)
		if err != nil {
			return 0, err
		}

	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownMatching, int(cfg.Matching))
	}

	return alpha*shape + (1-alpha)*spatial, nil
}
