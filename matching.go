package fhd

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/jizhihang/fhd/hdist"
	"github.com/jizhihang/fhd/internal/parallel"
)

// Strategy selects how layers of two descriptors are matched before their
// distance is computed.
type Strategy int

const (
	// MatchDefault compares layers in index order, without any search.
	MatchDefault Strategy = iota
	// MatchGreedy assigns each layer of A to its nearest still-unused
	// layer of B. Both directions are tried and the cheaper one kept.
	MatchGreedy
	// MatchOptimal searches all N! layer permutations for the one with
	// the smallest total shape distance. Factorial cost: unusable beyond
	// small layer counts (roughly N <= 10).
	MatchOptimal
)

// ParseStrategy folds a matching-strategy name ("default", "greedy" or
// "optimal", case-insensitive) to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "default":
		return MatchDefault, nil
	case "greedy":
		return MatchGreedy, nil
	case "optimal":
		return MatchOptimal, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMatching, name)
}

// String returns the canonical name of the strategy.
func (s Strategy) String() string {
	switch s {
	case MatchDefault:
		return "default"
	case MatchGreedy:
		return "greedy"
	case MatchOptimal:
		return "optimal"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// shapeCost builds the N x N matrix of pairwise shape distances between
// layers of a and b.
func shapeCost(a, b *FHD, metric hdist.Metric) (*mat.Dense, error) {
	n := a.N
	cost := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d, err := hdist.Distance(a.Shape(i), b.Shape(j), metric, true)
			if err != nil {
				return nil, err
			}
			cost.Set(i, j, d)
		}
	}
	return cost, nil
}

// greedyMatch assigns each row of cost to its cheapest still-unused column,
// rows in order. Ties take the lowest column index. Greedy assignment is
// not globally optimal and not symmetric in its operands.
func greedyMatch(cost mat.Matrix) ([]int, float64) {
	n, _ := cost.Dims()
	match := make([]int, n)
	used := make([]bool, n)
	var total float64
	for i := 0; i < n; i++ {
		best := -1
		var bestCost float64
		for j := 0; j < n; j++ {
			if used[j] {
				continue
			}
			if c := cost.At(i, j); best < 0 || c < bestCost {
				best, bestCost = j, c
			}
		}
		match[i] = best
		used[best] = true
		total += bestCost
	}
	return match, total
}

// optimalMatch enumerates every permutation of columns in lexicographic
// order and returns the one minimizing the total cost. Ties keep the first
// permutation encountered, so the result is the lexicographically smallest
// optimum. The permutation space is partitioned by leading element across
// workers; the reduction over partitions preserves the same tie-break.
func optimalMatch(cost *mat.Dense, workers int) ([]int, float64) {
	n, _ := cost.Dims()
	if n == 1 {
		return []int{0}, cost.At(0, 0)
	}

	bestPerms := make([][]int, n)
	bestCosts := make([]float64, n)
	parallel.For(0, n, workers, func(first int) {
		perm := make([]int, n)
		used := make([]bool, n)
		perm[0] = first
		used[first] = true

		var best []int
		bestCost := 0.0
		var rec func(depth int, partial float64)
		rec = func(depth int, partial float64) {
			if depth == n {
				if best == nil || partial < bestCost {
					best = append([]int(nil), perm...)
					bestCost = partial
				}
				return
			}
			for j := 0; j < n; j++ {
				if used[j] {
					continue
				}
				perm[depth] = j
				used[j] = true
				rec(depth+1, partial+cost.At(depth, j))
				used[j] = false
			}
		}
		rec(1, cost.At(0, first))

		bestPerms[first] = best
		bestCosts[first] = bestCost
	})

	best := bestPerms[0]
	bestCost := bestCosts[0]
	for f := 1; f < n; f++ {
		if bestCosts[f] < bestCost {
			best, bestCost = bestPerms[f], bestCosts[f]
		}
	}
	return best, bestCost
}

// invert turns a bijection A->B into the corresponding B->A bijection.
func invert(match []int) []int {
	inv := make([]int, len(match))
	for i, j := range match {
		inv[j] = i
	}
	return inv
}

// identityShapeDistance sums the shape distances of same-index layers.
func identityShapeDistance(a, b *FHD, metric hdist.Metric) (float64, error) {
	var total float64
	for i := 0; i < a.N; i++ {
		d, err := hdist.Distance(a.Shape(i), b.Shape(i), metric, true)
		if err != nil {
			return 0, err
		}
		total += d
	}
	return total, nil
}

// spatialDistance sums the spatial-relation distances of all A-pairs (i, j)
// with i < j against B's histograms under the given matching. B is indexed
// through At, which applies the swap-and-rotate rule whenever the matching
// reverses a pair's order.
func spatialDistance(a, b *FHD, match []int, metric hdist.Metric) (float64, error) {
	var total float64
	for i := 0; i < a.N; i++ {
		for j := i + 1; j < a.N; j++ {
			d, err := hdist.Distance(a.At(i, j), b.At(match[i], match[j]), metric, true)
			if err != nil {
				return 0, err
			}
			total += d
		}
	}
	return total, nil
}
