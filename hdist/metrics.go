package hdist

import "gonum.org/v1/gonum/floats"

// manhattan computes the L1 distance.
// D(a, b) = sum(|a_k - b_k|)
func manhattan(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

// euclidean computes the L2 distance.
// D(a, b) = sqrt(sum((a_k - b_k)^2))
func euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// chiSquared computes the chi-squared distance.
// D(a, b) = sum((a_k - b_k)^2 / (a_k + b_k))
// Buckets with a zero denominator contribute zero (the 0/0 = 0 convention).
func chiSquared(a, b []float64) float64 {
	var sum float64
	for k := range a {
		denom := a[k] + b[k]
		if denom == 0 {
			continue
		}
		d := a[k] - b[k]
		sum += d * d / denom
	}
	return sum
}

// jaccard computes the Jaccard distance.
// D(a, b) = 1 - sum(min(a_k, b_k)) / sum(max(a_k, b_k))
// Two all-zero histograms are considered identical (distance 0).
func jaccard(a, b []float64) float64 {
	var minSum, maxSum float64
	for k := range a {
		if a[k] < b[k] {
			minSum += a[k]
			maxSum += b[k]
		} else {
			minSum += b[k]
			maxSum += a[k]
		}
	}
	if maxSum == 0 {
		return 0
	}
	return 1 - minSum/maxSum
}

// minMaxNormalized returns a copy of a rescaled to [0, 1].
// A zero-range histogram normalizes to all zeros.
func minMaxNormalized(a []float64) []float64 {
	lo, hi := floats.Min(a), floats.Max(a)
	out := make([]float64, len(a))
	if hi == lo {
		return out
	}
	rng := hi - lo
	for k, v := range a {
		out[k] = (v - lo) / rng
	}
	return out
}
