// Package hdist provides distance metrics between 1D histograms.
//
// Histograms are plain []float64 slices of equal length. Metrics form a
// closed set identified by the Metric type; textual names and their aliases
// are folded to a Metric by ParseMetric. Distances are computed on min-max
// normalized copies of the inputs unless normalization is disabled.
package hdist

import (
	"errors"
	"fmt"
	"strings"
)

// Metric identifies a histogram distance metric.
type Metric int

const (
	// L1 is the Manhattan distance (sum of absolute differences).
	L1 Metric = iota
	// L2 is the Euclidean distance.
	L2
	// Chi2 is the chi-squared distance with the 0/0 = 0 convention.
	Chi2
	// CEMD is the circular earth mover's distance. Recognized but not
	// implemented yet; requesting it returns ErrNotImplemented.
	CEMD
	// Jaccard is one minus the ratio of bucket-wise minima to maxima.
	Jaccard
)

var (
	// ErrUnknownMetric indicates a metric name that is not recognized.
	ErrUnknownMetric = errors.New("hdist: unknown metric")
	// ErrNotImplemented indicates a recognized metric with no implementation.
	ErrNotImplemented = errors.New("hdist: metric not implemented")
	// ErrEmptyHistogram indicates an empty input histogram.
	ErrEmptyHistogram = errors.New("hdist: histograms must not be empty")
	// ErrSizeMismatch indicates two histograms of different lengths.
	ErrSizeMismatch = errors.New("hdist: histograms must have the same length")
)

// aliases maps lowercase metric names to their canonical Metric.
var aliases = map[string]Metric{
	"l1":        L1,
	"manhattan": L1,
	"man":       L1,
	"l2":        L2,
	"euclidean": L2,
	"euc":       L2,
	"chi2":      Chi2,
	"cemd":      CEMD,
	"jaccard":   Jaccard,
}

// ParseMetric folds a metric name or alias to its Metric. Names are
// case-insensitive. Unknown names return ErrUnknownMetric.
func ParseMetric(name string) (Metric, error) {
	m, ok := aliases[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
	return m, nil
}

// String returns the canonical name of the metric.
func (m Metric) String() string {
	switch m {
	case L1:
		return "L1"
	case L2:
		return "L2"
	case Chi2:
		return "CHI2"
	case CEMD:
		return "CEMD"
	case Jaccard:
		return "jaccard"
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// Distance computes the distance between two 1D histograms under the given
// metric. Both histograms must be non-empty and of equal length.
//
// If normalize is true, each histogram is independently min-max normalized
// to [0, 1] before the metric is applied. A histogram whose values are all
// equal has zero range and carries no directional information; it
// normalizes to all zeros rather than dividing by zero.
func Distance(a, b []float64, metric Metric, normalize bool) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrEmptyHistogram
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrSizeMismatch, len(a), len(b))
	}
	switch metric {
	case L1, L2, Chi2, Jaccard:
	case CEMD:
		return 0, ErrNotImplemented
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownMetric, int(metric))
	}

	if normalize {
		a = minMaxNormalized(a)
		b = minMaxNormalized(b)
	}

	switch metric {
	case L1:
		return manhattan(a, b), nil
	case L2:
		return euclidean(a, b), nil
	case Chi2:
		return chiSquared(a, b), nil
	default: // Jaccard, by the validation above
		return jaccard(a, b), nil
	}
}
