package fhd

import "errors"

var (
	// ErrNoLayers indicates a descriptor build with no input layers.
	ErrNoLayers = errors.New("fhd: at least one layer is required")
	// ErrLayerShape indicates input layers of differing dimensions.
	ErrLayerShape = errors.New("fhd: all layers must have the same dimensions")
	// ErrBadNumDirs indicates a non-positive direction count.
	ErrBadNumDirs = errors.New("fhd: number of directions must be positive")
	// ErrBadForce indicates an out-of-range attraction force.
	ErrBadForce = errors.New("fhd: attraction forces must be >= 0, and < 1 for shapes")
	// ErrSizeMismatch indicates two descriptors that cannot be compared.
	ErrSizeMismatch = errors.New("fhd: descriptors must have the same number of layers and directions")
	// ErrUnknownMatching indicates an unrecognized matching strategy.
	ErrUnknownMatching = errors.New("fhd: unknown matching strategy")
	// ErrBadAlpha indicates a shape/spatial weight outside [0, 1].
	ErrBadAlpha = errors.New("fhd: alpha must be in [0, 1]")
	// ErrDegenerateHistogram indicates an all-zero histogram that cannot be
	// rescaled by its maximum.
	ErrDegenerateHistogram = errors.New("fhd: cannot normalize an all-zero histogram")
	// ErrBadDump indicates a malformed serialized descriptor.
	ErrBadDump = errors.New("fhd: malformed descriptor dump")
	// ErrBadHistograms indicates raw histograms that do not form an upper
	// triangle of uniform width.
	ErrBadHistograms = errors.New("fhd: histograms must form an upper triangle of uniform length")
)
