package cluster

import "errors"

var (
	// ErrNilSampleSet indicates a nil sample set at construction.
	ErrNilSampleSet = errors.New("cluster: sample set is nil")

	// ErrNotPopulated indicates a sample set without generated coordinates.
	ErrNotPopulated = errors.New("cluster: sample set has no coordinates")

	// ErrClusterCount indicates a cluster count outside (0, M).
	ErrClusterCount = errors.New("cluster: cluster count out of range")

	// ErrNotDetected guards accessors called before Detect has run.
	ErrNotDetected = errors.New("cluster: clusters not detected yet")

	// ErrDimensions indicates a query point of the wrong dimension.
	ErrDimensions = errors.New("cluster: dimension mismatch")

	// ErrOutOfRange indicates a sample index outside [0, M).
	ErrOutOfRange = errors.New("cluster: sample index out of range")

	// ErrShape indicates a persisted record whose centroid or membership
	// shape does not match the clusterer.
	ErrShape = errors.New("cluster: record shape mismatch")
)
