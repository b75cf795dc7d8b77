package subspace

import "errors"

var (
	// ErrNilFunctional indicates a nil QoI functional at construction.
	ErrNilFunctional = errors.New("subspace: functional is nil")

	// ErrNilSampleSet indicates a nil sample set at construction.
	ErrNilSampleSet = errors.New("subspace: sample set is nil")

	// ErrEigenCount indicates a number of eigenvalues of interest outside
	// [1, m].
	ErrEigenCount = errors.New("subspace: eigenvalue count out of range")

	// ErrNotEstimated guards operations that need an eigendecomposition
	// (Partition, accessors) before Estimate has run.
	ErrNotEstimated = errors.New("subspace: eigendecomposition not computed yet")

	// ErrNotPartitioned guards active-subspace projections before Partition.
	ErrNotPartitioned = errors.New("subspace: active subspace not partitioned yet")

	// ErrDimension indicates an active dimension outside [1, m].
	ErrDimension = errors.New("subspace: active dimension out of range")

	// ErrReplicates indicates a non-positive bootstrap replicate count.
	ErrReplicates = errors.New("subspace: replicate count must be > 0")

	// ErrNilMatrix indicates a nil matrix argument.
	ErrNilMatrix = errors.New("subspace: matrix is nil")

	// ErrNilGradients indicates a nil gradient matrix argument.
	ErrNilGradients = errors.New("subspace: gradient matrix is nil")

	// ErrGradientShape indicates a gradient row or matrix whose width does
	// not match the sample dimension.
	ErrGradientShape = errors.New("subspace: gradient has wrong shape")

	// ErrEigenFailed indicates the symmetric eigensolver did not converge.
	ErrEigenFailed = errors.New("subspace: eigendecomposition failed")

	// ErrSVDFailed indicates the singular-value decomposition used for the
	// subspace distance did not converge.
	ErrSVDFailed = errors.New("subspace: svd failed to converge")
)
