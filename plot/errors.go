package plot

import "errors"

var (
	// ErrNoData indicates an empty eigenvalue or distance series.
	ErrNoData = errors.New("plot: no data to plot")

	// ErrLengthMismatch indicates series of incompatible lengths.
	ErrLengthMismatch = errors.New("plot: series length mismatch")

	// ErrDimension indicates an active-coordinate matrix that is neither
	// one- nor two-dimensional.
	ErrDimension = errors.New("plot: sufficient summary needs 1 or 2 active dimensions")

	// ErrNilResult indicates a nil bootstrap result.
	ErrNilResult = errors.New("plot: bootstrap result is nil")

	// ErrNilMatrix indicates a nil matrix argument.
	ErrNilMatrix = errors.New("plot: matrix is nil")
)
