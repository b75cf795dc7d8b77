package functional

import "errors"

var (
	// ErrDimension indicates a non-positive parameter-space dimension.
	ErrDimension = errors.New("functional: dimension must be > 0")

	// ErrNilFunc indicates a nil quantity-of-interest function.
	ErrNilFunc = errors.New("functional: function is nil")

	// ErrShape indicates an input vector whose length differs from the
	// functional's dimension.
	ErrShape = errors.New("functional: input has wrong length")

	// ErrBadStep indicates a non-positive finite-difference step.
	ErrBadStep = errors.New("functional: finite-difference step must be > 0")

	// ErrGradientShape indicates an analytic derivative returning a vector
	// of the wrong length.
	ErrGradientShape = errors.New("functional: analytic gradient has wrong length")
)
