package sampling

import "errors"

var (
	// ErrDimensions indicates a non-positive sample count or dimension at
	// construction time.
	ErrDimensions = errors.New("sampling: sample count and dimension must be > 0")

	// ErrOutOfRange indicates a sample index outside [0, M).
	ErrOutOfRange = errors.New("sampling: index out of range")

	// ErrShape indicates a sample vector or loaded array whose shape does not
	// match the configured (M, m).
	ErrShape = errors.New("sampling: array has wrong shape")

	// ErrSamplesExist guards Generate and Load against silently destroying
	// existing coordinates; pass overwrite=true to proceed.
	ErrSamplesExist = errors.New("sampling: samples already exist, use overwrite")

	// ErrNotFound is returned by Index when no sample matches the query.
	ErrNotFound = errors.New("sampling: sample not found")

	// ErrNoValues is returned when values are requested before any were
	// assigned.
	ErrNoValues = errors.New("sampling: values not assigned yet")

	// ErrNilFunc is returned when AssignValues receives a nil function.
	ErrNilFunc = errors.New("sampling: value function is nil")

	// ErrBadBounds indicates bounds of wrong length or with lo >= hi.
	ErrBadBounds = errors.New("sampling: invalid bounds")

	// ErrChecksum indicates that a persisted record failed its integrity
	// check on load.
	ErrChecksum = errors.New("sampling: record checksum mismatch")
)
