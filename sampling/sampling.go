package sampling

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// SampleSet holds M samples of an m-dimensional parameter space, stored
// row-major, each coordinate in [-1,1]. Values are optional and attached
// lazily. The zero value is not usable; construct with New.
type SampleSet struct {
	m, dim int // M samples, m dimensions

	coords []float64 // len m*dim, row-major; allocated at construction
	values []float64 // len m once assigned, nil before

	populated bool         // coordinates generated or loaded
	bounds    [][2]float64 // physical per-dimension bounds, nil = canonical

	src rand.Source
}

// New constructs an empty SampleSet for M samples in m dimensions.
// The coordinate array is allocated immediately so its shape is always
// (M, m); call Generate (or Load) to populate it.
//
// Returns ErrDimensions if M <= 0 or m <= 0.
func New(M, m int, opts ...Option) (*SampleSet, error) {
	if M <= 0 || m <= 0 {
		return nil, ErrDimensions
	}
	s := &SampleSet{
		m:      M,
		dim:    m,
		coords: make([]float64, M*m),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.src == nil {
		s.src = defaultSource()
	}

	return s, nil
}

// Len returns the number of samples M.
func (s *SampleSet) Len() int { return s.m }

// Dim returns the parameter-space dimension m.
func (s *SampleSet) Dim() int { return s.dim }

// Populated reports whether coordinates have been generated or loaded.
func (s *SampleSet) Populated() bool { return s.populated }

// Generate draws M uniform samples on [-1,1]^m.
//
// Returns ErrSamplesExist if samples are already present and overwrite is
// false; the existing coordinates are left untouched in that case.
func (s *SampleSet) Generate(overwrite bool) error {
	if s.populated && !overwrite {
		return ErrSamplesExist
	}
	u := distuv.Uniform{Min: -1, Max: 1, Src: s.src}
	for i := range s.coords {
		s.coords[i] = u.Rand()
	}
	s.populated = true

	return nil
}

// Extract returns a copy of the sample at index i.
// Returns ErrOutOfRange if i is outside [0, M).
func (s *SampleSet) Extract(i int) ([]float64, error) {
	if i < 0 || i >= s.m {
		return nil, ErrOutOfRange
	}
	x := make([]float64, s.dim)
	copy(x, s.coords[i*s.dim:(i+1)*s.dim])

	return x, nil
}

// Replace overwrites the sample at index i with x.
// Returns ErrOutOfRange for a bad index and ErrShape if len(x) != m.
func (s *SampleSet) Replace(i int, x []float64) error {
	if i < 0 || i >= s.m {
		return ErrOutOfRange
	}
	if len(x) != s.dim {
		return ErrShape
	}
	copy(s.coords[i*s.dim:(i+1)*s.dim], x)

	return nil
}

// Add appends a sample, growing M by one. A nil x draws a fresh uniform
// sample on [-1,1]^m; otherwise len(x) must equal m (ErrShape).
// A value slot is appended as well when values are present, initialized to 0.
func (s *SampleSet) Add(x []float64) error {
	if x == nil {
		u := distuv.Uniform{Min: -1, Max: 1, Src: s.src}
		x = make([]float64, s.dim)
		for j := range x {
			x[j] = u.Rand()
		}
	} else if len(x) != s.dim {
		return ErrShape
	}
	s.coords = append(s.coords, x...)
	s.m++
	if s.values != nil {
		s.values = append(s.values, 0)
	}

	return nil
}

// AssignValues evaluates f at every sample and stores the results as the
// value array. Returns ErrNilFunc if f is nil. Each sample is passed to f
// as an independent copy.
func (s *SampleSet) AssignValues(f func(x []float64) float64) error {
	if f == nil {
		return ErrNilFunc
	}
	vals := make([]float64, s.m)
	x := make([]float64, s.dim)
	for i := 0; i < s.m; i++ {
		copy(x, s.coords[i*s.dim:(i+1)*s.dim])
		vals[i] = f(x)
	}
	s.values = vals

	return nil
}

// AssignValue sets the value of the sample at index i, allocating the value
// array (zero-filled) on first use. Returns ErrOutOfRange for a bad index.
func (s *SampleSet) AssignValue(i int, v float64) error {
	if i < 0 || i >= s.m {
		return ErrOutOfRange
	}
	if s.values == nil {
		s.values = make([]float64, s.m)
	}
	s.values[i] = v

	return nil
}

// Value returns the value attached to sample i.
// Returns ErrOutOfRange for a bad index and ErrNoValues before assignment.
func (s *SampleSet) Value(i int) (float64, error) {
	if i < 0 || i >= s.m {
		return 0, ErrOutOfRange
	}
	if s.values == nil {
		return 0, ErrNoValues
	}

	return s.values[i], nil
}

// Values returns a copy of the value array, or ErrNoValues before any
// assignment.
func (s *SampleSet) Values() ([]float64, error) {
	if s.values == nil {
		return nil, ErrNoValues
	}
	vals := make([]float64, len(s.values))
	copy(vals, s.values)

	return vals, nil
}

// HasValues reports whether a value array is present.
func (s *SampleSet) HasValues() bool { return s.values != nil }

// Samples returns the full coordinate array as a freshly allocated M×m
// dense matrix. Mutating the result does not affect the set.
func (s *SampleSet) Samples() *mat.Dense {
	data := make([]float64, len(s.coords))
	copy(data, s.coords)

	return mat.NewDense(s.m, s.dim, data)
}

// Index locates x in the set by exact coordinate equality (linear scan).
// Returns ErrShape if len(x) != m and ErrNotFound when no row matches.
func (s *SampleSet) Index(x []float64) (int, error) {
	if len(x) != s.dim {
		return 0, ErrShape
	}
	for i := 0; i < s.m; i++ {
		row := s.coords[i*s.dim : (i+1)*s.dim]
		match := true
		for j := range x {
			if row[j] != x[j] {
				match = false

				break
			}
		}
		if match {
			return i, nil
		}
	}

	return 0, ErrNotFound
}

// SetBounds declares the physical per-dimension domain [lo, hi] that the
// canonical [-1,1] coordinates map to. The gradient evaluator uses the
// half-widths (hi-lo)/2 for its chain-rule rescaling.
//
// Returns ErrBadBounds if len(b) != m or any lo >= hi.
func (s *SampleSet) SetBounds(b [][2]float64) error {
	if len(b) != s.dim {
		return ErrBadBounds
	}
	for _, lh := range b {
		if lh[0] >= lh[1] {
			return ErrBadBounds
		}
	}
	bounds := make([][2]float64, len(b))
	copy(bounds, b)
	s.bounds = bounds

	return nil
}

// Bounds returns a copy of the declared bounds, or nil when the set lives
// on the canonical cube.
func (s *SampleSet) Bounds() [][2]float64 {
	if s.bounds == nil {
		return nil
	}
	b := make([][2]float64, len(s.bounds))
	copy(b, s.bounds)

	return b
}
