package functional

import "github.com/katalvlaran/lvlsub/sampling"

// DefaultStep is the central finite-difference step used when no analytic
// derivative is available and no step was configured.
const DefaultStep = 1e-6

// Func is a scalar quantity of interest over an m-dimensional sample.
type Func func(x []float64) float64

// GradFunc is an analytic derivative of a Func; it must return a vector of
// the same length as its input.
type GradFunc func(x []float64) []float64

// Option configures a Functional at construction time.
type Option func(*Functional)

// WithGradient sets the analytic derivative up front.
func WithGradient(g GradFunc) Option {
	return func(f *Functional) { f.grad = g }
}

// WithStep overrides the finite-difference step h.
func WithStep(h float64) Option {
	return func(f *Functional) { f.step = h }
}

// Functional couples a quantity of interest with its derivative strategy.
// It satisfies the subspace engine's QoI contract.
type Functional struct {
	dim  int
	f    Func
	grad GradFunc
	step float64

	evals     int // Evaluate calls, including those made by finite differences
	gradCalls int // Gradient calls
}

// New constructs a Functional of the given dimension.
// Returns ErrDimension if dim <= 0, ErrNilFunc if f is nil, and ErrBadStep
// for a non-positive configured step.
func New(dim int, f Func, opts ...Option) (*Functional, error) {
	if dim <= 0 {
		return nil, ErrDimension
	}
	if f == nil {
		return nil, ErrNilFunc
	}
	fn := &Functional{dim: dim, f: f, step: DefaultStep}
	for _, opt := range opts {
		opt(fn)
	}
	if fn.step <= 0 {
		return nil, ErrBadStep
	}

	return fn, nil
}

// Dim returns the parameter-space dimension m.
func (fn *Functional) Dim() int { return fn.dim }

// SetGradient installs (or replaces) the analytic derivative; subsequent
// Gradient calls use it instead of finite differences.
func (fn *Functional) SetGradient(g GradFunc) { fn.grad = g }

// Evaluations returns how many times the underlying function was called,
// counting the evaluations spent on finite-difference stencils.
func (fn *Functional) Evaluations() int { return fn.evals }

// GradientCalls returns how many gradients were requested.
func (fn *Functional) GradientCalls() int { return fn.gradCalls }

// Evaluate computes f(x). Returns ErrShape if len(x) != Dim().
func (fn *Functional) Evaluate(x []float64) (float64, error) {
	if len(x) != fn.dim {
		return 0, ErrShape
	}
	fn.evals++

	return fn.f(x), nil
}

// Gradient computes ∇f(x), analytically when a derivative is installed and
// by central finite differences otherwise. The sample-set context is part
// of the engine-facing contract; this implementation does not consult it,
// but derived functionals (e.g. local regression surrogates) may.
//
// Returns ErrShape for a wrong-length x and ErrGradientShape if an analytic
// derivative misbehaves.
func (fn *Functional) Gradient(x []float64, _ *sampling.SampleSet) ([]float64, error) {
	if len(x) != fn.dim {
		return nil, ErrShape
	}
	fn.gradCalls++

	if fn.grad != nil {
		g := fn.grad(x)
		if len(g) != fn.dim {
			return nil, ErrGradientShape
		}
		out := make([]float64, fn.dim)
		copy(out, g)

		return out, nil
	}

	// Central differences: two evaluations per dimension.
	g := make([]float64, fn.dim)
	xx := make([]float64, fn.dim)
	copy(xx, x)
	for j := 0; j < fn.dim; j++ {
		orig := xx[j]
		xx[j] = orig + fn.step
		fp := fn.f(xx)
		xx[j] = orig - fn.step
		fm := fn.f(xx)
		xx[j] = orig
		fn.evals += 2
		g[j] = (fp - fm) / (2 * fn.step)
	}

	return g, nil
}
