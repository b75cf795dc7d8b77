package subspace

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlsub/sampling"
)

// Engine drives the active-subspace estimation for one sample set and one
// QoI functional. It is the sole owner of every derived array (gradients,
// eigendecomposition, active block, bootstrap bounds) and must not be
// shared between concurrent estimation calls.
type Engine struct {
	k   int // number of eigenvalues of interest (plot truncation)
	fn  QoI
	set *sampling.SampleSet

	log zerolog.Logger
	rng randIntn
	tol float64

	state     State
	gradients *mat.Dense // M×m, chain-rule rescaled
	eigvals   []float64  // length m, |λ| descending
	eigvecs   *mat.Dense // m×m, oriented columns
	active    *mat.Dense // m×n retained W1
	boot      *BootstrapResult
}

// randIntn is the slice of *rand.Rand the engine actually needs; it keeps
// the bootstrap loop trivially testable.
type randIntn interface {
	Intn(n int) int
}

// New constructs an Engine interested in the top k eigenvalues.
//
// Returns ErrNilFunctional / ErrNilSampleSet for missing collaborators and
// ErrEigenCount unless 1 ≤ k ≤ m.
func New(k int, fn QoI, set *sampling.SampleSet, opts ...Option) (*Engine, error) {
	if fn == nil {
		return nil, ErrNilFunctional
	}
	if set == nil {
		return nil, ErrNilSampleSet
	}
	if k < 1 || k > set.Dim() {
		return nil, ErrEigenCount
	}
	e := &Engine{
		k:     k,
		fn:    fn,
		set:   set,
		log:   zerolog.Nop(),
		tol:   DefaultTolerance,
		state: StateInitialized,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = defaultRand()
	}

	return e, nil
}

// K returns the number of eigenvalues of interest.
func (e *Engine) K() int { return e.k }

// State returns the latest completed lifecycle stage.
func (e *Engine) State() State { return e.state }

// SampleSet returns the engine's sample set (shared, not a copy: the set
// is a collaborator, not a derived array).
func (e *Engine) SampleSet() *sampling.SampleSet { return e.set }

// EvaluateGradients calls the functional's gradient at every sample and
// caches the resulting M×m matrix, with each component rescaled by half
// the width of the sample set's physical bounds (chain rule from the
// physical domain onto the canonical [-1,1] cube). Returns a copy.
//
// Re-invocation is permitted but caller-visible: the previous matrix is
// superseded and a warning is logged. A nil ctx means block until done;
// cancellation is checked between functional calls, never mid-call.
func (e *Engine) EvaluateGradients(ctx context.Context) (*mat.Dense, error) {
	if e.gradients != nil {
		e.log.Warn().Msg("gradients already evaluated, superseding previous matrix")
	}
	if err := e.evaluateGradients(ctx); err != nil {
		return nil, err
	}

	return cloneDense(e.gradients), nil
}

func (e *Engine) evaluateGradients(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	M, m := e.set.Len(), e.set.Dim()
	bounds := e.set.Bounds()
	g := mat.NewDense(M, m, nil)
	for i := 0; i < M; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("subspace: gradient evaluation at sample %d: %w", i, err)
		}
		x, err := e.set.Extract(i)
		if err != nil {
			return err
		}
		row, err := e.fn.Gradient(x, e.set)
		if err != nil {
			return fmt.Errorf("subspace: gradient at sample %d: %w", i, err)
		}
		if len(row) != m {
			return ErrGradientShape
		}
		if bounds != nil {
			for j := range row {
				row[j] *= (bounds[j][1] - bounds[j][0]) / 2
			}
		}
		g.SetRow(i, row)
	}
	e.gradients = g
	e.state = StateGradientsReady

	return nil
}

// Covariance reduces an M×m gradient matrix to the m×m Monte Carlo
// estimate (1/M)·Σᵢ gᵢgᵢᵀ of E[∇f ∇fᵀ]. The result is invariant under any
// permutation of the gradient rows.
//
// Returns ErrNilGradients for a nil matrix and ErrGradientShape if the
// column count differs from the sample dimension.
func (e *Engine) Covariance(g *mat.Dense) (*mat.SymDense, error) {
	if g == nil {
		return nil, ErrNilGradients
	}
	M, m := g.Dims()
	if m != e.set.Dim() {
		return nil, ErrGradientShape
	}

	// GᵀG accumulates the outer products in one multiplication; the
	// explicit symmetrization absorbs round-off asymmetry.
	var gtg mat.Dense
	gtg.Mul(g.T(), g)
	inv := 1 / float64(M)
	cov := mat.NewSymDense(m, nil)
	for i := 0; i < m; i++ {
		for j := i; j < m; j++ {
			cov.SetSym(i, j, 0.5*(gtg.At(i, j)+gtg.At(j, i))*inv)
		}
	}

	return cov, nil
}

// Estimate runs the random-sampling algorithm: gradients (evaluated lazily
// if absent, reused with a warning otherwise), covariance, oriented
// eigendecomposition. It returns copies of the eigenvector matrix and the
// eigenvalue vector, and caches both on the engine.
func (e *Engine) Estimate(ctx context.Context) (*mat.Dense, []float64, error) {
	if e.gradients == nil {
		if err := e.evaluateGradients(ctx); err != nil {
			return nil, nil, err
		}
	} else {
		e.log.Warn().Msg("gradients already evaluated, reusing cached matrix; make sure it is up to date")
	}

	cov, err := e.Covariance(e.gradients)
	if err != nil {
		return nil, nil, err
	}
	vals, vecs, err := e.eigenpairs(cov)
	if err != nil {
		return nil, nil, err
	}

	e.eigvals = vals
	e.eigvecs = vecs
	e.state = StateSubspaceEstimated

	return cloneDense(vecs), append([]float64(nil), vals...), nil
}

// eigenpairs is Eigenpairs plus the negative-eigenvalue diagnostic: a raw
// eigenvalue more negative than -tol·max|λ| is beyond finite-sample noise
// and points at a broken covariance computation, so it is logged before
// the |λ| fold hides it.
func (e *Engine) eigenpairs(a mat.Symmetric) ([]float64, *mat.Dense, error) {
	raw, vecs, err := factorizeSym(a)
	if err != nil {
		return nil, nil, err
	}

	var maxAbs float64
	for _, v := range raw {
		if v < 0 {
			v = -v
		}
		if v > maxAbs {
			maxAbs = v
		}
	}
	// raw is ascending, so raw[0] is the most negative eigenvalue.
	if len(raw) > 0 && raw[0] < -e.tol*maxAbs {
		e.log.Warn().
			Float64("eigenvalue", raw[0]).
			Float64("threshold", -e.tol*maxAbs).
			Msg("covariance eigenvalue is negative beyond noise tolerance")
	}

	vals, oriented := orientEigen(raw, vecs)

	return vals, oriented, nil
}

// Eigenvalues returns a copy of the cached eigenvalues (|λ|, descending).
// Returns ErrNotEstimated before Estimate has run.
func (e *Engine) Eigenvalues() ([]float64, error) {
	if e.eigvals == nil {
		return nil, ErrNotEstimated
	}

	return append([]float64(nil), e.eigvals...), nil
}

// Eigenvectors returns a copy of the cached oriented eigenvector matrix.
// Returns ErrNotEstimated before Estimate has run.
func (e *Engine) Eigenvectors() (*mat.Dense, error) {
	if e.eigvecs == nil {
		return nil, ErrNotEstimated
	}

	return cloneDense(e.eigvecs), nil
}

// Partition splits the eigenvector matrix into the active block W1 (the
// leading n columns) and the inactive complement W2. W1 is retained on the
// engine for ActiveCoordinates; both returned blocks are copies.
//
// n == m is legal and yields a nil W2 (empty inactive block). Returns
// ErrNotEstimated before Estimate and ErrDimension unless 1 ≤ n ≤ m.
func (e *Engine) Partition(n int) (w1, w2 *mat.Dense, err error) {
	if e.eigvecs == nil {
		return nil, nil, ErrNotEstimated
	}
	m := e.set.Dim()
	if n < 1 || n > m {
		return nil, nil, ErrDimension
	}

	w1 = cloneDense(e.eigvecs.Slice(0, m, 0, n).(*mat.Dense))
	if n < m {
		w2 = cloneDense(e.eigvecs.Slice(0, m, n, m).(*mat.Dense))
	}
	e.active = cloneDense(w1)
	e.state = StatePartitioned

	return w1, w2, nil
}

// ActiveCoordinates projects every sample onto the retained active block:
// Y = S·W1, one row of active variables per sample. Returns
// ErrNotPartitioned before Partition has run.
func (e *Engine) ActiveCoordinates() (*mat.Dense, error) {
	if e.active == nil {
		return nil, ErrNotPartitioned
	}
	var y mat.Dense
	y.Mul(e.set.Samples(), e.active)

	return &y, nil
}

// LastBootstrap returns a copy of the most recent bootstrap result, or
// ErrNotEstimated if Bootstrap has not run.
func (e *Engine) LastBootstrap() (*BootstrapResult, error) {
	if e.boot == nil {
		return nil, ErrNotEstimated
	}

	return e.boot.clone(), nil
}

func cloneDense(src *mat.Dense) *mat.Dense {
	dst := new(mat.Dense)
	dst.CloneFrom(src)

	return dst
}
