package subspace

import (
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/lvlsub/sampling"
)

// QoI is the external quantity-of-interest collaborator. Both methods may
// be arbitrarily expensive (e.g. a PDE solve per call); the engine invokes
// them synchronously and treats them as side-effect free.
//
// Gradient receives the owning sample set as context: plain functionals
// ignore it, surrogate-based ones may consult neighboring samples.
type QoI interface {
	Evaluate(x []float64) (float64, error)
	Gradient(x []float64, set *sampling.SampleSet) ([]float64, error)
}

// State is the explicit lifecycle marker of an Engine, replacing ad hoc
// "is this field set yet" checks. It records the latest completed stage.
type State int

const (
	// StateInitialized — constructed, nothing computed.
	StateInitialized State = iota

	// StateGradientsReady — gradient matrix evaluated and cached.
	StateGradientsReady

	// StateSubspaceEstimated — covariance eigendecomposition available.
	StateSubspaceEstimated

	// StatePartitioned — active/inactive split chosen, W1 retained.
	StatePartitioned

	// StateBootstrapComputed — bootstrap bounds available.
	StateBootstrapComputed
)

// String implements fmt.Stringer for log and test output.
func (s State) String() string {
	switch s {
	case StateInitialized:
		return "Initialized"
	case StateGradientsReady:
		return "GradientsReady"
	case StateSubspaceEstimated:
		return "SubspaceEstimated"
	case StatePartitioned:
		return "Partitioned"
	case StateBootstrapComputed:
		return "BootstrapComputed"
	default:
		return "Unknown"
	}
}

// DefaultTolerance is the relative threshold of the negative-eigenvalue
// diagnostic: raw eigenvalues below -DefaultTolerance·max|λ| trigger a
// warning before being folded to |λ|, since they indicate more than
// finite-sample noise in the covariance estimate.
const DefaultTolerance = 1e-9

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger injects the structured logger used for caller-visible
// warnings (gradient overwrite/reuse, suspicious negative eigenvalues).
// Defaults to a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithSource injects the random source driving bootstrap resampling.
// Defaults to a time-seeded source.
func WithSource(src rand.Source) Option {
	return func(e *Engine) { e.rng = rand.New(src) }
}

// WithSeed is shorthand for WithSource(rand.NewSource(seed)).
func WithSeed(seed uint64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewSource(seed)) }
}

// WithTolerance overrides the negative-eigenvalue diagnostic threshold.
func WithTolerance(tol float64) Option {
	return func(e *Engine) { e.tol = tol }
}

func defaultRand() *rand.Rand {
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}

// BootstrapResult aggregates B independent replicates per dimension:
// eigenvalue envelopes for every index j in [0, m) and subspace-distance
// statistics for every truncation j in [0, m-1).
type BootstrapResult struct {
	Replicates int

	// EigMin/EigMax bound the replicate eigenvalues, length m.
	EigMin, EigMax []float64

	// DistMin/DistMax/DistMean aggregate the spectral-norm subspace
	// distance at each truncation, length m-1.
	DistMin, DistMax, DistMean []float64
}

func (r *BootstrapResult) clone() *BootstrapResult {
	cp := func(s []float64) []float64 {
		out := make([]float64, len(s))
		copy(out, s)

		return out
	}

	return &BootstrapResult{
		Replicates: r.Replicates,
		EigMin:     cp(r.EigMin),
		EigMax:     cp(r.EigMax),
		DistMin:    cp(r.DistMin),
		DistMax:    cp(r.DistMax),
		DistMean:   cp(r.DistMean),
	}
}
