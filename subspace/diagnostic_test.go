package subspace

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlsub/sampling"
)

// flatGrad is the minimal QoI stand-in the diagnostic tests need.
type flatGrad struct{}

func (flatGrad) Evaluate(_ []float64) (float64, error) { return 0, nil }

func (flatGrad) Gradient(_ []float64, _ *sampling.SampleSet) ([]float64, error) {
	return []float64{1, 1}, nil
}

func diagnosticEngine(t *testing.T, buf *bytes.Buffer, opts ...Option) *Engine {
	t.Helper()
	set, err := sampling.New(4, 2)
	require.NoError(t, err)

	opts = append([]Option{WithLogger(zerolog.New(buf))}, opts...)
	e, err := New(1, flatGrad{}, set, opts...)
	require.NoError(t, err)

	return e
}

func TestEigenpairs_NegativeDiagnosticFires(t *testing.T) {
	var buf bytes.Buffer
	e := diagnosticEngine(t, &buf)

	// raw eigenvalue -2 against max|λ| = 2: far beyond the 1e-9 default.
	vals, _, err := e.eigenpairs(mat.NewSymDense(2, []float64{-2, 0, 0, 1}))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "negative beyond noise tolerance")

	// The fold itself is unaffected by the diagnostic.
	assert.InDelta(t, 2.0, vals[0], 1e-12)
	assert.InDelta(t, 1.0, vals[1], 1e-12)
}

func TestEigenpairs_NegativeDiagnosticSilentWithinTolerance(t *testing.T) {
	var buf bytes.Buffer
	// tol = 2 puts the threshold at -4; an eigenvalue of -2 is noise.
	e := diagnosticEngine(t, &buf, WithTolerance(2))

	vals, _, err := e.eigenpairs(mat.NewSymDense(2, []float64{-2, 0, 0, 1}))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
	assert.InDelta(t, 2.0, vals[0], 1e-12)
}

func TestEigenpairs_NegativeDiagnosticSilentOnPSD(t *testing.T) {
	var buf bytes.Buffer
	e := diagnosticEngine(t, &buf)

	_, _, err := e.eigenpairs(mat.NewSymDense(2, []float64{2, 0.5, 0.5, 1}))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
