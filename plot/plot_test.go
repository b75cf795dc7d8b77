package plot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlsub/plot"
	"github.com/katalvlaran/lvlsub/subspace"
)

func requireRendered(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestEigenvalues(t *testing.T) {
	dir := t.TempDir()

	assert.ErrorIs(t, plot.Eigenvalues(filepath.Join(dir, "x.png"), nil), plot.ErrNoData)

	vals := []float64{4.1, 1.3, 0.2, 1e-6}
	path := filepath.Join(dir, "eig.png")
	require.NoError(t, plot.Eigenvalues(path, vals))
	requireRendered(t, path)

	full := filepath.Join(dir, "eig_full.png")
	require.NoError(t, plot.Eigenvalues(full, vals,
		plot.WithTruncation(3),
		plot.WithTrueValues([]float64{4, 1.5, 0.25, 0}),
		plot.WithEnvelope([]float64{3.9, 1.1, 0.1, 1e-7}, []float64{4.3, 1.5, 0.3, 1e-5}),
	))
	requireRendered(t, full)

	assert.ErrorIs(t, plot.Eigenvalues(filepath.Join(dir, "y.png"), vals,
		plot.WithTrueValues([]float64{1})), plot.ErrLengthMismatch)
}

func TestSubspaceDistance(t *testing.T) {
	dir := t.TempDir()

	assert.ErrorIs(t, plot.SubspaceDistance(filepath.Join(dir, "x.png"), nil), plot.ErrNilResult)

	res := &subspace.BootstrapResult{
		Replicates: 10,
		DistMin:    []float64{0.01, 0.2, 0.6},
		DistMax:    []float64{0.05, 0.5, 0.9},
		DistMean:   []float64{0.02, 0.3, 0.8},
	}
	path := filepath.Join(dir, "dist.png")
	require.NoError(t, plot.SubspaceDistance(path, res))
	requireRendered(t, path)
}

func TestEigenvectors(t *testing.T) {
	dir := t.TempDir()

	assert.ErrorIs(t, plot.Eigenvectors(filepath.Join(dir, "x.png"), nil, 1), plot.ErrNilMatrix)

	vecs := mat.NewDense(3, 3, []float64{
		0.7, 0.1, 0.2,
		0.5, -0.6, 0.3,
		0.5, 0.8, -0.9,
	})
	assert.ErrorIs(t, plot.Eigenvectors(filepath.Join(dir, "y.png"), vecs, 4), plot.ErrLengthMismatch)

	path := filepath.Join(dir, "vecs.png")
	require.NoError(t, plot.Eigenvectors(path, vecs, 2))
	requireRendered(t, path)
}

func TestSufficientSummary(t *testing.T) {
	dir := t.TempDir()

	y1 := mat.NewDense(4, 1, []float64{-1, -0.5, 0.5, 1})
	vals := []float64{1, 0.25, 0.25, 1}

	assert.ErrorIs(t, plot.SufficientSummary(filepath.Join(dir, "x.png"), nil, vals), plot.ErrNilMatrix)
	assert.ErrorIs(t, plot.SufficientSummary(filepath.Join(dir, "y.png"), y1, vals[:2]), plot.ErrLengthMismatch)

	p1 := filepath.Join(dir, "ss1.png")
	require.NoError(t, plot.SufficientSummary(p1, y1, vals))
	requireRendered(t, p1)

	y2 := mat.NewDense(4, 2, []float64{
		-1, 0,
		-0.5, 0.3,
		0.5, -0.3,
		1, 0,
	})
	p2 := filepath.Join(dir, "ss2.png")
	require.NoError(t, plot.SufficientSummary(p2, y2, vals))
	requireRendered(t, p2)

	y3 := mat.NewDense(4, 3, nil)
	assert.ErrorIs(t, plot.SufficientSummary(filepath.Join(dir, "z.png"), y3, vals), plot.ErrDimension)
}
