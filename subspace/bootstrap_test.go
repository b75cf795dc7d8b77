package subspace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsub/subspace"
)

func TestBootstrap_Validation(t *testing.T) {
	e, err := subspace.New(1, ridgeFunctional(t), generatedSet(t, 20, 2, 1))
	require.NoError(t, err)

	_, err = e.Bootstrap(nil, 0)
	assert.ErrorIs(t, err, subspace.ErrReplicates)
	_, err = e.Bootstrap(nil, -5)
	assert.ErrorIs(t, err, subspace.ErrReplicates)
}

func TestBootstrap_LazyPipeline(t *testing.T) {
	// Bootstrap on a fresh engine runs gradients and estimation itself.
	e, err := subspace.New(1, sphereFunctional(t), generatedSet(t, 200, 2, 21),
		subspace.WithSeed(21))
	require.NoError(t, err)
	require.Equal(t, subspace.StateInitialized, e.State())

	res, err := e.Bootstrap(nil, 50)
	require.NoError(t, err)
	assert.Equal(t, subspace.StateBootstrapComputed, e.State())
	assert.Equal(t, 50, res.Replicates)
	assert.Len(t, res.EigMin, 2)
	assert.Len(t, res.EigMax, 2)
	assert.Len(t, res.DistMin, 1)
	assert.Len(t, res.DistMax, 1)
	assert.Len(t, res.DistMean, 1)
}

func TestBootstrap_EnvelopeOrdering(t *testing.T) {
	e, err := subspace.New(2, sphereFunctional(t), generatedSet(t, 200, 2, 33),
		subspace.WithSeed(33))
	require.NoError(t, err)

	res, err := e.Bootstrap(nil, 100)
	require.NoError(t, err)

	vals, err := e.Eigenvalues()
	require.NoError(t, err)

	for j := range res.EigMin {
		assert.LessOrEqual(t, res.EigMin[j], res.EigMax[j])
		// The point estimate sits inside (or at worst near) the envelope.
		assert.Less(t, res.EigMin[j], vals[j]*1.5)
		assert.Greater(t, res.EigMax[j], vals[j]*0.5)
	}
	for j := range res.DistMin {
		assert.LessOrEqual(t, res.DistMin[j], res.DistMean[j])
		assert.LessOrEqual(t, res.DistMean[j], res.DistMax[j])
		// Spectral distance between orthonormal blocks lives in [0, 1].
		assert.GreaterOrEqual(t, res.DistMin[j], 0.0)
		assert.LessOrEqual(t, res.DistMax[j], 1.0+1e-12)
	}
}

func TestBootstrap_RidgeStability(t *testing.T) {
	// Rank-one covariance: every replicate reproduces the same subspace,
	// so the distance at the one-dimensional cut collapses to ~0.
	e, err := subspace.New(1, ridgeFunctional(t), generatedSet(t, 100, 2, 5),
		subspace.WithSeed(5))
	require.NoError(t, err)

	res, err := e.Bootstrap(nil, 50)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, res.DistMax[0], 1e-6)
}

func TestBootstrap_SeedDeterminism(t *testing.T) {
	run := func() *subspace.BootstrapResult {
		e, err := subspace.New(2, sphereFunctional(t), generatedSet(t, 100, 2, 13),
			subspace.WithSeed(99))
		require.NoError(t, err)
		res, err := e.Bootstrap(nil, 30)
		require.NoError(t, err)

		return res
	}

	assert.Equal(t, run(), run())
}

func TestLastBootstrap_ReturnsCopy(t *testing.T) {
	e, err := subspace.New(1, sphereFunctional(t), generatedSet(t, 100, 2, 17),
		subspace.WithSeed(17))
	require.NoError(t, err)

	res, err := e.Bootstrap(nil, 20)
	require.NoError(t, err)

	cached, err := e.LastBootstrap()
	require.NoError(t, err)
	assert.Equal(t, res, cached)

	cached.EigMin[0] = -100
	again, err := e.LastBootstrap()
	require.NoError(t, err)
	assert.NotEqual(t, -100.0, again.EigMin[0])
}
