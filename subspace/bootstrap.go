package subspace

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Bootstrap quantifies the sampling variability of the estimated subspace
// with B nonparametric replicates. Each replicate resamples the M cached
// gradient rows with replacement, re-estimates the covariance eigenpairs,
// and records for every truncation j the spectral-norm distance between
// the original leading j+1 eigenvectors and the replicate's trailing
// complement. The aggregated envelopes (eigenvalue min/max per index,
// distance min/max/mean per truncation) are cached on the engine and
// returned as a copy.
//
// Gradients and the reference eigendecomposition are computed lazily if
// absent. Returns ErrReplicates for B ≤ 0; ctx is checked once per
// replicate (nil means block until done).
func (e *Engine) Bootstrap(ctx context.Context, B int) (*BootstrapResult, error) {
	if B <= 0 {
		return nil, ErrReplicates
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if e.eigvecs == nil {
		if _, _, err := e.Estimate(ctx); err != nil {
			return nil, err
		}
	}

	M, m := e.gradients.Dims()
	res := &BootstrapResult{
		Replicates: B,
		EigMin:     make([]float64, m),
		EigMax:     make([]float64, m),
		DistMin:    make([]float64, m-1),
		DistMax:    make([]float64, m-1),
		DistMean:   make([]float64, m-1),
	}

	// Per-replicate eigenvalues and distances, aggregated at the end so the
	// envelopes use floats/stat rather than running extrema.
	eigCols := make([][]float64, m)
	for j := range eigCols {
		eigCols[j] = make([]float64, B)
	}
	distCols := make([][]float64, m-1)
	for j := range distCols {
		distCols[j] = make([]float64, B)
	}

	resampled := mat.NewDense(M, m, nil)
	row := make([]float64, m)
	for b := 0; b < B; b++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("subspace: bootstrap replicate %d: %w", b, err)
		}

		for i := 0; i < M; i++ {
			mat.Row(row, e.rng.Intn(M), e.gradients)
			resampled.SetRow(i, row)
		}

		cov, err := e.Covariance(resampled)
		if err != nil {
			return nil, err
		}
		vals, vecs, err := Eigenpairs(cov)
		if err != nil {
			return nil, err
		}
		for j := 0; j < m; j++ {
			eigCols[j][b] = vals[j]
		}

		for j := 0; j < m-1; j++ {
			// ‖W1(:, :j+1)ᵀ · U(:, j+1:)‖₂ — the leakage of the replicate's
			// inactive complement into the reference active block.
			var prod mat.Dense
			prod.Mul(e.eigvecs.Slice(0, m, 0, j+1).T(), vecs.Slice(0, m, j+1, m))
			d, err := spectralNorm(&prod)
			if err != nil {
				return nil, err
			}
			distCols[j][b] = d
		}
	}

	for j := 0; j < m; j++ {
		res.EigMin[j] = floats.Min(eigCols[j])
		res.EigMax[j] = floats.Max(eigCols[j])
	}
	for j := 0; j < m-1; j++ {
		res.DistMin[j] = floats.Min(distCols[j])
		res.DistMax[j] = floats.Max(distCols[j])
		res.DistMean[j] = stat.Mean(distCols[j], nil)
	}

	e.boot = res
	e.state = StateBootstrapComputed

	return res.clone(), nil
}
