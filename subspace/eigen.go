package subspace

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Eigenpairs computes the oriented eigendecomposition of a real symmetric
// matrix, the way every consumer in this package expects it:
//
//  1. symmetric eigensolve,
//  2. eigenvalues folded to |λ| — small negative values are finite-sample
//     artifacts of a covariance matrix that is only asymptotically
//     positive-semidefinite,
//  3. eigenvalues sorted descending, eigenvector columns permuted to match,
//  4. every column sign-normalized so its first coordinate is ≥ 0
//     (an exactly zero first coordinate maps to the positive orientation).
//
// The orientation is deterministic but not canonical: within a nearly
// degenerate eigenspace the returned columns are one arbitrary orthonormal
// choice among many.
//
// Returns ErrNilMatrix for a nil input and ErrEigenFailed if the solver
// does not converge.
func Eigenpairs(a mat.Symmetric) ([]float64, *mat.Dense, error) {
	raw, vecs, err := factorizeSym(a)
	if err != nil {
		return nil, nil, err
	}
	vals, oriented := orientEigen(raw, vecs)

	return vals, oriented, nil
}

// factorizeSym runs the plain symmetric eigensolve, eigenvalues in the
// solver's ascending order, before any folding or reordering.
func factorizeSym(a mat.Symmetric) ([]float64, *mat.Dense, error) {
	if a == nil {
		return nil, nil, ErrNilMatrix
	}
	var es mat.EigenSym
	if !es.Factorize(a, true) {
		return nil, nil, ErrEigenFailed
	}
	raw := es.Values(nil)
	vecs := new(mat.Dense)
	es.VectorsTo(vecs)

	return raw, vecs, nil
}

// orientEigen applies steps 2-4 of the Eigenpairs contract: |λ|, stable
// descending sort, column permutation, sign normalization. A fresh matrix
// is allocated; vecs is not mutated.
func orientEigen(raw []float64, vecs *mat.Dense) ([]float64, *mat.Dense) {
	n := len(raw)

	abs := make([]float64, n)
	for i, v := range raw {
		if v < 0 {
			v = -v
		}
		abs[i] = v
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return abs[idx[a]] > abs[idx[b]] })

	vals := make([]float64, n)
	out := mat.NewDense(n, n, nil)
	col := make([]float64, n)
	for c, src := range idx {
		vals[c] = abs[src]
		mat.Col(col, src, vecs)
		if col[0] < 0 {
			for i := range col {
				col[i] = -col[i]
			}
		}
		out.SetCol(c, col)
	}

	return vals, out
}

// spectralNorm returns the operator 2-norm (largest singular value) of a.
func spectralNorm(a mat.Matrix) (float64, error) {
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDNone) {
		return 0, ErrSVDFailed
	}

	return svd.Values(nil)[0], nil
}
