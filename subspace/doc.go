// Package subspace implements the randomized-sampling active-subspace
// estimation engine.
//
// 🚀 What is an active subspace?
//
//	The few directions of a high-dimensional parameter space along which
//	a scalar quantity of interest f varies the most on average. They are
//	the dominant eigenvectors of the gradient covariance matrix
//
//	    C = E[∇f ∇fᵀ] ≈ (1/M) Σᵢ ∇f(xᵢ) ∇f(xᵢ)ᵀ,
//
//	estimated over M samples drawn uniformly from [-1,1]^m.
//
// Pipeline (Algorithm 3.1, Constantine et al.):
//  1. EvaluateGradients — one gradient row per sample, chain-rule rescaled
//     by the half-widths of any declared physical bounds.
//  2. Covariance — averaged outer products of the gradient rows.
//  3. Estimate — symmetric eigendecomposition; eigenvalues are made
//     non-negative (|λ|), sorted descending, and every eigenvector is
//     oriented so its first coordinate is non-negative.
//  4. Partition — split the eigenvector matrix into the active block W1
//     (first n columns) and the inactive complement W2.
//  5. Bootstrap — B row-resamples of the gradient matrix; per dimension j
//     the spectral norm ‖W1(:, :j+1)ᵀ · U(:, j+1:)‖₂ measures how much a
//     replicate's inactive complement leaks into the original active
//     directions; small values mean a stable cut at dimension j.
//
// The engine is single-threaded and synchronous; the only suspension
// points are the calls into the external QoI functional, which can be
// bounded by the context passed to EvaluateGradients/Estimate/Bootstrap
// (context.Background() preserves the block-until-done default).
//
// Orientation caveat: the sign rule (first coordinate ≥ 0, zero maps to
// positive) is deterministic but not canonical — it cannot resolve the
// rotational ambiguity inside a near-degenerate eigenspace. Treat
// eigenvectors of nearly equal eigenvalues as a subspace, not as
// individual directions.
//
// All derived arrays are owned by the Engine; accessors and results hand
// out independent copies only.
package subspace
