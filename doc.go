// Package lvlsub is your in-memory playground for discovering active
// subspaces — the few directions of a high-dimensional parameter space
// along which an expensive quantity of interest actually varies.
//
// 🚀 What is lvlsub?
//
//	A library implementing the randomized-sampling active-subspace
//	algorithm (Constantine et al.), end to end:
//		• Sampling: uniform sample sets on [-1,1]^m, with values & bounds
//		• Gradients: analytic or finite-difference, chain-rule rescaled
//		• Covariance: Monte Carlo estimate of E[∇f ∇fᵀ]
//		• Eigenpairs: deterministic ordering and sign orientation
//		• Partition: active W1 / inactive W2 split
//		• Bootstrap: eigenvalue bounds & subspace-distance stability
//		• Clustering: k-means sampling-design aid
//		• Plots: eigenvalue decay, subspace error, sufficient summaries
//
// ✨ Why choose lvlsub?
//
//   - Deterministic – injectable random sources, stable orderings
//   - Rock-solid guarantees – strict validation, sentinel errors, copies out
//   - Built on gonum – symmetric eigensolvers and SVD, not hand-rolled loops
//   - Extensible – bring your own QoI functional; the solver stays external
//
// Everything is organized under focused subpackages:
//
//	sampling/   — SampleSet container, uniform generation, persistence
//	cluster/    — k-means clustering over a SampleSet
//	functional/ — QoI functionals with analytic or finite-difference gradients
//	subspace/   — the estimation engine: covariance, eigenpairs, bootstrap
//	plot/       — snapshot-based visualization (writes image files)
//	cmd/lvlsub/ — thin CLI driving the pipeline from a YAML config
//
// Quick sketch:
//
//	set, _ := sampling.New(100, 2)
//	_ = set.Generate(false)
//	fn, _ := functional.New(2, func(x []float64) float64 { return x[0]*x[0] + x[1]*x[1] })
//	eng, _ := subspace.New(2, fn, set)
//	vecs, vals, _ := eng.Estimate(context.Background())
//	w1, w2, _ := eng.Partition(1)
//	boot, _ := eng.Bootstrap(context.Background(), 500)
//
// Dive into each package's doc.go for the full contract and examples.
package lvlsub
