// Package cluster groups the samples of a sampling.SampleSet with Lloyd's
// k-means.
//
// ✨ Why cluster samples at all?
//
//	A quantity of interest that is cheap in some regions of the parameter
//	space and expensive in others benefits from region-local surrogate
//	models; k-means gives the regions. The Clusterer wraps an existing
//	SampleSet rather than extending it, so the same set can feed both the
//	subspace engine and the clustering without conversion.
//
// Algorithm:
//  1. centroids start uniformly random inside the bounding range of the
//     coordinate data,
//  2. each sample joins its nearest centroid (squared Euclidean),
//  3. centroids move to the mean of their members; a cluster that lost
//     all members keeps its previous centroid and logs a warning,
//  4. stop on centroid convergence or after MaxIter sweeps.
//
// Deterministic under an injected seed; all accessors return copies.
package cluster
