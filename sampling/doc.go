// Package sampling provides the sample container used throughout lvlsub:
// M points of an m-dimensional parameter space, each normalized to the
// canonical cube [-1,1]^m, with optional scalar values attached per sample.
//
// No matter which probability density generated the points, they must be
// normalized to [-1,1] before the active-subspace machinery consumes them;
// physical domains are described separately via per-dimension bounds, which
// the gradient evaluator uses for its chain-rule rescaling.
//
// Key operations:
//   - Generate — draw M uniform samples (guarded against silent overwrite)
//   - Extract / Replace / Add — bounds- and shape-checked row access
//   - AssignValues / AssignValue — attach scalar QoI values
//   - Index — locate a sample by its coordinates
//   - Snapshot / Load + WriteRecord / ReadRecord — mapping-of-arrays
//     persistence with optional zstd compression and an xxhash checksum
//
// All accessors hand out copies; the container's internal arrays are never
// aliased by returned values.
//
// Errors are package sentinels (ErrOutOfRange, ErrShape, ...) and must be
// matched with errors.Is.
package sampling
