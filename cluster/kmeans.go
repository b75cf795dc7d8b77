package cluster

import (
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlsub/sampling"
)

// Clusterer partitions the samples of a SampleSet into k groups. It wraps
// the set by composition; the set itself is never mutated.
type Clusterer struct {
	set *sampling.SampleSet
	k   int

	maxIter int
	log     zerolog.Logger
	rng     *rand.Rand

	centroids *mat.Dense // k×m, nil before Detect
	members   []int      // per-sample cluster index, len M
}

// New wraps set for k-means clustering into k groups.
//
// Returns ErrNilSampleSet / ErrNotPopulated for a missing or empty set and
// ErrClusterCount unless 0 < k < M.
func New(set *sampling.SampleSet, k int, opts ...Option) (*Clusterer, error) {
	if set == nil {
		return nil, ErrNilSampleSet
	}
	if !set.Populated() {
		return nil, ErrNotPopulated
	}
	if k < 1 || k >= set.Len() {
		return nil, ErrClusterCount
	}
	c := &Clusterer{
		set:     set,
		k:       k,
		maxIter: DefaultMaxIter,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = defaultRand()
	}

	return c, nil
}

// K returns the cluster count.
func (c *Clusterer) K() int { return c.k }

// SampleSet returns the wrapped sample set.
func (c *Clusterer) SampleSet() *sampling.SampleSet { return c.set }

// Detected reports whether Detect (or Load) has produced centroids.
func (c *Clusterer) Detected() bool { return c.centroids != nil }

// Detect runs the Lloyd iteration: random centroids inside the data's
// bounding range, then alternating assignment and mean updates until the
// centroids stop moving or MaxIter sweeps have passed.
func (c *Clusterer) Detect() error {
	data := c.set.Samples()
	M, m := data.Dims()

	lo := floats.Min(data.RawMatrix().Data)
	hi := floats.Max(data.RawMatrix().Data)
	cents := mat.NewDense(c.k, m, nil)
	for i := 0; i < c.k; i++ {
		for j := 0; j < m; j++ {
			cents.Set(i, j, lo+(hi-lo)*c.rng.Float64())
		}
	}

	members := make([]int, M)
	counts := make([]int, c.k)
	warned := make([]bool, c.k)
	next := mat.NewDense(c.k, m, nil)
	x := make([]float64, m)
	for iter := 0; iter < c.maxIter; iter++ {
		for i := 0; i < M; i++ {
			mat.Row(x, i, data)
			members[i] = nearest(cents, x)
		}

		next.Zero()
		for i := range counts {
			counts[i] = 0
		}
		for i := 0; i < M; i++ {
			g := members[i]
			counts[g]++
			for j := 0; j < m; j++ {
				next.Set(g, j, next.At(g, j)+data.At(i, j))
			}
		}
		for g := 0; g < c.k; g++ {
			if counts[g] == 0 {
				// Empty cluster: keep its previous centroid alive.
				if !warned[g] {
					warned[g] = true
					c.log.Warn().Int("cluster", g).Msg("cluster lost all members, keeping centroid")
				}
				for j := 0; j < m; j++ {
					next.Set(g, j, cents.At(g, j))
				}

				continue
			}
			for j := 0; j < m; j++ {
				next.Set(g, j, next.At(g, j)/float64(counts[g]))
			}
		}

		if mat.EqualApprox(cents, next, convergenceTol) {
			cents.Copy(next)

			break
		}
		cents.Copy(next)
	}

	c.centroids = cents
	c.members = members

	return nil
}

// nearest returns the row of cents closest to x in squared Euclidean
// distance, ties broken toward the lower index.
func nearest(cents *mat.Dense, x []float64) int {
	k, m := cents.Dims()
	best, bestDist := 0, 0.0
	for g := 0; g < k; g++ {
		var d float64
		for j := 0; j < m; j++ {
			diff := x[j] - cents.At(g, j)
			d += diff * diff
		}
		if g == 0 || d < bestDist {
			best, bestDist = g, d
		}
	}

	return best
}

// Assign returns the index of the centroid nearest to x. Returns
// ErrNotDetected before Detect and ErrDimensions on a length mismatch.
func (c *Clusterer) Assign(x []float64) (int, error) {
	if c.centroids == nil {
		return 0, ErrNotDetected
	}
	if len(x) != c.set.Dim() {
		return 0, ErrDimensions
	}

	return nearest(c.centroids, x), nil
}

// ClusterIndex returns the cluster the i-th sample belongs to.
func (c *Clusterer) ClusterIndex(i int) (int, error) {
	if c.members == nil {
		return 0, ErrNotDetected
	}
	if i < 0 || i >= c.set.Len() {
		return 0, ErrOutOfRange
	}

	return c.members[i], nil
}

// Centroids returns a copy of the k×m centroid matrix.
func (c *Clusterer) Centroids() (*mat.Dense, error) {
	if c.centroids == nil {
		return nil, ErrNotDetected
	}
	out := new(mat.Dense)
	out.CloneFrom(c.centroids)

	return out, nil
}

// Clusters returns the per-cluster sample indices, ascending within each
// cluster. The outer slice has length k; empty clusters yield empty inner
// slices.
func (c *Clusterer) Clusters() ([][]int, error) {
	if c.members == nil {
		return nil, ErrNotDetected
	}
	out := make([][]int, c.k)
	for g := range out {
		out[g] = []int{}
	}
	for i, g := range c.members {
		out[g] = append(out[g], i)
	}

	return out, nil
}

// Snapshot extends the sample set's record with the detected centroids and
// memberships, ready for sampling.WriteRecord.
func (c *Clusterer) Snapshot() (*sampling.Record, error) {
	if c.centroids == nil {
		return nil, ErrNotDetected
	}
	rec := c.set.Snapshot()
	_, m := c.centroids.Dims()
	rec.Centroids = make([][]float64, c.k)
	for g := 0; g < c.k; g++ {
		row := make([]float64, m)
		mat.Row(row, g, c.centroids)
		rec.Centroids[g] = row
	}
	groups, err := c.Clusters()
	if err != nil {
		return nil, err
	}
	rec.Clusters = groups

	return rec, nil
}

// Load restores centroids and memberships from a record produced by
// Snapshot. The record's sample payload is ignored; only the clustering
// fields are consumed. Returns ErrShape when the centroid or membership
// shape does not fit this clusterer.
func (c *Clusterer) Load(rec *sampling.Record) error {
	if rec == nil || len(rec.Centroids) != c.k || len(rec.Clusters) != c.k {
		return ErrShape
	}
	m := c.set.Dim()
	cents := mat.NewDense(c.k, m, nil)
	for g, row := range rec.Centroids {
		if len(row) != m {
			return ErrShape
		}
		cents.SetRow(g, row)
	}
	members := make([]int, c.set.Len())
	seen := make([]bool, len(members))
	for g, idxs := range rec.Clusters {
		for _, i := range idxs {
			// Each sample index must appear exactly once across the groups.
			if i < 0 || i >= len(members) || seen[i] {
				return ErrShape
			}
			seen[i] = true
			members[i] = g
		}
	}
	for _, ok := range seen {
		if !ok {
			return ErrShape
		}
	}

	c.centroids = cents
	c.members = members

	return nil
}
