package cluster

import (
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// DefaultMaxIter bounds the number of Lloyd sweeps before Detect gives up
// on convergence and keeps the latest centroids.
const DefaultMaxIter = 1000

// convergenceTol is the element-wise centroid tolerance that terminates
// the Lloyd iteration.
const convergenceTol = 1e-12

// Option configures a Clusterer at construction time.
type Option func(*Clusterer)

// WithSource injects the random source used for centroid initialization.
// Defaults to a time-seeded source.
func WithSource(src rand.Source) Option {
	return func(c *Clusterer) { c.rng = rand.New(src) }
}

// WithSeed is shorthand for WithSource(rand.NewSource(seed)).
func WithSeed(seed uint64) Option {
	return func(c *Clusterer) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithMaxIter overrides DefaultMaxIter.
func WithMaxIter(n int) Option {
	return func(c *Clusterer) {
		if n > 0 {
			c.maxIter = n
		}
	}
}

// WithLogger injects the structured logger used for the empty-cluster
// warning. Defaults to a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Clusterer) { c.log = log }
}

func defaultRand() *rand.Rand {
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}
