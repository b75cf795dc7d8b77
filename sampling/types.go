package sampling

import (
	"time"

	"golang.org/x/exp/rand"
)

// Option configures a SampleSet at construction time.
type Option func(*SampleSet)

// WithSource injects the random source used for uniform draws.
// Defaults to a time-seeded source; inject a fixed seed for reproducible
// sample sets.
func WithSource(src rand.Source) Option {
	return func(s *SampleSet) { s.src = src }
}

// WithSeed is shorthand for WithSource(rand.NewSource(seed)).
func WithSeed(seed uint64) Option {
	return func(s *SampleSet) { s.src = rand.NewSource(seed) }
}

func defaultSource() rand.Source {
	return rand.NewSource(uint64(time.Now().UnixNano()))
}
