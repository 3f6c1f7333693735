// File: config.go — functional options for Build, following the same
// resolved-config-from-variadic-options idiom as builder/config.go,
// with a WithSeed/WithRand pair for seeding the edge insertion shuffle.
package trapezoid

import "math/rand"

// Option customizes Build before edge insertion begins.
type Option func(cfg *config)

type config struct {
	ordered bool
	rng     *rand.Rand
}

func newConfig(opts ...Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Ordered disables the randomized edge insertion order, inserting
// edges in their subdivision key order instead. Intended for tests
// that need a reproducible DAG shape without depending on a seed.
func Ordered() Option {
	return func(cfg *config) { cfg.ordered = true }
}

// WithSeed seeds a new *rand.Rand for the edge insertion shuffle,
// deterministic across runs.
func WithSeed(seed int64) Option {
	return func(cfg *config) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies an explicit RNG for the edge insertion shuffle.
func WithRand(r *rand.Rand) Option {
	return func(cfg *config) { cfg.rng = r }
}
