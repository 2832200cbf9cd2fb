// options.go — functional options for the stochastic constructor.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     the constructors themselves never panic at runtime.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through config.

package matcher

import (
	"math/rand" // RNG source for NewRandom
)

// config aggregates the knobs consumed by NewRandom. It is resolved once
// per call and never escapes the constructor.
type config struct {
	// RNG for divisor sampling; nil means "no randomness supplied".
	rng *rand.Rand
}

// Option customizes NewRandom by mutating a config instance before any
// sampling happens. Applying N options costs O(N) time, O(1) space.
type Option func(*config)

// WithRand provides an explicit RNG for NewRandom.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("matcher: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) Option {
	return func(c *config) {
		// Seeded source → reproducible draws.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// newConfig applies options in-order (later overrides earlier) and returns
// the resolved configuration by value.
func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
