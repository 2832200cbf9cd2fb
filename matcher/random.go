// random.go — divisor sampling for the NewRandom convenience constructor.
//
// Canonical model:
//   - Draw one divisor uniformly from the closed interval [lo, hi].
//   - Route the draw through New so random rules obey the exact same
//     validation and failure modes as hand-built ones.
//
// Contract:
//   - lo ≤ hi (else ErrInvalidInterval).
//   - An RNG must be injected via WithRand or WithSeed (else ErrNeedRandSource).
//   - A degenerate interval reaching into non-positive values may sample a
//     divisor ≤ 0; that surfaces as ErrNonPositiveDivisor from New.
//   - Returns only sentinel-wrapped errors; never panics at runtime.
//
// Determinism:
//   - Fixed seed + fixed bounds → fixed divisor (single Int63n draw).

package matcher

import "fmt"

// NewRandom returns a Matcher whose divisor is drawn uniformly from the
// inclusive interval [lo, hi], using the RNG injected through opts.
//
// The sampled divisor is validated by New, so NewRandom fails exactly the
// way New does on a bad draw.
//
// Complexity: O(1) time and space (one uniform draw).
func NewRandom(lo, hi int, text string, opts ...Option) (Matcher, error) {
	// 1) Validate the interval early (fail fast, no sampling on bad bounds).
	if lo > hi {
		return Matcher{}, fmt.Errorf("NewRandom: interval [%d,%d] is inverted: %w", lo, hi, ErrInvalidInterval)
	}

	// 2) Resolve options; an RNG is mandatory for any stochastic draw.
	cfg := newConfig(opts)
	if cfg.rng == nil {
		return Matcher{}, fmt.Errorf("NewRandom: %w", ErrNeedRandSource)
	}

	// 3) Uniform draw over the closed interval; the interval is already
	//    known non-inverted, so span ≥ 1.
	span := int64(hi) - int64(lo) + 1
	divisor := lo + int(cfg.rng.Int63n(span))

	// 4) Same validation path as hand-built rules.
	return New(divisor, text)
}
