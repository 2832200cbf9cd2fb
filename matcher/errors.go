package matcher

import "errors"

var (
	// ErrNonPositiveDivisor indicates a divisor ≤ 0 was supplied to a
	// constructor. Divisibility is undefined for zero and a non-positive
	// divisor never names a meaningful rule.
	// Usage: if errors.Is(err, ErrNonPositiveDivisor) { /* reject rule */ }.
	ErrNonPositiveDivisor = errors.New("matcher: divisor must be positive")

	// ErrEmptyText indicates the replacement text is empty. An empty
	// substitution is indistinguishable from "no match" in generator output,
	// so it is rejected at construction time.
	// Usage: if errors.Is(err, ErrEmptyText) { /* prompt for text */ }.
	ErrEmptyText = errors.New("matcher: text must be non-empty")

	// ErrNeedRandSource indicates NewRandom was called without an RNG.
	// The package never falls back to global randomness; supply one via
	// WithRand or WithSeed.
	// Usage: if errors.Is(err, ErrNeedRandSource) { /* seed an RNG */ }.
	ErrNeedRandSource = errors.New("matcher: rng is required")

	// ErrInvalidInterval indicates NewRandom received an inverted sampling
	// interval (lo > hi), from which no divisor can be drawn.
	// Usage: if errors.Is(err, ErrInvalidInterval) { /* fix bounds */ }.
	ErrInvalidInterval = errors.New("matcher: interval lower bound exceeds upper bound")
)
