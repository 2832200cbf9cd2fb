// Package matcher defines the validated substitution rule used by
// fizzgen's generators.
//
// 🚀 What is a Matcher?
//
//	A Matcher pairs a positive divisor with non-empty replacement text.
//	During generation, every number evenly divisible by the divisor is
//	substituted by the text; matchers are always consulted in the order
//	the caller supplies them.
//
// ✨ Key guarantees:
//   - validated at construction: divisor ≥ 1, text non-empty — never
//     violated afterwards (the value is immutable)
//   - sentinel errors (ErrNonPositiveDivisor, ErrEmptyText, ...) for
//     precise errors.Is branching
//   - no panics at runtime; option constructors fail fast on misuse
//   - randomness is an explicit capability: NewRandom draws a divisor
//     only from an RNG the caller injects (WithRand / WithSeed)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/fizzgen/matcher"
//
//	fizz, err := matcher.New(3, "Fizz")
//	if err != nil {
//	  // ErrNonPositiveDivisor or ErrEmptyText
//	}
//
//	// reproducible random divisor in [1, 10]
//	lucky, err := matcher.NewRandom(1, 10, "Lucky", matcher.WithSeed(42))
//
// Complexity: every operation in this package is O(1) time and space
// (plus the text copy held by the value itself).
//
// See examples in example_test.go.
package matcher
