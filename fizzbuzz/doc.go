// Package fizzbuzz generates configurable FizzBuzz sequences over an
// inclusive integer range, driven by ordered matcher rules.
//
// 🚀 What is it?
//
//	The classic game, generalized: each number in [start, end] is either
//	substituted by the concatenated texts of every rule whose divisor
//	divides it (in rule order), or rendered as its own decimal form.
//
// ✨ Key features:
//   - Generate — the whole sequence as a []string, one element per integer
//   - Line — a single element, for hosts that stream or paginate
//   - Fprint — line-per-element output to any io.Writer
//   - empty rule sets are valid (pure decimal output)
//   - negative ranges welcome; divisibility ignores the sign of the number
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/fizzgen/fizzbuzz"
//	  "github.com/katalvlaran/fizzgen/matcher"
//	)
//
//	fizz, _ := matcher.New(3, "Fizz")
//	buzz, _ := matcher.New(5, "Buzz")
//	rules := []matcher.Matcher{fizz, buzz}
//
//	out, err := fizzbuzz.Generate(1, 15, rules)
//	if err != nil {
//	  // handle ErrInvalidRange
//	}
//
// Performance:
//
//   - Time:   O((end-start+1) · len(matchers))
//   - Memory: O(end-start+1) for the output slice (Fprint: O(1) extra)
//
// Every function here is pure and safe for concurrent use: matchers are
// immutable and nothing in this package holds state between calls.
package fizzbuzz
