// Package fizzgen is your in-memory playground for configurable
// FizzBuzz generation — user-defined divisor rules, deterministic
// sequences, and precise validation errors.
//
// 🚀 What is fizzgen?
//
//	A small, pure library that brings together:
//		• Matchers: validated (divisor, text) substitution rules
//		• Generation: the full sequence over any inclusive [start, end] range
//		• Single lines: one element at a time, for streaming hosts
//		• Random rules: divisors drawn from an injected, seedable RNG
//
// ✨ Why choose fizzgen?
//
//   - Beginner-friendly – two operations, clear, intuitive naming
//   - Rock-solid guarantees – immutable values, sentinel errors, no panics
//   - Pure Go – no cgo, no hidden deps, no global randomness
//   - Deterministic – identical inputs always yield identical output
//
// Under the hood, everything is organized under two subpackages:
//
//	matcher/  — the Matcher value type, its validating constructors & errors
//	fizzbuzz/ — Generate, Line and Fprint over ordered matcher sequences
//
// Quick example:
//
//	fizz, _ := matcher.New(3, "Fizz")
//	buzz, _ := matcher.New(5, "Buzz")
//	out, _ := fizzbuzz.Generate(1, 15, []matcher.Matcher{fizz, buzz})
//	// out[14] == "FizzBuzz"
//
// Dive into examples/ for a runnable walkthrough.
//
//	go get github.com/katalvlaran/fizzgen
package fizzgen
