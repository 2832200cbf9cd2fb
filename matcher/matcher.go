package matcher

import "fmt"

// minDivisor is the smallest divisor a rule may carry.
const minDivisor = 1

// Matcher is an immutable substitution rule: numbers evenly divisible by
// its divisor are replaced by its text. Both fields are validated by New
// and can never be violated afterwards; the zero Matcher is not valid and
// is never produced by this package.
//
// Matcher values are safe to copy and to share across goroutines.
type Matcher struct {
	divisor int
	text    string
}

// New returns a Matcher for the given divisor and replacement text.
//
// Validation (in parameter order, fail fast):
//   - divisor must be ≥ 1, else ErrNonPositiveDivisor;
//   - text must be non-empty, else ErrEmptyText.
//
// Both sentinels are wrapped with the offending value for reporting and
// remain branchable via errors.Is.
//
// Complexity: O(1) time and space.
func New(divisor int, text string) (Matcher, error) {
	if divisor < minDivisor {
		return Matcher{}, fmt.Errorf("New: divisor must be ≥ %d, got %d: %w", minDivisor, divisor, ErrNonPositiveDivisor)
	}
	if text == "" {
		return Matcher{}, fmt.Errorf("New: text must be non-empty: %w", ErrEmptyText)
	}

	return Matcher{divisor: divisor, text: text}, nil
}

// Divisor reports the validated divisor of the rule.
func (m Matcher) Divisor() int { return m.divisor }

// Text reports the validated replacement text of the rule.
func (m Matcher) Text() string { return m.text }

// Matches reports whether n should be substituted by this rule, i.e.
// whether the divisor evenly divides n. Go's remainder operator yields
// n % d == 0 exactly when d divides n, regardless of the sign of n, so
// negative numbers behave symmetrically to positive ones.
//
// Complexity: O(1) time and space.
func (m Matcher) Matches(n int) bool {
	return n%m.divisor == 0
}

// Substitute returns the replacement text when the rule matches n and the
// empty string otherwise. Generators concatenate these per-rule results in
// matcher order to build one output element.
//
// Complexity: O(1) time and space.
func (m Matcher) Substitute(n int) string {
	if m.Matches(n) {
		return m.text
	}

	return ""
}
