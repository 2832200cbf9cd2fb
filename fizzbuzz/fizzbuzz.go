package fizzbuzz

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/fizzgen/matcher"
)

// Generate — configurable FizzBuzz over [start, end]
//
// Description:
//
//	For each integer i from start to end inclusive, in ascending order,
//	every matcher is consulted in slice order; the texts of all rules whose
//	divisor evenly divides i are concatenated (no separator) into the
//	output element. If no rule matches, the element is the decimal form
//	of i itself.
//
// Algorithm Outline:
//  1. Reject inverted ranges (start > end) with ErrInvalidRange. The range
//     is checked first, before any matcher inspection — rules cannot make
//     an inverted range well-formed.
//  2. Allocate the output slice of length end-start+1.
//  3. For each i in [start, end]: out[i-start] = Line(i, matchers).
//
// Errors:
//   - ErrInvalidRange — if start > end. An inverted range is a usage error,
//     not an empty request, so it never yields a silent empty slice.
var ErrInvalidRange = errors.New("fizzbuzz: start must not exceed end")

// Generate returns the FizzBuzz sequence for the inclusive range
// [start, end] under the given ordered rules. Element k of the result
// corresponds to the integer start+k. A nil or empty matcher slice is
// valid and yields each number's decimal form.
//
// Deterministic and side-effect free: identical inputs always produce
// identical output.
//
// Complexity: O((end-start+1)·len(matchers)) time, O(end-start+1) space.
func Generate(start, end int, matchers []matcher.Matcher) ([]string, error) {
	if start > end {
		return nil, ErrInvalidRange
	}

	out := make([]string, end-start+1)
	for i := start; i <= end; i++ {
		out[i-start] = Line(i, matchers)
	}

	return out, nil
}

// Line returns the single FizzBuzz element for n: the concatenated texts
// of every matching rule in slice order, or strconv.Itoa(n) when none
// match. Infallible — matchers are validated at construction and any
// integer is a legal input.
//
// Complexity: O(len(matchers)) time, O(1) extra space beyond the result.
func Line(n int, matchers []matcher.Matcher) string {
	var sb strings.Builder
	for _, m := range matchers {
		// Substitute is "" for non-matching rules, so order is preserved
		// and non-matches cost nothing.
		sb.WriteString(m.Substitute(n))
	}
	if sb.Len() == 0 {
		return strconv.Itoa(n)
	}

	return sb.String()
}

// Fprint writes the FizzBuzz sequence for [start, end] to w, one element
// per line. The range is validated exactly like Generate; write failures
// are wrapped and propagated.
//
// The process boundary is injected: this package never touches stdout.
//
// Complexity: O((end-start+1)·len(matchers)) time, O(1) extra space.
func Fprint(w io.Writer, start, end int, matchers []matcher.Matcher) error {
	if start > end {
		return ErrInvalidRange
	}

	for i := start; i <= end; i++ {
		if _, err := fmt.Fprintln(w, Line(i, matchers)); err != nil {
			return fmt.Errorf("Fprint: write failed at %d: %w", i, err)
		}
	}

	return nil
}
