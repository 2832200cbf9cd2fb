package matcher_test

import (
	"testing"

	"github.com/katalvlaran/fizzgen/matcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Valid verifies that a well-formed rule is constructed with its
// divisor and text intact.
func TestNew_Valid(t *testing.T) {
	m, err := matcher.New(3, "Fizz")
	require.NoError(t, err, "positive divisor and non-empty text must construct")
	assert.Equal(t, 3, m.Divisor(), "divisor must round-trip")
	assert.Equal(t, "Fizz", m.Text(), "text must round-trip")
}

// TestNew_NonPositiveDivisor ensures every divisor ≤ 0 is rejected with
// ErrNonPositiveDivisor.
func TestNew_NonPositiveDivisor(t *testing.T) {
	for _, divisor := range []int{0, -1, -100} {
		_, err := matcher.New(divisor, "x")
		assert.ErrorIs(t, err, matcher.ErrNonPositiveDivisor, "divisor=%d must error", divisor)
	}
}

// TestNew_EmptyText ensures empty replacement text is rejected with
// ErrEmptyText.
func TestNew_EmptyText(t *testing.T) {
	_, err := matcher.New(3, "")
	assert.ErrorIs(t, err, matcher.ErrEmptyText, "empty text must error")
}

// TestNew_DivisorCheckedFirst confirms the divisor rule wins when both
// parameters are invalid, matching the documented validation order.
func TestNew_DivisorCheckedFirst(t *testing.T) {
	_, err := matcher.New(0, "")
	assert.ErrorIs(t, err, matcher.ErrNonPositiveDivisor, "divisor is validated before text")
	assert.NotErrorIs(t, err, matcher.ErrEmptyText, "only the first failed rule is reported")
}

// TestMatcher_Matches checks divisibility around the divisor itself.
func TestMatcher_Matches(t *testing.T) {
	m, err := matcher.New(7, "Seven")
	require.NoError(t, err)

	assert.False(t, m.Matches(6), "7 does not divide 6")
	assert.True(t, m.Matches(7), "7 divides 7")
	assert.False(t, m.Matches(8), "7 does not divide 8")
	assert.True(t, m.Matches(0), "every divisor divides 0")
}

// TestMatcher_MatchesNegative verifies sign-insensitive divisibility:
// d divides n exactly when d divides -n.
func TestMatcher_MatchesNegative(t *testing.T) {
	m, err := matcher.New(2, "Even")
	require.NoError(t, err)

	assert.True(t, m.Matches(-4), "2 divides -4")
	assert.False(t, m.Matches(-3), "2 does not divide -3")
}

// TestMatcher_MatchesOne confirms a divisor of 1 matches every integer.
func TestMatcher_MatchesOne(t *testing.T) {
	m, err := matcher.New(1, "All")
	require.NoError(t, err)

	for _, n := range []int{-5, 0, 1, 2, 999} {
		assert.True(t, m.Matches(n), "1 divides %d", n)
	}
}

// TestMatcher_Substitute verifies text on match and "" otherwise.
func TestMatcher_Substitute(t *testing.T) {
	m, err := matcher.New(3, "Fizz")
	require.NoError(t, err)

	assert.Equal(t, "", m.Substitute(2), "no match yields empty string")
	assert.Equal(t, "Fizz", m.Substitute(3), "match yields the rule text")
	assert.Equal(t, "", m.Substitute(4), "no match yields empty string")
}
