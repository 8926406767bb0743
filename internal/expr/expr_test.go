package expr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		expr string
		days int
		want int
	}{
		{"d", 1, 1},
		{"d", 7, 7},
		{"d", 30, 30},
		{"2d", 5, 10},
		{"2d+1", 5, 11},
		{"d-2", 7, 5},
		{"d/2", 5, 3},  // ceiling, not truncation
		{"d/3", 7, 3},  // 7/3 -> 2.33 -> 3
		{"d/7", 14, 2}, // exact division stays exact
		{"(d+1)/2", 5, 3},
		{"2*(d/7)", 10, 4},
		{"3", 5, 3},
		{"  2 D + 1 ", 5, 11}, // whitespace stripped, lowercased
		{"d-10", 3, 1},       // clamped to minimum 1
		{"0", 9, 1},          // quantities are never zero
	}
	for _, tc := range cases {
		got, err := Evaluate(tc.expr, tc.days)
		require.NoError(t, err, "expr %q", tc.expr)
		require.Equal(t, tc.want, got, "expr %q days %d", tc.expr, tc.days)
	}
}

func TestEvaluateEmptyDefaultsToOne(t *testing.T) {
	for _, expr := range []string{"", "   "} {
		got, err := Evaluate(expr, 42)
		require.NoError(t, err)
		require.Equal(t, 1, got)
	}
}

func TestEvaluateRejectsMalformed(t *testing.T) {
	bad := []string{
		"d++",
		"+d",
		"d+",
		"(d",
		"d)",
		"d**2",
		"2x",
		"d 2 d!",
	}
	for _, expr := range bad {
		_, err := Evaluate(expr, 5)
		require.Error(t, err, "expr %q", expr)
		require.IsType(t, &ParseError{}, err)
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	_, err := Evaluate("d/0", 5)
	require.Error(t, err)
}

func TestEvaluateDeterministic(t *testing.T) {
	for i := 0; i < 5; i++ {
		got, err := Evaluate("(2d+3)/4", 11)
		require.NoError(t, err)
		require.Equal(t, 7, got)
	}
}

func TestValidate(t *testing.T) {
	require.True(t, Validate("d/2+1").Valid)
	require.True(t, Validate("").Valid)

	res := Validate("d++")
	require.False(t, res.Valid)
	require.NotEmpty(t, res.Error)
}
