package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestFormatter() (*Formatter, *strings.Builder) {
	out := &strings.Builder{}
	f := NewFormatter(nil)
	f.writer = out
	f.useColor = false
	return f, out
}

func TestPrintSolutionsEmpty(t *testing.T) {
	f, out := newTestFormatter()
	f.PrintSolutions("1234", nil)
	require.Equal(t, "No solutions under the current rules.\n", out.String())
}

func TestPrintSolutionsTable(t *testing.T) {
	f, out := newTestFormatter()
	f.PrintSolutions("1236", []string{"(1 + 2) = 3", "(1 + 2) = |(3 - 6)|"})

	got := out.String()
	require.Contains(t, got, "Found 2 solutions for 1236:")
	require.Contains(t, got, "Equation")
	require.Contains(t, got, "(1 + 2) = 3")
	require.Contains(t, got, "(1 + 2) = |(3 - 6)|")
}

func TestPrintSolutionsLimit(t *testing.T) {
	f, out := newTestFormatter()
	f.Limit = 2
	f.PrintSolutions("0000", []string{"a = a", "b = b", "c = c", "d = d"})

	got := out.String()
	require.Contains(t, got, "a = a")
	require.Contains(t, got, "b = b")
	require.NotContains(t, got, "c = c")
	require.Contains(t, got, "(2 more not shown")
}

func TestPrintSolutionsPlain(t *testing.T) {
	f, out := newTestFormatter()
	f.Plain = true
	f.PrintSolutions("1111", []string{"1 = 1 × 1 × 1"})

	got := out.String()
	require.Contains(t, got, "Found 1 solution for 1111:")
	require.Contains(t, got, "  1. 1 = 1 × 1 × 1\n")
	require.NotContains(t, got, "|") // no table borders in plain mode
}

func TestPrintCheck(t *testing.T) {
	f, out := newTestFormatter()
	f.PrintCheck("1 + 2 = 3", true)
	require.Contains(t, out.String(), "✓ 1 + 2 = 3")

	f, out = newTestFormatter()
	f.PrintCheck("1 + 2 = 4", false)
	require.Contains(t, out.String(), "✗ 1 + 2 = 4 does not hold")
}
