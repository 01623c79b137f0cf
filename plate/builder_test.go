package plate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// textsOf indexes built expressions by their canonical text.
func textsOf(exprs []Expr) map[string]Expr {
	m := make(map[string]Expr, len(exprs))
	for _, e := range exprs {
		m[e.Text] = e
	}
	return m
}

func TestBuildSingleDigit(t *testing.T) {
	exprs := Build(DefaultRules(), []int{3})
	texts := textsOf(exprs)

	require.Len(t, exprs, 4)
	require.Contains(t, texts, "3")
	require.Contains(t, texts, "|3|")
	require.Contains(t, texts, "(3)!")
	require.Contains(t, texts, "(|3|)!")

	require.Equal(t, int64(3), texts["3"].Val)
	require.Equal(t, int64(6), texts["(3)!"].Val)
	require.Equal(t, int64(6), texts["(|3|)!"].Val)
	require.True(t, texts["(3)!"].IsInt)
}

func TestBuildUnaryWrappingDisabled(t *testing.T) {
	rules := DefaultRules()
	rules.EnableUnaryWrapping = false

	exprs := Build(rules, []int{3})
	require.Len(t, exprs, 1)
	require.Equal(t, "3", exprs[0].Text)
}

func TestBuildNeverConcatenatesDigits(t *testing.T) {
	for _, e := range Build(DefaultRules(), []int{1, 2, 3}) {
		// Leaves are single digits; adjacent digit characters would
		// mean two digits were merged into one literal.
		for i := 0; i+1 < len(e.Text); i++ {
			if isDigitByte(e.Text[i]) && isDigitByte(e.Text[i+1]) {
				t.Fatalf("concatenated digits in %q", e.Text)
			}
		}
		// The leaves, read left to right, are exactly the input digits.
		var leaves []byte
		for i := 0; i < len(e.Text); i++ {
			if isDigitByte(e.Text[i]) {
				leaves = append(leaves, e.Text[i])
			}
		}
		if string(leaves) != "123" {
			t.Fatalf("expected leaves 123 in order, got %q in %q", leaves, e.Text)
		}
	}
}

func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }

func TestBuildNeverDivides(t *testing.T) {
	for _, e := range Build(DefaultRules(), []int{9, 3, 2}) {
		if strings.ContainsAny(e.Text, "/÷") {
			t.Fatalf("division operator in %q", e.Text)
		}
	}
}

func TestBuildModuloPreconditions(t *testing.T) {
	rules := DefaultRules()
	rules.AllowMod = true

	texts := textsOf(Build(rules, []int{5, 0}))

	// A literal zero divisor is pruned, not an error.
	require.NotContains(t, texts, "(5 % 0)")
	require.NotContains(t, texts, "(5 % |0|)")
	// A zero digit wrapped into a nonzero value is a fine divisor.
	require.Contains(t, texts, "(5 % (0)!)")
	require.Equal(t, int64(0), texts["(5 % (0)!)"].Val)
}

func TestBuildModuloTruncates(t *testing.T) {
	rules := DefaultRules()
	rules.AllowMod = true

	// (2 - 9) % 3: truncating modulo gives -1, not floored 2.
	texts := textsOf(Build(rules, []int{2, 9, 3}))
	require.Contains(t, texts, "((2 - 9) % 3)")
	require.Equal(t, int64(-1), texts["((2 - 9) % 3)"].Val)
}

func TestBuildFactorialBound(t *testing.T) {
	rules := DefaultRules()
	rules.MaxFactorialArg = 3

	texts := textsOf(Build(rules, []int{2, 2}))

	// 2 - 2 = 0 is within the bound, 2 + 2 = 4 is not.
	require.Contains(t, texts, "((2 - 2))!")
	require.NotContains(t, texts, "((2 + 2))!")
	for text := range texts {
		if strings.Contains(text, "((2 + 2))!") {
			t.Fatalf("factorial of out-of-bound value in %q", text)
		}
	}
}

func TestBuildExponentBounds(t *testing.T) {
	texts := textsOf(Build(DefaultRules(), []int{2, 6}))
	require.Contains(t, texts, "(2 ^ 6)")
	require.Equal(t, int64(64), texts["(2 ^ 6)"].Val)

	texts = textsOf(Build(DefaultRules(), []int{2, 7}))
	require.NotContains(t, texts, "(2 ^ 7)")
}

func TestBuildNegativeExponentGoesFractional(t *testing.T) {
	rules := DefaultRules()
	rules.PowMinExp = -6

	texts := textsOf(Build(rules, []int{2, 1, 3}))
	e, ok := texts["(2 ^ (1 - 3))"]
	require.True(t, ok, "expected negative exponent candidate")
	require.False(t, e.IsInt)
	require.Equal(t, 0.25, e.Val)
}

func TestBuildFactorialNeverWrappedInAbs(t *testing.T) {
	// Factorial results are nonnegative, so |x!| is never generated.
	for _, e := range Build(DefaultRules(), []int{4, 2}) {
		if strings.Contains(e.Text, "|(") && strings.Contains(e.Text, ")!|") {
			t.Fatalf("abs applied to factorial result in %q", e.Text)
		}
	}
}

func TestBuildDeduplicates(t *testing.T) {
	exprs := Build(DefaultRules(), []int{2, 2, 2})
	seen := make(map[exprKey]struct{}, len(exprs))
	for _, e := range exprs {
		k := e.key()
		if _, dup := seen[k]; dup {
			t.Fatalf("duplicate expression %q", e.Text)
		}
		seen[k] = struct{}{}
	}
}
