package plate

import (
	"sort"
	"unicode/utf8"
)

// Solve tries every equality-sign placement for four digits in fixed
// order and returns each equation whose sides evaluate equal under the
// rules. Results are deduplicated and sorted shortest-first, ties by
// string order, so repeated calls return an identical sequence. An
// empty result is a valid outcome, not an error.
func Solve(rules Rules, digits [4]int) []string {
	seen := make(map[string]struct{})
	var solutions []string

	// "=" can go after the 1st, 2nd, or 3rd digit.
	for eqPos := 1; eqPos <= 3; eqPos++ {
		left := Build(rules, digits[:eqPos])
		right := Build(rules, digits[eqPos:])

		for _, l := range left {
			for _, r := range right {
				if !ValuesEqual(l.Val, r.Val, rules.EqTolerance) {
					continue
				}
				eq := StripOuterParens(l.Text + " " + SymEq + " " + r.Text)
				if _, dup := seen[eq]; dup {
					continue
				}
				seen[eq] = struct{}{}
				solutions = append(solutions, eq)
			}
		}
	}

	sort.Slice(solutions, func(i, j int) bool {
		li := utf8.RuneCountInString(solutions[i])
		lj := utf8.RuneCountInString(solutions[j])
		if li != lj {
			return li < lj
		}
		return solutions[i] < solutions[j]
	})
	return solutions
}

// StripOuterParens removes a parenthesis pair that encloses the entire
// string, repeating until none remains. Parens around sub-expressions
// are left intact. The operation is idempotent.
func StripOuterParens(s string) string {
	for {
		if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
			return s
		}
		depth := 0
		enclosing := true
		for i := 0; i < len(s); i++ {
			switch s[i] {
			case '(':
				depth++
			case ')':
				depth--
			}
			if depth == 0 && i != len(s)-1 {
				enclosing = false
				break
			}
		}
		if !enclosing {
			return s
		}
		s = s[1 : len(s)-1]
	}
}
