package plate

import (
	"math"
	"strconv"
)

// Output symbols. Multiplication uses the pretty × rather than *.
const (
	SymPlus  = "+"
	SymMinus = "-"
	SymTimes = "×"
	SymMod   = "%"
	SymPow   = "^"
	SymEq    = "="
)

// Build returns every distinct expression reachable from an ordered run
// of digits under the given rules: all split positions, all allowed
// binary operators, one layer of unary wrapping at every node. Digits
// are never concatenated and never reordered. The result is
// deduplicated by (value, text); slice order is unspecified.
func Build(rules Rules, digits []int) []Expr {
	if len(digits) == 1 {
		d := digits[0]
		return wrapUnaries(rules, newExpr(Int(int64(d)), strconv.Itoa(d)))
	}

	results := make(map[exprKey]Expr)
	for split := 1; split < len(digits); split++ {
		left := Build(rules, digits[:split])
		right := Build(rules, digits[split:])
		for _, l := range left {
			for _, r := range right {
				for _, c := range combineBinary(rules, l, r) {
					for _, w := range wrapUnaries(rules, c) {
						results[w.key()] = w
					}
				}
			}
		}
	}

	out := make([]Expr, 0, len(results))
	for _, e := range results {
		out = append(out, e)
	}
	return out
}

// combineBinary generates (L op R) for every allowed operator whose
// precondition holds. A failed precondition or overflow just drops the
// candidate; nothing here returns an error.
func combineBinary(rules Rules, l, r Expr) []Expr {
	var out []Expr

	if rules.AllowPlus {
		if v, ok := addValues(l.Val, r.Val); ok {
			out = append(out, newExpr(v, binText(l, SymPlus, r)))
		}
	}
	if rules.AllowMinus {
		if v, ok := subValues(l.Val, r.Val); ok {
			out = append(out, newExpr(v, binText(l, SymMinus, r)))
		}
	}
	if rules.AllowTimes {
		if v, ok := mulValues(l.Val, r.Val); ok {
			out = append(out, newExpr(v, binText(l, SymTimes, r)))
		}
	}
	if rules.AllowMod {
		if l.IsInt && r.IsInt {
			li, lok := asInt64(l.Val)
			ri, rok := asInt64(r.Val)
			if lok && rok && ri != 0 {
				out = append(out, newExpr(Int(li%ri), binText(l, SymMod, r)))
			}
		}
	}
	if rules.AllowPow {
		if v, ok := safePow(rules, l.Val, r.Val); ok {
			out = append(out, newExpr(v, binText(l, SymPow, r)))
		}
	}

	return out
}

func binText(l Expr, op string, r Expr) string {
	return "(" + l.Text + " " + op + " " + r.Text + ")"
}

func addValues(a, b Value) (Value, bool) {
	if ai, ok := a.(int64); ok {
		if bi, ok := b.(int64); ok {
			v, ok := addInt(ai, bi)
			return v, ok
		}
	}
	return finite(AsFloat(a) + AsFloat(b))
}

func subValues(a, b Value) (Value, bool) {
	if ai, ok := a.(int64); ok {
		if bi, ok := b.(int64); ok {
			v, ok := subInt(ai, bi)
			return v, ok
		}
	}
	return finite(AsFloat(a) - AsFloat(b))
}

func mulValues(a, b Value) (Value, bool) {
	if ai, ok := a.(int64); ok {
		if bi, ok := b.(int64); ok {
			v, ok := mulInt(ai, bi)
			return v, ok
		}
	}
	return finite(AsFloat(a) * AsFloat(b))
}

func finite(f float64) (Value, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	return Real(f), true
}

// safePow applies the exponent constraints before computing L^R.
// Integer base with a nonnegative integer exponent stays exact;
// everything else goes through float math, with NaN/Inf pruned.
func safePow(rules Rules, a, b Value) (Value, bool) {
	if rules.PowRequireIntExp && !IsInteger(b) {
		return nil, false
	}
	if IsInteger(b) {
		e, ok := asInt64(b)
		if !ok {
			return nil, false
		}
		if e < rules.PowMinExp || e > rules.PowMaxExp {
			return nil, false
		}
		if ai, ok := asInt64(a); ok && IsInteger(a) && e >= 0 {
			return intPow(ai, e)
		}
		return finite(math.Pow(AsFloat(a), float64(e)))
	}
	return finite(math.Pow(AsFloat(a), AsFloat(b)))
}

func intPow(base, exp int64) (Value, bool) {
	v := int64(1)
	for i := int64(0); i < exp; i++ {
		var ok bool
		v, ok = mulInt(v, base)
		if !ok {
			return nil, false
		}
	}
	return Int(v), true
}

// wrapUnaries expands one breadth-first unary layer over e: the
// expression itself, its absolute value, and factorial applied to both.
// Factorial-then-abs is never generated; factorial results are already
// nonnegative, so abs would be a no-op.
func wrapUnaries(rules Rules, e Expr) []Expr {
	variants := []Expr{e}
	if !rules.EnableUnaryWrapping {
		return variants
	}

	if rules.AllowAbs {
		if a, ok := absExpr(e); ok {
			variants = append(variants, a)
		}
	}
	if rules.AllowFact {
		var more []Expr
		for _, v := range variants {
			if f, ok := factExpr(rules, v); ok {
				more = append(more, f)
			}
		}
		variants = append(variants, more...)
	}

	return dedupExprs(variants)
}

func absExpr(e Expr) (Expr, bool) {
	switch v := e.Val.(type) {
	case int64:
		if v == math.MinInt64 {
			return Expr{}, false
		}
		if v < 0 {
			v = -v
		}
		return newExpr(Int(v), "|"+e.Text+"|"), true
	case float64:
		return newExpr(Real(math.Abs(v)), "|"+e.Text+"|"), true
	}
	return Expr{}, false
}

func factExpr(rules Rules, e Expr) (Expr, bool) {
	if !e.IsInt {
		return Expr{}, false
	}
	n, ok := asInt64(e.Val)
	if !ok || n < 0 || n > rules.MaxFactorialArg {
		return Expr{}, false
	}
	v := int64(1)
	for i := int64(2); i <= n; i++ {
		v, ok = mulInt(v, i)
		if !ok {
			return Expr{}, false
		}
	}
	return newExpr(Int(v), "("+e.Text+")!"), true
}

// dedupExprs removes (value, text) duplicates, keeping first occurrence
// order so unary variants stay in a stable sequence.
func dedupExprs(exprs []Expr) []Expr {
	seen := make(map[exprKey]struct{}, len(exprs))
	out := exprs[:0]
	for _, e := range exprs {
		k := e.key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, e)
	}
	return out
}
