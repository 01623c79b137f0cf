package plate

// Expr is an immutable pairing of a computed value with the canonical
// text of the expression tree that produced it. The text is fully
// parenthesized, so it is unambiguous without precedence rules; it is
// used only for deduplication and display, never for evaluation.
type Expr struct {
	Val   Value
	Text  string
	IsInt bool
}

// exprKey is the dedup key: value rendering plus exact text.
// Two expressions with the same value but different trees are distinct.
type exprKey struct {
	val  string
	text string
}

// newExpr builds an Expr, normalizing integer-valued floats so the
// IsInt flag always agrees with the true integrality of the value.
func newExpr(v Value, text string) Expr {
	v = normalize(v)
	return Expr{Val: v, Text: text, IsInt: IsInteger(v)}
}

func (e Expr) key() exprKey {
	return exprKey{val: FormatValue(e.Val), text: e.Text}
}
