package plate

import (
	"math"
	"strconv"
)

// Value represents a computed numeric quantity.
// We use interface{} with direct Go types rather than a wrapper struct,
// so exact integers and floating-point results stay distinguishable.
type Value interface{}

// Valid value types:
// - int64   (exact integers)
// - float64 (everything else, including integer-valued floats
//   too large to normalize)

// Helper functions for creating typed values
func Int(i int64) Value    { return i }
func Real(f float64) Value { return f }

// maxExactFloat is the largest magnitude at which a float64 still
// represents every integer exactly (2^53).
const maxExactFloat = 1 << 53

// IsInteger reports whether v is mathematically an integer, regardless
// of which concrete type carries it. An integer-valued float counts.
func IsInteger(v Value) bool {
	switch x := v.(type) {
	case int64:
		return true
	case float64:
		return !math.IsInf(x, 0) && !math.IsNaN(x) && x == math.Trunc(x)
	}
	return false
}

// normalize collapses integer-valued floats back to int64 where the
// conversion is exact, so integer results keep exact comparisons even
// after passing through float arithmetic.
func normalize(v Value) Value {
	f, ok := v.(float64)
	if !ok {
		return v
	}
	if IsInteger(f) && math.Abs(f) <= maxExactFloat {
		return int64(f)
	}
	return v
}

// asInt64 extracts v as an int64 when it is an integer that fits.
func asInt64(v Value) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case float64:
		if IsInteger(x) && math.Abs(x) <= maxExactFloat {
			return int64(x), true
		}
	}
	return 0, false
}

// AsFloat converts any value to float64 for tolerance-based comparison.
func AsFloat(v Value) float64 {
	switch x := v.(type) {
	case int64:
		return float64(x)
	case float64:
		return x
	}
	return math.NaN()
}

// FormatValue renders a value for dedup keys and display. Integers have
// no fractional part; floats use the shortest round-trip form.
func FormatValue(v Value) string {
	switch x := v.(type) {
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return ""
}

// ValuesEqual checks whether two values are equal under the solver's
// equality rule: exact comparison when both are integers, absolute
// tolerance (zero relative tolerance) otherwise.
func ValuesEqual(a, b Value, tol float64) bool {
	if IsInteger(a) && IsInteger(b) {
		ai, aok := asInt64(a)
		bi, bok := asInt64(b)
		if aok && bok {
			return ai == bi
		}
	}
	return math.Abs(AsFloat(a)-AsFloat(b)) <= tol
}

// Overflow-checked int64 arithmetic. A failed check prunes the
// candidate expression rather than surfacing an error.

func addInt(a, b int64) (int64, bool) {
	s := a + b
	if (s > a) == (b > 0) {
		return s, true
	}
	return 0, false
}

func subInt(a, b int64) (int64, bool) {
	d := a - b
	if (d < a) == (b > 0) {
		return d, true
	}
	return 0, false
}

func mulInt(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a == math.MinInt64 || b == math.MinInt64 {
		if a == 1 {
			return b, true
		}
		if b == 1 {
			return a, true
		}
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}
