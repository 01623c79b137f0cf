package plate

import (
	"math"
	"testing"
)

func TestIsInteger(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{Int(0), true},
		{Int(-7), true},
		{Real(2.0), true},
		{Real(-3.0), true},
		{Real(2.5), false},
		{Real(math.NaN()), false},
		{Real(math.Inf(1)), false},
	}
	for _, c := range cases {
		if got := IsInteger(c.v); got != c.want {
			t.Errorf("IsInteger(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestNormalizeCollapsesWholeFloats(t *testing.T) {
	e := newExpr(Real(4.0), "x")
	if _, ok := e.Val.(int64); !ok {
		t.Errorf("expected 4.0 to normalize to int64, got %T", e.Val)
	}
	if !e.IsInt {
		t.Error("expected IsInt for integer-valued float")
	}

	e = newExpr(Real(0.5), "y")
	if _, ok := e.Val.(float64); !ok {
		t.Errorf("expected 0.5 to stay float64, got %T", e.Val)
	}
	if e.IsInt {
		t.Error("0.5 must not be flagged integer")
	}
}

func TestValuesEqual(t *testing.T) {
	tol := 1e-9

	if !ValuesEqual(Int(3), Int(3), tol) {
		t.Error("equal integers must compare equal")
	}
	if ValuesEqual(Int(3), Int(4), tol) {
		t.Error("distinct integers must not compare equal")
	}
	// Integer comparison is exact, not tolerance-based.
	if ValuesEqual(Int(1000000000), Int(1000000001), 10.0) {
		t.Error("integer comparison must ignore the tolerance")
	}
	if !ValuesEqual(Int(2), Real(2.0), tol) {
		t.Error("int and integer-valued float must compare equal")
	}
	if !ValuesEqual(Real(0.1+0.2), Real(0.3), tol) {
		t.Error("floats within tolerance must compare equal")
	}
	if ValuesEqual(Real(0.3), Real(0.30001), tol) {
		t.Error("floats beyond tolerance must not compare equal")
	}
}

func TestFormatValue(t *testing.T) {
	if got := FormatValue(Int(-12)); got != "-12" {
		t.Errorf("FormatValue(-12) = %q", got)
	}
	if got := FormatValue(Real(2.5)); got != "2.5" {
		t.Errorf("FormatValue(2.5) = %q", got)
	}
}

func TestCheckedArithmetic(t *testing.T) {
	if _, ok := addInt(math.MaxInt64, 1); ok {
		t.Error("addInt must detect overflow")
	}
	if v, ok := addInt(40320, 40320); !ok || v != 80640 {
		t.Errorf("addInt(40320, 40320) = %d, %v", v, ok)
	}
	if _, ok := subInt(math.MinInt64, 1); ok {
		t.Error("subInt must detect underflow")
	}
	if _, ok := mulInt(math.MaxInt64, 2); ok {
		t.Error("mulInt must detect overflow")
	}
	if _, ok := mulInt(math.MinInt64, -1); ok {
		t.Error("mulInt must reject MinInt64 negation")
	}
	if v, ok := mulInt(-40320, 40320); !ok || v != -1626393600 {
		t.Errorf("mulInt(-40320, 40320) = %d, %v", v, ok)
	}
}
