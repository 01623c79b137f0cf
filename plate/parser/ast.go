package parser

import (
	"fmt"
	"math"
	"strconv"

	"github.com/plateparity/plateparity/plate"
)

// Node is a parsed expression tree that can re-evaluate itself. The
// evaluator applies no rule toggles or bounds; it answers only what a
// written expression is worth, so solver output can be checked
// independently of the configuration that produced it.
type Node interface {
	Eval() (plate.Value, error)
	String() string
}

// Number is an integer literal.
type Number struct {
	Val int64
}

func (n *Number) Eval() (plate.Value, error) { return plate.Int(n.Val), nil }
func (n *Number) String() string             { return strconv.FormatInt(n.Val, 10) }

// Binary is L op R where op is one of + - × % ^.
type Binary struct {
	Op    string
	Left  Node
	Right Node
}

func (b *Binary) Eval() (plate.Value, error) {
	l, err := b.Left.Eval()
	if err != nil {
		return nil, err
	}
	r, err := b.Right.Eval()
	if err != nil {
		return nil, err
	}

	switch b.Op {
	case plate.SymPlus:
		return numeric(plate.AsFloat(l)+plate.AsFloat(r), b)
	case plate.SymMinus:
		return numeric(plate.AsFloat(l)-plate.AsFloat(r), b)
	case plate.SymTimes:
		return numeric(plate.AsFloat(l)*plate.AsFloat(r), b)
	case plate.SymMod:
		if !plate.IsInteger(l) || !plate.IsInteger(r) {
			return nil, fmt.Errorf("modulo requires integer operands in %s", b)
		}
		ri := int64(plate.AsFloat(r))
		if ri == 0 {
			return nil, fmt.Errorf("modulo by zero in %s", b)
		}
		return plate.Int(int64(plate.AsFloat(l)) % ri), nil
	case plate.SymPow:
		return numeric(math.Pow(plate.AsFloat(l), plate.AsFloat(r)), b)
	}
	return nil, fmt.Errorf("unknown operator %q", b.Op)
}

func (b *Binary) String() string {
	return "(" + b.Left.String() + " " + b.Op + " " + b.Right.String() + ")"
}

// Abs is |X|.
type Abs struct {
	X Node
}

func (a *Abs) Eval() (plate.Value, error) {
	v, err := a.X.Eval()
	if err != nil {
		return nil, err
	}
	return numeric(math.Abs(plate.AsFloat(v)), a)
}

func (a *Abs) String() string { return "|" + a.X.String() + "|" }

// Fact is (X)!.
type Fact struct {
	X Node
}

// maxFactorial is the largest n where n! fits an int64.
const maxFactorial = 20

func (f *Fact) Eval() (plate.Value, error) {
	v, err := f.X.Eval()
	if err != nil {
		return nil, err
	}
	if !plate.IsInteger(v) {
		return nil, fmt.Errorf("factorial of non-integer in %s", f)
	}
	n := int64(plate.AsFloat(v))
	if n < 0 || n > maxFactorial {
		return nil, fmt.Errorf("factorial argument %d out of range in %s", n, f)
	}
	result := int64(1)
	for i := int64(2); i <= n; i++ {
		result *= i
	}
	return plate.Int(result), nil
}

func (f *Fact) String() string { return "(" + f.X.String() + ")!" }

// numeric converts a float result back into the value model, rejecting
// NaN and infinities from overflow.
func numeric(f float64, n Node) (plate.Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("value out of range in %s", n)
	}
	if f == math.Trunc(f) && math.Abs(f) <= 1<<53 {
		return plate.Int(int64(f)), nil
	}
	return plate.Real(f), nil
}
