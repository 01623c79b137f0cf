package plate

// Rules is the configuration surface for a search. It is passed by
// value into Build and Solve and never mutated, so multiple searches
// with different rule sets can run in the same process.
type Rules struct {
	// Binary operators. Division is excluded by design and has no toggle.
	AllowPlus  bool
	AllowMinus bool
	AllowTimes bool
	AllowMod   bool
	AllowPow   bool

	// Unary operators.
	AllowAbs  bool
	AllowFact bool

	// Exponent constraints to avoid huge blow-ups.
	PowRequireIntExp bool
	PowMinExp        int64
	PowMaxExp        int64

	// Factorial only applies to integers in [0, MaxFactorialArg].
	MaxFactorialArg int64

	// Apply unary ops (abs, fact) at any node.
	EnableUnaryWrapping bool

	// Absolute tolerance for float comparison; integers compare exact.
	EqTolerance float64
}

// DefaultRules returns the standard rule set: + - × ^ with abs and
// factorial, no modulo, integer exponents in [0, 6], factorials up to 8!.
func DefaultRules() Rules {
	return Rules{
		AllowPlus:           true,
		AllowMinus:          true,
		AllowTimes:          true,
		AllowMod:            false,
		AllowPow:            true,
		AllowAbs:            true,
		AllowFact:           true,
		PowRequireIntExp:    true,
		PowMinExp:           0,
		PowMaxExp:           6,
		MaxFactorialArg:     8,
		EnableUnaryWrapping: true,
		EqTolerance:         1e-9,
	}
}
