package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/plateparity/plateparity/plate"
	"github.com/plateparity/plateparity/plate/config"
	"github.com/plateparity/plateparity/plate/format"
)

var (
	solveLimit     int
	solveRulesPath string
	solvePlain     bool

	solvePlus  bool
	solveMinus bool
	solveTimes bool
	solveMod   bool
	solvePow   bool
	solveAbs   bool
	solveFact  bool

	solveIntExp  bool
	solvePowMin  int64
	solvePowMax  int64
	solveMaxFact int64
	solveUnary   bool
	solveTol     float64
)

var solveCmd = &cobra.Command{
	Use:   "solve <digits>",
	Short: "Find all true equations for four digits",
	Long: `Find every equation the four digits can form under the current rules.

Rules come from defaults, then an optional --rules HCL file, then any
rule flags set on the command line, in that order.

Examples:
  plateparity solve 4312
  plateparity solve 4312 --limit 25
  plateparity solve 4312 --mod --fact=false
  plateparity solve 4312 --rules house-rules.hcl --plain`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	addSolveFlags(solveCmd.Flags())
}

func addSolveFlags(fs *pflag.FlagSet) {
	defaults := plate.DefaultRules()

	fs.IntVar(&solveLimit, "limit", 10, "Maximum number of solutions to print (0 = all)")
	fs.StringVar(&solveRulesPath, "rules", "", "Path to an HCL rules file")
	fs.BoolVar(&solvePlain, "plain", false, "Plain numbered output without table or color")

	fs.BoolVar(&solvePlus, "plus", defaults.AllowPlus, "Allow the + operator")
	fs.BoolVar(&solveMinus, "minus", defaults.AllowMinus, "Allow the - operator")
	fs.BoolVar(&solveTimes, "times", defaults.AllowTimes, "Allow the × operator")
	fs.BoolVar(&solveMod, "mod", defaults.AllowMod, "Allow the % operator")
	fs.BoolVar(&solvePow, "pow", defaults.AllowPow, "Allow the ^ operator")
	fs.BoolVar(&solveAbs, "abs", defaults.AllowAbs, "Allow absolute value |x|")
	fs.BoolVar(&solveFact, "fact", defaults.AllowFact, "Allow factorial (x)!")

	fs.BoolVar(&solveIntExp, "int-exp", defaults.PowRequireIntExp, "Require integer exponents")
	fs.Int64Var(&solvePowMin, "pow-min", defaults.PowMinExp, "Minimum allowed exponent")
	fs.Int64Var(&solvePowMax, "pow-max", defaults.PowMaxExp, "Maximum allowed exponent")
	fs.Int64Var(&solveMaxFact, "max-fact", defaults.MaxFactorialArg, "Largest allowed factorial argument")
	fs.BoolVar(&solveUnary, "unary", defaults.EnableUnaryWrapping, "Apply unary operators at every node")
	fs.Float64Var(&solveTol, "tol", defaults.EqTolerance, "Absolute tolerance for float equality")
}

func runSolve(cmd *cobra.Command, args []string) error {
	digits, err := parseDigits(args[0])
	if err != nil {
		return err
	}

	rules := plate.DefaultRules()
	if solveRulesPath != "" {
		rules, err = config.LoadRules(solveRulesPath)
		if err != nil {
			return err
		}
	}
	applyRuleFlags(cmd, &rules)

	solutions := plate.Solve(rules, digits)

	formatter := format.NewFormatter(os.Stdout)
	formatter.Limit = solveLimit
	formatter.Plain = solvePlain
	formatter.PrintSolutions(args[0], solutions)
	return nil
}

// applyRuleFlags overrides loaded rules with any flag the user set
// explicitly, so flags win over the rules file.
func applyRuleFlags(cmd *cobra.Command, rules *plate.Rules) {
	flags := cmd.Flags()

	override := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}

	override("plus", func() { rules.AllowPlus = solvePlus })
	override("minus", func() { rules.AllowMinus = solveMinus })
	override("times", func() { rules.AllowTimes = solveTimes })
	override("mod", func() { rules.AllowMod = solveMod })
	override("pow", func() { rules.AllowPow = solvePow })
	override("abs", func() { rules.AllowAbs = solveAbs })
	override("fact", func() { rules.AllowFact = solveFact })
	override("int-exp", func() { rules.PowRequireIntExp = solveIntExp })
	override("pow-min", func() { rules.PowMinExp = solvePowMin })
	override("pow-max", func() { rules.PowMaxExp = solvePowMax })
	override("max-fact", func() { rules.MaxFactorialArg = solveMaxFact })
	override("unary", func() { rules.EnableUnaryWrapping = solveUnary })
	override("tol", func() { rules.EqTolerance = solveTol })
}

// parseDigits validates the CLI input before the core ever sees it:
// exactly four digits 0-9, nothing else.
func parseDigits(s string) ([4]int, error) {
	var digits [4]int
	runes := []rune(s)
	if len(runes) != 4 {
		return digits, fmt.Errorf("provide exactly four digits, e.g. 4312 (got %q)", s)
	}
	for i, r := range runes {
		if r < '0' || r > '9' {
			return digits, fmt.Errorf("provide exactly four digits, e.g. 4312 (got %q)", s)
		}
		digits[i] = int(r - '0')
	}
	return digits, nil
}
