package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plateparity/plateparity/plate"
	"github.com/plateparity/plateparity/plate/format"
	"github.com/plateparity/plateparity/plate/parser"
)

var checkTol float64

var checkCmd = &cobra.Command{
	Use:   "check <equation>",
	Short: "Re-evaluate an equation and report whether it holds",
	Long: `Parse an equation in the solver's output grammar and evaluate both
sides independently.

Examples:
  plateparity check "1 + 2 = 3"
  plateparity check "(1 + 2) = |(3 - 6)|"
  plateparity check "(3)! = 2 × 3"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Float64Var(&checkTol, "tol", plate.DefaultRules().EqTolerance,
		"Absolute tolerance for float equality")
}

func runCheck(cmd *cobra.Command, args []string) error {
	// Allow the equation to arrive unquoted as several arguments.
	input := strings.Join(args, " ")

	eq, err := parser.ParseEquation(input)
	if err != nil {
		return err
	}
	holds, err := eq.Holds(checkTol)
	if err != nil {
		return err
	}

	format.NewFormatter(os.Stdout).PrintCheck(eq.String(), holds)
	if !holds {
		os.Exit(1)
	}
	return nil
}
