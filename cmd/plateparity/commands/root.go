// Package commands provides the CLI commands for the plateparity tool.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "plateparity [digits]",
	Short: "Solver for the license-plate equality game",
	Long: `PlateParity finds every way to turn four digits into a true equation.

The digit order is fixed and digits are never concatenated. One "=" is
placed between the digits, and the remaining gaps are filled with the
allowed operators (+ - × % ^), factorial, absolute value, and
parentheses.

Usage:
  plateparity 4312              Solve four digits (shorthand)
  plateparity solve 4312        Solve explicitly, with rule flags
  plateparity check "1 + 2 = 3" Re-evaluate an equation
  plateparity version           Print version`,
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	// Solve directly if a digit string is provided as argument.
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		if isDigitString(args[0]) {
			return runSolve(cmd, args)
		}
		return fmt.Errorf("unknown command %q for \"plateparity\"\nRun 'plateparity --help' for usage", args[0])
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	// Mirror solve flags on the root for the shorthand form.
	addSolveFlags(rootCmd.Flags())
}

func isDigitString(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
