package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/cdfkit/cdf/verify"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check the header byte-count registers for consistency",
		Long: `The validate command evaluates every header register consistency rule
against the actual file length and reports each violation with the expected
and actual values. An inconsistent header makes the simulator reject the
file; run repair to fix the derivable registers.

The command only reads the file.

Example:
  cdfctl validate car.cdf
  cdfctl validate car.cdf --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
	return cmd
}

func runValidate(args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	report, err := verify.Check(data)
	if err != nil {
		return fmt.Errorf("cannot check %s: %w", args[0], err)
	}

	if jsonOut {
		return printJSON(report)
	}

	printInfo("Validating: %s (%d bytes)\n", args[0], report.FileLength)
	regs := report.Registers
	printVerbose("  R0=%d R1=%d R2=%d R3=%d\n", regs.R0, regs.R1, regs.R2, regs.R3)

	if report.Ok() {
		printInfo("✓ Header registers are consistent\n")
		return nil
	}

	for _, f := range report.Failures {
		printInfo("  ✗ [%s] %s (expected %d, got %d)\n", f.Check, f.Message, f.Expected, f.Actual)
	}
	return fmt.Errorf("%d header register check(s) failing", len(report.Failures))
}
