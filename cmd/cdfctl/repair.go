package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/cdfkit/cdf/verify"
)

var (
	repairOut    string
	repairDryRun bool
)

func init() {
	rootCmd.AddCommand(newRepairCmd())
}

func newRepairCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repair <file>",
		Short: "Rewrite stale header registers from the actual file length",
		Long: `The repair command recomputes the derivable header registers, trusting R3
(the end-section start) as ground truth: R0 becomes the actual file length,
R1 becomes R3 - 0x28, and R2 becomes file length - R3. R3 itself is never
rewritten. When R3 is implausible the command refuses rather than guess, and
the file is left untouched.

Only the register bytes change; no payload byte moves and the file length
stays the same. Repairing an already-consistent header is a no-op.

Example:
  cdfctl repair car.cdf
  cdfctl repair car.cdf --dry-run
  cdfctl repair car.cdf --out fixed.cdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepair(args)
		},
	}
	cmd.Flags().StringVarP(&repairOut, "out", "o", "", "Write the result to this path instead of in place")
	cmd.Flags().BoolVar(&repairDryRun, "dry-run", false, "Show what would change without saving")
	return cmd
}

func runRepair(args []string) error {
	doc, err := openDoc(args[0])
	if err != nil {
		return err
	}

	result, err := verify.Repair(doc.Bytes())
	if err != nil {
		return fmt.Errorf("cannot repair %s: %w", args[0], err)
	}

	if jsonOut && (repairDryRun || len(result.Changes) == 0) {
		return printJSON(result)
	}

	if len(result.Changes) == 0 {
		printInfo("✓ Header registers already consistent, nothing to do\n")
		return nil
	}

	for _, c := range result.Changes {
		printInfo("  %s @0x%04X: %d -> %d\n", c.Register, c.Offset, c.Old, c.New)
	}

	if repairDryRun {
		printInfo("Dry run, nothing saved\n")
		return nil
	}

	dest := repairOut
	if dest == "" {
		dest = args[0]
	}
	if err := doc.SaveAs(dest); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"changes": result.Changes,
			"file":    dest,
		})
	}

	printInfo("✓ Rewrote %d register(s) in %s\n", len(result.Changes), dest)
	return nil
}
