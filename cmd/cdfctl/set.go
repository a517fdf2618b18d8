package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/cdfkit/cdf"
	"github.com/joshuapare/cdfkit/cdf/verify"
)

var (
	setSection string
	setOrdinal int
	setOut     string
	setDryRun  bool
	setForce   bool
)

func init() {
	rootCmd.AddCommand(newSetCmd())
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <file> <field> <value>...",
		Short: "Write a new value into one field occurrence",
		Long: `The set command encodes new scalar values into the payload of one field
occurrence, strictly in place. The file length never changes and no other
byte is touched. Multi-element fields take one value argument per layout
element.

Values are range-checked against the field's scalar kinds before any byte is
written; a bad value leaves the file untouched. The header registers are
checked before saving and an inconsistent header blocks the save unless
--force is given (run repair to fix it instead).

Without --out the file is rewritten in place; the write is atomic either way.

Example:
  cdfctl set car.cdf "Front Wing Angle" 12.5
  cdfctl set car.cdf "Gear Ratio" 3.42 --section DRIVELINE --occurrence 1
  cdfctl set car.cdf "Brake Bias" 54 --out tuned.cdf`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	cmd.Flags().StringVarP(&setSection, "section", "s", "", "Section the field belongs to")
	cmd.Flags().IntVarP(&setOrdinal, "occurrence", "n", 0, "Occurrence ordinal (0-based)")
	cmd.Flags().StringVarP(&setOut, "out", "o", "", "Write the result to this path instead of in place")
	cmd.Flags().BoolVar(&setDryRun, "dry-run", false, "Show what would change without saving")
	cmd.Flags().BoolVarP(&setForce, "force", "f", false, "Save even when the header registers are inconsistent")
	return cmd
}

func runSet(args []string) error {
	doc, err := openDoc(args[0])
	if err != nil {
		return err
	}

	occ, err := resolveField(doc, setSection, args[1], setOrdinal)
	if err != nil {
		return err
	}

	valueArgs := args[2:]
	if len(valueArgs) != len(occ.Def.Layout) {
		return fmt.Errorf("%s takes %d value(s), got %d: %w",
			occ.Label(), len(occ.Def.Layout), len(valueArgs), cdf.ErrLengthMismatch)
	}

	vals := make([]cdf.Value, 0, len(valueArgs))
	for i, arg := range valueArgs {
		v, err := cdf.ParseValue(occ.Def.Layout[i], arg)
		if err != nil {
			return fmt.Errorf("value %q for %s: %w", arg, occ.Label(), err)
		}
		vals = append(vals, v)
	}

	oldText := occ.FormatValues()
	label := occ.Label()
	payloadOff := occ.PayloadOffset

	prev, err := doc.Apply(occ, vals)
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", label, err)
	}

	// Re-resolve; Apply rebuilt the index.
	occ, err = resolveField(doc, setSection, args[1], setOrdinal)
	if err != nil {
		return err
	}
	newText := occ.FormatValues()

	if setDryRun {
		printInfo("Would change %s at 0x%06X: %s -> %s (dry run, nothing saved)\n",
			label, payloadOff, oldText, newText)
		return nil
	}

	if err := checkBeforeSave(doc, setForce); err != nil {
		return err
	}

	dest := setOut
	if dest == "" {
		dest = args[0]
	}
	if err := doc.SaveAs(dest); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"section":        occ.Def.Section,
			"name":           occ.Def.Name,
			"ordinal":        occ.Ordinal,
			"payload_offset": payloadOff,
			"old":            oldText,
			"new":            newText,
			"previous_bytes": fmt.Sprintf("% X", prev),
			"file":           dest,
		})
	}

	printInfo("✓ %s: %s -> %s\n", label, oldText, newText)
	printVerbose("Previous payload bytes: % X\n", prev)
	printVerbose("Saved to %s\n", dest)
	return nil
}

// checkBeforeSave blocks a save over an inconsistent header unless forced.
// The simulator rejects such files, so writing one silently would just move
// the failure to load time.
func checkBeforeSave(doc *cdf.Document, force bool) error {
	report, err := verify.Check(doc.Bytes())
	if err != nil {
		if force {
			printInfo("! Header too short to check, saving anyway (--force)\n")
			return nil
		}
		return fmt.Errorf("refusing to save: %w (use --force to override)", err)
	}
	if report.Ok() {
		return nil
	}
	if force {
		printInfo("! Header registers inconsistent, saving anyway (--force)\n")
		return nil
	}
	return fmt.Errorf("refusing to save: %d header register check(s) failing "+
		"(run 'cdfctl repair' first, or use --force)", len(report.Failures))
}
