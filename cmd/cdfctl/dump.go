package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/cdfkit/cdf/printer"
)

var (
	dumpOffset string
	dumpLength int
	dumpField  string
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Hex dump the file or a window of it",
		Long: `The dump command renders the raw bytes as a classic hex dump with an ASCII
gutter. By default the whole file is dumped; --offset and --length narrow the
window, and --field centers the window on a known field's payload instead.

Example:
  cdfctl dump car.cdf
  cdfctl dump car.cdf --offset 0x1A00 --length 64
  cdfctl dump car.cdf --field "Front Wing Angle"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	cmd.Flags().StringVar(&dumpOffset, "offset", "0", "Start offset (decimal or 0x hex)")
	cmd.Flags().IntVar(&dumpLength, "length", -1, "Number of bytes to dump (-1 for the rest of the file)")
	cmd.Flags().StringVar(&dumpField, "field", "", "Dump the window around this field's payload")
	return cmd
}

func runDump(args []string) error {
	if dumpField != "" {
		return dumpAroundField(args[0])
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	start, err := strconv.ParseInt(dumpOffset, 0, 64)
	if err != nil {
		return fmt.Errorf("invalid offset %q: %w", dumpOffset, err)
	}

	for _, line := range printer.HexLines(data, int(start), dumpLength) {
		printInfo("%s\n", line)
	}
	return nil
}

// dumpAroundField shows the hex window containing a field's marker and
// payload, with a line of context on each side.
func dumpAroundField(path string) error {
	doc, err := openDoc(path)
	if err != nil {
		return err
	}
	occ, err := doc.Find("", dumpField, 0)
	if err != nil {
		return err
	}

	start := occ.MarkerOffset - occ.MarkerOffset%printer.BytesPerLine - printer.BytesPerLine
	end := occ.PayloadOffset + occ.Width() + printer.BytesPerLine

	printInfo("%s: marker @0x%06X, payload @0x%06X (%d byte(s))\n",
		occ.Label(), occ.MarkerOffset, occ.PayloadOffset, occ.Width())
	for _, line := range printer.HexLines(doc.Bytes(), start, end-start) {
		printInfo("%s\n", line)
	}
	return nil
}
