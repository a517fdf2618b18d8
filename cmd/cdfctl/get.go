package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	getSection  string
	getOrdinal  int
	getRawBytes bool
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <field>",
		Short: "Read the current value of one field occurrence",
		Long: `The get command reads the payload of one field occurrence and prints its
decoded value. Field names are not unique across sections; use --section to
disambiguate, and --occurrence to pick a repeat beyond the first.

Example:
  cdfctl get car.cdf "Front Wing Angle"
  cdfctl get car.cdf "Wing Angle" --section "REAR WING" --occurrence 1
  cdfctl get car.cdf Mass --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	cmd.Flags().StringVarP(&getSection, "section", "s", "", "Section the field belongs to")
	cmd.Flags().IntVarP(&getOrdinal, "occurrence", "n", 0, "Occurrence ordinal (0-based)")
	cmd.Flags().BoolVar(&getRawBytes, "raw", false, "Also print the raw payload bytes")
	return cmd
}

func runGet(args []string) error {
	doc, err := openDoc(args[0])
	if err != nil {
		return err
	}

	occ, err := resolveField(doc, getSection, args[1], getOrdinal)
	if err != nil {
		return err
	}
	if occ.Err != nil {
		return fmt.Errorf("%s is unreadable: %w", occ.Label(), occ.Err)
	}

	if jsonOut {
		out := map[string]interface{}{
			"section":        occ.Def.Section,
			"name":           occ.Def.Name,
			"ordinal":        occ.Ordinal,
			"marker_offset":  occ.MarkerOffset,
			"payload_offset": occ.PayloadOffset,
			"layout":         occ.Def.Layout.String(),
			"value":          occ.FormatValues(),
		}
		if len(occ.Raw) > 0 {
			out["raw"] = fmt.Sprintf("% X", occ.Raw)
		}
		return printJSON(out)
	}

	printInfo("%s\n", occ.FormatValues())
	printVerbose("Section: %s\n", occ.Def.Section)
	printVerbose("Layout:  %s\n", occ.Def.Layout)
	printVerbose("Payload: 0x%06X (%d byte(s))\n", occ.PayloadOffset, occ.Width())
	if getRawBytes && len(occ.Raw) > 0 {
		printInfo("raw: %s\n", strings.TrimSpace(fmt.Sprintf("% X", occ.Raw)))
	}
	return nil
}
