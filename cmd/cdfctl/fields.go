package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/cdfkit/cdf"
	"github.com/joshuapare/cdfkit/cdf/verify"
)

var (
	fieldsSection string
	fieldsOffsets bool
)

func init() {
	rootCmd.AddCommand(newFieldsCmd())
}

func newFieldsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fields <file>",
		Short: "List every known field occurrence with its current value",
		Long: `The fields command scans a CDFbin file with the active catalog and lists
every occurrence of every known field, grouped by section. Fields whose
payload runs past the end of the file are listed as unreadable rather than
dropped.

Example:
  cdfctl fields car.cdf
  cdfctl fields car.cdf --section SUSPENSION
  cdfctl fields car.cdf --offsets --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFields(args)
		},
	}
	cmd.Flags().StringVarP(&fieldsSection, "section", "s", "", "Only list fields in this section")
	cmd.Flags().BoolVar(&fieldsOffsets, "offsets", false, "Include marker and payload offsets")
	return cmd
}

type fieldRow struct {
	Section       string `json:"section"`
	Name          string `json:"name"`
	Ordinal       int    `json:"ordinal"`
	MarkerOffset  int    `json:"marker_offset"`
	PayloadOffset int    `json:"payload_offset"`
	Layout        string `json:"layout"`
	Value         string `json:"value"`
	Error         string `json:"error,omitempty"`
}

func runFields(args []string) error {
	doc, err := openDoc(args[0])
	if err != nil {
		return err
	}

	var rows []fieldRow
	for i := range doc.Occurrences() {
		o := &doc.Occurrences()[i]
		if fieldsSection != "" && o.Def.Section != fieldsSection {
			continue
		}
		row := fieldRow{
			Section:       o.Def.Section,
			Name:          o.Def.Name,
			Ordinal:       o.Ordinal,
			MarkerOffset:  o.MarkerOffset,
			PayloadOffset: o.PayloadOffset,
			Layout:        o.Def.Layout.String(),
			Value:         o.FormatValues(),
		}
		if o.Err != nil {
			row.Error = o.Err.Error()
		}
		rows = append(rows, row)
	}

	if fieldsSection != "" && len(rows) == 0 {
		return fmt.Errorf("no fields found in section %q", fieldsSection)
	}

	if jsonOut {
		return printJSON(rows)
	}

	if report, err := verify.Check(doc.Bytes()); err == nil && !report.Ok() {
		printInfo("! %d header register check(s) failing (run validate for details)\n", len(report.Failures))
	}

	section := ""
	for _, row := range rows {
		if row.Section != section {
			section = row.Section
			printInfo("\n[%s]\n", section)
		}
		label := fmt.Sprintf("%s #%d", row.Name, row.Ordinal)
		if fieldsOffsets {
			printInfo("  %-36s  @0x%06X  %s\n", label, row.PayloadOffset, row.Value)
		} else {
			printInfo("  %-36s  %s\n", label, row.Value)
		}
		if row.Error != "" {
			printVerbose("    %s\n", row.Error)
		}
	}
	printInfo("\n%d occurrence(s)\n", len(rows))
	return nil
}

// resolveField looks up one occurrence from the section/name/ordinal flags
// shared by get and set.
func resolveField(doc *cdf.Document, section, name string, ordinal int) (*cdf.Occurrence, error) {
	occ, err := doc.Find(section, name, ordinal)
	if err != nil {
		return nil, err
	}
	return occ, nil
}
