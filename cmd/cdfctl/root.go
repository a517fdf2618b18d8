package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/joshuapare/cdfkit/cdf"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	jsonOut  bool
	defsPath string
)

var rootCmd = &cobra.Command{
	Use:   "cdfctl",
	Short: "Inspect and edit CDFbin vehicle definition files",
	Long: `cdfctl is a tool for inspecting and editing the CDFbin binary vehicle
definition containers used by the racing simulator. Known fields are located
by marker byte sequences and edited strictly in place: the file length never
changes, so every other offset in the file stays valid.`,
	Version: "0.1.0",
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&defsPath, "defs", "", "Extra field definitions (JSON catalog sidecar)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// catalog returns the built-in field table, extended by the --defs sidecar
// when one was given.
func catalog() (cdf.Catalog, error) {
	cat := append(cdf.Catalog{}, cdf.BuiltinCatalog...)
	if defsPath == "" {
		return cat, nil
	}
	extra, err := cdf.LoadDefs(defsPath)
	if err != nil {
		return nil, err
	}
	printVerbose("Loaded %d extra definition(s) from %s\n", len(extra), defsPath)
	return append(cat, extra...), nil
}

// openDoc loads a CDFbin file with the active catalog.
func openDoc(path string) (*cdf.Document, error) {
	cat, err := catalog()
	if err != nil {
		return nil, err
	}
	printVerbose("Opening file: %s\n", path)
	doc, err := cdf.Load(path, cat)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return doc, nil
}
