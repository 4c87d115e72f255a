// Package main provides the CLI entry point for taxingest-go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/statetax/taxingest-go/pkg/taxingest"
	"github.com/statetax/taxingest-go/pkg/taxingest/output"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "taxingest <EXCEL PATH> <JSON PATH>",
		Short: "Convert the state income tax spreadsheet into normalized JSON",
		Long: `taxingest-go reads the annual Tax Foundation state income tax spreadsheet
and writes one normalized record per state per year (brackets, deductions,
exemptions, footnote codes, notes) as pretty-printed JSON.`,
		Args: cobra.ExactArgs(2),
		RunE: run,
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	srcPath, destPath := args[0], args[1]

	if _, err := os.Stat(srcPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", srcPath)
	}

	dataset, err := taxingest.Ingest(srcPath, taxingest.DefaultOptions())
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	if err := output.WriteFile(destPath, dataset); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
