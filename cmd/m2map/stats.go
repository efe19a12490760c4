package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Load the mappings and show a load report",
		Long: `The stats command loads every listing in the mappings directory and
prints the record count, highest id, per-file counts and any duplicate
entries that were skipped. It exits with an error when a listing could not
be read.

Example:
  m2map stats
  m2map stats --mappings ./mappings --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats()
		},
	}
	return cmd
}

func runStats() error {
	s, err := loadStorage()
	if err != nil {
		return err
	}
	report := s.Report()

	if jsonOut {
		if err := printJSON(report); err != nil {
			return err
		}
	} else if !quiet {
		if err := report.FormatText(os.Stdout); err != nil {
			return err
		}
	}

	if report.HasErrors() {
		return fmt.Errorf("%d listing error(s) in %s", report.Summary.Errors, report.Directory)
	}
	return nil
}
