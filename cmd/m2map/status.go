package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/m2kit/filestore/listfile"
)

var (
	statusMaxAge time.Duration
)

func init() {
	cmd := newStatusCmd()
	cmd.Flags().DurationVar(&statusMaxAge, "max-age", listfile.DefaultMaxAge, "Age after which a listing is outdated")
	rootCmd.AddCommand(cmd)
}

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report whether the listing files are outdated",
		Long: `The status command checks every listing file in the mappings
directory and reports the ones older than --max-age.

Example:
  m2map status
  m2map status --max-age 72h --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	}
	return cmd
}

// ListingStatus is the freshness of one listing file.
type ListingStatus struct {
	Name     string    `json:"name"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
	Outdated bool      `json:"outdated"`
}

func runStatus() error {
	s, err := openStorage()
	if err != nil {
		return err
	}
	dir := s.EffectiveDirectory()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read mappings directory: %w", err)
	}

	now := time.Now()
	var statuses []ListingStatus
	for _, e := range entries {
		if e.IsDir() || !listfile.Supported(e.Name()) {
			continue
		}
		full := filepath.Join(dir, e.Name())
		info, err := os.Stat(full)
		if err != nil {
			printVerbose("Warning: cannot stat %s: %v\n", full, err)
			continue
		}
		stale, err := listfile.IsStale(full, statusMaxAge, now)
		if err != nil {
			return err
		}
		statuses = append(statuses, ListingStatus{
			Name:     e.Name(),
			Size:     info.Size(),
			Modified: info.ModTime(),
			Outdated: stale,
		})
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i].Name < statuses[j].Name })

	if jsonOut {
		return printJSON(statuses)
	}

	if len(statuses) == 0 {
		printInfo("No listing files found in %s\n", dir)
		return nil
	}
	for _, st := range statuses {
		state := "up to date"
		if st.Outdated {
			state = "outdated"
		}
		printInfo("%-24s %-10s modified %s\n", st.Name, state, st.Modified.Format("2006-01-02 15:04:05"))
	}
	return nil
}
