package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var (
	nextIDStart uint32
	nextIDCount int
)

func init() {
	cmd := newNextIDCmd()
	cmd.Flags().Uint32Var(&nextIDStart, "start", 0, "First id to consider (default: settings custom_files_start_index, else max id + 1)")
	cmd.Flags().IntVarP(&nextIDCount, "count", "n", 1, "Number of ids to allocate")
	rootCmd.AddCommand(cmd)
}

func newNextIDCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nextid",
		Short: "Find unused file data ids",
		Long: `The nextid command prints file data ids that no loaded mapping uses,
starting from --start, the settings' custom files start index, or one past the
highest mapped id.

Example:
  m2map nextid
  m2map nextid --start 9000000 -n 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNextID()
		},
	}
	return cmd
}

func runNextID() error {
	if nextIDCount < 1 {
		return errors.New("--count must be at least 1")
	}

	start := nextIDStart
	if start == 0 {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}
		start = cfg.CustomFilesStartIndex
	}

	s, err := loadStorage()
	if err != nil {
		return err
	}

	ids := make([]uint32, 0, nextIDCount)
	for len(ids) < nextIDCount {
		id := s.NextFreeID(start)
		if id == 0 {
			break
		}
		ids = append(ids, id)
		if id == ^uint32(0) {
			break
		}
		start = id + 1
	}
	if len(ids) == 0 {
		return errors.New("no free file data id left")
	}

	if jsonOut {
		return printJSON(ids)
	}
	for _, id := range ids {
		printInfo("%d\n", id)
	}
	return nil
}
