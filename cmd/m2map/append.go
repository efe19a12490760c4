package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/m2kit/filestore"
	"github.com/joshuapare/m2kit/filestore/listfile"
	"github.com/joshuapare/m2kit/filestore/pathkey"
)

var (
	appendFile  string
	appendForce bool
)

func init() {
	cmd := newAppendCmd()
	cmd.Flags().StringVar(&appendFile, "file", "custom.csv", "Listing file inside the mappings directory")
	cmd.Flags().BoolVar(&appendForce, "force", false, "Append even if the id or path is already mapped")
	rootCmd.AddCommand(cmd)
}

func newAppendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "append <id> <path>",
		Short: "Append a mapping to a listing file",
		Long: `The append command adds an id;path line to a listing file in the
mappings directory, creating the file if needed. The mapping is refused when
the id or the path is already present, unless --force is given.

Example:
  m2map append 9000001 "creature/custom/custom.m2"
  m2map append 9000002 "creature/custom/custom00.skin" --file extra.txt`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAppend(args)
		},
	}
	return cmd
}

func runAppend(args []string) error {
	id64, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil || id64 == 0 {
		return fmt.Errorf("invalid file data id %q", args[0])
	}
	entry := listfile.Entry{ID: uint32(id64), Path: pathkey.Normalize(args[1])}

	if !listfile.Supported(appendFile) {
		return fmt.Errorf("%w: %s", listfile.ErrUnsupported, appendFile)
	}

	s, err := openStorage()
	if err != nil {
		return err
	}
	target := filepath.Join(s.EffectiveDirectory(), filepath.Base(appendFile))

	// An empty or missing directory is fine: the listing gets created.
	s.Load()
	if !appendForce {
		if rec, ok := s.ByID(entry.ID); ok {
			return fmt.Errorf("id %d already maps to %s", rec.ID, rec.Path)
		}
		if rec, ok := s.ByPath(entry.Path); ok {
			return fmt.Errorf("path %s already mapped to id %d", rec.Path, rec.ID)
		}
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create mappings directory: %w", err)
	}
	if err := listfile.Append(target, []listfile.Entry{entry}); err != nil {
		return fmt.Errorf("failed to append mapping: %w", err)
	}
	rec := s.AddRecord(filestore.Record{ID: entry.ID, Path: entry.Path})

	if jsonOut {
		return printJSON(rec)
	}
	printInfo("Appended %d;%s to %s\n", rec.ID, rec.Path, target)
	return nil
}
