package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/m2kit/filestore"
)

var (
	lookupExact bool
)

func init() {
	cmd := newLookupCmd()
	cmd.Flags().BoolVar(&lookupExact, "path", false, "Match the whole path instead of an id or substring")
	rootCmd.AddCommand(cmd)
}

func newLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <id|path>",
		Short: "Resolve a file data id or path",
		Long: `The lookup command resolves a query against the loaded mappings.
A decimal query is treated as a file data id; anything else matches the first
path containing it. With --path the query must match a whole path, ignoring
case and separator style.

Example:
  m2map lookup 1234
  m2map lookup "creature/murloc"
  m2map lookup --path "Creature\\Murloc\\Murloc.m2"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(args)
		},
	}
	return cmd
}

func runLookup(args []string) error {
	query := args[0]

	s, err := loadStorage()
	if err != nil {
		return err
	}

	var (
		rec *filestore.Record
		ok  bool
	)
	if lookupExact {
		rec, ok = s.ByPath(query)
	} else {
		rec, ok = s.Resolve(query)
	}
	if !ok {
		return fmt.Errorf("no mapping matches %q", query)
	}

	if jsonOut {
		return printJSON(rec)
	}
	printInfo("%d\t%s\n", rec.ID, rec.Path)
	return nil
}
