package main

import (
	"fmt"
	"path"
	"strings"

	"github.com/disiqueira/gotree/v3"
	"github.com/spf13/cobra"

	"github.com/joshuapare/m2kit/filestore"
	"github.com/joshuapare/m2kit/filestore/pathkey"
)

var (
	treeLimit int
	treeIDs   bool
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeLimit, "limit", 500, "Maximum number of records to show (0 for all)")
	cmd.Flags().BoolVar(&treeIDs, "ids", true, "Show file data ids next to file names")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree [prefix]",
		Short: "Display mapped paths as a directory tree",
		Long: `The tree command renders the mapped paths under a prefix as a
directory tree. The prefix is matched ignoring case and separator style.

Example:
  m2map tree creature/murloc
  m2map tree world --limit 0 --ids=false`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
	return cmd
}

// pathTree builds a gotree out of slash separated paths, creating
// intermediate directory nodes on demand.
type pathTree struct {
	root gotree.Tree
	dirs map[string]gotree.Tree
}

func newPathTree(label string) pathTree {
	return pathTree{root: gotree.New(label), dirs: make(map[string]gotree.Tree)}
}

func (t pathTree) dir(p string) gotree.Tree {
	if p == "." || p == "" || p == "/" {
		return t.root
	}
	d, ok := t.dirs[p]
	if !ok {
		d = t.dir(path.Dir(p)).Add(path.Base(p))
		t.dirs[p] = d
	}
	return d
}

func (t pathTree) insert(p, label string) {
	t.dir(path.Dir(p)).Add(label)
}

func (t pathTree) render() string {
	return t.root.Print()
}

func runTree(args []string) error {
	var prefix string
	if len(args) > 0 {
		prefix = strings.Trim(pathkey.Fold(args[0]), "/")
	}

	s, err := loadStorage()
	if err != nil {
		return err
	}

	var matched []filestore.Record
	truncated := false
	s.Records(func(rec *filestore.Record) bool {
		if !underPrefix(rec.Path, prefix) {
			return true
		}
		if treeLimit > 0 && len(matched) == treeLimit {
			truncated = true
			return false
		}
		matched = append(matched, *rec)
		return true
	})

	if len(matched) == 0 {
		return fmt.Errorf("no mappings under %q", prefix)
	}

	if jsonOut {
		return printJSON(matched)
	}

	label := prefix
	if label == "" {
		label = s.EffectiveDirectory()
	}
	t := newPathTree(label)
	for _, rec := range matched {
		rel := strings.TrimPrefix(rec.Path[len(prefix):], "/")
		if rel == "" {
			rel = path.Base(rec.Path)
		}
		name := path.Base(rel)
		if treeIDs {
			name = fmt.Sprintf("%s [%d]", name, rec.ID)
		}
		t.insert(rel, name)
	}
	printInfo("%s", t.render())
	if truncated {
		printInfo("... (limited to %d records)\n", treeLimit)
	}
	return nil
}

// underPrefix reports whether p lies at or below prefix, ignoring case and
// separator style.
func underPrefix(p, prefix string) bool {
	if prefix == "" {
		return true
	}
	if len(p) < len(prefix) || !pathkey.Equal(p[:len(prefix)], prefix) {
		return false
	}
	return len(p) == len(prefix) || p[len(prefix)] == '/' || p[len(prefix)] == '\\'
}
