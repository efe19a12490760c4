package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/m2kit/filestore"
	"github.com/joshuapare/m2kit/pkg/logger"
	"github.com/joshuapare/m2kit/pkg/settings"
)

var (
	// Global flags
	verbose     bool
	quiet       bool
	jsonOut     bool
	mappingsDir string
	configPath  string
)

// cliLog carries filestore messages to stderr.
var (
	cliLog    = logger.New()
	cliHandle logger.Handle
)

// registry hands out one storage per mappings directory for the process.
var registry = filestore.NewRegistry(filestore.WithLogger(cliLog))

var rootCmd = &cobra.Command{
	Use:   "m2map",
	Short: "Resolve game file data ids and paths from listing files",
	Long: `m2map loads the id;path listing files in a mappings directory and
resolves file data ids to asset paths and back. It can also append new
mappings, allocate free ids, and report on listing freshness.`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		attachLogger()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		detachLogger()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVarP(&mappingsDir, "mappings", "m", "", "Mappings directory (default: settings or ./mappings)")
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", "", "Settings file (YAML)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// attachLogger routes warnings and errors to stderr, everything with -v,
// nothing with -q.
func attachLogger() {
	detachLogger()
	if quiet {
		return
	}
	mask := logger.LevelWarning | logger.LevelError
	level := slog.LevelWarn
	if verbose {
		mask = logger.LevelAll
		level = slog.LevelInfo
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	cliHandle = cliLog.Attach(mask, logger.SlogCallback(slog.New(h)))
}

func detachLogger() {
	if cliHandle != 0 {
		cliLog.Detach(cliHandle)
		cliHandle = 0
	}
}

// loadSettings reads --config, or returns defaults when it is not set.
func loadSettings() (settings.Settings, error) {
	if configPath == "" {
		return settings.Default(), nil
	}
	return settings.Load(configPath)
}

// openStorage returns the registry's Storage for the directory chosen by
// --mappings, the settings file, or the default, in that order.
func openStorage() (*filestore.Storage, error) {
	dir := mappingsDir
	if dir == "" {
		s, err := loadSettings()
		if err != nil {
			return nil, err
		}
		dir = s.MappingsPath()
	}
	printVerbose("Mappings directory: %s\n", dir)
	return registry.Get(dir), nil
}

// loadStorage opens the storage and loads it, failing when nothing loaded.
func loadStorage() (*filestore.Storage, error) {
	s, err := openStorage()
	if err != nil {
		return nil, err
	}
	if !s.Load() {
		return nil, fmt.Errorf("failed to load mappings: %w", s.Err())
	}
	if s.Len() == 0 {
		return nil, fmt.Errorf("no mapping entries found in %s", s.EffectiveDirectory())
	}
	return s, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
