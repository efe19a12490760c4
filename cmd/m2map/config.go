package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/m2kit/pkg/settings"
)

const defaultConfigName = "m2kit.yaml"

func init() {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the settings file",
	}
	cmd.AddCommand(newConfigInitCmd(), newConfigShowCmd())
	rootCmd.AddCommand(cmd)
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a settings file with default values",
		Long: `The config init command writes the default settings to --config,
or to ./m2kit.yaml. An existing file is left untouched.

Example:
  m2map config init
  m2map config init --config ~/.config/m2kit.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit()
		},
	}
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow()
		},
	}
}

func settingsPath() string {
	if configPath != "" {
		return configPath
	}
	return defaultConfigName
}

func runConfigInit() error {
	path := settingsPath()
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("settings file %s already exists", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := settings.Save(path, settings.Default()); err != nil {
		return err
	}
	printInfo("Wrote default settings to %s\n", path)
	return nil
}

func runConfigShow() error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(cfg)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	printInfo("%s", data)
	printInfo("# effective mappings path: %s\n", cfg.MappingsPath())
	return nil
}
