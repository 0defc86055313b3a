package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gridpad/gridpad/config/gridpadenv"
	"github.com/spf13/cobra"
)

func newCmdInit() *cobra.Command {
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize Gridpad CLI Env",
		Long: `Initialize Gridpad CLI Env by creating the .gridpad/ directory structure and config.yml.

The init command creates:
  - .gridpad/ directory
  - .gridpad/config.yml with default configuration
  - .gridpad/logs/ directory (default log file location)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, args, forceFlag)
		},
	}

	cmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite existing .gridpad/config.yml")
	return cmd
}

func runInit(cmd *cobra.Command, _ []string, forceFlag bool) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	gridpadDir := filepath.Join(workDir, gridpadenv.GridpadDirName)
	configPath := filepath.Join(gridpadDir, gridpadenv.ConfigFileName)
	logsDir := filepath.Join(gridpadDir, "logs")

	if !forceFlag {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("%s already exists (use -f to overwrite)", configPath)
		}
	}

	if err := os.MkdirAll(gridpadDir, 0755); err != nil {
		return fmt.Errorf("creating %s directory: %w", gridpadDir, err)
	}
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("creating %s directory: %w", logsDir, err)
	}

	data, err := gridpadenv.InitialConfigYAML()
	if err != nil {
		return fmt.Errorf("generating default config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", configPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized Gridpad CLI Env in %s\n", gridpadDir)
	fmt.Fprintf(cmd.OutOrStdout(), "Created:\n")
	fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", configPath)
	fmt.Fprintf(cmd.OutOrStdout(), "  - %s/\n", logsDir)

	return nil
}
