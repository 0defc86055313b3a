package main

import (
	"context"
	"os"

	"log/slog"

	"github.com/gridpad/gridpad/internal/logging"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gridpadctl",
		Short:   "Gridpad dashboard layout CLI",
		Long:    "Gridpad dashboard layout CLI",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help by default when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultDB := os.Getenv("GRIDPAD_DB_URL")
	if defaultDB == "" {
		defaultDB = "badger:~/.gridpad/db"
	}
	cmd.PersistentFlags().String("db-url", defaultDB, "Database URL (env GRIDPAD_DB_URL) (badger:/path/to/db | sqlite:/path/to.db | file:/path/to/gridpad.yml | mem:)")
	cmd.PersistentFlags().String("tenant", os.Getenv("GRIDPAD_TENANT"), "Scope tenant (env GRIDPAD_TENANT)")
	cmd.PersistentFlags().String("user", os.Getenv("GRIDPAD_USER"), "Scope user (env GRIDPAD_USER)")
	cmd.PersistentFlags().String("log-format", "human", "Log format (human|text|json) (env GRIDPAD_LOG_FORMAT)")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		format, _ := c.Flags().GetString("log-format")
		if env := os.Getenv("GRIDPAD_LOG_FORMAT"); env != "" { // env overrides flag
			format = env
		}
		l, err := logging.New(format, slog.LevelInfo)
		if err != nil {
			return err
		}
		ctx := logging.WithLogger(c.Context(), l)
		c.SetContext(ctx)
		return nil
	}

	cmd.AddCommand(newCmdVersion())
	cmd.AddCommand(newCmdInit())
	cmd.AddCommand(newCmdLayout())
	cmd.AddCommand(newCmdWorkspace())
	return cmd
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())
	executed, err := root.ExecuteC()
	if err != nil {
		ctx := root.Context()
		if executed != nil {
			ctx = executed.Context()
		}
		logging.FromContext(ctx).Errorf(ctx, "Failed: %s", err)
		os.Exit(1)
	}
}
