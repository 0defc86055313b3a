package main

import (
	"encoding/json"

	"github.com/gridpad/gridpad/domain/model"
	"github.com/gridpad/gridpad/usecase/workspace"
	"github.com/spf13/cobra"
)

func newCmdWorkspace() *cobra.Command {
	c := &cobra.Command{
		Use:                "workspace",
		Aliases:            []string{"ws"},
		Short:              "Workspace commands",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	c.AddCommand(newCmdWorkspaceShow())
	c.AddCommand(newCmdWorkspaceSave())
	c.AddCommand(newCmdWorkspaceImport())
	c.AddCommand(newCmdWorkspaceExport())
	c.AddCommand(newCmdWorkspaceRepair())
	c.AddCommand(newCmdWorkspaceReset())
	c.AddCommand(newCmdWorkspaceDashboard())
	return c
}

func newCmdWorkspaceShow() *cobra.Command {
	return &cobra.Command{
		Use:                "show",
		Short:              "Show the workspace",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, closer, err := buildWorkspaceUseCase(cmd)
			if err != nil {
				return err
			}
			defer closer()
			ctx, cancel := context5s(cmd)
			defer cancel()
			out, err := uc.Load(ctx, &workspace.LoadInput{})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out.Workspace)
		},
	}
}

func newCmdWorkspaceSave() *cobra.Command {
	var file string
	c := &cobra.Command{
		Use:                "save",
		Short:              "Save a workspace document (JSON)",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			uc, closer, err := buildWorkspaceUseCase(cmd)
			if err != nil {
				return err
			}
			defer closer()
			data, err := readSpecFile(cmd, file)
			if err != nil {
				return err
			}
			w, err := model.DecodeWorkspace(data)
			if err != nil {
				return err
			}
			ctx, cancel := context5s(cmd)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "workspace.save", "")
			defer func() { cleanup(err) }()
			out, err := uc.Save(ctx, &workspace.SaveInput{Workspace: w})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out.Workspace)
		},
	}
	c.Flags().StringVarP(&file, "file", "f", "", "Path to workspace document (JSON), or '-' for stdin")
	_ = c.MarkFlagRequired("file")
	return c
}

func newCmdWorkspaceImport() *cobra.Command {
	var file string
	c := &cobra.Command{
		Use:                "import",
		Short:              "Import a workspace document (JSON), rejecting unsupported versions",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			uc, closer, err := buildWorkspaceUseCase(cmd)
			if err != nil {
				return err
			}
			defer closer()
			data, err := readSpecFile(cmd, file)
			if err != nil {
				return err
			}
			ctx, cancel := context5s(cmd)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "workspace.import", file)
			defer func() { cleanup(err) }()
			out, err := uc.Import(ctx, &workspace.ImportInput{Data: data})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out.Workspace)
		},
	}
	c.Flags().StringVarP(&file, "file", "f", "", "Path to workspace document (JSON), or '-' for stdin")
	_ = c.MarkFlagRequired("file")
	return c
}

func newCmdWorkspaceExport() *cobra.Command {
	var output string
	c := &cobra.Command{
		Use:                "export",
		Short:              "Export the workspace as pretty-printed JSON",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, closer, err := buildWorkspaceUseCase(cmd)
			if err != nil {
				return err
			}
			defer closer()
			ctx, cancel := context5s(cmd)
			defer cancel()
			out, err := uc.Export(ctx, &workspace.ExportInput{})
			if err != nil {
				return err
			}
			return writeArtifact(cmd, output, out.Data)
		},
	}
	c.Flags().StringVarP(&output, "output", "o", "", "Output file, or '-' for stdout")
	return c
}

func newCmdWorkspaceRepair() *cobra.Command {
	return &cobra.Command{
		Use:                "repair",
		Short:              "Sanitize the stored workspace and persist the result",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			uc, closer, err := buildWorkspaceUseCase(cmd)
			if err != nil {
				return err
			}
			defer closer()
			ctx, cancel := context5s(cmd)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "workspace.repair", "")
			defer func() { cleanup(err) }()
			out, err := uc.Repair(ctx, &workspace.RepairInput{})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out.Workspace)
		},
	}
}

func newCmdWorkspaceReset() *cobra.Command {
	return &cobra.Command{
		Use:                "reset",
		Short:              "Delete the stored workspace document",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			uc, closer, err := buildWorkspaceUseCase(cmd)
			if err != nil {
				return err
			}
			defer closer()
			ctx, cancel := context5s(cmd)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "workspace.reset", "")
			defer func() { cleanup(err) }()
			_, err = uc.Reset(ctx, &workspace.ResetInput{})
			return err
		},
	}
}

func newCmdWorkspaceDashboard() *cobra.Command {
	c := &cobra.Command{
		Use:                "dashboard",
		Aliases:            []string{"db"},
		Short:              "Dashboard commands",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	c.AddCommand(newCmdDashboardAdd())
	c.AddCommand(newCmdDashboardClone())
	c.AddCommand(newCmdDashboardRename())
	c.AddCommand(newCmdDashboardRemove())
	c.AddCommand(newCmdDashboardActivate())
	return c
}

func newCmdDashboardAdd() *cobra.Command {
	return &cobra.Command{
		Use:                "add <name>",
		Short:              "Add an empty dashboard",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			uc, closer, err := buildWorkspaceUseCase(cmd)
			if err != nil {
				return err
			}
			defer closer()
			ctx, cancel := context5s(cmd)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "dashboard.add", args[0])
			defer func() { cleanup(err) }()
			out, err := uc.AddDashboard(ctx, &workspace.AddDashboardInput{Name: args[0]})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out.Dashboard)
		},
	}
}

func newCmdDashboardClone() *cobra.Command {
	var keepIDs bool
	c := &cobra.Command{
		Use:                "clone <id>",
		Short:              "Clone a dashboard",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			uc, closer, err := buildWorkspaceUseCase(cmd)
			if err != nil {
				return err
			}
			defer closer()
			ctx, cancel := context5s(cmd)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "dashboard.clone", args[0])
			defer func() { cleanup(err) }()
			out, err := uc.CloneDashboard(ctx, &workspace.CloneDashboardInput{DashboardID: args[0], KeepIDs: keepIDs})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out.Dashboard)
		},
	}
	c.Flags().BoolVar(&keepIDs, "keep-ids", false, "Preserve widget instance ids verbatim")
	return c
}

func newCmdDashboardRename() *cobra.Command {
	return &cobra.Command{
		Use:                "rename <id> <name>",
		Short:              "Rename a dashboard",
		Args:               cobra.ExactArgs(2),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			uc, closer, err := buildWorkspaceUseCase(cmd)
			if err != nil {
				return err
			}
			defer closer()
			ctx, cancel := context5s(cmd)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "dashboard.rename", args[0])
			defer func() { cleanup(err) }()
			_, err = uc.RenameDashboard(ctx, &workspace.RenameDashboardInput{DashboardID: args[0], Name: args[1]})
			return err
		},
	}
}

func newCmdDashboardRemove() *cobra.Command {
	return &cobra.Command{
		Use:                "rm <id>",
		Short:              "Remove a dashboard",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			uc, closer, err := buildWorkspaceUseCase(cmd)
			if err != nil {
				return err
			}
			defer closer()
			ctx, cancel := context5s(cmd)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "dashboard.rm", args[0])
			defer func() { cleanup(err) }()
			_, err = uc.RemoveDashboard(ctx, &workspace.RemoveDashboardInput{DashboardID: args[0]})
			return err
		},
	}
}

func newCmdDashboardActivate() *cobra.Command {
	return &cobra.Command{
		Use:                "activate <id>",
		Short:              "Activate a dashboard",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			uc, closer, err := buildWorkspaceUseCase(cmd)
			if err != nil {
				return err
			}
			defer closer()
			ctx, cancel := context5s(cmd)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "dashboard.activate", args[0])
			defer func() { cleanup(err) }()
			_, err = uc.Activate(ctx, &workspace.ActivateInput{DashboardID: args[0]})
			return err
		},
	}
}
