package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gridpad/gridpad/domain/model"
	"github.com/gridpad/gridpad/usecase/layout"
	"github.com/spf13/cobra"
)

func newCmdLayout() *cobra.Command {
	c := &cobra.Command{
		Use:                "layout",
		Short:              "Layout commands",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	c.AddCommand(newCmdLayoutList())
	c.AddCommand(newCmdLayoutShow())
	c.AddCommand(newCmdLayoutSave())
	c.AddCommand(newCmdLayoutRename())
	c.AddCommand(newCmdLayoutRemove())
	c.AddCommand(newCmdLayoutImport())
	c.AddCommand(newCmdLayoutExport())
	c.AddCommand(newCmdLayoutApply())
	c.AddCommand(newCmdLayoutDescribe())
	return c
}

// readSpecFile reads a spec file from path, or stdin when path is "-".
func readSpecFile(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("spec file required (-f)")
	}
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return io.ReadAll(r)
}

// writeArtifact writes exported bytes to the output file, or stdout when
// path is empty or "-".
func writeArtifact(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func newCmdLayoutList() *cobra.Command {
	return &cobra.Command{
		Use:                "list",
		Short:              "List layouts",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, closer, err := buildLayoutUseCase(cmd)
			if err != nil {
				return err
			}
			defer closer()
			ctx, cancel := context5s(cmd)
			defer cancel()
			out, err := uc.List(ctx, &layout.ListInput{})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, it := range out.Layouts {
				if err := enc.Encode(it); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newCmdLayoutShow() *cobra.Command {
	return &cobra.Command{
		Use:                "show <name>",
		Short:              "Show a layout",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, closer, err := buildLayoutUseCase(cmd)
			if err != nil {
				return err
			}
			defer closer()
			ctx, cancel := context5s(cmd)
			defer cancel()
			out, err := uc.Load(ctx, &layout.LoadInput{Name: args[0]})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out.Layout)
		},
	}
}

func newCmdLayoutSave() *cobra.Command {
	var file string
	var overwrite bool
	c := &cobra.Command{
		Use:                "save <name>",
		Short:              "Save a layout from a widget list (JSON)",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			uc, closer, err := buildLayoutUseCase(cmd)
			if err != nil {
				return err
			}
			defer closer()
			data, err := readSpecFile(cmd, file)
			if err != nil {
				return err
			}
			var items []model.Widget
			if err := json.Unmarshal(data, &items); err != nil {
				return fmt.Errorf("%w: widget list: %v", model.ErrMalformedDocument, err)
			}
			ctx, cancel := context5s(cmd)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "layout.save", args[0])
			defer func() { cleanup(err) }()
			out, err := uc.Save(ctx, &layout.SaveInput{Name: args[0], Items: items, Overwrite: overwrite})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out.Layout)
		},
	}
	c.Flags().StringVarP(&file, "file", "f", "", "Path to widget list (JSON), or '-' for stdin")
	c.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing layout with the same name")
	_ = c.MarkFlagRequired("file")
	return c
}

func newCmdLayoutRename() *cobra.Command {
	return &cobra.Command{
		Use:                "rename <old> <new>",
		Short:              "Rename a layout",
		Args:               cobra.ExactArgs(2),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			uc, closer, err := buildLayoutUseCase(cmd)
			if err != nil {
				return err
			}
			defer closer()
			ctx, cancel := context5s(cmd)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "layout.rename", args[0])
			defer func() { cleanup(err) }()
			_, err = uc.Rename(ctx, &layout.RenameInput{OldName: args[0], NewName: args[1]})
			return err
		},
	}
}

func newCmdLayoutRemove() *cobra.Command {
	return &cobra.Command{
		Use:                "rm <name>",
		Short:              "Remove a layout",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			uc, closer, err := buildLayoutUseCase(cmd)
			if err != nil {
				return err
			}
			defer closer()
			ctx, cancel := context5s(cmd)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "layout.rm", args[0])
			defer func() { cleanup(err) }()
			_, err = uc.Remove(ctx, &layout.RemoveInput{Name: args[0]})
			return err
		},
	}
}

func newCmdLayoutImport() *cobra.Command {
	var file string
	var overwrite bool
	c := &cobra.Command{
		Use:                "import",
		Short:              "Import a layout document (JSON)",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			uc, closer, err := buildLayoutUseCase(cmd)
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
			ctx, cleanup := withCmdRunLogger(ctx, "layout.import", file)
			defer func() { cleanup(err) }()
			out, err := uc.Import(ctx, &layout.ImportInput{Data: data, Overwrite: overwrite})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out.Layout)
		},
	}
	c.Flags().StringVarP(&file, "file", "f", "", "Path to layout document (JSON), or '-' for stdin")
	c.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing layout with the same name")
	_ = c.MarkFlagRequired("file")
	return c
}

func newCmdLayoutExport() *cobra.Command {
	var output string
	c := &cobra.Command{
		Use:                "export <name>",
		Short:              "Export a layout as pretty-printed JSON",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, closer, err := buildLayoutUseCase(cmd)
			if err != nil {
				return err
			}
			defer closer()
			ctx, cancel := context5s(cmd)
			defer cancel()
			out, err := uc.Export(ctx, &layout.ExportInput{Name: args[0]})
			if err != nil {
				return err
			}
			return writeArtifact(cmd, output, out.Data)
		},
	}
	c.Flags().StringVarP(&output, "output", "o", "", "Output file, or '-' for stdout")
	return c
}

func newCmdLayoutApply() *cobra.Command {
	var merge bool
	c := &cobra.Command{
		Use:                "apply <name>",
		Short:              "Restore a layout as a live widget list",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, closer, err := buildLayoutUseCase(cmd)
			if err != nil {
				return err
			}
			defer closer()
			ctx, cancel := context5s(cmd)
			defer cancel()
			out, err := uc.Apply(ctx, &layout.ApplyInput{Name: args[0], Merge: merge})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out.Widgets)
		},
	}
	c.Flags().BoolVar(&merge, "merge", false, "Mint fresh instance ids for merging into an existing canvas")
	return c
}

func newCmdLayoutDescribe() *cobra.Command {
	return &cobra.Command{
		Use:                "describe <name>",
		Short:              "Generate a one-line description of a layout",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, closer, err := buildLayoutUseCase(cmd)
			if err != nil {
				return err
			}
			defer closer()
			// Generation is network-bound; give it more room than CRUD calls.
			ctx, cancel := contextTimeout(cmd, 60*time.Second)
			defer cancel()
			out, err := uc.Describe(ctx, &layout.DescribeInput{Name: args[0]})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Description)
			return nil
		},
	}
}
