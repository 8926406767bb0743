package cli

import (
	"os"

	"packy/internal/action"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the list as a standalone JSON document",
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := openSession(app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			data, name, err := action.ExportDocument(ss.store, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			if out != "" {
				name = out
			}
			if err := os.WriteFile(name, append(data, '\n'), 0o644); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"file": name}})
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output path (default: packy-<trip>-<date>.json)")
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the current list with a JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := openSession(app, false)
			if err != nil {
				return writeErr(cmd, err)
			}
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := action.ImportDocument(ss.store, raw); err != nil {
				return writeErr(cmd, err)
			}
			if err := ss.save(); err != nil {
				return writeErr(cmd, err)
			}
			list := ss.store.State().List
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"id":    list.Meta.ID,
				"trip":  list.Trip,
				"items": len(list.Items),
			}})
		},
	}
}
