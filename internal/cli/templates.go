package cli

import (
	"os"
	"path/filepath"

	"packy/internal/action"
	"packy/internal/docio"
	"packy/internal/template"

	"github.com/spf13/cobra"
)

func newTemplatesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List reusable templates and save the current list as one",
	}
	cmd.AddCommand(newTemplatesListCmd(app))
	cmd.AddCommand(newTemplatesSaveCmd(app))
	return cmd
}

func newTemplatesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List templates from the templates directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := openSession(app, false)
			if err != nil {
				return writeErr(cmd, err)
			}
			infos, err := template.LoadManifest(ss.templatesDir())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": infos})
		},
	}
}

func newTemplatesSaveCmd(app *App) *cobra.Command {
	var description string
	var out string

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save the current list as a template (trip details and packed state stripped)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := openSession(app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			data, err := action.SaveAsTemplate(ss.store, args[0], description, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			path := out
			if path == "" {
				path = filepath.Join(ss.templatesDir(), docio.Slugify(args[0])+".json")
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return writeErr(cmd, err)
			}
			if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"file": path}})
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Template description")
	cmd.Flags().StringVar(&out, "out", "", "Output path (default: <templates dir>/<slug>.json)")
	return cmd
}
