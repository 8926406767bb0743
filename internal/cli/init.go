package cli

import (
	"fmt"

	"packy/internal/action"

	"github.com/spf13/cobra"
)

func newInitCmd(app *App) *cobra.Command {
	var name string
	var departure string
	var ret string
	var templateID string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a new packing list (empty or from a template)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := openSession(app, false)
			if err != nil {
				return writeErr(cmd, err)
			}
			if ss.loaded && !force {
				return writeErr(cmd, fmt.Errorf("%s already exists (use --force to replace it)", ss.path))
			}

			if templateID != "" {
				if err := action.NewFromTemplate(ss.store, ss.templatesDir(), templateID, name, departure, ret); err != nil {
					return writeErr(cmd, err)
				}
			} else {
				if name == "" {
					name = "My trip"
				}
				if _, err := action.NewList(ss.store, name, departure, ret); err != nil {
					return writeErr(cmd, err)
				}
			}

			if err := ss.save(); err != nil {
				return writeErr(cmd, err)
			}
			list := ss.store.State().List
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"file": ss.path,
				"id":   list.Meta.ID,
				"trip": list.Trip,
			}})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Trip name")
	cmd.Flags().StringVar(&departure, "departure", "", "Departure date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&ret, "return", "", "Return date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&templateID, "template", "", "Instantiate from a catalog template id")
	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing list file")
	return cmd
}
