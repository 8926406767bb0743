package cli

import (
	"errors"

	"packy/internal/action"
	"packy/internal/model"

	"github.com/spf13/cobra"
)

func newBagsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bags",
		Short: "Manage bags",
	}
	cmd.AddCommand(newBagsAddCmd(app))
	cmd.AddCommand(newBagsListCmd(app))
	cmd.AddCommand(newBagsUpdateCmd(app))
	cmd.AddCommand(newBagsRemoveCmd(app))
	return cmd
}

func newBagsAddCmd(app *App) *cobra.Command {
	var typ string
	var color string
	var icon string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a bag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := openSession(app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			var bt model.BagType
			if typ != "" {
				var ok bool
				if bt, ok = model.NormalizeBagType(typ); !ok {
					return writeErr(cmd, errors.New("unknown bag type: "+typ))
				}
			}
			bag, err := action.AddBag(ss.store, args[0], bt, color, icon)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := ss.save(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": bag})
		},
	}

	cmd.Flags().StringVar(&typ, "type", "", "Bag type: carry-on, checked, personal, custom")
	cmd.Flags().StringVar(&color, "color", "", "Display color")
	cmd.Flags().StringVar(&icon, "icon", "", "Display icon")
	return cmd
}

func newBagsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bags",
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := openSession(app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": ss.store.State().List.Bags})
		},
	}
}

func newBagsUpdateCmd(app *App) *cobra.Command {
	var name string
	var typ string
	var color string
	var icon string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a bag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := openSession(app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			var upd action.BagUpdate
			if cmd.Flags().Changed("name") {
				upd.Name = &name
			}
			if cmd.Flags().Changed("type") {
				t, ok := model.NormalizeBagType(typ)
				if !ok {
					return writeErr(cmd, errors.New("unknown bag type: "+typ))
				}
				upd.Type = &t
			}
			if cmd.Flags().Changed("color") {
				upd.Color = &color
			}
			if cmd.Flags().Changed("icon") {
				upd.Icon = &icon
			}
			bag, err := action.UpdateBag(ss.store, args[0], upd)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := ss.save(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": bag})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&typ, "type", "", "New type")
	cmd.Flags().StringVar(&color, "color", "", "New color")
	cmd.Flags().StringVar(&icon, "icon", "", "New icon")
	return cmd
}

func newBagsRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a bag (items assigned to it become unassigned)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := openSession(app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := action.RemoveBag(ss.store, args[0]); err != nil {
				return writeErr(cmd, err)
			}
			if err := ss.save(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"removed": args[0]}})
		},
	}
}
