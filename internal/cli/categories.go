package cli

import (
	"packy/internal/action"

	"github.com/spf13/cobra"
)

func newCategoriesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cats"},
		Short:   "Manage categories",
	}
	cmd.AddCommand(newCategoriesAddCmd(app))
	cmd.AddCommand(newCategoriesListCmd(app))
	cmd.AddCommand(newCategoriesUpdateCmd(app))
	cmd.AddCommand(newCategoriesRemoveCmd(app))
	return cmd
}

func newCategoriesAddCmd(app *App) *cobra.Command {
	var icon string
	var defaultBag string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := openSession(app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			var bagID *string
			if defaultBag != "" {
				bagID = &defaultBag
			}
			cat, err := action.AddCategory(ss.store, args[0], icon, bagID)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := ss.save(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": cat})
		},
	}

	cmd.Flags().StringVar(&icon, "icon", "", "Display icon")
	cmd.Flags().StringVar(&defaultBag, "default-bag", "", "Default bag id for the category's items")
	return cmd
}

func newCategoriesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := openSession(app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": ss.store.State().List.Categories})
		},
	}
}

func newCategoriesUpdateCmd(app *App) *cobra.Command {
	var name string
	var icon string
	var defaultBag string
	var clearBag bool

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := openSession(app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			var upd action.CategoryUpdate
			if cmd.Flags().Changed("name") {
				upd.Name = &name
			}
			if cmd.Flags().Changed("icon") {
				upd.Icon = &icon
			}
			if clearBag {
				var none *string
				upd.DefaultBagID = &none
			} else if cmd.Flags().Changed("default-bag") {
				b := &defaultBag
				upd.DefaultBagID = &b
			}
			cat, err := action.UpdateCategory(ss.store, args[0], upd)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := ss.save(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": cat})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&icon, "icon", "", "New icon")
	cmd.Flags().StringVar(&defaultBag, "default-bag", "", "New default bag id")
	cmd.Flags().BoolVar(&clearBag, "clear-default-bag", false, "Clear the default bag")
	return cmd
}

func newCategoriesRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a category and its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := openSession(app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := action.RemoveCategory(ss.store, args[0]); err != nil {
				return writeErr(cmd, err)
			}
			if err := ss.save(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"removed": args[0]}})
		},
	}
}
