package cli

import (
	"errors"

	"packy/internal/action"
	"packy/internal/order"

	"github.com/spf13/cobra"
)

func newStagesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stages",
		Short: "Manage preparation stages",
	}
	cmd.AddCommand(newStagesAddCmd(app))
	cmd.AddCommand(newStagesListCmd(app))
	cmd.AddCommand(newStagesRenameCmd(app))
	cmd.AddCommand(newStagesMoveCmd(app))
	cmd.AddCommand(newStagesRemoveCmd(app))
	return cmd
}

func newStagesAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := openSession(app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			stage, err := action.AddStage(ss.store, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := ss.save(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": stage})
		},
	}
}

func newStagesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stages in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := openSession(app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": action.StagesInOrder(ss.store.State().List)})
		},
	}
}

func newStagesRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a stage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := openSession(app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := action.RenameStage(ss.store, args[0], args[1]); err != nil {
				return writeErr(cmd, err)
			}
			if err := ss.save(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"id": args[0], "name": args[1]}})
		},
	}
}

func newStagesMoveCmd(app *App) *cobra.Command {
	var before string
	var after string

	cmd := &cobra.Command{
		Use:   "move <id>",
		Short: "Move a stage before or after another stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (before == "" && after == "") || (before != "" && after != "") {
				return writeErr(cmd, errors.New("provide exactly one of --before or --after"))
			}
			ss, err := openSession(app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			targetID := before
			pos := order.Before
			if after != "" {
				targetID = after
				pos = order.After
			}
			action.MoveStage(ss.store, args[0], targetID, pos)
			if err := ss.save(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": action.StagesInOrder(ss.store.State().List)})
		},
	}

	cmd.Flags().StringVar(&before, "before", "", "Move before stage id")
	cmd.Flags().StringVar(&after, "after", "", "Move after stage id")
	return cmd
}

func newStagesRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a stage and its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := openSession(app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := action.RemoveStage(ss.store, args[0]); err != nil {
				return writeErr(cmd, err)
			}
			if err := ss.save(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"removed": args[0]}})
		},
	}
}
