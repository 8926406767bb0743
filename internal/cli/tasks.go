package cli

import (
	"errors"

	"packy/internal/action"
	"packy/internal/order"

	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage tasks within a preparation stage",
	}
	cmd.AddCommand(newTasksAddCmd(app))
	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksDoneCmd(app, true))
	cmd.AddCommand(newTasksDoneCmd(app, false))
	cmd.AddCommand(newTasksMoveCmd(app))
	cmd.AddCommand(newTasksRemoveCmd(app))
	return cmd
}

func newTasksAddCmd(app *App) *cobra.Command {
	var stage string

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add a task to a stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := openSession(app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			task, err := action.AddTask(ss.store, stage, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := ss.save(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": task})
		},
	}

	cmd.Flags().StringVar(&stage, "stage", "", "Stage id (required)")
	_ = cmd.MarkFlagRequired("stage")
	return cmd
}

func newTasksListCmd(app *App) *cobra.Command {
	var stage string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a stage's tasks in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := openSession(app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			sg, ok := ss.store.State().List.FindStage(stage)
			if !ok {
				return writeErr(cmd, errors.New("stage not found: "+stage))
			}
			return writeOut(cmd, app, map[string]any{"data": action.TasksInOrder(*sg)})
		},
	}

	cmd.Flags().StringVar(&stage, "stage", "", "Stage id (required)")
	_ = cmd.MarkFlagRequired("stage")
	return cmd
}

func newTasksDoneCmd(app *App, completed bool) *cobra.Command {
	use := "done <id>"
	short := "Mark a task completed"
	if !completed {
		use = "undone <id>"
		short = "Mark a task not completed"
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := openSession(app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := action.SetTaskCompleted(ss.store, args[0], completed); err != nil {
				return writeErr(cmd, err)
			}
			if err := ss.save(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"id": args[0], "completed": completed}})
		},
	}
}

func newTasksMoveCmd(app *App) *cobra.Command {
	var before string
	var after string

	cmd := &cobra.Command{
		Use:   "move <id>",
		Short: "Move a task before or after another task in the same stage",
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
			action.MoveTask(ss.store, args[0], targetID, pos)
			if err := ss.save(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"moved": args[0]}})
		},
	}

	cmd.Flags().StringVar(&before, "before", "", "Move before task id")
	cmd.Flags().StringVar(&after, "after", "", "Move after task id")
	return cmd
}

func newTasksRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := openSession(app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := action.RemoveTask(ss.store, args[0]); err != nil {
				return writeErr(cmd, err)
			}
			if err := ss.save(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"removed": args[0]}})
		},
	}
}
