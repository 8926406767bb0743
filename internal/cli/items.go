package cli

import (
	"errors"

	"packy/internal/action"
	"packy/internal/model"
	"packy/internal/order"

	"github.com/spf13/cobra"
)

func newItemsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Manage items",
	}
	cmd.AddCommand(newItemsAddCmd(app))
	cmd.AddCommand(newItemsListCmd(app))
	cmd.AddCommand(newItemsUpdateCmd(app))
	cmd.AddCommand(newItemsPackCmd(app, true))
	cmd.AddCommand(newItemsPackCmd(app, false))
	cmd.AddCommand(newItemsMoveCmd(app))
	cmd.AddCommand(newItemsRemoveCmd(app))
	return cmd
}

func newItemsAddCmd(app *App) *cobra.Command {
	var category string
	var bag string
	var qtyType string
	var qty int
	var qtyExpr string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an item to a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := openSession(app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			qt, ok := model.NormalizeQuantityType(qtyType)
			if !ok {
				return writeErr(cmd, errors.New("unknown quantity type: "+qtyType))
			}
			p := action.ItemParams{
				Name:               args[0],
				CategoryID:         category,
				QuantityType:       qt,
				Quantity:           qty,
				QuantityExpression: qtyExpr,
			}
			if bag != "" {
				p.BagID = &bag
			}
			item, err := action.AddItem(ss.store, p)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := ss.save(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": item})
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Category id (required)")
	cmd.Flags().StringVar(&bag, "bag", "", "Bag id override")
	cmd.Flags().StringVar(&qtyType, "qty-type", "", "Quantity type: single, fixed, dependent")
	cmd.Flags().IntVar(&qty, "qty", 1, "Fixed quantity")
	cmd.Flags().StringVar(&qtyExpr, "qty-expr", "", "Quantity expression over the day count, e.g. \"d+1\"")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newItemsListCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List items, ordered within each category",
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := openSession(app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			list := ss.store.State().List
			items := list.Items
			if category != "" {
				items = list.ItemsInCategory(category)
			}
			model.SortItemsByOrder(items)
			return writeOut(cmd, app, map[string]any{"data": items})
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only items in this category")
	return cmd
}

func newItemsUpdateCmd(app *App) *cobra.Command {
	var name string
	var bag string
	var clearBag bool
	var qtyType string
	var qty int
	var qtyExpr string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := openSession(app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			var upd action.ItemUpdate
			if cmd.Flags().Changed("name") {
				upd.Name = &name
			}
			if clearBag {
				var none *string
				upd.BagID = &none
			} else if cmd.Flags().Changed("bag") {
				b := &bag
				upd.BagID = &b
			}
			if cmd.Flags().Changed("qty-type") {
				t, ok := model.NormalizeQuantityType(qtyType)
				if !ok {
					return writeErr(cmd, errors.New("unknown quantity type: "+qtyType))
				}
				upd.QuantityType = &t
			}
			if cmd.Flags().Changed("qty") {
				upd.Quantity = &qty
			}
			if cmd.Flags().Changed("qty-expr") {
				upd.QuantityExpression = &qtyExpr
			}
			item, err := action.UpdateItem(ss.store, args[0], upd)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := ss.save(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": item})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&bag, "bag", "", "New bag id override")
	cmd.Flags().BoolVar(&clearBag, "clear-bag", false, "Clear the bag override")
	cmd.Flags().StringVar(&qtyType, "qty-type", "", "New quantity type")
	cmd.Flags().IntVar(&qty, "qty", 0, "New fixed quantity")
	cmd.Flags().StringVar(&qtyExpr, "qty-expr", "", "New quantity expression")
	return cmd
}

func newItemsPackCmd(app *App, packed bool) *cobra.Command {
	use := "pack <id>"
	short := "Mark an item packed"
	if !packed {
		use = "unpack <id>"
		short = "Mark an item unpacked"
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
			if err := action.SetItemPacked(ss.store, args[0], packed); err != nil {
				return writeErr(cmd, err)
			}
			if err := ss.save(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"id": args[0], "packed": packed}})
		},
	}
}

func newItemsMoveCmd(app *App) *cobra.Command {
	var before string
	var after string

	cmd := &cobra.Command{
		Use:   "move <id>",
		Short: "Move an item before or after another item, across categories if needed",
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
			action.MoveItem(ss.store, args[0], targetID, pos)
			if err := ss.save(); err != nil {
				return writeErr(cmd, err)
			}
			item, ok := ss.store.State().List.FindItem(args[0])
			if !ok {
				return writeErr(cmd, errors.New("item not found: "+args[0]))
			}
			return writeOut(cmd, app, map[string]any{"data": item})
		},
	}

	cmd.Flags().StringVar(&before, "before", "", "Move before item id")
	cmd.Flags().StringVar(&after, "after", "", "Move after item id")
	return cmd
}

func newItemsRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := openSession(app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := action.RemoveItem(ss.store, args[0]); err != nil {
				return writeErr(cmd, err)
			}
			if err := ss.save(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"removed": args[0]}})
		},
	}
}
