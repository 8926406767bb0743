package tui

import (
	"fmt"

	"packy/internal/action"
	"packy/internal/model"
	"packy/internal/order"

	"github.com/charmbracelet/bubbles/list"
)

const (
	orderBefore = order.Before
	orderAfter  = order.After
)

type categoryRow struct {
	category model.Category
	progress action.Progress
}

func (r categoryRow) FilterValue() string { return r.category.Name }
func (r categoryRow) Title() string {
	t := r.category.Name
	if r.category.Icon != "" {
		t = r.category.Icon + " " + t
	}
	return t
}
func (r categoryRow) Description() string {
	return fmt.Sprintf("%d/%d packed", r.progress.Packed, r.progress.Total)
}

type itemRow struct {
	item     model.Item
	quantity int
	bagName  string
}

func (r itemRow) FilterValue() string { return r.item.Name }
func (r itemRow) Title() string {
	box := "[ ]"
	if r.item.Packed {
		box = "[x]"
	}
	t := box + " " + r.item.Name
	if r.quantity > 1 {
		t += fmt.Sprintf(" ×%d", r.quantity)
	}
	return t
}
func (r itemRow) Description() string {
	if r.bagName == "" {
		return "unassigned"
	}
	return r.bagName
}

type bagRow struct {
	bag      model.Bag
	progress action.Progress
}

func (r bagRow) FilterValue() string { return r.bag.Name }
func (r bagRow) Title() string {
	t := r.bag.Name
	if r.bag.Icon != "" {
		t = r.bag.Icon + " " + t
	}
	return t
}
func (r bagRow) Description() string {
	return fmt.Sprintf("%s  %d/%d packed", r.bag.Type, r.progress.Packed, r.progress.Total)
}

type stageRow struct {
	stage    model.Stage
	progress action.Progress
}

func (r stageRow) FilterValue() string { return r.stage.Name }
func (r stageRow) Title() string      { return r.stage.Name }
func (r stageRow) Description() string {
	if r.progress.Total == 0 {
		return "no tasks"
	}
	return fmt.Sprintf("%d/%d done", r.progress.Packed, r.progress.Total)
}

func categoryRows(doc *model.PackingList) []list.Item {
	var rows []list.Item
	for _, c := range doc.Categories {
		items := doc.ItemsInCategory(c.ID)
		p := action.Progress{Total: len(items)}
		for _, it := range items {
			if it.Packed {
				p.Packed++
			}
		}
		rows = append(rows, categoryRow{category: c, progress: p})
	}
	return rows
}

func itemRows(doc *model.PackingList, categoryID string) []list.Item {
	items := doc.ItemsInCategory(categoryID)
	model.SortItemsByOrder(items)
	var rows []list.Item
	for _, it := range items {
		name := ""
		if bag, ok := action.EffectiveBag(doc, it); ok {
			name = bag.Name
		}
		rows = append(rows, itemRow{
			item:     it,
			quantity: action.ItemQuantity(doc, it),
			bagName:  name,
		})
	}
	return rows
}

func bagRows(doc *model.PackingList) []list.Item {
	byBag := action.ItemsByBag(doc)
	var rows []list.Item
	for _, b := range doc.Bags {
		items := byBag[b.ID]
		p := action.Progress{Total: len(items)}
		for _, it := range items {
			if it.Packed {
				p.Packed++
			}
		}
		rows = append(rows, bagRow{bag: b, progress: p})
	}
	return rows
}

func stageRows(doc *model.PackingList) []list.Item {
	var rows []list.Item
	for _, sg := range action.StagesInOrder(doc) {
		rows = append(rows, stageRow{stage: sg, progress: action.StageProgress(sg)})
	}
	return rows
}

func newList(title string, items []list.Item) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	// Bubble list defaults to quitting on ESC; here ESC means "back".
	l.KeyMap.Quit.SetKeys("q")
	return l
}

func selectRowByID(l *list.Model, id string) {
	for i, raw := range l.Items() {
		switch it := raw.(type) {
		case categoryRow:
			if it.category.ID == id {
				l.Select(i)
				return
			}
		case itemRow:
			if it.item.ID == id {
				l.Select(i)
				return
			}
		case bagRow:
			if it.bag.ID == id {
				l.Select(i)
				return
			}
		case stageRow:
			if it.stage.ID == id {
				l.Select(i)
				return
			}
		}
	}
}
