package action

import (
	"sort"

	"packy/internal/expr"
	"packy/internal/model"
)

// Selectors are pure functions of a document. They are recomputed on every
// call; documents are small enough that caching would only add staleness
// risk.

type Progress struct {
	Packed  int `json:"packed"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

// PackingProgress counts packed vs total items.
func PackingProgress(list *model.PackingList) Progress {
	if list == nil {
		return Progress{}
	}
	p := Progress{Total: len(list.Items)}
	for _, it := range list.Items {
		if it.Packed {
			p.Packed++
		}
	}
	if p.Total > 0 {
		p.Percent = p.Packed * 100 / p.Total
	}
	return p
}

// StageProgress counts completed vs total tasks for one stage.
func StageProgress(stage model.Stage) Progress {
	p := Progress{Total: len(stage.Tasks)}
	for _, tk := range stage.Tasks {
		if tk.Completed {
			p.Packed++
		}
	}
	if p.Total > 0 {
		p.Percent = p.Packed * 100 / p.Total
	}
	return p
}

// ItemQuantity resolves an item's count for the trip's day count:
// single is always 1, fixed uses the stored quantity, dependent evaluates
// the expression. A failing expression falls back to 1 rather than
// surfacing an error into a rendered quantity.
func ItemQuantity(list *model.PackingList, item model.Item) int {
	switch item.QuantityType {
	case model.QuantityFixed:
		if item.Quantity < 1 {
			return 1
		}
		return item.Quantity
	case model.QuantityDependent:
		days := 1
		if list != nil {
			days = list.Trip.CalculatedDays
		}
		n, err := expr.Evaluate(item.QuantityExpression, days)
		if err != nil {
			return 1
		}
		return n
	default:
		return 1
	}
}

// EffectiveBag resolves the two-step bag reference: the item's own bag
// override when present, else its category's default bag. This is a
// computed lookup, never a stored value, so it can't go stale.
func EffectiveBag(list *model.PackingList, item model.Item) (model.Bag, bool) {
	if list == nil {
		return model.Bag{}, false
	}
	if item.BagID != nil {
		if b, ok := list.FindBag(*item.BagID); ok {
			return *b, true
		}
	}
	if c, ok := list.FindCategory(item.CategoryID); ok && c.DefaultBagID != nil {
		if b, ok := list.FindBag(*c.DefaultBagID); ok {
			return *b, true
		}
	}
	return model.Bag{}, false
}

// ItemsByBag groups items by their effective bag id, sorted by category
// then order for stable display.
func ItemsByBag(list *model.PackingList) map[string][]model.Item {
	out := map[string][]model.Item{}
	if list == nil {
		return out
	}
	for _, it := range list.Items {
		if b, ok := EffectiveBag(list, it); ok {
			out[b.ID] = append(out[b.ID], it)
		}
	}
	for id := range out {
		items := out[id]
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].CategoryID != items[j].CategoryID {
				return items[i].CategoryID < items[j].CategoryID
			}
			return items[i].Order < items[j].Order
		})
		out[id] = items
	}
	return out
}

// ItemsByCategory groups items by owning category, each group in order.
func ItemsByCategory(list *model.PackingList) map[string][]model.Item {
	out := map[string][]model.Item{}
	if list == nil {
		return out
	}
	for _, c := range list.Categories {
		out[c.ID] = list.ItemsInCategory(c.ID)
	}
	return out
}

// UnassignedItems returns items with no effective bag.
func UnassignedItems(list *model.PackingList) []model.Item {
	var out []model.Item
	if list == nil {
		return out
	}
	for _, it := range list.Items {
		if _, ok := EffectiveBag(list, it); !ok {
			out = append(out, it)
		}
	}
	model.SortItemsByOrder(out)
	return out
}

// StagesInOrder returns the document's stages sorted by their order scope.
func StagesInOrder(list *model.PackingList) []model.Stage {
	if list == nil {
		return nil
	}
	out := append([]model.Stage{}, list.Stages...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// TasksInOrder returns a stage's tasks sorted by order.
func TasksInOrder(stage model.Stage) []model.Task {
	out := append([]model.Task{}, stage.Tasks...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}
