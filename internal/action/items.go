package action

import (
	"strings"

	"packy/internal/expr"
	"packy/internal/model"
	"packy/internal/order"
	"packy/internal/store"
)

// ItemParams describes a new item. Quantity is used when QuantityType is
// fixed; QuantityExpression when dependent.
type ItemParams struct {
	Name               string
	CategoryID         string
	BagID              *string
	QuantityType       model.QuantityType
	Quantity           int
	QuantityExpression string
}

// AddItem appends an item at the end of its category's order scope.
func AddItem(s *store.Store, p ItemParams) (model.Item, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return model.Item{}, ErrEmptyName
	}
	st := s.State()
	if st.List == nil {
		return model.Item{}, ErrNoList
	}
	if _, ok := st.List.FindCategory(p.CategoryID); !ok {
		return model.Item{}, errNotFound("category", p.CategoryID)
	}
	if p.BagID != nil {
		if _, ok := st.List.FindBag(*p.BagID); !ok {
			return model.Item{}, errNotFound("bag", *p.BagID)
		}
	}
	if p.QuantityType == "" {
		p.QuantityType = model.QuantitySingle
	}
	if p.QuantityType == model.QuantityDependent {
		if res := expr.Validate(p.QuantityExpression); !res.Valid {
			return model.Item{}, &expr.ParseError{Expr: p.QuantityExpression, Msg: res.Error}
		}
	}

	item := model.Item{
		ID:                 store.NewID("item"),
		Name:               p.Name,
		CategoryID:         p.CategoryID,
		BagID:              p.BagID,
		QuantityType:       p.QuantityType,
		Quantity:           p.Quantity,
		QuantityExpression: p.QuantityExpression,
		Order:              len(st.List.ItemsInCategory(p.CategoryID)),
	}
	s.SetState(func(st store.State) store.State {
		if st.List == nil {
			return st
		}
		st.List.Items = append(st.List.Items, item)
		return st
	})
	return item, nil
}

type ItemUpdate struct {
	Name               *string
	BagID              **string // set to pointer-to-nil to clear the override
	QuantityType       *model.QuantityType
	Quantity           *int
	QuantityExpression *string
}

func UpdateItem(s *store.Store, id string, upd ItemUpdate) (model.Item, error) {
	st := s.State()
	if st.List == nil {
		return model.Item{}, ErrNoList
	}
	if _, ok := st.List.FindItem(id); !ok {
		return model.Item{}, errNotFound("item", id)
	}
	if upd.BagID != nil && *upd.BagID != nil {
		if _, ok := st.List.FindBag(**upd.BagID); !ok {
			return model.Item{}, errNotFound("bag", **upd.BagID)
		}
	}
	if upd.QuantityExpression != nil {
		if res := expr.Validate(*upd.QuantityExpression); !res.Valid {
			return model.Item{}, &expr.ParseError{Expr: *upd.QuantityExpression, Msg: res.Error}
		}
	}

	var out model.Item
	s.SetState(func(st store.State) store.State {
		if st.List == nil {
			return st
		}
		it, ok := st.List.FindItem(id)
		if !ok {
			return st
		}
		if upd.Name != nil && strings.TrimSpace(*upd.Name) != "" {
			it.Name = strings.TrimSpace(*upd.Name)
		}
		if upd.BagID != nil {
			it.BagID = *upd.BagID
		}
		if upd.QuantityType != nil {
			it.QuantityType = *upd.QuantityType
		}
		if upd.Quantity != nil {
			it.Quantity = *upd.Quantity
		}
		if upd.QuantityExpression != nil {
			it.QuantityExpression = *upd.QuantityExpression
		}
		out = *it
		return st
	})
	return out, nil
}

// SetItemPacked sets the packed flag; ToggleItemPacked flips it.
func SetItemPacked(s *store.Store, id string, packed bool) error {
	st := s.State()
	if st.List == nil {
		return ErrNoList
	}
	if _, ok := st.List.FindItem(id); !ok {
		return errNotFound("item", id)
	}
	s.SetState(func(st store.State) store.State {
		if st.List == nil {
			return st
		}
		if it, ok := st.List.FindItem(id); ok {
			it.Packed = packed
		}
		return st
	})
	return nil
}

func ToggleItemPacked(s *store.Store, id string) error {
	st := s.State()
	if st.List == nil {
		return ErrNoList
	}
	it, ok := st.List.FindItem(id)
	if !ok {
		return errNotFound("item", id)
	}
	return SetItemPacked(s, id, !it.Packed)
}

// RemoveItem deletes the item and compacts its category's order scope.
func RemoveItem(s *store.Store, id string) error {
	st := s.State()
	if st.List == nil {
		return ErrNoList
	}
	removed, ok := st.List.FindItem(id)
	if !ok {
		return errNotFound("item", id)
	}
	categoryID := removed.CategoryID

	s.SetState(func(st store.State) store.State {
		if st.List == nil {
			return st
		}
		items := st.List.Items[:0]
		for _, it := range st.List.Items {
			if it.ID != id {
				items = append(items, it)
			}
		}
		st.List.Items = items

		var scope []order.Entry
		for _, it := range st.List.Items {
			if it.CategoryID == categoryID {
				scope = append(scope, order.Entry{ID: it.ID, Scope: it.CategoryID, Order: it.Order})
			}
		}
		applyItemPlan(st.List, order.Plan{OrderByID: order.Compact(scope)})
		return st
	})
	return nil
}

func applyItemPlan(list *model.PackingList, plan order.Plan) {
	for i := range list.Items {
		it := &list.Items[i]
		if o, ok := plan.OrderByID[it.ID]; ok {
			it.Order = o
		}
		if sc, ok := plan.ScopeByID[it.ID]; ok {
			it.CategoryID = sc
		}
	}
}
