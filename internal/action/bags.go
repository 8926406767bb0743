package action

import (
	"strings"

	"packy/internal/model"
	"packy/internal/store"
)

func AddBag(s *store.Store, name string, typ model.BagType, color, icon string) (model.Bag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Bag{}, ErrEmptyName
	}
	if s.State().List == nil {
		return model.Bag{}, ErrNoList
	}
	if typ == "" {
		typ = model.BagTypeCustom
	}
	bag := model.Bag{
		ID:    store.NewID("bag"),
		Name:  name,
		Type:  typ,
		Color: color,
		Icon:  icon,
	}
	s.SetState(func(st store.State) store.State {
		if st.List == nil {
			return st
		}
		st.List.Bags = append(st.List.Bags, bag)
		return st
	})
	return bag, nil
}

type BagUpdate struct {
	Name  *string
	Type  *model.BagType
	Color *string
	Icon  *string
}

func UpdateBag(s *store.Store, id string, upd BagUpdate) (model.Bag, error) {
	st := s.State()
	if st.List == nil {
		return model.Bag{}, ErrNoList
	}
	if _, ok := st.List.FindBag(id); !ok {
		return model.Bag{}, errNotFound("bag", id)
	}

	var out model.Bag
	s.SetState(func(st store.State) store.State {
		if st.List == nil {
			return st
		}
		b, ok := st.List.FindBag(id)
		if !ok {
			return st
		}
		if upd.Name != nil && strings.TrimSpace(*upd.Name) != "" {
			b.Name = strings.TrimSpace(*upd.Name)
		}
		if upd.Type != nil {
			b.Type = *upd.Type
		}
		if upd.Color != nil {
			b.Color = *upd.Color
		}
		if upd.Icon != nil {
			b.Icon = *upd.Icon
		}
		out = *b
		return st
	})
	return out, nil
}

// RemoveBag deletes a bag and nulls every weak reference pointing at it
// (category default bags and item bag overrides). Nothing else is removed;
// the cascade is null, not delete. Removing a bag that nothing references
// is legal and simply has no cascading effect.
func RemoveBag(s *store.Store, id string) error {
	st := s.State()
	if st.List == nil {
		return ErrNoList
	}
	if _, ok := st.List.FindBag(id); !ok {
		return errNotFound("bag", id)
	}

	s.SetState(func(st store.State) store.State {
		if st.List == nil {
			return st
		}
		bags := st.List.Bags[:0]
		for _, b := range st.List.Bags {
			if b.ID != id {
				bags = append(bags, b)
			}
		}
		st.List.Bags = bags

		for i := range st.List.Categories {
			c := &st.List.Categories[i]
			if c.DefaultBagID != nil && *c.DefaultBagID == id {
				c.DefaultBagID = nil
			}
		}
		for i := range st.List.Items {
			it := &st.List.Items[i]
			if it.BagID != nil && *it.BagID == id {
				it.BagID = nil
			}
		}
		return st
	})
	return nil
}
