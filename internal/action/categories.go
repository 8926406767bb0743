package action

import (
	"strings"

	"packy/internal/model"
	"packy/internal/store"
)

func AddCategory(s *store.Store, name, icon string, defaultBagID *string) (model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Category{}, ErrEmptyName
	}
	st := s.State()
	if st.List == nil {
		return model.Category{}, ErrNoList
	}
	if defaultBagID != nil {
		if _, ok := st.List.FindBag(*defaultBagID); !ok {
			return model.Category{}, errNotFound("bag", *defaultBagID)
		}
	}
	cat := model.Category{
		ID:           store.NewID("cat"),
		Name:         name,
		Icon:         icon,
		DefaultBagID: defaultBagID,
	}
	s.SetState(func(st store.State) store.State {
		if st.List == nil {
			return st
		}
		st.List.Categories = append(st.List.Categories, cat)
		return st
	})
	return cat, nil
}

type CategoryUpdate struct {
	Name         *string
	Icon         *string
	DefaultBagID **string // set to new(nil pointer) to clear
}

func UpdateCategory(s *store.Store, id string, upd CategoryUpdate) (model.Category, error) {
	st := s.State()
	if st.List == nil {
		return model.Category{}, ErrNoList
	}
	if _, ok := st.List.FindCategory(id); !ok {
		return model.Category{}, errNotFound("category", id)
	}
	if upd.DefaultBagID != nil && *upd.DefaultBagID != nil {
		if _, ok := st.List.FindBag(**upd.DefaultBagID); !ok {
			return model.Category{}, errNotFound("bag", **upd.DefaultBagID)
		}
	}

	var out model.Category
	s.SetState(func(st store.State) store.State {
		if st.List == nil {
			return st
		}
		c, ok := st.List.FindCategory(id)
		if !ok {
			return st
		}
		if upd.Name != nil && strings.TrimSpace(*upd.Name) != "" {
			c.Name = strings.TrimSpace(*upd.Name)
		}
		if upd.Icon != nil {
			c.Icon = *upd.Icon
		}
		if upd.DefaultBagID != nil {
			c.DefaultBagID = *upd.DefaultBagID
		}
		out = *c
		return st
	})
	return out, nil
}

// RemoveCategory deletes a category together with the items it owns.
// Items are owned, not weakly referenced, so this cascade deletes.
func RemoveCategory(s *store.Store, id string) error {
	st := s.State()
	if st.List == nil {
		return ErrNoList
	}
	if _, ok := st.List.FindCategory(id); !ok {
		return errNotFound("category", id)
	}

	s.SetState(func(st store.State) store.State {
		if st.List == nil {
			return st
		}
		cats := st.List.Categories[:0]
		for _, c := range st.List.Categories {
			if c.ID != id {
				cats = append(cats, c)
			}
		}
		st.List.Categories = cats

		items := st.List.Items[:0]
		for _, it := range st.List.Items {
			if it.CategoryID != id {
				items = append(items, it)
			}
		}
		st.List.Items = items
		return st
	})
	return nil
}
