// Package action is the named operation set over the packing-list
// document. Every mutating action reads current state through the store,
// computes the next document and commits it via SetState; selectors are
// pure functions over a state value. Presentation code (CLI, TUI) only
// ever goes through this package.
package action

import (
	"strings"

	"packy/internal/model"
	"packy/internal/store"
)

const documentVersion = 1

// NewList replaces the current document with a fresh empty list.
func NewList(s *store.Store, name, departureDate, returnDate string) (*model.PackingList, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	trip, err := buildTrip(name, departureDate, returnDate)
	if err != nil {
		return nil, err
	}

	now := s.Now().UTC()
	list := &model.PackingList{
		Meta: model.Meta{
			ID:        store.NewDocumentID(),
			Version:   documentVersion,
			CreatedAt: now,
		},
		Trip:       trip,
		Bags:       []model.Bag{},
		Categories: []model.Category{},
		Items:      []model.Item{},
		Stages:     []model.Stage{},
	}
	s.SetState(func(st store.State) store.State {
		st.List = list
		return st
	})
	return list, nil
}

// LoadList replaces the current document wholesale. Callers hand it an
// already-validated document (import or template instantiation).
func LoadList(s *store.Store, list *model.PackingList) {
	if list == nil {
		return
	}
	s.SetState(func(st store.State) store.State {
		st.List = list
		return st
	})
}

// ClearList removes the current document entirely.
func ClearList(s *store.Store) {
	s.SetState(func(st store.State) store.State {
		st.List = nil
		return st
	})
}

// Navigate records transient UI navigation. It goes through SetState like
// every other action, so consumers re-render off the same notification
// path; the UI fields themselves are excluded from undo snapshots.
func Navigate(s *store.Store, view string) {
	s.SetState(func(st store.State) store.State {
		st.UI.View = view
		return st
	})
}

func SelectCategory(s *store.Store, categoryID string) {
	s.SetState(func(st store.State) store.State {
		st.UI.SelectedCategoryID = categoryID
		return st
	})
}
