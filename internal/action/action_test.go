package action

import (
	"testing"
	"time"

	"packy/internal/model"
	"packy/internal/store"
)

func strPtr(s string) *string { return &s }

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(nil)
	s.Now = func() time.Time { return time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC) }
	if _, err := NewList(s, "Test trip", "2026-07-01", "2026-07-05"); err != nil {
		t.Fatalf("NewList: %v", err)
	}
	return s
}

func mustAddCategory(t *testing.T, s *store.Store, name string, defaultBagID *string) model.Category {
	t.Helper()
	c, err := AddCategory(s, name, "", defaultBagID)
	if err != nil {
		t.Fatalf("AddCategory %s: %v", name, err)
	}
	return c
}

func mustAddItem(t *testing.T, s *store.Store, name, categoryID string) model.Item {
	t.Helper()
	it, err := AddItem(s, ItemParams{Name: name, CategoryID: categoryID})
	if err != nil {
		t.Fatalf("AddItem %s: %v", name, err)
	}
	return it
}

// ordersByID reads the dense order scope of one category.
func ordersByID(list *model.PackingList, categoryID string) map[string]int {
	out := map[string]int{}
	for _, it := range list.ItemsInCategory(categoryID) {
		out[it.ID] = it.Order
	}
	return out
}

func requireDenseScope(t *testing.T, list *model.PackingList, categoryID string) {
	t.Helper()
	items := list.ItemsInCategory(categoryID)
	seen := map[int]bool{}
	for _, it := range items {
		if it.Order < 0 || it.Order >= len(items) {
			t.Fatalf("category %s: order %d out of range [0,%d)", categoryID, it.Order, len(items))
		}
		if seen[it.Order] {
			t.Fatalf("category %s: duplicate order %d", categoryID, it.Order)
		}
		seen[it.Order] = true
	}
}
