package store

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"packy/internal/model"
)

func newTestStore() *Store {
	s := New(nil)
	s.Now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func withList(name string) UpdateFunc {
	return func(st State) State {
		st.List = &model.PackingList{
			Meta:       model.Meta{ID: "doc-1", Version: 1},
			Trip:       model.Trip{Name: name, CalculatedDays: 1},
			Bags:       []model.Bag{},
			Categories: []model.Category{},
			Items:      []model.Item{},
		}
		return st
	}
}

func TestStateIsIsolated(t *testing.T) {
	s := newTestStore()
	s.SetState(withList("Lisbon"))

	got := s.State()
	got.List.Trip.Name = "mutated"
	got.List.Bags = append(got.List.Bags, model.Bag{ID: "bag-1", Name: "Duffel"})

	if name := s.State().List.Trip.Name; name != "Lisbon" {
		t.Fatalf("store state mutated through returned copy; trip name %q", name)
	}
	if n := len(s.State().List.Bags); n != 0 {
		t.Fatalf("store state mutated through returned copy; %d bags", n)
	}
}

func TestSetStateRefreshesModifiedAt(t *testing.T) {
	s := newTestStore()
	s.SetState(withList("Lisbon"))

	want := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if got := s.State().List.Meta.ModifiedAt; !got.Equal(want) {
		t.Fatalf("modifiedAt = %v; want %v", got, want)
	}
}

func TestUndoRestoresPriorDocument(t *testing.T) {
	s := newTestStore()
	s.SetState(withList("Lisbon"))
	before := s.State().List

	s.SetState(func(st State) State {
		st.List.Trip.Name = "Porto"
		st.List.Items = append(st.List.Items, model.Item{ID: "item-1", Name: "Socks", CategoryID: "cat-1"})
		return st
	})

	if !s.Undo() {
		t.Fatalf("Undo returned false with non-empty history")
	}
	after := s.State().List
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("undo mismatch:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestUndoEmptyHistory(t *testing.T) {
	s := newTestStore()
	if s.Undo() {
		t.Fatalf("Undo on empty history returned true")
	}
	if s.State().List != nil {
		t.Fatalf("Undo on empty history changed state")
	}
}

func TestUndoDepthBounded(t *testing.T) {
	s := newTestStore()
	s.SetState(withList("Trip"))

	// 60 mutations; only the most recent 50 snapshots are retained.
	for i := 0; i < 60; i++ {
		n := i
		s.SetState(func(st State) State {
			st.List.Trip.Name = fmt.Sprintf("trip-%d", n)
			return st
		})
	}
	if got := s.HistoryLen(); got != HistoryLimit {
		t.Fatalf("history depth = %d; want %d", got, HistoryLimit)
	}

	undone := 0
	for s.Undo() {
		undone++
	}
	if undone != HistoryLimit {
		t.Fatalf("undid %d times; want %d", undone, HistoryLimit)
	}
	// The oldest retained snapshot is mutation #9's result.
	if got := s.State().List.Trip.Name; got != "trip-9" {
		t.Fatalf("deepest undo restored %q; want trip-9", got)
	}
}

func TestUndoPreservesTransientState(t *testing.T) {
	s := newTestStore()
	s.SetState(withList("Trip"))
	s.SetState(func(st State) State {
		st.List.Trip.Name = "changed"
		st.UI.SelectedCategoryID = "cat-7"
		return st
	})

	if !s.Undo() {
		t.Fatalf("Undo returned false")
	}
	if got := s.State().UI.SelectedCategoryID; got != "cat-7" {
		t.Fatalf("undo clobbered transient state; selected category %q", got)
	}
	if got := s.State().List.Trip.Name; got != "Trip" {
		t.Fatalf("undo did not restore document; trip name %q", got)
	}
}

func TestSubscribersNotifiedSynchronously(t *testing.T) {
	s := newTestStore()
	var seen []string
	unsub := s.Subscribe(func(st State) {
		name := ""
		if st.List != nil {
			name = st.List.Trip.Name
		}
		seen = append(seen, name)
	})

	s.SetState(withList("Lisbon"))
	if len(seen) != 1 || seen[0] != "Lisbon" {
		t.Fatalf("subscriber saw %v; want [Lisbon]", seen)
	}

	unsub()
	s.SetState(withList("Porto"))
	if len(seen) != 1 {
		t.Fatalf("unsubscribed listener was notified; saw %v", seen)
	}
}

func TestPanickingSubscriberIsolated(t *testing.T) {
	s := newTestStore()
	s.Subscribe(func(State) { panic("render exploded") })
	var called bool
	s.Subscribe(func(State) { called = true })

	s.SetState(withList("Lisbon"))

	if !called {
		t.Fatalf("second subscriber not notified after first panicked")
	}
	if s.State().List == nil {
		t.Fatalf("mutation aborted by panicking subscriber")
	}
}

func TestUndoNotifiesSubscribers(t *testing.T) {
	s := newTestStore()
	s.SetState(withList("Lisbon"))

	notified := 0
	s.Subscribe(func(State) { notified++ })
	s.SetState(func(st State) State {
		st.List.Trip.Name = "Porto"
		return st
	})
	s.Undo()

	if notified != 2 {
		t.Fatalf("subscriber notified %d times; want 2 (mutation + undo)", notified)
	}
}

func TestNewIDUniqueAndPrefixed(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := NewID("item")
		if len(id) != len("item-")+8 {
			t.Fatalf("unexpected id shape %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
