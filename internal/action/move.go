package action

import (
	"packy/internal/order"
	"packy/internal/store"
)

// MoveItem repositions an item relative to a target item, within its
// category or across categories (the item then adopts the target's
// category). Missing ids and self-targets are silent no-ops: they are
// impossible drag gestures, not user errors.
func MoveItem(s *store.Store, movedID, targetID string, pos order.Position) {
	st := s.State()
	if st.List == nil {
		return
	}
	entries := make([]order.Entry, 0, len(st.List.Items))
	for _, it := range st.List.Items {
		entries = append(entries, order.Entry{ID: it.ID, Scope: it.CategoryID, Order: it.Order})
	}
	plan := order.Reorder(entries, movedID, targetID, pos)
	if !plan.Changed() {
		return
	}
	s.SetState(func(st store.State) store.State {
		if st.List == nil {
			return st
		}
		applyItemPlan(st.List, plan)
		return st
	})
}

// MoveTask repositions a task within its stage. Tasks never cross stages,
// so a target in another stage is a no-op.
func MoveTask(s *store.Store, movedID, targetID string, pos order.Position) {
	st := s.State()
	if st.List == nil {
		return
	}
	movedStage, _, ok := st.List.FindTask(movedID)
	if !ok {
		return
	}
	targetStage, _, ok := st.List.FindTask(targetID)
	if !ok || targetStage.ID != movedStage.ID {
		return
	}

	entries := make([]order.Entry, 0, len(movedStage.Tasks))
	for _, tk := range movedStage.Tasks {
		entries = append(entries, order.Entry{ID: tk.ID, Scope: movedStage.ID, Order: tk.Order})
	}
	plan := order.Reorder(entries, movedID, targetID, pos)
	if !plan.Changed() {
		return
	}
	stageID := movedStage.ID
	s.SetState(func(st store.State) store.State {
		if st.List == nil {
			return st
		}
		stage, ok := st.List.FindStage(stageID)
		if !ok {
			return st
		}
		for i := range stage.Tasks {
			if o, ok := plan.OrderByID[stage.Tasks[i].ID]; ok {
				stage.Tasks[i].Order = o
			}
		}
		return st
	})
}

// MoveStage repositions a stage within the document's stage list.
func MoveStage(s *store.Store, movedID, targetID string, pos order.Position) {
	st := s.State()
	if st.List == nil {
		return
	}
	entries := make([]order.Entry, 0, len(st.List.Stages))
	for _, sg := range st.List.Stages {
		entries = append(entries, order.Entry{ID: sg.ID, Order: sg.Order})
	}
	plan := order.Reorder(entries, movedID, targetID, pos)
	if !plan.Changed() {
		return
	}
	s.SetState(func(st store.State) store.State {
		if st.List == nil {
			return st
		}
		for i := range st.List.Stages {
			if o, ok := plan.OrderByID[st.List.Stages[i].ID]; ok {
				st.List.Stages[i].Order = o
			}
		}
		return st
	})
}
