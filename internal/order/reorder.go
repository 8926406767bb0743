// Package order computes dense order assignments for drag-style reorder
// gestures. One parameterized algorithm covers items within a category,
// items moving across categories, tasks within a stage, and the stage list
// itself; callers describe their collection as a flat set of entries.
package order

import (
	"sort"
	"strings"
)

// Position says which side of the target the moved entry lands on.
type Position string

const (
	Before Position = "before"
	After  Position = "after"
)

// Entry is one member of an ordered collection. Scope identifies the
// sibling group the entry's Order is dense within (a category id, a stage
// id, or "" for a single-scope collection such as the stage list).
type Entry struct {
	ID    string
	Scope string
	Order int
}

// Plan describes the updates needed to realize a reorder. OrderByID holds
// only entries whose order changes; ScopeByID is non-empty only for a
// cross-scope move (it then contains the moved id's new scope).
type Plan struct {
	OrderByID map[string]int
	ScopeByID map[string]string
}

// Changed reports whether applying the plan would modify anything.
func (p Plan) Changed() bool {
	return len(p.OrderByID) > 0 || len(p.ScopeByID) > 0
}

// Reorder plans moving movedID so it lands adjacent to targetID on the
// requested side. Moving an entry relative to itself, or naming an absent
// id, is a no-op and returns an empty plan.
//
// After applying the plan the destination scope — and, for a cross-scope
// move, the origin scope — both carry dense 0-based orders.
func Reorder(entries []Entry, movedID, targetID string, pos Position) Plan {
	plan := Plan{OrderByID: map[string]int{}, ScopeByID: map[string]string{}}

	movedID = strings.TrimSpace(movedID)
	targetID = strings.TrimSpace(targetID)
	if movedID == "" || targetID == "" || movedID == targetID {
		return plan
	}

	moved, ok := find(entries, movedID)
	if !ok {
		return plan
	}
	target, ok := find(entries, targetID)
	if !ok {
		return plan
	}

	if moved.Scope == target.Scope {
		sameScopeReorder(&plan, entries, moved, target, pos)
		return plan
	}
	crossScopeMove(&plan, entries, moved, target, pos)
	return plan
}

func find(entries []Entry, id string) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

func scopeSorted(entries []Entry, scope string) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Scope == scope {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// sameScopeReorder removes the moved entry from its sibling sequence,
// re-inserts it next to the target, and reassigns 0..n-1 by position.
// Computing the insertion index against the post-removal sequence is what
// keeps the landing side correct regardless of the moved entry's prior
// position relative to the target.
func sameScopeReorder(plan *Plan, entries []Entry, moved, target Entry, pos Position) {
	sibs := scopeSorted(entries, moved.Scope)

	rest := make([]Entry, 0, len(sibs)-1)
	for _, e := range sibs {
		if e.ID != moved.ID {
			rest = append(rest, e)
		}
	}

	insertAt := indexOf(rest, target.ID)
	if insertAt < 0 {
		return
	}
	if pos == After {
		insertAt++
	}

	final := make([]Entry, 0, len(sibs))
	final = append(final, rest[:insertAt]...)
	final = append(final, moved)
	final = append(final, rest[insertAt:]...)

	for i, e := range final {
		if e.Order != i {
			plan.OrderByID[e.ID] = i
		}
	}
}

// crossScopeMove relocates the moved entry into the target's scope. The
// moved entry is not a member of that scope yet, so the target's own index
// is the insertion point directly; everything at or after it shifts up by
// one, and the vacated origin scope is compacted.
func crossScopeMove(plan *Plan, entries []Entry, moved, target Entry, pos Position) {
	dest := scopeSorted(entries, target.Scope)
	insertAt := indexOf(dest, target.ID)
	if insertAt < 0 {
		return
	}
	if pos == After {
		insertAt++
	}

	plan.ScopeByID[moved.ID] = target.Scope
	plan.OrderByID[moved.ID] = insertAt
	for i, e := range dest {
		if i >= insertAt {
			plan.OrderByID[e.ID] = e.Order + 1
		}
	}

	origin := scopeSorted(entries, moved.Scope)
	next := 0
	for _, e := range origin {
		if e.ID == moved.ID {
			continue
		}
		if e.Order != next {
			plan.OrderByID[e.ID] = next
		}
		next++
	}
}

func indexOf(entries []Entry, id string) int {
	for i, e := range entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Compact reassigns dense 0..n-1 orders within one scope, preserving the
// current relative order. It is used after removals.
func Compact(entries []Entry) map[string]int {
	sorted := append([]Entry{}, entries...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })
	updates := map[string]int{}
	for i, e := range sorted {
		if e.Order != i {
			updates[e.ID] = i
		}
	}
	return updates
}
