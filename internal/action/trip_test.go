package action

import (
	"testing"

	"packy/internal/order"
)

func TestSetTripRecomputesDays(t *testing.T) {
	s := newTestStore(t)

	trip, err := SetTrip(s, "Summer", "2026-07-01", "2026-07-05")
	if err != nil {
		t.Fatalf("SetTrip: %v", err)
	}
	if trip.CalculatedDays != 5 {
		t.Fatalf("calculatedDays = %d; want 5 (inclusive range)", trip.CalculatedDays)
	}

	// Same-day trip is one day.
	trip, err = SetTrip(s, "", "2026-07-01", "2026-07-01")
	if err != nil {
		t.Fatalf("SetTrip: %v", err)
	}
	if trip.CalculatedDays != 1 {
		t.Fatalf("same-day calculatedDays = %d; want 1", trip.CalculatedDays)
	}

	// Inverted range clamps to the 1-day minimum.
	trip, err = SetTrip(s, "", "2026-07-05", "2026-07-01")
	if err != nil {
		t.Fatalf("SetTrip: %v", err)
	}
	if trip.CalculatedDays != 1 {
		t.Fatalf("inverted range calculatedDays = %d; want 1", trip.CalculatedDays)
	}
}

func TestSetTripRejectsMalformedDates(t *testing.T) {
	s := newTestStore(t)
	if _, err := SetTrip(s, "X", "07/01/2026", "2026-07-05"); err == nil {
		t.Fatalf("expected error for malformed departure date")
	}
	if _, err := SetTrip(s, "X", "2026-07-01", "tomorrow"); err == nil {
		t.Fatalf("expected error for malformed return date")
	}
}

func TestSetTripKeepsNameWhenBlank(t *testing.T) {
	s := newTestStore(t)
	if _, err := SetTrip(s, "", "2026-07-01", "2026-07-02"); err != nil {
		t.Fatalf("SetTrip: %v", err)
	}
	if got := s.State().List.Trip.Name; got != "Test trip" {
		t.Fatalf("trip name = %q; want preserved %q", got, "Test trip")
	}
}

func TestSetTripKeepsDatesWhenBlank(t *testing.T) {
	s := newTestStore(t)
	if _, err := SetTrip(s, "Summer", "2026-07-01", "2026-07-05"); err != nil {
		t.Fatalf("SetTrip: %v", err)
	}

	// Renaming without dates must not wipe the dates or the day count.
	trip, err := SetTrip(s, "Summer in Lisbon", "", "")
	if err != nil {
		t.Fatalf("SetTrip: %v", err)
	}
	if trip.Name != "Summer in Lisbon" {
		t.Fatalf("trip name = %q; want %q", trip.Name, "Summer in Lisbon")
	}
	if trip.DepartureDate != "2026-07-01" || trip.ReturnDate != "2026-07-05" {
		t.Fatalf("dates = %q..%q; want preserved 2026-07-01..2026-07-05",
			trip.DepartureDate, trip.ReturnDate)
	}
	if trip.CalculatedDays != 5 {
		t.Fatalf("calculatedDays = %d; want 5", trip.CalculatedDays)
	}
	got := s.State().List.Trip
	if got.DepartureDate != "2026-07-01" || got.CalculatedDays != 5 {
		t.Fatalf("stored trip lost its dates: %+v", got)
	}
}

func TestMoveStageAndTasks(t *testing.T) {
	s := newTestStore(t)
	a, _ := AddStage(s, "A")
	b, _ := AddStage(s, "B")
	c, _ := AddStage(s, "C")

	MoveStage(s, c.ID, a.ID, order.Before)

	stages := StagesInOrder(s.State().List)
	if stages[0].ID != c.ID || stages[1].ID != a.ID || stages[2].ID != b.ID {
		t.Fatalf("stage order after move = %s,%s,%s", stages[0].ID, stages[1].ID, stages[2].ID)
	}

	t1, _ := AddTask(s, a.ID, "one")
	t2, _ := AddTask(s, a.ID, "two")
	other, _ := AddTask(s, b.ID, "elsewhere")

	MoveTask(s, t2.ID, t1.ID, order.Before)
	stage, _ := s.State().List.FindStage(a.ID)
	tasks := TasksInOrder(*stage)
	if tasks[0].ID != t2.ID || tasks[1].ID != t1.ID {
		t.Fatalf("task order after move = %s,%s", tasks[0].ID, tasks[1].ID)
	}

	// Cross-stage task targets are impossible gestures: silently ignored.
	depth := s.HistoryLen()
	MoveTask(s, t1.ID, other.ID, order.After)
	if s.HistoryLen() != depth {
		t.Fatalf("cross-stage task move pushed history")
	}
}

func TestRemoveStageCompactsStageOrders(t *testing.T) {
	s := newTestStore(t)
	a, _ := AddStage(s, "A")
	b, _ := AddStage(s, "B")
	c, _ := AddStage(s, "C")

	if err := RemoveStage(s, a.ID); err != nil {
		t.Fatalf("RemoveStage: %v", err)
	}
	stages := StagesInOrder(s.State().List)
	if len(stages) != 2 || stages[0].Order != 0 || stages[1].Order != 1 {
		t.Fatalf("stage orders not compacted: %+v", stages)
	}
	if stages[0].ID != b.ID || stages[1].ID != c.ID {
		t.Fatalf("unexpected stage ordering after removal")
	}
}
