package action

import (
	"testing"

	"packy/internal/model"
)

func TestItemQuantity(t *testing.T) {
	list := &model.PackingList{Trip: model.Trip{CalculatedDays: 5}}
	cases := []struct {
		name string
		item model.Item
		want int
	}{
		{"single", model.Item{QuantityType: model.QuantitySingle}, 1},
		{"fixed", model.Item{QuantityType: model.QuantityFixed, Quantity: 3}, 3},
		{"fixedZeroClamped", model.Item{QuantityType: model.QuantityFixed, Quantity: 0}, 1},
		{"dependent", model.Item{QuantityType: model.QuantityDependent, QuantityExpression: "2d+1"}, 11},
		{"dependentCeil", model.Item{QuantityType: model.QuantityDependent, QuantityExpression: "d/2"}, 3},
		{"dependentBadFallsBack", model.Item{QuantityType: model.QuantityDependent, QuantityExpression: "d++"}, 1},
		{"dependentEmpty", model.Item{QuantityType: model.QuantityDependent}, 1},
	}
	for _, tc := range cases {
		if got := ItemQuantity(list, tc.item); got != tc.want {
			t.Fatalf("%s: quantity = %d; want %d", tc.name, got, tc.want)
		}
	}
}

func TestEffectiveBagResolution(t *testing.T) {
	s := newTestStore(t)
	def, err := AddBag(s, "Backpack", model.BagTypeBackpack, "", "")
	if err != nil {
		t.Fatalf("AddBag: %v", err)
	}
	override, err := AddBag(s, "Sling", model.BagTypeSlingBag, "", "")
	if err != nil {
		t.Fatalf("AddBag: %v", err)
	}
	cat := mustAddCategory(t, s, "Clothes", strPtr(def.ID))
	bare := mustAddCategory(t, s, "Misc", nil)

	inherits := mustAddItem(t, s, "Shirt", cat.ID)
	overridden, err := AddItem(s, ItemParams{Name: "Wallet", CategoryID: cat.ID, BagID: strPtr(override.ID)})
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	unassigned := mustAddItem(t, s, "Mystery", bare.ID)

	list := s.State().List

	got, ok := EffectiveBag(list, mustFind(t, list, inherits.ID))
	if !ok || got.ID != def.ID {
		t.Fatalf("inherited bag = %v ok=%v; want %s", got.ID, ok, def.ID)
	}
	got, ok = EffectiveBag(list, mustFind(t, list, overridden.ID))
	if !ok || got.ID != override.ID {
		t.Fatalf("override bag = %v ok=%v; want %s", got.ID, ok, override.ID)
	}
	if _, ok := EffectiveBag(list, mustFind(t, list, unassigned.ID)); ok {
		t.Fatalf("expected no effective bag")
	}

	un := UnassignedItems(list)
	if len(un) != 1 || un[0].ID != unassigned.ID {
		t.Fatalf("UnassignedItems = %v", un)
	}

	byBag := ItemsByBag(list)
	if len(byBag[def.ID]) != 1 || byBag[def.ID][0].ID != inherits.ID {
		t.Fatalf("ItemsByBag[%s] = %v", def.ID, byBag[def.ID])
	}
	if len(byBag[override.ID]) != 1 {
		t.Fatalf("ItemsByBag[%s] = %v", override.ID, byBag[override.ID])
	}
}

func mustFind(t *testing.T, list *model.PackingList, id string) model.Item {
	t.Helper()
	it, ok := list.FindItem(id)
	if !ok {
		t.Fatalf("item %s not found", id)
	}
	return *it
}

func TestPackingProgress(t *testing.T) {
	s := newTestStore(t)
	cat := mustAddCategory(t, s, "Clothes", nil)
	a := mustAddItem(t, s, "Shirt", cat.ID)
	mustAddItem(t, s, "Pants", cat.ID)
	mustAddItem(t, s, "Socks", cat.ID)

	if err := SetItemPacked(s, a.ID, true); err != nil {
		t.Fatalf("SetItemPacked: %v", err)
	}

	p := PackingProgress(s.State().List)
	if p.Packed != 1 || p.Total != 3 || p.Percent != 33 {
		t.Fatalf("progress = %+v; want 1/3 (33%%)", p)
	}

	if got := PackingProgress(nil); got.Total != 0 || got.Percent != 0 {
		t.Fatalf("nil list progress = %+v", got)
	}
}

func TestStageProgressAndOrdering(t *testing.T) {
	s := newTestStore(t)
	first, err := AddStage(s, "Before leaving")
	if err != nil {
		t.Fatalf("AddStage: %v", err)
	}
	second, err := AddStage(s, "Night before")
	if err != nil {
		t.Fatalf("AddStage: %v", err)
	}

	t1, err := AddTask(s, first.ID, "Water plants")
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if _, err := AddTask(s, first.ID, "Lock windows"); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if err := SetTaskCompleted(s, t1.ID, true); err != nil {
		t.Fatalf("SetTaskCompleted: %v", err)
	}

	list := s.State().List
	stage, _ := list.FindStage(first.ID)
	p := StageProgress(*stage)
	if p.Packed != 1 || p.Total != 2 || p.Percent != 50 {
		t.Fatalf("stage progress = %+v; want 1/2", p)
	}

	stages := StagesInOrder(list)
	if stages[0].ID != first.ID || stages[1].ID != second.ID {
		t.Fatalf("stage order = %s,%s", stages[0].ID, stages[1].ID)
	}
}
