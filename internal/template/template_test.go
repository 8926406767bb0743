package template

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"packy/internal/model"
)

func strPtr(s string) *string { return &s }

func fixtureTemplate() *model.PackingList {
	return &model.PackingList{
		Meta: model.Meta{ID: "tpl-doc", Version: 1, IsTemplate: true, TemplateName: "Beach"},
		Bags: []model.Bag{
			{ID: "bag-1", Name: "Carry-on", Type: model.BagTypeCarryOn},
		},
		Categories: []model.Category{
			{ID: "cat-1", Name: "Clothes", DefaultBagID: strPtr("bag-1")},
		},
		Items: []model.Item{
			{ID: "item-1", Name: "Swimsuit", CategoryID: "cat-1", QuantityType: model.QuantitySingle, Packed: true, Order: 0},
			{ID: "item-2", Name: "Sunscreen", CategoryID: "cat-1", BagID: strPtr("bag-1"), QuantityType: model.QuantityFixed, Quantity: 2, Order: 1},
		},
		Stages: []model.Stage{
			{ID: "stage-1", Name: "Day before", Order: 0, Tasks: []model.Task{
				{ID: "task-1", Description: "Freeze water bottles", Completed: true, Order: 0},
			}},
		},
	}
}

func TestInstantiateMintsFreshIDs(t *testing.T) {
	tpl := fixtureTemplate()
	now := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	info := model.TemplateInfo{ID: "beach", Name: "Beach trip"}

	doc := Instantiate(tpl, info, now)

	sourceIDs := map[string]bool{
		"tpl-doc": true, "bag-1": true, "cat-1": true,
		"item-1": true, "item-2": true, "stage-1": true, "task-1": true,
	}
	for _, id := range collectIDs(doc) {
		if sourceIDs[id] {
			t.Fatalf("instantiated document reuses source id %q", id)
		}
	}
	if doc.Meta.TemplateID != "beach" || doc.Meta.TemplateName != "Beach trip" {
		t.Fatalf("template provenance not recorded: %+v", doc.Meta)
	}
	if doc.Meta.IsTemplate {
		t.Fatalf("instantiated document still flagged as template")
	}
}

func TestInstantiateRewritesReferences(t *testing.T) {
	tpl := fixtureTemplate()
	doc := Instantiate(tpl, model.TemplateInfo{ID: "beach"}, time.Now())

	newBagID := doc.Bags[0].ID
	newCatID := doc.Categories[0].ID

	if doc.Categories[0].DefaultBagID == nil || *doc.Categories[0].DefaultBagID != newBagID {
		t.Fatalf("category defaultBagId not rewritten")
	}
	for _, it := range doc.Items {
		if it.CategoryID != newCatID {
			t.Fatalf("item %s categoryId not rewritten: %s", it.ID, it.CategoryID)
		}
	}
	if doc.Items[1].BagID == nil || *doc.Items[1].BagID != newBagID {
		t.Fatalf("item bagId not rewritten")
	}
}

func TestInstantiateResetsFlags(t *testing.T) {
	doc := Instantiate(fixtureTemplate(), model.TemplateInfo{}, time.Now())
	for _, it := range doc.Items {
		if it.Packed {
			t.Fatalf("item %s still packed", it.ID)
		}
	}
	for _, st := range doc.Stages {
		for _, tk := range st.Tasks {
			if tk.Completed {
				t.Fatalf("task %s still completed", tk.ID)
			}
		}
	}
}

func TestInstantiateDropsDanglingReferences(t *testing.T) {
	tpl := fixtureTemplate()
	tpl.Items[1].BagID = strPtr("bag-ghost")

	doc := Instantiate(tpl, model.TemplateInfo{}, time.Now())
	if doc.Items[1].BagID != nil {
		t.Fatalf("dangling bag reference survived instantiation: %v", *doc.Items[1].BagID)
	}
}

func TestInstantiateDropsItemsWithUnknownCategory(t *testing.T) {
	tpl := fixtureTemplate()
	tpl.Items[1].CategoryID = "cat-ghost"

	doc := Instantiate(tpl, model.TemplateInfo{}, time.Now())
	if len(doc.Items) != 1 {
		t.Fatalf("got %d items; want 1 (orphan dropped)", len(doc.Items))
	}
	if doc.Items[0].Name != "Swimsuit" {
		t.Fatalf("surviving item = %q; want Swimsuit", doc.Items[0].Name)
	}
	for _, it := range doc.Items {
		if _, ok := doc.FindCategory(it.CategoryID); !ok {
			t.Fatalf("item %q references missing category %q", it.Name, it.CategoryID)
		}
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()

	infos, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest on empty dir: %v", err)
	}
	if len(infos) != 0 {
		t.Fatalf("expected empty catalog; got %v", infos)
	}

	manifest := []model.TemplateInfo{
		{ID: "beach", Name: "Beach trip", Filename: "beach.json", Tags: []string{"summer"}},
	}
	raw, err := json.Marshal(manifest)
	if err != nil {
		t.Fatalf("marshal manifest: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "manifest.json"), raw, 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	infos, err = LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if len(infos) != 1 || infos[0].ID != "beach" {
		t.Fatalf("manifest = %+v", infos)
	}

	info, ok := Find(infos, "beach")
	if !ok || info.Filename != "beach.json" {
		t.Fatalf("Find beach = %+v ok=%v", info, ok)
	}
	if _, ok := Find(infos, "alpine"); ok {
		t.Fatalf("Find returned a missing template")
	}
}

func collectIDs(doc *model.PackingList) []string {
	ids := []string{doc.Meta.ID}
	for _, b := range doc.Bags {
		ids = append(ids, b.ID)
	}
	for _, c := range doc.Categories {
		ids = append(ids, c.ID)
	}
	for _, it := range doc.Items {
		ids = append(ids, it.ID)
	}
	for _, st := range doc.Stages {
		ids = append(ids, st.ID)
		for _, tk := range st.Tasks {
			ids = append(ids, tk.ID)
		}
	}
	return ids
}
