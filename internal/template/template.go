// Package template loads list templates and instantiates documents from
// them. A template payload is document-shaped (same schema as an export,
// with meta.isTemplate set); instantiation mints fresh ids for every
// entity and rewrites all internal weak references to the new ids.
package template

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"packy/internal/docio"
	"packy/internal/model"
	"packy/internal/store"
)

const manifestFileName = "manifest.json"

// LoadManifest reads the template manifest from a templates directory.
// A missing manifest is an empty catalog, not an error.
func LoadManifest(dir string) ([]model.TemplateInfo, error) {
	raw, err := os.ReadFile(filepath.Join(dir, manifestFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return []model.TemplateInfo{}, nil
		}
		return nil, err
	}
	var infos []model.TemplateInfo
	if err := json.Unmarshal(raw, &infos); err != nil {
		return nil, fmt.Errorf("parse %s: %w", manifestFileName, err)
	}
	return infos, nil
}

// Find returns the manifest record with the given id.
func Find(infos []model.TemplateInfo, id string) (model.TemplateInfo, bool) {
	for _, info := range infos {
		if info.ID == id {
			return info, true
		}
	}
	return model.TemplateInfo{}, false
}

// LoadPayload reads and validates a template's document payload.
func LoadPayload(dir string, info model.TemplateInfo) (*model.PackingList, error) {
	raw, err := os.ReadFile(filepath.Join(dir, info.Filename))
	if err != nil {
		return nil, err
	}
	return docio.Decode(raw)
}

// Instantiate builds a new document from a template payload. Every bag,
// category, item, stage and task gets a fresh id; category→bag,
// item→category and item→bag references are rewritten to the new ids; all
// packed/completed flags reset. The trip is left empty for the caller to
// fill in. The template itself is not modified.
func Instantiate(tpl *model.PackingList, info model.TemplateInfo, now time.Time) *model.PackingList {
	if tpl == nil {
		return nil
	}

	bagIDs := map[string]string{}
	for _, b := range tpl.Bags {
		bagIDs[b.ID] = store.NewID("bag")
	}
	catIDs := map[string]string{}
	for _, c := range tpl.Categories {
		catIDs[c.ID] = store.NewID("cat")
	}

	out := &model.PackingList{
		Meta: model.Meta{
			ID:           store.NewDocumentID(),
			Version:      tpl.Meta.Version,
			CreatedAt:    now,
			ModifiedAt:   now,
			TemplateID:   info.ID,
			TemplateName: info.Name,
		},
		Trip:       model.Trip{CalculatedDays: 1},
		Bags:       make([]model.Bag, 0, len(tpl.Bags)),
		Categories: make([]model.Category, 0, len(tpl.Categories)),
		Items:      make([]model.Item, 0, len(tpl.Items)),
		Stages:     make([]model.Stage, 0, len(tpl.Stages)),
	}
	if out.Meta.Version == 0 {
		out.Meta.Version = 1
	}

	for _, b := range tpl.Bags {
		nb := b
		nb.ID = bagIDs[b.ID]
		out.Bags = append(out.Bags, nb)
	}

	for _, c := range tpl.Categories {
		nc := c
		nc.ID = catIDs[c.ID]
		nc.DefaultBagID = remap(c.DefaultBagID, bagIDs)
		out.Categories = append(out.Categories, nc)
	}

	for _, it := range tpl.Items {
		newCat, ok := catIDs[it.CategoryID]
		if !ok {
			// An item whose category the template never declared has no
			// home in the new list; carrying it over would dangle.
			continue
		}
		ni := it
		ni.ID = store.NewID("item")
		ni.CategoryID = newCat
		ni.BagID = remap(it.BagID, bagIDs)
		ni.Packed = false
		out.Items = append(out.Items, ni)
	}

	for _, st := range tpl.Stages {
		ns := st
		ns.ID = store.NewID("stage")
		ns.Tasks = make([]model.Task, 0, len(st.Tasks))
		for _, tk := range st.Tasks {
			nt := tk
			nt.ID = store.NewID("task")
			nt.Completed = false
			ns.Tasks = append(ns.Tasks, nt)
		}
		out.Stages = append(out.Stages, ns)
	}

	return out
}

// remap translates a weak reference through an id mapping; references to
// ids the template never declared come back nil rather than dangling.
func remap(ref *string, ids map[string]string) *string {
	if ref == nil {
		return nil
	}
	mapped, ok := ids[*ref]
	if !ok {
		return nil
	}
	return &mapped
}
