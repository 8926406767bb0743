// Package docio encodes and decodes packing-list documents at the
// export/import boundary. Import is all-or-nothing: a structurally
// invalid document is rejected with the full list of field errors and
// never partially loaded.
package docio

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"packy/internal/model"
)

// ValidationError enumerates every missing or malformed field found in an
// imported document.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid document: " + strings.Join(e.Problems, "; ")
}

// Validate checks the document's structure without loading it.
func Validate(raw []byte) error {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return &ValidationError{Problems: []string{"not a JSON object"}}
	}

	var problems []string
	for _, key := range []string{"meta", "bags", "categories", "items"} {
		if _, ok := top[key]; !ok {
			problems = append(problems, "Missing required field: "+key)
		}
	}

	problems = append(problems, validateArray(top, "bags", []string{"id", "name"})...)
	problems = append(problems, validateArray(top, "categories", []string{"id", "name"})...)
	problems = append(problems, validateArray(top, "items", []string{"id", "name", "categoryId", "quantityType"})...)

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func validateArray(top map[string]json.RawMessage, key string, required []string) []string {
	raw, ok := top[key]
	if !ok {
		return nil // absence already reported
	}
	var entries []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return []string{fmt.Sprintf("Field %s must be an array", key)}
	}
	var problems []string
	for i, entry := range entries {
		for _, field := range required {
			if _, ok := entry[field]; !ok {
				problems = append(problems, fmt.Sprintf("Missing required field: %s[%d].%s", key, i, field))
			}
		}
	}
	return problems
}

// Decode validates and unmarshals a document.
func Decode(raw []byte) (*model.PackingList, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}
	var list model.PackingList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, &ValidationError{Problems: []string{err.Error()}}
	}
	return &list, nil
}

// Encode marshals a document for export.
func Encode(list *model.PackingList, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(list, "", "  ")
	}
	return json.Marshal(list)
}

// Slugify lowercases, collapses runs of non-alphanumerics into a single
// hyphen, and trims leading/trailing hyphens.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // swallow leading separators
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// ExportFilename returns the conventional export name:
// packy-<slugified-trip-name>-<YYYY-MM-DD>.json.
func ExportFilename(list *model.PackingList, now time.Time) string {
	slug := "list"
	if list != nil {
		if s := Slugify(list.Trip.Name); s != "" {
			slug = s
		}
	}
	return fmt.Sprintf("packy-%s-%s.json", slug, now.Format("2006-01-02"))
}

// AsTemplate derives a reusable template from a document: trip-specific
// fields are stripped, packed/completed flags reset, and template metadata
// attached. The source document is not modified.
func AsTemplate(list *model.PackingList, templateName, description string) *model.PackingList {
	if list == nil {
		return nil
	}
	tpl := *list
	tpl.Trip = model.Trip{CalculatedDays: 1}
	tpl.Meta.TemplateName = templateName
	tpl.Meta.Description = description
	tpl.Meta.IsTemplate = true

	tpl.Items = append([]model.Item{}, list.Items...)
	for i := range tpl.Items {
		tpl.Items[i].Packed = false
	}
	tpl.Stages = make([]model.Stage, len(list.Stages))
	for i, st := range list.Stages {
		cp := st
		cp.Tasks = append([]model.Task{}, st.Tasks...)
		for j := range cp.Tasks {
			cp.Tasks[j].Completed = false
		}
		tpl.Stages[i] = cp
	}
	return &tpl
}
