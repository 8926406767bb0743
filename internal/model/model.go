package model

import (
	"sort"
	"time"
)

type BagType string

const (
	BagTypeCarryOn      BagType = "carry-on"
	BagTypePersonalItem BagType = "personal-item"
	BagTypeChecked      BagType = "checked"
	BagTypeBackpack     BagType = "backpack"
	BagTypeSlingBag     BagType = "sling-bag"
	BagTypeCustom       BagType = "custom"
)

type QuantityType string

const (
	QuantitySingle    QuantityType = "single"
	QuantityFixed     QuantityType = "fixed"
	QuantityDependent QuantityType = "dependent"
)

// Meta carries document identity and provenance. ID is a uuid; entity ids
// elsewhere use readable prefixed ids (bag-xxxx, item-xxxx, ...).
type Meta struct {
	ID           string    `json:"id"`
	Version      int       `json:"version"`
	CreatedAt    time.Time `json:"createdAt"`
	ModifiedAt   time.Time `json:"modifiedAt"`
	TemplateID   string    `json:"templateId,omitempty"`
	TemplateName string    `json:"templateName,omitempty"`
	Description  string    `json:"description,omitempty"`
	IsTemplate   bool      `json:"isTemplate,omitempty"`
}

// Trip dates are calendar dates (YYYY-MM-DD), inclusive on both ends.
// CalculatedDays is derived and cached; it is recomputed whenever either
// date changes and is always >= 1.
type Trip struct {
	Name           string `json:"name"`
	DepartureDate  string `json:"departureDate,omitempty"`
	ReturnDate     string `json:"returnDate,omitempty"`
	CalculatedDays int    `json:"calculatedDays"`
}

type Bag struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Type  BagType `json:"type"`
	Color string  `json:"color,omitempty"`
	Icon  string  `json:"icon,omitempty"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`

	// DefaultBagID is a weak reference: deleting the bag nulls it.
	DefaultBagID *string `json:"defaultBagId,omitempty"`
}

type Item struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CategoryID string `json:"categoryId"`

	// BagID overrides the owning category's default bag when present.
	BagID *string `json:"bagId,omitempty"`

	QuantityType       QuantityType `json:"quantityType"`
	Quantity           int          `json:"quantity,omitempty"`
	QuantityExpression string       `json:"quantityExpression,omitempty"`

	Packed bool `json:"packed"`

	// Order is unique and contiguous within the item's category.
	Order int `json:"order"`
}

type Stage struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
	Tasks []Task `json:"tasks"`
}

type Task struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Order       int    `json:"order"`
}

// PackingList is the root aggregate. It is owned exclusively by the store
// and replaced wholesale on load/clear; presentation code never constructs
// child entities directly.
type PackingList struct {
	Meta       Meta       `json:"meta"`
	Trip       Trip       `json:"trip"`
	Bags       []Bag      `json:"bags"`
	Categories []Category `json:"categories"`
	Items      []Item     `json:"items"`
	Stages     []Stage    `json:"stages,omitempty"`
}

// TemplateInfo is one record of the template manifest: enough to show a
// picker and locate the full document-shaped payload.
type TemplateInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Icon        string   `json:"icon,omitempty"`
	Filename    string   `json:"filename"`
	Tags        []string `json:"tags,omitempty"`
}

func (l *PackingList) FindBag(id string) (*Bag, bool) {
	for i := range l.Bags {
		if l.Bags[i].ID == id {
			return &l.Bags[i], true
		}
	}
	return nil, false
}

func (l *PackingList) FindCategory(id string) (*Category, bool) {
	for i := range l.Categories {
		if l.Categories[i].ID == id {
			return &l.Categories[i], true
		}
	}
	return nil, false
}

func (l *PackingList) FindItem(id string) (*Item, bool) {
	for i := range l.Items {
		if l.Items[i].ID == id {
			return &l.Items[i], true
		}
	}
	return nil, false
}

func (l *PackingList) FindStage(id string) (*Stage, bool) {
	for i := range l.Stages {
		if l.Stages[i].ID == id {
			return &l.Stages[i], true
		}
	}
	return nil, false
}

// FindTask returns the task plus its owning stage.
func (l *PackingList) FindTask(id string) (*Stage, *Task, bool) {
	for i := range l.Stages {
		st := &l.Stages[i]
		for j := range st.Tasks {
			if st.Tasks[j].ID == id {
				return st, &st.Tasks[j], true
			}
		}
	}
	return nil, nil, false
}

// ItemsInCategory returns the category's items sorted by Order.
func (l *PackingList) ItemsInCategory(categoryID string) []Item {
	var out []Item
	for _, it := range l.Items {
		if it.CategoryID == categoryID {
			out = append(out, it)
		}
	}
	SortItemsByOrder(out)
	return out
}

// SortItemsByOrder sorts items in place by Order, then ID for stability.
func SortItemsByOrder(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Order != items[j].Order {
			return items[i].Order < items[j].Order
		}
		return items[i].ID < items[j].ID
	})
}

func NormalizeBagType(s string) (BagType, bool) {
	switch BagType(s) {
	case BagTypeCarryOn, BagTypePersonalItem, BagTypeChecked, BagTypeBackpack, BagTypeSlingBag, BagTypeCustom:
		return BagType(s), true
	default:
		return "", false
	}
}

func NormalizeQuantityType(s string) (QuantityType, bool) {
	switch QuantityType(s) {
	case QuantitySingle, QuantityFixed, QuantityDependent:
		return QuantityType(s), true
	case "":
		return QuantitySingle, true
	default:
		return "", false
	}
}
