package action

import (
	"fmt"

	"packy/internal/docio"
	"packy/internal/store"
	"packy/internal/template"
)

// ImportDocument validates raw JSON and replaces the current document.
// A structurally invalid document leaves the store untouched.
func ImportDocument(s *store.Store, raw []byte) error {
	list, err := docio.Decode(raw)
	if err != nil {
		return err
	}
	LoadList(s, list)
	return nil
}

// ExportDocument encodes the current document and returns it with the
// conventional export filename.
func ExportDocument(s *store.Store, pretty bool) ([]byte, string, error) {
	st := s.State()
	if st.List == nil {
		return nil, "", ErrNoList
	}
	data, err := docio.Encode(st.List, pretty)
	if err != nil {
		return nil, "", err
	}
	return data, docio.ExportFilename(st.List, s.Now()), nil
}

// SaveAsTemplate derives a template from the current document.
func SaveAsTemplate(s *store.Store, templateName, description string, pretty bool) ([]byte, error) {
	st := s.State()
	if st.List == nil {
		return nil, ErrNoList
	}
	return docio.Encode(docio.AsTemplate(st.List, templateName, description), pretty)
}

// NewFromTemplate instantiates a document from a catalog template and
// loads it, with the given trip details.
func NewFromTemplate(s *store.Store, templatesDir, templateID, tripName, departureDate, returnDate string) error {
	infos, err := template.LoadManifest(templatesDir)
	if err != nil {
		return err
	}
	info, ok := template.Find(infos, templateID)
	if !ok {
		return fmt.Errorf("template not found: %s", templateID)
	}
	payload, err := template.LoadPayload(templatesDir, info)
	if err != nil {
		return err
	}

	trip, err := buildTrip(tripName, departureDate, returnDate)
	if err != nil {
		return err
	}
	list := template.Instantiate(payload, info, s.Now().UTC())
	list.Trip = trip
	LoadList(s, list)
	return nil
}
