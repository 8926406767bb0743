package action

import (
	"errors"
	"fmt"
)

// ErrNoList is returned by actions that require a loaded document.
var ErrNoList = errors.New("no packing list loaded")

var ErrEmptyName = errors.New("name must not be empty")

type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

func errNotFound(kind, id string) error {
	return NotFoundError{Kind: kind, ID: id}
}
