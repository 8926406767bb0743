// Package workspace locates and reads/writes the working list file. The
// list file is the document's only persistence: loading goes through the
// same validation as any import, and saving writes the export encoding.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"packy/internal/docio"
	"packy/internal/model"
)

const ListFileName = "packy.json"

// Discover walks up from start looking for a packy.json; it returns the
// file path when found.
func Discover(start string) (string, bool) {
	dir := start
	for {
		candidate := filepath.Join(dir, ListFileName)
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// DefaultPath resolves the working list file: a discovered packy.json
// above the current directory, else packy.json in the current directory.
func DefaultPath() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if found, ok := Discover(cwd); ok {
		return found, nil
	}
	return filepath.Join(cwd, ListFileName), nil
}

// LoadList reads and validates the list file.
func LoadList(path string) (*model.PackingList, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	list, err := docio.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

// SaveList writes the document to the list file via a temp-file rename so
// a crash mid-write never leaves a truncated document behind.
func SaveList(path string, list *model.PackingList, pretty bool) error {
	data, err := docio.Encode(list, pretty)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
