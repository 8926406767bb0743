package workspace

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"packy/internal/model"
)

func testList() *model.PackingList {
	ts := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)
	return &model.PackingList{
		Meta:       model.Meta{ID: "doc-1", Version: 1, CreatedAt: ts, ModifiedAt: ts},
		Trip:       model.Trip{Name: "Rome", CalculatedDays: 3},
		Bags:       []model.Bag{},
		Categories: []model.Category{},
		Items:      []model.Item{},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ListFileName)

	require.NoError(t, SaveList(path, testList(), true))

	got, err := LoadList(path)
	require.NoError(t, err)
	require.Equal(t, "Rome", got.Trip.Name)
	require.Equal(t, 3, got.Trip.CalculatedDays)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ListFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"meta":{}}`), 0o644))

	_, err := LoadList(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Missing required field: items")
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, SaveList(filepath.Join(root, ListFileName), testList(), false))

	found, ok := Discover(nested)
	require.True(t, ok)
	require.Equal(t, filepath.Join(root, ListFileName), found)

	_, ok = Discover(filepath.Join(os.TempDir(), "definitely-missing-packy"))
	require.False(t, ok)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)

	raw := []byte("templatesDir: templates\npretty: false\nlistFile: trip.json\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), raw, 0o644))

	cfg, err = LoadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "templates"), cfg.TemplatesDir)
	require.False(t, cfg.Pretty)
	require.Equal(t, "trip.json", cfg.ListFile)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("templatesDir: [unclosed"), 0o644))
	_, err = LoadConfig(dir)
	require.Error(t, err)
}
