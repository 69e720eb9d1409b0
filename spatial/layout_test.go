package spatial

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lukasmw/spatial3d/geometry"
)

func tempStore(t *testing.T) *LayoutStore {
	t.Helper()
	return &LayoutStore{filePath: filepath.Join(t.TempDir(), "layout.json")}
}

func TestLayoutRoundTrip(t *testing.T) {
	store := tempStore(t)

	saved := []*Source{
		NewSource("drums", geometry.New(0.0, 0.0, 3.0), 0.6),
		NewSource("vocals", geometry.New(-2.5, 0.5, 1.0), -0.3),
	}
	if err := store.Save(saved); err != nil {
		t.Fatalf("save failed: %s", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %s", err)
	}
	if len(loaded) != len(saved) {
		t.Fatalf("loaded %d sources, want %d", len(loaded), len(saved))
	}

	for i, source := range loaded {
		if source.Name() != saved[i].Name() {
			t.Errorf("source %d name = %q, want %q", i, source.Name(), saved[i].Name())
		}
		if source.Position() != saved[i].Position() {
			t.Errorf("source %d position = %v, want %v", i, source.Position(), saved[i].Position())
		}
		if source.orbitSpeed != saved[i].orbitSpeed {
			t.Errorf("source %d orbit speed = %v, want %v", i, source.orbitSpeed, saved[i].orbitSpeed)
		}
	}
}

func TestLayoutLoadMissingFile(t *testing.T) {
	store := tempStore(t)
	if _, err := store.Load(); err == nil {
		t.Error("loading a missing layout file did not fail")
	}
}

func TestLayoutLoadInvalidJSON(t *testing.T) {
	store := tempStore(t)
	if err := os.WriteFile(store.filePath, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Load(); err == nil {
		t.Error("loading an invalid layout file did not fail")
	}
}
