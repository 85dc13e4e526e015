package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/dragstorm/internal/geom"
)

func TestLayoutRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	want := map[string]geom.Point{
		"panel":   geom.Pt(12, -3),
		"sidebar": geom.Pt(0, 40.5),
	}

	if err := SaveLayout(path, want); err != nil {
		t.Fatalf("SaveLayout() error = %v", err)
	}
	got, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout() error = %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for id, p := range want {
		if !got[id].Equal(p) {
			t.Errorf("got[%q] = %v, want %v", id, got[id], p)
		}
	}
}

func TestLoadLayoutMissingFile(t *testing.T) {
	got, err := LoadLayout(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("LoadLayout() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestLoadLayoutInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	if err := os.WriteFile(path, []byte(`{"boxes":`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLayout(path); err == nil {
		t.Error("LoadLayout() error = nil, want error")
	}
}

func TestSaveLayoutDeterministic(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")
	positions := map[string]geom.Point{
		"z": geom.Pt(1, 2),
		"a": geom.Pt(3, 4),
		"m": geom.Pt(5, 6),
	}

	if err := SaveLayout(a, positions); err != nil {
		t.Fatal(err)
	}
	if err := SaveLayout(b, positions); err != nil {
		t.Fatal(err)
	}

	da, _ := os.ReadFile(a)
	db, _ := os.ReadFile(b)
	if !bytes.Equal(da, db) {
		t.Errorf("repeated saves differ:\n%s\n%s", da, db)
	}
}
