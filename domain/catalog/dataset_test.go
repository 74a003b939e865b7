package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultItems(t *testing.T) {
	items := DefaultItems()
	if len(items) != 21 {
		t.Fatalf("len = %d, want 21", len(items))
	}

	table, err := NewTable(items)
	if err != nil {
		t.Fatalf("default dataset must satisfy table invariants: %v", err)
	}

	counts := map[string]int{}
	for _, item := range items {
		counts[item.Category()]++
	}
	for _, cat := range []string{"laptop", "accessory", "audio"} {
		if counts[cat] != 7 {
			t.Errorf("category %s has %d items, want 7", cat, counts[cat])
		}
	}

	if item, err := table.Get("p2"); err != nil || item.Name() != "MacBook Air M1" {
		t.Errorf("Get(p2) = %v, %v", item, err)
	}
}

func TestLoadDataset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "items.yaml")
	data := `items:
  - id: x1
    name: Test Laptop
    category: laptop
    price: 1000
    tags: [cheap, test]
  - id: x2
    name: Test Mouse
    category: accessory
    price: 50
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	items, err := LoadDataset(path)
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	if items[0].ID() != "x1" || items[0].Price() != 1000 {
		t.Errorf("items[0] = %v", items[0])
	}
	if got := items[0].Tags(); len(got) != 2 || got[0] != "cheap" {
		t.Errorf("tags = %v", got)
	}
}

func TestLoadDatasetErrors(t *testing.T) {
	if _, err := LoadDataset("/does/not/exist.yaml"); err == nil {
		t.Error("missing file should error")
	}

	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(empty, []byte("items: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDataset(empty); err == nil {
		t.Error("empty dataset should error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("items: {nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDataset(bad); err == nil {
		t.Error("malformed YAML should error")
	}
}

func TestLoadTable(t *testing.T) {
	table, err := LoadTable("")
	if err != nil {
		t.Fatalf("LoadTable built-in: %v", err)
	}
	if table.Len() != 21 {
		t.Errorf("Len = %d, want 21", table.Len())
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "items.yaml")
	data := "items:\n  - id: y1\n    name: Solo\n    category: misc\n    price: 1\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	table, err = LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable file: %v", err)
	}
	if table.Len() != 1 {
		t.Errorf("Len = %d, want 1", table.Len())
	}
}
