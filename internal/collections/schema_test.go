package collections

import (
	"slices"
	"testing"
)

func TestTables(t *testing.T) {
	path := createFixtureDB(t, nil)

	db, err := OpenSnapshot(path)
	if err != nil {
		t.Fatalf("OpenSnapshot failed: %v", err)
	}
	defer db.Close()

	tables, err := Tables(db)
	if err != nil {
		t.Fatalf("Tables failed: %v", err)
	}

	for _, want := range []string{"collections", "items", "collections_items_relationship"} {
		if !slices.Contains(tables, want) {
			t.Errorf("Tables() = %v, missing %s", tables, want)
		}
	}
}

func TestColumns(t *testing.T) {
	path := createFixtureDB(t, nil)

	db, err := OpenSnapshot(path)
	if err != nil {
		t.Fatalf("OpenSnapshot failed: %v", err)
	}
	defer db.Close()

	columns, err := Columns(db, "items")
	if err != nil {
		t.Fatalf("Columns failed: %v", err)
	}

	want := []string{"id", "title", "source", "date_created", "type"}
	if !slices.Equal(columns, want) {
		t.Errorf("Columns() = %v, want %v", columns, want)
	}
}
