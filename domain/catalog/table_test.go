package catalog

import (
	"errors"
	"testing"

	"github.com/clerkd/clerkd/internal/domain"
)

func testItems() []Item {
	return []Item{
		NewItem("p1", "Lenovo Ideapad 3", "laptop", 52000, []string{"budget"}),
		NewItem("p2", "MacBook Air M1", "laptop", 84990, []string{"portable"}),
		NewItem("a1", "Logitech MX Master 3S", "accessory", 8990, []string{"mouse"}),
		NewItem("au1", "Sony WH-1000XM5", "audio", 29990, []string{"headphones"}),
	}
}

func newTestTable(t *testing.T) *Table {
	t.Helper()
	table, err := NewTable(testItems())
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	return table
}

func TestNewTableRejectsDuplicateIDs(t *testing.T) {
	items := []Item{
		NewItem("p1", "A", "laptop", 1, nil),
		NewItem("p1", "B", "laptop", 2, nil),
	}
	if _, err := NewTable(items); err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestNewTableRejectsInvalidItems(t *testing.T) {
	tests := []struct {
		name string
		item Item
	}{
		{"empty id", NewItem("", "A", "laptop", 1, nil)},
		{"empty name", NewItem("p1", " ", "laptop", 1, nil)},
		{"negative price", NewItem("p1", "A", "laptop", -1, nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTable([]Item{tt.item}); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestGetReturnsExactItem(t *testing.T) {
	table := newTestTable(t)

	for _, want := range testItems() {
		got, err := table.Get(want.ID())
		if err != nil {
			t.Fatalf("Get(%s): %v", want.ID(), err)
		}
		if got.Name() != want.Name() || got.Price() != want.Price() {
			t.Errorf("Get(%s) = %v, want %v", want.ID(), got, want)
		}
	}
}

func TestGetUnknownIDIsNotFound(t *testing.T) {
	table := newTestTable(t)

	_, err := table.Get("nope")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListNoFilterPreservesInsertionOrder(t *testing.T) {
	table := newTestTable(t)

	got := table.List(NewFilter())
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	for i, want := range []string{"p1", "p2", "a1", "au1"} {
		if got[i].ID() != want {
			t.Errorf("got[%d].ID() = %s, want %s", i, got[i].ID(), want)
		}
	}
}

func TestListCategoryExactMatch(t *testing.T) {
	table := newTestTable(t)

	got := table.List(NewFilter(WithCategory("laptop")))
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for _, item := range got {
		if item.Category() != "laptop" {
			t.Errorf("category = %s, want laptop", item.Category())
		}
	}

	// Case-sensitive: "Laptop" matches nothing.
	if got := table.List(NewFilter(WithCategory("Laptop"))); len(got) != 0 {
		t.Errorf("Laptop matched %d items, want 0", len(got))
	}
}

func TestListQueryCaseInsensitive(t *testing.T) {
	table := newTestTable(t)

	got := table.List(NewFilter(WithQuery("macbook")))
	if len(got) != 1 || got[0].ID() != "p2" {
		t.Fatalf("q=macbook got %v", got)
	}
}

func TestListPriceBoundsInclusive(t *testing.T) {
	table := newTestTable(t)

	got := table.List(NewFilter(WithPriceMin(8990), WithPriceMax(52000)))
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for _, item := range got {
		if item.Price() < 8990 || item.Price() > 52000 {
			t.Errorf("price %d out of [8990, 52000]", item.Price())
		}
	}
}

func TestListFiltersCompose(t *testing.T) {
	table := newTestTable(t)

	got := table.List(NewFilter(
		WithCategory("laptop"),
		WithQuery("lenovo"),
		WithPriceMax(60000),
	))
	if len(got) != 1 || got[0].ID() != "p1" {
		t.Fatalf("composed filter got %v", got)
	}
}

func TestListLimitTruncates(t *testing.T) {
	table := newTestTable(t)

	got := table.List(NewFilter(WithLimit(2)))
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID() != "p1" || got[1].ID() != "p2" {
		t.Errorf("limit should keep insertion order, got %v, %v", got[0].ID(), got[1].ID())
	}
}

func TestListZeroAndNegativeLimitFallBack(t *testing.T) {
	table := newTestTable(t)

	if got := table.List(NewFilter(WithLimit(0))); len(got) != 4 {
		t.Errorf("limit 0: len = %d, want 4 (default cap)", len(got))
	}
	if got := table.List(NewFilter(WithLimit(-3))); len(got) != 4 {
		t.Errorf("limit -3: len = %d, want 4 (default cap)", len(got))
	}
}

func TestListHugeLimitDoesNotOverAllocate(t *testing.T) {
	table := newTestTable(t)

	// A limit far beyond the collection size must not reserve memory for
	// it; the result is simply everything.
	got := table.List(NewFilter(WithLimit(1 << 40)))
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	if cap(got) > 4 {
		t.Errorf("cap = %d, want at most 4", cap(got))
	}
}

func TestListEmptyResultIsNotError(t *testing.T) {
	table := newTestTable(t)

	got := table.List(NewFilter(WithQuery("no such thing")))
	if got == nil || len(got) != 0 {
		t.Fatalf("got %v, want empty non-nil slice", got)
	}
}

func TestItemTagsAreCopied(t *testing.T) {
	item := NewItem("p1", "A", "laptop", 1, []string{"x"})
	tags := item.Tags()
	tags[0] = "mutated"
	if item.Tags()[0] != "x" {
		t.Error("Tags() must return a defensive copy")
	}
}
