package catalog

import (
	"fmt"

	"github.com/clerkd/clerkd/internal/domain"
)

// Table is the immutable in-memory item collection. It is constructed once
// at startup, injected into the request-handling layer, and safely shared
// by any number of concurrent readers.
type Table struct {
	items []Item
	byID  map[string]Item
}

// NewTable builds a Table from items, preserving insertion order.
// It rejects duplicate ids and structurally invalid items.
func NewTable(items []Item) (*Table, error) {
	byID := make(map[string]Item, len(items))
	ordered := make([]Item, 0, len(items))

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if _, exists := byID[item.ID()]; exists {
			return nil, fmt.Errorf("duplicate item id %q", item.ID())
		}
		byID[item.ID()] = item
		ordered = append(ordered, item)
	}

	return &Table{items: ordered, byID: byID}, nil
}

// List returns the items satisfying the filter, in insertion order,
// truncated to the filter's limit.
func (t *Table) List(f Filter) []Item {
	limit := f.Limit()
	// The limit comes straight from the request; never pre-allocate more
	// than the collection can yield.
	out := make([]Item, 0, min(limit, len(t.items)))

	for _, item := range t.items {
		if len(out) == limit {
			break
		}
		if f.Matches(item) {
			out = append(out, item)
		}
	}

	return out
}

// Get returns the item with the given id, or domain.ErrNotFound.
func (t *Table) Get(id string) (Item, error) {
	item, ok := t.byID[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: item %s", domain.ErrNotFound, id)
	}
	return item, nil
}

// Len returns the number of items in the table.
func (t *Table) Len() int {
	return len(t.items)
}
