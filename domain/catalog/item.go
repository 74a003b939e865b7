// Package catalog holds the product catalog domain model.
package catalog

import (
	"fmt"
	"strings"
)

// Item is a single purchasable product. Items are immutable for the
// lifetime of the process.
type Item struct {
	id       string
	name     string
	category string
	price    int
	tags     []string
}

// NewItem creates an Item.
func NewItem(id, name, category string, price int, tags []string) Item {
	return Item{
		id:       id,
		name:     name,
		category: category,
		price:    price,
		tags:     tags,
	}
}

// ID returns the unique item identifier.
func (i Item) ID() string { return i.id }

// Name returns the display name.
func (i Item) Name() string { return i.name }

// Category returns the category label.
func (i Item) Category() string { return i.category }

// Price returns the price in the smallest currency unit.
func (i Item) Price() int { return i.price }

// Tags returns a copy of the free-form tags.
func (i Item) Tags() []string {
	tags := make([]string, len(i.tags))
	copy(tags, i.tags)
	return tags
}

// Validate checks the item's structural invariants.
func (i Item) Validate() error {
	if strings.TrimSpace(i.id) == "" {
		return fmt.Errorf("item has empty id")
	}
	if strings.TrimSpace(i.name) == "" {
		return fmt.Errorf("item %s has empty name", i.id)
	}
	if i.price < 0 {
		return fmt.Errorf("item %s has negative price %d", i.id, i.price)
	}
	return nil
}
