package catalog

import "strings"

// DefaultLimit caps listing results when no explicit limit is supplied.
const DefaultLimit = 20

// Filter narrows a catalog listing. Zero value matches everything and
// truncates to DefaultLimit.
type Filter struct {
	query    string
	category string
	priceMin *int
	priceMax *int
	limit    int
}

// FilterOption configures a Filter.
type FilterOption func(*Filter)

// WithQuery matches items whose name contains q, case-insensitively.
func WithQuery(q string) FilterOption {
	return func(f *Filter) { f.query = q }
}

// WithCategory matches items whose category equals c exactly.
func WithCategory(c string) FilterOption {
	return func(f *Filter) { f.category = c }
}

// WithPriceMin keeps items priced at or above min.
func WithPriceMin(min int) FilterOption {
	return func(f *Filter) { f.priceMin = &min }
}

// WithPriceMax keeps items priced at or below max.
func WithPriceMax(max int) FilterOption {
	return func(f *Filter) { f.priceMax = &max }
}

// WithLimit truncates results to n. Values below one fall back to
// DefaultLimit.
func WithLimit(n int) FilterOption {
	return func(f *Filter) {
		if n > 0 {
			f.limit = n
		}
	}
}

// NewFilter creates a Filter from options.
func NewFilter(opts ...FilterOption) Filter {
	var f Filter
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// Limit returns the effective result cap.
func (f Filter) Limit() int {
	if f.limit > 0 {
		return f.limit
	}
	return DefaultLimit
}

// Matches reports whether the item satisfies every supplied predicate.
// Predicates compose conjunctively; unset predicates match everything.
func (f Filter) Matches(i Item) bool {
	if f.category != "" && i.Category() != f.category {
		return false
	}
	if f.query != "" && !strings.Contains(strings.ToLower(i.Name()), strings.ToLower(f.query)) {
		return false
	}
	if f.priceMin != nil && i.Price() < *f.priceMin {
		return false
	}
	if f.priceMax != nil && i.Price() > *f.priceMax {
		return false
	}
	return true
}
