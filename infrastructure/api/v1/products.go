// Package v1 contains the HTTP route handlers.
package v1

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/clerkd/clerkd/domain/catalog"
	"github.com/clerkd/clerkd/infrastructure/api/middleware"
	"github.com/clerkd/clerkd/internal/domain"
)

// ProductsRouter serves the catalog's read-only product endpoints.
type ProductsRouter struct {
	table        *catalog.Table
	defaultLimit int
	logger       *slog.Logger
}

// NewProductsRouter creates a ProductsRouter over the injected item table.
func NewProductsRouter(table *catalog.Table, defaultLimit int, logger *slog.Logger) *ProductsRouter {
	if defaultLimit <= 0 {
		defaultLimit = catalog.DefaultLimit
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductsRouter{
		table:        table,
		defaultLimit: defaultLimit,
		logger:       logger,
	}
}

// Routes returns the chi router for product endpoints.
func (rt *ProductsRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", rt.List)
	router.Get("/{id}", rt.Get)

	return router
}

// itemResponse is the JSON wire form of an item.
type itemResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Price    int      `json:"price"`
	Tags     []string `json:"tags"`
}

func toItemResponse(i catalog.Item) itemResponse {
	return itemResponse{
		ID:       i.ID(),
		Name:     i.Name(),
		Category: i.Category(),
		Price:    i.Price(),
		Tags:     i.Tags(),
	}
}

// List handles GET /products.
func (rt *ProductsRouter) List(w http.ResponseWriter, r *http.Request) {
	filter, err := rt.parseFilter(r)
	if err != nil {
		middleware.WriteError(w, r, err, rt.logger)
		return
	}

	items := rt.table.List(filter)
	out := make([]itemResponse, len(items))
	for i, item := range items {
		out[i] = toItemResponse(item)
	}

	middleware.WriteJSON(w, http.StatusOK, out)
}

// Get handles GET /products/{id}.
func (rt *ProductsRouter) Get(w http.ResponseWriter, r *http.Request) {
	item, err := rt.table.Get(chi.URLParam(r, "id"))
	if err != nil {
		middleware.WriteError(w, r, err, rt.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, toItemResponse(item))
}

// parseFilter builds a catalog filter from query parameters. Price bounds
// must parse as integers; a limit that does not parse to a positive number
// falls back to the default.
func (rt *ProductsRouter) parseFilter(r *http.Request) (catalog.Filter, error) {
	params := r.URL.Query()
	opts := []catalog.FilterOption{}

	if q := params.Get("q"); q != "" {
		opts = append(opts, catalog.WithQuery(q))
	}
	if category := params.Get("category"); category != "" {
		opts = append(opts, catalog.WithCategory(category))
	}

	if raw := params.Get("priceMin"); raw != "" {
		min, err := strconv.Atoi(raw)
		if err != nil {
			return catalog.Filter{}, fmt.Errorf("%w: priceMin %q is not a number", domain.ErrValidation, raw)
		}
		opts = append(opts, catalog.WithPriceMin(min))
	}
	if raw := params.Get("priceMax"); raw != "" {
		max, err := strconv.Atoi(raw)
		if err != nil {
			return catalog.Filter{}, fmt.Errorf("%w: priceMax %q is not a number", domain.ErrValidation, raw)
		}
		opts = append(opts, catalog.WithPriceMax(max))
	}

	limit := rt.defaultLimit
	if raw := params.Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	opts = append(opts, catalog.WithLimit(limit))

	return catalog.NewFilter(opts...), nil
}
