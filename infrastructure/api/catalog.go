package api

import (
	"log/slog"
	"net/http"

	"github.com/clerkd/clerkd/domain/catalog"
	"github.com/clerkd/clerkd/infrastructure/api/middleware"
	v1 "github.com/clerkd/clerkd/infrastructure/api/v1"
)

// NewCatalogServer builds the catalog service: product listing and lookup
// over an immutable in-memory table.
func NewCatalogServer(addr string, table *catalog.Table, defaultLimit int, logger *slog.Logger) *Server {
	server := NewServer(addr, logger)

	router := server.Router()
	router.Get("/healthz", Healthz)
	router.Mount("/products", v1.NewProductsRouter(table, defaultLimit, logger).Routes())

	return server
}

// Healthz reports liveness.
func Healthz(w http.ResponseWriter, _ *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
