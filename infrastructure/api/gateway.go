package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/cors"

	"github.com/clerkd/clerkd/application/service"
	v1 "github.com/clerkd/clerkd/infrastructure/api/v1"
)

// NewGatewayServer builds the query gateway. The gateway is called from
// browser frontends, so it answers cross-origin requests.
func NewGatewayServer(addr string, assist *service.AssistService, logger *slog.Logger) *Server {
	server := NewServer(addr, logger)

	router := server.Router()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	router.Get("/healthz", Healthz)
	router.Mount("/", v1.NewQueryRouter(assist, logger).Routes())

	return server
}
