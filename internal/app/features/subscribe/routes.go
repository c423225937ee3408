// internal/app/features/subscribe/routes.go
package subscribe

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/z-bubblegum/nigelleadmagnet/internal/app/system/apicors"
	"github.com/z-bubblegum/nigelleadmagnet/internal/app/system/auth"
	"go.uber.org/zap"
)

// Routes returns a router with the public opt-in endpoint.
//
// When mounted at /api/subscribe:
//   - POST /api/subscribe - record an opt-in
//
// No authentication: the form on the calculator page posts here. CORS is
// permissive to match the projection endpoint.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(apicors.Middleware())
	r.Post("/", h.SubscribeHandler)

	return r
}

// ExportRoutes returns a router with the operator export endpoint.
//
// When mounted at /api/subscribers:
//   - GET /api/subscribers - list stored opt-ins
//
// Authentication is via API key (Bearer token in Authorization header).
func ExportRoutes(h *Handler, apiKey string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(apicors.Middleware())
	r.Use(auth.APIKeyAuth(apiKey, logger))
	r.Get("/", h.ExportHandler)

	return r
}
