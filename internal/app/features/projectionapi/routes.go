// internal/app/features/projectionapi/routes.go
package projectionapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/z-bubblegum/nigelleadmagnet/internal/app/system/apicors"
)

// Routes returns a router with the projection endpoint.
//
// When mounted at /api/projection:
//   - GET /api/projection - compute a projection from query params
//
// No authentication: this is the public recompute endpoint for the page.
// CORS is permissive so the calculator can be embedded elsewhere.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(apicors.Middleware())
	r.Get("/", h.ProjectionHandler)

	return r
}
