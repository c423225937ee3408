// Package projectionapi provides the JSON projection endpoint backing the
// calculator page's live recompute.
//
// Endpoint:
//   - GET /api/projection - compute a funnel projection from query params
//
// The endpoint is public and side-effect free. Missing or malformed query
// parameters fall back to the active profile's defaults, so it never
// returns a client error for bad numbers.
package projectionapi

import (
	"net/http"

	profilestore "github.com/z-bubblegum/nigelleadmagnet/internal/app/store/profiles"
	"github.com/z-bubblegum/nigelleadmagnet/internal/app/system/jsonutil"
	"github.com/z-bubblegum/nigelleadmagnet/internal/app/system/queryval"
	"github.com/z-bubblegum/nigelleadmagnet/internal/domain/funnel"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler handles projection API requests.
type Handler struct {
	db             *mongo.Database
	logger         *zap.Logger
	defaultProfile string
}

// NewHandler creates a new projectionapi handler.
func NewHandler(db *mongo.Database, defaultProfile string, logger *zap.Logger) *Handler {
	if defaultProfile == "" {
		defaultProfile = funnel.ProfileStarter
	}
	return &Handler{
		db:             db,
		logger:         logger,
		defaultProfile: defaultProfile,
	}
}

// Response is the projection API response body.
type Response struct {
	Profile string        `json:"profile"`
	Inputs  funnel.Inputs `json:"inputs"`

	// Projection fields are inlined at the top level.
	funnel.Projection
}

// ProjectionHandler handles GET /api/projection.
//
// Query parameters are the snake_case input names plus an optional
// "profile". Unparseable values fall back to the profile defaults so the
// response is always a valid projection.
func (h *Handler) ProjectionHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	slug := q.Get("profile")
	if slug == "" {
		slug = h.defaultProfile
	}

	def := h.defaultsFor(r, slug)
	in := queryval.Inputs(q, def).Sanitize(def)

	jsonutil.OK(w, Response{
		Profile:    slug,
		Inputs:     in,
		Projection: funnel.Project(in),
	})
}

// defaultsFor resolves the default inputs for a profile, preferring the
// database so operator edits take effect, with the built-in presets as
// fallback.
func (h *Handler) defaultsFor(r *http.Request, slug string) funnel.Inputs {
	if h.db != nil {
		store := profilestore.New(h.db)
		p, err := store.Get(r.Context(), slug)
		if err == nil {
			return p.Defaults
		}
		if err != mongo.ErrNoDocuments {
			h.logger.Warn("failed to load profile defaults",
				zap.String("slug", slug),
				zap.Error(err))
		}
	}
	return funnel.DefaultsFor(slug)
}
