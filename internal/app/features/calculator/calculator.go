// internal/app/features/calculator/calculator.go
package calculator

import (
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	profilestore "github.com/z-bubblegum/nigelleadmagnet/internal/app/store/profiles"
	"github.com/z-bubblegum/nigelleadmagnet/internal/app/system/auth"
	"github.com/z-bubblegum/nigelleadmagnet/internal/app/system/htmlsanitize"
	"github.com/z-bubblegum/nigelleadmagnet/internal/app/system/queryval"
	"github.com/z-bubblegum/nigelleadmagnet/internal/app/system/viewdata"
	"github.com/z-bubblegum/nigelleadmagnet/internal/domain/funnel"
	"github.com/z-bubblegum/nigelleadmagnet/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler provides the calculator page handlers.
type Handler struct {
	db             *mongo.Database
	sessions       *auth.SessionManager
	logger         *zap.Logger
	defaultProfile string
}

// NewHandler creates a new calculator Handler. defaultProfile is the slug
// used when a visitor has no profile in the URL or their session.
func NewHandler(db *mongo.Database, sessions *auth.SessionManager, defaultProfile string, logger *zap.Logger) *Handler {
	if defaultProfile == "" {
		defaultProfile = funnel.ProfileStarter
	}
	return &Handler{
		db:             db,
		sessions:       sessions,
		logger:         logger,
		defaultProfile: defaultProfile,
	}
}

// ProfileOptionVM is one entry in the profile switcher.
type ProfileOptionVM struct {
	Slug     string
	Name     string
	Selected bool
}

// PageVM is the view model for the calculator page.
type PageVM struct {
	viewdata.BaseVM

	ProfileSlug string
	Headline    string
	Blurb       template.HTML
	Profiles    []ProfileOptionVM

	Inputs     funnel.Inputs
	Projection funnel.Projection
	Band       funnel.Band

	// ShareQuery is the encoded input query string for the shareable URL.
	ShareQuery string
}

// Routes returns a chi.Router with calculator routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	return r
}

// Index renders the calculator page. Inputs come from the query string
// with profile defaults filling any gaps, so a shared URL reproduces the
// sender's numbers and a bare visit shows the preset.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	slug := h.resolveProfileSlug(r)

	profile := h.loadProfile(r, slug)
	slug = profile.Slug

	// Remember the choice when it came from the URL, so a return visit
	// lands on the same preset.
	if r.URL.Query().Get("profile") != "" {
		if err := h.sessions.RememberProfile(w, r, slug); err != nil {
			h.logger.Debug("failed to save profile to session", zap.Error(err))
		}
	}

	def := profile.Defaults
	in := queryval.Inputs(r.URL.Query(), def).Sanitize(def)

	vm := PageVM{
		BaseVM:      viewdata.New(r),
		ProfileSlug: slug,
		Headline:    profile.Headline,
		Blurb:       htmlsanitize.PrepareForDisplay(profile.Blurb),
		Inputs:      in,
		Projection:  funnel.Project(in),
		Band:        profile.ViewToBookingBand,
		ShareQuery:  queryval.Encode(in).Encode(),
	}
	vm.Title = "Calculator"
	vm.Profiles = h.profileOptions(r, slug)

	templates.Render(w, r, "calculator/index", vm)
}

// resolveProfileSlug picks the profile: explicit ?profile= wins, then the
// session, then the configured default.
func (h *Handler) resolveProfileSlug(r *http.Request) string {
	if slug := r.URL.Query().Get("profile"); slug != "" {
		return slug
	}
	if slug := h.sessions.RememberedProfile(r); slug != "" {
		return slug
	}
	return h.defaultProfile
}

// loadProfile loads the profile from the database, falling back to the
// built-in presets when the slug is unknown or the database is unavailable.
// The page must render either way.
func (h *Handler) loadProfile(r *http.Request, slug string) *models.Profile {
	if h.db != nil {
		store := profilestore.New(h.db)
		p, err := store.Get(r.Context(), slug)
		if err == nil {
			return p
		}
		if err != mongo.ErrNoDocuments {
			h.logger.Warn("failed to load profile",
				zap.String("slug", slug),
				zap.Error(err))
		}
	}

	if slug != funnel.ProfileStarter && slug != funnel.ProfileAgency {
		slug = h.defaultProfile
	}
	if slug != funnel.ProfileStarter && slug != funnel.ProfileAgency {
		slug = funnel.ProfileStarter
	}
	return &models.Profile{
		Slug:              slug,
		Name:              slug,
		Defaults:          funnel.DefaultsFor(slug),
		ViewToBookingBand: funnel.ViewToBookingBands[slug],
	}
}

// profileOptions builds the profile switcher entries from the database,
// falling back to the built-in presets.
func (h *Handler) profileOptions(r *http.Request, selected string) []ProfileOptionVM {
	if h.db != nil {
		store := profilestore.New(h.db)
		if profiles, err := store.List(r.Context()); err == nil && len(profiles) > 0 {
			opts := make([]ProfileOptionVM, 0, len(profiles))
			for _, p := range profiles {
				opts = append(opts, ProfileOptionVM{
					Slug:     p.Slug,
					Name:     p.Name,
					Selected: p.Slug == selected,
				})
			}
			return opts
		}
	}

	return []ProfileOptionVM{
		{Slug: funnel.ProfileStarter, Name: "Solo Creator", Selected: selected == funnel.ProfileStarter},
		{Slug: funnel.ProfileAgency, Name: "Agency / High Ticket", Selected: selected == funnel.ProfileAgency},
	}
}
