// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	calculatorfeature "github.com/z-bubblegum/nigelleadmagnet/internal/app/features/calculator"
	healthfeature "github.com/z-bubblegum/nigelleadmagnet/internal/app/features/health"
	projectionapifeature "github.com/z-bubblegum/nigelleadmagnet/internal/app/features/projectionapi"
	subscribefeature "github.com/z-bubblegum/nigelleadmagnet/internal/app/features/subscribe"
	appresources "github.com/z-bubblegum/nigelleadmagnet/internal/app/resources"
	"github.com/z-bubblegum/nigelleadmagnet/internal/app/system/auth"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed.
//
// Route map:
//   - GET  /                  calculator page (CSRF-protected form)
//   - GET  /api/projection    public projection JSON (no CSRF, permissive CORS)
//   - POST /api/subscribe     public opt-in JSON (no CSRF, permissive CORS)
//   - GET  /api/subscribers   operator export (Bearer API key)
//   - /health, /ready, ...    probes
//   - /assets/*               embedded static assets
//
// The /api/* routes are exempt from CSRF: they carry no session authority
// (the export uses an API key, the rest are public), so CSRF adds nothing.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	r := chi.NewRouter()

	// Request timeout middleware: prevents requests from hanging indefinitely.
	r.Use(chimw.Timeout(30 * time.Second))

	// CORS middleware: must be early in the chain to handle preflight requests.
	r.Use(middleware.CORSFromConfig(coreCfg))

	// Security headers middleware: adds X-Frame-Options, X-Content-Type-Options, etc.
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	// CSRF protection middleware with path-based exemption for API routes.
	// Cookie name is "leadmagnet_csrf" to avoid collisions with other
	// services on the same domain.
	csrfOpts := []csrf.Option{
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.CookieName("leadmagnet_csrf"),
		csrf.FieldName("csrf_token"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logger.Warn("CSRF validation failed",
				zap.String("path", req.URL.Path),
				zap.String("method", req.Method),
				zap.String("reason", csrf.FailureReason(req).Error()),
			)
			http.Error(w, "CSRF token invalid or missing", http.StatusForbidden)
		})),
	}
	// In dev mode, trust localhost origins for CSRF validation.
	if !secure {
		csrfOpts = append(csrfOpts, csrf.TrustedOrigins([]string{
			"localhost:8080",
			"localhost:3000",
			"127.0.0.1:8080",
			"127.0.0.1:3000",
		}))
	}
	if appCfg.SessionDomain != "" {
		csrfOpts = append(csrfOpts, csrf.Domain(appCfg.SessionDomain))
	}
	csrfProtect := csrf.Protect([]byte(appCfg.CSRFKey), csrfOpts...)

	// Wrap CSRF middleware to skip the JSON API routes.
	csrfMiddleware := func(next http.Handler) http.Handler {
		csrfHandler := csrfProtect(next)
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if strings.HasPrefix(req.URL.Path, "/api/") {
				next.ServeHTTP(w, req)
				return
			}
			csrfHandler.ServeHTTP(w, req)
		})
	}
	r.Use(csrfMiddleware)

	// Health check endpoints for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, deps.Relay, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	healthfeature.MountRootEndpoints(r, healthHandler)

	// /assets/* serves embedded assets (bundled into the binary)
	r.Handle("/assets/*", appresources.AssetsHandler("/assets"))

	// Projection API: the page's live recompute endpoint.
	projectionHandler := projectionapifeature.NewHandler(deps.MongoDatabase, appCfg.DefaultProfile, logger)
	r.Mount("/api/projection", projectionapifeature.Routes(projectionHandler))

	// Opt-in endpoints.
	subscribeHandler := subscribefeature.NewHandler(deps.MongoDatabase, deps.Relay, logger)
	r.Mount("/api/subscribe", subscribefeature.Routes(subscribeHandler))
	r.Mount("/api/subscribers", subscribefeature.ExportRoutes(subscribeHandler, appCfg.APIKey, logger))

	// Calculator page.
	calculatorHandler := calculatorfeature.NewHandler(deps.MongoDatabase, sessionMgr, appCfg.DefaultProfile, logger)
	r.Mount("/", calculatorfeature.Routes(calculatorHandler))

	return r, nil
}
