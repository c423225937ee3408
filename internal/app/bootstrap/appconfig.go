// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//   - Database connection timeouts
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Maximum connections in pool (default: 100)
	MongoMinPoolSize uint64 // Minimum connections to keep warm (default: 10)

	// Session management configuration. The session only remembers the
	// visitor's last audience profile; there are no user accounts.
	SessionKey    string        // Secret key for signing session cookies (must be strong in production)
	SessionName   string        // Cookie name for sessions (default: leadmagnet-session)
	SessionDomain string        // Cookie domain (blank means current host)
	SessionMaxAge time.Duration // Maximum session cookie lifetime (default: 720h)

	// CSRF protection configuration
	CSRFKey string // Secret key for CSRF token signing (32 bytes, must be strong in production)

	// API key authentication for the operator subscriber export.
	// Leave empty to disable the export endpoint entirely.
	APIKey string

	// Opt-in relay configuration. Every stored opt-in is forwarded once
	// to this webhook; without a URL the subscribe endpoint returns 500.
	SubscribeWebhookURL string        // Destination for opt-in deliveries
	WebhookTimeout      time.Duration // Per-delivery HTTP timeout (default: 10s)

	// DefaultProfile is the audience profile slug shown to first-time
	// visitors (default: starter).
	DefaultProfile string
}
