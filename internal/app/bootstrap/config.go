// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/z-bubblegum/nigelleadmagnet/internal/app/system/inputval"
	"github.com/z-bubblegum/nigelleadmagnet/internal/domain/funnel"
	"go.uber.org/zap"
)

// EnvVarPrefix is the prefix for environment variables.
const EnvVarPrefix = "NIGELLEADMAGNET"

// appConfigKeys defines the configuration keys for this application.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, subscribe_webhook_url, etc.
//   - Environment variables: NIGELLEADMAGNET_MONGO_URI, NIGELLEADMAGNET_SUBSCRIBE_WEBHOOK_URL, etc.
//   - Command-line flags: --mongo_uri, --subscribe_webhook_url, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "nigelleadmagnet", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "leadmagnet-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_max_age", Default: "720h", Desc: "Session cookie max age (e.g., 24h, 720h, 30m)"},

	{Name: "csrf_key", Default: "dev-only-csrf-key-please-change-0123456789", Desc: "CSRF token signing key (32+ chars in production)"},

	// API key for the operator subscriber export (Bearer token auth)
	{Name: "api_key", Default: "", Desc: "API key for the subscriber export (leave empty to disable)"},

	// Opt-in relay configuration
	{Name: "subscribe_webhook_url", Default: "", Desc: "Webhook URL that receives opt-in deliveries"},
	{Name: "webhook_timeout", Default: "10s", Desc: "Per-delivery webhook HTTP timeout"},

	// Calculator configuration
	{Name: "default_profile", Default: funnel.ProfileStarter, Desc: "Audience profile slug for first-time visitors"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, NIGELLEADMAGNET_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, EnvVarPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
		SessionMaxAge: appValues.Duration("session_max_age", 720*time.Hour),

		CSRFKey: appValues.String("csrf_key"),
		APIKey:  appValues.String("api_key"),

		SubscribeWebhookURL: appValues.String("subscribe_webhook_url"),
		WebhookTimeout:      appValues.Duration("webhook_timeout", 10*time.Second),

		DefaultProfile: appValues.String("default_profile"),
	}

	return coreCfg, appCfg, nil
}

// webhookConfigInput carries the relay settings that need rule-based
// validation. Only checked when a webhook URL is configured.
type webhookConfigInput struct {
	URL string `json:"subscribe_webhook_url" validate:"httpurl" label:"Subscribe webhook URL"`
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The webhook URL may be empty (the subscribe endpoint then answers 500),
// but if set it must be a well-formed http(s) URL so relay failures mean
// the webhook itself, not a typo in configuration.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.SubscribeWebhookURL != "" {
		in := webhookConfigInput{URL: appCfg.SubscribeWebhookURL}
		if res := inputval.Validate(in); res.HasErrors() {
			logger.Error("invalid subscribe webhook URL",
				zap.String("subscribe_webhook_url", appCfg.SubscribeWebhookURL))
			return fmt.Errorf("invalid subscribe webhook URL %q: %s",
				appCfg.SubscribeWebhookURL, res.First())
		}
	}

	return nil
}
