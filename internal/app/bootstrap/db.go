// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/z-bubblegum/nigelleadmagnet/internal/app/system/indexes"
	"github.com/z-bubblegum/nigelleadmagnet/internal/app/system/seeding"
	"github.com/z-bubblegum/nigelleadmagnet/internal/app/system/webhook"
	"go.uber.org/zap"
)

// ConnectDB connects to MongoDB and builds the opt-in relay.
//
// WAFFLE calls this after configuration is loaded but before EnsureSchema
// and Startup. Clients created here are stored in DBDeps for use in
// handlers and closed again in Shutdown.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	// Configure MongoDB connection pool
	poolCfg := wafflemongo.DefaultPoolConfig()
	if appCfg.MongoMaxPoolSize > 0 {
		poolCfg.MaxPoolSize = appCfg.MongoMaxPoolSize
	}
	if appCfg.MongoMinPoolSize > 0 {
		poolCfg.MinPoolSize = appCfg.MongoMinPoolSize
	}

	client, err := wafflemongo.ConnectWithPool(ctx, appCfg.MongoURI, appCfg.MongoDatabase, poolCfg)
	if err != nil {
		return DBDeps{}, err
	}

	db := client.Database(appCfg.MongoDatabase)

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase),
		zap.Uint64("max_pool_size", poolCfg.MaxPoolSize),
		zap.Uint64("min_pool_size", poolCfg.MinPoolSize),
	)

	// Build the opt-in relay. An empty URL is allowed here; the subscribe
	// endpoint reports the misconfiguration at request time and /health
	// shows it as degraded.
	relay := webhook.New(webhook.Config{
		URL:     appCfg.SubscribeWebhookURL,
		Timeout: appCfg.WebhookTimeout,
	}, logger)
	if relay.Configured() {
		logger.Info("initialized opt-in relay",
			zap.String("webhook_url", appCfg.SubscribeWebhookURL),
			zap.Duration("timeout", appCfg.WebhookTimeout))
	} else {
		logger.Warn("subscribe webhook URL is not configured; opt-ins will fail with 500")
	}

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: db,
		Relay:         relay,
	}, nil
}

// EnsureSchema sets up indexes and seed data.
//
// This runs after ConnectDB succeeds but before Startup and before the
// HTTP handler is built. The context has a timeout based on
// coreCfg.IndexBootTimeout, so long-running work should respect context
// cancellation.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.MongoDatabase

	// Ensure database indexes for query performance and the subscriber
	// email uniqueness guarantee.
	logger.Info("ensuring database indexes")
	if err := indexes.EnsureAll(ctx, db); err != nil {
		logger.Error("failed to ensure indexes", zap.Error(err))
		return err
	}

	// Seed the built-in audience profiles.
	logger.Info("seeding default data")
	if err := seeding.SeedAll(ctx, db, logger); err != nil {
		logger.Error("failed to seed default data", zap.Error(err))
		return err
	}

	logger.Info("database schema ensured successfully")
	return nil
}
