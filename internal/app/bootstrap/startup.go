// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/z-bubblegum/nigelleadmagnet/internal/app/resources"
	"go.uber.org/zap"
)

// Startup runs once after DB connections and schema/index setup are complete,
// but before the HTTP handler is built and requests are served.
//
// This is the place for one-time initialization that depends on having live
// database connections and fully loaded configuration. Returning a non-nil
// error aborts startup and prevents the server from starting.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	// Register the shared layout partials before the template engine
	// boots in BuildHandler. Feature templates register themselves via
	// init() when their packages are imported.
	resources.LoadSharedTemplates()

	logger.Info("startup complete",
		zap.String("default_profile", appCfg.DefaultProfile))
	return nil
}
