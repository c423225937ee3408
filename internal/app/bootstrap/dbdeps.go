// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/z-bubblegum/nigelleadmagnet/internal/app/system/webhook"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database and backend dependencies for this WAFFLE app.
//
// This struct is created in ConnectDB and passed to subsequent lifecycle
// hooks: EnsureSchema, Startup, BuildHandler, and Shutdown. The Shutdown
// hook is responsible for closing these connections gracefully when the
// application terminates.
type DBDeps struct {
	// MongoDB client and database
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// Relay forwards stored opt-ins to the configured webhook. It is
	// always non-nil; an unconfigured relay reports Configured() false.
	Relay *webhook.Relay
}
