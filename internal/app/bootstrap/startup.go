// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/hoffmansreptiles/reptilecms/internal/app/resources"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/tasks"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Startup runs once after DB connections and schema/index setup are complete,
// but before the HTTP handler is built and requests are served.
//
// This is the place for one-time initialization that depends on having live
// database connections and fully loaded configuration. Unlike ConnectDB and
// EnsureSchema which focus on infrastructure, Startup is for application-level
// initialization.
//
// Returning a non-nil error will abort startup and prevent the server from
// starting. Returning nil signals that initialization succeeded.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	// Note: Collections, validators, indexes, and singleton page seeding
	// all happen in EnsureSchema before Startup runs.

	startTaskRunner(deps.MongoDatabase, appCfg, logger)

	return nil
}

// taskRunner is the global task runner instance, used for graceful shutdown.
var taskRunner *tasks.Runner

// startTaskRunner initializes and starts the background task runner.
func startTaskRunner(db *mongo.Database, appCfg AppConfig, logger *zap.Logger) {
	taskRunner = tasks.New(logger)

	// Clear spent password reset tokens so stale links stop resolving.
	taskRunner.Register(tasks.ResetTokenCleanupJob(db, logger))

	// Remove accounts that never verified, a week past link expiry.
	taskRunner.Register(tasks.UnverifiedAccountCleanupJob(db, logger, 7*24*time.Hour))

	// Prune old contact messages when a retention window is configured.
	if appCfg.MessageRetention > 0 {
		taskRunner.Register(tasks.MessageRetentionJob(db, logger, appCfg.MessageRetention))
	}

	taskRunner.Start()
}
