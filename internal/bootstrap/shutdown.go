package bootstrap

import (
	"context"

	"github.com/kabachok/lootcase/internal/logger"
)

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. HTTP server (stop accepting new requests)
// 2. Economy service (wait for in-flight event publishes)
// 3. Event publishers (flush pending events, then close the broker)
// 4. Redis and the database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, app *App) {
	logger.Info(LogMsgShuttingDownServer)

	if app.Server != nil {
		if err := app.Server.Stop(ctx); err != nil {
			logger.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if app.Economy != nil {
		shutdownService(ctx, ServiceNameEconomy, app.Economy)
	}

	if app.Events != nil {
		app.Events.Shutdown(ctx)
	}

	if app.Idempotency != nil {
		app.Idempotency.Close()
	}

	if app.Repos != nil {
		app.Repos.Close()
	}

	logger.Info(LogMsgServerStopped)
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		logger.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
