// Package bootstrap assembles the service from configuration: logging, store,
// catalog seed, events, idempotency and the HTTP server.
package bootstrap

import (
	"context"

	"github.com/kabachok/lootcase/internal/config"
	"github.com/kabachok/lootcase/internal/economy"
	"github.com/kabachok/lootcase/internal/handler"
	"github.com/kabachok/lootcase/internal/lootbox"
	"github.com/kabachok/lootcase/internal/server"
)

// App is a fully wired service ready to Start
type App struct {
	Server      *server.Server
	Economy     economy.Service
	Repos       *Repositories
	Events      *EventSystem
	Idempotency *Idempotency
}

// Build wires every component. On error, anything already opened is released.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	handler.InitValidator()

	repos, err := InitializeRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := SyncCatalog(ctx, cfg.CatalogPath, repos.Writer, repos.Catalog); err != nil {
		repos.Close()
		return nil, err
	}

	events, err := InitializeEventSystem(cfg)
	if err != nil {
		repos.Close()
		return nil, err
	}
	RegisterEventHandlers(events)

	idem := InitializeIdempotency(ctx, cfg)

	svc := economy.NewService(repos.Economy, repos.Catalog, lootbox.NewDrawer(nil), events.Publisher)

	checks := append(repos.ReadinessChecks(), idem.ReadinessChecks()...)
	srv := server.NewServer(server.Options{
		Port:            cfg.Port,
		APIKey:          cfg.APIKey,
		TrustedProxies:  cfg.TrustedProxies,
		Economy:         svc,
		Idempotency:     idem.Store,
		IdempotencyTTL:  cfg.IdempotencyTTL,
		ReadinessChecks: checks,
	})

	return &App{
		Server:      srv,
		Economy:     svc,
		Repos:       repos,
		Events:      events,
		Idempotency: idem,
	}, nil
}
