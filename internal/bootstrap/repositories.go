package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kabachok/lootcase/internal/catalog"
	"github.com/kabachok/lootcase/internal/config"
	"github.com/kabachok/lootcase/internal/database"
	"github.com/kabachok/lootcase/internal/database/memory"
	"github.com/kabachok/lootcase/internal/database/postgres"
	"github.com/kabachok/lootcase/internal/handler"
	"github.com/kabachok/lootcase/internal/logger"
	"github.com/kabachok/lootcase/internal/repository"
)

// Repositories holds the store implementations selected by STORE_DRIVER.
// Catalog is the cached read path; Writer is used only by the seed sync.
type Repositories struct {
	Economy repository.Economy
	Catalog *catalog.CachedCatalog
	Writer  repository.CatalogWriter

	// Pool is nil for the in-memory store
	Pool *pgxpool.Pool
}

// InitializeRepositories opens the configured store. For PostgreSQL it
// connects, applies pending migrations and builds the repositories on the pool.
func InitializeRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	if !cfg.UsesPostgres() {
		logger.Warn(LogMsgUsingMemory)
		store := memory.NewStore()
		return &Repositories{
			Economy: store,
			Catalog: catalog.NewCachedCatalog(store, cfg.CatalogCacheSize, cfg.CatalogCacheTTL),
			Writer:  store,
		}, nil
	}

	pool, err := database.NewPool(ctx, database.PoolConfig{
		URL:             cfg.GetDBConnString(),
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: DBMaxConnIdleTime,
		MaxConnLifetime: DBMaxConnLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}

	applied, err := database.Migrate(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}
	logger.Info(LogMsgUsingPostgres, "host", cfg.DBHost, "db", cfg.DBName)
	logger.Info(LogMsgMigrationsApplied, "count", applied)

	catalogRepo := postgres.NewCatalogRepository(pool)
	return &Repositories{
		Economy: postgres.NewEconomyRepository(pool),
		Catalog: catalog.NewCachedCatalog(catalogRepo, cfg.CatalogCacheSize, cfg.CatalogCacheTTL),
		Writer:  catalogRepo,
		Pool:    pool,
	}, nil
}

// ReadinessChecks returns the /readyz probes for the selected store
func (r *Repositories) ReadinessChecks() []handler.HealthCheck {
	if r.Pool == nil {
		return nil
	}
	return []handler.HealthCheck{{Name: ReadinessNameDatabase, Pinger: r.Pool}}
}

// Close releases the database pool, if any
func (r *Repositories) Close() {
	if r.Pool != nil {
		r.Pool.Close()
		logger.Info(LogMsgDatabasePoolClosed)
	}
}
