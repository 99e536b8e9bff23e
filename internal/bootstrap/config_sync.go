package bootstrap

import (
	"context"
	"fmt"

	"github.com/kabachok/lootcase/internal/catalog"
	"github.com/kabachok/lootcase/internal/logger"
	"github.com/kabachok/lootcase/internal/repository"
)

// SyncCatalog loads, validates and syncs the catalog seed to the store, then
// drops cached catalog reads so the next request sees the synced rows.
// An empty path skips the sync.
func SyncCatalog(ctx context.Context, path string, writer repository.CatalogWriter, cache *catalog.CachedCatalog) error {
	if path == "" {
		logger.Info(LogMsgCatalogSkipped)
		return nil
	}

	logger.Info(LogMsgSyncingCatalog, "path", path)
	loader := catalog.NewLoader()

	cfg, err := loader.Load(path)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	if err := loader.Validate(cfg); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidCatalog, err)
	}

	result, err := loader.SyncToDatabase(ctx, cfg, writer)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncCatalog, err)
	}

	if cache != nil {
		cache.Purge()
	}

	logger.Info(LogMsgCatalogSynced,
		"items", result.ItemsSynced,
		"cases", result.CasesSynced)
	if result.EmptyCases > 0 {
		logger.Warn(LogMsgCatalogEmptyCase, "count", result.EmptyCases)
	}
	return nil
}
