package catalog

import "time"

// Schema file names under schemas/
const (
	CatalogSchemaName = "catalog.schema.json"
)

// Cache defaults
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 5 * time.Minute
)

// File and parse error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read catalog config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse catalog config: %w"
	ErrMsgSchemaFailedFmt      = "schema validation failed for %s: %w"
)

// Validation error formats. The first verb is always ErrInvalidConfig.
const (
	ErrMsgConfigNil          = "config is nil"
	ErrMsgNoItemsDefined     = "no items defined"
	ErrFmtItemAtIndexEmpty   = "%w: item at index %d has empty name"
	ErrFmtItemBadRarity      = "%w: item '%s' has unknown rarity '%s'"
	ErrFmtItemNegativePrice  = "%w: item '%s' has negative price"
	ErrFmtCaseAtIndexEmpty   = "%w: case at index %d has empty name"
	ErrFmtCaseNegativePrice  = "%w: case '%s' has negative price"
	ErrFmtCaseUnknownItem    = "%w: case '%s' references unknown item '%s'"
	ErrFmtDuplicateItemName  = "%w: item '%s'"
	ErrFmtDuplicateCaseName  = "%w: case '%s'"
	ErrFmtCaseDuplicateEntry = "%w: case '%s' lists item '%s' twice"
)

// Database sync error messages
const (
	ErrMsgUpsertItemFailed   = "failed to upsert item '%s': %w"
	ErrMsgUpsertCaseFailed   = "failed to upsert case '%s': %w"
	ErrMsgSetCaseItemsFailed = "failed to set items for case '%s': %w"
)

// Log messages
const (
	LogMsgSyncedItem    = "Synced catalog item"
	LogMsgSyncedCase    = "Synced catalog case"
	LogMsgSyncCompleted = "Catalog sync completed"
	LogMsgEmptyCaseSeed = "Catalog case has no items and cannot be opened"
	LogMsgInactiveSeed  = "Catalog case is inactive"
	LogMsgCatalogLoaded = "Loaded catalog config"
)
