package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// ServiceName tags every log line
	ServiceName = "lootcase"

	// LogFileName is the active log file inside Config.LogDir; rotated files sit beside it
	LogFileName = "lootcase.log"

	// LogFileMaxSizeMB rotates the file once it reaches this size
	LogFileMaxSizeMB = 50

	// LogFileMaxBackups is the number of rotated files to keep
	LogFileMaxBackups = 9

	// LogFileMaxAgeDays removes rotated files older than this
	LogFileMaxAgeDays = 14
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting lootcase"
	LogMsgConfigurationLoaded = "Configuration loaded"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
)

// =============================================================================
// Store Configuration
// =============================================================================

const (
	// DBMaxConnIdleTime closes pooled connections idle for longer
	DBMaxConnIdleTime = 5 * time.Minute

	// DBMaxConnLifetime recycles pooled connections
	DBMaxConnLifetime = time.Hour

	// ReadinessNameDatabase and ReadinessNameRedis label /readyz checks
	ReadinessNameDatabase = "database"
	ReadinessNameRedis    = "redis"

	// RedisStartupPingTimeout bounds the connectivity check at startup
	RedisStartupPingTimeout = 3 * time.Second
)

const (
	LogMsgUsingPostgres      = "Using PostgreSQL store"
	LogMsgUsingMemory        = "Using in-memory store"
	LogMsgMigrationsApplied  = "Database migrations applied"
	ErrMsgFailedConnectDB    = "failed to connect to database"
	ErrMsgFailedMigrate      = "failed to apply migrations"
	LogMsgRedisConnected     = "Connected to Redis; idempotency enabled"
	LogMsgRedisUnreachable   = "Redis unreachable at startup; idempotency fails open until it recovers"
	LogMsgRedisCloseFailed   = "Redis client close failed"
	LogMsgDatabasePoolClosed = "Database pool closed"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second

	// BrokerDeadLetterSuffix distinguishes broker failures from local handler failures
	BrokerDeadLetterSuffix = ".broker"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgBrokerDisabled                 = "AMQP_URL not set; events stay in-process"
	LogMsgBrokerUnavailable              = "Message broker unavailable; events stay in-process"
	ErrMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	ErrMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// =============================================================================
// Catalog Sync Messages
// =============================================================================

const (
	LogMsgSyncingCatalog   = "Syncing catalog from JSON config..."
	LogMsgCatalogSynced    = "Catalog synced successfully"
	LogMsgCatalogSkipped   = "CATALOG_PATH not set; catalog sync skipped"
	LogMsgCatalogEmptyCase = "Catalog contains cases with no items; they cannot be opened"

	ErrMsgFailedLoadCatalog = "failed to load catalog config"
	ErrMsgInvalidCatalog    = "invalid catalog config"
	ErrMsgFailedSyncCatalog = "failed to sync catalog to database"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgBrokerRelayRegistered      = "Broker relay registered"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgBrokerCloseFailed          = "Broker connection close failed"

	ServiceNameEconomy = "economy"
)

// Shutdown log message format (service name will be prepended)
const (
	LogMsgServiceShutdownFailed = " service shutdown failed"
)
