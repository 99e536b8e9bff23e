package config

// Store drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Defaults
const (
	DefaultPort             = 8080
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultLogDir           = "logs"
	DefaultEnvironment      = "dev"
	DefaultDBMaxConns       = 20
	DefaultAMQPExchange     = "lootcase.events"
	DefaultCatalogPath      = "configs/catalog.json"
	DefaultCatalogCacheSize = 256
	DefaultCatalogCacheTTL  = "5m"
	DefaultIdempotencyTTL   = "24h"
	DefaultDeadLetterPath   = "logs/deadletter.jsonl"
	DefaultShutdownTimeout  = "10s"
)

// Example values shipped in .env.example; running with them is warned about
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

// Error message formats
const (
	ErrMsgInvalidIntFmt      = "invalid %s value: %w"
	ErrMsgInvalidDurationFmt = "invalid %s value: %w"
	ErrMsgAPIKeyRequired     = "API_KEY environment variable must be set for security"
	ErrMsgUnknownDriverFmt   = "unknown STORE_DRIVER %q (want %s or %s)"
	ErrMsgSchemaMissingFmt   = "ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)"
	ErrMsgSchemaMismatchFmt  = "ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated"
	ErrMsgMissingRequiredFmt = "missing required environment variables: %s"
)

// Warnings
const (
	WarnExampleDBPassword = "DB_PASSWORD appears to be using the example value - please use a secure password"
	WarnExampleAPIKey     = "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32"
	WarnNoRedis           = "REDIS_ADDR is not set - Idempotency-Key headers will be ignored"
	WarnMemoryStore       = "STORE_DRIVER=memory - balances and inventories are lost on restart"
)
