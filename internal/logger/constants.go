package logger

// Accepted LOG_LEVEL values; anything else falls back to info
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Accepted LOG_FORMAT values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Defaults used when no explicit Config is given
const (
	DefaultServiceName    = "lootcase"
	DefaultVersion        = "dev"
	ProductionVersion     = "1.0.0"
	EnvironmentDev        = "dev"
	EnvironmentProduction = "prod"
)

// Attribute keys on every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyUserID      = "user_id"
)
