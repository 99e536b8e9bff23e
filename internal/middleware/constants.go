package middleware

// HTTP header names
const (
	// HeaderUserID carries the caller's identity, set by the gateway in front of the service
	HeaderUserID = "X-User-ID"
)

// Identity limits
const (
	// MaxUserIDLength matches the accounts.user_id column width
	MaxUserIDLength = 128
)

// Default Values
const (
	// EmptyUserID represents an empty or missing user ID
	EmptyUserID = ""
)

// Client-facing messages
const (
	MsgMissingUserID = "Missing X-User-ID header"
	MsgInvalidUserID = "Invalid X-User-ID header"
)

// Log Messages
const (
	LogMsgMissingIdentity = "Request without caller identity"
	LogMsgInvalidIdentity = "Rejected malformed caller identity"
)
