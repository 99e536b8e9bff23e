package idempotency

import "time"

// HTTP headers
const (
	HeaderKey = "Idempotency-Key"
	HeaderHit = "X-Idempotency-Hit"
)

const (
	KeyPrefix     = "idempotency:"
	LockKeyPrefix = "idempotency:lock:"

	DefaultTTL     = 24 * time.Hour
	DefaultLockTTL = 30 * time.Second
	MaxKeyLength   = 255
)

// Error messages
const (
	ErrMsgGetKeyFailed      = "failed to get idempotency key: %w"
	ErrMsgSaveKeyFailed     = "failed to save idempotency key: %w"
	ErrMsgReserveKeyFailed  = "failed to reserve idempotency key: %w"
	ErrMsgReleaseKeyFailed  = "failed to release idempotency key: %w"
	ErrMsgUnmarshalResponse = "failed to unmarshal cached response: %w"
	ErrMsgMarshalResponse   = "failed to marshal response: %w"

	MsgKeyTooLong = "Idempotency-Key is too long"
	MsgInFlight   = "A request with this Idempotency-Key is already in progress"
)

// Log messages
const (
	LogMsgCacheHit       = "Idempotency cache hit"
	LogMsgStoreReadFail  = "Idempotency store read failed, continuing without replay"
	LogMsgStoreWriteFail = "Idempotency store write failed"
	LogMsgReleaseFail    = "Idempotency lock release failed"
)
