package event

import "time"

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Retry configuration constants
const (
	// RetryQueueBufferSize is the buffer size for the retry queue
	RetryQueueBufferSize = 1000

	// RetryInitialDelay is the default delay before the first retry
	RetryInitialDelay = 2 * time.Second

	// RetryMaxAttempts is the default maximum number of retry attempts
	RetryMaxAttempts = 5
)

// Dead letter file configuration
const (
	// DeadLetterFilePermissions is the file permission mode for dead-letter files
	DeadLetterFilePermissions = 0644
)

// AMQP configuration
const (
	// AMQPExchangeKind is the exchange type declared for domain events; routing keys are event types
	AMQPExchangeKind = "topic"
	// AMQPContentType is the content type of published messages
	AMQPContentType = "application/json"
	// AMQPHeaderSchemaVersion carries Event.Version on every message
	AMQPHeaderSchemaVersion = "x-schema-version"
)

// Error messages
const (
	ErrMsgOpenDeadLetter  = "failed to open dead-letter file"
	ErrMsgMarshalEvent    = "failed to marshal event"
	ErrMsgPublishAMQP     = "failed to publish event to broker"
	ErrMsgDialAMQP        = "failed to connect to broker"
	ErrMsgOpenAMQPChannel = "failed to open broker channel"
	ErrMsgDeclareExchange = "failed to declare exchange"
	ErrMsgDecodePayload   = "failed to decode event payload"
)

// Log message constants
const (
	LogMsgEventPublishFailed    = "Event publish failed, queuing for retry"
	LogMsgRetryQueueFull        = "Retry queue full, event dropped to dead-letter"
	LogMsgDeadLetterWriteFailed = "Failed to write to dead letter"
	LogMsgEventRetryExhausted   = "Event retry exhausted, writing to dead-letter"
	LogMsgEventRetryFailed      = "Event retry failed, scheduling next attempt"
	LogMsgEventRetrySucceeded   = "Event retry succeeded"
	LogMsgEventDroppedShutdown  = "Event dropped during shutdown"
	LogMsgQueueDrainedShutdown  = "Drained retry queue during shutdown"
	LogMsgShutdownTimeout       = "Resilient publisher shutdown timed out"
	LogMsgEventForwarded        = "Event forwarded to broker"
	LogMsgBrokerConnected       = "Connected to message broker"

	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)

// CalculateRetryDelay calculates the exponential backoff delay for retry attempts.
// Formula: baseDelay * 2^(attempt-1), so 2s, 4s, 8s... with the default base.
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	return baseDelay * time.Duration(1<<(attempt-1))
}
