package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidCaseID         = "Invalid case ID"
	ErrMsgInvalidEntryID        = "Invalid inventory entry ID"
	ErrMsgMissingUser           = "Missing caller identity"
)

// User-facing messages derived from domain errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnavailableError   = "Server is temporarily unavailable. Please try again."

	ErrMsgCaseNotFoundError   = "Case not found"
	ErrMsgEntryNotFoundError  = "You don't have that vegetable"
	ErrMsgNotEnoughMoneyError = "Not enough money"
	ErrMsgInvalidAmountError  = "Amount must be a positive whole number"
	ErrMsgDepositLimitError   = "Amount exceeds the per-deposit limit"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
)

// Success messages
const (
	MsgDepositSuccessFmt = "Deposited %d"
	MsgCasesListed       = "Cases retrieved"
)

// Log messages
const (
	LogMsgDecodeFailedFmt   = "Failed to decode %s request"
	LogMsgRequestDecodedFmt = "%s request decoded"
	LogMsgServiceFailedFmt  = "%s failed"
	LogMsgInvariantBroken   = "Reward pool empty for an openable case"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgReadinessFailed   = "Readiness check failed"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgCheckFailedFmt = "%s check failed"
)
