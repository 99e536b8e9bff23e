package economy

// ==================== User-facing Messages ====================

const (
	MsgOpenedFmt    = "Opened %s!"
	MsgSoldFmt      = "Sold %s for %d"
	MsgDepositedFmt = "Deposited %d"
)

// ==================== Error Messages ====================

// Formatted error messages wrapping domain sentinels
const (
	ErrMsgCaseUnavailableFmt  = "case %d: %w"
	ErrMsgEmptyCaseFmt        = "case %d: %w"
	ErrMsgInsufficientFmt     = "%w: balance %d, price %d"
	ErrMsgEntryNotFoundFmt    = "entry %d: %w"
	ErrMsgInvalidAmountFmt    = "%w: %d"
	ErrMsgLimitExceededFmt    = "%w: %d > %d"
	ErrMsgMissingUserFmt      = "%w: missing user id"
	ErrMsgEntryItemMissingFmt = "item %d of entry %d: %w"
)

// Store operation error messages
const (
	ErrMsgGetCaseFailed           = "failed to get case: %w"
	ErrMsgListCasesFailed         = "failed to list cases: %w"
	ErrMsgGetItemFailed           = "failed to get item: %w"
	ErrMsgGetAccountFailed        = "failed to get account: %w"
	ErrMsgGetInventoryFailed      = "failed to get inventory: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgLockAccountFailed       = "failed to lock account: %w"
	ErrMsgDebitFailed             = "failed to debit balance: %w"
	ErrMsgCreditFailed            = "failed to credit balance: %w"
	ErrMsgAddInventoryFailed      = "failed to add inventory: %w"
	ErrMsgGetEntryFailed          = "failed to get inventory entry: %w"
	ErrMsgRemoveEntryFailed       = "failed to remove from inventory entry: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgDrawFailed              = "failed to draw reward: %w"
	ErrMsgOddsFailed              = "failed to compute odds: %w"
)

// Shutdown error messages
const (
	ErrMsgShutdownTimedOut = "shutdown timed out: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgOpenCaseCalled  = "OpenCase called"
	LogMsgCaseOpened      = "Case opened"
	LogMsgSellEntryCalled = "SellEntry called"
	LogMsgItemSold        = "Item sold"
	LogMsgDepositCalled   = "Deposit called"
	LogMsgDeposited       = "Balance deposited"
	LogMsgDrawFailed      = "Reward draw failed on a validated case"
)

const (
	LogMsgEconomyShuttingDown = "Economy service shutting down, waiting for background tasks..."
)
