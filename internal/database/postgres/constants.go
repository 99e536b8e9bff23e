package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeCheckViolation is raised when a CHECK constraint such as balance >= 0 fails
	PgErrorCodeCheckViolation = "23514"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Ledger
const (
	ErrMsgFailedToLockAccount   = "failed to lock account"
	ErrMsgFailedToGetAccount    = "failed to get account"
	ErrMsgFailedToDebitAccount  = "failed to debit account"
	ErrMsgFailedToCreditAccount = "failed to credit account"
)

// Error Messages - Inventory
const (
	ErrMsgFailedToGetInventory      = "failed to get inventory"
	ErrMsgFailedToAddInventory      = "failed to add inventory"
	ErrMsgFailedToGetInventoryEntry = "failed to get inventory entry"
	ErrMsgFailedToRemoveInventory   = "failed to remove inventory"
)

// Error Messages - Catalog
const (
	ErrMsgFailedToGetCase     = "failed to get case"
	ErrMsgFailedToListCases   = "failed to list cases"
	ErrMsgFailedToGetItem     = "failed to get item"
	ErrMsgFailedToGetItems    = "failed to get case items"
	ErrMsgFailedToUpsertItem  = "failed to upsert item"
	ErrMsgFailedToUpsertCase  = "failed to upsert case"
	ErrMsgFailedToUpdateItems = "failed to update case items"
)
