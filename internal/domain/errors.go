package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Case errors
	ErrMsgCaseUnavailable = "case not found"
	ErrMsgEmptyCase       = "case has no items"

	// Draw errors
	ErrMsgEmptyPool     = "reward pool is empty"
	ErrMsgInvalidRarity = "invalid rarity"

	// Ledger errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInvalidAmount     = "amount must be a positive integer"
	ErrMsgLimitExceeded     = "amount exceeds per-deposit limit"

	// Inventory errors
	ErrMsgNotFound = "inventory entry not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrCaseUnavailable covers both a missing and an inactive case.
	ErrCaseUnavailable = errors.New(ErrMsgCaseUnavailable)
	ErrEmptyCase       = errors.New(ErrMsgEmptyCase)

	// ErrEmptyPool is an invariant violation: callers validate non-emptiness first.
	ErrEmptyPool     = errors.New(ErrMsgEmptyPool)
	ErrInvalidRarity = errors.New(ErrMsgInvalidRarity)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)
	ErrLimitExceeded     = errors.New(ErrMsgLimitExceeded)

	ErrNotFound = errors.New(ErrMsgNotFound)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
