package repository

import (
	"context"

	"github.com/kabachok/lootcase/internal/domain"
)

// Economy defines the interface for ledger and inventory persistence
type Economy interface {
	Catalog
	GetAccount(ctx context.Context, userID string) (*domain.Account, error)
	GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error)
	BeginTx(ctx context.Context) (EconomyTx, error)
}

// EconomyTx defines the interface for economy transactions.
//
// GetOrCreateAccountForUpdate locks the caller's account row for the rest of
// the transaction. Every mutation of that user's balance or inventory must
// happen after the lock is taken.
type EconomyTx interface {
	Tx
	GetOrCreateAccountForUpdate(ctx context.Context, userID string) (*domain.Account, error)
	// DebitBalance subtracts amount and returns the new balance. It returns
	// domain.ErrInsufficientFunds instead of letting the balance go negative.
	DebitBalance(ctx context.Context, userID string, amount int64) (int64, error)
	CreditBalance(ctx context.Context, userID string, amount int64) (int64, error)
	// AddInventory increments the (user, item) stack by one, creating it at 1.
	AddInventory(ctx context.Context, userID string, itemID int64) (*domain.InventoryEntry, error)
	// GetInventoryEntryForUpdate returns nil when the entry does not exist
	// or belongs to another user.
	GetInventoryEntryForUpdate(ctx context.Context, userID string, entryID int64) (*domain.InventoryEntry, error)
	// RemoveOneFromEntry decrements the stack and deletes it at zero. It
	// returns the remaining quantity.
	RemoveOneFromEntry(ctx context.Context, entryID int64) (int, error)
}
