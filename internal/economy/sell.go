package economy

import (
	"context"
	"fmt"

	"github.com/kabachok/lootcase/internal/domain"
	"github.com/kabachok/lootcase/internal/event"
	"github.com/kabachok/lootcase/internal/logger"
	"github.com/kabachok/lootcase/internal/repository"
)

// SellEntry sells one unit of the caller's inventory entry for the item's
// sell price. The stack is deleted when its last unit is sold.
func (s *service) SellEntry(ctx context.Context, userID string, entryID int64) (*SellResult, error) {
	ctx = logger.WithUserID(ctx, userID)
	log := logger.FromContext(ctx)
	log.Debug(LogMsgSellEntryCalled, "entry_id", entryID)

	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	ctx = context.WithoutCancel(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.GetOrCreateAccountForUpdate(ctx, userID); err != nil {
		return nil, fmt.Errorf(ErrMsgLockAccountFailed, err)
	}

	entry, err := tx.GetInventoryEntryForUpdate(ctx, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetEntryFailed, err)
	}
	if entry == nil {
		return nil, fmt.Errorf(ErrMsgEntryNotFoundFmt, entryID, domain.ErrNotFound)
	}

	item, err := s.entryItem(ctx, entry)
	if err != nil {
		return nil, err
	}

	remaining, err := tx.RemoveOneFromEntry(ctx, entry.ID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgRemoveEntryFailed, err)
	}
	newBalance, err := tx.CreditBalance(ctx, userID, item.SellPrice)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreditFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	log.Info(LogMsgItemSold,
		"entry_id", entryID,
		"item_id", item.ID,
		"value", item.SellPrice,
		"remaining", remaining,
		"new_balance", newBalance)

	s.publish(ctx, event.NewItemSoldEvent(userID, *item, newBalance))

	return &SellResult{
		Item:       *item,
		NewBalance: newBalance,
		Remaining:  remaining,
		Message:    fmt.Sprintf(MsgSoldFmt, item.Name, item.SellPrice),
	}, nil
}

// entryItem returns the item attached by the store, falling back to the catalog
func (s *service) entryItem(ctx context.Context, entry *domain.InventoryEntry) (*domain.Item, error) {
	if entry.Item != nil {
		return entry.Item, nil
	}
	item, err := s.catalog.GetItem(ctx, entry.ItemID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetItemFailed, err)
	}
	if item == nil {
		return nil, fmt.Errorf(ErrMsgEntryItemMissingFmt, entry.ItemID, entry.ID, domain.ErrNotFound)
	}
	return item, nil
}
