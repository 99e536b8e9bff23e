package economy

import (
	"context"
	"fmt"

	"github.com/kabachok/lootcase/internal/domain"
	"github.com/kabachok/lootcase/internal/event"
	"github.com/kabachok/lootcase/internal/logger"
	"github.com/kabachok/lootcase/internal/repository"
)

// OpenCase charges the case price and grants one drawn item as a single
// atomic unit. All checks run before anything is written, and the unit runs
// on a context that ignores request cancellation, so a disconnecting client
// sees either the whole effect or none of it.
func (s *service) OpenCase(ctx context.Context, userID string, caseID int64) (*OpenResult, error) {
	ctx = logger.WithUserID(ctx, userID)
	log := logger.FromContext(ctx)
	log.Debug(LogMsgOpenCaseCalled, "case_id", caseID)

	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	found, err := s.catalog.GetCase(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetCaseFailed, err)
	}
	c, err := resolveOpenable(caseID, found)
	if err != nil {
		return nil, err
	}

	ctx = context.WithoutCancel(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	account, err := tx.GetOrCreateAccountForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLockAccountFailed, err)
	}
	if account.Balance < c.Price {
		return nil, fmt.Errorf(ErrMsgInsufficientFmt, domain.ErrInsufficientFunds, account.Balance, c.Price)
	}

	reward, err := s.drawer.Draw(c.Items)
	if err != nil {
		log.Error(LogMsgDrawFailed, "case_id", caseID, "items", len(c.Items), "error", err)
		return nil, fmt.Errorf(ErrMsgDrawFailed, err)
	}

	newBalance, err := tx.DebitBalance(ctx, userID, c.Price)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgDebitFailed, err)
	}
	if _, err := tx.AddInventory(ctx, userID, reward.ID); err != nil {
		return nil, fmt.Errorf(ErrMsgAddInventoryFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	log.Info(LogMsgCaseOpened,
		"case_id", c.ID,
		"item_id", reward.ID,
		"rarity", reward.Rarity,
		"new_balance", newBalance)

	s.publish(ctx, event.NewCaseOpenedEvent(userID, c, reward, newBalance))

	return &OpenResult{
		Reward:     reward,
		NewBalance: newBalance,
		CaseID:     c.ID,
		CaseName:   c.Name,
		Price:      c.Price,
		Message:    fmt.Sprintf(MsgOpenedFmt, c.Name),
	}, nil
}
