package economy

import (
	"context"
	"fmt"

	"github.com/kabachok/lootcase/internal/event"
	"github.com/kabachok/lootcase/internal/logger"
	"github.com/kabachok/lootcase/internal/repository"
)

// Deposit credits a self-service top-up and returns the new balance
func (s *service) Deposit(ctx context.Context, userID string, amount int64) (int64, error) {
	ctx = logger.WithUserID(ctx, userID)
	log := logger.FromContext(ctx)
	log.Debug(LogMsgDepositCalled, "amount", amount)

	if err := validateUserID(userID); err != nil {
		return 0, err
	}
	if err := validateDepositAmount(amount); err != nil {
		return 0, err
	}

	ctx = context.WithoutCancel(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.GetOrCreateAccountForUpdate(ctx, userID); err != nil {
		return 0, fmt.Errorf(ErrMsgLockAccountFailed, err)
	}
	newBalance, err := tx.CreditBalance(ctx, userID, amount)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgCreditFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	log.Info(LogMsgDeposited, "amount", amount, "new_balance", newBalance)
	s.publish(ctx, event.NewBalanceDepositedEvent(userID, amount, newBalance))

	return newBalance, nil
}
