package economy

import (
	"fmt"
	"strings"

	"github.com/kabachok/lootcase/internal/domain"
)

func validateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf(ErrMsgMissingUserFmt, domain.ErrInvalidInput)
	}
	return nil
}

// validateDepositAmount enforces 0 < amount <= domain.MaxDepositAmount
func validateDepositAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf(ErrMsgInvalidAmountFmt, domain.ErrInvalidAmount, amount)
	}
	if amount > domain.MaxDepositAmount {
		return fmt.Errorf(ErrMsgLimitExceededFmt, domain.ErrLimitExceeded, amount, domain.MaxDepositAmount)
	}
	return nil
}

// resolveOpenable returns the case only if it can be opened right now.
// Missing and inactive cases are reported the same way.
func resolveOpenable(caseID int64, c *domain.Case) (*domain.Case, error) {
	if c == nil || !c.IsActive {
		return nil, fmt.Errorf(ErrMsgCaseUnavailableFmt, caseID, domain.ErrCaseUnavailable)
	}
	if len(c.Items) == 0 {
		return nil, fmt.Errorf(ErrMsgEmptyCaseFmt, caseID, domain.ErrEmptyCase)
	}
	return c, nil
}
