package handler

import (
	"fmt"
	"net/http"

	"github.com/kabachok/lootcase/internal/economy"
)

// DepositRequest tops up the caller's balance. Bounds are enforced by the
// economy service so both transports report the same errors.
type DepositRequest struct {
	Amount *int64 `json:"amount" validate:"required"`
}

// HandleDeposit credits the caller's balance
// @Summary Deposit
// @Description Adds virtual currency to the caller's balance (1..5000 per call)
// @Tags balance
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Param Idempotency-Key header string false "Replay protection key"
// @Param request body DepositRequest true "Amount"
// @Success 200 {object} MutationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/balance/deposit [post]
func HandleDeposit(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}

		var req DepositRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Deposit"); err != nil {
			return
		}

		balance, err := svc.Deposit(r.Context(), userID, *req.Amount)
		if err != nil {
			respondServiceError(w, r, "Deposit", err)
			return
		}

		respondJSON(w, http.StatusOK, MutationResponse{
			Success:    true,
			Message:    fmt.Sprintf(MsgDepositSuccessFmt, *req.Amount),
			NewBalance: &balance,
		})
	}
}
