package handler

import (
	"net/http"

	"github.com/kabachok/lootcase/internal/economy"
)

// InventoryHandler serves the caller's inventory
type InventoryHandler struct {
	service economy.Service
}

// NewInventoryHandler creates an InventoryHandler
func NewInventoryHandler(service economy.Service) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// HandleSellEntry sells one unit of an inventory stack
// @Summary Sell one vegetable
// @Description Removes one unit from the stack and credits its price
// @Tags inventory
// @Produce json
// @Param entryID path int true "Inventory entry ID"
// @Param X-User-ID header string true "Caller identity"
// @Param Idempotency-Key header string false "Replay protection key"
// @Success 200 {object} MutationResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/inventory/{entryID}/sell [post]
func (h *InventoryHandler) HandleSellEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	entryID, ok := parseIDParam(w, r, "entryID", ErrMsgInvalidEntryID)
	if !ok {
		return
	}

	result, err := h.service.SellEntry(r.Context(), userID, entryID)
	if err != nil {
		respondServiceError(w, r, "Sell entry", err)
		return
	}

	item := newRewardView(result.Item)
	respondJSON(w, http.StatusOK, MutationResponse{
		Success:    true,
		Message:    result.Message,
		Reward:     &item,
		NewBalance: &result.NewBalance,
		Remaining:  &result.Remaining,
	})
}

// HandleGetProfile returns the caller's balance and inventory
// @Summary Current user
// @Tags inventory
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Success 200 {object} ProfileResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/me [get]
func (h *InventoryHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get profile", err)
		return
	}
	respondJSON(w, http.StatusOK, newProfileResponse(profile))
}
