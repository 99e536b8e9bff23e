package handler

import (
	"net/http"

	"github.com/kabachok/lootcase/internal/economy"
	"github.com/kabachok/lootcase/internal/logger"
)

// CaseHandler serves the case catalog and case opening
type CaseHandler struct {
	service economy.Service
}

// NewCaseHandler creates a CaseHandler
func NewCaseHandler(service economy.Service) *CaseHandler {
	return &CaseHandler{service: service}
}

// HandleListCases lists every active case
// @Summary List cases
// @Description Active cases with their vegetables
// @Tags cases
// @Produce json
// @Success 200 {array} CaseView
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/cases [get]
func (h *CaseHandler) HandleListCases(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListCases(r.Context())
	if err != nil {
		respondServiceError(w, r, "List cases", err)
		return
	}

	views := make([]CaseView, 0, len(list))
	for _, c := range list {
		views = append(views, newCaseView(c))
	}
	logger.FromContext(r.Context()).Debug(MsgCasesListed, "count", len(views))
	respondJSON(w, http.StatusOK, views)
}

// HandleGetCase returns one active case
// @Summary Get case
// @Tags cases
// @Produce json
// @Param caseID path int true "Case ID"
// @Success 200 {object} CaseView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/cases/{caseID} [get]
func (h *CaseHandler) HandleGetCase(w http.ResponseWriter, r *http.Request) {
	caseID, ok := parseIDParam(w, r, "caseID", ErrMsgInvalidCaseID)
	if !ok {
		return
	}

	c, err := h.service.GetCase(r.Context(), caseID)
	if err != nil {
		respondServiceError(w, r, "Get case", err)
		return
	}
	respondJSON(w, http.StatusOK, newCaseView(*c))
}

// HandleGetCaseOdds returns the drop table of an openable case
// @Summary Get case odds
// @Description Weight and probability of each vegetable in the case
// @Tags cases
// @Produce json
// @Param caseID path int true "Case ID"
// @Success 200 {object} CaseOddsResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/cases/{caseID}/odds [get]
func (h *CaseHandler) HandleGetCaseOdds(w http.ResponseWriter, r *http.Request) {
	caseID, ok := parseIDParam(w, r, "caseID", ErrMsgInvalidCaseID)
	if !ok {
		return
	}

	odds, err := h.service.GetCaseOdds(r.Context(), caseID)
	if err != nil {
		respondServiceError(w, r, "Get case odds", err)
		return
	}
	respondJSON(w, http.StatusOK, newCaseOddsResponse(odds))
}

// HandleOpenCase charges the caller and grants one random vegetable
// @Summary Open case
// @Description Debits the case price and adds one drawn vegetable to the inventory, atomically
// @Tags cases
// @Produce json
// @Param caseID path int true "Case ID"
// @Param X-User-ID header string true "Caller identity"
// @Param Idempotency-Key header string false "Replay protection key"
// @Success 200 {object} MutationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/cases/{caseID}/open [post]
func (h *CaseHandler) HandleOpenCase(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	caseID, ok := parseIDParam(w, r, "caseID", ErrMsgInvalidCaseID)
	if !ok {
		return
	}

	result, err := h.service.OpenCase(r.Context(), userID, caseID)
	if err != nil {
		respondServiceError(w, r, "Open case", err)
		return
	}

	reward := newRewardView(result.Reward)
	respondJSON(w, http.StatusOK, MutationResponse{
		Success:    true,
		Message:    result.Message,
		Reward:     &reward,
		NewBalance: &result.NewBalance,
	})
}
