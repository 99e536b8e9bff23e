package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kabachok/lootcase/internal/logger"
	"github.com/kabachok/lootcase/internal/middleware"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If this function returns an error, the response has already been written
// and the handler should return.
//
//	var req DepositRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Deposit"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(fmt.Sprintf(LogMsgDecodeFailedFmt, actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf(LogMsgRequestDecodedFmt, actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Success: false,
			Message: ErrMsgInvalidRequestSummary,
			Fields:  FormatValidationError(err),
		})
		return err
	}

	return nil
}

// parseIDParam reads a positive integer route parameter. On failure it
// writes a 400 and returns false.
func parseIDParam(w http.ResponseWriter, r *http.Request, name, errMsg string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, errMsg)
		return 0, false
	}
	return id, true
}

// callerID returns the identity placed in the context by middleware.RequireUser.
// Routes are always mounted behind it; a missing id still fails closed.
func callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := middleware.GetUserID(r.Context())
	if userID == middleware.EmptyUserID {
		respondError(w, http.StatusUnauthorized, ErrMsgMissingUser)
		return "", false
	}
	return userID, true
}
