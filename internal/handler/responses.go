package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/kabachok/lootcase/internal/domain"
	"github.com/kabachok/lootcase/internal/logger"
)

// ErrorResponse is the envelope for every failed request
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MutationResponse is the envelope for state-changing requests
type MutationResponse struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Reward     *RewardView `json:"reward,omitempty"`
	NewBalance *int64      `json:"new_balance,omitempty"`
	Remaining  *int        `json:"remaining,omitempty"`
}

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode first so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"message":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Success: false, Message: message})
}

// respondServiceError logs a failed service call and writes the mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	status, msg := mapServiceError(err)
	log := logger.FromContext(r.Context())

	switch {
	case errors.Is(err, domain.ErrEmptyPool):
		log.Error(LogMsgInvariantBroken, "action", action, "error", err)
	case status >= http.StatusInternalServerError:
		log.Error(fmt.Sprintf(LogMsgServiceFailedFmt, action), "error", err)
	default:
		log.Info(fmt.Sprintf(LogMsgServiceFailedFmt, action), "reason", err.Error(), "status", status)
	}

	respondError(w, status, msg)
}

// mapServiceError maps domain errors to HTTP status codes and user-facing
// messages. Anything unrecognised is treated as a transient store failure.
func mapServiceError(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrCaseUnavailable), errors.Is(err, domain.ErrEmptyCase):
		return http.StatusNotFound, ErrMsgCaseNotFoundError
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrMsgEntryNotFoundError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmountError
	case errors.Is(err, domain.ErrLimitExceeded):
		return http.StatusBadRequest, ErrMsgDepositLimitError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrEmptyPool):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
	return http.StatusServiceUnavailable, ErrMsgUnavailableError
}
