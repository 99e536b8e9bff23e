package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kabachok/lootcase/internal/domain"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantMsg    string
	}{
		{domain.ErrCaseUnavailable, http.StatusNotFound, ErrMsgCaseNotFoundError},
		{domain.ErrEmptyCase, http.StatusNotFound, ErrMsgCaseNotFoundError},
		{domain.ErrNotFound, http.StatusNotFound, ErrMsgEntryNotFoundError},
		{domain.ErrInsufficientFunds, http.StatusBadRequest, ErrMsgNotEnoughMoneyError},
		{domain.ErrInvalidAmount, http.StatusBadRequest, ErrMsgInvalidAmountError},
		{domain.ErrLimitExceeded, http.StatusBadRequest, ErrMsgDepositLimitError},
		{domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidInputError},
		{domain.ErrEmptyPool, http.StatusInternalServerError, ErrMsgGenericServerError},
		{errors.New("pgconn: connection refused"), http.StatusServiceUnavailable, ErrMsgUnavailableError},
		{nil, http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		name := "nil"
		if tt.err != nil {
			name = tt.err.Error()
		}
		t.Run(name, func(t *testing.T) {
			status, msg := mapServiceError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)

			if tt.err != nil {
				wrapped := fmt.Errorf("open case 3: %w", tt.err)
				status, msg = mapServiceError(wrapped)
				assert.Equal(t, tt.wantStatus, status, "wrapped")
				assert.Equal(t, tt.wantMsg, msg, "wrapped")
			}
		})
	}
}

func TestRespondJSON_UnencodablePayload(t *testing.T) {
	w := httptest.NewRecorder()
	respondJSON(w, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
}

func TestRarityDisplay(t *testing.T) {
	assert.Equal(t, "Legendary", rarityDisplay(domain.RarityLegendary))
	assert.Equal(t, "Uncommon", rarityDisplay(domain.RarityUncommon))
}
