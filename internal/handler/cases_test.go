package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kabachok/lootcase/internal/domain"
	"github.com/kabachok/lootcase/internal/economy"
	"github.com/kabachok/lootcase/internal/lootbox"
	"github.com/kabachok/lootcase/internal/middleware"
)

func do(t *testing.T, h http.Handler, method, path, userID, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHandleOpenCase(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockEconomyService{}
		svc.On("OpenCase", mock.Anything, "user-1", int64(1)).Return(&economy.OpenResult{
			Reward:     pumpkin,
			NewBalance: 900,
			CaseID:     1,
			CaseName:   "Garden Box",
			Price:      100,
			Message:    "Opened Garden Box!",
		}, nil)

		w := do(t, newTestRouter(svc), http.MethodPost, "/cases/1/open", "user-1", "")

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[MutationResponse](t, w)
		assert.True(t, resp.Success)
		assert.Equal(t, "Opened Garden Box!", resp.Message)
		require.NotNil(t, resp.Reward)
		assert.Equal(t, "Pumpkin", resp.Reward.Name)
		assert.Equal(t, "Legendary", resp.Reward.RarityDisplay)
		require.NotNil(t, resp.NewBalance)
		assert.Equal(t, int64(900), *resp.NewBalance)
		svc.AssertExpectations(t)
	})

	errorCases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"insufficient funds", fmt.Errorf("%w: balance 50, price 100", domain.ErrInsufficientFunds), http.StatusBadRequest, ErrMsgNotEnoughMoneyError},
		{"missing case", fmt.Errorf("case 1: %w", domain.ErrCaseUnavailable), http.StatusNotFound, ErrMsgCaseNotFoundError},
		{"empty case", domain.ErrEmptyCase, http.StatusNotFound, ErrMsgCaseNotFoundError},
		{"empty pool", domain.ErrEmptyPool, http.StatusInternalServerError, ErrMsgGenericServerError},
		{"store failure", errors.New("connection reset"), http.StatusServiceUnavailable, ErrMsgUnavailableError},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &MockEconomyService{}
			svc.On("OpenCase", mock.Anything, "user-1", int64(1)).Return(nil, tc.err)

			w := do(t, newTestRouter(svc), http.MethodPost, "/cases/1/open", "user-1", "")

			assert.Equal(t, tc.wantStatus, w.Code)
			resp := decode[ErrorResponse](t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tc.wantMsg, resp.Message)
		})
	}

	t.Run("Invalid case id", func(t *testing.T) {
		svc := &MockEconomyService{}
		for _, path := range []string{"/cases/abc/open", "/cases/0/open", "/cases/-3/open"} {
			w := do(t, newTestRouter(svc), http.MethodPost, path, "user-1", "")
			assert.Equal(t, http.StatusBadRequest, w.Code, path)
		}
		svc.AssertNotCalled(t, "OpenCase", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing identity", func(t *testing.T) {
		svc := &MockEconomyService{}
		w := do(t, newTestRouter(svc), http.MethodPost, "/cases/1/open", "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		svc.AssertNotCalled(t, "OpenCase", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandleListCases(t *testing.T) {
	svc := &MockEconomyService{}
	svc.On("ListCases", mock.Anything).Return([]domain.Case{*garden}, nil)

	w := do(t, newTestRouter(svc), http.MethodGet, "/cases", "", "")

	require.Equal(t, http.StatusOK, w.Code)
	views := decode[[]CaseView](t, w)
	require.Len(t, views, 1)
	assert.Equal(t, "Garden Box", views[0].Name)
	require.Len(t, views[0].Items, 2)
	assert.Equal(t, "Common", views[0].Items[0].RarityDisplay)
}

func TestHandleListCases_Empty(t *testing.T) {
	svc := &MockEconomyService{}
	svc.On("ListCases", mock.Anything).Return([]domain.Case{}, nil)

	w := do(t, newTestRouter(svc), http.MethodGet, "/cases", "", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())
}

func TestHandleGetCase(t *testing.T) {
	svc := &MockEconomyService{}
	svc.On("GetCase", mock.Anything, int64(1)).Return(garden, nil)
	svc.On("GetCase", mock.Anything, int64(2)).Return(nil, domain.ErrCaseUnavailable)
	router := newTestRouter(svc)

	w := do(t, router, http.MethodGet, "/cases/1", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(100), decode[CaseView](t, w).Price)

	w = do(t, router, http.MethodGet, "/cases/2", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleGetCaseOdds(t *testing.T) {
	svc := &MockEconomyService{}
	svc.On("GetCaseOdds", mock.Anything, int64(1)).Return(&economy.CaseOdds{
		Case: garden,
		Odds: []lootbox.Odds{
			{ItemID: 1, Weight: 10, Probability: 10.0 / 11},
			{ItemID: 8, Weight: 1, Probability: 1.0 / 11},
		},
	}, nil)

	w := do(t, newTestRouter(svc), http.MethodGet, "/cases/1/odds", "", "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[CaseOddsResponse](t, w)
	require.Len(t, resp.Odds, 2)
	assert.Equal(t, "Potato", resp.Odds[0].Name)
	assert.Equal(t, 10, resp.Odds[0].Weight)
	assert.Equal(t, "Pumpkin", resp.Odds[1].Name)
	assert.InDelta(t, 1.0/11, resp.Odds[1].Probability, 1e-9)
}
