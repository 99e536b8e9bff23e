package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kabachok/lootcase/internal/domain"
	"github.com/kabachok/lootcase/internal/economy"
)

func TestHandleSellEntry(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockEconomyService{}
		svc.On("SellEntry", mock.Anything, "user-1", int64(42)).Return(&economy.SellResult{
			Item:       potato,
			NewBalance: 105,
			Remaining:  0,
			Message:    "Sold 🥔 Potato for 5",
		}, nil)

		w := do(t, newTestRouter(svc), http.MethodPost, "/inventory/42/sell", "user-1", "")

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[MutationResponse](t, w)
		assert.True(t, resp.Success)
		require.NotNil(t, resp.NewBalance)
		assert.Equal(t, int64(105), *resp.NewBalance)
		require.NotNil(t, resp.Remaining)
		assert.Zero(t, *resp.Remaining)
		assert.Contains(t, w.Body.String(), `"remaining":0`)
	})

	t.Run("Not owned", func(t *testing.T) {
		svc := &MockEconomyService{}
		svc.On("SellEntry", mock.Anything, "user-1", int64(7)).Return(nil, domain.ErrNotFound)

		w := do(t, newTestRouter(svc), http.MethodPost, "/inventory/7/sell", "user-1", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, ErrMsgEntryNotFoundError, decode[ErrorResponse](t, w).Message)
	})

	t.Run("Bad entry id", func(t *testing.T) {
		svc := &MockEconomyService{}
		w := do(t, newTestRouter(svc), http.MethodPost, "/inventory/x/sell", "user-1", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, ErrMsgInvalidEntryID, decode[ErrorResponse](t, w).Message)
	})
}

func TestHandleGetProfile(t *testing.T) {
	svc := &MockEconomyService{}
	item := potato
	svc.On("GetProfile", mock.Anything, "user-1").Return(&domain.Profile{
		UserID:    "user-1",
		Balance:   250,
		Inventory: []domain.InventoryEntry{{ID: 3, UserID: "user-1", ItemID: 1, Quantity: 2, Item: &item}},
	}, nil)

	w := do(t, newTestRouter(svc), http.MethodGet, "/me", "user-1", "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[ProfileResponse](t, w)
	assert.Equal(t, int64(250), resp.Balance)
	require.Len(t, resp.Inventory, 1)
	assert.Equal(t, 2, resp.Inventory[0].Quantity)
	require.NotNil(t, resp.Inventory[0].Item)
	assert.Equal(t, "Potato", resp.Inventory[0].Item.Name)
}

func TestHandleGetProfile_RequiresIdentity(t *testing.T) {
	svc := &MockEconomyService{}
	w := do(t, newTestRouter(svc), http.MethodGet, "/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
}
