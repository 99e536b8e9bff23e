package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/kabachok/lootcase/internal/domain"
	"github.com/kabachok/lootcase/internal/economy"
	"github.com/kabachok/lootcase/internal/middleware"
)

type MockEconomyService struct {
	mock.Mock
}

func (m *MockEconomyService) OpenCase(ctx context.Context, userID string, caseID int64) (*economy.OpenResult, error) {
	args := m.Called(ctx, userID, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.OpenResult), args.Error(1)
}

func (m *MockEconomyService) SellEntry(ctx context.Context, userID string, entryID int64) (*economy.SellResult, error) {
	args := m.Called(ctx, userID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.SellResult), args.Error(1)
}

func (m *MockEconomyService) Deposit(ctx context.Context, userID string, amount int64) (int64, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEconomyService) ListCases(ctx context.Context) ([]domain.Case, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Case), args.Error(1)
}

func (m *MockEconomyService) GetCase(ctx context.Context, caseID int64) (*domain.Case, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Case), args.Error(1)
}

func (m *MockEconomyService) GetCaseOdds(ctx context.Context, caseID int64) (*economy.CaseOdds, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.CaseOdds), args.Error(1)
}

func (m *MockEconomyService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockEconomyService) Shutdown(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// newTestRouter mounts the handlers the way the server does
func newTestRouter(svc economy.Service) http.Handler {
	r := chi.NewRouter()
	cases := NewCaseHandler(svc)
	inventory := NewInventoryHandler(svc)

	r.Get("/cases", cases.HandleListCases)
	r.Get("/cases/{caseID}", cases.HandleGetCase)
	r.Get("/cases/{caseID}/odds", cases.HandleGetCaseOdds)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Post("/cases/{caseID}/open", cases.HandleOpenCase)
		r.Post("/inventory/{entryID}/sell", inventory.HandleSellEntry)
		r.Post("/balance/deposit", HandleDeposit(svc))
		r.Get("/me", inventory.HandleGetProfile)
	})
	return r
}

var (
	potato  = domain.Item{ID: 1, Name: "Potato", Emoji: "🥔", Rarity: domain.RarityCommon, SellPrice: 5}
	pumpkin = domain.Item{ID: 8, Name: "Pumpkin", Emoji: "🎃", Rarity: domain.RarityLegendary, SellPrice: 400}
	garden  = &domain.Case{ID: 1, Name: "Garden Box", Price: 100, IsActive: true, Items: []domain.Item{potato, pumpkin}}
)
