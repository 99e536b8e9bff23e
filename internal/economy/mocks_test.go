package economy

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kabachok/lootcase/internal/domain"
	"github.com/kabachok/lootcase/internal/event"
	"github.com/kabachok/lootcase/internal/lootbox"
	"github.com/kabachok/lootcase/internal/repository"
)

// MockRepository implements repository.Economy for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetCase(ctx context.Context, caseID int64) (*domain.Case, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Case), args.Error(1)
}

func (m *MockRepository) ListActiveCases(ctx context.Context) ([]domain.Case, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Case), args.Error(1)
}

func (m *MockRepository) GetItem(ctx context.Context, itemID int64) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockRepository) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockRepository) GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryEntry), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.EconomyTx), args.Error(1)
}

// MockTx implements repository.EconomyTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) GetOrCreateAccountForUpdate(ctx context.Context, userID string) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockTx) DebitBalance(ctx context.Context, userID string, amount int64) (int64, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTx) CreditBalance(ctx context.Context, userID string, amount int64) (int64, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTx) AddInventory(ctx context.Context, userID string, itemID int64) (*domain.InventoryEntry, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryEntry), args.Error(1)
}

func (m *MockTx) GetInventoryEntryForUpdate(ctx context.Context, userID string, entryID int64) (*domain.InventoryEntry, error) {
	args := m.Called(ctx, userID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryEntry), args.Error(1)
}

func (m *MockTx) RemoveOneFromEntry(ctx context.Context, entryID int64) (int, error) {
	args := m.Called(ctx, entryID)
	return args.Int(0), args.Error(1)
}

var (
	_ repository.Economy   = (*MockRepository)(nil)
	_ repository.EconomyTx = (*MockTx)(nil)
)

// MockPublisher implements EventPublisher for testing
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithRetry(ctx context.Context, evt event.Event) {
	m.Called(ctx, evt)
}

// stubDrawer always returns the configured item or error
type stubDrawer struct {
	item domain.Item
	err  error
}

func (d stubDrawer) Draw([]domain.Item) (domain.Item, error) { return d.item, d.err }

func (d stubDrawer) Odds(items []domain.Item) ([]lootbox.Odds, error) {
	return lootbox.NewDrawer(nil).Odds(items)
}

func eventOfType(t event.Type) interface{} {
	return mock.MatchedBy(func(evt event.Event) bool { return evt.Type == t })
}
