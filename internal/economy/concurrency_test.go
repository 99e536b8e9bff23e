package economy

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kabachok/lootcase/internal/database/memory"
	"github.com/kabachok/lootcase/internal/domain"
	"github.com/kabachok/lootcase/internal/lootbox"
	"github.com/kabachok/lootcase/internal/testing/leaktest"
)

// seedStore creates one active case priced 100 holding a common and a legendary item
func seedStore(t *testing.T) (*memory.Store, *domain.Case) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	a, err := store.UpsertItem(ctx, domain.Item{Name: "A", Rarity: domain.RarityCommon, SellPrice: 5})
	require.NoError(t, err)
	b, err := store.UpsertItem(ctx, domain.Item{Name: "B", Rarity: domain.RarityLegendary, SellPrice: 400})
	require.NoError(t, err)
	caseID, err := store.UpsertCase(ctx, domain.Case{Name: "Garden Box", Price: 100, IsActive: true})
	require.NoError(t, err)
	require.NoError(t, store.SetCaseItems(ctx, caseID, []int64{a, b}))

	c, err := store.GetCase(ctx, caseID)
	require.NoError(t, err)
	return store, c
}

func totalQuantity(inv []domain.InventoryEntry) int {
	n := 0
	for _, e := range inv {
		n += e.Quantity
	}
	return n
}

func TestOpenCase_ConcurrentOpensNeverOverspend(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	ctx := context.Background()
	store, c := seedStore(t)
	svc := NewService(store, nil, lootbox.NewDrawer(nil), nil)

	_, err := svc.Deposit(ctx, "u1", 5000)
	require.NoError(t, err)

	const attempts = 100
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		refused   atomic.Int32
		other     atomic.Int32
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.OpenCase(ctx, "u1", c.ID)
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, domain.ErrInsufficientFunds):
				refused.Add(1)
			default:
				other.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(50), succeeded.Load())
	assert.Equal(t, int32(50), refused.Load())
	assert.Zero(t, other.Load())

	profile, err := svc.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, profile.Balance)
	assert.Equal(t, 50, totalQuantity(profile.Inventory))

	require.NoError(t, svc.Shutdown(ctx))
	checker.Check(2)
}

func TestOpenCase_ExampleCase(t *testing.T) {
	ctx := context.Background()
	store, c := seedStore(t)
	svc := NewService(store, nil, lootbox.NewDrawer(nil), nil)

	_, err := svc.Deposit(ctx, "u1", 150)
	require.NoError(t, err)

	res, err := svc.OpenCase(ctx, "u1", c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(50), res.NewBalance)
	assert.Contains(t, []string{"A", "B"}, res.Reward.Name)

	profile, err := svc.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(50), profile.Balance)
	require.Len(t, profile.Inventory, 1)
	assert.Equal(t, res.Reward.ID, profile.Inventory[0].ItemID)
	assert.Equal(t, 1, profile.Inventory[0].Quantity)

	// A second open is refused and changes nothing
	_, err = svc.OpenCase(ctx, "u1", c.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	after, err := svc.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, profile, after)
}

func TestOpenCase_ExactBalanceReachesZero(t *testing.T) {
	ctx := context.Background()
	store, c := seedStore(t)
	svc := NewService(store, nil, nil, nil)

	_, err := svc.Deposit(ctx, "u1", 100)
	require.NoError(t, err)

	res, err := svc.OpenCase(ctx, "u1", c.ID)
	require.NoError(t, err)
	assert.Zero(t, res.NewBalance)
}

func TestSellEntry_AgainstStore(t *testing.T) {
	ctx := context.Background()
	store, c := seedStore(t)
	// 0 always lands on the first item, A
	svc := NewService(store, nil, lootbox.NewDrawer(func() float64 { return 0 }), nil)

	_, err := svc.Deposit(ctx, "u1", 200)
	require.NoError(t, err)
	_, err = svc.OpenCase(ctx, "u1", c.ID)
	require.NoError(t, err)
	_, err = svc.OpenCase(ctx, "u1", c.ID)
	require.NoError(t, err)

	profile, _ := svc.GetProfile(ctx, "u1")
	require.Len(t, profile.Inventory, 1)
	entryID := profile.Inventory[0].ID
	assert.Equal(t, 2, profile.Inventory[0].Quantity)

	// Another user cannot sell it
	_, err = svc.SellEntry(ctx, "u2", entryID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	res, err := svc.SellEntry(ctx, "u1", entryID)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Remaining)
	assert.Equal(t, int64(5), res.NewBalance)

	res, err = svc.SellEntry(ctx, "u1", entryID)
	require.NoError(t, err)
	assert.Zero(t, res.Remaining)
	assert.Equal(t, int64(10), res.NewBalance)

	profile, _ = svc.GetProfile(ctx, "u1")
	assert.Empty(t, profile.Inventory)

	_, err = svc.SellEntry(ctx, "u1", entryID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOpenCase_RepeatedOpensDoNotLeak(t *testing.T) {
	ctx := context.Background()
	store, c := seedStore(t)
	svc := NewService(store, nil, nil, nil)

	leaktest.CheckNoMemoryLeak(t, 10, func() {
		for i := 0; i < 200; i++ {
			_, err := svc.Deposit(ctx, "u1", 100)
			require.NoError(t, err)
			_, err = svc.OpenCase(ctx, "u1", c.ID)
			require.NoError(t, err)
		}
	})
}
