package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kabachok/lootcase/internal/domain"
)

// requireDB skips the test without a database and starts it from empty tables
func requireDB(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}

	_, err := testPool.Exec(context.Background(),
		`TRUNCATE inventory_entries, accounts, case_items, cases, items RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

// seedGardenBox stores an active case priced 100 with a common and a legendary item
func seedGardenBox(t *testing.T, repo *CatalogRepository) *domain.Case {
	t.Helper()
	ctx := context.Background()

	a, err := repo.UpsertItem(ctx, domain.Item{Name: "Potato", Emoji: "🥔", Rarity: domain.RarityCommon, SellPrice: 5})
	require.NoError(t, err)
	b, err := repo.UpsertItem(ctx, domain.Item{Name: "Pumpkin", Emoji: "🎃", Rarity: domain.RarityLegendary, SellPrice: 400})
	require.NoError(t, err)

	caseID, err := repo.UpsertCase(ctx, domain.Case{Name: "Garden Box", Price: 100, IsActive: true})
	require.NoError(t, err)
	require.NoError(t, repo.SetCaseItems(ctx, caseID, []int64{a, b}))

	c, err := repo.GetCase(ctx, caseID)
	require.NoError(t, err)
	require.NotNil(t, c)
	return c
}

func credit(t *testing.T, repo *EconomyRepository, userID string, amount int64) {
	t.Helper()
	ctx := context.Background()
	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	_, err = tx.GetOrCreateAccountForUpdate(ctx, userID)
	require.NoError(t, err)
	_, err = tx.CreditBalance(ctx, userID, amount)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))
}
