package repository

import (
	"context"

	"github.com/kabachok/lootcase/internal/domain"
)

// Catalog defines read access to items and cases.
// Lookups return (nil, nil) when the record does not exist.
type Catalog interface {
	GetCase(ctx context.Context, caseID int64) (*domain.Case, error)
	ListActiveCases(ctx context.Context) ([]domain.Case, error)
	GetItem(ctx context.Context, itemID int64) (*domain.Item, error)
}

// CatalogWriter is used by the catalog seeder. Upserts are keyed by name.
type CatalogWriter interface {
	UpsertItem(ctx context.Context, item domain.Item) (int64, error)
	UpsertCase(ctx context.Context, c domain.Case) (int64, error)
	SetCaseItems(ctx context.Context, caseID int64, itemIDs []int64) error
}
