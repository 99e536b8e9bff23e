package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kabachok/lootcase/internal/domain"
	"github.com/kabachok/lootcase/internal/repository"
)

// CatalogRepository implements repository.Catalog and repository.CatalogWriter for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

var (
	_ repository.Catalog       = (*CatalogRepository)(nil)
	_ repository.CatalogWriter = (*CatalogRepository)(nil)
)

// GetCase retrieves a case with its items, active or not. Returns nil if missing.
func (r *CatalogRepository) GetCase(ctx context.Context, caseID int64) (*domain.Case, error) {
	var c domain.Case
	err := r.db.QueryRow(ctx, `
		SELECT case_id, name, description, image_url, open_price, is_active
		FROM cases WHERE case_id = $1
	`, caseID).Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL, &c.Price, &c.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCase, err)
	}

	items, err := r.itemsForCases(ctx, []int64{caseID})
	if err != nil {
		return nil, err
	}
	c.Items = items[caseID]
	if c.Items == nil {
		c.Items = []domain.Item{}
	}
	return &c, nil
}

// ListActiveCases returns every active case with its items, oldest first.
func (r *CatalogRepository) ListActiveCases(ctx context.Context) ([]domain.Case, error) {
	rows, err := r.db.Query(ctx, `
		SELECT case_id, name, description, image_url, open_price, is_active
		FROM cases WHERE is_active
		ORDER BY case_id
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCases, err)
	}

	cases, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Case, error) {
		var c domain.Case
		err := row.Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL, &c.Price, &c.IsActive)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCases, err)
	}
	if len(cases) == 0 {
		return []domain.Case{}, nil
	}

	ids := make([]int64, len(cases))
	for i := range cases {
		ids[i] = cases[i].ID
	}
	items, err := r.itemsForCases(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range cases {
		cases[i].Items = items[cases[i].ID]
		if cases[i].Items == nil {
			cases[i].Items = []domain.Item{}
		}
	}
	return cases, nil
}

// GetItem retrieves an item by id. Returns nil if missing.
func (r *CatalogRepository) GetItem(ctx context.Context, itemID int64) (*domain.Item, error) {
	item, err := scanItem(r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM items i WHERE i.item_id = $1`, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItem, err)
	}
	return item, nil
}

func (r *CatalogRepository) itemsForCases(ctx context.Context, caseIDs []int64) (map[int64][]domain.Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ci.case_id, `+itemColumns+`
		FROM case_items ci
		JOIN items i ON i.item_id = ci.item_id
		WHERE ci.case_id = ANY($1)
		ORDER BY ci.case_id, i.item_id
	`, caseIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItems, err)
	}
	items, err := groupItemsByCase(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItems, err)
	}
	return items, nil
}

// UpsertItem inserts or updates an item by name and returns its id
func (r *CatalogRepository) UpsertItem(ctx context.Context, item domain.Item) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO items (name, emoji, description, rarity, sell_price)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (name) DO UPDATE SET
			emoji = EXCLUDED.emoji,
			description = EXCLUDED.description,
			rarity = EXCLUDED.rarity,
			sell_price = EXCLUDED.sell_price
		RETURNING item_id
	`, item.Name, item.Emoji, item.Description, string(item.Rarity), item.SellPrice).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", ErrMsgFailedToUpsertItem, item.Name, err)
	}
	return id, nil
}

// UpsertCase inserts or updates a case by name and returns its id. Items are not touched.
func (r *CatalogRepository) UpsertCase(ctx context.Context, c domain.Case) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO cases (name, description, image_url, open_price, is_active)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (name) DO UPDATE SET
			description = EXCLUDED.description,
			image_url = EXCLUDED.image_url,
			open_price = EXCLUDED.open_price,
			is_active = EXCLUDED.is_active
		RETURNING case_id
	`, c.Name, c.Description, c.ImageURL, c.Price, c.IsActive).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", ErrMsgFailedToUpsertCase, c.Name, err)
	}
	return id, nil
}

// SetCaseItems replaces a case's item membership
func (r *CatalogRepository) SetCaseItems(ctx context.Context, caseID int64, itemIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM case_items WHERE case_id = $1`, caseID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateItems, err)
	}
	if len(itemIDs) > 0 {
		_, err := tx.Exec(ctx, `
			INSERT INTO case_items (case_id, item_id)
			SELECT $1, unnest($2::bigint[])
			ON CONFLICT DO NOTHING
		`, caseID, itemIDs)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateItems, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}
