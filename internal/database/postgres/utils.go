package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kabachok/lootcase/internal/domain"
	"github.com/kabachok/lootcase/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// isCheckViolation reports whether err came from a failed CHECK constraint.
func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeCheckViolation
}

const itemColumns = `i.item_id, i.name, i.emoji, i.description, i.rarity, i.sell_price`

// scanItem reads the columns listed in itemColumns, plus any leading extras.
func scanItem(row pgx.Row, extra ...any) (*domain.Item, error) {
	var item domain.Item
	var rarity string
	dest := append(extra, &item.ID, &item.Name, &item.Emoji, &item.Description, &rarity, &item.SellPrice)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	item.Rarity = domain.Rarity(rarity)
	return &item, nil
}

// groupItemsByCase collects (case_id, item...) rows into a map keyed by case.
func groupItemsByCase(rows pgx.Rows) (map[int64][]domain.Item, error) {
	defer rows.Close()

	out := make(map[int64][]domain.Item)
	for rows.Next() {
		var caseID int64
		item, err := scanItem(rows, &caseID)
		if err != nil {
			return nil, err
		}
		out[caseID] = append(out[caseID], *item)
	}
	return out, rows.Err()
}
