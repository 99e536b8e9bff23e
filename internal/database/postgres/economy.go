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

// EconomyRepository implements the economy repository for PostgreSQL
type EconomyRepository struct {
	*CatalogRepository
	db *pgxpool.Pool
}

// NewEconomyRepository creates a new EconomyRepository
func NewEconomyRepository(db *pgxpool.Pool) *EconomyRepository {
	return &EconomyRepository{
		CatalogRepository: NewCatalogRepository(db),
		db:                db,
	}
}

var _ repository.Economy = (*EconomyRepository)(nil)

// EconomyTx implements repository.EconomyTx
type EconomyTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *EconomyRepository) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &EconomyTx{tx: tx}, nil
}

// GetAccount returns the user's account without locking it. A user who has
// never transacted reads as a zero balance.
func (r *EconomyRepository) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	acc := domain.Account{UserID: userID}
	err := r.db.QueryRow(ctx, `SELECT balance FROM accounts WHERE user_id = $1`, userID).Scan(&acc.Balance)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAccount, err)
	}
	return &acc, nil
}

// GetInventory returns the user's stacks with their items, oldest first
func (r *EconomyRepository) GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT e.entry_id, e.user_id, e.quantity, `+itemColumns+`
		FROM inventory_entries e
		JOIN items i ON i.item_id = e.item_id
		WHERE e.user_id = $1
		ORDER BY e.entry_id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}
	defer rows.Close()

	entries := []domain.InventoryEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}
	return entries, nil
}

func scanEntry(row pgx.Row) (*domain.InventoryEntry, error) {
	var e domain.InventoryEntry
	item, err := scanItem(row, &e.ID, &e.UserID, &e.Quantity)
	if err != nil {
		return nil, err
	}
	e.ItemID = item.ID
	e.Item = item
	return &e, nil
}

// Commit commits the transaction
func (t *EconomyTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// Rollback rolls back the transaction
func (t *EconomyTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("%w: %w", repository.ErrTxClosed, err)
	}
	return err
}

// GetOrCreateAccountForUpdate creates the account at zero if needed and holds
// its row lock until the transaction ends
func (t *EconomyTx) GetOrCreateAccountForUpdate(ctx context.Context, userID string) (*domain.Account, error) {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO accounts (user_id) VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockAccount, err)
	}

	acc := domain.Account{UserID: userID}
	err = t.tx.QueryRow(ctx, `
		SELECT balance FROM accounts WHERE user_id = $1 FOR UPDATE
	`, userID).Scan(&acc.Balance)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockAccount, err)
	}
	return &acc, nil
}

// DebitBalance subtracts amount only if the balance covers it
func (t *EconomyTx) DebitBalance(ctx context.Context, userID string, amount int64) (int64, error) {
	var balance int64
	err := t.tx.QueryRow(ctx, `
		UPDATE accounts SET balance = balance - $2, updated_at = NOW()
		WHERE user_id = $1 AND balance >= $2
		RETURNING balance
	`, userID, amount).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isCheckViolation(err) {
			return 0, domain.ErrInsufficientFunds
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToDebitAccount, err)
	}
	return balance, nil
}

// CreditBalance adds amount to the balance
func (t *EconomyTx) CreditBalance(ctx context.Context, userID string, amount int64) (int64, error) {
	var balance int64
	err := t.tx.QueryRow(ctx, `
		UPDATE accounts SET balance = balance + $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING balance
	`, userID, amount).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCreditAccount, err)
	}
	return balance, nil
}

// AddInventory increments the user's stack of itemID, creating it at 1
func (t *EconomyTx) AddInventory(ctx context.Context, userID string, itemID int64) (*domain.InventoryEntry, error) {
	e := domain.InventoryEntry{UserID: userID, ItemID: itemID}
	err := t.tx.QueryRow(ctx, `
		INSERT INTO inventory_entries (user_id, item_id, quantity)
		VALUES ($1, $2, 1)
		ON CONFLICT (user_id, item_id)
		DO UPDATE SET quantity = inventory_entries.quantity + 1
		RETURNING entry_id, quantity
	`, userID, itemID).Scan(&e.ID, &e.Quantity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToAddInventory, err)
	}
	return &e, nil
}

// GetInventoryEntryForUpdate locks one of the user's stacks. Returns nil when
// the entry is missing or owned by someone else.
func (t *EconomyTx) GetInventoryEntryForUpdate(ctx context.Context, userID string, entryID int64) (*domain.InventoryEntry, error) {
	e, err := scanEntry(t.tx.QueryRow(ctx, `
		SELECT e.entry_id, e.user_id, e.quantity, `+itemColumns+`
		FROM inventory_entries e
		JOIN items i ON i.item_id = e.item_id
		WHERE e.entry_id = $1 AND e.user_id = $2
		FOR UPDATE OF e
	`, entryID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventoryEntry, err)
	}
	return e, nil
}

// RemoveOneFromEntry decrements the stack, deleting it instead of storing zero
func (t *EconomyTx) RemoveOneFromEntry(ctx context.Context, entryID int64) (int, error) {
	var remaining int
	err := t.tx.QueryRow(ctx, `
		UPDATE inventory_entries SET quantity = quantity - 1
		WHERE entry_id = $1 AND quantity > 1
		RETURNING quantity
	`, entryID).Scan(&remaining)
	if err == nil {
		return remaining, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToRemoveInventory, err)
	}

	tag, err := t.tx.Exec(ctx, `DELETE FROM inventory_entries WHERE entry_id = $1`, entryID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToRemoveInventory, err)
	}
	if tag.RowsAffected() == 0 {
		return 0, domain.ErrNotFound
	}
	return 0, nil
}
